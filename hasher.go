package merkle

import (
	"errors"
	"fmt"

	sha256 "github.com/minio/sha256-simd"
	"github.com/prysmaticlabs/gohashtree"
	"golang.org/x/crypto/blake2b"

	"github.com/treehash/merkle/digest"
)

var (
	ErrEmptyTree            = errors.New("tree requires at least one leaf")
	ErrIndexOutOfRange      = errors.New("leaf index out of range")
	ErrOddLevelWidth        = errors.New("level width has to be even to hash pairs")
	ErrMismatchedDigestSize = errors.New("digest width does not match hasher size")
)

// Sha256Hasher is the reference Hasher. It is stateless: the zero value is
// ready to use and a single instance may be shared across goroutines.
type Sha256Hasher struct{}

var (
	_ Hasher     = Sha256Hasher{}
	_ PairHasher = Sha256Hasher{}
)

// NewSha256Hasher returns a SHA-256 backed Hasher.
func NewSha256Hasher() Sha256Hasher {
	return Sha256Hasher{}
}

func (Sha256Hasher) Hash(data []byte) digest.Digest {
	sum := sha256.Sum256(data)
	return sum[:]
}

func (Sha256Hasher) Size() int {
	return sha256.Size
}

// HashPairs combines a whole level of sibling digests in one call using
// vectorized SHA-256. The output is bit-identical to hashing each
// concatenated pair through Hash.
func (h Sha256Hasher) HashPairs(level []digest.Digest) ([]digest.Digest, error) {
	if len(level)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d digests", ErrOddLevelWidth, len(level))
	}
	chunks := make([][32]byte, len(level))
	for i, d := range level {
		if len(d) != sha256.Size {
			return nil, fmt.Errorf("%w: got %d, want %d", ErrMismatchedDigestSize, len(d), sha256.Size)
		}
		copy(chunks[i][:], d)
	}

	parents := make([][32]byte, len(level)/2)
	if err := gohashtree.Hash(parents, chunks); err != nil {
		return nil, err
	}

	out := make([]digest.Digest, len(parents))
	for i := range parents {
		out[i] = append(digest.Digest(nil), parents[i][:]...)
	}
	return out, nil
}

// Blake2bHasher digests with BLAKE2b-256. It exists to keep the core
// hash-function-agnostic; trees built with it are incompatible with
// SHA-256 trees by construction.
type Blake2bHasher struct{}

var _ Hasher = Blake2bHasher{}

// NewBlake2bHasher returns a BLAKE2b-256 backed Hasher.
func NewBlake2bHasher() Blake2bHasher {
	return Blake2bHasher{}
}

func (Blake2bHasher) Hash(data []byte) digest.Digest {
	sum := blake2b.Sum256(data)
	return sum[:]
}

func (Blake2bHasher) Size() int {
	return blake2b.Size256
}
