package merkle

import (
	"github.com/treehash/merkle/digest"
)

// Hasher reduces an arbitrary-length byte sequence to a fixed-width digest.
// Implementations must be pure and deterministic, and must be safe for
// concurrent use; the tree builder shares a single Hasher across all
// combination workers of a level.
type Hasher interface {
	// Hash digests the input. It is total: any input, including an empty
	// one, produces a Size()-byte digest.
	Hash(data []byte) digest.Digest
	// Size returns the number of bytes Hash will return.
	Size() int
}

// PairHasher is implemented by hashers that can combine a whole level of
// sibling digests in one batch. level must have even length and every
// digest must be Size() bytes wide; the result holds len(level)/2 parent
// digests where out[i] = Hash(level[2i] || level[2i+1]).
//
// The batch path is a performance optimization only: its output must be
// bit-identical to hashing each concatenated pair through Hash.
type PairHasher interface {
	Hasher
	HashPairs(level []digest.Digest) ([]digest.Digest, error)
}

// Prover generates and verifies inclusion proofs against a fixed leaf set.
type Prover interface {
	// Generate returns the sibling path for the leaf at index, ordered from
	// the leaf level up to one below the root. It returns
	// ErrIndexOutOfRange if index does not address a leaf.
	Generate(index int) (Proof, error)
	// Verify checks data against proof and an expected root digest. Any
	// mismatch is an ordinary false, never an error.
	Verify(proof Proof, data []byte, root digest.Digest) bool
}
