package merkle

import (
	"fmt"

	"github.com/treehash/merkle/digest"
	"github.com/treehash/merkle/storage"
)

// Proofer generates inclusion proofs for a fixed leaf set. On construction
// it recomputes every level of the tree exactly as the tree builder would,
// but retains all of them in a storage.LevelStorer, because proof
// generation needs sibling digests at every level. A Proofer and a
// MerkleTree built from the same leaves and the same hasher are independent
// snapshots that agree on every digest; neither holds a reference to the
// other.
type Proofer struct {
	hasher Hasher
	levels storage.LevelStorer
}

var _ Prover = (*Proofer)(nil)

// NewProofer recomputes all tree levels from the given leaves bottom-up,
// duplicating the last digest of any level with an odd count before
// pairing, exactly as the tree builder does. It returns ErrEmptyTree if
// leaves is empty.
func NewProofer(hasher Hasher, leaves []*Node) (*Proofer, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyTree
	}

	level := make([]digest.Digest, 0, len(leaves)+1)
	for _, leaf := range leaves {
		level = append(level, leaf.Digest())
	}

	store := storage.NewInMemoryLevelStore()
	for {
		if len(level) > 1 && len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}
		store.Append(level)
		if len(level) == 1 {
			break
		}
		next := make([]digest.Digest, len(level)/2)
		for i := range next {
			next[i] = hasher.Hash(digest.Concat(level[2*i], level[2*i+1]))
		}
		level = next
	}

	return &Proofer{hasher: hasher, levels: store}, nil
}

// Generate returns the inclusion proof for the leaf at index: one
// (sibling digest, side) entry per level from the leaves up to one below
// the root. A single-leaf tree yields an empty path. It returns
// ErrIndexOutOfRange if index does not address a leaf.
func (p *Proofer) Generate(index int) (Proof, error) {
	if index < 0 || index >= p.levels.LeafCount() {
		return Proof{}, fmt.Errorf("%w: index %d, leaf count %d", ErrIndexOutOfRange, index, p.levels.LeafCount())
	}

	path := make([]ProofNode, 0, p.levels.Depth()-1)
	for lvl, idx := 0, index; lvl < p.levels.Depth()-1; lvl, idx = lvl+1, idx/2 {
		level := p.levels.Level(lvl)
		// even positions pair with idx+1, odd positions with idx-1
		sibling := idx ^ 1
		if sibling >= len(level) {
			sibling = len(level) - 1
		}
		side := Right
		if sibling < idx {
			side = Left
		}
		path = append(path, ProofNode{
			Sibling: level[sibling].Clone(),
			Side:    side,
		})
	}

	return Proof{path: path, leafIndex: index}, nil
}

// Verify checks that data is represented by the expected root, using the
// Proofer's hasher. Any mismatch is an ordinary false.
func (p *Proofer) Verify(proof Proof, data []byte, root digest.Digest) bool {
	return proof.Verify(p.hasher, data, root)
}

// VerifyDigest is like Verify but starts from an already-hashed leaf
// digest.
func (p *Proofer) VerifyDigest(proof Proof, leaf, root digest.Digest) bool {
	return proof.VerifyDigest(p.hasher, leaf, root)
}

// Root returns the root digest the Proofer recomputed on construction.
func (p *Proofer) Root() digest.Digest {
	return p.levels.Level(p.levels.Depth() - 1)[0]
}

// LeafCount returns the padded number of leaves the Proofer was built
// over.
func (p *Proofer) LeafCount() int {
	return p.levels.LeafCount()
}
