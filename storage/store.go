package storage

import (
	"github.com/treehash/merkle/digest"
)

// LevelStorer keeps the digests of every level of a Merkle tree, leaves
// first, root last. Proof generation needs sibling digests at every level,
// so unlike the tree builder a proofer retains all intermediate levels
// here instead of only the root.
type LevelStorer interface {
	// Append stores the next level up. Levels must be appended bottom-up,
	// starting with the (padded) leaf level.
	Append(level []digest.Digest)
	// Level returns the stored level at the given depth, 0 being the leaf
	// level. The returned slice must be treated as read-only.
	Level(i int) []digest.Digest
	// Depth returns the number of stored levels.
	Depth() int
	// LeafCount returns the width of the leaf level, or 0 if no level has
	// been stored yet.
	LeafCount() int
}

var _ LevelStorer = (*InMemoryLevelStore)(nil)

// InMemoryLevelStore is the default LevelStorer. It holds every level in
// memory; for a tree with n padded leaves that is at most 2n-1 digests.
type InMemoryLevelStore struct {
	levels [][]digest.Digest
}

func NewInMemoryLevelStore() *InMemoryLevelStore {
	return &InMemoryLevelStore{
		levels: make([][]digest.Digest, 0, 8),
	}
}

func (s *InMemoryLevelStore) Append(level []digest.Digest) {
	s.levels = append(s.levels, level)
}

func (s *InMemoryLevelStore) Level(i int) []digest.Digest {
	return s.levels[i]
}

func (s *InMemoryLevelStore) Depth() int {
	return len(s.levels)
}

func (s *InMemoryLevelStore) LeafCount() int {
	if len(s.levels) == 0 {
		return 0
	}
	return len(s.levels[0])
}

// Root returns the single digest of the topmost stored level, or nil if
// the store is empty or the top level has not been reduced to one digest.
func (s *InMemoryLevelStore) Root() digest.Digest {
	if len(s.levels) == 0 {
		return nil
	}
	top := s.levels[len(s.levels)-1]
	if len(top) != 1 {
		return nil
	}
	return top[0]
}
