package merkle

import (
	"github.com/treehash/merkle/digest"
)

const (
	// DefaultInitialCapacity is the default capacity of the leaf slice.
	DefaultInitialCapacity = 128
)

type Options struct {
	InitialCapacity   int
	MaxWorkers        int
	ParallelThreshold int
	NoBatch           bool
}

type Option func(*Options)

// InitialCapacity sets the capacity of the internally used leaf slice to
// the passed in initial value (default is 128).
func InitialCapacity(cap int) Option {
	if cap < 0 {
		panic("Got invalid capacity. Expected int greater or equal to 0.")
	}
	return func(opts *Options) {
		opts.InitialCapacity = cap
	}
}

// MaxWorkers caps the number of goroutines used to combine pairs within one
// level. Zero or negative means runtime.NumCPU().
func MaxWorkers(n int) Option {
	return func(opts *Options) {
		opts.MaxWorkers = n
	}
}

// ParallelThreshold sets the minimum number of pairs in a level before the
// combination work is scattered across workers. Levels below the threshold
// are combined serially to avoid goroutine overhead.
func ParallelThreshold(pairs int) Option {
	if pairs < 0 {
		panic("Got invalid threshold. Expected int greater or equal to 0.")
	}
	return func(opts *Options) {
		opts.ParallelThreshold = pairs
	}
}

// DisableBatchHashing turns off the whole-level PairHasher fast path even
// when the hasher supports it. Intended for tests and benchmarks comparing
// the two code paths; the resulting digests are identical either way.
func DisableBatchHashing() Option {
	return func(opts *Options) {
		opts.NoBatch = true
	}
}

func defaultOptions() *Options {
	return &Options{
		InitialCapacity:   DefaultInitialCapacity,
		ParallelThreshold: defaultParallelThreshold,
	}
}

// MerkleTree is an immutable snapshot of a binary Merkle tree: the padded
// leaf level, the tree height, and the root node. Each leaf holds the
// digest of one input item; each internal node holds the digest of its
// children's concatenated digests, left first.
type MerkleTree struct {
	hasher Hasher
	leaves []*Node
	height int
	root   *Node
}

// New builds a MerkleTree over the given items. Each item becomes a leaf
// whose digest is hasher.Hash(item); levels are then combined pairwise
// until one root remains, duplicating the last node of any level with an
// odd count. It returns ErrEmptyTree if items is empty.
func New(hasher Hasher, items [][]byte, setters ...Option) (*MerkleTree, error) {
	if len(items) == 0 {
		return nil, ErrEmptyTree
	}
	opts := defaultOptions()
	for _, setter := range setters {
		setter(opts)
	}

	capacity := opts.InitialCapacity
	if len(items) > capacity {
		capacity = len(items)
	}
	leaves := make([]*Node, 0, capacity)
	for _, item := range items {
		leaves = append(leaves, NewLeaf(hasher.Hash(item)))
	}
	return build(hasher, leaves, opts)
}

// NewFromLeaves builds a MerkleTree from already-hashed leaf nodes. The
// leaves must have been hashed with the same hasher for the tree invariants
// to hold. It returns ErrEmptyTree if leaves is empty.
func NewFromLeaves(hasher Hasher, leaves []*Node, setters ...Option) (*MerkleTree, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyTree
	}
	opts := defaultOptions()
	for _, setter := range setters {
		setter(opts)
	}
	return build(hasher, leaves, opts)
}

// FromPaths builds a MerkleTree over the contents of the given files and
// directories, one leaf per file, visited in lexicographic path order. See
// LeavesFromPaths for the traversal rules.
func FromPaths(hasher Hasher, paths []string, setters ...Option) (*MerkleTree, error) {
	leaves, err := LeavesFromPaths(hasher, paths)
	if err != nil {
		return nil, err
	}
	return NewFromLeaves(hasher, leaves, setters...)
}

// build reduces the leaf level to a single root, one level at a time. A
// level with an odd node count is padded by duplicating its last node
// before the pairs are combined; padding always completes before any pair
// of that level is hashed.
func build(hasher Hasher, leaves []*Node, opts *Options) (*MerkleTree, error) {
	level := append(make([]*Node, 0, len(leaves)+1), leaves...)
	if len(level) > 1 && len(level)%2 != 0 {
		level = append(level, level[len(level)-1])
	}
	// snapshot of the padded leaf level; Len() reports the padded count
	snapshot := append([]*Node(nil), level...)

	lp := newLevelProcessor(opts)
	height := 1
	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}
		next, err := lp.combine(hasher, level)
		if err != nil {
			return nil, err
		}
		level = next
		height++
	}

	return &MerkleTree{
		hasher: hasher,
		leaves: snapshot,
		height: height,
		root:   level[0],
	}, nil
}

// Height returns the number of levels in the tree, counting the leaf
// level. A single-leaf tree has height 1.
func (t *MerkleTree) Height() int {
	return t.height
}

// Len returns the number of leaf nodes, after padding. A tree built from
// an odd number n > 1 of items reports n+1.
func (t *MerkleTree) Len() int {
	return len(t.leaves)
}

// IsEmpty returns true if the tree has no leaves, which never happens for
// a tree obtained from one of the constructors.
func (t *MerkleTree) IsEmpty() bool {
	return t.Len() == 0
}

// Leaves returns a copy of the padded leaf level, in order.
func (t *MerkleTree) Leaves() []*Node {
	return append([]*Node(nil), t.leaves...)
}

// Root returns the root node of the tree.
func (t *MerkleTree) Root() *Node {
	return t.root
}

// RootDigest returns the digest of the root node.
func (t *MerkleTree) RootDigest() digest.Digest {
	return t.root.Digest()
}
