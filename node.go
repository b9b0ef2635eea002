package merkle

import (
	"github.com/treehash/merkle/digest"
)

// Kind discriminates between the two node variants of a binary Merkle tree.
type Kind byte

const (
	// LeafKind marks a node that directly represents one input item's digest.
	LeafKind Kind = iota
	// InternalKind marks a node whose digest is the hash of its two
	// children's concatenated digests.
	InternalKind
)

// Side records whether a sibling digest was the left or the right operand
// when a parent digest was computed. Verification uses it to reproduce the
// exact concatenation order.
type Side byte

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Node is an element of a Merkle tree, either a leaf or an internal node
// owning its two children. Nodes are built once, bottom-up, and are
// immutable afterward; a built tree is freely shareable without locking.
//
// A leaf does not retain the original input bytes, only their digest.
type Node struct {
	digest digest.Digest
	left   *Node
	right  *Node
}

// NewLeaf constructs a leaf node from the digest of one input item.
func NewLeaf(d digest.Digest) *Node {
	return &Node{digest: d}
}

// NewInternal constructs an internal node owning the two given children.
// The digest must have been computed as hash(left.digest || right.digest)
// with the same hasher used for the rest of the tree.
func NewInternal(d digest.Digest, left, right *Node) *Node {
	return &Node{digest: d, left: left, right: right}
}

// Digest returns the digest stored at the node.
func (n *Node) Digest() digest.Digest {
	return n.digest
}

// Kind returns the node variant.
func (n *Node) Kind() Kind {
	if n.left == nil {
		return LeafKind
	}
	return InternalKind
}

// IsLeaf reports whether the node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.left == nil
}

// Left returns the left child, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}
