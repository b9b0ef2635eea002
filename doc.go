// Package merkle implements a binary Merkle tree with single-leaf
// inclusion proofs.
//
// A tree is built bottom-up over arbitrary byte items: each item is
// hashed into a leaf, and levels are combined pairwise until one root
// remains, duplicating the last node of any level with an odd count. The
// hash function is pluggable through the Hasher interface; SHA-256 and
// BLAKE2b-256 implementations ship with the package, and hashers that
// implement PairHasher get a vectorized whole-level fast path.
//
// A Proofer built over the same leaves generates compact sibling-path
// proofs that anyone holding the root digest can verify with nothing but
// a Hasher:
//
//	tree, err := merkle.New(merkle.NewSha256Hasher(), items)
//	proofer, err := merkle.NewProofer(merkle.NewSha256Hasher(), tree.Leaves())
//	proof, err := proofer.Generate(3)
//	ok := proof.Verify(merkle.NewSha256Hasher(), items[3], tree.RootDigest())
package merkle
