package merkle

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/treehash/merkle/digest"
	"github.com/treehash/merkle/pb"
)

var ErrMalformedProof = errors.New("malformed proof")

// ProofNode is a single step in an inclusion proof path: the digest of the
// sibling at one level, and the side on which that sibling sat when the
// parent digest was computed.
type ProofNode struct {
	Sibling digest.Digest
	Side    Side
}

// Proof is an ordered sibling path from a leaf up to (but excluding) the
// root, together with the index of the leaf it was generated for. It is
// sufficient to recompute the root from the leaf's data without the rest
// of the data set.
//
// A proof carries no reference to the tree it came from; verification only
// needs a Hasher and an expected root digest.
type Proof struct {
	path      []ProofNode
	leafIndex int
}

// NewProof constructs a proof from a leaf-to-root sibling path.
// Proofer.Generate is the usual source; this constructor exists for proofs
// arriving over the wire.
func NewProof(path []ProofNode, leafIndex int) Proof {
	return Proof{path: path, leafIndex: leafIndex}
}

// Path returns a copy of the sibling path, ordered leaf to root.
func (proof Proof) Path() []ProofNode {
	return append([]ProofNode(nil), proof.path...)
}

// LeafIndex returns the index of the leaf this proof was generated for.
func (proof Proof) LeafIndex() int {
	return proof.leafIndex
}

// Verify hashes data into a leaf digest and checks it against the expected
// root. It returns false for any mismatch, including a well-formed proof
// verified against the wrong root or the wrong data; it never panics on
// malformed proofs.
func (proof Proof) Verify(hasher Hasher, data []byte, root digest.Digest) bool {
	return proof.VerifyDigest(hasher, hasher.Hash(data), root)
}

// VerifyDigest recomputes the running digest from leaf along the sibling
// path and compares it to the expected root. An empty path degenerates to
// a direct leaf == root comparison, which is the single-leaf tree case.
func (proof Proof) VerifyDigest(hasher Hasher, leaf, root digest.Digest) bool {
	running := leaf
	for _, pn := range proof.path {
		if pn.Side == Left {
			running = hasher.Hash(digest.Concat(pn.Sibling, running))
		} else {
			running = hasher.Hash(digest.Concat(running, pn.Sibling))
		}
	}
	return running.Equal(root)
}

type proofNodeJSON struct {
	Sibling string `json:"sibling"`
	Side    string `json:"side"`
}

type proofJSON struct {
	LeafIndex int             `json:"leaf_index"`
	Path      []proofNodeJSON `json:"path"`
}

// MarshalJSON encodes the proof with hex sibling digests and "left"/"right"
// side markers. The JSON form is a presentation-layer concern; the raw
// byte form is canonical.
func (proof Proof) MarshalJSON() ([]byte, error) {
	out := proofJSON{
		LeafIndex: proof.leafIndex,
		Path:      make([]proofNodeJSON, len(proof.path)),
	}
	for i, pn := range proof.path {
		out.Path[i] = proofNodeJSON{
			Sibling: pn.Sibling.String(),
			Side:    pn.Side.String(),
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (proof *Proof) UnmarshalJSON(data []byte) error {
	var in proofJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.LeafIndex < 0 {
		return fmt.Errorf("%w: negative leaf index %d", ErrMalformedProof, in.LeafIndex)
	}
	path := make([]ProofNode, len(in.Path))
	for i, pn := range in.Path {
		sibling, err := digest.FromHex(pn.Sibling)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedProof, err)
		}
		var side Side
		switch pn.Side {
		case "left":
			side = Left
		case "right":
			side = Right
		default:
			return fmt.Errorf("%w: unknown side %q", ErrMalformedProof, pn.Side)
		}
		path[i] = ProofNode{Sibling: sibling, Side: side}
	}
	proof.path = path
	proof.leafIndex = in.LeafIndex
	return nil
}

// ToProto converts the proof to its protobuf wire form.
func (proof Proof) ToProto() *pb.Proof {
	path := make([]*pb.ProofNode, len(proof.path))
	for i, pn := range proof.path {
		path[i] = &pb.ProofNode{
			Sibling: pn.Sibling.Clone(),
			Side:    int32(pn.Side),
		}
	}
	return &pb.Proof{
		LeafIndex: int64(proof.leafIndex),
		Path:      path,
	}
}

// ProofFromProto converts a protobuf proof back to its in-memory form,
// validating field ranges on the way in.
func ProofFromProto(p *pb.Proof) (Proof, error) {
	if p == nil {
		return Proof{}, fmt.Errorf("%w: nil message", ErrMalformedProof)
	}
	if p.LeafIndex < 0 {
		return Proof{}, fmt.Errorf("%w: negative leaf index %d", ErrMalformedProof, p.LeafIndex)
	}
	path := make([]ProofNode, len(p.Path))
	for i, pn := range p.Path {
		if pn == nil {
			return Proof{}, fmt.Errorf("%w: nil path entry %d", ErrMalformedProof, i)
		}
		if pn.Side != int32(Left) && pn.Side != int32(Right) {
			return Proof{}, fmt.Errorf("%w: unknown side %d", ErrMalformedProof, pn.Side)
		}
		path[i] = ProofNode{
			Sibling: append(digest.Digest(nil), pn.Sibling...),
			Side:    Side(pn.Side),
		}
	}
	return Proof{path: path, leafIndex: int(p.LeafIndex)}, nil
}
