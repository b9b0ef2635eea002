package merkle

import (
	"crypto"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/treehash/merkle/digest"
)

func buildProofer(t *testing.T, hasher Hasher, items [][]byte) (*MerkleTree, *Proofer) {
	t.Helper()
	tree, err := New(hasher, items)
	require.NoError(t, err)
	proofer, err := NewProofer(hasher, tree.Leaves())
	require.NoError(t, err)
	require.True(t, tree.RootDigest().Equal(proofer.Root()),
		"proofer must recompute the same root as the tree builder")
	return tree, proofer
}

func TestProofer_RoundTrip(t *testing.T) {
	hasher := NewSha256Hasher()
	for _, numLeaves := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 16} {
		t.Run(fmt.Sprintf("%d leaves", numLeaves), func(t *testing.T) {
			items := genItems(numLeaves, 20)
			tree, proofer := buildProofer(t, hasher, items)

			for i, item := range items {
				proof, err := proofer.Generate(i)
				require.NoError(t, err)
				assert.Equal(t, i, proof.LeafIndex())
				assert.Len(t, proof.Path(), tree.Height()-1)
				assert.True(t, proofer.Verify(proof, item, tree.RootDigest()),
					"leaf %d must verify against the root", i)
			}
		})
	}
}

func TestProofer_SingleLeaf(t *testing.T) {
	hasher := NewSha256Hasher()
	tree, proofer := buildProofer(t, hasher, [][]byte{[]byte("hello")})

	proof, err := proofer.Generate(0)
	require.NoError(t, err)
	assert.Empty(t, proof.Path())

	// with no siblings the leaf digest is compared to the root directly
	assert.True(t, proofer.Verify(proof, []byte("hello"), tree.RootDigest()))
	assert.False(t, proofer.Verify(proof, []byte("goodbye"), tree.RootDigest()))
}

func TestProofer_GenerateKnownPath(t *testing.T) {
	hasher := NewSha256Hasher()
	items := [][]byte{[]byte("a"), []byte("b"), []byte("c"), []byte("d")}
	tree, proofer := buildProofer(t, hasher, items)

	proof, err := proofer.Generate(0)
	require.NoError(t, err)

	lb := sum(crypto.SHA256, []byte("b"))
	lc := sum(crypto.SHA256, []byte("c"))
	ld := sum(crypto.SHA256, []byte("d"))
	right := sum(crypto.SHA256, lc, ld)

	path := proof.Path()
	require.Len(t, path, 2)
	assert.True(t, path[0].Sibling.Equal(lb))
	assert.Equal(t, Right, path[0].Side)
	assert.True(t, path[1].Sibling.Equal(right))
	assert.Equal(t, Right, path[1].Side)

	// the last leaf sees only left siblings
	proof, err = proofer.Generate(3)
	require.NoError(t, err)
	path = proof.Path()
	require.Len(t, path, 2)
	assert.Equal(t, Left, path[0].Side)
	assert.Equal(t, Left, path[1].Side)
	assert.True(t, proofer.Verify(proof, []byte("d"), tree.RootDigest()))
}

func TestProofer_DuplicatedLeafIsProvable(t *testing.T) {
	hasher := NewSha256Hasher()
	items := [][]byte{[]byte("a"), []byte("b"), []byte("c")}
	tree, proofer := buildProofer(t, hasher, items)

	require.Equal(t, 4, proofer.LeafCount())
	proof, err := proofer.Generate(3)
	require.NoError(t, err)

	// index 3 is the duplicate of the last item, so "c" verifies there too
	assert.True(t, proofer.Verify(proof, []byte("c"), tree.RootDigest()))
}

func TestProofer_GenerateOutOfRange(t *testing.T) {
	hasher := NewSha256Hasher()
	_, proofer := buildProofer(t, hasher, genItems(4, 16))

	_, err := proofer.Generate(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = proofer.Generate(4)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestProof_RejectsTampering(t *testing.T) {
	hasher := NewSha256Hasher()
	items := genItems(8, 32)
	tree, proofer := buildProofer(t, hasher, items)

	proof, err := proofer.Generate(3)
	require.NoError(t, err)
	require.True(t, proofer.Verify(proof, items[3], tree.RootDigest()))

	t.Run("wrong data", func(t *testing.T) {
		tampered := append(append([]byte(nil), items[3]...), 0xff)
		assert.False(t, proofer.Verify(proof, tampered, tree.RootDigest()))
	})

	t.Run("wrong leaf", func(t *testing.T) {
		assert.False(t, proofer.Verify(proof, items[4], tree.RootDigest()))
	})

	t.Run("wrong root", func(t *testing.T) {
		wrongRoot := hasher.Hash([]byte("not the root"))
		assert.False(t, proofer.Verify(proof, items[3], wrongRoot))
	})

	t.Run("corrupted sibling", func(t *testing.T) {
		path := proof.Path()
		path[1].Sibling = path[1].Sibling.Clone()
		path[1].Sibling[0] ^= 0x01
		corrupted := NewProof(path, proof.LeafIndex())
		assert.False(t, proofer.Verify(corrupted, items[3], tree.RootDigest()))
	})

	t.Run("flipped side", func(t *testing.T) {
		path := proof.Path()
		path[0].Side = Left
		flipped := NewProof(path, proof.LeafIndex())
		assert.False(t, proofer.Verify(flipped, items[3], tree.RootDigest()))
	})

	t.Run("truncated path", func(t *testing.T) {
		truncated := NewProof(proof.Path()[:1], proof.LeafIndex())
		assert.False(t, proofer.Verify(truncated, items[3], tree.RootDigest()))
	})
}

func TestProof_VerifyDigest(t *testing.T) {
	hasher := NewSha256Hasher()
	items := genItems(6, 16)
	tree, proofer := buildProofer(t, hasher, items)

	proof, err := proofer.Generate(2)
	require.NoError(t, err)

	leaf := hasher.Hash(items[2])
	assert.True(t, proofer.VerifyDigest(proof, leaf, tree.RootDigest()))
	assert.False(t, proofer.VerifyDigest(proof, hasher.Hash(items[1]), tree.RootDigest()))
}

func TestProof_JSONRoundTrip(t *testing.T) {
	hasher := NewSha256Hasher()
	items := [][]byte{[]byte("a"), []byte("b"), []byte("c"), []byte("d")}
	tree, proofer := buildProofer(t, hasher, items)

	proof, err := proofer.Generate(1)
	require.NoError(t, err)

	encoded, err := json.Marshal(proof)
	require.NoError(t, err)

	raw := string(encoded)
	assert.Equal(t, int64(1), gjson.Get(raw, "leaf_index").Int())
	assert.Equal(t, int64(2), gjson.Get(raw, "path.#").Int())
	assert.Equal(t, "left", gjson.Get(raw, "path.0.side").String())
	assert.Equal(t, "right", gjson.Get(raw, "path.1.side").String())
	assert.Equal(t,
		sum(crypto.SHA256, []byte("a")),
		[]byte(mustHex(t, gjson.Get(raw, "path.0.sibling").String())),
	)

	var decoded Proof
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, proof.LeafIndex(), decoded.LeafIndex())
	assert.True(t, decoded.Verify(hasher, []byte("b"), tree.RootDigest()))
}

func mustHex(t *testing.T, s string) digest.Digest {
	t.Helper()
	d, err := digest.FromHex(s)
	require.NoError(t, err)
	return d
}

func TestProof_UnmarshalJSONMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"negative leaf index", `{"leaf_index":-1,"path":[]}`},
		{"bad sibling hex", `{"leaf_index":0,"path":[{"sibling":"zz","side":"left"}]}`},
		{"unknown side", `{"leaf_index":0,"path":[{"sibling":"ab","side":"up"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var proof Proof
			err := json.Unmarshal([]byte(tt.input), &proof)
			assert.ErrorIs(t, err, ErrMalformedProof)
		})
	}
}

func TestProof_ProtoRoundTrip(t *testing.T) {
	hasher := NewSha256Hasher()
	items := genItems(5, 16)
	tree, proofer := buildProofer(t, hasher, items)

	proof, err := proofer.Generate(4)
	require.NoError(t, err)

	wire, err := proto.Marshal(proof.ToProto())
	require.NoError(t, err)

	decoded := proof.ToProto()
	decoded.Reset()
	require.NoError(t, proto.Unmarshal(wire, decoded))

	restored, err := ProofFromProto(decoded)
	require.NoError(t, err)
	assert.Equal(t, proof.LeafIndex(), restored.LeafIndex())
	assert.True(t, restored.Verify(hasher, items[4], tree.RootDigest()))
}

func TestProofFromProto_Malformed(t *testing.T) {
	_, err := ProofFromProto(nil)
	assert.ErrorIs(t, err, ErrMalformedProof)

	proofer, err := NewProofer(NewSha256Hasher(), []*Node{
		NewLeaf(NewSha256Hasher().Hash([]byte("a"))),
		NewLeaf(NewSha256Hasher().Hash([]byte("b"))),
	})
	require.NoError(t, err)
	proof, err := proofer.Generate(0)
	require.NoError(t, err)

	bad := proof.ToProto()
	bad.LeafIndex = -7
	_, err = ProofFromProto(bad)
	assert.ErrorIs(t, err, ErrMalformedProof)

	bad = proof.ToProto()
	bad.Path[0].Side = 9
	_, err = ProofFromProto(bad)
	assert.ErrorIs(t, err, ErrMalformedProof)

	bad = proof.ToProto()
	bad.Path[0] = nil
	_, err = ProofFromProto(bad)
	assert.ErrorIs(t, err, ErrMalformedProof)
}

func TestProofer_Blake2b(t *testing.T) {
	hasher := NewBlake2bHasher()
	items := genItems(10, 48)
	tree, proofer := buildProofer(t, hasher, items)

	for i, item := range items {
		proof, err := proofer.Generate(i)
		require.NoError(t, err)
		assert.True(t, proofer.Verify(proof, item, tree.RootDigest()))
	}
}
