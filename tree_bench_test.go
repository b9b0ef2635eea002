package merkle

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func BenchmarkTreeBuild(b *testing.B) {
	for _, numLeaves := range []int{64, 256, 1024, 4096} {
		items := genItems(numLeaves, 256)

		b.Run(fmt.Sprintf("%d-leaves-batch", numLeaves), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, err := New(NewSha256Hasher(), items)
				require.NoError(b, err)
			}
		})

		b.Run(fmt.Sprintf("%d-leaves-serial", numLeaves), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, err := New(NewSha256Hasher(), items, DisableBatchHashing())
				require.NoError(b, err)
			}
		})

		b.Run(fmt.Sprintf("%d-leaves-parallel", numLeaves), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, err := New(NewSha256Hasher(), items,
					DisableBatchHashing(), ParallelThreshold(16))
				require.NoError(b, err)
			}
		})
	}
}

func BenchmarkProoferGenerate(b *testing.B) {
	items := genItems(1024, 256)
	tree, err := New(NewSha256Hasher(), items)
	require.NoError(b, err)
	proofer, err := NewProofer(NewSha256Hasher(), tree.Leaves())
	require.NoError(b, err)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := proofer.Generate(i % len(items))
		require.NoError(b, err)
	}
}

func BenchmarkProofVerify(b *testing.B) {
	hasher := NewSha256Hasher()
	items := genItems(1024, 256)
	tree, err := New(hasher, items)
	require.NoError(b, err)
	proofer, err := NewProofer(hasher, tree.Leaves())
	require.NoError(b, err)
	proof, err := proofer.Generate(511)
	require.NoError(b, err)
	root := tree.RootDigest()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !proof.Verify(hasher, items[511], root) {
			b.Fatal("proof did not verify")
		}
	}
}
