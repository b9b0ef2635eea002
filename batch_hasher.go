package merkle

import (
	"runtime"
	"sync"

	"github.com/treehash/merkle/digest"
)

const (
	// defaultParallelThreshold is the number of pairs in a level above
	// which combination work is scattered across workers.
	defaultParallelThreshold = 512
	// batchMinWidth is the smallest level width worth handing to a
	// PairHasher in one call.
	batchMinWidth = 8
)

// levelProcessor combines one level of nodes into the next. Pairs within a
// level are independent, so they can be hashed through a PairHasher batch
// call, a worker pool, or a plain loop; all three produce identical
// digests. Levels themselves are strictly sequential: combine for level
// i+1 is only called after combine for level i has returned.
type levelProcessor struct {
	maxWorkers        int
	parallelThreshold int
	noBatch           bool
	bufPool           sync.Pool
}

func newLevelProcessor(opts *Options) *levelProcessor {
	workers := opts.MaxWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &levelProcessor{
		maxWorkers:        workers,
		parallelThreshold: opts.ParallelThreshold,
		noBatch:           opts.NoBatch,
		bufPool: sync.Pool{
			New: func() interface{} {
				buf := make([]byte, 0, 128)
				return &buf
			},
		},
	}
}

// combine hashes the disjoint consecutive pairs (level[2i], level[2i+1])
// of an even-width level into the next level up.
func (lp *levelProcessor) combine(hasher Hasher, level []*Node) ([]*Node, error) {
	pairs := len(level) / 2

	if !lp.noBatch && len(level) >= batchMinWidth {
		if ph, ok := hasher.(PairHasher); ok {
			return lp.combineBatch(ph, level)
		}
	}
	if lp.maxWorkers > 1 && pairs >= lp.parallelThreshold {
		return lp.combineParallel(hasher, level), nil
	}

	next := make([]*Node, pairs)
	for i := 0; i < pairs; i++ {
		next[i] = combinePair(hasher, level[2*i], level[2*i+1])
	}
	return next, nil
}

// combineBatch hands the whole level to the hasher's vectorized pair
// implementation.
func (lp *levelProcessor) combineBatch(ph PairHasher, level []*Node) ([]*Node, error) {
	digests := make([]digest.Digest, len(level))
	for i, n := range level {
		digests[i] = n.Digest()
	}
	parents, err := ph.HashPairs(digests)
	if err != nil {
		return nil, err
	}

	next := make([]*Node, len(parents))
	for i, d := range parents {
		next[i] = NewInternal(d, level[2*i], level[2*i+1])
	}
	return next, nil
}

// combineParallel scatters the pairs of one level across a bounded worker
// pool and gathers the results into the next level. The WaitGroup is the
// barrier between levels.
func (lp *levelProcessor) combineParallel(hasher Hasher, level []*Node) []*Node {
	pairs := len(level) / 2
	next := make([]*Node, pairs)

	workers := lp.maxWorkers
	if workers > pairs {
		workers = pairs
	}

	jobs := make(chan int, pairs)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// per-worker scratch buffer to avoid an allocation per pair
			scratch := lp.bufPool.Get().(*[]byte)
			defer lp.bufPool.Put(scratch)
			for i := range jobs {
				left, right := level[2*i], level[2*i+1]
				buf := append((*scratch)[:0], left.Digest()...)
				buf = append(buf, right.Digest()...)
				next[i] = NewInternal(hasher.Hash(buf), left, right)
				*scratch = buf[:0]
			}
		}()
	}

	for i := 0; i < pairs; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return next
}

// combinePair hashes left.digest || right.digest into a new internal node.
func combinePair(hasher Hasher, left, right *Node) *Node {
	return NewInternal(hasher.Hash(digest.Concat(left.Digest(), right.Digest())), left, right)
}
