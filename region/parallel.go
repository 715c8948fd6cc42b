package region

import (
	"sync"

	"github.com/astei/nbtregion/chunk"
)

// DecodeAllChunksParallel decodes every present chunk slot concurrently, up
// to workers goroutines at a time, and returns one *chunk.Blocks per slot
// (nil for absent slots). §5 allows parallelising chunk decode across the
// 1024 slots as long as the shared caches stay safe under concurrent
// access; BlockCache and BiomeCache do that themselves, so decode workers
// here need no locking of their own — the same shape as the teacher's
// worldwide multi-file loader, just fanned out over chunk slots within one
// region instead of region files within a world directory.
func (r *Region) DecodeAllChunksParallel(workers int) ([ChunkCount]*chunk.Blocks, error) {
	var results [ChunkCount]*chunk.Blocks
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	errs := make(chan error, ChunkCount)

	for i := range r.Chunks {
		if r.Chunks[i].Absent() {
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			blocks, err := r.DecodeChunkBlocks(i)
			if err != nil {
				errs <- err
				return
			}
			results[i] = blocks
		}(i)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
