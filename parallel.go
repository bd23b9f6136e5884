package jagged

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// ============================================================================
// Parallel Execution Configuration
// ============================================================================

// ParallelConfig controls parallelization behavior. The engine is
// single-threaded by contract at the call site; every kernel is purely
// functional on its buffers, so independent reductions over disjoint
// data may run concurrently without synchronization. This configuration
// governs only the helpers below; nothing inside a single reduction
// ever spawns a goroutine.
type ParallelConfig struct {
	// MinCallsForParallel is the minimum number of independent calls to
	// justify parallel overhead
	MinCallsForParallel int

	// MorselSize is the number of calls per work unit
	MorselSize int

	// MaxWorkers limits the number of worker goroutines (0 = GOMAXPROCS)
	MaxWorkers int

	// Enabled controls whether parallelism is used at all
	Enabled bool
}

// DefaultParallelConfig returns sensible defaults
func DefaultParallelConfig() *ParallelConfig {
	return &ParallelConfig{
		MinCallsForParallel: 4,
		MorselSize:          1,
		MaxWorkers:          0, // Use all CPUs
		Enabled:             true,
	}
}

// globalConfig is the default configuration
var globalConfig = DefaultParallelConfig()

// SetParallelConfig sets the global parallelization configuration
func SetParallelConfig(cfg *ParallelConfig) {
	if cfg != nil {
		globalConfig = cfg
	}
}

// GetParallelConfig returns the current configuration
func GetParallelConfig() *ParallelConfig {
	return globalConfig
}

// numWorkers returns the number of workers to use
func (cfg *ParallelConfig) numWorkers() int {
	if cfg.MaxWorkers > 0 {
		return cfg.MaxWorkers
	}
	return runtime.GOMAXPROCS(0)
}

// shouldParallelize determines if a batch of calls should be parallelized
func (cfg *ParallelConfig) shouldParallelize(calls int) bool {
	return cfg.Enabled && calls >= cfg.MinCallsForParallel
}

// ============================================================================
// Morsel-Based Work Distribution
// ============================================================================

// Morsel represents a range of calls to process
type Morsel struct {
	Start int
	End   int
}

// MorselIterator provides work-stealing morsel distribution
type MorselIterator struct {
	total      int
	morselSize int
	nextStart  int64 // atomic counter for work-stealing
}

// NewMorselIterator creates a new morsel iterator
func NewMorselIterator(total, morselSize int) *MorselIterator {
	if morselSize <= 0 {
		morselSize = globalConfig.MorselSize
	}
	return &MorselIterator{
		total:      total,
		morselSize: morselSize,
		nextStart:  0,
	}
}

// Next returns the next morsel, or nil if exhausted
// This is safe for concurrent use (work-stealing)
func (mi *MorselIterator) Next() *Morsel {
	for {
		start := atomic.LoadInt64(&mi.nextStart)
		if int(start) >= mi.total {
			return nil
		}

		end := int(start) + mi.morselSize
		if end > mi.total {
			end = mi.total
		}

		// Try to claim this morsel
		if atomic.CompareAndSwapInt64(&mi.nextStart, start, int64(end)) {
			return &Morsel{Start: int(start), End: end}
		}
		// Another worker claimed it, try again
	}
}

// ============================================================================
// Parallel Execution Helpers
// ============================================================================

// ParallelFor executes fn for each morsel in parallel using work-stealing
func ParallelFor(total int, fn func(start, end int)) {
	cfg := globalConfig
	if !cfg.shouldParallelize(total) {
		// Sequential execution
		fn(0, total)
		return
	}

	numWorkers := cfg.numWorkers()
	morselIter := NewMorselIterator(total, cfg.MorselSize)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				morsel := morselIter.Next()
				if morsel == nil {
					return
				}
				fn(morsel.Start, morsel.End)
			}
		}()
	}
	wg.Wait()
}

// ParallelMap applies fn to each index in parallel
func ParallelMap[T any](n int, fn func(i int) T) []T {
	results := make([]T, n)

	cfg := globalConfig
	if !cfg.shouldParallelize(n) {
		for i := 0; i < n; i++ {
			results[i] = fn(i)
		}
		return results
	}

	ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = fn(i)
		}
	})
	return results
}

// ============================================================================
// Parallel Independent Reductions
// ============================================================================

// ReduceResult pairs one array's reduced content with the error that
// reduction produced, so a batch survives individual failures.
type ReduceResult struct {
	Content Content
	Err     error
}

// ReduceAll runs the same reduction over many independent arrays,
// distributing whole reductions across workers. Each array's buffers
// must be disjoint from (or shared read-only with) every other's; within
// one reduction nothing here introduces concurrency.
func ReduceAll(arrays []*Array, reducer Reducer, axis int64, mask, keepdims bool) []ReduceResult {
	return ParallelMap(len(arrays), func(i int) ReduceResult {
		out, err := arrays[i].Reduce(reducer, axis, mask, keepdims)
		return ReduceResult{Content: out, Err: err}
	})
}
