package jagged

import (
	"sync"
)

// Int64Scratch is a pooled int64 slice for the per-reduction scratch
// buffers of the non-local path (distincts, and any other working space
// sized per call). Call Release() when done to return it to the pool.
//
// Pooling keeps the "allocated per reduction call, freed on return"
// lifecycle cheap across many reduction calls without any kernel caching
// state of its own.
type Int64Scratch struct {
	Data []int64
	pool *sync.Pool
}

// Release returns the scratch to the pool for reuse.
func (s *Int64Scratch) Release() {
	if s.pool != nil && s.Data != nil {
		s.pool.Put(s)
	}
}

// Pool sizes - we use power-of-2 buckets for efficiency
var (
	int64Pools [32]*sync.Pool // pools for sizes 2^0 to 2^31
	poolInit   sync.Once
)

func initPools() {
	poolInit.Do(func() {
		for i := range int64Pools {
			size := 1 << i
			int64Pools[i] = &sync.Pool{
				New: func() interface{} {
					return &Int64Scratch{
						Data: make([]int64, size),
					}
				},
			}
		}
	})
}

// getBucket returns the pool bucket index for a given size
func getBucket(size int) int {
	if size <= 0 {
		return 0
	}
	// Find the smallest power of 2 >= size
	bucket := 0
	n := size - 1
	for n > 0 {
		n >>= 1
		bucket++
	}
	if bucket >= len(int64Pools) {
		bucket = len(int64Pools) - 1
	}
	return bucket
}

// getInt64Scratch gets an int64 scratch from the pool with exactly 'size'
// visible length. Contents are unspecified; callers initialize what they
// use.
func getInt64Scratch(size int) *Int64Scratch {
	initPools()
	bucket := getBucket(size)
	pool := int64Pools[bucket]
	scratch := pool.Get().(*Int64Scratch)
	scratch.pool = pool

	// Ensure correct size (pool may have larger capacity)
	poolSize := 1 << bucket
	// If we need more than pool size, allocate new
	if size > poolSize {
		scratch.Data = make([]int64, size)
	} else if len(scratch.Data) != size {
		scratch.Data = scratch.Data[:size]
	}

	return scratch
}
