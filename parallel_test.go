package jagged

import (
	"sync/atomic"
	"testing"
)

func TestMorselIteratorCoversAll(t *testing.T) {
	mi := NewMorselIterator(10, 3)

	var covered int
	for {
		m := mi.Next()
		if m == nil {
			break
		}
		covered += m.End - m.Start
	}
	if covered != 10 {
		t.Errorf("morsels covered %d rows, want 10", covered)
	}
}

func TestMorselIteratorEmpty(t *testing.T) {
	mi := NewMorselIterator(0, 4)
	if m := mi.Next(); m != nil {
		t.Errorf("empty iterator returned %+v", m)
	}
}

func TestParallelFor(t *testing.T) {
	old := GetParallelConfig()
	SetParallelConfig(&ParallelConfig{MinCallsForParallel: 1, MorselSize: 2, Enabled: true})
	defer SetParallelConfig(old)

	var total int64
	ParallelFor(100, func(start, end int) {
		atomic.AddInt64(&total, int64(end-start))
	})
	if total != 100 {
		t.Errorf("ParallelFor covered %d, want 100", total)
	}
}

func TestParallelMap(t *testing.T) {
	out := ParallelMap(5, func(i int) int { return i * i })

	expected := []int{0, 1, 4, 9, 16}
	for i, exp := range expected {
		if out[i] != exp {
			t.Errorf("ParallelMap out[%d] = %v, want %v", i, out[i], exp)
		}
	}
}

func TestReduceAll(t *testing.T) {
	old := GetParallelConfig()
	SetParallelConfig(&ParallelConfig{MinCallsForParallel: 1, MorselSize: 1, Enabled: true})
	defer SetParallelConfig(old)

	arrays := []*Array{
		NewArrayFromSlicesI64([][]int64{{1, 2}, {3}}),
		NewArrayFromSlicesI64([][]int64{{10}, {}, {20, 30}}),
		NewArrayFromSlicesI64([][]int64{{}}),
		NewArrayFromSlicesI64([][]int64{{5, 5, 5}}),
	}

	results := ReduceAll(arrays, NewReducer(Sum), -1, false, false)
	if len(results) != len(arrays) {
		t.Fatalf("result count = %d, want %d", len(results), len(arrays))
	}

	expected := [][]int64{{3, 3}, {10, 0, 50}, {0}, {15}}
	for i, exp := range expected {
		if results[i].Err != nil {
			t.Fatalf("reduction %d failed: %v", i, results[i].Err)
		}
		values := results[i].Content.(*NumberContent).Buffer.Int64s()
		if len(values) != len(exp) {
			t.Fatalf("reduction %d length = %d, want %d", i, len(values), len(exp))
		}
		for j := range exp {
			if values[j] != exp[j] {
				t.Errorf("reduction %d sum[%d] = %v, want %v", i, j, values[j], exp[j])
			}
		}
	}
}

func TestReduceAllReportsErrors(t *testing.T) {
	arrays := []*Array{NewArray(NewNumberContent(NewInt64Buffer([]int64{1})))}
	results := ReduceAll(arrays, NewReducer(Sum), -1, false, false)
	if results[0].Err == nil {
		t.Error("flat content reduction should report an error")
	}
}
