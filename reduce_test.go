package jagged

import (
	"math"
	"testing"
)

func TestReduceCount(t *testing.T) {
	parents := []int64{0, 0, 2, 2, 2, 3}
	out := ReduceCount(parents, 5)

	expected := []int64{2, 0, 3, 1, 0}
	for j, exp := range expected {
		if out[j] != exp {
			t.Errorf("ReduceCount out[%d] = %v, want %v", j, out[j], exp)
		}
	}
}

func TestReduceCountNonzero(t *testing.T) {
	in := []float64{0.0, 1.5, 0.0, 2.0, 3.0}
	parents := []int64{0, 0, 1, 1, 1}
	out := ReduceCountNonzero(in, parents, 2)

	if out[0] != 1 || out[1] != 2 {
		t.Errorf("ReduceCountNonzero = %v, want [1 2]", out)
	}
}

func TestReduceCountNonzeroBool(t *testing.T) {
	in := []bool{true, false, true, true}
	parents := []int64{0, 0, 1, 1}
	out := ReduceCountNonzeroBool(in, parents, 2)

	if out[0] != 1 || out[1] != 2 {
		t.Errorf("ReduceCountNonzeroBool = %v, want [1 2]", out)
	}
}

func TestSumInto(t *testing.T) {
	in := []int32{1, 2, 3, 4}
	parents := []int64{0, 0, 1, 1}
	out := SumInto[int32, int64](in, parents, 3)

	if out[0] != 3 || out[1] != 7 || out[2] != 0 {
		t.Errorf("SumInto = %v, want [3 7 0]", out)
	}
}

func TestSumIntoWrapsSigned(t *testing.T) {
	// Two's-complement wrapping, not saturation or a reported overflow.
	in := []int64{math.MaxInt64, 1}
	parents := []int64{0, 0}
	out := SumInto[int64, int64](in, parents, 1)

	if out[0] != math.MinInt64 {
		t.Errorf("SumInto overflow = %v, want %v", out[0], int64(math.MinInt64))
	}
}

func TestSumIntoWrapsUnsigned(t *testing.T) {
	in := []uint64{math.MaxUint64, 2}
	parents := []int64{0, 0}
	out := SumInto[uint64, uint64](in, parents, 1)

	if out[0] != 1 {
		t.Errorf("SumInto unsigned wrap = %v, want 1", out[0])
	}
}

func TestSumCommutes(t *testing.T) {
	// Reducer purity: any traversal order gives the same integer sum.
	in := []int64{5, -2, 9, 4, -7, 3}
	parents := []int64{0, 1, 0, 1, 0, 1}
	forward := SumInto[int64, int64](in, parents, 2)

	reversedIn := make([]int64, len(in))
	reversedParents := make([]int64, len(in))
	for i := range in {
		reversedIn[len(in)-1-i] = in[i]
		reversedParents[len(in)-1-i] = parents[i]
	}
	backward := SumInto[int64, int64](reversedIn, reversedParents, 2)

	for j := range forward {
		if forward[j] != backward[j] {
			t.Errorf("sum depends on traversal order at group %d: %v vs %v", j, forward[j], backward[j])
		}
	}
}

func TestSumBool(t *testing.T) {
	in := []bool{false, true, false, false}
	parents := []int64{0, 0, 1, 1}
	out := SumBool(in, parents, 3)

	if !out[0] || out[1] || out[2] {
		t.Errorf("SumBool = %v, want [true false false]", out)
	}
}

func TestProdInto(t *testing.T) {
	in := []int64{2, 3, 5}
	parents := []int64{0, 0, 1}
	out := ProdInto[int64, int64](in, parents, 3)

	if out[0] != 6 || out[1] != 5 || out[2] != 1 {
		t.Errorf("ProdInto = %v, want [6 5 1]", out)
	}
}

func TestProdBool(t *testing.T) {
	in := []bool{true, false, true}
	parents := []int64{0, 1, 1}
	out := ProdBool(in, parents, 3)

	if !out[0] || out[1] || !out[2] {
		t.Errorf("ProdBool = %v, want [true false true]", out)
	}
}

func TestMinIntoIdentity(t *testing.T) {
	in := []int64{5, 3, 9, 2}
	parents := []int64{0, 0, 2, 2}
	out := MinInto(in, parents, 3, int64(math.MaxInt64))

	if out[0] != 3 || out[1] != math.MaxInt64 || out[2] != 2 {
		t.Errorf("MinInto = %v, want [3 MaxInt64 2]", out)
	}
}

func TestMaxInto(t *testing.T) {
	in := []int64{5, 3, 9, 2}
	parents := []int64{0, 0, 1, 1}
	out := MaxInto(in, parents, 2, int64(math.MinInt64))

	if out[0] != 5 || out[1] != 9 {
		t.Errorf("MaxInto = %v, want [5 9]", out)
	}
}

func TestMinFloat64NaN(t *testing.T) {
	// NaN never wins: any non-NaN beats NaN; two NaNs yield NaN.
	in := []float64{math.NaN(), 2.0, math.NaN(), math.NaN()}
	parents := []int64{0, 0, 1, 1}
	out := MinFloat64(in, parents, 2, math.Inf(1))

	if out[0] != 2.0 {
		t.Errorf("MinFloat64 group 0 = %v, want 2.0", out[0])
	}
	if !math.IsNaN(out[1]) {
		t.Errorf("MinFloat64 group 1 = %v, want NaN", out[1])
	}
}

func TestMaxFloat64NaN(t *testing.T) {
	in := []float64{1.0, math.NaN(), 3.0}
	parents := []int64{0, 0, 0}
	out := MaxFloat64(in, parents, 1, math.Inf(-1))

	if out[0] != 3.0 {
		t.Errorf("MaxFloat64 = %v, want 3.0", out[0])
	}
}

func TestReduceArgMinTies(t *testing.T) {
	in := []int64{4, 1, 1, 7}
	positions := []int64{0, 1, 2, 3}
	parents := []int64{0, 0, 0, 0}
	out := ReduceArgMin(in, positions, parents, 1)

	if out[0] != 1 {
		t.Errorf("ReduceArgMin tie = %v, want earliest position 1", out[0])
	}
}

func TestReduceArgMaxEmptyGroup(t *testing.T) {
	in := []int64{5}
	positions := []int64{0}
	parents := []int64{1}
	out := ReduceArgMax(in, positions, parents, 2)

	if out[0] != -1 {
		t.Errorf("empty group argmax = %v, want -1", out[0])
	}
	if out[1] != 0 {
		t.Errorf("argmax = %v, want 0", out[1])
	}
}

func TestReduceArgMaxFloat64NaN(t *testing.T) {
	// A group of pure NaN still reports its earliest position; NaN only
	// loses to real values, not to absence.
	in := []float64{math.NaN(), math.NaN(), 0.5, math.NaN()}
	positions := []int64{0, 1, 2, 3}
	parents := []int64{0, 0, 1, 1}
	out := ReduceArgMaxFloat64(in, positions, parents, 2)

	if out[0] != 0 {
		t.Errorf("all-NaN group argmax = %v, want 0", out[0])
	}
	if out[1] != 2 {
		t.Errorf("argmax = %v, want 2", out[1])
	}
}

func TestApplyReducerLengthMismatch(t *testing.T) {
	buf := NewInt64Buffer([]int64{1, 2, 3})
	_, err := ApplyReducer(Sum, buf, []int64{0}, nil, 1, nil)
	if err == nil {
		t.Fatal("mismatched parents length accepted")
	}
}

func TestApplyReducerArgRequiresPositions(t *testing.T) {
	buf := NewInt64Buffer([]int64{1})
	_, err := ApplyReducer(ArgMin, buf, []int64{0}, nil, 1, nil)
	if err == nil {
		t.Fatal("argmin without positions accepted")
	}
}

func TestSumNarrow(t *testing.T) {
	buf := NewInt16Buffer([]int16{100, 200, 300})
	out, err := SumNarrow(buf, []int64{0, 0, 0}, 1)
	if err != nil {
		t.Fatalf("SumNarrow failed: %v", err)
	}
	if out.Type != Int32 {
		t.Errorf("SumNarrow type = %v, want Int32", out.Type)
	}
	if out.Int32s()[0] != 600 {
		t.Errorf("SumNarrow = %v, want 600", out.Int32s()[0])
	}
}

func TestSumNarrowRejectsWide(t *testing.T) {
	buf := NewInt64Buffer([]int64{1})
	if _, err := SumNarrow(buf, []int64{0}, 1); err == nil {
		t.Error("64-bit input accepted for narrow accumulator")
	}
}
