package jagged

import (
	"sort"
	"testing"
)

func TestSortNext(t *testing.T) {
	offsets := []int64{0, 3, 5, 5}
	content := NewInt64Buffer([]int64{3, 1, 2, 5, 4})

	res, err := SortNext(offsets, content, true, false)
	if err != nil {
		t.Fatalf("SortNext failed: %v", err)
	}

	values := res.Content.(*NumberContent).Buffer.Int64s()
	expected := []int64{1, 2, 3, 4, 5}
	for i, exp := range expected {
		if values[i] != exp {
			t.Errorf("sorted[%d] = %v, want %v", i, values[i], exp)
		}
	}
	for i, exp := range offsets {
		if res.Offsets[i] != exp {
			t.Errorf("offsets changed at %d: %v, want %v", i, res.Offsets[i], exp)
		}
	}
}

func TestSortNextDescending(t *testing.T) {
	offsets := []int64{0, 4}
	content := NewFloat64Buffer([]float64{1.5, 3.0, 2.0, 0.5})

	res, err := SortNext(offsets, content, false, false)
	if err != nil {
		t.Fatalf("SortNext failed: %v", err)
	}

	values := res.Content.(*NumberContent).Buffer.Float64s()
	expected := []float64{3.0, 2.0, 1.5, 0.5}
	for i, exp := range expected {
		if values[i] != exp {
			t.Errorf("sorted[%d] = %v, want %v", i, values[i], exp)
		}
	}
}

// Each output sublist must be a permutation of its input sublist and
// monotone in the requested direction.
func TestSortRoundTrip(t *testing.T) {
	data := [][]int64{{9, 2, 7, 2}, {}, {5}, {8, 1}}
	a := NewArrayFromSlicesI64(data)

	sorted, err := a.Sort(true, false)
	if err != nil {
		t.Fatalf("Sort failed: %v", err)
	}

	for i, row := range data {
		got := sorted.GetListI64(i)
		if len(got) != len(row) {
			t.Fatalf("row %d length = %d, want %d", i, len(got), len(row))
		}
		want := append([]int64(nil), row...)
		sort.Slice(want, func(x, y int) bool { return want[x] < want[y] })
		for j := range want {
			if got[j] != want[j] {
				t.Errorf("row %d sorted[%d] = %v, want %v", i, j, got[j], want[j])
			}
		}
	}
}

func TestArgsortNext(t *testing.T) {
	offsets := []int64{0, 2, 3}
	content := NewInt64Buffer([]int64{3, 1, 2})

	res, err := ArgsortNext(offsets, content, true, false)
	if err != nil {
		t.Fatalf("ArgsortNext failed: %v", err)
	}

	values := res.Content.(*NumberContent).Buffer.Int64s()
	expected := []int64{1, 0, 0}
	for i, exp := range expected {
		if values[i] != exp {
			t.Errorf("argsort[%d] = %v, want %v", i, values[i], exp)
		}
	}
}

// Stable sort keeps tied elements in their original relative order;
// argsort makes the tie-breaking observable.
func TestArgsortStableTies(t *testing.T) {
	offsets := []int64{0, 3}
	content := NewInt64Buffer([]int64{2, 1, 2})

	res, err := ArgsortNext(offsets, content, true, true)
	if err != nil {
		t.Fatalf("ArgsortNext failed: %v", err)
	}

	values := res.Content.(*NumberContent).Buffer.Int64s()
	expected := []int64{1, 0, 2}
	for i, exp := range expected {
		if values[i] != exp {
			t.Errorf("stable argsort[%d] = %v, want %v", i, values[i], exp)
		}
	}
}

func TestSortNestedInnermost(t *testing.T) {
	leaf := NewNumberContent(NewInt64Buffer([]int64{4, 3, 2, 1}))
	inner := NewListArray([]int64{0, 2, 4}, leaf)
	outer := NewListArray([]int64{0, 1, 2}, inner)
	a := NewArray(outer)

	sorted, err := a.Sort(true, false)
	if err != nil {
		t.Fatalf("Sort failed: %v", err)
	}

	out := sorted.Root().(*ListArray).Content.(*ListArray)
	values := out.Content.(*NumberContent).Buffer.Int64s()
	expected := []int64{3, 4, 1, 2}
	for i, exp := range expected {
		if values[i] != exp {
			t.Errorf("nested sorted[%d] = %v, want %v", i, values[i], exp)
		}
	}
}

func TestSortBool(t *testing.T) {
	a := NewArray(NewListArray([]int64{0, 3}, NewNumberContent(NewBoolBuffer([]bool{true, false, true}))))

	sorted, err := a.Sort(true, false)
	if err != nil {
		t.Fatalf("Sort failed: %v", err)
	}

	values := sorted.Root().(*ListArray).Content.(*NumberContent).Buffer.Bools()
	expected := []bool{false, true, true}
	for i, exp := range expected {
		if values[i] != exp {
			t.Errorf("bool sorted[%d] = %v, want %v", i, values[i], exp)
		}
	}
}
