package jagged

import (
	"testing"
)

func TestFlattenAxis1(t *testing.T) {
	a := NewArrayFromSlicesI64([][]int64{{1, 2}, {}, {3}})

	flat, err := a.Flatten(1)
	if err != nil {
		t.Fatalf("Flatten failed: %v", err)
	}

	values := flat.Root().(*NumberContent).Buffer.Int64s()
	expected := []int64{1, 2, 3}
	for i, exp := range expected {
		if values[i] != exp {
			t.Errorf("flat[%d] = %v, want %v", i, values[i], exp)
		}
	}
}

func TestFlattenAxis2(t *testing.T) {
	leaf := NewNumberContent(NewInt64Buffer([]int64{1, 2, 3, 4}))
	inner := NewListArray([]int64{0, 1, 3, 4}, leaf)
	outer := NewListArray([]int64{0, 2, 3}, inner)
	a := NewArray(outer)

	flat, err := a.Flatten(2)
	if err != nil {
		t.Fatalf("Flatten failed: %v", err)
	}

	out := flat.Root().(*ListArray)
	expOffsets := []int64{0, 3, 4}
	for i, exp := range expOffsets {
		if out.Offsets[i] != exp {
			t.Errorf("offsets[%d] = %v, want %v", i, out.Offsets[i], exp)
		}
	}
	values := out.Content.(*NumberContent).Buffer.Int64s()
	expected := []int64{1, 2, 3, 4}
	for i, exp := range expected {
		if values[i] != exp {
			t.Errorf("flat[%d] = %v, want %v", i, values[i], exp)
		}
	}
}

func TestFlattenNegativeAxis(t *testing.T) {
	a := NewArrayFromSlicesI64([][]int64{{1}, {2, 3}})

	flat, err := a.Flatten(-1)
	if err != nil {
		t.Fatalf("Flatten(-1) failed: %v", err)
	}
	if flat.Root().Length() != 3 {
		t.Errorf("flattened length = %d, want 3", flat.Root().Length())
	}
}

func TestFlattenRejectsAxis0(t *testing.T) {
	a := NewArrayFromSlicesI64([][]int64{{1}})
	_, err := a.Flatten(0)
	if err == nil {
		t.Fatal("axis 0 accepted")
	}
	if e, ok := err.(*Error); !ok || e.Kind != ErrArgument {
		t.Errorf("err = %v, want argument error", err)
	}
}

func TestFlattenRejectsDeepAxis(t *testing.T) {
	a := NewArrayFromSlicesI64([][]int64{{1}})
	if _, err := a.Flatten(2); err == nil {
		t.Error("axis beyond nesting accepted")
	}
}
