package jagged

import (
	"testing"
)

func TestCombinationsCount(t *testing.T) {
	cases := []struct {
		length, n   int64
		replacement bool
		want        int64
	}{
		{4, 2, false, 6},
		{3, 3, false, 1},
		{2, 3, false, 0},
		{0, 1, false, 0},
		{3, 2, true, 6},
		{1, 3, true, 1},
		{0, 2, true, 0},
	}
	for _, c := range cases {
		if got := combinationsCount(c.length, c.n, c.replacement); got != c.want {
			t.Errorf("combinationsCount(%d, %d, %v) = %d, want %d", c.length, c.n, c.replacement, got, c.want)
		}
	}
}

func TestListCombinationsPairs(t *testing.T) {
	a := NewArrayFromSlicesI64([][]int64{{1, 2, 3}, {}, {4, 5}})
	l := a.Root().(*ListArray)

	combos, err := ListCombinations(l.Offsets, l.Content, 2, false)
	if err != nil {
		t.Fatalf("ListCombinations failed: %v", err)
	}

	expOffsets := []int64{0, 3, 3, 4}
	for i, exp := range expOffsets {
		if combos.Offsets[i] != exp {
			t.Errorf("offsets[%d] = %v, want %v", i, combos.Offsets[i], exp)
		}
	}

	rec := combos.Content.(*Record)
	first := rec.Fields[0].(*NumberContent).Buffer.Int64s()
	second := rec.Fields[1].(*NumberContent).Buffer.Int64s()

	expFirst := []int64{1, 1, 2, 4}
	expSecond := []int64{2, 3, 3, 5}
	for i := range expFirst {
		if first[i] != expFirst[i] || second[i] != expSecond[i] {
			t.Errorf("tuple %d = (%v, %v), want (%v, %v)", i, first[i], second[i], expFirst[i], expSecond[i])
		}
	}
}

func TestListCombinationsReplacement(t *testing.T) {
	a := NewArrayFromSlicesI64([][]int64{{7, 8}})
	l := a.Root().(*ListArray)

	combos, err := ListCombinations(l.Offsets, l.Content, 2, true)
	if err != nil {
		t.Fatalf("ListCombinations failed: %v", err)
	}

	rec := combos.Content.(*Record)
	first := rec.Fields[0].(*NumberContent).Buffer.Int64s()
	second := rec.Fields[1].(*NumberContent).Buffer.Int64s()

	expFirst := []int64{7, 7, 8}
	expSecond := []int64{7, 8, 8}
	if len(first) != 3 {
		t.Fatalf("tuple count = %d, want 3", len(first))
	}
	for i := range expFirst {
		if first[i] != expFirst[i] || second[i] != expSecond[i] {
			t.Errorf("tuple %d = (%v, %v), want (%v, %v)", i, first[i], second[i], expFirst[i], expSecond[i])
		}
	}
}

func TestCombinationsRejectsZeroN(t *testing.T) {
	a := NewArrayFromSlicesI64([][]int64{{1, 2}})
	_, err := a.Combinations(0, false)
	if err == nil {
		t.Fatal("n = 0 accepted")
	}
	if e, ok := err.(*Error); !ok || e.Kind != ErrArgument {
		t.Errorf("err = %v, want argument error", err)
	}
}

func TestRecordCarry(t *testing.T) {
	rec := NewRecord([]Content{
		NewNumberContent(NewInt64Buffer([]int64{1, 2, 3})),
		NewNumberContent(NewInt64Buffer([]int64{10, 20, 30})),
	})

	carried := rec.Carry([]int64{2, 0}).(*Record)
	f0 := carried.Fields[0].(*NumberContent).Buffer.Int64s()
	f1 := carried.Fields[1].(*NumberContent).Buffer.Int64s()
	if f0[0] != 3 || f0[1] != 1 || f1[0] != 30 || f1[1] != 10 {
		t.Errorf("record carry = %v / %v, want [3 1] / [30 10]", f0, f1)
	}
}

func TestRecordCannotReduce(t *testing.T) {
	rec := NewRecord([]Content{NewNumberContent(NewInt64Buffer([]int64{1}))})
	_, err := rec.ReduceNext(NewReducer(Sum), 1, nil, []int64{0}, 1, false, false)
	if err == nil {
		t.Error("record reduction accepted")
	}
}
