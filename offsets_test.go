package jagged

import (
	"testing"
)

func TestCompactOffsets(t *testing.T) {
	in := []int64{3, 5, 5, 9}
	out := CompactOffsets(in)

	expected := []int64{0, 2, 2, 6}
	for i, exp := range expected {
		if out[i] != exp {
			t.Errorf("CompactOffsets out[%d] = %v, want %v", i, out[i], exp)
		}
	}
}

func TestCompactOffsetsIdempotent(t *testing.T) {
	in := []int64{4, 6, 10}
	once := CompactOffsets(in)
	twice := CompactOffsets(once)

	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("CompactOffsets not idempotent at %d: %v vs %v", i, once[i], twice[i])
		}
	}
}

func TestGlobalStartStop(t *testing.T) {
	start, stop := GlobalStartStop([]int64{2, 5, 7, 7, 11})
	if start != 2 || stop != 11 {
		t.Errorf("GlobalStartStop = (%v, %v), want (2, 11)", start, stop)
	}
}

func TestValidateOffsets(t *testing.T) {
	if err := ValidateOffsets([]int64{0, 3, 3, 6}, 6); err != nil {
		t.Errorf("valid offsets rejected: %v", err)
	}

	err := ValidateOffsets([]int64{0, 4, 2}, 10)
	if err == nil {
		t.Fatal("non-monotonic offsets accepted")
	}
	if e, ok := err.(*Error); !ok || e.Kind != ErrInvariant {
		t.Errorf("err = %v, want invariant violation", err)
	}

	if err := ValidateOffsets([]int64{0, 5}, 4); err == nil {
		t.Error("offsets[N] beyond content length accepted")
	}
}

func TestToRegularArraySize(t *testing.T) {
	size, ok := ToRegularArraySize([]int64{0, 3, 6, 9})
	if !ok || size != 3 {
		t.Errorf("ToRegularArraySize = (%v, %v), want (3, true)", size, ok)
	}

	if _, ok := ToRegularArraySize([]int64{0, 3, 5}); ok {
		t.Error("jagged offsets reported as regular")
	}

	if _, ok := ToRegularArraySize([]int64{0}); !ok {
		t.Error("empty list should be trivially regular")
	}
}

func TestCanonicalizeFromInt32(t *testing.T) {
	offsets := NewIndex32([]int32{0, 2, 5})
	content := NewNumberContent(NewInt64Buffer([]int64{1, 2, 3, 4, 5}))
	l := NewListArrayFromIndex(offsets, content)

	expected := []int64{0, 2, 5}
	for i, exp := range expected {
		if l.Offsets[i] != exp {
			t.Errorf("canonical offsets[%d] = %v, want %v", i, l.Offsets[i], exp)
		}
	}

	// Canonicalizing an already-canonical layer is the identity on
	// sublist contents and order.
	again := NewListArrayFromIndex(NewIndex64(l.Offsets), l.Content)
	if again.Length() != l.Length() {
		t.Errorf("second canonicalization changed length: %d vs %d", again.Length(), l.Length())
	}
	for i := range l.Offsets {
		if again.Offsets[i] != l.Offsets[i] {
			t.Errorf("second canonicalization changed offsets[%d]", i)
		}
	}
}

func TestBroadcastToOffsets(t *testing.T) {
	content := NewNumberContent(NewInt64Buffer([]int64{10, 20, 30}))
	l, err := BroadcastToOffsets([]int64{0, 2, 2, 5}, content)
	if err != nil {
		t.Fatalf("BroadcastToOffsets failed: %v", err)
	}

	values := l.Content.(*NumberContent).Buffer.Int64s()
	expected := []int64{10, 10, 30, 30, 30}
	if len(values) != len(expected) {
		t.Fatalf("broadcast length = %d, want %d", len(values), len(expected))
	}
	for i, exp := range expected {
		if values[i] != exp {
			t.Errorf("broadcast[%d] = %v, want %v", i, values[i], exp)
		}
	}
}

func TestBroadcastToOffsetsRejectsNonZeroStart(t *testing.T) {
	content := NewNumberContent(NewInt64Buffer([]int64{10, 20}))
	_, err := BroadcastToOffsets([]int64{1, 2, 3}, content)
	if err == nil {
		t.Fatal("non-zero-started offsets accepted")
	}
	if e, ok := err.(*Error); !ok || e.Kind != ErrArgument {
		t.Errorf("err = %v, want argument error", err)
	}
}
