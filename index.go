package jagged

// Index is a `(buffer, offset, length)` view: a window onto a borrowed
// integer buffer of one of the three supported widths, interpreted with
// bounds `[0, length)` relative to offset. It backs offsets arrays,
// parents vectors, starts vectors, and carries.
//
// Exactly one of the typed slices is populated, selected by Type.
type Index struct {
	Type   IndexType
	Offset int
	Length int

	i32 []int32
	u32 []uint32
	i64 []int64
}

// NewIndex32 builds an Index over a borrowed []int32.
func NewIndex32(data []int32) Index {
	return Index{Type: IndexType32, Offset: 0, Length: len(data), i32: data}
}

// NewIndexU32 builds an Index over a borrowed []uint32.
func NewIndexU32(data []uint32) Index {
	return Index{Type: IndexTypeU32, Offset: 0, Length: len(data), u32: data}
}

// NewIndex64 builds an Index over a borrowed []int64.
func NewIndex64(data []int64) Index {
	return Index{Type: IndexType64, Offset: 0, Length: len(data), i64: data}
}

// Get returns the value at position i (relative to Offset), widened to
// int64. The implementation never reads outside [Offset, Offset+Length).
func (idx Index) Get(i int) int64 {
	if i < 0 || i >= idx.Length {
		panic(newRangeError("Index", "position out of window bounds", int64(i)))
	}
	pos := idx.Offset + i
	switch idx.Type {
	case IndexType32:
		return int64(idx.i32[pos])
	case IndexTypeU32:
		return int64(idx.u32[pos])
	default:
		return idx.i64[pos]
	}
}

// Len returns the length of the window.
func (idx Index) Len() int { return idx.Length }

// Slice returns the sub-window [lo, hi) of the index, relative to the
// current window.
func (idx Index) Slice(lo, hi int) Index {
	if lo < 0 || hi > idx.Length || lo > hi {
		panic(newRangeError("Index", "slice out of window bounds", int64(lo)))
	}
	out := idx
	out.Offset = idx.Offset + lo
	out.Length = hi - lo
	return out
}

// ToInt64Slice materializes the window as a plain []int64. This is the
// canonicalization step every non-i64 Index goes through before it
// reaches orchestration.
func (idx Index) ToInt64Slice() []int64 {
	out := make([]int64, idx.Length)
	switch idx.Type {
	case IndexType32:
		src := idx.i32[idx.Offset : idx.Offset+idx.Length]
		for i, v := range src {
			out[i] = int64(v)
		}
	case IndexTypeU32:
		src := idx.u32[idx.Offset : idx.Offset+idx.Length]
		for i, v := range src {
			out[i] = int64(v)
		}
	default:
		copy(out, idx.i64[idx.Offset:idx.Offset+idx.Length])
	}
	return out
}
