package jagged

import "fmt"

// Buffer is a contiguous, borrowed array of primitive values together with
// the element type tag that says which of its typed slices is populated.
// It is the thing Index views and list content are built from.
//
// Exactly one of the typed slices is non-nil, selected by Type. Accessors
// for the wrong type return nil.
type Buffer struct {
	Type ElementType

	bools []bool
	i8    []int8
	u8    []uint8
	i16   []int16
	u16   []uint16
	i32   []int32
	u32   []uint32
	i64   []int64
	u64   []uint64
	f32   []float32
	f64   []float64
}

// NewBoolBuffer wraps a []bool as a Buffer. The slice is borrowed, not copied.
func NewBoolBuffer(data []bool) *Buffer { return &Buffer{Type: Bool, bools: data} }

// NewInt8Buffer wraps a []int8 as a Buffer.
func NewInt8Buffer(data []int8) *Buffer { return &Buffer{Type: Int8, i8: data} }

// NewUint8Buffer wraps a []uint8 as a Buffer.
func NewUint8Buffer(data []uint8) *Buffer { return &Buffer{Type: Uint8, u8: data} }

// NewInt16Buffer wraps a []int16 as a Buffer.
func NewInt16Buffer(data []int16) *Buffer { return &Buffer{Type: Int16, i16: data} }

// NewUint16Buffer wraps a []uint16 as a Buffer.
func NewUint16Buffer(data []uint16) *Buffer { return &Buffer{Type: Uint16, u16: data} }

// NewInt32Buffer wraps a []int32 as a Buffer.
func NewInt32Buffer(data []int32) *Buffer { return &Buffer{Type: Int32, i32: data} }

// NewUint32Buffer wraps a []uint32 as a Buffer.
func NewUint32Buffer(data []uint32) *Buffer { return &Buffer{Type: Uint32, u32: data} }

// NewInt64Buffer wraps a []int64 as a Buffer.
func NewInt64Buffer(data []int64) *Buffer { return &Buffer{Type: Int64, i64: data} }

// NewUint64Buffer wraps a []uint64 as a Buffer.
func NewUint64Buffer(data []uint64) *Buffer { return &Buffer{Type: Uint64, u64: data} }

// NewFloat32Buffer wraps a []float32 as a Buffer.
func NewFloat32Buffer(data []float32) *Buffer { return &Buffer{Type: Float32, f32: data} }

// NewFloat64Buffer wraps a []float64 as a Buffer.
func NewFloat64Buffer(data []float64) *Buffer { return &Buffer{Type: Float64, f64: data} }

// Len returns the number of elements in the buffer.
func (b *Buffer) Len() int {
	switch b.Type {
	case Bool:
		return len(b.bools)
	case Int8:
		return len(b.i8)
	case Uint8:
		return len(b.u8)
	case Int16:
		return len(b.i16)
	case Uint16:
		return len(b.u16)
	case Int32:
		return len(b.i32)
	case Uint32:
		return len(b.u32)
	case Int64:
		return len(b.i64)
	case Uint64:
		return len(b.u64)
	case Float32:
		return len(b.f32)
	case Float64:
		return len(b.f64)
	default:
		return 0
	}
}

// Bools returns the underlying []bool, or nil if Type != Bool.
func (b *Buffer) Bools() []bool {
	if b.Type != Bool {
		return nil
	}
	return b.bools
}

// Int8s returns the underlying []int8, or nil if Type != Int8.
func (b *Buffer) Int8s() []int8 {
	if b.Type != Int8 {
		return nil
	}
	return b.i8
}

// Uint8s returns the underlying []uint8, or nil if Type != Uint8.
func (b *Buffer) Uint8s() []uint8 {
	if b.Type != Uint8 {
		return nil
	}
	return b.u8
}

// Int16s returns the underlying []int16, or nil if Type != Int16.
func (b *Buffer) Int16s() []int16 {
	if b.Type != Int16 {
		return nil
	}
	return b.i16
}

// Uint16s returns the underlying []uint16, or nil if Type != Uint16.
func (b *Buffer) Uint16s() []uint16 {
	if b.Type != Uint16 {
		return nil
	}
	return b.u16
}

// Int32s returns the underlying []int32, or nil if Type != Int32.
func (b *Buffer) Int32s() []int32 {
	if b.Type != Int32 {
		return nil
	}
	return b.i32
}

// Uint32s returns the underlying []uint32, or nil if Type != Uint32.
func (b *Buffer) Uint32s() []uint32 {
	if b.Type != Uint32 {
		return nil
	}
	return b.u32
}

// Int64s returns the underlying []int64, or nil if Type != Int64.
func (b *Buffer) Int64s() []int64 {
	if b.Type != Int64 {
		return nil
	}
	return b.i64
}

// Uint64s returns the underlying []uint64, or nil if Type != Uint64.
func (b *Buffer) Uint64s() []uint64 {
	if b.Type != Uint64 {
		return nil
	}
	return b.u64
}

// Float32s returns the underlying []float32, or nil if Type != Float32.
func (b *Buffer) Float32s() []float32 {
	if b.Type != Float32 {
		return nil
	}
	return b.f32
}

// Float64s returns the underlying []float64, or nil if Type != Float64.
func (b *Buffer) Float64s() []float64 {
	if b.Type != Float64 {
		return nil
	}
	return b.f64
}

// Slice returns the sub-range [lo, hi) of the buffer as a new Buffer that
// shares the same backing array: a borrow, not a copy.
func (b *Buffer) Slice(lo, hi int) *Buffer {
	switch b.Type {
	case Bool:
		return NewBoolBuffer(b.bools[lo:hi])
	case Int8:
		return NewInt8Buffer(b.i8[lo:hi])
	case Uint8:
		return NewUint8Buffer(b.u8[lo:hi])
	case Int16:
		return NewInt16Buffer(b.i16[lo:hi])
	case Uint16:
		return NewUint16Buffer(b.u16[lo:hi])
	case Int32:
		return NewInt32Buffer(b.i32[lo:hi])
	case Uint32:
		return NewUint32Buffer(b.u32[lo:hi])
	case Int64:
		return NewInt64Buffer(b.i64[lo:hi])
	case Uint64:
		return NewUint64Buffer(b.u64[lo:hi])
	case Float32:
		return NewFloat32Buffer(b.f32[lo:hi])
	case Float64:
		return NewFloat64Buffer(b.f64[lo:hi])
	default:
		return &Buffer{Type: b.Type}
	}
}

// Carry selects elements of the buffer by a length-k index, producing a new
// buffer of length k. This is the Buffer-level primitive behind
// Content.Carry.
func (b *Buffer) Carry(index []int64) *Buffer {
	switch b.Type {
	case Bool:
		out := make([]bool, len(index))
		for i, idx := range index {
			out[i] = b.bools[idx]
		}
		return NewBoolBuffer(out)
	case Int8:
		out := make([]int8, len(index))
		for i, idx := range index {
			out[i] = b.i8[idx]
		}
		return NewInt8Buffer(out)
	case Uint8:
		out := make([]uint8, len(index))
		for i, idx := range index {
			out[i] = b.u8[idx]
		}
		return NewUint8Buffer(out)
	case Int16:
		out := make([]int16, len(index))
		for i, idx := range index {
			out[i] = b.i16[idx]
		}
		return NewInt16Buffer(out)
	case Uint16:
		out := make([]uint16, len(index))
		for i, idx := range index {
			out[i] = b.u16[idx]
		}
		return NewUint16Buffer(out)
	case Int32:
		out := make([]int32, len(index))
		for i, idx := range index {
			out[i] = b.i32[idx]
		}
		return NewInt32Buffer(out)
	case Uint32:
		out := make([]uint32, len(index))
		for i, idx := range index {
			out[i] = b.u32[idx]
		}
		return NewUint32Buffer(out)
	case Int64:
		out := make([]int64, len(index))
		for i, idx := range index {
			out[i] = b.i64[idx]
		}
		return NewInt64Buffer(out)
	case Uint64:
		out := make([]uint64, len(index))
		for i, idx := range index {
			out[i] = b.u64[idx]
		}
		return NewUint64Buffer(out)
	case Float32:
		out := make([]float32, len(index))
		for i, idx := range index {
			out[i] = b.f32[idx]
		}
		return NewFloat32Buffer(out)
	case Float64:
		out := make([]float64, len(index))
		for i, idx := range index {
			out[i] = b.f64[idx]
		}
		return NewFloat64Buffer(out)
	default:
		return &Buffer{Type: b.Type}
	}
}

// String returns a short diagnostic representation.
func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer(%s, len=%d)", b.Type, b.Len())
}
