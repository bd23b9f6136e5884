package jagged

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// ============================================================================
// Arrow Export
// ============================================================================

// elementTypeToArrow converts an ElementType to an Arrow DataType
func elementTypeToArrow(e ElementType) (arrow.DataType, error) {
	switch e {
	case Bool:
		return arrow.FixedWidthTypes.Boolean, nil
	case Int8:
		return arrow.PrimitiveTypes.Int8, nil
	case Uint8:
		return arrow.PrimitiveTypes.Uint8, nil
	case Int16:
		return arrow.PrimitiveTypes.Int16, nil
	case Uint16:
		return arrow.PrimitiveTypes.Uint16, nil
	case Int32:
		return arrow.PrimitiveTypes.Int32, nil
	case Uint32:
		return arrow.PrimitiveTypes.Uint32, nil
	case Int64:
		return arrow.PrimitiveTypes.Int64, nil
	case Uint64:
		return arrow.PrimitiveTypes.Uint64, nil
	case Float32:
		return arrow.PrimitiveTypes.Float32, nil
	case Float64:
		return arrow.PrimitiveTypes.Float64, nil
	default:
		return nil, fmt.Errorf("unsupported element type: %s", e)
	}
}

// BufferToArrow exports a flat value buffer as an Arrow Array.
// The caller is responsible for calling Release() on the returned Array.
func BufferToArrow(b *Buffer, mem memory.Allocator) (arrow.Array, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}

	switch b.Type {
	case Bool:
		builder := array.NewBooleanBuilder(mem)
		defer builder.Release()
		for _, v := range b.Bools() {
			builder.Append(v)
		}
		return builder.NewArray(), nil

	case Int8:
		builder := array.NewInt8Builder(mem)
		defer builder.Release()
		builder.AppendValues(b.Int8s(), nil)
		return builder.NewArray(), nil

	case Uint8:
		builder := array.NewUint8Builder(mem)
		defer builder.Release()
		builder.AppendValues(b.Uint8s(), nil)
		return builder.NewArray(), nil

	case Int16:
		builder := array.NewInt16Builder(mem)
		defer builder.Release()
		builder.AppendValues(b.Int16s(), nil)
		return builder.NewArray(), nil

	case Uint16:
		builder := array.NewUint16Builder(mem)
		defer builder.Release()
		builder.AppendValues(b.Uint16s(), nil)
		return builder.NewArray(), nil

	case Int32:
		builder := array.NewInt32Builder(mem)
		defer builder.Release()
		builder.AppendValues(b.Int32s(), nil)
		return builder.NewArray(), nil

	case Uint32:
		builder := array.NewUint32Builder(mem)
		defer builder.Release()
		builder.AppendValues(b.Uint32s(), nil)
		return builder.NewArray(), nil

	case Int64:
		builder := array.NewInt64Builder(mem)
		defer builder.Release()
		builder.AppendValues(b.Int64s(), nil)
		return builder.NewArray(), nil

	case Uint64:
		builder := array.NewUint64Builder(mem)
		defer builder.Release()
		builder.AppendValues(b.Uint64s(), nil)
		return builder.NewArray(), nil

	case Float32:
		builder := array.NewFloat32Builder(mem)
		defer builder.Release()
		builder.AppendValues(b.Float32s(), nil)
		return builder.NewArray(), nil

	case Float64:
		builder := array.NewFloat64Builder(mem)
		defer builder.Release()
		builder.AppendValues(b.Float64s(), nil)
		return builder.NewArray(), nil

	default:
		return nil, fmt.Errorf("unsupported element type for Arrow export: %s", b.Type)
	}
}

// ToArrow exports a one-level jagged layer as an Arrow LargeList (64-bit
// offsets, matching the engine's canonical form). The caller is
// responsible for calling Release() on the returned Array.
func (l *ListArray) ToArrow(mem memory.Allocator) (arrow.Array, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}

	num, ok := l.Content.(*NumberContent)
	if !ok {
		return nil, fmt.Errorf("arrow export supports one list level over a value buffer")
	}
	dt, err := elementTypeToArrow(num.Buffer.Type)
	if err != nil {
		return nil, err
	}

	builder := array.NewLargeListBuilder(mem, dt)
	defer builder.Release()
	values := builder.ValueBuilder()

	for i := 0; i < len(l.Offsets)-1; i++ {
		builder.Append(true)
		for p := l.Offsets[i]; p < l.Offsets[i+1]; p++ {
			if err := appendBufferValue(values, num.Buffer, int(p)); err != nil {
				return nil, err
			}
		}
	}
	return builder.NewArray(), nil
}

// appendBufferValue appends one buffer element to the matching concrete
// Arrow builder.
func appendBufferValue(b array.Builder, buf *Buffer, i int) error {
	switch buf.Type {
	case Bool:
		b.(*array.BooleanBuilder).Append(buf.Bools()[i])
	case Int8:
		b.(*array.Int8Builder).Append(buf.Int8s()[i])
	case Uint8:
		b.(*array.Uint8Builder).Append(buf.Uint8s()[i])
	case Int16:
		b.(*array.Int16Builder).Append(buf.Int16s()[i])
	case Uint16:
		b.(*array.Uint16Builder).Append(buf.Uint16s()[i])
	case Int32:
		b.(*array.Int32Builder).Append(buf.Int32s()[i])
	case Uint32:
		b.(*array.Uint32Builder).Append(buf.Uint32s()[i])
	case Int64:
		b.(*array.Int64Builder).Append(buf.Int64s()[i])
	case Uint64:
		b.(*array.Uint64Builder).Append(buf.Uint64s()[i])
	case Float32:
		b.(*array.Float32Builder).Append(buf.Float32s()[i])
	case Float64:
		b.(*array.Float64Builder).Append(buf.Float64s()[i])
	default:
		return fmt.Errorf("unsupported element type for Arrow export: %s", buf.Type)
	}
	return nil
}

// ============================================================================
// Arrow Import
// ============================================================================

// BufferFromArrow imports an Arrow Array of a supported primitive type
// into a fresh value buffer. Validity bitmaps are not carried: a caller
// holding nullable data wraps the result in an option layer itself.
func BufferFromArrow(arr arrow.Array) (*Buffer, error) {
	switch a := arr.(type) {
	case *array.Boolean:
		data := make([]bool, a.Len())
		for i := range data {
			data[i] = a.Value(i)
		}
		return NewBoolBuffer(data), nil

	case *array.Int8:
		data := make([]int8, a.Len())
		copy(data, a.Int8Values())
		return NewInt8Buffer(data), nil

	case *array.Uint8:
		data := make([]uint8, a.Len())
		copy(data, a.Uint8Values())
		return NewUint8Buffer(data), nil

	case *array.Int16:
		data := make([]int16, a.Len())
		copy(data, a.Int16Values())
		return NewInt16Buffer(data), nil

	case *array.Uint16:
		data := make([]uint16, a.Len())
		copy(data, a.Uint16Values())
		return NewUint16Buffer(data), nil

	case *array.Int32:
		data := make([]int32, a.Len())
		copy(data, a.Int32Values())
		return NewInt32Buffer(data), nil

	case *array.Uint32:
		data := make([]uint32, a.Len())
		copy(data, a.Uint32Values())
		return NewUint32Buffer(data), nil

	case *array.Int64:
		data := make([]int64, a.Len())
		copy(data, a.Int64Values())
		return NewInt64Buffer(data), nil

	case *array.Uint64:
		data := make([]uint64, a.Len())
		copy(data, a.Uint64Values())
		return NewUint64Buffer(data), nil

	case *array.Float32:
		data := make([]float32, a.Len())
		copy(data, a.Float32Values())
		return NewFloat32Buffer(data), nil

	case *array.Float64:
		data := make([]float64, a.Len())
		copy(data, a.Float64Values())
		return NewFloat64Buffer(data), nil

	default:
		return nil, fmt.Errorf("unsupported Arrow type for import: %s", arr.DataType())
	}
}

// ListArrayFromArrow imports an Arrow List or LargeList into a jagged
// layer. 32-bit list offsets canonicalize to i64 on the way in.
func ListArrayFromArrow(arr arrow.Array) (*ListArray, error) {
	switch a := arr.(type) {
	case *array.List:
		off32 := a.Offsets()
		offsets := make([]int64, len(off32))
		for i, v := range off32 {
			offsets[i] = int64(v)
		}
		values, err := BufferFromArrow(a.ListValues())
		if err != nil {
			return nil, err
		}
		return NewListArray(offsets, NewNumberContent(values)), nil

	case *array.LargeList:
		offsets := append([]int64(nil), a.Offsets()...)
		values, err := BufferFromArrow(a.ListValues())
		if err != nil {
			return nil, err
		}
		return NewListArray(offsets, NewNumberContent(values)), nil

	default:
		return nil, fmt.Errorf("unsupported Arrow type for list import: %s", arr.DataType())
	}
}
