package jagged

import "fmt"

// ElementType identifies the primitive type stored in a Buffer or carried
// through a reduction. A jagged array's content is always one of these
// eleven primitives; nesting is expressed entirely through offsets, never
// through the element type itself.
type ElementType uint8

const (
	Bool ElementType = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
)

// String returns the name of the element type.
func (e ElementType) String() string {
	switch e {
	case Bool:
		return "Bool"
	case Int8:
		return "Int8"
	case Uint8:
		return "Uint8"
	case Int16:
		return "Int16"
	case Uint16:
		return "Uint16"
	case Int32:
		return "Int32"
	case Uint32:
		return "Uint32"
	case Int64:
		return "Int64"
	case Uint64:
		return "Uint64"
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	default:
		return fmt.Sprintf("Unknown(%d)", e)
	}
}

// IsNumeric reports whether the type participates in arithmetic reductions
// (sum, prod, min, max, arg*). Bool is excluded: it reduces under the
// boolean OR/AND variants, not the arithmetic ones.
func (e ElementType) IsNumeric() bool {
	switch e {
	case Int8, Uint8, Int16, Uint16, Int32, Uint32, Int64, Uint64, Float32, Float64:
		return true
	default:
		return false
	}
}

// IsFloat reports whether the type is a floating point type.
func (e ElementType) IsFloat() bool {
	return e == Float32 || e == Float64
}

// IsInteger reports whether the type is an integer type.
func (e ElementType) IsInteger() bool {
	switch e {
	case Int8, Uint8, Int16, Uint16, Int32, Uint32, Int64, Uint64:
		return true
	default:
		return false
	}
}

// IsSigned reports whether the type is signed.
func (e ElementType) IsSigned() bool {
	switch e {
	case Int8, Int16, Int32, Int64, Float32, Float64:
		return true
	default:
		return false
	}
}

// Size returns the size in bytes of one element.
func (e ElementType) Size() int {
	switch e {
	case Bool, Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		return 0
	}
}

// IndexType identifies the integer width used by an Index (offsets,
// parents, carries). Three widths are supported at the representation
// boundary; orchestration canonicalizes everything to IndexType64 before
// recursing, which removes the width dimension from the rest of the
// algorithm.
type IndexType uint8

const (
	IndexType32 IndexType = iota
	IndexTypeU32
	IndexType64
)

// String returns the name of the index type.
func (t IndexType) String() string {
	switch t {
	case IndexType32:
		return "Int32"
	case IndexTypeU32:
		return "Uint32"
	case IndexType64:
		return "Int64"
	default:
		return fmt.Sprintf("Unknown(%d)", t)
	}
}
