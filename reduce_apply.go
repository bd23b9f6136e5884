package jagged

import "math"

// ApplyReducer is the Buffer-level dispatch boundary: it switches once
// on (kind, in.Type) and calls a monomorphic generic kernel from
// reduce_*.go, so element-type polymorphism never reaches an inner loop.
//
// positions is required (and used) only for ArgMin/ArgMax; parents must
// have length in.Len(). identity, when non-nil, overrides the reducer's
// default identity for Min/Max; it is ignored for every other kind.
func ApplyReducer(kind ReducerKind, in *Buffer, parents, positions []int64, outlength int, identity *Buffer) (*Buffer, error) {
	if len(parents) != in.Len() {
		return nil, newInvariantError("ApplyReducer", "parents length must equal input length", int64(len(parents)))
	}

	switch kind {
	case Count:
		return NewInt64Buffer(ReduceCount(parents, outlength)), nil
	case CountNonzero:
		return applyCountNonzero(in, parents, outlength)
	case Sum:
		return applySum(in, parents, outlength)
	case Prod:
		return applyProd(in, parents, outlength)
	case Min:
		return applyMin(in, parents, outlength, identity)
	case Max:
		return applyMax(in, parents, outlength, identity)
	case ArgMin:
		if positions == nil {
			return nil, newArgumentError("ApplyReducer", "argmin requires positions")
		}
		return applyArgMin(in, parents, positions, outlength)
	case ArgMax:
		if positions == nil {
			return nil, newArgumentError("ApplyReducer", "argmax requires positions")
		}
		return applyArgMax(in, parents, positions, outlength)
	default:
		return nil, newArgumentError("ApplyReducer", "unknown reducer kind")
	}
}

func applyCountNonzero(in *Buffer, parents []int64, outlength int) (*Buffer, error) {
	switch in.Type {
	case Bool:
		return NewInt64Buffer(ReduceCountNonzeroBool(in.Bools(), parents, outlength)), nil
	case Int8:
		return NewInt64Buffer(ReduceCountNonzero(in.Int8s(), parents, outlength)), nil
	case Uint8:
		return NewInt64Buffer(ReduceCountNonzero(in.Uint8s(), parents, outlength)), nil
	case Int16:
		return NewInt64Buffer(ReduceCountNonzero(in.Int16s(), parents, outlength)), nil
	case Uint16:
		return NewInt64Buffer(ReduceCountNonzero(in.Uint16s(), parents, outlength)), nil
	case Int32:
		return NewInt64Buffer(ReduceCountNonzero(in.Int32s(), parents, outlength)), nil
	case Uint32:
		return NewInt64Buffer(ReduceCountNonzero(in.Uint32s(), parents, outlength)), nil
	case Int64:
		return NewInt64Buffer(ReduceCountNonzero(in.Int64s(), parents, outlength)), nil
	case Uint64:
		return NewInt64Buffer(ReduceCountNonzero(in.Uint64s(), parents, outlength)), nil
	case Float32:
		return NewInt64Buffer(ReduceCountNonzero(in.Float32s(), parents, outlength)), nil
	case Float64:
		return NewInt64Buffer(ReduceCountNonzero(in.Float64s(), parents, outlength)), nil
	default:
		return nil, newArgumentError("ApplyReducer", "unsupported element type for count_nonzero")
	}
}

func applySum(in *Buffer, parents []int64, outlength int) (*Buffer, error) {
	switch in.Type {
	case Bool:
		return NewBoolBuffer(SumBool(in.Bools(), parents, outlength)), nil
	case Int8:
		return NewInt64Buffer(SumInto[int8, int64](in.Int8s(), parents, outlength)), nil
	case Uint8:
		return NewUint64Buffer(SumInto[uint8, uint64](in.Uint8s(), parents, outlength)), nil
	case Int16:
		return NewInt64Buffer(SumInto[int16, int64](in.Int16s(), parents, outlength)), nil
	case Uint16:
		return NewUint64Buffer(SumInto[uint16, uint64](in.Uint16s(), parents, outlength)), nil
	case Int32:
		return NewInt64Buffer(SumInto[int32, int64](in.Int32s(), parents, outlength)), nil
	case Uint32:
		return NewUint64Buffer(SumInto[uint32, uint64](in.Uint32s(), parents, outlength)), nil
	case Int64:
		return NewInt64Buffer(SumInto[int64, int64](in.Int64s(), parents, outlength)), nil
	case Uint64:
		return NewUint64Buffer(SumInto[uint64, uint64](in.Uint64s(), parents, outlength)), nil
	case Float32:
		return NewFloat32Buffer(SumInto[float32, float32](in.Float32s(), parents, outlength)), nil
	case Float64:
		return NewFloat64Buffer(SumInto[float64, float64](in.Float64s(), parents, outlength)), nil
	default:
		return nil, newArgumentError("ApplyReducer", "unsupported element type for sum")
	}
}

// SumNarrow is the narrow-accumulator variant of sum: it produces an
// Int32/Uint32 accumulator instead of the default 64-bit one, for
// callers who know their totals fit.
func SumNarrow(in *Buffer, parents []int64, outlength int) (*Buffer, error) {
	switch in.Type {
	case Int8:
		return NewInt32Buffer(SumInto[int8, int32](in.Int8s(), parents, outlength)), nil
	case Uint8:
		return NewUint32Buffer(SumInto[uint8, uint32](in.Uint8s(), parents, outlength)), nil
	case Int16:
		return NewInt32Buffer(SumInto[int16, int32](in.Int16s(), parents, outlength)), nil
	case Uint16:
		return NewUint32Buffer(SumInto[uint16, uint32](in.Uint16s(), parents, outlength)), nil
	case Int32:
		return NewInt32Buffer(SumInto[int32, int32](in.Int32s(), parents, outlength)), nil
	case Uint32:
		return NewUint32Buffer(SumInto[uint32, uint32](in.Uint32s(), parents, outlength)), nil
	default:
		return nil, newArgumentError("SumNarrow", "narrow accumulator only applies to 8/16/32-bit integers")
	}
}

func applyProd(in *Buffer, parents []int64, outlength int) (*Buffer, error) {
	switch in.Type {
	case Bool:
		return NewBoolBuffer(ProdBool(in.Bools(), parents, outlength)), nil
	case Int8:
		return NewInt64Buffer(ProdInto[int8, int64](in.Int8s(), parents, outlength)), nil
	case Uint8:
		return NewUint64Buffer(ProdInto[uint8, uint64](in.Uint8s(), parents, outlength)), nil
	case Int16:
		return NewInt64Buffer(ProdInto[int16, int64](in.Int16s(), parents, outlength)), nil
	case Uint16:
		return NewUint64Buffer(ProdInto[uint16, uint64](in.Uint16s(), parents, outlength)), nil
	case Int32:
		return NewInt64Buffer(ProdInto[int32, int64](in.Int32s(), parents, outlength)), nil
	case Uint32:
		return NewUint64Buffer(ProdInto[uint32, uint64](in.Uint32s(), parents, outlength)), nil
	case Int64:
		return NewInt64Buffer(ProdInto[int64, int64](in.Int64s(), parents, outlength)), nil
	case Uint64:
		return NewUint64Buffer(ProdInto[uint64, uint64](in.Uint64s(), parents, outlength)), nil
	case Float32:
		return NewFloat32Buffer(ProdInto[float32, float32](in.Float32s(), parents, outlength)), nil
	case Float64:
		return NewFloat64Buffer(ProdInto[float64, float64](in.Float64s(), parents, outlength)), nil
	default:
		return nil, newArgumentError("ApplyReducer", "unsupported element type for prod")
	}
}

func applyMin(in *Buffer, parents []int64, outlength int, identity *Buffer) (*Buffer, error) {
	switch in.Type {
	case Int8:
		id := int8(math.MaxInt8)
		if identity != nil {
			id = identity.Int8s()[0]
		}
		return NewInt8Buffer(MinInto(in.Int8s(), parents, outlength, id)), nil
	case Uint8:
		id := uint8(math.MaxUint8)
		if identity != nil {
			id = identity.Uint8s()[0]
		}
		return NewUint8Buffer(MinInto(in.Uint8s(), parents, outlength, id)), nil
	case Int16:
		id := int16(math.MaxInt16)
		if identity != nil {
			id = identity.Int16s()[0]
		}
		return NewInt16Buffer(MinInto(in.Int16s(), parents, outlength, id)), nil
	case Uint16:
		id := uint16(math.MaxUint16)
		if identity != nil {
			id = identity.Uint16s()[0]
		}
		return NewUint16Buffer(MinInto(in.Uint16s(), parents, outlength, id)), nil
	case Int32:
		id := int32(math.MaxInt32)
		if identity != nil {
			id = identity.Int32s()[0]
		}
		return NewInt32Buffer(MinInto(in.Int32s(), parents, outlength, id)), nil
	case Uint32:
		id := uint32(math.MaxUint32)
		if identity != nil {
			id = identity.Uint32s()[0]
		}
		return NewUint32Buffer(MinInto(in.Uint32s(), parents, outlength, id)), nil
	case Int64:
		id := int64(math.MaxInt64)
		if identity != nil {
			id = identity.Int64s()[0]
		}
		return NewInt64Buffer(MinInto(in.Int64s(), parents, outlength, id)), nil
	case Uint64:
		id := uint64(math.MaxUint64)
		if identity != nil {
			id = identity.Uint64s()[0]
		}
		return NewUint64Buffer(MinInto(in.Uint64s(), parents, outlength, id)), nil
	case Float32:
		id := float32(math.Inf(1))
		if identity != nil {
			id = identity.Float32s()[0]
		}
		return NewFloat32Buffer(MinFloat32(in.Float32s(), parents, outlength, id)), nil
	case Float64:
		id := math.Inf(1)
		if identity != nil {
			id = identity.Float64s()[0]
		}
		return NewFloat64Buffer(MinFloat64(in.Float64s(), parents, outlength, id)), nil
	default:
		return nil, newArgumentError("ApplyReducer", "unsupported element type for min")
	}
}

func applyMax(in *Buffer, parents []int64, outlength int, identity *Buffer) (*Buffer, error) {
	switch in.Type {
	case Int8:
		id := int8(math.MinInt8)
		if identity != nil {
			id = identity.Int8s()[0]
		}
		return NewInt8Buffer(MaxInto(in.Int8s(), parents, outlength, id)), nil
	case Uint8:
		id := uint8(0)
		if identity != nil {
			id = identity.Uint8s()[0]
		}
		return NewUint8Buffer(MaxInto(in.Uint8s(), parents, outlength, id)), nil
	case Int16:
		id := int16(math.MinInt16)
		if identity != nil {
			id = identity.Int16s()[0]
		}
		return NewInt16Buffer(MaxInto(in.Int16s(), parents, outlength, id)), nil
	case Uint16:
		id := uint16(0)
		if identity != nil {
			id = identity.Uint16s()[0]
		}
		return NewUint16Buffer(MaxInto(in.Uint16s(), parents, outlength, id)), nil
	case Int32:
		id := int32(math.MinInt32)
		if identity != nil {
			id = identity.Int32s()[0]
		}
		return NewInt32Buffer(MaxInto(in.Int32s(), parents, outlength, id)), nil
	case Uint32:
		id := uint32(0)
		if identity != nil {
			id = identity.Uint32s()[0]
		}
		return NewUint32Buffer(MaxInto(in.Uint32s(), parents, outlength, id)), nil
	case Int64:
		id := int64(math.MinInt64)
		if identity != nil {
			id = identity.Int64s()[0]
		}
		return NewInt64Buffer(MaxInto(in.Int64s(), parents, outlength, id)), nil
	case Uint64:
		id := uint64(0)
		if identity != nil {
			id = identity.Uint64s()[0]
		}
		return NewUint64Buffer(MaxInto(in.Uint64s(), parents, outlength, id)), nil
	case Float32:
		id := float32(math.Inf(-1))
		if identity != nil {
			id = identity.Float32s()[0]
		}
		return NewFloat32Buffer(MaxFloat32(in.Float32s(), parents, outlength, id)), nil
	case Float64:
		id := math.Inf(-1)
		if identity != nil {
			id = identity.Float64s()[0]
		}
		return NewFloat64Buffer(MaxFloat64(in.Float64s(), parents, outlength, id)), nil
	default:
		return nil, newArgumentError("ApplyReducer", "unsupported element type for max")
	}
}

func applyArgMin(in *Buffer, parents, positions []int64, outlength int) (*Buffer, error) {
	switch in.Type {
	case Int8:
		return NewInt64Buffer(ReduceArgMin(in.Int8s(), positions, parents, outlength)), nil
	case Uint8:
		return NewInt64Buffer(ReduceArgMin(in.Uint8s(), positions, parents, outlength)), nil
	case Int16:
		return NewInt64Buffer(ReduceArgMin(in.Int16s(), positions, parents, outlength)), nil
	case Uint16:
		return NewInt64Buffer(ReduceArgMin(in.Uint16s(), positions, parents, outlength)), nil
	case Int32:
		return NewInt64Buffer(ReduceArgMin(in.Int32s(), positions, parents, outlength)), nil
	case Uint32:
		return NewInt64Buffer(ReduceArgMin(in.Uint32s(), positions, parents, outlength)), nil
	case Int64:
		return NewInt64Buffer(ReduceArgMin(in.Int64s(), positions, parents, outlength)), nil
	case Uint64:
		return NewInt64Buffer(ReduceArgMin(in.Uint64s(), positions, parents, outlength)), nil
	case Float32:
		return NewInt64Buffer(ReduceArgMinFloat32(in.Float32s(), positions, parents, outlength)), nil
	case Float64:
		return NewInt64Buffer(ReduceArgMinFloat64(in.Float64s(), positions, parents, outlength)), nil
	default:
		return nil, newArgumentError("ApplyReducer", "unsupported element type for argmin")
	}
}

func applyArgMax(in *Buffer, parents, positions []int64, outlength int) (*Buffer, error) {
	switch in.Type {
	case Int8:
		return NewInt64Buffer(ReduceArgMax(in.Int8s(), positions, parents, outlength)), nil
	case Uint8:
		return NewInt64Buffer(ReduceArgMax(in.Uint8s(), positions, parents, outlength)), nil
	case Int16:
		return NewInt64Buffer(ReduceArgMax(in.Int16s(), positions, parents, outlength)), nil
	case Uint16:
		return NewInt64Buffer(ReduceArgMax(in.Uint16s(), positions, parents, outlength)), nil
	case Int32:
		return NewInt64Buffer(ReduceArgMax(in.Int32s(), positions, parents, outlength)), nil
	case Uint32:
		return NewInt64Buffer(ReduceArgMax(in.Uint32s(), positions, parents, outlength)), nil
	case Int64:
		return NewInt64Buffer(ReduceArgMax(in.Int64s(), positions, parents, outlength)), nil
	case Uint64:
		return NewInt64Buffer(ReduceArgMax(in.Uint64s(), positions, parents, outlength)), nil
	case Float32:
		return NewInt64Buffer(ReduceArgMaxFloat32(in.Float32s(), positions, parents, outlength)), nil
	case Float64:
		return NewInt64Buffer(ReduceArgMaxFloat64(in.Float64s(), positions, parents, outlength)), nil
	default:
		return nil, newArgumentError("ApplyReducer", "unsupported element type for argmax")
	}
}
