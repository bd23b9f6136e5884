package jagged

// ReducerKind enumerates the eight reduction operations the engine
// supports.
type ReducerKind uint8

const (
	Count ReducerKind = iota
	CountNonzero
	Sum
	Prod
	Min
	Max
	ArgMin
	ArgMax
)

func (k ReducerKind) String() string {
	switch k {
	case Count:
		return "count"
	case CountNonzero:
		return "count_nonzero"
	case Sum:
		return "sum"
	case Prod:
		return "prod"
	case Min:
		return "min"
	case Max:
		return "max"
	case ArgMin:
		return "argmin"
	case ArgMax:
		return "argmax"
	default:
		return "unknown"
	}
}

// Reducer describes a reduction operation to the orchestration layer:
// it knows which accumulator type it prefers for a given input type and
// which auxiliary inputs it consumes. The typed kernels in reduce_*.go
// are Reducer's concrete realizations; Reducer itself exists so
// orchestration code (list.go) can be written once against an interface
// instead of switching on ReducerKind everywhere.
type Reducer interface {
	Kind() ReducerKind
	// PreferredAccumulatorType returns the accumulator element type this
	// reducer uses for a given input element type.
	PreferredAccumulatorType(input ElementType) ElementType
	// NeedsStarts reports whether this reducer consumes the `starts`
	// vector (only argmin/argmax do, to report absolute positions).
	NeedsStarts() bool
	// IdentityOverride returns the caller-supplied identity element for
	// min/max, or nil to use the type's own extreme value. The override
	// rides on the Reducer so it survives the recursion unchanged.
	IdentityOverride() *Buffer
}

type baseReducer struct {
	kind     ReducerKind
	identity *Buffer
}

func (r baseReducer) Kind() ReducerKind { return r.kind }

func (r baseReducer) IdentityOverride() *Buffer { return r.identity }

func (r baseReducer) NeedsStarts() bool {
	return r.kind == ArgMin || r.kind == ArgMax
}

func (r baseReducer) PreferredAccumulatorType(input ElementType) ElementType {
	switch r.kind {
	case Count, CountNonzero, ArgMin, ArgMax:
		return Int64
	case Sum, Prod:
		return sumAccumulatorType(input)
	case Min, Max:
		return input
	default:
		return input
	}
}

// sumAccumulatorType selects the accumulator for sum/prod: integers
// widen to 64 bits preserving signedness, floats keep their own
// precision, and bool reduces to bool.
func sumAccumulatorType(input ElementType) ElementType {
	switch input {
	case Bool:
		return Bool
	case Int8, Int16, Int32, Int64:
		return Int64
	case Uint8, Uint16, Uint32, Uint64:
		return Uint64
	case Float32:
		return Float32
	case Float64:
		return Float64
	default:
		return input
	}
}

// NewReducer returns the Reducer for a given kind.
func NewReducer(kind ReducerKind) Reducer {
	return baseReducer{kind: kind}
}

// NewReducerWithIdentity returns a Min or Max reducer whose identity is the
// single element held by identity instead of the type's own extreme value.
func NewReducerWithIdentity(kind ReducerKind, identity *Buffer) Reducer {
	return baseReducer{kind: kind, identity: identity}
}
