package jagged

// Integer is the type set of all integer element kinds the engine stores.
type Integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// Float is the type set of the two floating point element kinds.
type Float interface {
	~float32 | ~float64
}

// Number is every arithmetic element kind (everything but Bool).
type Number interface {
	Integer | Float
}
