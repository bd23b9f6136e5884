package jagged

// CompactOffsets rewrites an offsets array so it starts at zero:
// out[i] = offsets[i] - offsets[0]. It is idempotent: compacting an
// already-compact array returns the same values.
func CompactOffsets(offsets []int64) []int64 {
	if len(offsets) == 0 {
		return nil
	}
	base := offsets[0]
	out := make([]int64, len(offsets))
	for i, v := range offsets {
		out[i] = v - base
	}
	return out
}

// GlobalStartStop scans an offsets array of length N+1 and returns
// (offsets[0], offsets[N]): the absolute span of content the N sublists
// cover.
func GlobalStartStop(offsets []int64) (start, stop int64) {
	if len(offsets) == 0 {
		return 0, 0
	}
	return offsets[0], offsets[len(offsets)-1]
}

// ValidateOffsets checks the structural invariants of an offsets array
// of N+1 entries describing N sublists over content of the given
// length: non-decreasing, and offsets[N] within content bounds.
func ValidateOffsets(offsets []int64, contentLength int64) error {
	if len(offsets) < 1 {
		return newInvariantError("Offsets", "offsets must have at least one element", -1)
	}
	for i := 0; i < len(offsets)-1; i++ {
		if offsets[i] > offsets[i+1] {
			return newInvariantError("Offsets", "offsets must be non-decreasing", int64(i))
		}
	}
	if offsets[len(offsets)-1] > contentLength {
		return newInvariantError("Offsets", "offsets[N] exceeds content length", int64(len(offsets)-1))
	}
	return nil
}

// ToRegularArraySize reports whether every sublist described by offsets
// has the same length, and if so, what that common length is: the size
// check a jagged layer must pass before it can be reinterpreted as a
// fixed-width regular array.
func ToRegularArraySize(offsets []int64) (size int64, ok bool) {
	n := len(offsets) - 1
	if n <= 0 {
		return 0, true
	}
	size = offsets[1] - offsets[0]
	for i := 1; i < n; i++ {
		if offsets[i+1]-offsets[i] != size {
			return 0, false
		}
	}
	return size, true
}
