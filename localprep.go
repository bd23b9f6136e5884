package jagged

// LocalNextParents produces, from an offsets array of length N+1
// (possibly not starting at zero), a parents vector of length
// offsets[N]-offsets[0] such that every element of sublist i (i.e.
// every content position in [offsets[i], offsets[i+1])) receives parent
// i. This is the preparation step for a *local* reduction: the one that
// targets an axis strictly inside the current list level and so
// preserves the outer list structure.
func LocalNextParents(offsets []int64) []int64 {
	n := len(offsets) - 1
	if n <= 0 {
		return nil
	}
	base := offsets[0]
	out := make([]int64, offsets[n]-base)
	for i := 0; i < n; i++ {
		lo, hi := offsets[i]-base, offsets[i+1]-base
		for k := lo; k < hi; k++ {
			out[k] = int64(i)
		}
	}
	return out
}

// LocalOutOffsets rebuilds an offsets array (length outlength+1) from
// the per-group counts of a non-decreasing parents vector.
func LocalOutOffsets(parents []int64, outlength int) ([]int64, error) {
	out := make([]int64, outlength+1)
	for i, p := range parents {
		if i > 0 && parents[i-1] > p {
			return nil, newInvariantError("LocalOutOffsets", "parents must be non-decreasing", int64(i))
		}
		if p < 0 || int(p) >= outlength {
			return nil, newInvariantError("LocalOutOffsets", "parent out of [0, outlength) range", int64(i))
		}
		out[p+1]++
	}
	for i := 0; i < outlength; i++ {
		out[i+1] += out[i]
	}
	return out, nil
}

// MakeStarts builds the starts vector for a list level: starts[i] is
// simply offsets[i], the position in pre-reduction space of sublist i's
// first element.
func MakeStarts(offsets []int64) []int64 {
	if len(offsets) == 0 {
		return nil
	}
	return append([]int64(nil), offsets[:len(offsets)-1]...)
}
