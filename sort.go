package jagged

import "sort"

// groupRun is a contiguous index range within a non-decreasing parents
// vector, exactly the per-sublist runs local reduction also relies on.
type groupRun struct{ lo, hi int }

// groupRuns splits a non-decreasing parents vector into its contiguous
// per-group index ranges, including a zero-width run for any group that
// owns no elements.
func groupRuns(parents []int64, outlength int) []groupRun {
	runs := make([]groupRun, outlength)
	i := 0
	for g := 0; g < outlength; g++ {
		lo := i
		for i < len(parents) && parents[i] == int64(g) {
			i++
		}
		runs[g] = groupRun{lo: lo, hi: i}
	}
	return runs
}

// ArgsortLocal is the sort kernel behind SortNext and ArgsortNext:
// within each sublist (a contiguous run of a non-decreasing parents
// vector, exactly as local reduction groups elements) produce the
// permutation of positions that orders that sublist's values. Ties keep
// their original relative order when stable is set.
func ArgsortLocal[T Number](in []T, parents []int64, outlength int, ascending, stable bool) []int64 {
	order := make([]int64, len(in))
	for i := range order {
		order[i] = int64(i)
	}
	for _, run := range groupRuns(parents, outlength) {
		segment := order[run.lo:run.hi]
		less := func(i, j int) bool {
			a, b := in[segment[i]], in[segment[j]]
			if ascending {
				return a < b
			}
			return a > b
		}
		if stable {
			sort.SliceStable(segment, less)
		} else {
			sort.Slice(segment, less)
		}
	}
	return order
}

// argsortBuffer dispatches ArgsortLocal across every element type a
// Buffer can hold, the same tagged-dispatch-at-the-boundary pattern
// ApplyReducer uses for the reduction kernels.
func argsortBuffer(b *Buffer, parents []int64, outlength int, ascending, stable bool) ([]int64, error) {
	switch b.Type {
	case Bool:
		in := b.Bools()
		vals := make([]int8, len(in))
		for i, v := range in {
			if v {
				vals[i] = 1
			}
		}
		return ArgsortLocal(vals, parents, outlength, ascending, stable), nil
	case Int8:
		return ArgsortLocal(b.Int8s(), parents, outlength, ascending, stable), nil
	case Uint8:
		return ArgsortLocal(b.Uint8s(), parents, outlength, ascending, stable), nil
	case Int16:
		return ArgsortLocal(b.Int16s(), parents, outlength, ascending, stable), nil
	case Uint16:
		return ArgsortLocal(b.Uint16s(), parents, outlength, ascending, stable), nil
	case Int32:
		return ArgsortLocal(b.Int32s(), parents, outlength, ascending, stable), nil
	case Uint32:
		return ArgsortLocal(b.Uint32s(), parents, outlength, ascending, stable), nil
	case Int64:
		return ArgsortLocal(b.Int64s(), parents, outlength, ascending, stable), nil
	case Uint64:
		return ArgsortLocal(b.Uint64s(), parents, outlength, ascending, stable), nil
	case Float32:
		return ArgsortLocal(b.Float32s(), parents, outlength, ascending, stable), nil
	case Float64:
		return ArgsortLocal(b.Float64s(), parents, outlength, ascending, stable), nil
	default:
		return nil, newArgumentError("Argsort", "unsupported element type")
	}
}

// SortNext sorts at the list layer: each
// sublist's content is sorted independently and the result keeps the
// input's own (compacted) offsets, since sorting only reorders within a
// sublist and never changes sublist boundaries. offsets must already be
// zero-based over content's full length.
func SortNext(offsets []int64, content *Buffer, ascending, stable bool) (*ListArray, error) {
	parents := LocalNextParents(offsets)
	order, err := argsortBuffer(content, parents, len(offsets)-1, ascending, stable)
	if err != nil {
		return nil, err
	}
	return NewListArray(append([]int64(nil), offsets...), NewNumberContent(content.Carry(order))), nil
}

// ArgsortNext uses identical grouping
// to SortNext, but the wrapped content is the sorting permutation itself
// expressed in within-sublist positions, so each output sublist reads as
// "take the sublist's p-th element next". The flat permutation the
// kernel produced doubles as the carry that restores original order, so
// no separate inverse-permutation pass is needed here.
func ArgsortNext(offsets []int64, content *Buffer, ascending, stable bool) (*ListArray, error) {
	parents := LocalNextParents(offsets)
	order, err := argsortBuffer(content, parents, len(offsets)-1, ascending, stable)
	if err != nil {
		return nil, err
	}
	rel := make([]int64, len(order))
	for k, pos := range order {
		rel[k] = pos - offsets[parents[k]]
	}
	return NewListArray(append([]int64(nil), offsets...), NewNumberContent(NewInt64Buffer(rel))), nil
}
