package jagged

import "math"

// ReduceArgMin and ReduceArgMax report, per output group, the position
// of the group's minimum/maximum element, with ties broken to the
// smallest position. Groups that receive no contributions keep the -1
// sentinel.
//
// positions[k] names the position in[k]/parents[k] refer to, in
// whatever space the caller wants positions reported in: the list layer
// derives it from starts, so for a local reduction it is an absolute
// content index and for a non-local reduction an index in the carried
// slot space. Taking positions explicitly lets one kernel serve both
// paths, and the output always satisfies
// starts[j] <= r[j] < starts[j]+group_len(j) with no separate
// re-globalizing pass.
func ReduceArgMin[T Integer](in []T, positions []int64, parents []int64, outlength int) []int64 {
	out := make([]int64, outlength)
	for i := range out {
		out[i] = -1
	}
	best := make([]T, outlength)
	for k, v := range in {
		p := parents[k]
		if out[p] == -1 {
			out[p] = positions[k]
			best[p] = v
			continue
		}
		if v < best[p] || (v == best[p] && positions[k] < out[p]) {
			out[p] = positions[k]
			best[p] = v
		}
	}
	return out
}

// ReduceArgMax is ReduceArgMin's maximizing counterpart.
func ReduceArgMax[T Integer](in []T, positions []int64, parents []int64, outlength int) []int64 {
	out := make([]int64, outlength)
	for i := range out {
		out[i] = -1
	}
	best := make([]T, outlength)
	for k, v := range in {
		p := parents[k]
		if out[p] == -1 {
			out[p] = positions[k]
			best[p] = v
			continue
		}
		if v > best[p] || (v == best[p] && positions[k] < out[p]) {
			out[p] = positions[k]
			best[p] = v
		}
	}
	return out
}

// betterMin/betterMax apply the "NaN never wins" rule to decide whether
// candidate v should replace the current best at a group: NaN never beats
// a real value, and among two reals the usual comparison applies.
func betterMin(best, v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	if math.IsNaN(best) {
		return true
	}
	return v < best
}

func betterMax(best, v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	if math.IsNaN(best) {
		return true
	}
	return v > best
}

// ReduceArgMinFloat64 is ReduceArgMin for float64 input, honoring the
// NaN-never-wins rule. A group that receives at least
// one element always gets a real position, even if every element in it is
// NaN (the earliest such position); only a group that receives no elements
// at all keeps the -1 "empty group" sentinel.
func ReduceArgMinFloat64(in []float64, positions []int64, parents []int64, outlength int) []int64 {
	out := make([]int64, outlength)
	for i := range out {
		out[i] = -1
	}
	seen := make([]bool, outlength)
	best := make([]float64, outlength)
	for k, v := range in {
		p := parents[k]
		if !seen[p] {
			seen[p] = true
			out[p] = positions[k]
			best[p] = v
			continue
		}
		if betterMin(best[p], v) || (v == best[p] && positions[k] < out[p]) {
			out[p] = positions[k]
			best[p] = v
		}
	}
	return out
}

// ReduceArgMaxFloat64 is ReduceArgMax for float64 input.
func ReduceArgMaxFloat64(in []float64, positions []int64, parents []int64, outlength int) []int64 {
	out := make([]int64, outlength)
	for i := range out {
		out[i] = -1
	}
	seen := make([]bool, outlength)
	best := make([]float64, outlength)
	for k, v := range in {
		p := parents[k]
		if !seen[p] {
			seen[p] = true
			out[p] = positions[k]
			best[p] = v
			continue
		}
		if betterMax(best[p], v) || (v == best[p] && positions[k] < out[p]) {
			out[p] = positions[k]
			best[p] = v
		}
	}
	return out
}

// ReduceArgMinFloat32 is ReduceArgMin for float32 input.
func ReduceArgMinFloat32(in []float32, positions []int64, parents []int64, outlength int) []int64 {
	widened := make([]float64, len(in))
	for i, v := range in {
		widened[i] = float64(v)
	}
	return ReduceArgMinFloat64(widened, positions, parents, outlength)
}

// ReduceArgMaxFloat32 is ReduceArgMax for float32 input.
func ReduceArgMaxFloat32(in []float32, positions []int64, parents []int64, outlength int) []int64 {
	widened := make([]float64, len(in))
	for i, v := range in {
		widened[i] = float64(v)
	}
	return ReduceArgMaxFloat64(widened, positions, parents, outlength)
}
