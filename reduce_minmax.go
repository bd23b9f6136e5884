package jagged

import "math"

// MinInto implements the `min` reducer over an integer input: identity is
// the supplied value, so a caller can seed empty groups with a sentinel of
// its own choosing instead of the type's maximum.
func MinInto[T Integer](in []T, parents []int64, outlength int, identity T) []T {
	out := make([]T, outlength)
	for i := range out {
		out[i] = identity
	}
	for k, v := range in {
		p := parents[k]
		if v < out[p] {
			out[p] = v
		}
	}
	return out
}

// MaxInto implements the `max` reducer over an integer input.
func MaxInto[T Integer](in []T, parents []int64, outlength int, identity T) []T {
	out := make([]T, outlength)
	for i := range out {
		out[i] = identity
	}
	for k, v := range in {
		p := parents[k]
		if v > out[p] {
			out[p] = v
		}
	}
	return out
}

// combineMin and combineMax implement the "NaN never wins" rule: any
// non-NaN value beats NaN, and two NaNs combine to NaN.
func combineMin(a, b float64) float64 {
	switch {
	case math.IsNaN(a) && math.IsNaN(b):
		return a
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	case b < a:
		return b
	default:
		return a
	}
}

func combineMax(a, b float64) float64 {
	switch {
	case math.IsNaN(a) && math.IsNaN(b):
		return a
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	case b > a:
		return b
	default:
		return a
	}
}

// MinFloat64 implements the `min` reducer over float64 input with the
// NaN-never-wins rule. identity defaults to +Inf when the caller passes
// no override; outlength groups that receive no contributions keep it,
// and a group whose contributions are all NaN yields NaN.
func MinFloat64(in []float64, parents []int64, outlength int, identity float64) []float64 {
	out := make([]float64, outlength)
	for i := range out {
		out[i] = identity
	}
	state := make([]int8, outlength) // 0 none, 1 only NaN, 2 some non-NaN
	for k, v := range in {
		p := parents[k]
		if !math.IsNaN(v) {
			state[p] = 2
		} else if state[p] == 0 {
			state[p] = 1
		}
		out[p] = combineMin(out[p], v)
	}
	for j, s := range state {
		if s == 1 {
			out[j] = math.NaN()
		}
	}
	return out
}

// MaxFloat64 implements the `max` reducer over float64 input.
func MaxFloat64(in []float64, parents []int64, outlength int, identity float64) []float64 {
	out := make([]float64, outlength)
	for i := range out {
		out[i] = identity
	}
	state := make([]int8, outlength) // 0 none, 1 only NaN, 2 some non-NaN
	for k, v := range in {
		p := parents[k]
		if !math.IsNaN(v) {
			state[p] = 2
		} else if state[p] == 0 {
			state[p] = 1
		}
		out[p] = combineMax(out[p], v)
	}
	for j, s := range state {
		if s == 1 {
			out[j] = math.NaN()
		}
	}
	return out
}

// MinFloat32 implements the `min` reducer over float32 input.
func MinFloat32(in []float32, parents []int64, outlength int, identity float32) []float32 {
	out := make([]float32, outlength)
	for i := range out {
		out[i] = identity
	}
	state := make([]int8, outlength) // 0 none, 1 only NaN, 2 some non-NaN
	for k, v := range in {
		p := parents[k]
		if !math.IsNaN(float64(v)) {
			state[p] = 2
		} else if state[p] == 0 {
			state[p] = 1
		}
		out[p] = float32(combineMin(float64(out[p]), float64(v)))
	}
	for j, s := range state {
		if s == 1 {
			out[j] = float32(math.NaN())
		}
	}
	return out
}

// MaxFloat32 implements the `max` reducer over float32 input.
func MaxFloat32(in []float32, parents []int64, outlength int, identity float32) []float32 {
	out := make([]float32, outlength)
	for i := range out {
		out[i] = identity
	}
	state := make([]int8, outlength) // 0 none, 1 only NaN, 2 some non-NaN
	for k, v := range in {
		p := parents[k]
		if !math.IsNaN(float64(v)) {
			state[p] = 2
		} else if state[p] == 0 {
			state[p] = 1
		}
		out[p] = float32(combineMax(float64(out[p]), float64(v)))
	}
	for j, s := range state {
		if s == 1 {
			out[j] = float32(math.NaN())
		}
	}
	return out
}
