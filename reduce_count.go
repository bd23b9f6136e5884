package jagged

// ReduceCount implements the `count` reducer: out[j] = |{k : parents[k] = j}|.
// It does not look at element values at all, so there is only ever one
// instantiation regardless of input element type; the accumulator is
// always i64.
func ReduceCount(parents []int64, outlength int) []int64 {
	out := make([]int64, outlength)
	for _, p := range parents {
		out[p]++
	}
	return out
}

// ReduceCountNonzero implements the `count_nonzero` reducer over a numeric
// input: out[j] = |{k : parents[k] = j, in[k] != 0}|.
func ReduceCountNonzero[T Number](in []T, parents []int64, outlength int) []int64 {
	out := make([]int64, outlength)
	for k, v := range in {
		if v != 0 {
			out[parents[k]]++
		}
	}
	return out
}

// ReduceCountNonzeroBool implements `count_nonzero` over a bool input:
// a `true` element counts as nonzero.
func ReduceCountNonzeroBool(in []bool, parents []int64, outlength int) []int64 {
	out := make([]int64, outlength)
	for k, v := range in {
		if v {
			out[parents[k]]++
		}
	}
	return out
}
