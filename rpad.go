package jagged

// RpadAxis1Length returns the total number of entries the padded option
// index will hold: per sublist, max(length, target), or exactly target
// when clipping.
func RpadAxis1Length(offsets []int64, target int64, clip bool) int64 {
	var total int64
	for i := 0; i < len(offsets)-1; i++ {
		length := offsets[i+1] - offsets[i]
		if clip {
			total += target
			continue
		}
		if length > target {
			total += length
		} else {
			total += target
		}
	}
	return total
}

// RpadAxis1 produces the option index that pads each sublist to at least
// target entries: original content positions first, then -1 sentinels up
// to target for sublists that fall short. Longer sublists keep all of
// their elements. outoffsets delimits the padded sublists.
func RpadAxis1(offsets []int64, target int64) (index, outoffsets []int64) {
	n := len(offsets) - 1
	index = make([]int64, 0, RpadAxis1Length(offsets, target, false))
	outoffsets = make([]int64, n+1)
	for i := 0; i < n; i++ {
		lo, hi := offsets[i], offsets[i+1]
		for p := lo; p < hi; p++ {
			index = append(index, p)
		}
		for c := hi - lo; c < target; c++ {
			index = append(index, -1)
		}
		outoffsets[i+1] = int64(len(index))
	}
	return index, outoffsets
}

// RpadAxis1AndClip is RpadAxis1 with every sublist forced to exactly
// target entries: shorter sublists pad with -1, longer ones truncate.
// The result is regular, so outoffsets steps uniformly by target.
func RpadAxis1AndClip(offsets []int64, target int64) (index, outoffsets []int64) {
	n := len(offsets) - 1
	index = make([]int64, 0, int64(n)*target)
	outoffsets = make([]int64, n+1)
	for i := 0; i < n; i++ {
		lo, hi := offsets[i], offsets[i+1]
		for c := int64(0); c < target; c++ {
			if lo+c < hi {
				index = append(index, lo+c)
			} else {
				index = append(index, -1)
			}
		}
		outoffsets[i+1] = int64(len(index))
	}
	return index, outoffsets
}

// Rpad wraps the padding kernels for a list layer: the result is a new
// list over an option layer into the original content, with -1 marking
// the padded-in missing entries.
func Rpad(l *ListArray, target int64, clip bool) (*ListArray, error) {
	if target < 0 {
		return nil, newArgumentError("Rpad", "target length must be non-negative")
	}
	var index, outoffsets []int64
	if clip {
		index, outoffsets = RpadAxis1AndClip(l.Offsets, target)
	} else {
		index, outoffsets = RpadAxis1(l.Offsets, target)
	}
	return NewListArray(outoffsets, NewIndexedArray(index, l.Content)), nil
}
