package jagged

// MaxCountOffsetsCopy scans offsets for maxcount, the length of the
// longest sublist, and hands back a copy of offsets as the working
// buffer the rest of non-local preparation owns outright.
func MaxCountOffsetsCopy(offsets []int64) (maxcount int64, offsetscopy []int64) {
	offsetscopy = append([]int64(nil), offsets...)
	n := len(offsets) - 1
	for i := 0; i < n; i++ {
		if c := offsets[i+1] - offsets[i]; c > maxcount {
			maxcount = c
		}
	}
	return maxcount, offsetscopy
}

// PrepareNext builds the non-local carry. It visits content in an
// order that groups first by position-within-sublist (0, 1, 2, up to
// maxcount-1) and, within that, by outer parent. The latter falls out
// for free because `parents` arrives non-decreasing in sublist index by
// the orchestration's own contract, so a plain left-to-right scan over
// sublists already produces ascending-parent order inside each block.
//
// Output-group addressing is compacted: an outer group that owns zero
// sublists never occupies any of the maxcount-wide block that a naive
// `parent*maxcount+c` scheme would reserve for it, so nextparents ranges
// over only the non-empty groups. distincts stays densely addressed by
// the original (uncompacted) group index, since it exists purely to
// answer presence questions in OutStartsStops, not to size anything.
// distincts is caller-allocated scratch of length maxcount*outlength
// (allocation belongs to the orchestrator, not the kernel); on return
// it holds the flat index of each (group, slot) pair's first
// contributor, or -1 where no sublist of that group reaches that slot.
func PrepareNext(offsets, parents []int64, outlength int, maxcount int64, distincts []int64) (nextcarry, nextparents []int64, maxnextparents int64, err error) {
	n := len(offsets) - 1
	if n != len(parents) {
		return nil, nil, 0, newInvariantError("PrepareNext", "offsets.length-1 must equal parents.length", int64(len(parents)))
	}
	gaps := FindGaps(parents, outlength)
	for i := range distincts {
		distincts[i] = -1
	}
	maxnextparents = -1
	for c := int64(0); c < maxcount; c++ {
		for i := 0; i < n; i++ {
			lo, hi := offsets[i], offsets[i+1]
			if hi-lo <= c {
				continue
			}
			if parents[i] < 0 || int(parents[i]) >= outlength {
				return nil, nil, 0, newInvariantError("PrepareNext", "parent out of [0, outlength) range", int64(i))
			}
			flat := lo + c
			j := parents[i]
			if distincts[j*maxcount+c] == -1 {
				distincts[j*maxcount+c] = flat
			}
			compacted := j - gaps[j]
			p := compacted*maxcount + c
			nextcarry = append(nextcarry, flat)
			nextparents = append(nextparents, p)
			if p > maxnextparents {
				maxnextparents = p
			}
		}
	}
	return nextcarry, nextparents, maxnextparents, nil
}

// NextStarts derives the next level's starts: for each value p that
// appears in nextparents, nextstarts[p] is the position of its first
// occurrence. Values of p that never occur (there are none downstream of
// a group that was entirely compacted away) are left at the zero value;
// nothing downstream ever looks them up.
func NextStarts(nextparents []int64, maxnextparents int64) []int64 {
	nextstarts := make([]int64, maxnextparents+1)
	seen := make([]bool, maxnextparents+1)
	for k, p := range nextparents {
		if !seen[p] {
			nextstarts[p] = int64(k)
			seen[p] = true
		}
	}
	return nextstarts
}

// FindGaps counts, for each of the outlength
// outer groups, how many of the groups before it contributed zero
// sublists. gaps[j] is the amount group j's output position must shift
// down by once entirely-empty groups are compacted out.
func FindGaps(parents []int64, outlength int) []int64 {
	has := make([]bool, outlength)
	for _, p := range parents {
		has[p] = true
	}
	gaps := make([]int64, outlength)
	for j := 1; j < outlength; j++ {
		gaps[j] = gaps[j-1]
		if !has[j-1] {
			gaps[j]++
		}
	}
	return gaps
}

// OutStartsStops assembles the output intervals. distincts is addressed
// densely by the original group index (size maxcount*outlength); for
// each group j it scans the leading run of present slots (always a
// single run starting at c=0: any sublist contributing to group j with
// length L makes every c < L present) and places that run, compacted by
// gaps, into the reduced content's address space.
func OutStartsStops(distincts []int64, maxcount int64, outlength int, gaps []int64) (starts, stops []int64) {
	starts = make([]int64, outlength)
	stops = make([]int64, outlength)
	for j := 0; j < outlength; j++ {
		jj := int64(j)
		l := int64(0)
		for l < maxcount && distincts[jj*maxcount+l] != -1 {
			l++
		}
		base := (jj - gaps[j]) * maxcount
		starts[j] = base
		stops[j] = base + l
	}
	return starts, stops
}
