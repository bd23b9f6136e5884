package jagged

import "math"

const maxInt64 = math.MaxInt64

// ListArray is the jagged container: N sublists delimited by an
// i64-canonical offsets array of length N+1 over a shared Content. Any
// caller holding 32-bit or unsigned offsets is expected to canonicalize
// through an Index before reaching this type; ListArray only ever
// stores the canonical form, so the conversion happens once at
// construction instead of being rechecked on every recursive call.
type ListArray struct {
	Offsets []int64
	Content Content
}

// NewListArray builds a ListArray directly from i64 offsets.
func NewListArray(offsets []int64, content Content) *ListArray {
	return &ListArray{Offsets: offsets, Content: content}
}

// NewListArrayFromIndex canonicalizes a non-i64 offsets Index (32-bit,
// unsigned, or already i64) into a ListArray.
func NewListArrayFromIndex(offsets Index, content Content) *ListArray {
	return &ListArray{Offsets: offsets.ToInt64Slice(), Content: content}
}

func (l *ListArray) Length() int64 {
	return int64(len(l.Offsets) - 1)
}

func (l *ListArray) PurelistDepth() int64 {
	return l.Content.PurelistDepth() + 1
}

func (l *ListArray) BranchDepth() (bool, int64) {
	branches, depth := l.Content.BranchDepth()
	return branches, depth + 1
}

// Carry gathers whole sublists by index: out.Offsets is rebuilt from
// each selected sublist's length, and out.Content is the concatenation
// of the corresponding content ranges, carried through a flat index into
// the shared content buffer.
func (l *ListArray) Carry(index []int64) Content {
	offsets := make([]int64, len(index)+1)
	var flat []int64
	for i, row := range index {
		lo, hi := l.Offsets[row], l.Offsets[row+1]
		offsets[i+1] = offsets[i] + (hi - lo)
		for p := lo; p < hi; p++ {
			flat = append(flat, p)
		}
	}
	return &ListArray{Offsets: offsets, Content: l.Content.Carry(flat)}
}

func (l *ListArray) GetItemRangeNowrap(lo, hi int64) Content {
	offsets := append([]int64(nil), l.Offsets[lo:hi+1]...)
	return &ListArray{Offsets: offsets, Content: l.Content}
}

// ReduceNext decides, from this level's branch depth versus the target
// negaxis, whether this list IS the reduction's target axis (non-local
// path: collapse sublists grouped by outer parent) or whether the
// target lies further inside the content (local path: reduce each
// sublist independently), then recurses accordingly.
func (l *ListArray) ReduceNext(reducer Reducer, negaxis int64, starts, parents []int64, outlength int, mask, keepdims bool) (Content, error) {
	branches, depth := l.BranchDepth()
	if !branches && negaxis == depth {
		return l.reduceNonLocal(reducer, negaxis, parents, outlength, mask, keepdims)
	}
	return l.reduceLocal(reducer, negaxis, parents, outlength, mask, keepdims)
}

// reduceLocal handles the inner-axis case: the target axis lies
// somewhere inside Content, so each sublist reduces independently and
// this level's own structure survives. nextparents groups content
// elements by the sublist that owns them; the incoming parents, which
// group this level's sublists into the caller's outlength output rows,
// only resurface at the end, when the reduced content is wrapped back
// up.
func (l *ListArray) reduceLocal(reducer Reducer, negaxis int64, parents []int64, outlength int, mask, keepdims bool) (Content, error) {
	n := l.Length()
	globalstart, globalstop := GlobalStartStop(l.Offsets)
	trimmed := l.Content.GetItemRangeNowrap(globalstart, globalstop)
	nextparents := LocalNextParents(l.Offsets)
	starts := MakeStarts(l.Offsets)

	outcontent, err := trimmed.ReduceNext(reducer, negaxis, starts, nextparents, int(n), mask, keepdims)
	if err != nil {
		return nil, err
	}

	outoffsets, err := LocalOutOffsets(parents, outlength)
	if err != nil {
		return nil, err
	}
	return &ListArray{Offsets: outoffsets, Content: outcontent}, nil
}

// reduceNonLocal handles the this-axis case: reduce across sublists
// grouped by the incoming outer parents, then reassemble a new list
// keyed by distinct positional slot.
func (l *ListArray) reduceNonLocal(reducer Reducer, negaxis int64, parents []int64, outlength int, mask, keepdims bool) (Content, error) {
	if len(l.Offsets)-1 != len(parents) {
		panic(newInvariantError("ListArray.ReduceNext", "offsets.length-1 must equal parents.length in the non-local branch", int64(len(parents))))
	}

	maxcount, offsetscopy := MaxCountOffsetsCopy(l.Offsets)
	if maxcount > 0 && int64(outlength) > maxInt64/maxcount {
		return nil, newInvariantError("ListArray.ReduceNext", "array too large: maxcount*outlength overflows int64", maxcount)
	}

	scratch := getInt64Scratch(int(maxcount) * outlength)
	defer scratch.Release()
	distincts := scratch.Data

	nextcarry, nextparents, maxnextparents, err := PrepareNext(offsetscopy, parents, outlength, maxcount, distincts)
	if err != nil {
		return nil, err
	}

	nextstarts := NextStarts(nextparents, maxnextparents)

	nextcontent := l.Content.Carry(nextcarry)
	outcontent, err := nextcontent.ReduceNext(reducer, negaxis-1, nextstarts, nextparents, int(maxnextparents+1), mask, false)
	if err != nil {
		return nil, err
	}

	gaps := FindGaps(parents, outlength)
	outstarts, outstops := OutStartsStops(distincts, maxcount, outlength, gaps)

	// outstarts/outstops address outcontent's compacted slot space, which
	// reserves a full maxcount-wide block per non-empty group even though
	// most groups only use a prefix of it. Carry compacts each group's
	// used prefix down into a freshly contiguous buffer so the result is
	// an ordinary ListArray again.
	offsets := make([]int64, outlength+1)
	var flat []int64
	for j := 0; j < outlength; j++ {
		offsets[j+1] = offsets[j] + (outstops[j] - outstarts[j])
		for p := outstarts[j]; p < outstops[j]; p++ {
			flat = append(flat, p)
		}
	}

	var result Content = &ListArray{Offsets: offsets, Content: outcontent.Carry(flat)}
	if keepdims {
		result = wrapRegularLength1(result)
	}
	return result, nil
}
