package jagged

// IndexedArray is a layer of option-typed indirection: each of Index's
// entries is either a valid position into Content or negative, meaning
// "missing". ReduceNext drops the missing entries before forwarding the
// reduction, so groups containing only missing entries still reduce to
// the identity.
type IndexedArray struct {
	Index   []int64
	Content Content
}

func NewIndexedArray(index []int64, content Content) *IndexedArray {
	return &IndexedArray{Index: index, Content: content}
}

func (a *IndexedArray) Length() int64 {
	return int64(len(a.Index))
}

func (a *IndexedArray) PurelistDepth() int64 {
	return a.Content.PurelistDepth()
}

func (a *IndexedArray) BranchDepth() (bool, int64) {
	return a.Content.BranchDepth()
}

func (a *IndexedArray) Carry(index []int64) Content {
	out := make([]int64, len(index))
	for i, k := range index {
		out[i] = a.Index[k]
	}
	return &IndexedArray{Index: out, Content: a.Content}
}

func (a *IndexedArray) GetItemRangeNowrap(lo, hi int64) Content {
	return &IndexedArray{Index: a.Index[lo:hi], Content: a.Content}
}

// ReduceNext drops entries whose Index is negative, builds nextcarry
// (the retained underlying positions) and nextparents (the surviving
// entries' own parent), forwards the reduction, and returns the reduced
// result unchanged: a reducer applied over a shrunken parents/outlength
// pair already leaves missing-only groups at the reducer's identity, so
// no further re-wrapping with an option-index is needed once the
// reduction has collapsed this axis away.
func (a *IndexedArray) ReduceNext(reducer Reducer, negaxis int64, starts, parents []int64, outlength int, mask, keepdims bool) (Content, error) {
	var nextcarry, nextparents []int64
	for i, idx := range a.Index {
		if idx < 0 {
			continue
		}
		nextcarry = append(nextcarry, idx)
		nextparents = append(nextparents, parents[i])
	}
	return a.Content.Carry(nextcarry).ReduceNext(reducer, negaxis, starts, nextparents, outlength, mask, keepdims)
}

// ByteMaskedArray is the other indirection shape: a parallel []bool
// mask rather than a signed index, with validWhenTrue controlling
// whether true or false marks a present entry.
type ByteMaskedArray struct {
	Mask          []bool
	ValidWhenTrue bool
	Content       Content
}

func NewByteMaskedArray(mask []bool, validWhenTrue bool, content Content) *ByteMaskedArray {
	return &ByteMaskedArray{Mask: mask, ValidWhenTrue: validWhenTrue, Content: content}
}

func (a *ByteMaskedArray) Length() int64 {
	return int64(len(a.Mask))
}

func (a *ByteMaskedArray) PurelistDepth() int64 {
	return a.Content.PurelistDepth()
}

func (a *ByteMaskedArray) BranchDepth() (bool, int64) {
	return a.Content.BranchDepth()
}

func (a *ByteMaskedArray) valid(i int) bool {
	return a.Mask[i] == a.ValidWhenTrue
}

func (a *ByteMaskedArray) Carry(index []int64) Content {
	out := make([]bool, len(index))
	for i, k := range index {
		out[i] = a.Mask[k]
	}
	return &ByteMaskedArray{Mask: out, ValidWhenTrue: a.ValidWhenTrue, Content: a.Content}
}

func (a *ByteMaskedArray) GetItemRangeNowrap(lo, hi int64) Content {
	return &ByteMaskedArray{Mask: a.Mask[lo:hi], ValidWhenTrue: a.ValidWhenTrue, Content: a.Content}
}

func (a *ByteMaskedArray) ReduceNext(reducer Reducer, negaxis int64, starts, parents []int64, outlength int, mask, keepdims bool) (Content, error) {
	var nextcarry, nextparents []int64
	for i := range a.Mask {
		if !a.valid(i) {
			continue
		}
		nextcarry = append(nextcarry, int64(i))
		nextparents = append(nextparents, parents[i])
	}
	return a.Content.Carry(nextcarry).ReduceNext(reducer, negaxis, starts, nextparents, outlength, mask, keepdims)
}
