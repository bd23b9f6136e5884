package jagged

// Content is the contract every array layer satisfies: anything that
// can report its own length, recurse a reduction one level further in,
// be gathered by index, be range-sliced, and report its own nesting
// depth.
type Content interface {
	Length() int64

	// ReduceNext drives one level of the recursive reduction. starts
	// and parents describe, respectively, the position each element's
	// group begins at and which of the outlength groups each element
	// belongs to.
	ReduceNext(reducer Reducer, negaxis int64, starts, parents []int64, outlength int, mask, keepdims bool) (Content, error)

	// Carry selects elements by index, returning a new Content of
	// length len(index).
	Carry(index []int64) Content

	// GetItemRangeNowrap returns the sub-content covering [lo, hi)
	// without any bounds adjustment or option-wrapping.
	GetItemRangeNowrap(lo, hi int64) Content

	// BranchDepth reports whether any descendant union-like layer has
	// differing depths across its variants, and the maximum depth seen.
	BranchDepth() (bool, int64)

	// PurelistDepth is the depth of this content assuming no branching.
	PurelistDepth() int64
}

// NumberContent is the base case of the recursion: a flat buffer of
// elements with no further list nesting. Its ReduceNext applies the
// elementwise kernels directly; negaxis exists only so it satisfies the
// Content contract uniformly with ListArray, since a leaf is always the
// target of whatever axis drove the recursion down to it.
type NumberContent struct {
	Buffer *Buffer
}

func NewNumberContent(buf *Buffer) *NumberContent {
	return &NumberContent{Buffer: buf}
}

func (n *NumberContent) Length() int64 {
	return int64(n.Buffer.Len())
}

// BranchDepth for a leaf is (false, 1): a flat buffer counts as depth 1,
// so a list-over-numbers has depth 2 and the axis=-2 target of a doubly
// nested structure is the inner list, not the outer.
func (n *NumberContent) BranchDepth() (bool, int64) {
	return false, 1
}

func (n *NumberContent) PurelistDepth() int64 {
	return 1
}

func (n *NumberContent) Carry(index []int64) Content {
	return &NumberContent{Buffer: n.Buffer.Carry(index)}
}

func (n *NumberContent) GetItemRangeNowrap(lo, hi int64) Content {
	return &NumberContent{Buffer: n.Buffer.Slice(int(lo), int(hi))}
}

// ReduceNext applies the reducer directly: parents and outlength already
// describe exactly the grouping this leaf must combine under. starts is
// only consulted by argmin/argmax (see Reducer.NeedsStarts): starts[p]
// names the position, in the same space starts itself is expressed in,
// of group p's first element. Group p always occupies one contiguous
// run of buffer positions here (the local path's nextparents and the
// non-local path's slot-major ordering both guarantee it), so the
// reported position of buffer index k is starts[p] plus k's offset from
// that run's first index. With the local path's starts = offsets[:-1]
// this recovers an absolute content position; with the non-local path's
// nextstarts it recovers a position in the carried slot space; either
// way the result lands in [starts[p], starts[p]+group_len(p)).
func (n *NumberContent) ReduceNext(reducer Reducer, negaxis int64, starts, parents []int64, outlength int, mask, keepdims bool) (Content, error) {
	var positions []int64
	if reducer.NeedsStarts() {
		positions = make([]int64, len(parents))
		firstK := make([]int64, outlength)
		seen := make([]bool, outlength)
		for k, p := range parents {
			if !seen[p] {
				seen[p] = true
				firstK[p] = int64(k)
			}
			positions[k] = starts[p] + (int64(k) - firstK[p])
		}
	}
	out, err := ApplyReducer(reducer.Kind(), n.Buffer, parents, positions, outlength, reducer.IdentityOverride())
	if err != nil {
		return nil, err
	}
	result := Content(&NumberContent{Buffer: out})
	if mask {
		// Empty groups become missing rather than the reducer's identity:
		// an option-index with -1 at every group no parent pointed into.
		outindex := make([]int64, outlength)
		for j := range outindex {
			outindex[j] = -1
		}
		for _, p := range parents {
			outindex[p] = p
		}
		result = &IndexedArray{Index: outindex, Content: result}
	}
	if keepdims {
		result = wrapRegularLength1(result)
	}
	return result, nil
}

// wrapRegularLength1 wraps content in a list layer of length-1
// sublists, the keepdims=true convention: every output row retains a
// trivial inner axis instead of being collapsed away entirely.
func wrapRegularLength1(content Content) Content {
	n := content.Length()
	offsets := make([]int64, n+1)
	for i := range offsets {
		offsets[i] = int64(i)
	}
	return NewListArray(offsets, content)
}
