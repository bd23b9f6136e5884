// Package jagged is a columnar engine for jagged (variable-length
// nested) arrays of primitive numeric values. Nesting is encoded by
// integer offset indices into flat value buffers rather than by
// pointers; the engine's defining capability is segmented reductions
// (sum, prod, count, count-nonzero, min, max, argmin, argmax) and the
// group-wise transformations that share their machinery (sort, argsort,
// combinations, rpad, flatten) along any axis of the nesting.
package jagged

import (
	"fmt"
)

// ============================================================================
// Array - the user-facing handle on a jagged structure
// ============================================================================

// Array wraps a Content tree and exposes the axis-based operations a
// caller actually asks for: segmented reductions, per-sublist sort,
// padding, flattening, combinations. The heavy lifting lives in the
// layer types; Array only translates an axis into the negaxis the
// recursion speaks, seeds the top-level (starts, parents, outlength)
// triple, and strips the single enclosing row the recursion hands back.
type Array struct {
	root Content
}

// NewArray wraps an existing Content tree.
func NewArray(root Content) *Array {
	return &Array{root: root}
}

// NewArrayFromOffsets builds a one-level jagged array from an offsets
// Index (any of the three supported widths) and a flat value buffer.
// The offsets invariants from the data model are checked here, at the
// surface, so nothing deeper ever has to.
func NewArrayFromOffsets(offsets Index, values *Buffer) (*Array, error) {
	off := offsets.ToInt64Slice()
	if err := ValidateOffsets(off, int64(values.Len())); err != nil {
		return nil, err
	}
	return &Array{root: NewListArray(off, NewNumberContent(values))}, nil
}

// NewArrayFromSlicesF64 builds a one-level jagged array from a slice of
// float64 slices.
func NewArrayFromSlicesF64(data [][]float64) *Array {
	offsets := make([]int64, len(data)+1)
	total := 0
	for i, row := range data {
		total += len(row)
		offsets[i+1] = int64(total)
	}
	values := make([]float64, 0, total)
	for _, row := range data {
		values = append(values, row...)
	}
	return &Array{root: NewListArray(offsets, NewNumberContent(NewFloat64Buffer(values)))}
}

// NewArrayFromSlicesI64 builds a one-level jagged array from int64 slices.
func NewArrayFromSlicesI64(data [][]int64) *Array {
	offsets := make([]int64, len(data)+1)
	total := 0
	for i, row := range data {
		total += len(row)
		offsets[i+1] = int64(total)
	}
	values := make([]int64, 0, total)
	for _, row := range data {
		values = append(values, row...)
	}
	return &Array{root: NewListArray(offsets, NewNumberContent(NewInt64Buffer(values)))}
}

// Root returns the underlying content tree.
func (a *Array) Root() Content {
	return a.root
}

// Len returns the number of top-level rows.
func (a *Array) Len() int {
	return int(a.root.Length())
}

// Depth returns the nesting depth, counting the leaf value layer as 1.
func (a *Array) Depth() int64 {
	return a.root.PurelistDepth()
}

// Offsets returns the top-level offsets, or nil if the root is not a
// list layer.
func (a *Array) Offsets() []int64 {
	if l, ok := a.root.(*ListArray); ok {
		return l.Offsets
	}
	return nil
}

// Values returns the flat value buffer beneath a one-level list, or nil
// for deeper or indirected structures.
func (a *Array) Values() *Buffer {
	l, ok := a.root.(*ListArray)
	if !ok {
		return nil
	}
	n, ok := l.Content.(*NumberContent)
	if !ok {
		return nil
	}
	return n.Buffer
}

// GetListLen returns the length of the list at a given row.
func (a *Array) GetListLen(index int) int {
	l, ok := a.root.(*ListArray)
	if !ok || index < 0 || index >= a.Len() {
		return 0
	}
	return int(l.Offsets[index+1] - l.Offsets[index])
}

// GetListF64 returns the float64 list at a given row, or nil.
func (a *Array) GetListF64(index int) []float64 {
	l, ok := a.root.(*ListArray)
	if !ok || index < 0 || index >= a.Len() {
		return nil
	}
	n, ok := l.Content.(*NumberContent)
	if !ok {
		return nil
	}
	data := n.Buffer.Float64s()
	if data == nil {
		return nil
	}
	return data[l.Offsets[index]:l.Offsets[index+1]]
}

// GetListI64 returns the int64 list at a given row, or nil.
func (a *Array) GetListI64(index int) []int64 {
	l, ok := a.root.(*ListArray)
	if !ok || index < 0 || index >= a.Len() {
		return nil
	}
	n, ok := l.Content.(*NumberContent)
	if !ok {
		return nil
	}
	data := n.Buffer.Int64s()
	if data == nil {
		return nil
	}
	return data[l.Offsets[index]:l.Offsets[index+1]]
}

// ListLengths returns the length of every top-level sublist.
func (a *Array) ListLengths() []int64 {
	l, ok := a.root.(*ListArray)
	if !ok {
		return nil
	}
	out := make([]int64, len(l.Offsets)-1)
	for i := range out {
		out[i] = l.Offsets[i+1] - l.Offsets[i]
	}
	return out
}

// ============================================================================
// Reductions
// ============================================================================

// Reduce runs a reducer along an axis. Negative axes count inward from
// the elements (-1 is the element axis); non-negative axes count outward
// from the rows (0 is the row axis). The result has one fewer axis than
// the input: a depth-2 array reduced at axis=-1 comes back as a flat
// buffer, a depth-3 array as a depth-2 list, and so on.
func (a *Array) Reduce(reducer Reducer, axis int64, mask, keepdims bool) (Content, error) {
	l, ok := a.root.(*ListArray)
	if !ok {
		return nil, newArgumentError("Array.Reduce", "reduction requires at least one list axis")
	}
	branches, depth := a.root.BranchDepth()

	var negaxis int64
	if axis < 0 {
		negaxis = -axis
	} else {
		if branches {
			return nil, newArgumentError("Array.Reduce", "non-negative axis is ambiguous on a structure with branching depths")
		}
		negaxis = depth - axis
	}
	if negaxis < 1 || negaxis > depth {
		return nil, newArgumentError("Array.Reduce", fmt.Sprintf("axis %d out of range for depth-%d array", axis, depth))
	}

	n := l.Length()
	parents := make([]int64, n)
	res, err := a.root.ReduceNext(reducer, negaxis, []int64{0}, parents, 1, mask, keepdims)
	if err != nil {
		return nil, err
	}

	// The recursion reports a single enclosing row (outlength was 1);
	// unwrap it so the caller sees the reduced structure itself.
	if out, ok := res.(*ListArray); ok {
		lo, hi := GlobalStartStop(out.Offsets)
		return out.Content.GetItemRangeNowrap(lo, hi), nil
	}
	return res, nil
}

// Sum reduces along axis under addition (OR for bool).
func (a *Array) Sum(axis int64) (Content, error) {
	return a.Reduce(NewReducer(Sum), axis, false, false)
}

// Prod reduces along axis under multiplication (AND for bool).
func (a *Array) Prod(axis int64) (Content, error) {
	return a.Reduce(NewReducer(Prod), axis, false, false)
}

// Min reduces along axis to the minimum. identity, when non-nil, seeds
// empty groups instead of the type's own maximum.
func (a *Array) Min(axis int64, identity *Buffer) (Content, error) {
	if identity != nil {
		return a.Reduce(NewReducerWithIdentity(Min, identity), axis, false, false)
	}
	return a.Reduce(NewReducer(Min), axis, false, false)
}

// Max reduces along axis to the maximum.
func (a *Array) Max(axis int64, identity *Buffer) (Content, error) {
	if identity != nil {
		return a.Reduce(NewReducerWithIdentity(Max, identity), axis, false, false)
	}
	return a.Reduce(NewReducer(Max), axis, false, false)
}

// Count reduces along axis to the element count per group.
func (a *Array) Count(axis int64) (Content, error) {
	return a.Reduce(NewReducer(Count), axis, false, false)
}

// CountNonzero reduces along axis to the nonzero count per group.
func (a *Array) CountNonzero(axis int64) (Content, error) {
	return a.Reduce(NewReducer(CountNonzero), axis, false, false)
}

// ArgMin reduces along axis to the position of the minimum, -1 for
// empty groups, earliest position on ties.
func (a *Array) ArgMin(axis int64) (Content, error) {
	return a.Reduce(NewReducer(ArgMin), axis, false, false)
}

// ArgMax reduces along axis to the position of the maximum.
func (a *Array) ArgMax(axis int64) (Content, error) {
	return a.Reduce(NewReducer(ArgMax), axis, false, false)
}

// ============================================================================
// Sort / Argsort
// ============================================================================

// Sort returns a new array with every innermost sublist sorted. List
// structure is untouched; only element order within each sublist moves.
func (a *Array) Sort(ascending, stable bool) (*Array, error) {
	sorted, err := sortInnermost(a.root, ascending, stable, false)
	if err != nil {
		return nil, err
	}
	return &Array{root: sorted}, nil
}

// Argsort returns a new array of the same shape whose elements are the
// within-sublist positions that would sort each innermost sublist.
func (a *Array) Argsort(ascending, stable bool) (*Array, error) {
	sorted, err := sortInnermost(a.root, ascending, stable, true)
	if err != nil {
		return nil, err
	}
	return &Array{root: sorted}, nil
}

// sortInnermost recurses to the deepest list level and applies the sort
// kernel there, rebuilding each level above with its own offsets.
func sortInnermost(c Content, ascending, stable, arg bool) (Content, error) {
	l, ok := c.(*ListArray)
	if !ok {
		return nil, newArgumentError("Array.Sort", "sort requires a list axis over a value buffer")
	}
	if inner, ok := l.Content.(*ListArray); ok {
		sorted, err := sortInnermost(inner, ascending, stable, arg)
		if err != nil {
			return nil, err
		}
		return NewListArray(l.Offsets, sorted), nil
	}
	num, ok := l.Content.(*NumberContent)
	if !ok {
		return nil, newArgumentError("Array.Sort", "sort requires a list axis over a value buffer")
	}
	start, stop := GlobalStartStop(l.Offsets)
	compact := CompactOffsets(l.Offsets)
	trimmed := num.Buffer.Slice(int(start), int(stop))
	if arg {
		return ArgsortNext(compact, trimmed, ascending, stable)
	}
	return SortNext(compact, trimmed, ascending, stable)
}

// ============================================================================
// Structure operations
// ============================================================================

// Rpad pads every top-level sublist to at least target elements with
// missing entries; with clip, to exactly target.
func (a *Array) Rpad(target int64, clip bool) (*Array, error) {
	l, ok := a.root.(*ListArray)
	if !ok {
		return nil, newArgumentError("Array.Rpad", "rpad requires a list axis")
	}
	padded, err := Rpad(l, target, clip)
	if err != nil {
		return nil, err
	}
	return &Array{root: padded}, nil
}

// Flatten removes the list level at the given axis (axis 0 is rejected:
// there is no level above the rows to merge into).
func (a *Array) Flatten(axis int64) (*Array, error) {
	flat, err := FlattenAxis(a.root, axis)
	if err != nil {
		return nil, err
	}
	return &Array{root: flat}, nil
}

// Combinations emits, per top-level sublist, all n-element tuples drawn
// from that sublist, as a list of n-field records.
func (a *Array) Combinations(n int64, replacement bool) (*Array, error) {
	l, ok := a.root.(*ListArray)
	if !ok {
		return nil, newArgumentError("Array.Combinations", "combinations requires a list axis")
	}
	combos, err := ListCombinations(l.Offsets, l.Content, n, replacement)
	if err != nil {
		return nil, err
	}
	return &Array{root: combos}, nil
}

// String returns a short diagnostic representation.
func (a *Array) String() string {
	return fmt.Sprintf("Array(depth=%d, len=%d)", a.Depth(), a.Len())
}
