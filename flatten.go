package jagged

// FlattenAxis removes one list level. Flattening at axis 1 merges every
// top-level sublist into a single flat content; deeper positive axes
// recurse, rebasing this level's offsets onto the flattened child.
// Negative axes count inward the same way Reduce's do. Axis 0 is
// rejected: there is no level above the rows to merge into.
func FlattenAxis(c Content, axis int64) (Content, error) {
	l, ok := c.(*ListArray)
	if !ok {
		return nil, newArgumentError("Flatten", "flatten requires a list axis")
	}
	_, depth := c.BranchDepth()
	if axis < 0 {
		axis = depth + axis
	}
	if axis == 0 {
		return nil, newArgumentError("Flatten", "cannot flatten at axis 0")
	}
	if axis < 1 || axis > depth-1 {
		return nil, newArgumentError("Flatten", "axis out of range for this nesting depth")
	}
	if axis == 1 {
		start, stop := GlobalStartStop(l.Offsets)
		return l.Content.GetItemRangeNowrap(start, stop), nil
	}

	inner, ok := l.Content.(*ListArray)
	if !ok {
		return nil, newArgumentError("Flatten", "axis exceeds the list nesting of this structure")
	}
	flattened, err := FlattenAxis(inner, axis-1)
	if err != nil {
		return nil, err
	}
	// This level's sublists now delimit elements of the flattened child:
	// each boundary moves from "inner sublist i" to "where inner sublist
	// i begins in the flattened space".
	offsets := make([]int64, len(l.Offsets))
	for i, o := range l.Offsets {
		offsets[i] = inner.Offsets[o] - inner.Offsets[0]
	}
	return NewListArray(offsets, flattened), nil
}

// BroadcastToOffsets repeats each of a flat content's elements across
// the sublist the same-position offsets entry describes: element i
// appears offsets[i+1]-offsets[i] times. offsets must start at zero and
// content must hold exactly one element per sublist.
func BroadcastToOffsets(offsets []int64, content Content) (*ListArray, error) {
	if len(offsets) < 1 || offsets[0] != 0 {
		return nil, newArgumentError("BroadcastToOffsets", "offsets must start at zero")
	}
	n := len(offsets) - 1
	if content.Length() != int64(n) {
		return nil, newArgumentError("BroadcastToOffsets", "content must hold one element per sublist")
	}
	carry := make([]int64, 0, offsets[n])
	for i := 0; i < n; i++ {
		for p := offsets[i]; p < offsets[i+1]; p++ {
			carry = append(carry, int64(i))
		}
	}
	return NewListArray(append([]int64(nil), offsets...), content.Carry(carry)), nil
}
