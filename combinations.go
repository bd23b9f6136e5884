package jagged

// Record is the minimal record surface combinations needs: n parallel
// fields of equal length, one per tuple slot. It carries and slices by
// forwarding to every field; it cannot itself be reduced.
type Record struct {
	Fields []Content
}

func NewRecord(fields []Content) *Record {
	return &Record{Fields: fields}
}

func (r *Record) Length() int64 {
	if len(r.Fields) == 0 {
		return 0
	}
	return r.Fields[0].Length()
}

func (r *Record) PurelistDepth() int64 {
	var depth int64 = 1
	for _, f := range r.Fields {
		if d := f.PurelistDepth(); d > depth {
			depth = d
		}
	}
	return depth
}

func (r *Record) BranchDepth() (bool, int64) {
	branches := false
	var depth int64 = -1
	for _, f := range r.Fields {
		b, d := f.BranchDepth()
		if b {
			branches = true
		}
		if depth == -1 {
			depth = d
		} else if d != depth {
			branches = true
			if d > depth {
				depth = d
			}
		}
	}
	if depth == -1 {
		depth = 1
	}
	return branches, depth
}

func (r *Record) Carry(index []int64) Content {
	fields := make([]Content, len(r.Fields))
	for i, f := range r.Fields {
		fields[i] = f.Carry(index)
	}
	return &Record{Fields: fields}
}

func (r *Record) GetItemRangeNowrap(lo, hi int64) Content {
	fields := make([]Content, len(r.Fields))
	for i, f := range r.Fields {
		fields[i] = f.GetItemRangeNowrap(lo, hi)
	}
	return &Record{Fields: fields}
}

func (r *Record) ReduceNext(reducer Reducer, negaxis int64, starts, parents []int64, outlength int, mask, keepdims bool) (Content, error) {
	return nil, newArgumentError("Record", "cannot reduce a record: reduce its fields individually")
}

// combinationsCount returns the number of n-element tuples a sublist of
// the given length yields: C(length, n) without replacement, or the
// multiset coefficient C(length+n-1, n) with it.
func combinationsCount(length, n int64, replacement bool) int64 {
	top := length
	if replacement {
		top = length + n - 1
	}
	if top < n {
		return 0
	}
	var count int64 = 1
	for i := int64(0); i < n; i++ {
		count = count * (top - i) / (i + 1)
	}
	return count
}

// ListCombinations enumerates, per sublist, all lexicographically ordered
// n-element tuples of that sublist's elements (indices strictly
// ascending, or non-descending with replacement). The result is a list
// over an n-field record; field f of tuple t holds the t-th tuple's f-th
// element, selected out of the original content by a carry.
func ListCombinations(offsets []int64, content Content, n int64, replacement bool) (*ListArray, error) {
	if n < 1 {
		return nil, newArgumentError("ListCombinations", "n must be at least 1")
	}
	rows := len(offsets) - 1

	outoffsets := make([]int64, rows+1)
	var total int64
	for i := 0; i < rows; i++ {
		total += combinationsCount(offsets[i+1]-offsets[i], n, replacement)
		outoffsets[i+1] = total
	}

	carries := make([][]int64, n)
	for f := range carries {
		carries[f] = make([]int64, 0, total)
	}

	tuple := make([]int64, n)
	for i := 0; i < rows; i++ {
		lo := offsets[i]
		length := offsets[i+1] - lo
		if !startTuple(tuple, length, replacement) {
			continue
		}
		for {
			for f := int64(0); f < n; f++ {
				carries[f] = append(carries[f], lo+tuple[f])
			}
			if !nextTuple(tuple, length, replacement) {
				break
			}
		}
	}

	fields := make([]Content, n)
	for f := range fields {
		fields[f] = content.Carry(carries[f])
	}
	return NewListArray(outoffsets, NewRecord(fields)), nil
}

// startTuple initializes the first tuple in lexicographic order, or
// reports that the sublist yields no tuples at all.
func startTuple(tuple []int64, length int64, replacement bool) bool {
	n := int64(len(tuple))
	if replacement {
		if length < 1 {
			return false
		}
		for f := range tuple {
			tuple[f] = 0
		}
		return true
	}
	if length < n {
		return false
	}
	for f := range tuple {
		tuple[f] = int64(f)
	}
	return true
}

// nextTuple advances to the lexicographic successor, or reports the
// enumeration finished.
func nextTuple(tuple []int64, length int64, replacement bool) bool {
	n := len(tuple)
	for f := n - 1; f >= 0; f-- {
		limit := length - 1
		if !replacement {
			limit = length - int64(n-f)
		}
		if tuple[f] < limit {
			tuple[f]++
			for g := f + 1; g < n; g++ {
				if replacement {
					tuple[g] = tuple[f]
				} else {
					tuple[g] = tuple[g-1] + 1
				}
			}
			return true
		}
	}
	return false
}
