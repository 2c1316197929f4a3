package seating

import "sort"

// Span is an inclusive run of free columns within one row.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int { return s.End - s.Start + 1 }

func (s Span) contains(col int) bool {
	return col >= s.Start && col <= s.End
}

// spanSet keeps the free spans of a single row.
//
// Invariants:
//   - spans is sorted by Start and holds disjoint, non-adjacent spans.
//   - every span has Start <= End; empty remainders are never stored.
type spanSet struct {
	spans []Span
}

func newSpanSet(cols int) spanSet {
	if cols <= 0 {
		return spanSet{}
	}
	return spanSet{spans: []Span{{Start: 0, End: cols - 1}}}
}

// find returns the index of the span containing col, or -1.
func (ss *spanSet) find(col int) int {
	i := sort.Search(len(ss.spans), func(i int) bool {
		return ss.spans[i].Start > col
	})
	if i == 0 {
		return -1
	}
	if !ss.spans[i-1].contains(col) {
		return -1
	}
	return i - 1
}

// remove takes col out of its containing span, replacing that span with the
// remainders to the left and right of col. It reports whether col was free.
func (ss *spanSet) remove(col int) bool {
	i := ss.find(col)
	if i < 0 {
		return false
	}

	cur := ss.spans[i]
	left := Span{Start: cur.Start, End: col - 1}
	right := Span{Start: col + 1, End: cur.End}

	var parts []Span
	if left.Len() > 0 {
		parts = append(parts, left)
	}
	if right.Len() > 0 {
		parts = append(parts, right)
	}

	switch len(parts) {
	case 0:
		ss.spans = append(ss.spans[:i], ss.spans[i+1:]...)
	case 1:
		ss.spans[i] = parts[0]
	default:
		ss.spans = append(ss.spans, Span{})
		copy(ss.spans[i+1:], ss.spans[i:])
		ss.spans[i] = parts[0]
		ss.spans[i+1] = parts[1]
	}

	return true
}

func (ss *spanSet) list() []Span {
	out := make([]Span, len(ss.spans))
	copy(out, ss.spans)
	return out
}
