package seating

type candidate struct {
	Allocation
	distance int
}

// better reports whether cand beats cur. Lower distance wins, then the front
// row; otherwise the earlier candidate is kept.
func (cand candidate) better(cur candidate) bool {
	if cand.distance != cur.distance {
		return cand.distance < cur.distance
	}
	return cand.Row < cur.Row
}

func (c *Chart) search(n int) (candidate, bool) {
	var (
		best  candidate
		found bool
	)

	for row := range c.available {
		for _, span := range c.available[row].spans {
			if span.Len() < n {
				continue
			}

			cand := c.place(row, span, n)
			if !found || cand.better(best) {
				best = cand
				found = true
			}
		}
	}

	return best, found
}

// place picks the run of n seats inside span closest to the best seat.
// span.Len() must be at least n.
func (c *Chart) place(row int, span Span, n int) candidate {
	bestRow, bestCol := c.BestSeat()

	var first, last int

	switch {
	case span.Len() == n:
		first, last = span.Start, span.End

	case span.contains(bestCol):
		left := min(roundHalf(n), bestCol-span.Start+1)
		right := n - left
		first = bestCol - left + 1
		last = bestCol + right

		// a short right side pushes the run back inside the span
		if last > span.End {
			first -= last - span.End
			last = span.End
		}

	default:
		if closerEdge(bestCol, span.Start, span.End) == span.Start {
			first, last = span.Start, span.Start+n-1
		} else {
			first, last = span.End-n+1, span.End
		}
	}

	far := fartherEdge(bestCol, first, last)

	return candidate{
		Allocation: Allocation{Row: row, FirstCol: first, LastCol: last},
		distance:   abs(row-bestRow) + abs(far-bestCol),
	}
}

// closerEdge returns whichever of start and end is nearer to col; ties go to end.
func closerEdge(col, start, end int) int {
	if abs(col-start) >= abs(col-end) {
		return end
	}
	return start
}

// fartherEdge returns whichever of start and end is further from col; ties go to start.
func fartherEdge(col, start, end int) int {
	if abs(col-start) >= abs(col-end) {
		return start
	}
	return end
}

// roundHalf is n/2 rounded half up.
func roundHalf(n int) int {
	if n < 0 {
		return -((-n) / 2)
	}
	return (n + 1) / 2
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
