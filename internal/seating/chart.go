// Package seating tracks the free seats of a rectangular seat chart and places
// contiguous blocks of seats as close as possible to the front-center seat.
//
// A Chart is not safe for concurrent use.
package seating

// Config holds the fixed dimensions of a chart.
type Config struct {
	Rows         int `json:"rows" validate:"min=1,max=1000"`
	Cols         int `json:"cols" validate:"min=1,max=1000"`
	MaxBlockSize int `json:"maxBlockSize" validate:"min=1"`
}

// Allocation is a block of seats reserved in a single row, FirstCol through
// LastCol inclusive.
type Allocation struct {
	Row      int
	FirstCol int
	LastCol  int
}

func (a Allocation) Len() int { return a.LastCol - a.FirstCol + 1 }

type Chart struct {
	rows         int
	cols         int
	maxBlockSize int

	reserved  [][]bool
	available []spanSet
	free      int
}

// New returns a chart with every seat free. Non-positive dimensions produce an
// empty chart on which every allocation fails.
func New(rows, cols, maxBlockSize int) *Chart {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	c := &Chart{
		rows:         rows,
		cols:         cols,
		maxBlockSize: maxBlockSize,
		reserved:     make([][]bool, rows),
		available:    make([]spanSet, rows),
		free:         rows * cols,
	}

	for i := 0; i < rows; i++ {
		c.reserved[i] = make([]bool, cols)
		c.available[i] = newSpanSet(cols)
	}

	return c
}

func NewFromConfig(cfg Config) *Chart {
	return New(cfg.Rows, cfg.Cols, cfg.MaxBlockSize)
}

func (c *Chart) Rows() int         { return c.rows }
func (c *Chart) Cols() int         { return c.cols }
func (c *Chart) MaxBlockSize() int { return c.maxBlockSize }

// BestSeat returns the front-center seat every placement is measured from.
func (c *Chart) BestSeat() (row, col int) {
	return 0, roundHalf(c.cols) - 1
}

func (c *Chart) valid(row, col int) bool {
	return row >= 0 && row < c.rows && col >= 0 && col < c.cols
}

// Reserve marks a single seat as reserved. Out of range indices and seats that
// are already reserved are ignored.
func (c *Chart) Reserve(row, col int) {
	if !c.valid(row, col) || c.reserved[row][col] {
		return
	}

	c.reserved[row][col] = true
	c.available[row].remove(col)
	c.free--
}

// IsReserved reports whether the seat is reserved. ok is false when the
// indices are outside the chart.
func (c *Chart) IsReserved(row, col int) (reserved, ok bool) {
	if !c.valid(row, col) {
		return false, false
	}
	return c.reserved[row][col], true
}

func (c *Chart) RemainingSeats() int {
	return c.free
}

// Spans returns a copy of the free spans of row in column order.
func (c *Chart) Spans(row int) []Span {
	if row < 0 || row >= c.rows {
		return nil
	}
	return c.available[row].list()
}

// Snapshot returns a copy of the reservation grid indexed [row][col].
func (c *Chart) Snapshot() [][]bool {
	out := make([][]bool, c.rows)
	for i, r := range c.reserved {
		out[i] = make([]bool, len(r))
		copy(out[i], r)
	}
	return out
}

// Allocate reserves the best placed contiguous block of n seats and returns
// it. Nothing is reserved when n is outside [1, MaxBlockSize] or no row has a
// free run that long.
func (c *Chart) Allocate(n int) (Allocation, bool) {
	if n <= 0 || n > c.maxBlockSize {
		return Allocation{}, false
	}

	best, found := c.search(n)
	if !found {
		return Allocation{}, false
	}

	for col := best.FirstCol; col <= best.LastCol; col++ {
		c.Reserve(best.Row, col)
	}

	return best.Allocation, true
}
