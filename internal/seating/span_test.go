package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanSet_Find(t *testing.T) {
	ss := spanSet{spans: []Span{{0, 2}, {4, 4}, {6, 10}}}

	tests := []struct {
		col  int
		want int
	}{
		{col: -1, want: -1},
		{col: 0, want: 0},
		{col: 2, want: 0},
		{col: 3, want: -1},
		{col: 4, want: 1},
		{col: 5, want: -1},
		{col: 6, want: 2},
		{col: 10, want: 2},
		{col: 11, want: -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ss.find(tt.col), "col %d", tt.col)
	}
}

func TestSpanSet_Remove(t *testing.T) {
	tests := []struct {
		name   string
		spans  []Span
		col    int
		want   []Span
		wantOK bool
	}{
		{
			name:   "middle of span splits it",
			spans:  []Span{{0, 10}},
			col:    5,
			want:   []Span{{0, 4}, {6, 10}},
			wantOK: true,
		},
		{
			name:   "left edge shrinks span",
			spans:  []Span{{0, 10}},
			col:    0,
			want:   []Span{{1, 10}},
			wantOK: true,
		},
		{
			name:   "right edge shrinks span",
			spans:  []Span{{0, 3}, {5, 9}},
			col:    9,
			want:   []Span{{0, 3}, {5, 8}},
			wantOK: true,
		},
		{
			name:   "single seat span disappears",
			spans:  []Span{{0, 2}, {4, 4}, {6, 8}},
			col:    4,
			want:   []Span{{0, 2}, {6, 8}},
			wantOK: true,
		},
		{
			name:   "split keeps later spans in order",
			spans:  []Span{{0, 4}, {6, 10}, {12, 14}},
			col:    8,
			want:   []Span{{0, 4}, {6, 7}, {9, 10}, {12, 14}},
			wantOK: true,
		},
		{
			name:   "column between spans is a no-op",
			spans:  []Span{{0, 4}, {6, 10}},
			col:    5,
			want:   []Span{{0, 4}, {6, 10}},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ss := spanSet{spans: append([]Span(nil), tt.spans...)}

			ok := ss.remove(tt.col)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, ss.list())
		})
	}
}

func TestNewSpanSet_Empty(t *testing.T) {
	ss := newSpanSet(0)
	assert.Empty(t, ss.list())
	assert.Equal(t, -1, ss.find(0))
}
