package seatcode

import (
	"testing"

	"github.com/metinatakli/seat-allocator/internal/seating"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	code, err := Format(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "R1C1", code)

	code, err = Format(2, 10)
	require.NoError(t, err)
	assert.Equal(t, "R3C11", code)

	_, err = Format(-1, -1)
	assert.ErrorIs(t, err, ErrInvalidSeat)

	_, err = Format(0, -1)
	assert.ErrorIs(t, err, ErrInvalidSeat)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantRow int
		wantCol int
		wantErr error
	}{
		{name: "first seat", code: "R1C1", wantRow: 0, wantCol: 0},
		{name: "multi digit", code: "R12C104", wantRow: 11, wantCol: 103},
		{name: "leading zeros", code: "R01C02", wantRow: 0, wantCol: 1},
		{name: "garbage", code: "abcd", wantErr: ErrInvalidCode},
		{name: "empty", code: "", wantErr: ErrInvalidCode},
		{name: "lowercase", code: "r1c1", wantErr: ErrInvalidCode},
		{name: "trailing text", code: "R1C1x", wantErr: ErrInvalidCode},
		{name: "missing column", code: "R1C", wantErr: ErrInvalidCode},
		{name: "zero row", code: "R0C3", wantErr: ErrInvalidCode},
		{name: "overflow", code: "R99999999999999999999C1", wantErr: ErrInvalidCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, err := Parse(tt.code)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, Valid(tt.code))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRow, row)
			assert.Equal(t, tt.wantCol, col)
			assert.True(t, Valid(tt.code))
		})
	}
}

func TestFormatAllocation(t *testing.T) {
	assert.Equal(t, NotEnoughSeats, FormatAllocation(seating.Allocation{}, false))
	assert.Equal(t, "R1C2 - R1C3", FormatAllocation(seating.Allocation{Row: 0, FirstCol: 1, LastCol: 2}, true))
	assert.Equal(t, "R1C2", FormatAllocation(seating.Allocation{Row: 0, FirstCol: 1, LastCol: 1}, true))
}
