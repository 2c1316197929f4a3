// Package seatcode converts between zero-indexed seat coordinates and the
// one-indexed labels shown to people, e.g. (0, 3) <-> "R1C4".
package seatcode

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/metinatakli/seat-allocator/internal/seating"
)

// NotEnoughSeats is rendered in place of an allocation that could not be made.
const NotEnoughSeats = "Not enough seats"

const rangeSeparator = " - "

var (
	ErrInvalidSeat = errors.New("seat indices must not be negative")
	ErrInvalidCode = errors.New("seat code must look like R<row>C<column>")
)

var codeRgx = regexp.MustCompile(`^R(\d+)C(\d+)$`)

func Format(row, col int) (string, error) {
	if row < 0 || col < 0 {
		return "", ErrInvalidSeat
	}
	return fmt.Sprintf("R%dC%d", row+1, col+1), nil
}

// Parse returns the zero-indexed row and column encoded in code.
func Parse(code string) (row, col int, err error) {
	matches := codeRgx.FindStringSubmatch(code)
	if matches == nil {
		return 0, 0, ErrInvalidCode
	}

	row, err = strconv.Atoi(matches[1])
	if err != nil || row < 1 {
		return 0, 0, ErrInvalidCode
	}

	col, err = strconv.Atoi(matches[2])
	if err != nil || col < 1 {
		return 0, 0, ErrInvalidCode
	}

	return row - 1, col - 1, nil
}

func Valid(code string) bool {
	_, _, err := Parse(code)
	return err == nil
}

// FormatAllocation renders an allocation as a single code, a "first - last"
// range, or NotEnoughSeats when ok is false.
func FormatAllocation(a seating.Allocation, ok bool) string {
	if !ok {
		return NotEnoughSeats
	}

	first, err := Format(a.Row, a.FirstCol)
	if err != nil {
		return NotEnoughSeats
	}

	if a.FirstCol == a.LastCol {
		return first
	}

	last, err := Format(a.Row, a.LastCol)
	if err != nil {
		return NotEnoughSeats
	}

	return first + rangeSeparator + last
}
