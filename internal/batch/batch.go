// Package batch runs a list of text commands against a fresh seat chart: a line
// of seed reservations followed by one block request per line.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/metinatakli/seat-allocator/internal/seatcode"
	"github.com/metinatakli/seat-allocator/internal/seating"
)

type Result struct {
	SeatRanges     []string `json:"seatRanges"`
	SeatsRemaining int      `json:"seatsRemaining"`
}

// Process seeds a new chart with the codes on the first line and allocates a
// block for every following line. It returns nil when there are no lines.
func Process(lines []string, cfg seating.Config, logger *slog.Logger) *Result {
	if len(lines) == 0 {
		return nil
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	chart := seating.NewFromConfig(cfg)

	for _, code := range strings.Fields(lines[0]) {
		row, col, err := seatcode.Parse(code)
		if err != nil {
			logger.Debug("skipping invalid seed reservation", "code", code, "error", err)
			continue
		}
		chart.Reserve(row, col)
	}

	seatRanges := make([]string, 0, len(lines)-1)

	for _, line := range lines[1:] {
		seats, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			logger.Debug("invalid block request", "line", line, "error", err)
		}

		allocation, ok := chart.Allocate(seats)
		if !ok {
			logger.Debug("block request not satisfied", "seats", seats, "remaining", chart.RemainingSeats())
		}

		seatRanges = append(seatRanges, seatcode.FormatAllocation(allocation, ok))
	}

	return &Result{
		SeatRanges:     seatRanges,
		SeatsRemaining: chart.RemainingSeats(),
	}
}

// ReadLines collects every line of r.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return lines, nil
}

// Write prints one seat range per line followed by the remaining seat count.
// A nil result writes nothing.
func Write(w io.Writer, result *Result) error {
	if result == nil {
		return nil
	}

	bw := bufio.NewWriter(w)

	for _, seatRange := range result.SeatRanges {
		if _, err := fmt.Fprintln(bw, seatRange); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(bw, result.SeatsRemaining); err != nil {
		return err
	}

	return bw.Flush()
}
