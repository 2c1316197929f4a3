package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/seat-allocator/api"
	"github.com/metinatakli/seat-allocator/internal/batch"
)

const maxBatchBytes = 1_048_576

// ProcessBatchHandler runs a plain text batch against a fresh chart built from
// the configured dimensions. The chart is discarded afterwards.
func (app *Application) ProcessBatchHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	body := http.MaxBytesReader(w, r.Body, maxBatchBytes)

	lines, err := batch.ReadLines(body)
	if err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			app.badRequestResponse(w, r, fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit))
			return
		}

		app.badRequestResponse(w, r, err)
		return
	}

	result := batch.Process(lines, app.config.Seating, logger)
	if result == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	logger.Info("batch processed",
		"requests", len(result.SeatRanges),
		"seats_remaining", result.SeatsRemaining)

	resp := api.BatchResponse{
		SeatRanges:     result.SeatRanges,
		SeatsRemaining: result.SeatsRemaining,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
