package app

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/metinatakli/seat-allocator/api"
	"github.com/metinatakli/seat-allocator/internal/domain"
	"github.com/metinatakli/seat-allocator/internal/seatcode"
	"github.com/metinatakli/seat-allocator/internal/seating"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

var errSeatOutOfRange = errors.New("seat is outside the chart")

func (app *Application) CreateChartHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateChartRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	chart := seating.New(input.Rows, input.Cols, input.MaxBlockSize)
	reserveCodes(chart, input.Reserved)

	id, err := app.chartRepo.Create(r.Context(), chart)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ChartResponse{Chart: toApiChart(id, chart, false)}

	logger.Info("chart created",
		"chart_id", id,
		"rows", input.Rows,
		"cols", input.Cols,
		"reserved", len(input.Reserved))

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/charts/%s", id))

	err = app.writeJSON(w, http.StatusCreated, resp, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetChartsHandler(w http.ResponseWriter, r *http.Request) {
	params, err := parseGetChartsParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	charts, metadata, err := app.chartRepo.List(r.Context(), toPagination(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ChartListResponse{
		Charts:   toChartSummaries(charts),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetChartHandler(w http.ResponseWriter, r *http.Request, chartID string) {
	if !validChartID(chartID) {
		app.badRequestResponse(w, r, errors.New(ErrInvalidChartID))
		return
	}

	var resp api.ChartResponse

	err := app.chartRepo.View(r.Context(), chartID, func(chart *seating.Chart) error {
		resp.Chart = toApiChart(chartID, chart, true)
		return nil
	})
	if err != nil {
		app.chartErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetSeatStatusHandler(w http.ResponseWriter, r *http.Request, chartID, seatCode string) {
	if !validChartID(chartID) {
		app.badRequestResponse(w, r, errors.New(ErrInvalidChartID))
		return
	}

	row, col, err := seatcode.Parse(seatCode)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	resp := api.SeatStatusResponse{Seat: seatCode}

	err = app.chartRepo.View(r.Context(), chartID, func(chart *seating.Chart) error {
		reserved, ok := chart.IsReserved(row, col)
		if !ok {
			return errSeatOutOfRange
		}

		resp.Reserved = reserved
		return nil
	})
	if err != nil {
		if errors.Is(err, errSeatOutOfRange) {
			app.notFoundResponse(w, r)
			return
		}

		app.chartErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// ReserveSeatsHandler reserves individual seats. Seats outside the chart and
// seats that are already taken are skipped.
func (app *Application) ReserveSeatsHandler(w http.ResponseWriter, r *http.Request, chartID string) {
	logger := app.contextGetLogger(r)

	if !validChartID(chartID) {
		app.badRequestResponse(w, r, errors.New(ErrInvalidChartID))
		return
	}

	var input api.ReserveSeatsRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	var (
		resp     api.ChartResponse
		reserved int
	)

	err = app.chartRepo.Update(r.Context(), chartID, func(chart *seating.Chart) error {
		before := chart.RemainingSeats()
		reserveCodes(chart, input.Seats)
		reserved = before - chart.RemainingSeats()

		resp.Chart = toApiChart(chartID, chart, false)
		return nil
	})
	if err != nil {
		app.chartErrorResponse(w, r, err)
		return
	}

	app.metrics.recordReservations(r.Context(), reserved)

	logger.Info("seats reserved",
		"chart_id", chartID,
		"requested", len(input.Seats),
		"reserved", reserved)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) AllocateSeatsHandler(w http.ResponseWriter, r *http.Request, chartID string) {
	logger := app.contextGetLogger(r)

	if !validChartID(chartID) {
		app.badRequestResponse(w, r, errors.New(ErrInvalidChartID))
		return
	}

	var input api.AllocateSeatsRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.metrics.recordAllocation(r.Context(), input.Seats, allocationResultInvalid)
		app.failedValidationResponse(w, r, err)
		return
	}

	var resp api.AllocationResponse

	err = app.chartRepo.Update(r.Context(), chartID, func(chart *seating.Chart) error {
		if input.Seats > chart.MaxBlockSize() {
			return domain.ErrBlockTooLarge
		}

		allocation, ok := chart.Allocate(input.Seats)
		if !ok {
			return domain.ErrNotEnoughSeats
		}

		resp.Allocation = toApiAllocation(allocation, chart.RemainingSeats())
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBlockTooLarge):
			app.metrics.recordAllocation(r.Context(), input.Seats, allocationResultInvalid)
			app.badRequestResponse(w, r, err)
		case errors.Is(err, domain.ErrNotEnoughSeats):
			app.metrics.recordAllocation(r.Context(), input.Seats, allocationResultNotEnoughSeats)
			logger.Info("block request not satisfied", "chart_id", chartID, "seats", input.Seats)
			app.editConflictResponseWithErr(w, r, errors.New(seatcode.NotEnoughSeats))
		default:
			app.chartErrorResponse(w, r, err)
		}
		return
	}

	app.metrics.recordAllocation(r.Context(), input.Seats, allocationResultAllocated)

	logger.Info("seats allocated",
		"chart_id", chartID,
		"seats", input.Seats,
		"label", resp.Allocation.Label)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) chartErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrRecordNotFound) {
		app.contextGetLogger(r).Warn("chart not found", "error", err)
		app.notFoundResponse(w, r)
		return
	}

	app.serverErrorResponse(w, r, err)
}

func validChartID(id string) bool {
	return uuid.Validate(id) == nil
}

// reserveCodes reserves every parsable code. The codes are expected to have
// passed the seat_code validation already.
func reserveCodes(chart *seating.Chart, codes []string) {
	for _, code := range codes {
		row, col, err := seatcode.Parse(code)
		if err != nil {
			continue
		}
		chart.Reserve(row, col)
	}
}

func parseGetChartsParams(r *http.Request) (api.GetChartsParams, error) {
	var params api.GetChartsParams

	query := r.URL.Query()

	page, err := optionalIntParam(query.Get("page"), "page")
	if err != nil {
		return params, err
	}
	params.Page = page

	pageSize, err := optionalIntParam(query.Get("pageSize"), "pageSize")
	if err != nil {
		return params, err
	}
	params.PageSize = pageSize

	return params, nil
}

func optionalIntParam(value, name string) (*int, error) {
	if value == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("query parameter %q must be an integer", name)
	}

	return &n, nil
}

func toPagination(params api.GetChartsParams) domain.Pagination {
	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}

	if params.Page != nil {
		pagination.Page = *params.Page
	}
	if params.PageSize != nil {
		pagination.PageSize = *params.PageSize
	}

	return pagination
}

func toApiChart(id string, chart *seating.Chart, withSeats bool) api.Chart {
	bestRow, bestCol := chart.BestSeat()
	bestSeat, _ := seatcode.Format(bestRow, bestCol)

	apiChart := api.Chart{
		Id:             id,
		Rows:           chart.Rows(),
		Cols:           chart.Cols(),
		MaxBlockSize:   chart.MaxBlockSize(),
		BestSeat:       bestSeat,
		RemainingSeats: chart.RemainingSeats(),
		Occupancy:      domain.Occupancy(chart),
	}

	if withSeats {
		apiChart.SeatRows = toApiSeatRows(chart.Snapshot())
	}

	return apiChart
}

func toApiSeatRows(grid [][]bool) []api.SeatRow {
	seatRows := make([]api.SeatRow, len(grid))

	for i, row := range grid {
		seats := make([]api.Seat, len(row))
		for j, reserved := range row {
			code, _ := seatcode.Format(i, j)
			seats[j] = api.Seat{
				Code:     code,
				Row:      i + 1,
				Column:   j + 1,
				Reserved: reserved,
			}
		}

		seatRows[i] = api.SeatRow{Row: i + 1, Seats: seats}
	}

	return seatRows
}

func toApiAllocation(allocation seating.Allocation, remaining int) api.Allocation {
	first, _ := seatcode.Format(allocation.Row, allocation.FirstCol)
	last, _ := seatcode.Format(allocation.Row, allocation.LastCol)

	return api.Allocation{
		Label:          seatcode.FormatAllocation(allocation, true),
		FirstSeat:      first,
		LastSeat:       last,
		Seats:          allocation.Len(),
		RemainingSeats: remaining,
	}
}

func toChartSummaries(charts []domain.ChartInfo) []api.ChartSummary {
	summaries := make([]api.ChartSummary, len(charts))

	for i, chart := range charts {
		summaries[i] = api.ChartSummary{
			Id:             chart.ID,
			Rows:           chart.Rows,
			Cols:           chart.Cols,
			MaxBlockSize:   chart.MaxBlockSize,
			RemainingSeats: chart.RemainingSeats,
			CreatedAt:      chart.CreatedAt,
		}
	}

	return summaries
}

func toApiMetadata(metadata *domain.Metadata) api.Metadata {
	if metadata == nil {
		return api.Metadata{}
	}

	return api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
