// Package api holds the JSON request and response bodies of the seat
// allocation HTTP API.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type CreateChartRequest struct {
	Rows         int      `json:"rows" validate:"min=1,max=1000"`
	Cols         int      `json:"cols" validate:"min=1,max=1000"`
	MaxBlockSize int      `json:"maxBlockSize" validate:"min=1"`
	Reserved     []string `json:"reserved" validate:"omitempty,dive,seat_code"`
}

type ReserveSeatsRequest struct {
	Seats []string `json:"seats" validate:"required,min=1,dive,seat_code"`
}

type AllocateSeatsRequest struct {
	Seats int `json:"seats" validate:"min=1"`
}

type GetChartsParams struct {
	Page     *int `validate:"omitempty,min=1"`
	PageSize *int `validate:"omitempty,min=1,max=100"`
}

type Seat struct {
	Code     string `json:"code"`
	Row      int    `json:"row"`
	Column   int    `json:"column"`
	Reserved bool   `json:"reserved"`
}

type SeatRow struct {
	Row   int    `json:"row"`
	Seats []Seat `json:"seats"`
}

type Chart struct {
	Id             string          `json:"id"`
	Rows           int             `json:"rows"`
	Cols           int             `json:"cols"`
	MaxBlockSize   int             `json:"maxBlockSize"`
	BestSeat       string          `json:"bestSeat"`
	RemainingSeats int             `json:"remainingSeats"`
	Occupancy      decimal.Decimal `json:"occupancy"`
	SeatRows       []SeatRow       `json:"seatRows,omitempty"`
}

type ChartResponse struct {
	Chart Chart `json:"chart"`
}

type ChartSummary struct {
	Id             string    `json:"id"`
	Rows           int       `json:"rows"`
	Cols           int       `json:"cols"`
	MaxBlockSize   int       `json:"maxBlockSize"`
	RemainingSeats int       `json:"remainingSeats"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type ChartListResponse struct {
	Charts   []ChartSummary `json:"charts"`
	Metadata Metadata       `json:"metadata"`
}

type SeatStatusResponse struct {
	Seat     string `json:"seat"`
	Reserved bool   `json:"reserved"`
}

type Allocation struct {
	Label          string `json:"label"`
	FirstSeat      string `json:"firstSeat"`
	LastSeat       string `json:"lastSeat"`
	Seats          int    `json:"seats"`
	RemainingSeats int    `json:"remainingSeats"`
}

type AllocationResponse struct {
	Allocation Allocation `json:"allocation"`
}

type BatchResponse struct {
	SeatRanges     []string `json:"seatRanges"`
	SeatsRemaining int      `json:"seatsRemaining"`
}
