package domain

import (
	"context"
	"time"

	"github.com/metinatakli/seat-allocator/internal/seating"
	"github.com/shopspring/decimal"
)

// ChartInfo describes a stored chart without exposing its seats.
type ChartInfo struct {
	ID             string
	Rows           int
	Cols           int
	MaxBlockSize   int
	RemainingSeats int
	CreatedAt      time.Time
}

// ChartRepository owns the charts served by the API. View and Update run fn
// while holding the chart exclusively, a chart must not be retained after fn
// returns.
type ChartRepository interface {
	Create(ctx context.Context, chart *seating.Chart) (string, error)
	View(ctx context.Context, id string, fn func(chart *seating.Chart) error) error
	Update(ctx context.Context, id string, fn func(chart *seating.Chart) error) error
	List(ctx context.Context, pagination Pagination) ([]ChartInfo, *Metadata, error)
}

// Occupancy returns the reserved share of the chart as a percentage rounded
// to two decimal places.
func Occupancy(chart *seating.Chart) decimal.Decimal {
	total := chart.Rows() * chart.Cols()
	if total == 0 {
		return decimal.Zero
	}

	reserved := decimal.NewFromInt(int64(total - chart.RemainingSeats()))

	return reserved.Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(2)
}
