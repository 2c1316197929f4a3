package mocks

import (
	"context"

	"github.com/metinatakli/seat-allocator/internal/domain"
	"github.com/metinatakli/seat-allocator/internal/seating"
	"github.com/stretchr/testify/mock"
)

// MockChartRepo expects View and Update to return (*seating.Chart, error).
// A non-nil chart is handed to the callback of the call.
type MockChartRepo struct {
	mock.Mock
	domain.ChartRepository
}

func (m *MockChartRepo) Create(ctx context.Context, chart *seating.Chart) (string, error) {
	args := m.Called(ctx, chart)
	return args.String(0), args.Error(1)
}

func (m *MockChartRepo) View(ctx context.Context, id string, fn func(chart *seating.Chart) error) error {
	args := m.Called(ctx, id)
	return runWithChart(args, fn)
}

func (m *MockChartRepo) Update(ctx context.Context, id string, fn func(chart *seating.Chart) error) error {
	args := m.Called(ctx, id)
	return runWithChart(args, fn)
}

func (m *MockChartRepo) List(ctx context.Context, pagination domain.Pagination) ([]domain.ChartInfo, *domain.Metadata, error) {
	args := m.Called(ctx, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.ChartInfo), args.Get(1).(*domain.Metadata), args.Error(2)
}

func runWithChart(args mock.Arguments, fn func(chart *seating.Chart) error) error {
	if err := args.Error(1); err != nil {
		return err
	}

	chart, ok := args.Get(0).(*seating.Chart)
	if !ok || chart == nil {
		return nil
	}

	return fn(chart)
}
