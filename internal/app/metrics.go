package app

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	allocationResultAllocated      = "allocated"
	allocationResultNotEnoughSeats = "not_enough_seats"
	allocationResultInvalid        = "invalid"
)

type seatMetrics struct {
	allocations  metric.Int64Counter
	blockSize    metric.Int64Histogram
	reservations metric.Int64Counter
}

func newSeatMetrics(meter metric.Meter) (*seatMetrics, error) {
	allocations, err := meter.Int64Counter(
		"seats.allocations",
		metric.WithDescription("Block allocation requests, by result"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	blockSize, err := meter.Int64Histogram(
		"seats.block_size",
		metric.WithDescription("Number of seats asked for by allocation requests"),
		metric.WithUnit("{seat}"),
		metric.WithExplicitBucketBoundaries(1, 2, 3, 4, 5, 6, 8, 10, 15, 20),
	)
	if err != nil {
		return nil, err
	}

	reservations, err := meter.Int64Counter(
		"seats.reservations",
		metric.WithDescription("Seats reserved individually"),
		metric.WithUnit("{seat}"),
	)
	if err != nil {
		return nil, err
	}

	return &seatMetrics{
		allocations:  allocations,
		blockSize:    blockSize,
		reservations: reservations,
	}, nil
}

func (m *seatMetrics) recordAllocation(ctx context.Context, requested int, result string) {
	m.allocations.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
	m.blockSize.Record(ctx, int64(requested))
}

func (m *seatMetrics) recordReservations(ctx context.Context, seats int) {
	m.reservations.Add(ctx, int64(seats))
}
