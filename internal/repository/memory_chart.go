package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/seat-allocator/internal/domain"
	"github.com/metinatakli/seat-allocator/internal/seating"
)

type chartEntry struct {
	mu        sync.Mutex
	chart     *seating.Chart
	createdAt time.Time
}

// MemoryChartRepository keeps charts in process memory for the lifetime of
// the server. Every chart is guarded by its own lock.
type MemoryChartRepository struct {
	mu     sync.RWMutex
	charts map[string]*chartEntry
	now    func() time.Time
}

func NewMemoryChartRepository() *MemoryChartRepository {
	return &MemoryChartRepository{
		charts: make(map[string]*chartEntry),
		now:    time.Now,
	}
}

func (m *MemoryChartRepository) Create(ctx context.Context, chart *seating.Chart) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := uuid.New().String()

	m.mu.Lock()
	m.charts[id] = &chartEntry{chart: chart, createdAt: m.now()}
	m.mu.Unlock()

	return id, nil
}

func (m *MemoryChartRepository) View(ctx context.Context, id string, fn func(chart *seating.Chart) error) error {
	return m.withChart(ctx, id, fn)
}

func (m *MemoryChartRepository) Update(ctx context.Context, id string, fn func(chart *seating.Chart) error) error {
	return m.withChart(ctx, id, fn)
}

func (m *MemoryChartRepository) withChart(ctx context.Context, id string, fn func(chart *seating.Chart) error) error {
	m.mu.RLock()
	entry, ok := m.charts[id]
	m.mu.RUnlock()

	if !ok {
		return domain.ErrRecordNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(entry.chart)
}

// List returns charts ordered from oldest to newest.
func (m *MemoryChartRepository) List(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.ChartInfo, *domain.Metadata, error) {

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	m.mu.RLock()
	ids := make([]string, 0, len(m.charts))
	entries := make(map[string]*chartEntry, len(m.charts))
	for id, entry := range m.charts {
		ids = append(ids, id)
		entries[id] = entry
	}
	m.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool {
		a, b := entries[ids[i]], entries[ids[j]]
		if a.createdAt.Equal(b.createdAt) {
			return ids[i] < ids[j]
		}
		return a.createdAt.Before(b.createdAt)
	})

	totalRecords := len(ids)
	start := min(pagination.Offset(), totalRecords)
	end := min(start+pagination.Limit(), totalRecords)

	infos := make([]domain.ChartInfo, 0, end-start)
	for _, id := range ids[start:end] {
		entry := entries[id]

		entry.mu.Lock()
		infos = append(infos, domain.ChartInfo{
			ID:             id,
			Rows:           entry.chart.Rows(),
			Cols:           entry.chart.Cols(),
			MaxBlockSize:   entry.chart.MaxBlockSize(),
			RemainingSeats: entry.chart.RemainingSeats(),
			CreatedAt:      entry.createdAt,
		})
		entry.mu.Unlock()
	}

	return infos, domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize), nil
}
