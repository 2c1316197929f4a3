package integration_test

import (
	"log/slog"
	"os"

	"github.com/metinatakli/seat-allocator/internal/app"
	"github.com/metinatakli/seat-allocator/internal/config"
	"github.com/metinatakli/seat-allocator/internal/repository"
	appvalidator "github.com/metinatakli/seat-allocator/internal/validator"
	"go.opentelemetry.io/otel/metric/noop"
)

type TestApp struct {
	App    *app.Application
	Charts *repository.MemoryChartRepository
}

func newTestApp(cfg config.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	validator := appvalidator.NewValidator()

	chartRepo := repository.NewMemoryChartRepository()

	application, err := app.NewApp(
		cfg,
		logger,
		validator,
		chartRepo,
		noop.NewMeterProvider().Meter("integration"),
	)
	if err != nil {
		return nil, err
	}

	return &TestApp{
		App:    application,
		Charts: chartRepo,
	}, nil
}
