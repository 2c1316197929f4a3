package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/seat-allocator/internal/config"
	"github.com/metinatakli/seat-allocator/internal/domain"
	"github.com/metinatakli/seat-allocator/internal/repository"
	appvalidator "github.com/metinatakli/seat-allocator/internal/validator"
	"github.com/metinatakli/seat-allocator/internal/vcs"
	"github.com/riandyrn/otelchi"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const serviceName = "seat-allocator-api"

var (
	version = vcs.Version()
)

type Application struct {
	config    config.Config
	logger    *slog.Logger
	validator *validator.Validate
	metrics   *seatMetrics

	chartRepo domain.ChartRepository
}

func NewApp(
	cfg config.Config,
	logger *slog.Logger,
	validator *validator.Validate,
	chartRepo domain.ChartRepository,
	meter metric.Meter) (*Application, error) {

	metrics, err := newSeatMetrics(meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create metric instruments: %w", err)
	}

	return &Application{
		config:    cfg,
		logger:    logger,
		validator: validator,
		metrics:   metrics,
		chartRepo: chartRepo,
	}, nil
}

func Run(args []string) error {
	cfg, err := config.Load(serviceName, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if cfg.DisplayVersion {
		fmt.Printf("Version:\t%s\n", version)
		return nil
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	shutdownTelemetry, err := InitTelemetry(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		logger = slog.New(NewMultiHandler(logger.Handler(), otelslog.NewHandler(serviceName)))
	}

	app, err := NewApp(
		cfg,
		logger,
		appvalidator.NewValidator(),
		repository.NewMemoryChartRepository(),
		otel.Meter(serviceName),
	)
	if err != nil {
		return err
	}

	return app.serve()
}

func (app *Application) serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server",
		"addr", srv.Addr,
		"env", app.config.Env,
		"rows", app.config.Seating.Rows,
		"cols", app.config.Seating.Cols,
		"max_block_size", app.config.Seating.MaxBlockSize,
	)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.requestLogger)

	r.Get("/healthcheck", app.GetHealth)
	r.Post("/batch", app.ProcessBatchHandler)

	r.Route("/charts", func(r chi.Router) {
		r.Get("/", app.GetChartsHandler)
		r.Post("/", app.CreateChartHandler)

		r.Route("/{chartId}", func(r chi.Router) {
			r.Get("/", func(w http.ResponseWriter, r *http.Request) {
				app.GetChartHandler(w, r, chi.URLParam(r, "chartId"))
			})

			r.Get("/seats/{seatCode}", func(w http.ResponseWriter, r *http.Request) {
				app.GetSeatStatusHandler(w, r, chi.URLParam(r, "chartId"), chi.URLParam(r, "seatCode"))
			})

			r.Post("/reservations", func(w http.ResponseWriter, r *http.Request) {
				app.ReserveSeatsHandler(w, r, chi.URLParam(r, "chartId"))
			})

			r.Post("/allocations", func(w http.ResponseWriter, r *http.Request) {
				app.AllocateSeatsHandler(w, r, chi.URLParam(r, "chartId"))
			})
		})
	})

	return r
}
