package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/metinatakli/seat-allocator/internal/seating"
	appvalidator "github.com/metinatakli/seat-allocator/internal/validator"
)

const (
	DefaultRows         = 3
	DefaultCols         = 11
	DefaultMaxBlockSize = 10
)

type Config struct {
	Port             int    `validate:"min=1,max=65535"`
	Env              string `validate:"oneof=dev staging prod test"`
	OtelCollectorUrl string
	Seating          seating.Config

	DisplayVersion bool
}

// Load parses args with defaults taken from the environment. A .env file in
// the working directory is loaded first when present.
func Load(name string, args []string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config

	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "port", envInt("PORT", 3000), "server port")
	fs.StringVar(&cfg.Env, "env", envString("ENV", "dev"), "Environment (dev|staging|prod|test)")
	fs.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", envString("OTEL_COLLECTOR_URL", ""), "OpenTelemetry collector gRPC endpoint")

	fs.IntVar(&cfg.Seating.Rows, "rows", envInt("SEATING_ROWS", DefaultRows), "number of seat rows")
	fs.IntVar(&cfg.Seating.Cols, "cols", envInt("SEATING_COLS", DefaultCols), "number of seats per row")
	fs.IntVar(&cfg.Seating.MaxBlockSize, "max-block-size", envInt("MAX_SEAT_REQUEST", DefaultMaxBlockSize), "largest block of seats one request may ask for")

	fs.BoolVar(&cfg.DisplayVersion, "version", false, "Display version and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := appvalidator.NewValidator().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func envString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func envInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
