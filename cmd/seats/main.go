// Command seats reads a batch from stdin, the first line holding seed
// reservations and each following line a block size, and prints one seat
// range per request followed by the number of seats left.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/metinatakli/seat-allocator/internal/batch"
	"github.com/metinatakli/seat-allocator/internal/config"
	"github.com/metinatakli/seat-allocator/internal/vcs"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if err := run(os.Args[1:], logger); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func run(args []string, logger *slog.Logger) error {
	cfg, err := config.Load("seats", args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if cfg.DisplayVersion {
		fmt.Printf("Version:\t%s\n", vcs.Version())
		return nil
	}

	lines, err := batch.ReadLines(os.Stdin)
	if err != nil {
		return err
	}

	result := batch.Process(lines, cfg.Seating, logger)

	return batch.Write(os.Stdout, result)
}
