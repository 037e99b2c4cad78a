package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"currency-converter/internal"
	"currency-converter/internal/cli"
	"currency-converter/internal/exchangerate"
	"currency-converter/internal/snapshot"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	client := exchangerate.New(cfg.RatesAPIURL, cfg.FetchTimeout, logger)
	storage := snapshot.NewFileStorage(cfg.SnapshotPath)
	store := internal.NewRateStore(client, storage, logger)
	conv := internal.NewConversionService(store)

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	app := cli.New(store, conv, cfg.BaseCCY, os.Stdin, os.Stdout,
		cli.WithColor(interactive),
		cli.WithClearScreen(func() {
			if interactive {
				fmt.Fprint(os.Stdout, "\033[H\033[2J")
			}
		}),
	)

	// stdin reads cannot be interrupted, so a signal ends the process here
	// instead of waiting for the menu loop.
	errc := make(chan error, 1)
	go func() { errc <- app.Run(ctx) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		fmt.Fprintln(os.Stdout, "\nExiting...")
		return nil
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	switch strings.ToLower(level) {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn", "":
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	return cfg.Build()
}
