package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fwojciec/palabras"
	palabraschi "github.com/fwojciec/palabras/chi"
	"github.com/fwojciec/palabras/goquery"
	palabrashttp "github.com/fwojciec/palabras/http"
	"github.com/fwojciec/palabras/lookup"
	palabrasslog "github.com/fwojciec/palabras/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	logger := NewLogger(cfg.Log, os.Stderr)
	slog.SetDefault(logger)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      NewHandler(cfg, logger, nil),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Server.Addr, "language", cfg.Lookup.Language)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

// NewHandler wires the lookup stack behind the HTTP router. A nil fetcher
// uses the Wiktionary HTTP fetcher configured by cfg.
func NewHandler(cfg *Config, logger *slog.Logger, fetcher palabras.Fetcher) http.Handler {
	if fetcher == nil {
		opts := []palabrashttp.Option{
			palabrashttp.WithTimeout(cfg.Lookup.FetchTimeout),
			palabrashttp.WithBaseURL(cfg.Lookup.BaseURL),
		}
		if cfg.Lookup.UserAgent != "" {
			opts = append(opts, palabrashttp.WithUserAgent(cfg.Lookup.UserAgent))
		}
		fetcher = palabrashttp.NewFetcher(opts...)
	}

	svc := lookup.NewService(
		palabrasslog.NewLoggingFetcher(fetcher, logger),
		palabrasslog.NewLoggingExtractor(goquery.NewExtractor(), logger),
	)
	svc.Language = cfg.Lookup.Language
	svc.Logf = func(format string, args ...any) {
		logger.Warn(fmt.Sprintf(format, args...))
	}

	return palabraschi.NewServer(palabrasslog.NewLoggingWordService(svc, logger), logger)
}
