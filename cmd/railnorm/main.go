package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/eraschle/railnorm/internal/config"
	"github.com/eraschle/railnorm/internal/element"
	"github.com/eraschle/railnorm/internal/repository"
	"github.com/eraschle/railnorm/internal/vocab"
)

var cfg *config.Config

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	rootCmd := &cobra.Command{
		Use:   "railnorm",
		Short: "Canonical element and parameter model for railway infrastructure data",
		Long:  "railnorm ingests heterogeneous client exports (CSV, JSON, Excel, Postgres), normalizes fields and units into a canonical parameter vocabulary, derives geometry components, and resolves cross-element references.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return nil
		},
	}

	rootCmd.AddCommand(
		ingestCmd(),
		listCmd(),
		showCmd(),
		exportCmd(),
		resolveCmd(),
		tagsCmd(),
		statsCmd(),
	)

	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if cfg != nil && cfg.Logging.Level == "debug" {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg != nil && cfg.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func newRepository(logger *slog.Logger) (*repository.JSONRepository, error) {
	return repository.NewJSONRepository(cfg.Repository.Path, logger)
}

func newElementFactory(logger *slog.Logger) *element.Factory {
	return element.NewFactory(vocab.NewRegistry(), logger)
}

// maybeServeMetrics exposes the prometheus endpoint in the background
// when enabled. Long-running ingests can be watched from outside.
func maybeServeMetrics(logger *slog.Logger) {
	if cfg == nil || !cfg.Metrics.Enabled {
		return
	}
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(cfg.Metrics.ListenAddr, mux); err != nil {
			logger.Warn("metrics endpoint stopped", "error", err)
		}
	}()
}

func parseKinds(raw string) ([]element.Kind, error) {
	if raw == "" {
		return nil, nil
	}
	var kinds []element.Kind
	for _, part := range strings.Split(raw, ",") {
		k, err := element.ParseKind(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func truncate(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen]) + "..."
	}
	return s
}
