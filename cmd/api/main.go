package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"shopflow/pkg/api"
	"shopflow/pkg/catalog"
	"shopflow/pkg/logger"
	"shopflow/pkg/otel"
)

type config struct {
	addr        string
	logLevel    string
	otelHost    string
	traceStdout bool
	traceRatio  float64
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return def
}

func newRootCmd() *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:          "shopflow",
		Short:        "Serve the in-memory products and orders API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfg)
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfg.addr, "addr", env("HTTP_ADDR", ":8080"), "listen address (HTTP_ADDR)")
	f.StringVar(&cfg.logLevel, "log-level", env("LOG_LEVEL", "info"), "log level (LOG_LEVEL)")
	f.StringVar(&cfg.otelHost, "otel-host", env("OTEL_HOST", ""), "OTLP gRPC collector endpoint (OTEL_HOST)")
	f.BoolVar(&cfg.traceStdout, "trace-stdout", env("TRACE_STDOUT", "") == "1", "print spans to stdout when no collector is set (TRACE_STDOUT)")
	f.Float64Var(&cfg.traceRatio, "trace-ratio", envFloat("TRACE_RATIO", 1.0), "fraction of traces sampled (TRACE_RATIO)")
	return cmd
}

// @title ShopFlow API
// @version 1.0
// @description API for managing products and orders
// @host localhost:8080
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config) error {
	level, err := logger.ParseLevel(cfg.logLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log := logger.New(os.Stdout, level, "shopflow", otel.GetTraceID)
	defer log.Sync()

	tp, shutdown, err := otel.InitTracing(log, otel.Config{
		ServiceName: "shopflow",
		Host:        cfg.otelHost,
		Stdout:      cfg.traceStdout,
		Probability: cfg.traceRatio,
	})
	if err != nil {
		log.Error(ctx, "init tracing", "error", err)
		return err
	}
	defer shutdown(context.Background())

	svc := catalog.New(log)
	h := api.New(svc, log, tp.Tracer("shopflow"))

	srv := &http.Server{
		Addr:              cfg.addr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", "addr", cfg.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "server closed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error(sctx, "shutdown", "error", err)
		return err
	}
	return nil
}
