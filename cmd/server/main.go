package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ChatVault/internal/cli/bootstrap"
	"ChatVault/internal/config"
	"ChatVault/internal/handlers"
	"ChatVault/internal/logger"
	"ChatVault/internal/middleware"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg := config.NewConfig()

	sugar, err := logger.New(cfg.LogLevelOr("info"))
	if err != nil {
		panic(err)
	}
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() { _ = sugar.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	vault, done, err := bootstrap.OpenVault(ctx, cfg, sugar)
	if err != nil {
		sugar.Fatalw("failed to open vault", "error", err)
	}
	defer func() {
		if err := done(); err != nil {
			sugar.Errorw("failed to close vault", "error", err)
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := middleware.NewMetrics(reg)
	if err != nil {
		sugar.Fatalw("failed to register metrics", "error", err)
	}

	h := handlers.NewHandler(vault, sugar, cfg, metrics)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sugar.Infow("Starting server",
		"addr", cfg.BaseURL,
		"documents", vault.Mirror().Len(),
		"assetVersion", cfg.AssetVersion,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		sugar.Infow("Shutting down")
	case err := <-errCh:
		if err != nil {
			sugar.Errorw("Server failed", "error", err)
		}
	}

	shCtx, shCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shCancel()
	if err := srv.Shutdown(shCtx); err != nil {
		sugar.Errorw("Shutdown failed", "error", err)
	}
}
