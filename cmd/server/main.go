package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ignite/mailcheck/internal/analytics"
	"github.com/ignite/mailcheck/internal/api"
	"github.com/ignite/mailcheck/internal/config"
	"github.com/ignite/mailcheck/internal/pkg/logger"
	"github.com/ignite/mailcheck/internal/repository/postgres"
	"github.com/ignite/mailcheck/internal/service/record"
	"github.com/ignite/mailcheck/internal/verify"
)

func main() {
	cfg, err := config.LoadFromEnv(os.Getenv("MAILCHECK_CONFIG"))
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}

	if cfg.Environment == "development" {
		logger.SetLevel(logger.DEBUG)
		logger.SetRedact(false)
	}

	// The store is optional: without it the server still verifies addresses
	// and serves the frontend, and the persistence endpoints fail per
	// request instead of taking the process down.
	var records *record.Service
	var stats *analytics.Aggregator

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	db, err := postgres.Open(pingCtx, cfg.Database.URL)
	cancel()
	if err != nil {
		logger.Warn("database unavailable, running without persistence", "error", err)
	} else {
		defer db.Close()
		repo := postgres.NewRecordRepo(db)
		records = record.NewService(repo)
		stats = analytics.New(repo)
		logger.Info("connected to database")
	}

	verifier := verify.New(nil, cfg.Verify.DisposableDomains, cfg.Verify.MXTimeout())
	handlers := api.NewHandlers(verifier, records, stats)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      api.Routes(handlers, cfg.Server.StaticDir),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
