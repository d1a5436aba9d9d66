package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/gastosbot/gastos-tracker/internal/common"
	"github.com/gastosbot/gastos-tracker/internal/export"
	"github.com/gastosbot/gastos-tracker/internal/extract"
	"github.com/gastosbot/gastos-tracker/internal/ocr"
	"github.com/gastosbot/gastos-tracker/internal/pipeline"
	"github.com/gastosbot/gastos-tracker/internal/repository"
	"github.com/gastosbot/gastos-tracker/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("database unavailable", "error", err)
		os.Exit(1)
	}
	defer repository.Close(db, logger)

	if err := repository.Migrate(ctx, db); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	keywords := common.LoadKeywords(cfg.OCR.KeywordsPath, logger)
	extractor := extract.New(extract.Config{Keywords: keywords}, logger)
	engine := ocr.NewEngine(cfg.OCR, logger)

	repo := repository.NewExpenseRepository(db, cfg.Database.Driver, logger)
	pipe := pipeline.New(extractor, engine, repo, logger)
	exporter := export.NewService(repo, logger)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.New(pipe, repo, exporter, logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	logger.Info("stopped")
}
