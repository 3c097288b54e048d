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

	"github.com/hotgigs/careerassist/internal/advisor"
	"github.com/hotgigs/careerassist/internal/config"
	"github.com/hotgigs/careerassist/internal/handler"
	"github.com/hotgigs/careerassist/internal/metrics"
	"github.com/hotgigs/careerassist/internal/service/chat"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded, using system environment only", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, closeLogs := config.SetupLogger(cfg.Log)
	slog.SetDefault(logger)
	defer func() { _ = closeLogs() }()

	collector := metrics.NewCollector()

	advisorOpts := []advisor.Option{advisor.WithMetrics(collector)}
	if cfg.Assistant.Seed != 0 {
		advisorOpts = append(advisorOpts, advisor.WithSeed(cfg.Assistant.Seed))
	}
	adv := advisor.New(advisorOpts...)

	if cfg.Assistant.PlaybookPath != "" {
		playbook, err := advisor.LoadPlaybook(cfg.Assistant.PlaybookPath)
		if err != nil {
			slog.Error("failed to load playbook", "path", cfg.Assistant.PlaybookPath, "error", err)
			os.Exit(1)
		}
		if err := adv.ApplyPlaybook(playbook); err != nil {
			slog.Error("failed to apply playbook", "path", cfg.Assistant.PlaybookPath, "error", err)
			os.Exit(1)
		}
		slog.Info("playbook applied", "path", cfg.Assistant.PlaybookPath)
	}

	chatService := chat.NewService(adv,
		chat.WithThinkDelay(cfg.Assistant.ThinkDelay),
		chat.WithMetrics(collector),
	)

	router := handler.NewRouter(adv, chatService, collector, cfg.Server.AllowedOrigins)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	slog.Info("career assistant API listening", "addr", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
