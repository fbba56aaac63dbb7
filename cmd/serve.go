package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/leaderboard-admin/config"
	"github.com/Dosada05/leaderboard-admin/handlers"
	"github.com/Dosada05/leaderboard-admin/live"
	api "github.com/Dosada05/leaderboard-admin/routes"
	"github.com/Dosada05/leaderboard-admin/services"
	"github.com/Dosada05/leaderboard-admin/storage"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const shutdownTimeout = 15 * time.Second

func newUploader(ctx context.Context, cfg *config.Config) (storage.FileUploader, error) {
	r2 := storage.CloudflareR2UploaderConfig{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		BucketName:      cfg.R2BucketName,
		PublicBaseURL:   cfg.R2PublicBaseURL,
	}
	if !r2.Enabled() {
		return nil, nil
	}
	return storage.NewCloudflareR2Uploader(ctx, r2)
}

func runSnapshot(ctx context.Context) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	uploader, err := newUploader(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize Cloudflare R2 uploader: %w", err)
	}
	if uploader == nil {
		return errors.New("R2 is not configured")
	}

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.close()

	aggregate := services.NewAggregateService(st.participants, st.leaderboard, logger)
	result, err := services.NewSnapshotService(aggregate, uploader, logger).Upload(ctx)
	if err != nil {
		return err
	}
	logger.Info("snapshot stored", slog.String("url", result.Location))
	return nil
}

func runServe(parent context.Context) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("store", string(cfg.StoreDriver)),
	)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(); err != nil {
			logger.Error("failed to close store", slog.Any("error", err))
		} else {
			logger.Info("store closed")
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Инициализация WebSocket Hub
	hub := live.NewHub(logger)
	if err := hub.RegisterMetrics(registry); err != nil {
		return err
	}
	go hub.Run(ctx)
	logger.Info("live hub started")

	// Инициализация сервисов
	leaderboardService := services.NewLeaderboardService(st.leaderboard, hub, logger)
	participantService := services.NewParticipantService(st.participants, st.leaderboard, leaderboardService, hub, logger)
	aggregateService := services.NewAggregateService(st.participants, st.leaderboard, logger)

	uploader, err := newUploader(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize Cloudflare R2 uploader: %w", err)
	}
	if uploader != nil && cfg.SnapshotInterval > 0 {
		sched, err := services.NewSnapshotService(aggregateService, uploader, logger).StartScheduler(cfg.SnapshotInterval)
		if err != nil {
			return err
		}
		defer func() {
			if err := sched.Shutdown(); err != nil {
				logger.Error("failed to stop snapshot scheduler", slog.Any("error", err))
			}
		}()
	}

	// Инициализация обработчиков HTTP
	participantHandler := handlers.NewParticipantHandler(participantService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	dataHandler := handlers.NewDataHandler(aggregateService)
	webSocketHandler := handlers.NewWebSocketHandler(hub, cfg.CORSAllowedOrigins)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		api.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			Registry:       registry,
			Logger:         logger,
		},
		participantHandler,
		leaderboardHandler,
		dataHandler,
		webSocketHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		logger.Info("server stopped gracefully")
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
	return nil
}
