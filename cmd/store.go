package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/leaderboard-admin/config"
	"github.com/Dosada05/leaderboard-admin/db"
	"github.com/Dosada05/leaderboard-admin/repositories"
)

// store — репозитории выбранного бэкенда и функция освобождения ресурсов.
type store struct {
	participants repositories.ParticipantRepository
	leaderboard  repositories.LeaderboardRepository
	close        func() error
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*store, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverFirestore:
		client, err := db.NewFirestoreClient(ctx, db.FirestoreConfig{
			ProjectID:    cfg.FirebaseProjectID,
			Credentials:  cfg.FirebaseCredentialsJSON,
			EmulatorHost: cfg.FirestoreEmulatorHost,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("firestore client initialized",
			slog.String("project", cfg.FirebaseProjectID),
			slog.Bool("emulator", cfg.FirestoreEmulatorHost != ""),
		)
		return &store{
			participants: repositories.NewFirestoreParticipantRepository(client),
			leaderboard:  repositories.NewFirestoreLeaderboardRepository(client),
			close:        client.Close,
		}, nil

	case config.StoreDriverPostgres:
		dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
		if err != nil {
			return nil, err
		}
		logger.Info("database connection established")
		return &store{
			participants: repositories.NewPostgresParticipantRepository(dbConn),
			leaderboard:  repositories.NewPostgresLeaderboardRepository(dbConn),
			close:        dbConn.Close,
		}, nil

	case config.StoreDriverMemory:
		logger.Warn("using in-memory store, data is lost on exit")
		mem := repositories.NewMemoryStore()
		return &store{
			participants: mem.Participants(),
			leaderboard:  mem.Leaderboard(),
			close:        func() error { return nil },
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

func runMigrate(ctx context.Context) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.StoreDriver != config.StoreDriverPostgres {
		return fmt.Errorf("migrate requires STORE_DRIVER=postgres, got %q", cfg.StoreDriver)
	}

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := db.EnsureSchema(ctx, dbConn); err != nil {
		return err
	}
	logger.Info("schema applied")
	return nil
}
