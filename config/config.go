package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// StoreDriver выбирает хранилище для коллекций participants и leaderboard.
type StoreDriver string

const (
	StoreDriverFirestore StoreDriver = "firestore"
	StoreDriverPostgres  StoreDriver = "postgres"
	StoreDriverMemory    StoreDriver = "memory"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	ServerPort  int         `env:"SERVER_PORT" envDefault:"8080"`
	StoreDriver StoreDriver `env:"STORE_DRIVER" envDefault:"firestore"`
	DatabaseURL string      `env:"DATABASE_URL"`

	FirebaseProjectID       string `env:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsJSON string `env:"FIREBASE_CREDENTIALS_JSON"`
	FirestoreEmulatorHost   string `env:"FIRESTORE_EMULATOR_HOST"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	LogLevel           string   `env:"LOG_LEVEL" envDefault:"info"`

	R2AccountID       string `env:"R2_ACCOUNT_ID"`
	R2AccessKeyID     string `env:"R2_ACCESS_KEY_ID"`
	R2SecretAccessKey string `env:"R2_SECRET_ACCESS_KEY"`
	R2BucketName      string `env:"R2_BUCKET_NAME"`
	R2PublicBaseURL   string `env:"R2_PUBLIC_BASE_URL"`

	// SnapshotInterval — период выгрузки ростера в R2; 0 отключает выгрузку.
	SnapshotInterval time.Duration `env:"SNAPSHOT_INTERVAL" envDefault:"0s"`
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.ServerPort)
	}

	switch c.StoreDriver {
	case StoreDriverFirestore:
		if c.FirebaseProjectID == "" {
			return fmt.Errorf("FIREBASE_PROJECT_ID environment variable is not set")
		}
	case StoreDriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is not set")
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want firestore, postgres or memory)", c.StoreDriver)
	}

	if c.SnapshotInterval < 0 {
		return fmt.Errorf("SNAPSHOT_INTERVAL must not be negative, got %s", c.SnapshotInterval)
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel переводит LOG_LEVEL (debug, info, warn, error) в slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}
