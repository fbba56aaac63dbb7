package db

import (
	"context"
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// FirestoreConfig описывает подключение к Firestore.
type FirestoreConfig struct {
	ProjectID string
	// Credentials — путь к файлу сервисного аккаунта или сам JSON.
	// Пустое значение означает Application Default Credentials.
	Credentials  string
	EmulatorHost string
}

// ClientOptions возвращает опции клиента для заданной конфигурации.
func (c FirestoreConfig) ClientOptions() []option.ClientOption {
	creds := strings.TrimSpace(c.Credentials)
	switch {
	case c.EmulatorHost != "":
		return []option.ClientOption{option.WithoutAuthentication()}
	case creds == "":
		return nil
	case strings.HasPrefix(creds, "{"):
		return []option.ClientOption{option.WithCredentialsJSON([]byte(creds))}
	default:
		return []option.ClientOption{option.WithCredentialsFile(creds)}
	}
}

func NewFirestoreClient(ctx context.Context, cfg FirestoreConfig) (*firestore.Client, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("firestore project id is required")
	}
	if cfg.EmulatorHost != "" {
		// Клиент сам читает переменную окружения.
		if err := os.Setenv("FIRESTORE_EMULATOR_HOST", cfg.EmulatorHost); err != nil {
			return nil, fmt.Errorf("failed to set emulator host: %w", err)
		}
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, cfg.ClientOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return client, nil
}
