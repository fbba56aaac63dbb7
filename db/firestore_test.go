package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirestoreConfig_ClientOptions(t *testing.T) {
	tests := []struct {
		name string
		cfg  FirestoreConfig
		want int
	}{
		{name: "application default credentials", cfg: FirestoreConfig{ProjectID: "p"}, want: 0},
		{name: "emulator ignores credentials", cfg: FirestoreConfig{ProjectID: "p", Credentials: "/tmp/sa.json", EmulatorHost: "localhost:8081"}, want: 1},
		{name: "inline json", cfg: FirestoreConfig{ProjectID: "p", Credentials: ` {"type":"service_account"}`}, want: 1},
		{name: "credentials file", cfg: FirestoreConfig{ProjectID: "p", Credentials: "/etc/firebase/sa.json"}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.cfg.ClientOptions(), tt.want)
		})
	}
}

func TestNewFirestoreClient_RequiresProject(t *testing.T) {
	_, err := NewFirestoreClient(context.Background(), FirestoreConfig{})
	assert.Error(t, err)
}

func TestSchema(t *testing.T) {
	assert.Contains(t, Schema, "CREATE TABLE IF NOT EXISTS participants")
	assert.Contains(t, Schema, "CREATE TABLE IF NOT EXISTS leaderboard")
}
