package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dosada05/leaderboard-admin/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapServiceErrorToHTTP(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "participant not found", err: services.ErrParticipantNotFound, wantCode: http.StatusNotFound, wantMsg: "Team not found"},
		{name: "entry not found", err: services.ErrLeaderboardEntryNotFound, wantCode: http.StatusNotFound, wantMsg: "Leaderboard entry not found"},
		{name: "already promoted", err: services.ErrAlreadyInLeaderboard, wantCode: http.StatusBadRequest, wantMsg: "Team already in leaderboard"},
		{name: "invalid status", err: services.ErrInvalidLeaderboardStatus, wantCode: http.StatusBadRequest, wantMsg: "Invalid status. Use 'online' or 'offline'."},
		{name: "validation", err: &services.ValidationError{Field: "phone1", Message: "Missing required field: phone1"}, wantCode: http.StatusBadRequest, wantMsg: "Missing required field: phone1"},
		{name: "store error", err: fmt.Errorf("failed to list participants: %w", errors.New("unavailable")), wantCode: http.StatusInternalServerError, wantMsg: "failed to list participants: unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mapServiceErrorToHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, map[string]string{"error": tt.wantMsg}, body)
		})
	}
}

func TestReadJSON(t *testing.T) {
	type payload struct {
		Status string `json:"status"`
	}

	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "valid", body: `{"status":"online"}`, want: "online"},
		{name: "unknown fields are ignored", body: `{"status":"offline","extra":1}`, want: "offline"},
		{name: "empty body", body: ``, wantErr: true},
		{name: "malformed", body: `{"status":`, wantErr: true},
		{name: "wrong type", body: `{"status":5}`, wantErr: true},
		{name: "two values", body: `{"status":"online"}{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst payload
			err := readJSON(httptest.NewRecorder(), r, &dst)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, dst.Status)
		})
	}
}
