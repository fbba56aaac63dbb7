package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Dosada05/leaderboard-admin/models"
	"github.com/Dosada05/leaderboard-admin/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnricher_Enrich(t *testing.T) {
	falcons := &models.Participant{
		ID:           "p1",
		Participant1: "Ann",
		Participant2: "Bob",
		Phone1:       "+100",
		Phone2:       "+200",
		TeamName:     "Falcons",
		UniqueCode:   "ABCD1234",
	}
	storeErr := errors.New("deadline exceeded")

	tests := []struct {
		name         string
		record       models.LeaderboardRecord
		repo         *FakeParticipantRepository
		wantEnriched bool
	}{
		{
			name:   "matched by id",
			record: models.LeaderboardRecord{LeaderboardEntry: models.LeaderboardEntry{ID: "p1", Name: "Falcons"}},
			repo: &FakeParticipantRepository{
				FindByIDFunc: func(ctx context.Context, id string) (*models.Participant, error) {
					return falcons, nil
				},
				FindFirstByTeamNameFunc: func(ctx context.Context, teamName string) (*models.Participant, error) {
					t.Fatal("name fallback must not run when id matches")
					return nil, nil
				},
			},
			wantEnriched: true,
		},
		{
			name:   "falls back to team name",
			record: models.LeaderboardRecord{LeaderboardEntry: models.LeaderboardEntry{ID: "legacy", Name: "Falcons"}},
			repo: &FakeParticipantRepository{
				FindFirstByTeamNameFunc: func(ctx context.Context, teamName string) (*models.Participant, error) {
					if teamName == "Falcons" {
						return falcons, nil
					}
					return nil, repositories.ErrParticipantNotFound
				},
			},
			wantEnriched: true,
		},
		{
			name:         "no participant leaves record untouched",
			record:       models.LeaderboardRecord{LeaderboardEntry: models.LeaderboardEntry{ID: "ghost", Name: "Ghosts"}},
			repo:         &FakeParticipantRepository{},
			wantEnriched: false,
		},
		{
			name:   "empty name skips fallback",
			record: models.LeaderboardRecord{LeaderboardEntry: models.LeaderboardEntry{ID: "ghost"}},
			repo: &FakeParticipantRepository{
				FindFirstByTeamNameFunc: func(ctx context.Context, teamName string) (*models.Participant, error) {
					t.Fatal("name fallback must not run for an empty name")
					return nil, nil
				},
			},
			wantEnriched: false,
		},
		{
			name:   "store error on id lookup is swallowed",
			record: models.LeaderboardRecord{LeaderboardEntry: models.LeaderboardEntry{ID: "p1", Name: "Falcons"}},
			repo: &FakeParticipantRepository{
				FindByIDFunc: func(ctx context.Context, id string) (*models.Participant, error) {
					return nil, storeErr
				},
			},
			wantEnriched: false,
		},
		{
			name:   "store error on name lookup is swallowed",
			record: models.LeaderboardRecord{LeaderboardEntry: models.LeaderboardEntry{ID: "legacy", Name: "Falcons"}},
			repo: &FakeParticipantRepository{
				FindFirstByTeamNameFunc: func(ctx context.Context, teamName string) (*models.Participant, error) {
					return nil, storeErr
				},
			},
			wantEnriched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := tt.record
			NewEnricher(tt.repo, discardLogger()).Enrich(context.Background(), &rec)

			assert.Equal(t, tt.wantEnriched, rec.Enriched())
			assert.Equal(t, tt.record.LeaderboardEntry, rec.LeaderboardEntry, "entry fields must not change")
			if !tt.wantEnriched {
				assert.Nil(t, rec.Phone1)
				assert.Nil(t, rec.UniqueCode)
				return
			}
			require.NotNil(t, rec.Participant1)
			assert.Equal(t, "Ann", *rec.Participant1)
			assert.Equal(t, "Bob", *rec.Participant2)
			assert.Equal(t, "+100", *rec.Phone1)
			assert.Equal(t, "+200", *rec.Phone2)
			assert.Equal(t, "ABCD1234", *rec.UniqueCode)
		})
	}
}
