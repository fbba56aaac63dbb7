package services

import (
	"testing"

	"github.com/Dosada05/leaderboard-admin/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func participantIDs(ps []*models.Participant) []string {
	ids := make([]string, 0, len(ps))
	for _, p := range ps {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestDeduplicate(t *testing.T) {
	tests := []struct {
		name         string
		participants []*models.Participant
		leaderboard  []*models.LeaderboardEntry
		wantIDs      []string
	}{
		{
			name: "no leaderboard keeps everyone in order",
			participants: []*models.Participant{
				{ID: "p1", TeamName: "Falcons"},
				{ID: "p2", TeamName: "Hawks"},
			},
			wantIDs: []string{"p1", "p2"},
		},
		{
			name: "promoted by id is removed",
			participants: []*models.Participant{
				{ID: "p1", TeamName: "Falcons"},
				{ID: "p2", TeamName: "Hawks"},
			},
			leaderboard: []*models.LeaderboardEntry{{ID: "p1", Name: "Falcons"}},
			wantIDs:     []string{"p2"},
		},
		{
			name: "ids drifted but name matches",
			participants: []*models.Participant{
				{ID: "p1", TeamName: "Falcons"},
				{ID: "p2", TeamName: "Hawks"},
			},
			leaderboard: []*models.LeaderboardEntry{{ID: "legacy-7", Name: "Hawks"}},
			wantIDs:     []string{"p1"},
		},
		{
			name: "legacy name field is matched when teamName is empty",
			participants: []*models.Participant{
				{ID: "p1", Name: "Owls"},
				{ID: "p2", TeamName: "Hawks"},
			},
			leaderboard: []*models.LeaderboardEntry{{ID: "x", Name: "Owls"}},
			wantIDs:     []string{"p2"},
		},
		{
			name: "two teams sharing a name are both hidden once one is promoted",
			participants: []*models.Participant{
				{ID: "p1", TeamName: "Falcons"},
				{ID: "p2", TeamName: "Falcons"},
				{ID: "p3", TeamName: "Hawks"},
			},
			leaderboard: []*models.LeaderboardEntry{{ID: "p1", Name: "Falcons"}},
			wantIDs:     []string{"p3"},
		},
		{
			name: "team name equal to an entry id is hidden",
			participants: []*models.Participant{
				{ID: "p1", TeamName: "p9"},
			},
			leaderboard: []*models.LeaderboardEntry{{ID: "p9", Name: "Other"}},
			wantIDs:     []string{},
		},
		{
			name: "empty names never match",
			participants: []*models.Participant{
				{ID: "p1"},
			},
			leaderboard: []*models.LeaderboardEntry{{ID: "p2"}},
			wantIDs:     []string{"p1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := participantIDs(Deduplicate(tt.participants, tt.leaderboard))
			if diff := cmp.Diff(tt.wantIDs, got); diff != "" {
				t.Errorf("Deduplicate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPromotedKeys(t *testing.T) {
	keys := NewPromotedKeys(
		&models.LeaderboardEntry{ID: "p1", Name: "Falcons"},
		&models.LeaderboardEntry{ID: "", Name: ""},
	)

	assert.Len(t, keys, 2)
	assert.True(t, keys.Covers(&models.Participant{ID: "p1"}))
	assert.True(t, keys.Covers(&models.Participant{ID: "other", TeamName: "Falcons"}))
	assert.False(t, keys.Covers(&models.Participant{ID: "other", TeamName: "Hawks"}))
	assert.False(t, keys.Covers(&models.Participant{}))
}
