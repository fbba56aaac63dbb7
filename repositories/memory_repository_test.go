package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/Dosada05/leaderboard-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func steppingClock(start time.Time) func() time.Time {
	n := 0
	return func() time.Time {
		n++
		return start.Add(time.Duration(n) * time.Second)
	}
}

func TestMemoryParticipantRepository(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	store := NewMemoryStore().WithClock(steppingClock(start))
	repo := store.Participants()

	a := &models.Participant{TeamName: "Ants", Status: models.ParticipantStatusRegistered}
	b := &models.Participant{TeamName: "Bees", Status: models.ParticipantStatusRegistered}
	c := &models.Participant{TeamName: "Ants", Status: models.ParticipantStatusRegistered}
	for _, p := range []*models.Participant{a, b, c} {
		require.NoError(t, repo.Create(ctx, p))
		assert.NotEmpty(t, p.ID)
	}
	assert.Equal(t, start.Add(time.Second), a.CreatedAt)

	t.Run("duplicate id conflicts", func(t *testing.T) {
		err := repo.Create(ctx, &models.Participant{ID: a.ID})
		assert.ErrorIs(t, err, ErrParticipantConflict)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		got, err := repo.FindByID(ctx, a.ID)
		require.NoError(t, err)
		got.TeamName = "changed"

		again, err := repo.FindByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ants", again.TeamName)
	})

	t.Run("first by team name follows insertion order", func(t *testing.T) {
		got, err := repo.FindFirstByTeamName(ctx, "Ants")
		require.NoError(t, err)
		assert.Equal(t, a.ID, got.ID)

		_, err = repo.FindFirstByTeamName(ctx, "Cats")
		assert.ErrorIs(t, err, ErrParticipantNotFound)
	})

	t.Run("list orders", func(t *testing.T) {
		all, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []string{a.ID, b.ID, c.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

		desc, err := repo.ListByCreatedDesc(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{c.ID, b.ID, a.ID}, []string{desc[0].ID, desc[1].ID, desc[2].ID})
	})

	t.Run("update status", func(t *testing.T) {
		require.NoError(t, repo.UpdateStatus(ctx, b.ID, models.ParticipantStatusInLeaderboard))
		got, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ParticipantStatusInLeaderboard, got.Status)

		assert.ErrorIs(t, repo.UpdateStatus(ctx, "missing", models.ParticipantStatusRegistered), ErrParticipantNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, b.ID))
		require.NoError(t, repo.Delete(ctx, b.ID))
		_, err := repo.FindByID(ctx, b.ID)
		assert.ErrorIs(t, err, ErrParticipantNotFound)

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}

func TestMemoryLeaderboardRepository(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := store.Leaderboard()

	for _, e := range []*models.LeaderboardEntry{
		{ID: "a", Name: "Ants", Status: models.LeaderboardStatusOffline},
		{ID: "b", Name: "Bees", Status: models.LeaderboardStatusOffline},
		{ID: "c", Name: "Cats", Status: models.LeaderboardStatusOffline},
	} {
		require.NoError(t, repo.Create(ctx, e))
	}
	require.NoError(t, store.SetScore("a", 10, 1, 2))
	require.NoError(t, store.SetScore("c", 25, 2, 2))
	assert.ErrorIs(t, store.SetScore("zzz", 1, 1, 1), ErrLeaderboardEntryNotFound)

	t.Run("duplicate id conflicts", func(t *testing.T) {
		assert.ErrorIs(t, repo.Create(ctx, &models.LeaderboardEntry{ID: "a"}), ErrLeaderboardEntryConflict)
	})

	t.Run("find by name", func(t *testing.T) {
		got, err := repo.FindByName(ctx, "Bees")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "b", got[0].ID)

		none, err := repo.FindByName(ctx, "Dogs")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("points descending", func(t *testing.T) {
		got, err := repo.ListByPointsDesc(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "a", "b"}, []string{got[0].ID, got[1].ID, got[2].ID})
		assert.Equal(t, 2, got[0].Wins)
	})

	t.Run("update status", func(t *testing.T) {
		require.NoError(t, repo.UpdateStatus(ctx, "a", models.LeaderboardStatusOnline))
		got, err := repo.FindByID(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, models.LeaderboardStatusOnline, got.Status)

		assert.ErrorIs(t, repo.UpdateStatus(ctx, "zzz", models.LeaderboardStatusOnline), ErrLeaderboardEntryNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "b"))
		require.NoError(t, repo.Delete(ctx, "b"))
		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}
