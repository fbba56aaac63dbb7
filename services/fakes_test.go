package services

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/Dosada05/leaderboard-admin/live"
	"github.com/Dosada05/leaderboard-admin/models"
	"github.com/Dosada05/leaderboard-admin/repositories"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// FakeParticipantRepository lets each test override only the calls it cares
// about. Unset funcs fall back to an empty-store answer.
type FakeParticipantRepository struct {
	CreateFunc              func(ctx context.Context, p *models.Participant) error
	FindByIDFunc            func(ctx context.Context, id string) (*models.Participant, error)
	FindFirstByTeamNameFunc func(ctx context.Context, teamName string) (*models.Participant, error)
	ListFunc                func(ctx context.Context) ([]*models.Participant, error)
	ListByCreatedDescFunc   func(ctx context.Context) ([]*models.Participant, error)
	UpdateStatusFunc        func(ctx context.Context, id string, status models.ParticipantStatus) error
	DeleteFunc              func(ctx context.Context, id string) error
}

var _ repositories.ParticipantRepository = (*FakeParticipantRepository)(nil)

func (f *FakeParticipantRepository) Create(ctx context.Context, p *models.Participant) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, p)
	}
	return nil
}

func (f *FakeParticipantRepository) FindByID(ctx context.Context, id string) (*models.Participant, error) {
	if f.FindByIDFunc != nil {
		return f.FindByIDFunc(ctx, id)
	}
	return nil, repositories.ErrParticipantNotFound
}

func (f *FakeParticipantRepository) FindFirstByTeamName(ctx context.Context, teamName string) (*models.Participant, error) {
	if f.FindFirstByTeamNameFunc != nil {
		return f.FindFirstByTeamNameFunc(ctx, teamName)
	}
	return nil, repositories.ErrParticipantNotFound
}

func (f *FakeParticipantRepository) List(ctx context.Context) ([]*models.Participant, error) {
	if f.ListFunc != nil {
		return f.ListFunc(ctx)
	}
	return nil, nil
}

func (f *FakeParticipantRepository) ListByCreatedDesc(ctx context.Context) ([]*models.Participant, error) {
	if f.ListByCreatedDescFunc != nil {
		return f.ListByCreatedDescFunc(ctx)
	}
	return nil, nil
}

func (f *FakeParticipantRepository) UpdateStatus(ctx context.Context, id string, status models.ParticipantStatus) error {
	if f.UpdateStatusFunc != nil {
		return f.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (f *FakeParticipantRepository) Delete(ctx context.Context, id string) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, id)
	}
	return nil
}

type FakeLeaderboardRepository struct {
	CreateFunc           func(ctx context.Context, entry *models.LeaderboardEntry) error
	FindByIDFunc         func(ctx context.Context, id string) (*models.LeaderboardEntry, error)
	FindByNameFunc       func(ctx context.Context, name string) ([]*models.LeaderboardEntry, error)
	ListFunc             func(ctx context.Context) ([]*models.LeaderboardEntry, error)
	ListByPointsDescFunc func(ctx context.Context) ([]*models.LeaderboardEntry, error)
	UpdateStatusFunc     func(ctx context.Context, id string, status models.LeaderboardStatus) error
	DeleteFunc           func(ctx context.Context, id string) error
}

var _ repositories.LeaderboardRepository = (*FakeLeaderboardRepository)(nil)

func (f *FakeLeaderboardRepository) Create(ctx context.Context, entry *models.LeaderboardEntry) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, entry)
	}
	return nil
}

func (f *FakeLeaderboardRepository) FindByID(ctx context.Context, id string) (*models.LeaderboardEntry, error) {
	if f.FindByIDFunc != nil {
		return f.FindByIDFunc(ctx, id)
	}
	return nil, repositories.ErrLeaderboardEntryNotFound
}

func (f *FakeLeaderboardRepository) FindByName(ctx context.Context, name string) ([]*models.LeaderboardEntry, error) {
	if f.FindByNameFunc != nil {
		return f.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (f *FakeLeaderboardRepository) List(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	if f.ListFunc != nil {
		return f.ListFunc(ctx)
	}
	return nil, nil
}

func (f *FakeLeaderboardRepository) ListByPointsDesc(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	if f.ListByPointsDescFunc != nil {
		return f.ListByPointsDescFunc(ctx)
	}
	return nil, nil
}

func (f *FakeLeaderboardRepository) UpdateStatus(ctx context.Context, id string, status models.LeaderboardStatus) error {
	if f.UpdateStatusFunc != nil {
		return f.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (f *FakeLeaderboardRepository) Delete(ctx context.Context, id string) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, id)
	}
	return nil
}

// recordingNotifier collects every change it is given.
type recordingNotifier struct {
	mu      sync.Mutex
	changes []live.LeaderboardChange
}

func (n *recordingNotifier) LeaderboardChanged(change live.LeaderboardChange) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.changes = append(n.changes, change)
}

func (n *recordingNotifier) Changes() []live.LeaderboardChange {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]live.LeaderboardChange(nil), n.changes...)
}
