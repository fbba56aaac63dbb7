package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/leaderboard-admin/live"
	"github.com/Dosada05/leaderboard-admin/models"
	"github.com/Dosada05/leaderboard-admin/repositories"
)

type LeaderboardService interface {
	// List возвращает таблицу лидеров по убыванию totalPoints.
	List(ctx context.Context) ([]*models.LeaderboardEntry, error)
	// LookupByTeamName возвращает первую запись с данным именем команды.
	// Ошибки хранилища не пробрасываются: результат просто отсутствует.
	LookupByTeamName(ctx context.Context, teamName string) (*models.LeaderboardEntry, bool)
	SetStatus(ctx context.Context, id string, status models.LeaderboardStatus) (*models.LeaderboardEntry, error)
}

type leaderboardService struct {
	repo     repositories.LeaderboardRepository
	notifier LeaderboardNotifier
	logger   *slog.Logger
}

func NewLeaderboardService(repo repositories.LeaderboardRepository, notifier LeaderboardNotifier, logger *slog.Logger) LeaderboardService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &leaderboardService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *leaderboardService) List(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	entries, err := s.repo.ListByPointsDesc(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboard: %w", err)
	}
	return entries, nil
}

func (s *leaderboardService) LookupByTeamName(ctx context.Context, teamName string) (*models.LeaderboardEntry, bool) {
	entries, err := s.repo.FindByName(ctx, teamName)
	if err != nil {
		s.logger.Debug("leaderboard lookup failed",
			slog.String("team", teamName),
			slog.Any("error", err),
		)
		return nil, false
	}
	if len(entries) == 0 {
		return nil, false
	}
	return entries[0], true
}

func (s *leaderboardService) SetStatus(ctx context.Context, id string, status models.LeaderboardStatus) (*models.LeaderboardEntry, error) {
	if !status.IsValid() {
		return nil, ErrInvalidLeaderboardStatus
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrLeaderboardEntryNotFound) {
			return nil, ErrLeaderboardEntryNotFound
		}
		return nil, fmt.Errorf("failed to get leaderboard entry %s: %w", id, err)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repositories.ErrLeaderboardEntryNotFound) {
			return nil, ErrLeaderboardEntryNotFound
		}
		return nil, fmt.Errorf("failed to update leaderboard entry %s: %w", id, err)
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload leaderboard entry %s: %w", id, err)
	}

	s.notifier.LeaderboardChanged(live.LeaderboardChange{
		Reason: "status_changed",
		ID:     updated.ID,
		Name:   updated.Name,
		Status: string(updated.Status),
	})
	s.logger.Info("leaderboard status updated",
		slog.String("id", id),
		slog.String("status", string(status)),
	)
	return updated, nil
}
