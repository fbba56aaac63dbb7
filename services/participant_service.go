package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dosada05/leaderboard-admin/live"
	"github.com/Dosada05/leaderboard-admin/models"
	"github.com/Dosada05/leaderboard-admin/repositories"
	"github.com/go-playground/validator/v10"
)

// RegisterParticipantInput — данные формы регистрации команды.
type RegisterParticipantInput struct {
	Participant1 string `json:"participant1" validate:"required"`
	Participant2 string `json:"participant2" validate:"required"`
	Phone1       string `json:"phone1" validate:"required"`
	Phone2       string `json:"phone2" validate:"required"`
	TeamName     string `json:"teamName" validate:"required"`
}

func (in *RegisterParticipantInput) trim() {
	in.Participant1 = strings.TrimSpace(in.Participant1)
	in.Participant2 = strings.TrimSpace(in.Participant2)
	in.Phone1 = strings.TrimSpace(in.Phone1)
	in.Phone2 = strings.TrimSpace(in.Phone2)
	in.TeamName = strings.TrimSpace(in.TeamName)
}

// LeaderboardNotifier receives leaderboard changes for live subscribers.
type LeaderboardNotifier interface {
	LeaderboardChanged(change live.LeaderboardChange)
}

type noopNotifier struct{}

func (noopNotifier) LeaderboardChanged(live.LeaderboardChange) {}

type ParticipantService interface {
	Register(ctx context.Context, input RegisterParticipantInput) (*models.Participant, error)
	ListDecorated(ctx context.Context) ([]*models.ParticipantView, error)
	Delete(ctx context.Context, id string) error
	Promote(ctx context.Context, id string) (*models.LeaderboardEntry, error)
}

type participantService struct {
	repo            repositories.ParticipantRepository
	leaderboardRepo repositories.LeaderboardRepository
	leaderboard     LeaderboardService
	notifier        LeaderboardNotifier
	validate        *validator.Validate
	logger          *slog.Logger
}

func NewParticipantService(
	repo repositories.ParticipantRepository,
	leaderboardRepo repositories.LeaderboardRepository,
	leaderboard LeaderboardService,
	notifier LeaderboardNotifier,
	logger *slog.Logger,
) ParticipantService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &participantService{
		repo:            repo,
		leaderboardRepo: leaderboardRepo,
		leaderboard:     leaderboard,
		notifier:        notifier,
		validate:        newValidator(),
		logger:          logger,
	}
}

// Register создаёт команду со статусом registered и новым кодом.
func (s *participantService) Register(ctx context.Context, input RegisterParticipantInput) (*models.Participant, error) {
	input.trim()
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	participant := &models.Participant{
		Participant1: input.Participant1,
		Participant2: input.Participant2,
		Phone1:       input.Phone1,
		Phone2:       input.Phone2,
		TeamName:     input.TeamName,
		UniqueCode:   GenerateUniqueCode(DefaultCodeLength),
		Status:       models.ParticipantStatusRegistered,
	}

	if err := s.repo.Create(ctx, participant); err != nil {
		return nil, fmt.Errorf("failed to register team %q: %w", input.TeamName, err)
	}

	s.logger.Info("team registered",
		slog.String("id", participant.ID),
		slog.String("team", participant.TeamName),
	)
	return participant, nil
}

// ListDecorated возвращает участников (новые первыми) с данными из таблицы лидеров.
func (s *participantService) ListDecorated(ctx context.Context) ([]*models.ParticipantView, error) {
	participants, err := s.repo.ListByCreatedDesc(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	views := make([]*models.ParticipantView, 0, len(participants))
	for _, p := range participants {
		view := &models.ParticipantView{
			Participant:       *p,
			LeaderboardStatus: models.LeaderboardStatusNotStarted,
		}
		if entry, ok := s.leaderboard.LookupByTeamName(ctx, p.TeamName); ok {
			view.InLeaderboard = true
			if entry.Status != "" {
				view.LeaderboardStatus = string(entry.Status)
			}
			view.LeaderboardPoints = entry.TotalPoints
			view.LeaderboardWins = entry.Wins
			view.GamesPlayed = entry.GamesPlayed
		}
		views = append(views, view)
	}
	return views, nil
}

// Delete удаляет команду. Запись в таблице лидеров с тем же ID удаляется
// по возможности: ошибка там не мешает удалению участника.
func (s *participantService) Delete(ctx context.Context, id string) error {
	if err := s.leaderboardRepo.Delete(ctx, id); err != nil {
		s.logger.Warn("failed to delete leaderboard entry with participant",
			slog.String("id", id),
			slog.Any("error", err),
		)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete participant %s: %w", id, err)
	}

	s.notifier.LeaderboardChanged(live.LeaderboardChange{Reason: "deleted", ID: id})
	s.logger.Info("team deleted", slog.String("id", id))
	return nil
}

// Promote переносит команду в таблицу лидеров.
//
// Создание записи и обновление статуса участника — две отдельные записи без
// транзакции. Если вторая не прошла, запись в таблице лидеров остаётся, а
// участник сохраняет статус registered; объединённый список от этого не
// ломается, так как дедупликация смотрит на наличие записи, а не на статус.
func (s *participantService) Promote(ctx context.Context, id string) (*models.LeaderboardEntry, error) {
	participant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant %s: %w", id, err)
	}

	existing, err := s.leaderboardRepo.FindByName(ctx, participant.TeamName)
	if err != nil {
		return nil, fmt.Errorf("failed to check leaderboard for %q: %w", participant.TeamName, err)
	}
	if len(existing) > 0 {
		return nil, ErrAlreadyInLeaderboard
	}

	entry := &models.LeaderboardEntry{
		ID:          id,
		Name:        participant.TeamName,
		Status:      models.LeaderboardStatusOffline,
		TotalPoints: 0,
		Wins:        0,
		GamesPlayed: 0,
	}
	if err := s.leaderboardRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, repositories.ErrLeaderboardEntryConflict) {
			return nil, ErrAlreadyInLeaderboard
		}
		return nil, fmt.Errorf("failed to create leaderboard entry for %q: %w", participant.TeamName, err)
	}

	if err := s.repo.UpdateStatus(ctx, id, models.ParticipantStatusInLeaderboard); err != nil {
		return nil, fmt.Errorf("leaderboard entry created but participant %s status not updated: %w", id, err)
	}

	s.notifier.LeaderboardChanged(live.LeaderboardChange{
		Reason: "promoted",
		ID:     entry.ID,
		Name:   entry.Name,
		Status: string(entry.Status),
	})
	s.logger.Info("team promoted to leaderboard",
		slog.String("id", id),
		slog.String("team", entry.Name),
	)
	return entry, nil
}
