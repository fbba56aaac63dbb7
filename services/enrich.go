package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Dosada05/leaderboard-admin/models"
	"github.com/Dosada05/leaderboard-admin/repositories"
)

// Enricher attaches the contact fields of the originating participant to a
// leaderboard record. It is best-effort: a record that cannot be matched, or
// whose lookup fails, is left as is.
type Enricher struct {
	participants repositories.ParticipantRepository
	logger       *slog.Logger
}

func NewEnricher(participants repositories.ParticipantRepository, logger *slog.Logger) *Enricher {
	return &Enricher{participants: participants, logger: logger}
}

// Enrich looks the participant up by the record id first, then by team name.
func (e *Enricher) Enrich(ctx context.Context, rec *models.LeaderboardRecord) {
	participant, err := e.participants.FindByID(ctx, rec.ID)
	switch {
	case err == nil:
		attachParticipant(rec, participant)
		return
	case !errors.Is(err, repositories.ErrParticipantNotFound):
		e.logger.Debug("enrichment by id failed", slog.String("id", rec.ID), slog.Any("error", err))
		return
	}

	if rec.Name == "" {
		return
	}
	participant, err = e.participants.FindFirstByTeamName(ctx, rec.Name)
	if err != nil {
		if !errors.Is(err, repositories.ErrParticipantNotFound) {
			e.logger.Debug("enrichment by team name failed", slog.String("team", rec.Name), slog.Any("error", err))
		}
		return
	}
	attachParticipant(rec, participant)
}

func attachParticipant(rec *models.LeaderboardRecord, p *models.Participant) {
	rec.Participant1 = stringPtr(p.Participant1)
	rec.Participant2 = stringPtr(p.Participant2)
	rec.Phone1 = stringPtr(p.Phone1)
	rec.Phone2 = stringPtr(p.Phone2)
	rec.UniqueCode = stringPtr(p.UniqueCode)
}

func stringPtr(s string) *string {
	return &s
}
