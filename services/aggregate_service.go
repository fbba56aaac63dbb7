package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dosada05/leaderboard-admin/models"
	"github.com/Dosada05/leaderboard-admin/repositories"
	"golang.org/x/sync/errgroup"
)

// enrichConcurrency caps parallel participant lookups per request.
const enrichConcurrency = 8

type AggregateService interface {
	// AllData возвращает обе коллекции: таблицу лидеров с данными участников
	// и участников, которых ещё нет в таблице лидеров.
	AllData(ctx context.Context) (*models.AllData, error)
}

type aggregateService struct {
	participants repositories.ParticipantRepository
	leaderboard  repositories.LeaderboardRepository
	enricher     *Enricher
	logger       *slog.Logger
}

func NewAggregateService(
	participants repositories.ParticipantRepository,
	leaderboard repositories.LeaderboardRepository,
	logger *slog.Logger,
) AggregateService {
	return &aggregateService{
		participants: participants,
		leaderboard:  leaderboard,
		enricher:     NewEnricher(participants, logger),
		logger:       logger,
	}
}

func (s *aggregateService) AllData(ctx context.Context) (*models.AllData, error) {
	var (
		participants []*models.Participant
		entries      []*models.LeaderboardEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		participants, err = s.participants.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list participants: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		entries, err = s.leaderboard.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list leaderboard: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := make([]*models.LeaderboardRecord, len(entries))
	eg := new(errgroup.Group)
	eg.SetLimit(enrichConcurrency)
	for i, entry := range entries {
		records[i] = &models.LeaderboardRecord{
			LeaderboardEntry: *entry,
			Collection:       models.CollectionLeaderboard,
		}
		rec := records[i]
		eg.Go(func() error {
			s.enricher.Enrich(ctx, rec)
			return nil
		})
	}
	_ = eg.Wait()

	remaining := Deduplicate(participants, entries)
	participantRecords := make([]*models.ParticipantRecord, 0, len(remaining))
	for _, p := range remaining {
		participantRecords = append(participantRecords, &models.ParticipantRecord{
			Participant: *p,
			Collection:  models.CollectionParticipants,
		})
	}

	return &models.AllData{
		Participants: participantRecords,
		Leaderboard:  records,
	}, nil
}
