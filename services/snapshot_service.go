package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/leaderboard-admin/export"
	"github.com/Dosada05/leaderboard-admin/storage"
	"github.com/go-co-op/gocron/v2"
)

const snapshotKeyPrefix = "snapshots/teams-"

// SnapshotService uploads the team roster to object storage.
type SnapshotService struct {
	aggregate AggregateService
	uploader  storage.FileUploader
	now       func() time.Time
	logger    *slog.Logger
}

func NewSnapshotService(aggregate AggregateService, uploader storage.FileUploader, logger *slog.Logger) *SnapshotService {
	return &SnapshotService{
		aggregate: aggregate,
		uploader:  uploader,
		now:       time.Now,
		logger:    logger,
	}
}

// snapshotKey returns the object key for a snapshot taken at t.
func snapshotKey(t time.Time) string {
	return snapshotKeyPrefix + t.UTC().Format("20060102T150405Z") + ".xlsx"
}

// Upload builds the current roster workbook and stores it under a timestamped key.
func (s *SnapshotService) Upload(ctx context.Context) (*storage.UploadResult, error) {
	data, err := s.aggregate.AllData(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect roster: %w", err)
	}

	var buf bytes.Buffer
	if err := export.WriteRosterXLSX(&buf, data); err != nil {
		return nil, err
	}

	key := snapshotKey(s.now())
	result, err := s.uploader.Upload(ctx, key, export.RosterContentType, &buf)
	if err != nil {
		return nil, err
	}

	s.logger.Info("roster snapshot uploaded",
		slog.String("key", result.Key),
		slog.String("location", result.Location),
		slog.Int("teams", len(data.Participants)+len(data.Leaderboard)),
	)
	return result, nil
}

// StartScheduler runs Upload every interval until the returned scheduler is shut down.
func (s *SnapshotService) StartScheduler(interval time.Duration) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			defer cancel()
			if _, err := s.Upload(ctx); err != nil {
				s.logger.Error("scheduled roster snapshot failed", slog.Any("error", err))
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, fmt.Errorf("failed to schedule roster snapshot: %w", err)
	}

	sched.Start()
	s.logger.Info("roster snapshot scheduler started", slog.Duration("interval", interval))
	return sched, nil
}
