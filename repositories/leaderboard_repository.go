package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/leaderboard-admin/models"
	"github.com/lib/pq"
)

var (
	ErrLeaderboardEntryNotFound = errors.New("leaderboard entry not found")
	ErrLeaderboardEntryConflict = errors.New("leaderboard entry conflict: id already exists")
)

type LeaderboardRepository interface {
	// Create сохраняет запись под entry.ID.
	Create(ctx context.Context, entry *models.LeaderboardEntry) error
	FindByID(ctx context.Context, id string) (*models.LeaderboardEntry, error)
	// FindByName возвращает все записи с точным совпадением name (обычно 0 или 1).
	FindByName(ctx context.Context, name string) ([]*models.LeaderboardEntry, error)
	List(ctx context.Context) ([]*models.LeaderboardEntry, error)
	ListByPointsDesc(ctx context.Context) ([]*models.LeaderboardEntry, error)
	UpdateStatus(ctx context.Context, id string, status models.LeaderboardStatus) error
	Delete(ctx context.Context, id string) error
}

type postgresLeaderboardRepository struct {
	db *sql.DB
}

func NewPostgresLeaderboardRepository(db *sql.DB) LeaderboardRepository {
	return &postgresLeaderboardRepository{db: db}
}

const leaderboardColumns = `id, name, status, total_points, wins, games_played`

func (r *postgresLeaderboardRepository) Create(ctx context.Context, entry *models.LeaderboardEntry) error {
	if entry.ID == "" {
		return errors.New("leaderboard entry id is required")
	}

	query := `
		INSERT INTO leaderboard (id, name, status, total_points, wins, games_played)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.Name,
		entry.Status,
		entry.TotalPoints,
		entry.Wins,
		entry.GamesPlayed,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrLeaderboardEntryConflict
		}
		return fmt.Errorf("failed to create leaderboard entry: %w", err)
	}
	return nil
}

func scanLeaderboardEntry(rowScanner interface {
	Scan(dest ...interface{}) error
}, e *models.LeaderboardEntry) error {
	return rowScanner.Scan(&e.ID, &e.Name, &e.Status, &e.TotalPoints, &e.Wins, &e.GamesPlayed)
}

func (r *postgresLeaderboardRepository) findMany(ctx context.Context, query string, args ...interface{}) ([]*models.LeaderboardEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboard: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.LeaderboardEntry, 0)
	for rows.Next() {
		e := &models.LeaderboardEntry{}
		if err := scanLeaderboardEntry(rows, e); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leaderboard rows: %w", err)
	}
	return entries, nil
}

func (r *postgresLeaderboardRepository) FindByID(ctx context.Context, id string) (*models.LeaderboardEntry, error) {
	query := `SELECT ` + leaderboardColumns + ` FROM leaderboard WHERE id = $1`
	e := &models.LeaderboardEntry{}
	if err := scanLeaderboardEntry(r.db.QueryRowContext(ctx, query, id), e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLeaderboardEntryNotFound
		}
		return nil, fmt.Errorf("failed to find leaderboard entry: %w", err)
	}
	return e, nil
}

func (r *postgresLeaderboardRepository) FindByName(ctx context.Context, name string) ([]*models.LeaderboardEntry, error) {
	query := `SELECT ` + leaderboardColumns + ` FROM leaderboard WHERE name = $1`
	return r.findMany(ctx, query, name)
}

func (r *postgresLeaderboardRepository) List(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	return r.findMany(ctx, `SELECT `+leaderboardColumns+` FROM leaderboard`)
}

func (r *postgresLeaderboardRepository) ListByPointsDesc(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	return r.findMany(ctx, `SELECT `+leaderboardColumns+` FROM leaderboard ORDER BY total_points DESC`)
}

func (r *postgresLeaderboardRepository) UpdateStatus(ctx context.Context, id string, status models.LeaderboardStatus) error {
	query := `UPDATE leaderboard SET status = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update leaderboard status: %w", err)
	}
	return checkAffectedRows(result, ErrLeaderboardEntryNotFound)
}

func (r *postgresLeaderboardRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM leaderboard WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete leaderboard entry: %w", err)
	}
	return nil
}
