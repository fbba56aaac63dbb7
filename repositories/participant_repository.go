package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/leaderboard-admin/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrParticipantConflict = errors.New("participant conflict: id already exists")
)

type ParticipantRepository interface {
	// Create сохраняет участника, присваивая ID и CreatedAt.
	Create(ctx context.Context, p *models.Participant) error
	FindByID(ctx context.Context, id string) (*models.Participant, error)
	// FindFirstByTeamName возвращает первого участника с точным совпадением teamName.
	FindFirstByTeamName(ctx context.Context, teamName string) (*models.Participant, error)
	// List возвращает всех участников в порядке хранилища.
	List(ctx context.Context) ([]*models.Participant, error)
	ListByCreatedDesc(ctx context.Context) ([]*models.Participant, error)
	UpdateStatus(ctx context.Context, id string, status models.ParticipantStatus) error
	// Delete не возвращает ошибку, если участника нет.
	Delete(ctx context.Context, id string) error
}

type postgresParticipantRepository struct {
	db *sql.DB
}

func NewPostgresParticipantRepository(db *sql.DB) ParticipantRepository {
	return &postgresParticipantRepository{db: db}
}

const participantColumns = `id, participant1, participant2, phone1, phone2, team_name, unique_code, created_at, status`

func (r *postgresParticipantRepository) Create(ctx context.Context, p *models.Participant) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	query := `
		INSERT INTO participants (id, participant1, participant2, phone1, phone2, team_name, unique_code, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		p.ID,
		p.Participant1,
		p.Participant2,
		p.Phone1,
		p.Phone2,
		p.TeamName,
		p.UniqueCode,
		p.Status,
	).Scan(&p.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
			return ErrParticipantConflict
		}
		return fmt.Errorf("failed to create participant: %w", err)
	}
	return nil
}

func (r *postgresParticipantRepository) scanParticipant(rowScanner interface {
	Scan(dest ...interface{}) error
}, p *models.Participant) error {
	return rowScanner.Scan(
		&p.ID,
		&p.Participant1,
		&p.Participant2,
		&p.Phone1,
		&p.Phone2,
		&p.TeamName,
		&p.UniqueCode,
		&p.CreatedAt,
		&p.Status,
	)
}

func (r *postgresParticipantRepository) findOne(ctx context.Context, query string, args ...interface{}) (*models.Participant, error) {
	p := &models.Participant{}
	row := r.db.QueryRowContext(ctx, query, args...)
	err := r.scanParticipant(row, p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to find participant: %w", err)
	}
	return p, nil
}

func (r *postgresParticipantRepository) findMany(ctx context.Context, query string, args ...interface{}) ([]*models.Participant, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	participants := make([]*models.Participant, 0)
	for rows.Next() {
		p := &models.Participant{}
		if err := r.scanParticipant(rows, p); err != nil {
			return nil, fmt.Errorf("failed to scan participant row: %w", err)
		}
		participants = append(participants, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participant rows: %w", err)
	}
	return participants, nil
}

func (r *postgresParticipantRepository) FindByID(ctx context.Context, id string) (*models.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *postgresParticipantRepository) FindFirstByTeamName(ctx context.Context, teamName string) (*models.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE team_name = $1 LIMIT 1`
	return r.findOne(ctx, query, teamName)
}

func (r *postgresParticipantRepository) List(ctx context.Context) ([]*models.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants`
	return r.findMany(ctx, query)
}

func (r *postgresParticipantRepository) ListByCreatedDesc(ctx context.Context) ([]*models.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants ORDER BY created_at DESC`
	return r.findMany(ctx, query)
}

func (r *postgresParticipantRepository) UpdateStatus(ctx context.Context, id string, status models.ParticipantStatus) error {
	query := `UPDATE participants SET status = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update participant status: %w", err)
	}
	return checkAffectedRows(result, ErrParticipantNotFound)
}

func (r *postgresParticipantRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM participants WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	return nil
}
