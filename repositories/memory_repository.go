package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Dosada05/leaderboard-admin/models"
	"github.com/google/uuid"
)

// MemoryStore keeps both collections in process memory. Iteration order is
// insertion order, which stands in for the document store's natural order.
type MemoryStore struct {
	mu           sync.RWMutex
	now          func() time.Time
	participants map[string]*models.Participant
	participantI []string
	leaderboard  map[string]*models.LeaderboardEntry
	leaderboardI []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:          time.Now,
		participants: make(map[string]*models.Participant),
		leaderboard:  make(map[string]*models.LeaderboardEntry),
	}
}

// WithClock replaces the clock used for created_at.
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.now = now
	return s
}

func (s *MemoryStore) Participants() ParticipantRepository {
	return &memoryParticipantRepository{s: s}
}

func (s *MemoryStore) Leaderboard() LeaderboardRepository {
	return &memoryLeaderboardRepository{s: s}
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

type memoryParticipantRepository struct {
	s *MemoryStore
}

func (r *memoryParticipantRepository) Create(ctx context.Context, p *models.Participant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if _, exists := r.s.participants[p.ID]; exists {
		return ErrParticipantConflict
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = r.s.now().UTC()
	}
	stored := *p
	r.s.participants[p.ID] = &stored
	r.s.participantI = append(r.s.participantI, p.ID)
	return nil
}

func (r *memoryParticipantRepository) FindByID(ctx context.Context, id string) (*models.Participant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.participants[id]
	if !ok {
		return nil, ErrParticipantNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memoryParticipantRepository) FindFirstByTeamName(ctx context.Context, teamName string) (*models.Participant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, id := range r.s.participantI {
		if p := r.s.participants[id]; p.TeamName == teamName {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrParticipantNotFound
}

func (r *memoryParticipantRepository) List(ctx context.Context) ([]*models.Participant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	participants := make([]*models.Participant, 0, len(r.s.participantI))
	for _, id := range r.s.participantI {
		cp := *r.s.participants[id]
		participants = append(participants, &cp)
	}
	return participants, nil
}

func (r *memoryParticipantRepository) ListByCreatedDesc(ctx context.Context) ([]*models.Participant, error) {
	participants, _ := r.List(ctx)
	sort.SliceStable(participants, func(i, j int) bool {
		return participants[i].CreatedAt.After(participants[j].CreatedAt)
	})
	return participants, nil
}

func (r *memoryParticipantRepository) UpdateStatus(ctx context.Context, id string, status models.ParticipantStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.participants[id]
	if !ok {
		return ErrParticipantNotFound
	}
	p.Status = status
	return nil
}

func (r *memoryParticipantRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.participants[id]; ok {
		delete(r.s.participants, id)
		r.s.participantI = removeID(r.s.participantI, id)
	}
	return nil
}

type memoryLeaderboardRepository struct {
	s *MemoryStore
}

func (r *memoryLeaderboardRepository) Create(ctx context.Context, entry *models.LeaderboardEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if _, exists := r.s.leaderboard[entry.ID]; exists {
		return ErrLeaderboardEntryConflict
	}
	stored := *entry
	r.s.leaderboard[entry.ID] = &stored
	r.s.leaderboardI = append(r.s.leaderboardI, entry.ID)
	return nil
}

func (r *memoryLeaderboardRepository) FindByID(ctx context.Context, id string) (*models.LeaderboardEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.leaderboard[id]
	if !ok {
		return nil, ErrLeaderboardEntryNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *memoryLeaderboardRepository) FindByName(ctx context.Context, name string) ([]*models.LeaderboardEntry, error) {
	all, _ := r.List(ctx)
	matches := make([]*models.LeaderboardEntry, 0, 1)
	for _, e := range all {
		if e.Name == name {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

func (r *memoryLeaderboardRepository) List(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entries := make([]*models.LeaderboardEntry, 0, len(r.s.leaderboardI))
	for _, id := range r.s.leaderboardI {
		cp := *r.s.leaderboard[id]
		entries = append(entries, &cp)
	}
	return entries, nil
}

func (r *memoryLeaderboardRepository) ListByPointsDesc(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	entries, _ := r.List(ctx)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalPoints > entries[j].TotalPoints
	})
	return entries, nil
}

func (r *memoryLeaderboardRepository) UpdateStatus(ctx context.Context, id string, status models.LeaderboardStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.leaderboard[id]
	if !ok {
		return ErrLeaderboardEntryNotFound
	}
	e.Status = status
	return nil
}

// SetScore overwrites the counters of an entry. Scoring lives outside this
// service; the memory backend exposes it so local runs can show ordering.
func (s *MemoryStore) SetScore(id string, totalPoints, wins, gamesPlayed int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.leaderboard[id]
	if !ok {
		return ErrLeaderboardEntryNotFound
	}
	e.TotalPoints, e.Wins, e.GamesPlayed = totalPoints, wins, gamesPlayed
	return nil
}

func (r *memoryLeaderboardRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.leaderboard[id]; ok {
		delete(r.s.leaderboard, id)
		r.s.leaderboardI = removeID(r.s.leaderboardI, id)
	}
	return nil
}
