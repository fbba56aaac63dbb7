package repositories

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/Dosada05/leaderboard-admin/models"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	participantsCollection = "participants"
	leaderboardCollection  = "leaderboard"
)

func isFirestoreNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// collectDocuments reads every document of the iterator, decoding with decode.
func collectDocuments[T any](iter *firestore.DocumentIterator, decode func(*firestore.DocumentSnapshot) (*T, error)) ([]*T, error) {
	defer iter.Stop()

	items := make([]*T, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		item, err := decode(doc)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

type firestoreParticipantRepository struct {
	client *firestore.Client
}

func NewFirestoreParticipantRepository(client *firestore.Client) ParticipantRepository {
	return &firestoreParticipantRepository{client: client}
}

func (r *firestoreParticipantRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(participantsCollection)
}

func decodeParticipant(doc *firestore.DocumentSnapshot) (*models.Participant, error) {
	p := &models.Participant{}
	if err := doc.DataTo(p); err != nil {
		return nil, fmt.Errorf("failed to decode participant %s: %w", doc.Ref.ID, err)
	}
	p.ID = doc.Ref.ID
	return p, nil
}

func (r *firestoreParticipantRepository) Create(ctx context.Context, p *models.Participant) error {
	ref := r.collection().NewDoc()
	// created_at помечен serverTimestamp: пустое значение заменяется временем сервера.
	result, err := ref.Create(ctx, p)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return ErrParticipantConflict
		}
		return fmt.Errorf("failed to create participant: %w", err)
	}
	p.ID = ref.ID
	if p.CreatedAt.IsZero() {
		p.CreatedAt = result.UpdateTime
	}
	return nil
}

func (r *firestoreParticipantRepository) FindByID(ctx context.Context, id string) (*models.Participant, error) {
	doc, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if isFirestoreNotFound(err) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to find participant: %w", err)
	}
	return decodeParticipant(doc)
}

func (r *firestoreParticipantRepository) FindFirstByTeamName(ctx context.Context, teamName string) (*models.Participant, error) {
	iter := r.collection().Where("teamName", "==", teamName).Limit(1).Documents(ctx)
	participants, err := collectDocuments(iter, decodeParticipant)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants by team name: %w", err)
	}
	if len(participants) == 0 {
		return nil, ErrParticipantNotFound
	}
	return participants[0], nil
}

func (r *firestoreParticipantRepository) List(ctx context.Context) ([]*models.Participant, error) {
	participants, err := collectDocuments(r.collection().Documents(ctx), decodeParticipant)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return participants, nil
}

func (r *firestoreParticipantRepository) ListByCreatedDesc(ctx context.Context) ([]*models.Participant, error) {
	iter := r.collection().OrderBy("created_at", firestore.Desc).Documents(ctx)
	participants, err := collectDocuments(iter, decodeParticipant)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return participants, nil
}

func (r *firestoreParticipantRepository) UpdateStatus(ctx context.Context, id string, st models.ParticipantStatus) error {
	_, err := r.collection().Doc(id).Update(ctx, []firestore.Update{{Path: "status", Value: string(st)}})
	if err != nil {
		if isFirestoreNotFound(err) {
			return ErrParticipantNotFound
		}
		return fmt.Errorf("failed to update participant status: %w", err)
	}
	return nil
}

func (r *firestoreParticipantRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.collection().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	return nil
}

type firestoreLeaderboardRepository struct {
	client *firestore.Client
}

func NewFirestoreLeaderboardRepository(client *firestore.Client) LeaderboardRepository {
	return &firestoreLeaderboardRepository{client: client}
}

func (r *firestoreLeaderboardRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(leaderboardCollection)
}

func decodeLeaderboardEntry(doc *firestore.DocumentSnapshot) (*models.LeaderboardEntry, error) {
	e := &models.LeaderboardEntry{}
	if err := doc.DataTo(e); err != nil {
		return nil, fmt.Errorf("failed to decode leaderboard entry %s: %w", doc.Ref.ID, err)
	}
	e.ID = doc.Ref.ID
	return e, nil
}

func (r *firestoreLeaderboardRepository) Create(ctx context.Context, entry *models.LeaderboardEntry) error {
	if entry.ID == "" {
		return errors.New("leaderboard entry id is required")
	}
	if _, err := r.collection().Doc(entry.ID).Create(ctx, entry); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return ErrLeaderboardEntryConflict
		}
		return fmt.Errorf("failed to create leaderboard entry: %w", err)
	}
	return nil
}

func (r *firestoreLeaderboardRepository) FindByID(ctx context.Context, id string) (*models.LeaderboardEntry, error) {
	doc, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if isFirestoreNotFound(err) {
			return nil, ErrLeaderboardEntryNotFound
		}
		return nil, fmt.Errorf("failed to find leaderboard entry: %w", err)
	}
	return decodeLeaderboardEntry(doc)
}

func (r *firestoreLeaderboardRepository) FindByName(ctx context.Context, name string) ([]*models.LeaderboardEntry, error) {
	entries, err := collectDocuments(r.collection().Where("name", "==", name).Documents(ctx), decodeLeaderboardEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard by name: %w", err)
	}
	return entries, nil
}

func (r *firestoreLeaderboardRepository) List(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	entries, err := collectDocuments(r.collection().Documents(ctx), decodeLeaderboardEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboard: %w", err)
	}
	return entries, nil
}

func (r *firestoreLeaderboardRepository) ListByPointsDesc(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	iter := r.collection().OrderBy("totalPoints", firestore.Desc).Documents(ctx)
	entries, err := collectDocuments(iter, decodeLeaderboardEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboard: %w", err)
	}
	return entries, nil
}

func (r *firestoreLeaderboardRepository) UpdateStatus(ctx context.Context, id string, st models.LeaderboardStatus) error {
	_, err := r.collection().Doc(id).Update(ctx, []firestore.Update{{Path: "status", Value: string(st)}})
	if err != nil {
		if isFirestoreNotFound(err) {
			return ErrLeaderboardEntryNotFound
		}
		return fmt.Errorf("failed to update leaderboard status: %w", err)
	}
	return nil
}

func (r *firestoreLeaderboardRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.collection().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete leaderboard entry: %w", err)
	}
	return nil
}
