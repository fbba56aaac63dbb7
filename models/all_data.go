package models

const (
	CollectionParticipants = "participants"
	CollectionLeaderboard  = "leaderboard"
)

// ParticipantRecord is a participant as listed in the combined view.
type ParticipantRecord struct {
	Participant
	Collection string `json:"collection"`
}

// LeaderboardRecord is a leaderboard entry as listed in the combined view,
// optionally decorated with the contact fields of the team it came from.
type LeaderboardRecord struct {
	LeaderboardEntry
	Collection string `json:"collection"`

	Participant1 *string `json:"participant1,omitempty"`
	Participant2 *string `json:"participant2,omitempty"`
	Phone1       *string `json:"phone1,omitempty"`
	Phone2       *string `json:"phone2,omitempty"`
	UniqueCode   *string `json:"uniqueCode,omitempty"`
}

// Enriched reports whether participant fields were attached.
func (r *LeaderboardRecord) Enriched() bool {
	return r.Participant1 != nil
}

type AllData struct {
	Participants []*ParticipantRecord `json:"participants"`
	Leaderboard  []*LeaderboardRecord `json:"leaderboard"`
}
