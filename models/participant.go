package models

import "time"

// ParticipantStatus — статус регистрации команды.
type ParticipantStatus string

const (
	ParticipantStatusRegistered    ParticipantStatus = "registered"
	ParticipantStatusInLeaderboard ParticipantStatus = "in_leaderboard"
)

// Participant — зарегистрированная команда из двух участников.
type Participant struct {
	ID           string            `json:"id" firestore:"-" db:"id"`
	Participant1 string            `json:"participant1" firestore:"participant1" db:"participant1"`
	Participant2 string            `json:"participant2" firestore:"participant2" db:"participant2"`
	Phone1       string            `json:"phone1" firestore:"phone1" db:"phone1"`
	Phone2       string            `json:"phone2" firestore:"phone2" db:"phone2"`
	TeamName     string            `json:"teamName" firestore:"teamName" db:"team_name"`
	UniqueCode   string            `json:"uniqueCode" firestore:"uniqueCode" db:"unique_code"`
	CreatedAt    time.Time         `json:"created_at" firestore:"created_at,serverTimestamp" db:"created_at"`
	Status       ParticipantStatus `json:"status" firestore:"status" db:"status"`

	// Name holds the team name of documents written before teamName existed.
	Name string `json:"name,omitempty" firestore:"name,omitempty" db:"-"`
}

// DisplayTeamName returns teamName, falling back to the legacy name field.
func (p *Participant) DisplayTeamName() string {
	if p.TeamName != "" {
		return p.TeamName
	}
	return p.Name
}

// ParticipantView — участник с данными из таблицы лидеров для списка на главной странице.
type ParticipantView struct {
	Participant

	InLeaderboard     bool   `json:"in_leaderboard"`
	LeaderboardStatus string `json:"leaderboard_status"`
	LeaderboardPoints int    `json:"leaderboard_points"`
	LeaderboardWins   int    `json:"leaderboard_wins"`
	GamesPlayed       int    `json:"games_played"`
}

// LeaderboardStatusNotStarted is reported for participants that were never promoted.
const LeaderboardStatusNotStarted = "not_started"
