package models

type LeaderboardStatus string

const (
	LeaderboardStatusOnline  LeaderboardStatus = "online"
	LeaderboardStatusOffline LeaderboardStatus = "offline"
)

// IsValid reports whether s is one of the statuses an admin may set.
func (s LeaderboardStatus) IsValid() bool {
	switch s {
	case LeaderboardStatusOnline, LeaderboardStatusOffline:
		return true
	default:
		return false
	}
}

// LeaderboardEntry — команда в таблице лидеров. ID совпадает с ID участника,
// из которого запись была создана.
type LeaderboardEntry struct {
	ID          string            `json:"id" firestore:"-" db:"id"`
	Name        string            `json:"name" firestore:"name" db:"name"`
	Status      LeaderboardStatus `json:"status" firestore:"status" db:"status"`
	TotalPoints int               `json:"totalPoints" firestore:"totalPoints" db:"total_points"`
	Wins        int               `json:"wins" firestore:"wins" db:"wins"`
	GamesPlayed int               `json:"gamesPlayed" firestore:"gamesPlayed" db:"games_played"`
}
