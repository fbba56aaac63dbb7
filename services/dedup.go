package services

import "github.com/Dosada05/leaderboard-admin/models"

// PromotedKeys is the union of every leaderboard entry id and every entry
// name. A participant is considered promoted when its id or its team name is
// in the set.
//
// Ids and names share one key space on purpose: two different teams
// registered under the same name are both hidden once one of them is promoted.
type PromotedKeys map[string]struct{}

func NewPromotedKeys(entries ...*models.LeaderboardEntry) PromotedKeys {
	keys := make(PromotedKeys, len(entries)*2)
	for _, e := range entries {
		if e.ID != "" {
			keys[e.ID] = struct{}{}
		}
		if e.Name != "" {
			keys[e.Name] = struct{}{}
		}
	}
	return keys
}

func (k PromotedKeys) has(key string) bool {
	if key == "" {
		return false
	}
	_, ok := k[key]
	return ok
}

// Covers reports whether p is already represented on the leaderboard.
func (k PromotedKeys) Covers(p *models.Participant) bool {
	return k.has(p.ID) || k.has(p.DisplayTeamName())
}

// Deduplicate returns the participants not covered by the leaderboard, in
// their original order.
func Deduplicate(participants []*models.Participant, leaderboard []*models.LeaderboardEntry) []*models.Participant {
	keys := NewPromotedKeys(leaderboard...)
	remaining := make([]*models.Participant, 0, len(participants))
	for _, p := range participants {
		if !keys.Covers(p) {
			remaining = append(remaining, p)
		}
	}
	return remaining
}
