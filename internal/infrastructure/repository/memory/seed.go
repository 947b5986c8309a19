package memory

import (
	"github.com/riskibarqy/league-registry/internal/domain/player"
	"github.com/riskibarqy/league-registry/internal/domain/schedule"
	"github.com/riskibarqy/league-registry/internal/domain/team"
	"github.com/riskibarqy/league-registry/internal/domain/user"
)

// Seed is a batch of records loaded into a store without validation.
type Seed struct {
	Users     []user.User
	Teams     []team.Team
	Players   []player.Player
	Schedules []schedule.Schedule
}

// NewSeededStore returns a store preloaded with seed.
func NewSeededStore(seed Seed) *Store {
	s := NewStore()
	s.Load(seed)
	return s
}

// Load inserts or replaces the seeded records.
func (s *Store) Load(seed Seed) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range seed.Users {
		s.data.users[item.ID] = item
	}
	for _, item := range seed.Teams {
		s.data.teams[item.ID] = item.Clone()
	}
	for _, item := range seed.Players {
		s.data.players[item.ID] = item
	}
	for _, item := range seed.Schedules {
		s.data.schedules[item.ID] = item
	}
}
