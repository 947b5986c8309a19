package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/league-registry/internal/domain/player"
	"github.com/riskibarqy/league-registry/internal/domain/schedule"
	"github.com/riskibarqy/league-registry/internal/domain/store"
	"github.com/riskibarqy/league-registry/internal/domain/team"
	"github.com/riskibarqy/league-registry/internal/domain/user"
)

type dataset struct {
	users     map[string]user.User
	teams     map[string]team.Team
	players   map[string]player.Player
	schedules map[string]schedule.Schedule
}

func newDataset() *dataset {
	return &dataset{
		users:     make(map[string]user.User),
		teams:     make(map[string]team.Team),
		players:   make(map[string]player.Player),
		schedules: make(map[string]schedule.Schedule),
	}
}

func (d *dataset) clone() *dataset {
	out := &dataset{
		users:     make(map[string]user.User, len(d.users)),
		teams:     make(map[string]team.Team, len(d.teams)),
		players:   make(map[string]player.Player, len(d.players)),
		schedules: make(map[string]schedule.Schedule, len(d.schedules)),
	}
	for k, v := range d.users {
		out.users[k] = v
	}
	for k, v := range d.teams {
		out.teams[k] = v.Clone()
	}
	for k, v := range d.players {
		out.players[k] = v
	}
	for k, v := range d.schedules {
		out.schedules[k] = v
	}
	return out
}

// Store keeps every entity in process memory. Writes are serialized;
// transactions work on a private copy that replaces the live data on commit.
type Store struct {
	writeMu sync.Mutex
	mu      sync.RWMutex
	data    *dataset
}

func NewStore() *Store {
	return &Store{data: newDataset()}
}

// Repositories returns repositories that operate directly on the live data.
func (s *Store) Repositories() store.Repositories {
	return s.repositories(scope{store: s})
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos store.Repositories) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	working := s.data.clone()
	s.mu.RUnlock()

	if err := fn(ctx, s.repositories(scope{store: s, tx: working})); err != nil {
		return err
	}

	s.mu.Lock()
	s.data = working
	s.mu.Unlock()
	return nil
}

func (s *Store) repositories(sc scope) store.Repositories {
	return store.Repositories{
		Users:     &UserRepository{scope: sc},
		Teams:     &TeamRepository{scope: sc},
		Players:   &PlayerRepository{scope: sc},
		Schedules: &ScheduleRepository{scope: sc},
	}
}

// scope binds a repository either to the live data or to a transaction's
// working copy. A working copy is owned by one goroutine and needs no lock.
type scope struct {
	store *Store
	tx    *dataset
}

func (s scope) view(fn func(d *dataset)) {
	if s.tx != nil {
		fn(s.tx)
		return
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	fn(s.store.data)
}

func (s scope) mutate(fn func(d *dataset) error) error {
	if s.tx != nil {
		return fn(s.tx)
	}
	s.store.writeMu.Lock()
	defer s.store.writeMu.Unlock()
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return fn(s.store.data)
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

func idSet(ids []string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}
