package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/league-registry/internal/domain/event"
	"github.com/riskibarqy/league-registry/internal/domain/player"
	"github.com/riskibarqy/league-registry/internal/domain/team"
	"github.com/riskibarqy/league-registry/internal/domain/user"
	"github.com/riskibarqy/league-registry/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-registry/internal/platform/logging"
)

var testNow = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

var (
	adminPrincipal   = user.Principal{UserID: "u-admin", Username: "admin", Role: user.RoleAdmin}
	managerPrincipal = user.Principal{UserID: "u-mgr", Username: "manager", Role: user.RoleManager}
	rivalPrincipal   = user.Principal{UserID: "u-rival", Username: "rival", Role: user.RoleManager}
	fanPrincipal     = user.Principal{UserID: "u-fan", Username: "fan", Role: user.RoleUser}
)

type sequenceIDGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s-%03d", g.prefix, g.next), nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, evt event.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.err
}

func (p *recordingPublisher) types() []event.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]event.Type, 0, len(p.events))
	for _, evt := range p.events {
		out = append(out, evt.Type)
	}
	return out
}

type serviceFixture struct {
	store     *memory.Store
	clock     *clockwork.FakeClock
	events    *recordingPublisher
	teams     *TeamService
	players   *PlayerService
	schedules *ScheduleService
}

func defaultSeed() memory.Seed {
	return memory.Seed{
		Users: []user.User{
			{ID: "u-admin", Username: "admin", Email: "admin@example.com", PasswordHash: "h", Role: user.RoleAdmin},
			{ID: "u-mgr", Username: "manager", Email: "mgr@example.com", PasswordHash: "h", Role: user.RoleManager, FirstName: "Carlo"},
			{ID: "u-rival", Username: "rival", Email: "rival@example.com", PasswordHash: "h", Role: user.RoleManager},
			{ID: "u-fan", Username: "fan", Email: "fan@example.com", PasswordHash: "h", Role: user.RoleUser},
		},
		Teams: []team.Team{
			{ID: "t-home", Name: "Real Madrid", City: "Madrid", Stadium: "Bernabeu", Sport: team.SportSoccer, ManagerID: "u-mgr", PlayerIDs: []string{"p-1"}},
			{ID: "t-away", Name: "Barcelona", City: "Barcelona", Stadium: "Camp Nou", Sport: team.SportSoccer, ManagerID: "u-rival"},
			{ID: "t-free", Name: "Getafe", City: "Getafe", Stadium: "Coliseum", Sport: team.SportSoccer},
		},
		Players: []player.Player{
			{ID: "p-1", FirstName: "Luka", LastName: "Modric", Number: 10, Position: player.PositionMidfielder, TeamID: "t-home", Status: player.StatusActive},
			{ID: "p-orphan", FirstName: "Free", LastName: "Agent", Number: 99, Position: player.PositionForward, Status: player.StatusActive},
		},
	}
}

func newServiceFixture(t *testing.T, seed memory.Seed) *serviceFixture {
	t.Helper()

	s := memory.NewSeededStore(seed)
	repos := s.Repositories()
	clock := clockwork.NewFakeClockAt(testNow)
	events := &recordingPublisher{}
	logger := logging.NewNop()
	limits := ListLimits{Default: 2, Max: 5}

	teams := NewTeamService(repos, s, &sequenceIDGenerator{prefix: "team"}, events, logger, limits, 2)
	teams.clock = clock
	players := NewPlayerService(repos, s, &sequenceIDGenerator{prefix: "player"}, events, logger, limits)
	players.clock = clock
	schedules := NewScheduleService(repos, s, &sequenceIDGenerator{prefix: "schedule"}, events, logger)
	schedules.clock = clock

	return &serviceFixture{
		store:     s,
		clock:     clock,
		events:    events,
		teams:     teams,
		players:   players,
		schedules: schedules,
	}
}

func (f *serviceFixture) team(t *testing.T, teamID string) team.Team {
	t.Helper()
	item, exists, err := f.store.Repositories().Teams.GetByID(context.Background(), teamID)
	if err != nil || !exists {
		t.Fatalf("get team %s: exists=%v err=%v", teamID, exists, err)
	}
	return item
}

func (f *serviceFixture) player(t *testing.T, playerID string) player.Player {
	t.Helper()
	item, exists, err := f.store.Repositories().Players.GetByID(context.Background(), playerID)
	if err != nil || !exists {
		t.Fatalf("get player %s: exists=%v err=%v", playerID, exists, err)
	}
	return item
}

func stringPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }

func newFakeClock() *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(testNow)
}
