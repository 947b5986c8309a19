package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/league-registry/internal/domain/event"
	"github.com/riskibarqy/league-registry/internal/domain/schedule"
	"github.com/riskibarqy/league-registry/internal/domain/team"
	"github.com/riskibarqy/league-registry/internal/domain/user"
	"github.com/riskibarqy/league-registry/internal/infrastructure/repository/memory"
)

func TestTeamService_CreateTeam_RequesterBecomesManager(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, defaultSeed())

	created, err := f.teams.CreateTeam(context.Background(), fanPrincipal, CreateTeamInput{
		Name:            "  Valencia ",
		City:            "Valencia",
		Stadium:         "Mestalla",
		Sport:           "Soccer",
		TeamType:        "Professional",
		StadiumCapacity: 49430,
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if created.ID != "team-001" || created.Name != "Valencia" {
		t.Fatalf("unexpected team: %+v", created)
	}
	if created.ManagerID != fanPrincipal.UserID || created.CreatedBy != fanPrincipal.UserID {
		t.Fatalf("expected requester as manager and creator, got manager=%s created_by=%s", created.ManagerID, created.CreatedBy)
	}
	if !created.CreatedAt.Equal(testNow) {
		t.Fatalf("unexpected created_at: %s", created.CreatedAt)
	}
	if got := f.events.types(); len(got) != 1 || got[0] != event.TypeTeamCreated {
		t.Fatalf("unexpected events: %+v", got)
	}
}

func TestTeamService_CreateTeam_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		principal user.Principal
		input     CreateTeamInput
		wantErr   error
	}{
		{
			name:      "missing principal",
			principal: user.Principal{},
			input:     CreateTeamInput{Name: "A", City: "B", Stadium: "C", Sport: "Soccer"},
			wantErr:   ErrUnauthenticated,
		},
		{
			name:      "missing stadium",
			principal: fanPrincipal,
			input:     CreateTeamInput{Name: "A", City: "B", Sport: "Soccer"},
			wantErr:   ErrInvalidInput,
		},
		{
			name:      "unknown sport",
			principal: fanPrincipal,
			input:     CreateTeamInput{Name: "A", City: "B", Stadium: "C", Sport: "Cricket"},
			wantErr:   ErrInvalidInput,
		},
		{
			name:      "negative capacity",
			principal: fanPrincipal,
			input:     CreateTeamInput{Name: "A", City: "B", Stadium: "C", Sport: "Soccer", StadiumCapacity: -1},
			wantErr:   ErrInvalidInput,
		},
		{
			name:      "duplicate name ignoring case",
			principal: fanPrincipal,
			input:     CreateTeamInput{Name: "real madrid", City: "B", Stadium: "C", Sport: "Soccer"},
			wantErr:   ErrConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFixture(t, defaultSeed())
			_, err := f.teams.CreateTeam(context.Background(), tc.principal, tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if len(f.events.types()) != 0 {
				t.Fatalf("expected no events on failure")
			}
		})
	}
}

func TestTeamService_AdminCreateTeam(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, defaultSeed())
	input := CreateTeamInput{Name: "Sevilla", City: "Sevilla", Stadium: "Sanchez Pizjuan", Sport: "Soccer"}

	if _, err := f.teams.AdminCreateTeam(context.Background(), managerPrincipal, input); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin, got %v", err)
	}

	created, err := f.teams.AdminCreateTeam(context.Background(), adminPrincipal, input)
	if err != nil {
		t.Fatalf("admin create team: %v", err)
	}
	if created.ManagerID != adminPrincipal.UserID {
		t.Fatalf("expected admin as manager, got %s", created.ManagerID)
	}

	input.Name = "Betis"
	input.ManagerID = "u-missing"
	if _, err := f.teams.AdminCreateTeam(context.Background(), adminPrincipal, input); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown manager, got %v", err)
	}
}

func TestTeamService_UpdateTeam_ManagerOnly(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, defaultSeed())
	ctx := context.Background()
	patch := UpdateTeamInput{City: stringPtr("Madrid City")}

	if _, err := f.teams.UpdateTeam(ctx, rivalPrincipal, "t-home", patch); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for other manager, got %v", err)
	}
	if _, err := f.teams.UpdateTeam(ctx, adminPrincipal, "t-home", patch); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for admin on manager route, got %v", err)
	}
	if _, err := f.teams.UpdateTeam(ctx, managerPrincipal, "t-free", patch); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for team without manager, got %v", err)
	}
	if _, err := f.teams.UpdateTeam(ctx, managerPrincipal, "t-missing", patch); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := f.teams.UpdateTeam(ctx, managerPrincipal, "t-home", UpdateTeamInput{ManagerID: stringPtr("u-fan")}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for manager reassignment, got %v", err)
	}

	updated, err := f.teams.UpdateTeam(ctx, managerPrincipal, "t-home", patch)
	if err != nil {
		t.Fatalf("update team: %v", err)
	}
	if updated.City != "Madrid City" || updated.UpdatedBy != managerPrincipal.UserID {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	if stored := f.team(t, "t-home"); len(stored.PlayerIDs) != 1 {
		t.Fatalf("expected roster to be preserved, got %+v", stored.PlayerIDs)
	}
}

func TestTeamService_UpdateTeam_RenameConflict(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, defaultSeed())

	_, err := f.teams.UpdateTeam(context.Background(), managerPrincipal, "t-home", UpdateTeamInput{Name: stringPtr("Barcelona")})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	if _, err := f.teams.UpdateTeam(context.Background(), managerPrincipal, "t-home", UpdateTeamInput{Name: stringPtr("Real Madrid")}); err != nil {
		t.Fatalf("keeping own name should pass: %v", err)
	}
}

func TestTeamService_AdminUpdateTeam_ReassignsManager(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, defaultSeed())
	ctx := context.Background()

	if _, err := f.teams.AdminUpdateTeam(ctx, managerPrincipal, "t-free", UpdateTeamInput{}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin, got %v", err)
	}
	if _, err := f.teams.AdminUpdateTeam(ctx, adminPrincipal, "t-free", UpdateTeamInput{ManagerID: stringPtr("u-missing")}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown manager, got %v", err)
	}

	updated, err := f.teams.AdminUpdateTeam(ctx, adminPrincipal, "t-free", UpdateTeamInput{ManagerID: stringPtr("u-fan")})
	if err != nil {
		t.Fatalf("admin update team: %v", err)
	}
	if updated.ManagerID != "u-fan" {
		t.Fatalf("expected manager u-fan, got %s", updated.ManagerID)
	}
	if _, err := f.teams.UpdateTeam(ctx, fanPrincipal, "t-free", UpdateTeamInput{Stadium: stringPtr("New Coliseum")}); err != nil {
		t.Fatalf("new manager should be allowed to update: %v", err)
	}
}

func TestTeamService_DeleteTeam_OrphansPlayers(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, defaultSeed())
	ctx := context.Background()

	if _, err := f.teams.DeleteTeam(ctx, rivalPrincipal, "t-home"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	result, err := f.teams.DeleteTeam(ctx, managerPrincipal, "t-home")
	if err != nil {
		t.Fatalf("delete team: %v", err)
	}
	if result.ClearedPlayers != 1 {
		t.Fatalf("expected 1 cleared player, got %d", result.ClearedPlayers)
	}
	if p := f.player(t, "p-1"); !p.Orphaned() {
		t.Fatalf("expected p-1 to be orphaned, team=%q", p.TeamID)
	}
	if _, err := f.teams.GetTeam(ctx, "t-home"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected deleted team to be gone, got %v", err)
	}
	if _, err := f.teams.DeleteTeam(ctx, managerPrincipal, "t-home"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestTeamService_DeleteTeam_AdminWithoutPlayers(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, defaultSeed())

	result, err := f.teams.DeleteTeam(context.Background(), adminPrincipal, "t-free")
	if err != nil {
		t.Fatalf("delete team: %v", err)
	}
	if result.ClearedPlayers != 0 {
		t.Fatalf("expected zero cleared players, got %d", result.ClearedPlayers)
	}
}

func TestTeamService_GetTeam_HydratesJoins(t *testing.T) {
	t.Parallel()

	seed := defaultSeed()
	seed.Teams[0].ScheduleIDs = []string{"s-1"}
	seed.Teams[1].ScheduleIDs = []string{"s-1"}
	seed.Schedules = []schedule.Schedule{
		{ID: "s-1", HomeTeamID: "t-home", AwayTeamID: "t-away", Date: testNow.AddDate(0, 1, 0), Status: schedule.StatusScheduled},
	}
	f := newServiceFixture(t, seed)

	details, err := f.teams.GetTeam(context.Background(), "t-home")
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if details.Manager == nil || details.Manager.Username != "manager" {
		t.Fatalf("unexpected manager: %+v", details.Manager)
	}
	if len(details.Players) != 1 || details.Players[0].ID != "p-1" {
		t.Fatalf("unexpected roster: %+v", details.Players)
	}
	if len(details.Schedules) != 1 {
		t.Fatalf("unexpected schedules: %+v", details.Schedules)
	}
	if details.Schedules[0].AwayTeam == nil || details.Schedules[0].AwayTeam.Name != "Barcelona" {
		t.Fatalf("expected away team summary, got %+v", details.Schedules[0].AwayTeam)
	}
}

func TestTeamService_ListTeams(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, defaultSeed())
	ctx := context.Background()

	page, err := f.teams.ListTeams(ctx, ListTeamsInput{})
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("expected default limit of 2 items, got %d", len(page.Items))
	}
	if page.Items[0].Team.Name != "Barcelona" || page.Items[1].Team.Name != "Getafe" {
		t.Fatalf("unexpected order: %s, %s", page.Items[0].Team.Name, page.Items[1].Team.Name)
	}
	if page.Page.Total != 3 || page.Page.TotalPages != 2 || page.Page.Page != 1 {
		t.Fatalf("unexpected page info: %+v", page.Page)
	}

	page, err = f.teams.ListTeams(ctx, ListTeamsInput{Search: "MADRID", Page: PageRequest{Page: 1, Limit: 50}})
	if err != nil {
		t.Fatalf("search teams: %v", err)
	}
	if len(page.Items) != 1 || page.Page.Limit != 5 {
		t.Fatalf("expected one match with clamped limit, got %d items limit=%d", len(page.Items), page.Page.Limit)
	}
	if len(page.Items[0].Players) != 1 {
		t.Fatalf("expected hydrated roster on list rows")
	}

	if _, err := f.teams.ListTeams(ctx, ListTeamsInput{Page: PageRequest{Page: 9}}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty page, got %v", err)
	}
	if _, err := f.teams.ListTeams(ctx, ListTeamsInput{Page: PageRequest{Page: -1}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative page, got %v", err)
	}
}

func TestTeamService_ListTeams_EmptyStore(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, memory.Seed{})
	if _, err := f.teams.ListTeams(context.Background(), ListTeamsInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_PublishFailureDoesNotFailMutation(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, defaultSeed())
	f.events.err = errors.New("broker down")

	if _, err := f.teams.CreateTeam(context.Background(), fanPrincipal, CreateTeamInput{
		Name: "Osasuna", City: "Pamplona", Stadium: "El Sadar", Sport: string(team.SportSoccer),
	}); err != nil {
		t.Fatalf("expected publish failure to be swallowed, got %v", err)
	}
}
