package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/league-registry/internal/domain/schedule"
	"github.com/riskibarqy/league-registry/internal/infrastructure/repository/memory"
)

func validScheduleInput() ScheduleInput {
	return ScheduleInput{
		HomeTeamID: "t-home",
		AwayTeamID: "t-away",
		Date:       "2026-03-01",
		Location:   "home",
	}
}

func TestScheduleService_CreateSchedule_DualWrite(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, defaultSeed())

	got, err := f.schedules.CreateSchedule(context.Background(), managerPrincipal, "t-home", validScheduleInput())
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	item := got.Schedule
	if item.Arena != "Bernabeu" || item.City != "Madrid" {
		t.Fatalf("expected home venue, got %s/%s", item.Arena, item.City)
	}
	if item.Season != schedule.SeasonRegular || item.Status != schedule.StatusScheduled {
		t.Fatalf("unexpected defaults: season=%s status=%s", item.Season, item.Status)
	}
	if !item.Date.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %s", item.Date)
	}
	if got.HomeTeam == nil || got.AwayTeam == nil || got.AwayTeam.Name != "Barcelona" {
		t.Fatalf("expected joined team summaries, got %+v %+v", got.HomeTeam, got.AwayTeam)
	}

	for _, teamID := range []string{"t-home", "t-away"} {
		if !f.team(t, teamID).HasSchedule(item.ID) {
			t.Fatalf("expected %s to reference schedule %s", teamID, item.ID)
		}
	}
}

func TestScheduleService_CreateSchedule_VenueDerivation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		location  string
		wantArena string
		wantCity  string
	}{
		{location: "home", wantArena: "Bernabeu", wantCity: "Madrid"},
		{location: "AWAY", wantArena: "Camp Nou", wantCity: "Barcelona"},
		{location: "neutral", wantArena: schedule.NeutralArena, wantCity: schedule.NeutralCity},
	}

	for _, tc := range tests {
		t.Run(tc.location, func(t *testing.T) {
			t.Parallel()

			f := newServiceFixture(t, defaultSeed())
			input := validScheduleInput()
			input.Location = tc.location

			got, err := f.schedules.CreateSchedule(context.Background(), managerPrincipal, "t-away", input)
			if err != nil {
				t.Fatalf("create schedule: %v", err)
			}
			if got.Schedule.Arena != tc.wantArena || got.Schedule.City != tc.wantCity {
				t.Fatalf("unexpected venue: %s/%s", got.Schedule.Arena, got.Schedule.City)
			}
		})
	}
}

func TestScheduleService_CreateSchedule_ValidationOrder(t *testing.T) {
	t.Parallel()

	existing := schedule.Schedule{
		ID:         "s-1",
		HomeTeamID: "t-home",
		AwayTeamID: "t-away",
		Date:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:     schedule.StatusScheduled,
	}

	tests := []struct {
		name    string
		scope   string
		mutate  func(in *ScheduleInput)
		wantErr error
	}{
		{
			name:    "missing date",
			scope:   "t-home",
			mutate:  func(in *ScheduleInput) { in.Date = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing location",
			scope:   "t-home",
			mutate:  func(in *ScheduleInput) { in.Location = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:  "bad location beats unknown team",
			scope: "t-home",
			mutate: func(in *ScheduleInput) {
				in.Location = "moon"
				in.HomeTeamID = "t-missing"
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:  "past date beats unknown team",
			scope: "t-home",
			mutate: func(in *ScheduleInput) {
				in.Date = "2025-12-31"
				in.HomeTeamID = "t-missing"
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "now is not in the future",
			scope:   "t-home",
			mutate:  func(in *ScheduleInput) { in.Date = testNow.Format(time.RFC3339) },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unparseable date",
			scope:   "t-home",
			mutate:  func(in *ScheduleInput) { in.Date = "next tuesday" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown away team",
			scope:   "t-home",
			mutate:  func(in *ScheduleInput) { in.AwayTeamID = "t-missing" },
			wantErr: ErrNotFound,
		},
		{
			name:  "unknown team beats same team",
			scope: "t-home",
			mutate: func(in *ScheduleInput) {
				in.HomeTeamID = "t-missing"
				in.AwayTeamID = "t-missing"
			},
			wantErr: ErrNotFound,
		},
		{
			name:    "same team",
			scope:   "t-home",
			mutate:  func(in *ScheduleInput) { in.AwayTeamID = "t-home" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "already scheduled",
			scope:   "t-home",
			mutate:  func(in *ScheduleInput) {},
			wantErr: ErrConflict,
		},
		{
			name:    "scope team not involved",
			scope:   "t-free",
			mutate:  func(in *ScheduleInput) { in.Date = "2026-04-01" },
			wantErr: ErrInvalidInput,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			seed := defaultSeed()
			seed.Schedules = []schedule.Schedule{existing}
			f := newServiceFixture(t, seed)

			input := validScheduleInput()
			tc.mutate(&input)

			_, err := f.schedules.CreateSchedule(context.Background(), managerPrincipal, tc.scope, input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if refs := f.team(t, "t-home").ScheduleIDs; len(refs) != 0 {
				t.Fatalf("no references may be written on failure, got %+v", refs)
			}
		})
	}
}

func TestScheduleService_UpdateSchedule(t *testing.T) {
	t.Parallel()

	seed := defaultSeed()
	seed.Teams[0].ScheduleIDs = []string{"s-1"}
	seed.Teams[1].ScheduleIDs = []string{"s-1", "s-2"}
	seed.Teams[2].ScheduleIDs = []string{"s-2"}
	seed.Schedules = []schedule.Schedule{
		{ID: "s-1", HomeTeamID: "t-home", AwayTeamID: "t-away", Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Status: schedule.StatusScheduled, Season: schedule.SeasonPlayoffs, Location: schedule.LocationHome},
		{ID: "s-2", HomeTeamID: "t-free", AwayTeamID: "t-away", Date: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), Status: schedule.StatusScheduled, Season: schedule.SeasonRegular, Location: schedule.LocationHome},
	}
	f := newServiceFixture(t, seed)
	ctx := context.Background()

	input := ScheduleInput{HomeTeamID: "t-home", AwayTeamID: "t-free", Date: "2026-03-05T18:30:00Z", Location: "away"}

	if _, err := f.schedules.UpdateSchedule(ctx, fanPrincipal, "s-1", input); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-manager, got %v", err)
	}

	got, err := f.schedules.UpdateSchedule(ctx, rivalPrincipal, "s-1", input)
	if err != nil {
		t.Fatalf("update schedule: %v", err)
	}
	if got.Schedule.Season != schedule.SeasonPlayoffs {
		t.Fatalf("expected season to be retained, got %s", got.Schedule.Season)
	}
	if got.Schedule.Arena != "Coliseum" || got.Schedule.City != "Getafe" {
		t.Fatalf("expected away venue, got %s/%s", got.Schedule.Arena, got.Schedule.City)
	}
	if f.team(t, "t-away").HasSchedule("s-1") {
		t.Fatalf("expected t-away to release s-1")
	}
	if !f.team(t, "t-free").HasSchedule("s-1") || !f.team(t, "t-home").HasSchedule("s-1") {
		t.Fatalf("expected t-home and t-free to reference s-1")
	}

	if _, err := f.schedules.UpdateSchedule(ctx, adminPrincipal, "s-1", input); err != nil {
		t.Fatalf("re-submitting the same matchup must not conflict with itself: %v", err)
	}

	clash := ScheduleInput{HomeTeamID: "t-free", AwayTeamID: "t-away", Date: "2026-04-01", Location: "home"}
	if _, err := f.schedules.UpdateSchedule(ctx, adminPrincipal, "s-1", clash); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestScheduleService_UpdateSchedule_StatusTransitions(t *testing.T) {
	t.Parallel()

	seed := defaultSeed()
	seed.Schedules = []schedule.Schedule{
		{ID: "s-1", HomeTeamID: "t-home", AwayTeamID: "t-away", Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Status: schedule.StatusScheduled, Season: schedule.SeasonRegular},
	}
	f := newServiceFixture(t, seed)
	ctx := context.Background()

	input := validScheduleInput()
	input.Status = "Canceled"
	got, err := f.schedules.UpdateSchedule(ctx, managerPrincipal, "s-1", input)
	if err != nil {
		t.Fatalf("cancel schedule: %v", err)
	}
	if got.Schedule.Status != schedule.StatusCanceled {
		t.Fatalf("unexpected status: %s", got.Schedule.Status)
	}

	input.Status = "Scheduled"
	if _, err := f.schedules.UpdateSchedule(ctx, managerPrincipal, "s-1", input); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput reopening a canceled fixture, got %v", err)
	}

	input.Status = ""
	got, err = f.schedules.UpdateSchedule(ctx, managerPrincipal, "s-1", input)
	if err != nil {
		t.Fatalf("update without status: %v", err)
	}
	if got.Schedule.Status != schedule.StatusCanceled {
		t.Fatalf("expected status to be retained, got %s", got.Schedule.Status)
	}
}

func TestScheduleService_DeleteSchedule_PrunesBothTeams(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, defaultSeed())
	ctx := context.Background()

	created, err := f.schedules.CreateSchedule(ctx, managerPrincipal, "t-home", validScheduleInput())
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	scheduleID := created.Schedule.ID

	if err := f.schedules.DeleteSchedule(ctx, fanPrincipal, scheduleID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := f.schedules.DeleteSchedule(ctx, rivalPrincipal, scheduleID); err != nil {
		t.Fatalf("delete schedule: %v", err)
	}
	for _, teamID := range []string{"t-home", "t-away"} {
		if f.team(t, teamID).HasSchedule(scheduleID) {
			t.Fatalf("expected %s to drop %s", teamID, scheduleID)
		}
	}
	if _, err := f.schedules.GetSchedule(ctx, scheduleID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestScheduleService_ListSchedules(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, memory.Seed{})
	items, err := f.schedules.ListSchedules(context.Background())
	if err != nil {
		t.Fatalf("list schedules: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", items)
	}

	f = newServiceFixture(t, defaultSeed())
	ctx := context.Background()
	if _, err := f.schedules.CreateSchedule(ctx, managerPrincipal, "t-home", validScheduleInput()); err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	if err := f.store.Repositories().Teams.Delete(ctx, "t-away"); err != nil {
		t.Fatalf("delete team: %v", err)
	}

	items, err = f.schedules.ListSchedules(ctx)
	if err != nil {
		t.Fatalf("list schedules: %v", err)
	}
	if len(items) != 1 || items[0].HomeTeam == nil || items[0].AwayTeam != nil {
		t.Fatalf("expected dangling away side to resolve to nil, got %+v", items)
	}

	byTeam, err := f.teams.ListTeamSchedules(ctx, "t-home")
	if err != nil || len(byTeam) != 1 {
		t.Fatalf("list team schedules: %d %v", len(byTeam), err)
	}
}
