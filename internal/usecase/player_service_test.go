package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/league-registry/internal/domain/event"
	"github.com/riskibarqy/league-registry/internal/domain/player"
)

func TestPlayerService_AddPlayer_AppendsToRoster(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, defaultSeed())

	got, err := f.players.AddPlayer(context.Background(), fanPrincipal, "t-home", AddPlayerInput{
		FirstName: "Jude",
		LastName:  "Bellingham",
		Number:    5,
		Position:  "Midfielder",
	})
	if err != nil {
		t.Fatalf("add player: %v", err)
	}
	if got.Player.ID != "player-001" || got.Player.TeamID != "t-home" {
		t.Fatalf("unexpected player: %+v", got.Player)
	}
	if got.Player.Status != player.StatusActive {
		t.Fatalf("expected default status Active, got %s", got.Player.Status)
	}
	if got.Team == nil || got.Team.Name != "Real Madrid" {
		t.Fatalf("expected team summary, got %+v", got.Team)
	}

	roster := f.team(t, "t-home").PlayerIDs
	if len(roster) != 2 || roster[1] != "player-001" {
		t.Fatalf("unexpected roster: %+v", roster)
	}
	if types := f.events.types(); len(types) != 1 || types[0] != event.TypePlayerCreated {
		t.Fatalf("unexpected events: %+v", types)
	}
}

func TestPlayerService_AddPlayer_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		teamID  string
		input   AddPlayerInput
		wantErr error
	}{
		{
			name:    "missing last name",
			teamID:  "t-home",
			input:   AddPlayerInput{FirstName: "Jude", Number: 5, Position: "Midfielder"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "team not found",
			teamID:  "t-missing",
			input:   AddPlayerInput{FirstName: "Jude", LastName: "B", Number: 5, Position: "Midfielder"},
			wantErr: ErrNotFound,
		},
		{
			name:    "duplicate number",
			teamID:  "t-home",
			input:   AddPlayerInput{FirstName: "Jude", LastName: "B", Number: 10, Position: "Midfielder"},
			wantErr: ErrConflict,
		},
		{
			name:    "position from another sport",
			teamID:  "t-home",
			input:   AddPlayerInput{FirstName: "Jude", LastName: "B", Number: 5, Position: "Quarterback"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown status",
			teamID:  "t-home",
			input:   AddPlayerInput{FirstName: "Jude", LastName: "B", Number: 5, Position: "Midfielder", Status: "Retired"},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFixture(t, defaultSeed())
			_, err := f.players.AddPlayer(context.Background(), fanPrincipal, tc.teamID, tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if roster := f.team(t, "t-home").PlayerIDs; len(roster) != 1 {
				t.Fatalf("roster must be unchanged on failure, got %+v", roster)
			}
		})
	}
}

func TestPlayerService_UpdatePlayer(t *testing.T) {
	t.Parallel()

	seed := defaultSeed()
	seed.Players = append(seed.Players, player.Player{
		ID: "p-2", FirstName: "Toni", LastName: "Kroos", Number: 8, Position: player.PositionMidfielder, TeamID: "t-home", Status: player.StatusActive,
	})
	seed.Teams[0].PlayerIDs = []string{"p-1", "p-2"}
	f := newServiceFixture(t, seed)
	ctx := context.Background()

	if _, err := f.players.UpdatePlayer(ctx, managerPrincipal, "p-orphan", UpdatePlayerInput{Number: intPtr(1)}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for orphaned player, got %v", err)
	}
	if _, err := f.players.UpdatePlayer(ctx, rivalPrincipal, "p-1", UpdatePlayerInput{Number: intPtr(1)}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := f.players.UpdatePlayer(ctx, managerPrincipal, "p-1", UpdatePlayerInput{Number: intPtr(8)}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on number clash, got %v", err)
	}
	if _, err := f.players.UpdatePlayer(ctx, managerPrincipal, "p-1", UpdatePlayerInput{Position: stringPtr("Goaltender")}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for hockey position on soccer team, got %v", err)
	}
	if _, err := f.players.UpdatePlayer(ctx, managerPrincipal, "p-missing", UpdatePlayerInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	got, err := f.players.UpdatePlayer(ctx, managerPrincipal, "p-1", UpdatePlayerInput{
		Number: intPtr(10),
		Status: stringPtr("Injured"),
	})
	if err != nil {
		t.Fatalf("update player: %v", err)
	}
	if got.Player.Status != player.StatusInjured || got.Player.Number != 10 {
		t.Fatalf("unexpected player: %+v", got.Player)
	}

	if _, err := f.players.UpdatePlayer(ctx, adminPrincipal, "p-2", UpdatePlayerInput{Number: intPtr(4)}); err != nil {
		t.Fatalf("admin update should pass: %v", err)
	}
	if stored := f.player(t, "p-2"); stored.Number != 4 || stored.UpdatedBy != adminPrincipal.UserID {
		t.Fatalf("unexpected stored player: %+v", stored)
	}
}

func TestPlayerService_DeletePlayer_PrunesRoster(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, defaultSeed())
	ctx := context.Background()

	if err := f.players.DeletePlayer(ctx, rivalPrincipal, "p-1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := f.players.DeletePlayer(ctx, managerPrincipal, "p-orphan"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for orphaned player, got %v", err)
	}
	if err := f.players.DeletePlayer(ctx, managerPrincipal, "p-1"); err != nil {
		t.Fatalf("delete player: %v", err)
	}
	if roster := f.team(t, "t-home").PlayerIDs; len(roster) != 0 {
		t.Fatalf("expected empty roster, got %+v", roster)
	}
	if _, err := f.players.GetPlayer(ctx, "p-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestPlayerService_ListPlayers(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, defaultSeed())
	ctx := context.Background()

	page, err := f.players.ListPlayers(ctx, ListPlayersInput{TeamID: "t-home"})
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Team == nil || page.Items[0].Team.ID != "t-home" {
		t.Fatalf("unexpected items: %+v", page.Items)
	}

	page, err = f.players.ListPlayers(ctx, ListPlayersInput{Search: "agent"})
	if err != nil {
		t.Fatalf("search players: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Team != nil {
		t.Fatalf("expected orphaned player without team, got %+v", page.Items)
	}

	if _, err := f.players.ListPlayers(ctx, ListPlayersInput{Position: "Goalkeeper"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound when nothing matches, got %v", err)
	}
}
