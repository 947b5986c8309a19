package player

import (
	"testing"

	"github.com/riskibarqy/league-registry/internal/domain/team"
)

func TestValidPosition_SportSpecific(t *testing.T) {
	if !ValidPosition(team.SportSoccer, PositionForward) {
		t.Fatalf("expected Forward to be valid for soccer")
	}
	if ValidPosition(team.SportSoccer, PositionPitcher) {
		t.Fatalf("expected Pitcher to be invalid for soccer")
	}
	if !ValidPosition(team.SportHockey, PositionCenter) || !ValidPosition(team.SportBasketball, PositionCenter) {
		t.Fatalf("expected Center to be valid for hockey and basketball")
	}
	if ValidPosition(team.Sport("Cricket"), PositionForward) {
		t.Fatalf("expected unknown sport to accept no positions")
	}
}

func TestPlayerValidate(t *testing.T) {
	item := Player{
		ID:        "p-1",
		FirstName: "A",
		LastName:  "B",
		Number:    7,
		Position:  PositionForward,
		TeamID:    "t-1",
		Status:    StatusActive,
	}
	if err := item.Validate(team.SportSoccer); err != nil {
		t.Fatalf("validate player: %v", err)
	}

	item.Position = PositionQuarterback
	if err := item.Validate(team.SportSoccer); err == nil {
		t.Fatalf("expected position error")
	}
}

func TestParseStatus_DefaultsToActive(t *testing.T) {
	got, err := ParseStatus("")
	if err != nil {
		t.Fatalf("parse status: %v", err)
	}
	if got != StatusActive {
		t.Fatalf("unexpected default status: %s", got)
	}
	if _, err := ParseStatus("Retired"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}
