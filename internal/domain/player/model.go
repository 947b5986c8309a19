package player

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-registry/internal/domain/team"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusInjured  Status = "Injured"
	StatusInactive Status = "Inactive"
)

var AllStatuses = map[Status]struct{}{
	StatusActive:   {},
	StatusInjured:  {},
	StatusInactive: {},
}

// ParseStatus defaults to StatusActive when v is empty.
func ParseStatus(v string) (Status, error) {
	value := Status(strings.TrimSpace(v))
	if value == "" {
		return StatusActive, nil
	}
	if _, ok := AllStatuses[value]; !ok {
		return "", fmt.Errorf("invalid player status: %s", v)
	}
	return value, nil
}

// Player is a rostered athlete. TeamID is empty only after the owning team
// was deleted.
type Player struct {
	ID        string
	FirstName string
	LastName  string
	Hometown  string
	Number    int
	Position  Position
	TeamID    string
	Status    Status
	Headshot  string
	CreatedBy string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Player) Validate(sport team.Sport) error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.FirstName) == "" {
		return fmt.Errorf("player first name is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("player last name is required")
	}
	if p.Number < 0 {
		return fmt.Errorf("player number cannot be negative")
	}
	if !ValidPosition(sport, p.Position) {
		return fmt.Errorf("position %q is not valid for %s", p.Position, sport)
	}
	if _, ok := AllStatuses[p.Status]; !ok {
		return fmt.Errorf("invalid player status: %s", p.Status)
	}

	return nil
}

func (p Player) Orphaned() bool {
	return p.TeamID == ""
}

func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
