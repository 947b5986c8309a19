package team

import (
	"fmt"
	"strings"
	"time"
)

type Sport string

const (
	SportBaseball   Sport = "Baseball"
	SportBasketball Sport = "Basketball"
	SportHockey     Sport = "Hockey"
	SportFootball   Sport = "Football"
	SportSoccer     Sport = "Soccer"
)

var AllSports = map[Sport]struct{}{
	SportBaseball:   {},
	SportBasketball: {},
	SportHockey:     {},
	SportFootball:   {},
	SportSoccer:     {},
}

type Type string

const (
	TypeYouth        Type = "Youth"
	TypeProfessional Type = "Professional"
	TypeCollege      Type = "College"
	TypeAmateur      Type = "Amateur"
)

var AllTypes = map[Type]struct{}{
	TypeYouth:        {},
	TypeProfessional: {},
	TypeCollege:      {},
	TypeAmateur:      {},
}

// Team is a club registered in the league. PlayerIDs and ScheduleIDs are
// back-references kept in sync with Player.TeamID and the fixture sides.
type Team struct {
	ID              string
	Name            string
	City            string
	Stadium         string
	Sport           Sport
	ManagerID       string
	PlayerIDs       []string
	ScheduleIDs     []string
	StadiumPhoto    string
	TeamType        Type
	StadiumLocation string
	StadiumCapacity int
	CreatedBy       string
	UpdatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if strings.TrimSpace(t.City) == "" {
		return fmt.Errorf("team city is required")
	}
	if strings.TrimSpace(t.Stadium) == "" {
		return fmt.Errorf("team stadium is required")
	}
	if _, ok := AllSports[t.Sport]; !ok {
		return fmt.Errorf("invalid sport: %s", t.Sport)
	}
	if t.TeamType != "" {
		if _, ok := AllTypes[t.TeamType]; !ok {
			return fmt.Errorf("invalid team type: %s", t.TeamType)
		}
	}
	if t.StadiumCapacity < 0 {
		return fmt.Errorf("stadium capacity cannot be negative")
	}

	return nil
}

// ManagedBy reports whether userID is the stored manager reference.
// A team without manager is managed by nobody.
func (t Team) ManagedBy(userID string) bool {
	return t.ManagerID != "" && t.ManagerID == userID
}

func (t Team) HasPlayer(playerID string) bool {
	return containsID(t.PlayerIDs, playerID)
}

func (t Team) HasSchedule(scheduleID string) bool {
	return containsID(t.ScheduleIDs, scheduleID)
}

func (t Team) Clone() Team {
	copied := t
	copied.PlayerIDs = append([]string(nil), t.PlayerIDs...)
	copied.ScheduleIDs = append([]string(nil), t.ScheduleIDs...)
	return copied
}

// Summary is the projection joined into fixtures and players.
type Summary struct {
	ID      string
	Name    string
	City    string
	Stadium string
	Sport   Sport
}

func (t Team) Summary() Summary {
	return Summary{
		ID:      t.ID,
		Name:    t.Name,
		City:    t.City,
		Stadium: t.Stadium,
		Sport:   t.Sport,
	}
}

func containsID(ids []string, id string) bool {
	for _, item := range ids {
		if item == id {
			return true
		}
	}
	return false
}
