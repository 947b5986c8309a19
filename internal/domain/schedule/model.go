package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-registry/internal/domain/team"
)

type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusCompleted Status = "Completed"
	StatusCanceled  Status = "Canceled"
)

var AllStatuses = map[Status]struct{}{
	StatusScheduled: {},
	StatusCompleted: {},
	StatusCanceled:  {},
}

type Season string

const (
	SeasonRegular    Season = "Regular"
	SeasonPlayoffs   Season = "Playoffs"
	SeasonFriendly   Season = "Friendly"
	SeasonTournament Season = "Tournament"
)

var AllSeasons = map[Season]struct{}{
	SeasonRegular:    {},
	SeasonPlayoffs:   {},
	SeasonFriendly:   {},
	SeasonTournament: {},
}

type Location string

const (
	LocationHome    Location = "home"
	LocationAway    Location = "away"
	LocationNeutral Location = "neutral"
)

var AllLocations = map[Location]struct{}{
	LocationHome:    {},
	LocationAway:    {},
	LocationNeutral: {},
}

const (
	NeutralArena = "Neutral Site"
	NeutralCity  = "Neutral City"
)

// Schedule is a fixture between two distinct teams.
type Schedule struct {
	ID           string
	HomeTeamID   string
	AwayTeamID   string
	Date         time.Time
	Arena        string
	City         string
	Status       Status
	Season       Season
	Location     Location
	GameDuration int
	TimeZone     string
	CreatedBy    string
	UpdatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (s Schedule) Involves(teamID string) bool {
	return teamID != "" && (s.HomeTeamID == teamID || s.AwayTeamID == teamID)
}

// TeamIDs returns the home and away team ids, in that order.
func (s Schedule) TeamIDs() []string {
	return []string{s.HomeTeamID, s.AwayTeamID}
}

func ParseLocation(v string) (Location, error) {
	value := Location(strings.ToLower(strings.TrimSpace(v)))
	if _, ok := AllLocations[value]; !ok {
		return "", fmt.Errorf("invalid location %q: valid values are home, away, neutral", v)
	}
	return value, nil
}

// ParseSeason returns fallback when v is empty.
func ParseSeason(v string, fallback Season) (Season, error) {
	value := Season(strings.TrimSpace(v))
	if value == "" {
		return fallback, nil
	}
	if _, ok := AllSeasons[value]; !ok {
		return "", fmt.Errorf("invalid season: %s", v)
	}
	return value, nil
}

// ParseStatus returns fallback when v is empty.
func ParseStatus(v string, fallback Status) (Status, error) {
	value := Status(strings.TrimSpace(v))
	if value == "" {
		return fallback, nil
	}
	if _, ok := AllStatuses[value]; !ok {
		return "", fmt.Errorf("invalid schedule status: %s", v)
	}
	return value, nil
}

// ParseDate accepts an RFC3339 timestamp or a calendar date (UTC midnight).
func ParseDate(v string) (time.Time, error) {
	value := strings.TrimSpace(v)
	if value == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", v)
	}
	return t.UTC(), nil
}

// DeriveVenue picks arena and city from the side designated by location.
func DeriveVenue(location Location, home, away team.Team) (string, string) {
	switch location {
	case LocationHome:
		return home.Stadium, home.City
	case LocationAway:
		return away.Stadium, away.City
	default:
		return NeutralArena, NeutralCity
	}
}

// CanTransition reports whether a fixture may move from one status to
// another. Completed and Canceled are terminal.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	return from == StatusScheduled && (to == StatusCompleted || to == StatusCanceled)
}
