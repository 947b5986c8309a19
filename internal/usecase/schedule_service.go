package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/league-registry/internal/domain/event"
	"github.com/riskibarqy/league-registry/internal/domain/schedule"
	"github.com/riskibarqy/league-registry/internal/domain/store"
	"github.com/riskibarqy/league-registry/internal/domain/team"
	"github.com/riskibarqy/league-registry/internal/domain/user"
	idgen "github.com/riskibarqy/league-registry/internal/platform/id"
	"github.com/riskibarqy/league-registry/internal/platform/logging"
)

// ScheduleInput carries the proposed matchup. Create and update both
// validate it in full; Season, Status, GameDuration and TimeZone are kept
// from the stored fixture on update when left empty.
type ScheduleInput struct {
	HomeTeamID   string
	AwayTeamID   string
	Date         string
	Location     string
	Season       string
	Status       string
	GameDuration int
	TimeZone     string
}

type ScheduleService struct {
	repos     store.Repositories
	txManager store.TxManager
	idGen     idgen.Generator
	clock     clockwork.Clock
	events    eventEmitter
	hydrate   hydrator
}

func NewScheduleService(
	repos store.Repositories,
	txManager store.TxManager,
	idGen idgen.Generator,
	publisher event.Publisher,
	logger *logging.Logger,
) *ScheduleService {
	return &ScheduleService{
		repos:     repos,
		txManager: txManager,
		idGen:     idGen,
		clock:     clockwork.NewRealClock(),
		events:    newEventEmitter(publisher, logger),
		hydrate:   hydrator{repos: repos},
	}
}

// validatedMatchup is the outcome of the fixture validation pipeline.
type validatedMatchup struct {
	home     team.Team
	away     team.Team
	date     time.Time
	location schedule.Location
}

// CreateSchedule schedules a fixture through the team identified by
// scopeTeamID, which must play one of the two sides.
func (s *ScheduleService) CreateSchedule(ctx context.Context, principal user.Principal, scopeTeamID string, input ScheduleInput) (ScheduleDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.CreateSchedule")
	defer span.End()

	if err := requireAuthenticated(principal); err != nil {
		return ScheduleDetails{}, err
	}

	matchup, err := s.validateMatchup(ctx, input, "")
	if err != nil {
		return ScheduleDetails{}, err
	}
	scopeTeamID = strings.TrimSpace(scopeTeamID)
	if scopeTeamID != matchup.home.ID && scopeTeamID != matchup.away.ID {
		return ScheduleDetails{}, fmt.Errorf("%w: schedule must involve team=%s", ErrInvalidInput, scopeTeamID)
	}

	season, err := schedule.ParseSeason(input.Season, schedule.SeasonRegular)
	if err != nil {
		return ScheduleDetails{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	status, err := schedule.ParseStatus(input.Status, schedule.StatusScheduled)
	if err != nil {
		return ScheduleDetails{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if input.GameDuration < 0 {
		return ScheduleDetails{}, fmt.Errorf("%w: game duration cannot be negative", ErrInvalidInput)
	}

	scheduleID, err := s.idGen.NewID()
	if err != nil {
		return ScheduleDetails{}, fmt.Errorf("generate schedule id: %w", err)
	}

	now := s.clock.Now().UTC()
	arena, city := schedule.DeriveVenue(matchup.location, matchup.home, matchup.away)
	item := schedule.Schedule{
		ID:           scheduleID,
		HomeTeamID:   matchup.home.ID,
		AwayTeamID:   matchup.away.ID,
		Date:         matchup.date,
		Arena:        arena,
		City:         city,
		Status:       status,
		Season:       season,
		Location:     matchup.location,
		GameDuration: input.GameDuration,
		TimeZone:     strings.TrimSpace(input.TimeZone),
		CreatedBy:    principal.UserID,
		UpdatedBy:    principal.UserID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		if err := repos.Schedules.Create(ctx, item); err != nil {
			return fmt.Errorf("create schedule: %w", err)
		}
		for _, teamID := range item.TeamIDs() {
			if err := repos.Teams.AppendSchedule(ctx, teamID, item.ID); err != nil {
				return fmt.Errorf("append schedule to team=%s: %w", teamID, err)
			}
		}
		return nil
	})
	if err != nil {
		return ScheduleDetails{}, s.mapWriteError(err, item)
	}

	s.events.emit(ctx, event.TypeScheduleCreated, item.ID, principal.UserID, now, map[string]string{
		"home_team_id": item.HomeTeamID,
		"away_team_id": item.AwayTeamID,
		"date":         item.Date.Format(time.RFC3339),
	})

	return s.details(item, matchup), nil
}

func (s *ScheduleService) GetSchedule(ctx context.Context, scheduleID string) (ScheduleDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.GetSchedule")
	defer span.End()

	item, err := s.getSchedule(ctx, scheduleID)
	if err != nil {
		return ScheduleDetails{}, err
	}

	return s.hydrate.schedule(ctx, item)
}

// ListSchedules returns every fixture, earliest first. An empty result is not
// an error.
func (s *ScheduleService) ListSchedules(ctx context.Context) ([]ScheduleDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.ListSchedules")
	defer span.End()

	items, err := s.repos.Schedules.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	if len(items) == 0 {
		return []ScheduleDetails{}, nil
	}

	return s.hydrate.schedules(ctx, items)
}

// UpdateSchedule revalidates the proposed matchup in full and moves the
// fixture reference between teams when a side changes.
func (s *ScheduleService) UpdateSchedule(ctx context.Context, principal user.Principal, scheduleID string, input ScheduleInput) (ScheduleDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.UpdateSchedule")
	defer span.End()

	current, err := s.getManagedSchedule(ctx, principal, scheduleID)
	if err != nil {
		return ScheduleDetails{}, err
	}

	matchup, err := s.validateMatchup(ctx, input, current.ID)
	if err != nil {
		return ScheduleDetails{}, err
	}

	season, err := schedule.ParseSeason(input.Season, current.Season)
	if err != nil {
		return ScheduleDetails{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	status, err := schedule.ParseStatus(input.Status, current.Status)
	if err != nil {
		return ScheduleDetails{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !schedule.CanTransition(current.Status, status) {
		return ScheduleDetails{}, fmt.Errorf("%w: cannot change status from %s to %s", ErrInvalidInput, current.Status, status)
	}
	if input.GameDuration < 0 {
		return ScheduleDetails{}, fmt.Errorf("%w: game duration cannot be negative", ErrInvalidInput)
	}

	now := s.clock.Now().UTC()
	item := current
	item.HomeTeamID = matchup.home.ID
	item.AwayTeamID = matchup.away.ID
	item.Date = matchup.date
	item.Location = matchup.location
	item.Arena, item.City = schedule.DeriveVenue(matchup.location, matchup.home, matchup.away)
	item.Season = season
	item.Status = status
	if input.GameDuration > 0 {
		item.GameDuration = input.GameDuration
	}
	if tz := strings.TrimSpace(input.TimeZone); tz != "" {
		item.TimeZone = tz
	}
	item.UpdatedBy = principal.UserID
	item.UpdatedAt = now

	released, joined := diffTeamIDs(current.TeamIDs(), item.TeamIDs())
	err = s.txManager.WithinTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		if err := repos.Schedules.Update(ctx, item); err != nil {
			return fmt.Errorf("update schedule: %w", err)
		}
		for _, teamID := range released {
			if err := repos.Teams.RemoveSchedule(ctx, teamID, item.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("remove schedule from team=%s: %w", teamID, err)
			}
		}
		for _, teamID := range joined {
			if err := repos.Teams.AppendSchedule(ctx, teamID, item.ID); err != nil {
				return fmt.Errorf("append schedule to team=%s: %w", teamID, err)
			}
		}
		return nil
	})
	if err != nil {
		return ScheduleDetails{}, s.mapWriteError(err, item)
	}

	s.events.emit(ctx, event.TypeScheduleUpdated, item.ID, principal.UserID, now, map[string]string{
		"home_team_id": item.HomeTeamID,
		"away_team_id": item.AwayTeamID,
		"status":       string(item.Status),
	})

	return s.details(item, matchup), nil
}

// DeleteSchedule removes the fixture and prunes it from both teams.
func (s *ScheduleService) DeleteSchedule(ctx context.Context, principal user.Principal, scheduleID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.DeleteSchedule")
	defer span.End()

	item, err := s.getManagedSchedule(ctx, principal, scheduleID)
	if err != nil {
		return err
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		if err := repos.Schedules.Delete(ctx, item.ID); err != nil {
			return fmt.Errorf("delete schedule: %w", err)
		}
		for _, teamID := range uniqueIDs(item.TeamIDs()) {
			if err := repos.Teams.RemoveSchedule(ctx, teamID, item.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("remove schedule from team=%s: %w", teamID, err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: schedule=%s", ErrNotFound, item.ID)
		}
		return err
	}

	s.events.emit(ctx, event.TypeScheduleDeleted, item.ID, principal.UserID, s.clock.Now(), nil)

	return nil
}

// validateMatchup runs the ordered fixture checks. excludeID skips the
// fixture being updated in the duplicate check.
func (s *ScheduleService) validateMatchup(ctx context.Context, input ScheduleInput, excludeID string) (validatedMatchup, error) {
	homeID := strings.TrimSpace(input.HomeTeamID)
	awayID := strings.TrimSpace(input.AwayTeamID)
	if homeID == "" || awayID == "" || strings.TrimSpace(input.Date) == "" || strings.TrimSpace(input.Location) == "" {
		return validatedMatchup{}, fmt.Errorf("%w: home_team, away_team, date and location are required", ErrInvalidInput)
	}

	location, err := schedule.ParseLocation(input.Location)
	if err != nil {
		return validatedMatchup{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	date, err := schedule.ParseDate(input.Date)
	if err != nil || !date.After(s.clock.Now()) {
		return validatedMatchup{}, fmt.Errorf("%w: invalid date, must be a future date", ErrInvalidInput)
	}

	home, exists, err := s.repos.Teams.GetByID(ctx, homeID)
	if err != nil {
		return validatedMatchup{}, fmt.Errorf("get home team: %w", err)
	}
	if !exists {
		return validatedMatchup{}, fmt.Errorf("%w: team not found: home_team=%s", ErrNotFound, homeID)
	}
	away, exists, err := s.repos.Teams.GetByID(ctx, awayID)
	if err != nil {
		return validatedMatchup{}, fmt.Errorf("get away team: %w", err)
	}
	if !exists {
		return validatedMatchup{}, fmt.Errorf("%w: team not found: away_team=%s", ErrNotFound, awayID)
	}

	if home.ID == away.ID {
		return validatedMatchup{}, fmt.Errorf("%w: home and away cannot be the same team", ErrInvalidInput)
	}

	existing, exists, err := s.repos.Schedules.FindByMatchup(ctx, home.ID, away.ID, date)
	if err != nil {
		return validatedMatchup{}, fmt.Errorf("find schedule by matchup: %w", err)
	}
	if exists && existing.ID != excludeID {
		return validatedMatchup{}, fmt.Errorf("%w: game already scheduled for these teams on this date", ErrConflict)
	}

	return validatedMatchup{home: home, away: away, date: date, location: location}, nil
}

// getManagedSchedule loads a fixture and requires the requester to manage
// its home or away team, or to be an admin.
func (s *ScheduleService) getManagedSchedule(ctx context.Context, principal user.Principal, scheduleID string) (schedule.Schedule, error) {
	if err := requireAuthenticated(principal); err != nil {
		return schedule.Schedule{}, err
	}

	item, err := s.getSchedule(ctx, scheduleID)
	if err != nil {
		return schedule.Schedule{}, err
	}
	if principal.IsAdmin() {
		return item, nil
	}

	sides, err := s.repos.Teams.ListByIDs(ctx, uniqueIDs(item.TeamIDs()))
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("list fixture teams: %w", err)
	}
	for _, side := range sides {
		if canManageTeam(side, principal, false) {
			return item, nil
		}
	}

	return schedule.Schedule{}, fmt.Errorf("%w: not a manager of either team in schedule=%s", ErrForbidden, item.ID)
}

func (s *ScheduleService) getSchedule(ctx context.Context, scheduleID string) (schedule.Schedule, error) {
	scheduleID = strings.TrimSpace(scheduleID)
	if scheduleID == "" {
		return schedule.Schedule{}, fmt.Errorf("%w: schedule id is required", ErrInvalidInput)
	}

	item, exists, err := s.repos.Schedules.GetByID(ctx, scheduleID)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("get schedule by id: %w", err)
	}
	if !exists {
		return schedule.Schedule{}, fmt.Errorf("%w: schedule=%s", ErrNotFound, scheduleID)
	}

	return item, nil
}

func (s *ScheduleService) mapWriteError(err error, item schedule.Schedule) error {
	switch {
	case errors.Is(err, store.ErrDuplicate):
		return fmt.Errorf("%w: game already scheduled for these teams on this date", ErrConflict)
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: schedule=%s or one of its teams no longer exists", ErrNotFound, item.ID)
	}
	return err
}

func (s *ScheduleService) details(item schedule.Schedule, matchup validatedMatchup) ScheduleDetails {
	home := matchup.home.Summary()
	away := matchup.away.Summary()
	return ScheduleDetails{Schedule: item, HomeTeam: &home, AwayTeam: &away}
}

// diffTeamIDs returns ids present only in before (released) and only in
// after (joined).
func diffTeamIDs(before, after []string) ([]string, []string) {
	inBefore := make(map[string]struct{}, len(before))
	for _, id := range before {
		inBefore[id] = struct{}{}
	}
	inAfter := make(map[string]struct{}, len(after))
	for _, id := range after {
		inAfter[id] = struct{}{}
	}

	var released, joined []string
	for _, id := range uniqueIDs(before) {
		if _, ok := inAfter[id]; !ok {
			released = append(released, id)
		}
	}
	for _, id := range uniqueIDs(after) {
		if _, ok := inBefore[id]; !ok {
			joined = append(joined, id)
		}
	}
	return released, joined
}
