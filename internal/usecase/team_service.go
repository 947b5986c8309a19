package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/league-registry/internal/domain/event"
	"github.com/riskibarqy/league-registry/internal/domain/store"
	"github.com/riskibarqy/league-registry/internal/domain/team"
	"github.com/riskibarqy/league-registry/internal/domain/user"
	idgen "github.com/riskibarqy/league-registry/internal/platform/id"
	"github.com/riskibarqy/league-registry/internal/platform/logging"
)

type CreateTeamInput struct {
	Name            string
	City            string
	Stadium         string
	Sport           string
	StadiumPhoto    string
	TeamType        string
	StadiumLocation string
	StadiumCapacity int
	// ManagerID is honored on the admin path only.
	ManagerID string
}

// UpdateTeamInput is a partial update. Nil fields are left unchanged.
type UpdateTeamInput struct {
	Name            *string
	City            *string
	Stadium         *string
	Sport           *string
	StadiumPhoto    *string
	TeamType        *string
	StadiumLocation *string
	StadiumCapacity *int
	ManagerID       *string
}

type ListTeamsInput struct {
	Search string
	Page   PageRequest
}

type TeamPage struct {
	Items []TeamDetails
	Page  PageInfo
}

type DeleteTeamResult struct {
	TeamID         string
	ClearedPlayers int
}

type TeamService struct {
	repos     store.Repositories
	txManager store.TxManager
	idGen     idgen.Generator
	clock     clockwork.Clock
	events    eventEmitter
	hydrate   hydrator
	limits    ListLimits
}

func NewTeamService(
	repos store.Repositories,
	txManager store.TxManager,
	idGen idgen.Generator,
	publisher event.Publisher,
	logger *logging.Logger,
	limits ListLimits,
	hydrateWorkers int,
) *TeamService {
	return &TeamService{
		repos:     repos,
		txManager: txManager,
		idGen:     idGen,
		clock:     clockwork.NewRealClock(),
		events:    newEventEmitter(publisher, logger),
		hydrate:   hydrator{repos: repos, workers: hydrateWorkers},
		limits:    limits.normalize(),
	}
}

func (s *TeamService) CreateTeam(ctx context.Context, principal user.Principal, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateTeam")
	defer span.End()

	if err := requireAuthenticated(principal); err != nil {
		return team.Team{}, err
	}
	input.ManagerID = principal.UserID

	return s.createTeam(ctx, principal, input)
}

// AdminCreateTeam registers a team on behalf of an admin. The admin becomes
// the manager unless input.ManagerID names another user.
func (s *TeamService) AdminCreateTeam(ctx context.Context, principal user.Principal, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.AdminCreateTeam")
	defer span.End()

	if err := requireAdmin(principal); err != nil {
		return team.Team{}, err
	}
	input.ManagerID = strings.TrimSpace(input.ManagerID)
	if input.ManagerID == "" {
		input.ManagerID = principal.UserID
	} else if err := s.ensureUserExists(ctx, input.ManagerID); err != nil {
		return team.Team{}, err
	}

	return s.createTeam(ctx, principal, input)
}

func (s *TeamService) createTeam(ctx context.Context, principal user.Principal, input CreateTeamInput) (team.Team, error) {
	name := strings.TrimSpace(input.Name)
	city := strings.TrimSpace(input.City)
	stadium := strings.TrimSpace(input.Stadium)
	if name == "" || city == "" || stadium == "" || strings.TrimSpace(input.Sport) == "" {
		return team.Team{}, fmt.Errorf("%w: name, city, stadium and sport are required", ErrInvalidInput)
	}

	if _, exists, err := s.repos.Teams.GetByName(ctx, name); err != nil {
		return team.Team{}, fmt.Errorf("get team by name: %w", err)
	} else if exists {
		return team.Team{}, fmt.Errorf("%w: team name %q already exists", ErrConflict, name)
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	now := s.clock.Now().UTC()
	item := team.Team{
		ID:              teamID,
		Name:            name,
		City:            city,
		Stadium:         stadium,
		Sport:           team.Sport(strings.TrimSpace(input.Sport)),
		ManagerID:       input.ManagerID,
		StadiumPhoto:    strings.TrimSpace(input.StadiumPhoto),
		TeamType:        team.Type(strings.TrimSpace(input.TeamType)),
		StadiumLocation: strings.TrimSpace(input.StadiumLocation),
		StadiumCapacity: input.StadiumCapacity,
		CreatedBy:       principal.UserID,
		UpdatedBy:       principal.UserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repos.Teams.Create(ctx, item); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return team.Team{}, fmt.Errorf("%w: team name %q already exists", ErrConflict, name)
		}
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	s.events.emit(ctx, event.TypeTeamCreated, item.ID, principal.UserID, now, map[string]string{
		"name":  item.Name,
		"sport": string(item.Sport),
	})

	return item, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (TeamDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return TeamDetails{}, err
	}

	return s.hydrate.team(ctx, item)
}

func (s *TeamService) ListTeams(ctx context.Context, input ListTeamsInput) (TeamPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	page, err := s.limits.resolve(input.Page)
	if err != nil {
		return TeamPage{}, err
	}
	filter := team.ListFilter{
		Search: strings.TrimSpace(input.Search),
		Offset: page.offset(),
		Limit:  page.Limit,
	}

	total, err := s.repos.Teams.Count(ctx, filter)
	if err != nil {
		return TeamPage{}, fmt.Errorf("count teams: %w", err)
	}
	items, err := s.repos.Teams.List(ctx, filter)
	if err != nil {
		return TeamPage{}, fmt.Errorf("list teams: %w", err)
	}
	if len(items) == 0 {
		return TeamPage{}, fmt.Errorf("%w: no teams found", ErrNotFound)
	}

	details, err := s.hydrate.teams(ctx, items)
	if err != nil {
		return TeamPage{}, err
	}

	return TeamPage{Items: details, Page: newPageInfo(page, total)}, nil
}

// UpdateTeam applies a partial update requested by the team's manager.
func (s *TeamService) UpdateTeam(ctx context.Context, principal user.Principal, teamID string, input UpdateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.UpdateTeam")
	defer span.End()

	if input.ManagerID != nil {
		return team.Team{}, fmt.Errorf("%w: only admins may reassign a team manager", ErrForbidden)
	}

	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}
	if err := requireTeamManager(item, principal, false); err != nil {
		return team.Team{}, err
	}

	return s.updateTeam(ctx, principal, item, input)
}

// AdminUpdateTeam applies a partial update to any team and may reassign the
// manager. An empty ManagerID clears it.
func (s *TeamService) AdminUpdateTeam(ctx context.Context, principal user.Principal, teamID string, input UpdateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.AdminUpdateTeam")
	defer span.End()

	if err := requireAdmin(principal); err != nil {
		return team.Team{}, err
	}

	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	if input.ManagerID != nil {
		managerID := strings.TrimSpace(*input.ManagerID)
		if managerID != "" {
			if err := s.ensureUserExists(ctx, managerID); err != nil {
				return team.Team{}, err
			}
		}
		item.ManagerID = managerID
	}

	return s.updateTeam(ctx, principal, item, input)
}

func (s *TeamService) updateTeam(ctx context.Context, principal user.Principal, item team.Team, input UpdateTeamInput) (team.Team, error) {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name != item.Name {
			existing, exists, err := s.repos.Teams.GetByName(ctx, name)
			if err != nil {
				return team.Team{}, fmt.Errorf("get team by name: %w", err)
			}
			if exists && existing.ID != item.ID {
				return team.Team{}, fmt.Errorf("%w: team name %q already exists", ErrConflict, name)
			}
		}
		item.Name = name
	}
	if input.City != nil {
		item.City = strings.TrimSpace(*input.City)
	}
	if input.Stadium != nil {
		item.Stadium = strings.TrimSpace(*input.Stadium)
	}
	if input.Sport != nil {
		item.Sport = team.Sport(strings.TrimSpace(*input.Sport))
	}
	if input.StadiumPhoto != nil {
		item.StadiumPhoto = strings.TrimSpace(*input.StadiumPhoto)
	}
	if input.TeamType != nil {
		item.TeamType = team.Type(strings.TrimSpace(*input.TeamType))
	}
	if input.StadiumLocation != nil {
		item.StadiumLocation = strings.TrimSpace(*input.StadiumLocation)
	}
	if input.StadiumCapacity != nil {
		item.StadiumCapacity = *input.StadiumCapacity
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.clock.Now().UTC()
	item.UpdatedBy = principal.UserID
	item.UpdatedAt = now

	if err := s.repos.Teams.Update(ctx, item); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicate):
			return team.Team{}, fmt.Errorf("%w: team name %q already exists", ErrConflict, item.Name)
		case errors.Is(err, store.ErrNotFound):
			return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, item.ID)
		}
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}

	s.events.emit(ctx, event.TypeTeamUpdated, item.ID, principal.UserID, now, map[string]string{
		"name":       item.Name,
		"manager_id": item.ManagerID,
	})

	return item, nil
}

// DeleteTeam removes the team and orphans every player that referenced it.
// Fixtures naming the team are left in place.
func (s *TeamService) DeleteTeam(ctx context.Context, principal user.Principal, teamID string) (DeleteTeamResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.DeleteTeam")
	defer span.End()

	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return DeleteTeamResult{}, err
	}
	if err := requireTeamManager(item, principal, true); err != nil {
		return DeleteTeamResult{}, err
	}

	result := DeleteTeamResult{TeamID: item.ID}
	err = s.txManager.WithinTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		if err := repos.Teams.Delete(ctx, item.ID); err != nil {
			return fmt.Errorf("delete team: %w", err)
		}
		cleared, err := repos.Players.ClearTeam(ctx, item.ID)
		if err != nil {
			return fmt.Errorf("clear team from players: %w", err)
		}
		result.ClearedPlayers = cleared
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return DeleteTeamResult{}, fmt.Errorf("%w: team=%s", ErrNotFound, item.ID)
		}
		return DeleteTeamResult{}, err
	}

	s.events.emit(ctx, event.TypeTeamDeleted, item.ID, principal.UserID, s.clock.Now(), map[string]string{
		"cleared_players": strconv.Itoa(result.ClearedPlayers),
	})

	return result, nil
}

// ListTeamSchedules returns the fixtures in which the team plays either side.
func (s *TeamService) ListTeamSchedules(ctx context.Context, teamID string) ([]ScheduleDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeamSchedules")
	defer span.End()

	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	items, err := s.repos.Schedules.ListByTeam(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list schedules by team: %w", err)
	}
	if len(items) == 0 {
		return []ScheduleDetails{}, nil
	}

	return s.hydrate.schedules(ctx, items)
}

func (s *TeamService) getTeam(ctx context.Context, teamID string) (team.Team, error) {
	return loadTeam(ctx, s.repos.Teams, teamID)
}

func (s *TeamService) ensureUserExists(ctx context.Context, userID string) error {
	_, exists, err := s.repos.Users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: manager user=%s", ErrNotFound, userID)
	}
	return nil
}

func loadTeam(ctx context.Context, repo team.Repository, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

