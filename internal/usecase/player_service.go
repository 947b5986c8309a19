package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/league-registry/internal/domain/event"
	"github.com/riskibarqy/league-registry/internal/domain/player"
	"github.com/riskibarqy/league-registry/internal/domain/store"
	"github.com/riskibarqy/league-registry/internal/domain/team"
	"github.com/riskibarqy/league-registry/internal/domain/user"
	idgen "github.com/riskibarqy/league-registry/internal/platform/id"
	"github.com/riskibarqy/league-registry/internal/platform/logging"
)

type AddPlayerInput struct {
	FirstName string
	LastName  string
	Hometown  string
	Number    int
	Position  string
	Status    string
	Headshot  string
}

// UpdatePlayerInput is a partial update. Nil fields are left unchanged.
type UpdatePlayerInput struct {
	FirstName *string
	LastName  *string
	Hometown  *string
	Number    *int
	Position  *string
	Status    *string
	Headshot  *string
}

type ListPlayersInput struct {
	TeamID   string
	Position string
	Search   string
	Page     PageRequest
}

type PlayerPage struct {
	Items []PlayerDetails
	Page  PageInfo
}

type PlayerService struct {
	repos     store.Repositories
	txManager store.TxManager
	idGen     idgen.Generator
	clock     clockwork.Clock
	events    eventEmitter
	hydrate   hydrator
	limits    ListLimits
}

func NewPlayerService(
	repos store.Repositories,
	txManager store.TxManager,
	idGen idgen.Generator,
	publisher event.Publisher,
	logger *logging.Logger,
	limits ListLimits,
) *PlayerService {
	return &PlayerService{
		repos:     repos,
		txManager: txManager,
		idGen:     idGen,
		clock:     clockwork.NewRealClock(),
		events:    newEventEmitter(publisher, logger),
		hydrate:   hydrator{repos: repos},
		limits:    limits.normalize(),
	}
}

// AddPlayer creates a player and appends it to the team roster in one
// transaction.
func (s *PlayerService) AddPlayer(ctx context.Context, principal user.Principal, teamID string, input AddPlayerInput) (PlayerDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.AddPlayer")
	defer span.End()

	if err := requireAuthenticated(principal); err != nil {
		return PlayerDetails{}, err
	}

	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if firstName == "" || lastName == "" {
		return PlayerDetails{}, fmt.Errorf("%w: first_name and last_name are required", ErrInvalidInput)
	}
	if input.Number < 0 {
		return PlayerDetails{}, fmt.Errorf("%w: player number cannot be negative", ErrInvalidInput)
	}
	status, err := player.ParseStatus(input.Status)
	if err != nil {
		return PlayerDetails{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	owner, err := loadTeam(ctx, s.repos.Teams, teamID)
	if err != nil {
		return PlayerDetails{}, err
	}

	if _, exists, err := s.repos.Players.GetByTeamAndNumber(ctx, owner.ID, input.Number); err != nil {
		return PlayerDetails{}, fmt.Errorf("get player by team and number: %w", err)
	} else if exists {
		return PlayerDetails{}, duplicateNumberError(owner.ID, input.Number)
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return PlayerDetails{}, fmt.Errorf("generate player id: %w", err)
	}

	now := s.clock.Now().UTC()
	item := player.Player{
		ID:        playerID,
		FirstName: firstName,
		LastName:  lastName,
		Hometown:  strings.TrimSpace(input.Hometown),
		Number:    input.Number,
		Position:  player.Position(strings.TrimSpace(input.Position)),
		TeamID:    owner.ID,
		Status:    status,
		Headshot:  strings.TrimSpace(input.Headshot),
		CreatedBy: principal.UserID,
		UpdatedBy: principal.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(owner.Sport); err != nil {
		return PlayerDetails{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		if err := repos.Players.Create(ctx, item); err != nil {
			return fmt.Errorf("create player: %w", err)
		}
		if err := repos.Teams.AppendPlayer(ctx, owner.ID, item.ID); err != nil {
			return fmt.Errorf("append player to roster: %w", err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicate):
			return PlayerDetails{}, duplicateNumberError(owner.ID, input.Number)
		case errors.Is(err, store.ErrNotFound):
			return PlayerDetails{}, fmt.Errorf("%w: team=%s", ErrNotFound, owner.ID)
		}
		return PlayerDetails{}, err
	}

	s.events.emit(ctx, event.TypePlayerCreated, item.ID, principal.UserID, now, map[string]string{
		"team_id": owner.ID,
	})

	summary := owner.Summary()
	return PlayerDetails{Player: item, Team: &summary}, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (PlayerDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	item, err := s.getPlayer(ctx, playerID)
	if err != nil {
		return PlayerDetails{}, err
	}

	details, err := s.hydrate.players(ctx, []player.Player{item})
	if err != nil {
		return PlayerDetails{}, err
	}
	return details[0], nil
}

func (s *PlayerService) ListPlayers(ctx context.Context, input ListPlayersInput) (PlayerPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	page, err := s.limits.resolve(input.Page)
	if err != nil {
		return PlayerPage{}, err
	}
	filter := player.ListFilter{
		TeamID:   strings.TrimSpace(input.TeamID),
		Position: player.Position(strings.TrimSpace(input.Position)),
		Search:   strings.TrimSpace(input.Search),
		Offset:   page.offset(),
		Limit:    page.Limit,
	}

	total, err := s.repos.Players.Count(ctx, filter)
	if err != nil {
		return PlayerPage{}, fmt.Errorf("count players: %w", err)
	}
	items, err := s.repos.Players.List(ctx, filter)
	if err != nil {
		return PlayerPage{}, fmt.Errorf("list players: %w", err)
	}
	if len(items) == 0 {
		return PlayerPage{}, fmt.Errorf("%w: no players found", ErrNotFound)
	}

	details, err := s.hydrate.players(ctx, items)
	if err != nil {
		return PlayerPage{}, err
	}

	return PlayerPage{Items: details, Page: newPageInfo(page, total)}, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, principal user.Principal, playerID string, input UpdatePlayerInput) (PlayerDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	item, owner, err := s.getManagedPlayer(ctx, principal, playerID)
	if err != nil {
		return PlayerDetails{}, err
	}

	if input.FirstName != nil {
		item.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		item.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Hometown != nil {
		item.Hometown = strings.TrimSpace(*input.Hometown)
	}
	if input.Position != nil {
		item.Position = player.Position(strings.TrimSpace(*input.Position))
	}
	if input.Headshot != nil {
		item.Headshot = strings.TrimSpace(*input.Headshot)
	}
	if input.Status != nil {
		status, err := player.ParseStatus(*input.Status)
		if err != nil {
			return PlayerDetails{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		item.Status = status
	}
	if input.Number != nil && *input.Number != item.Number {
		existing, exists, err := s.repos.Players.GetByTeamAndNumber(ctx, owner.ID, *input.Number)
		if err != nil {
			return PlayerDetails{}, fmt.Errorf("get player by team and number: %w", err)
		}
		if exists && existing.ID != item.ID {
			return PlayerDetails{}, duplicateNumberError(owner.ID, *input.Number)
		}
		item.Number = *input.Number
	}
	if err := item.Validate(owner.Sport); err != nil {
		return PlayerDetails{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.clock.Now().UTC()
	item.UpdatedBy = principal.UserID
	item.UpdatedAt = now

	if err := s.repos.Players.Update(ctx, item); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicate):
			return PlayerDetails{}, duplicateNumberError(owner.ID, item.Number)
		case errors.Is(err, store.ErrNotFound):
			return PlayerDetails{}, fmt.Errorf("%w: player=%s", ErrNotFound, item.ID)
		}
		return PlayerDetails{}, fmt.Errorf("update player: %w", err)
	}

	s.events.emit(ctx, event.TypePlayerUpdated, item.ID, principal.UserID, now, map[string]string{
		"team_id": owner.ID,
	})

	summary := owner.Summary()
	return PlayerDetails{Player: item, Team: &summary}, nil
}

// DeletePlayer removes the player and prunes it from the roster in one
// transaction.
func (s *PlayerService) DeletePlayer(ctx context.Context, principal user.Principal, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer")
	defer span.End()

	item, owner, err := s.getManagedPlayer(ctx, principal, playerID)
	if err != nil {
		return err
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		if err := repos.Players.Delete(ctx, item.ID); err != nil {
			return fmt.Errorf("delete player: %w", err)
		}
		if err := repos.Teams.RemovePlayer(ctx, owner.ID, item.ID); err != nil {
			return fmt.Errorf("remove player from roster: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: player=%s", ErrNotFound, item.ID)
		}
		return err
	}

	s.events.emit(ctx, event.TypePlayerDeleted, item.ID, principal.UserID, s.clock.Now(), map[string]string{
		"team_id": owner.ID,
	})

	return nil
}

// getManagedPlayer loads a player together with its team and enforces the
// mutation gates: the player must be rostered and the requester must manage
// the team.
func (s *PlayerService) getManagedPlayer(ctx context.Context, principal user.Principal, playerID string) (player.Player, team.Team, error) {
	if err := requireAuthenticated(principal); err != nil {
		return player.Player{}, team.Team{}, err
	}

	item, err := s.getPlayer(ctx, playerID)
	if err != nil {
		return player.Player{}, team.Team{}, err
	}
	if item.Orphaned() {
		return player.Player{}, team.Team{}, fmt.Errorf("%w: player=%s is not assigned to a team", ErrInvalidInput, item.ID)
	}

	owner, err := loadTeam(ctx, s.repos.Teams, item.TeamID)
	if err != nil {
		return player.Player{}, team.Team{}, err
	}
	if err := requireTeamManager(owner, principal, true); err != nil {
		return player.Player{}, team.Team{}, err
	}

	return item, owner, nil
}

func (s *PlayerService) getPlayer(ctx context.Context, playerID string) (player.Player, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.repos.Players.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return item, nil
}

func duplicateNumberError(teamID string, number int) error {
	return fmt.Errorf("%w: duplicate number %d in team=%s", ErrConflict, number, teamID)
}
