package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/league-registry/internal/domain/player"
	"github.com/riskibarqy/league-registry/internal/domain/schedule"
	"github.com/riskibarqy/league-registry/internal/domain/store"
	"github.com/riskibarqy/league-registry/internal/domain/team"
	"github.com/riskibarqy/league-registry/internal/domain/user"
	"github.com/sourcegraph/conc/pool"
)

// TeamDetails is a team joined with its manager, roster and fixtures.
type TeamDetails struct {
	Team      team.Team
	Manager   *user.Summary
	Players   []player.Player
	Schedules []ScheduleDetails
}

// ScheduleDetails carries a fixture with its sides resolved. A side is nil
// when the referenced team no longer exists.
type ScheduleDetails struct {
	Schedule schedule.Schedule
	HomeTeam *team.Summary
	AwayTeam *team.Summary
}

// PlayerDetails carries a player with the owning team resolved.
type PlayerDetails struct {
	Player player.Player
	Team   *team.Summary
}

type hydrator struct {
	repos   store.Repositories
	workers int
}

func (h hydrator) team(ctx context.Context, item team.Team) (TeamDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.hydrator.team")
	defer span.End()

	out := TeamDetails{Team: item}

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		if item.ManagerID == "" {
			return nil
		}
		manager, exists, err := h.repos.Users.GetByID(ctx, item.ManagerID)
		if err != nil {
			return fmt.Errorf("get team manager: %w", err)
		}
		if exists {
			summary := manager.Summary()
			out.Manager = &summary
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		players, err := h.repos.Players.ListByIDs(ctx, item.PlayerIDs)
		if err != nil {
			return fmt.Errorf("list roster players: %w", err)
		}
		out.Players = orderByIDs(item.PlayerIDs, players, func(v player.Player) string { return v.ID })
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := h.repos.Schedules.ListByIDs(ctx, item.ScheduleIDs)
		if err != nil {
			return fmt.Errorf("list team schedules: %w", err)
		}
		items = orderByIDs(item.ScheduleIDs, items, func(v schedule.Schedule) string { return v.ID })
		details, err := h.schedules(ctx, items)
		if err != nil {
			return err
		}
		out.Schedules = details
		return nil
	})
	if err := p.Wait(); err != nil {
		return TeamDetails{}, err
	}

	return out, nil
}

// teams hydrates a page of teams on a bounded worker pool, keeping order.
func (h hydrator) teams(ctx context.Context, items []team.Team) ([]TeamDetails, error) {
	if len(items) == 0 {
		return nil, nil
	}

	workers := h.workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	workerPool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create hydrate worker pool: %w", err)
	}
	defer workerPool.Release()

	out := make([]TeamDetails, len(items))
	errs := make([]error, len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		i, item := i, item
		wg.Add(1)
		if err := workerPool.Submit(func() {
			defer wg.Done()
			out[i], errs[i] = h.team(ctx, item)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("submit hydrate task: %w", err)
		}
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

func (h hydrator) schedules(ctx context.Context, items []schedule.Schedule) ([]ScheduleDetails, error) {
	teamIDs := make([]string, 0, len(items)*2)
	for _, item := range items {
		teamIDs = append(teamIDs, item.TeamIDs()...)
	}
	summaries, err := h.teamSummaries(ctx, teamIDs)
	if err != nil {
		return nil, err
	}

	out := make([]ScheduleDetails, 0, len(items))
	for _, item := range items {
		out = append(out, ScheduleDetails{
			Schedule: item,
			HomeTeam: summaries[item.HomeTeamID],
			AwayTeam: summaries[item.AwayTeamID],
		})
	}
	return out, nil
}

func (h hydrator) schedule(ctx context.Context, item schedule.Schedule) (ScheduleDetails, error) {
	items, err := h.schedules(ctx, []schedule.Schedule{item})
	if err != nil {
		return ScheduleDetails{}, err
	}
	return items[0], nil
}

func (h hydrator) players(ctx context.Context, items []player.Player) ([]PlayerDetails, error) {
	teamIDs := make([]string, 0, len(items))
	for _, item := range items {
		if !item.Orphaned() {
			teamIDs = append(teamIDs, item.TeamID)
		}
	}
	summaries, err := h.teamSummaries(ctx, teamIDs)
	if err != nil {
		return nil, err
	}

	out := make([]PlayerDetails, 0, len(items))
	for _, item := range items {
		out = append(out, PlayerDetails{Player: item, Team: summaries[item.TeamID]})
	}
	return out, nil
}

func (h hydrator) teamSummaries(ctx context.Context, teamIDs []string) (map[string]*team.Summary, error) {
	teamIDs = uniqueIDs(teamIDs)
	out := make(map[string]*team.Summary, len(teamIDs))
	if len(teamIDs) == 0 {
		return out, nil
	}

	teams, err := h.repos.Teams.ListByIDs(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("list teams by ids: %w", err)
	}
	for _, item := range teams {
		summary := item.Summary()
		out[item.ID] = &summary
	}
	return out, nil
}

func orderByIDs[T any](ids []string, items []T, idOf func(T) string) []T {
	byID := make(map[string]T, len(items))
	for _, item := range items {
		byID[idOf(item)] = item
	}
	out := make([]T, 0, len(items))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			out = append(out, item)
		}
	}
	return out
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
