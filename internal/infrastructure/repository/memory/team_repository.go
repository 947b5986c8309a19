package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/league-registry/internal/domain/store"
	"github.com/riskibarqy/league-registry/internal/domain/team"
)

type TeamRepository struct {
	scope
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) error {
	return r.mutate(func(d *dataset) error {
		if _, ok := d.teams[item.ID]; ok {
			return fmt.Errorf("%w: team id=%s", store.ErrDuplicate, item.ID)
		}
		if err := ensureUniqueTeamName(d, item); err != nil {
			return err
		}
		d.teams[item.ID] = item.Clone()
		return nil
	})
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	var (
		item   team.Team
		exists bool
	)
	r.view(func(d *dataset) {
		item, exists = d.teams[teamID]
		item = item.Clone()
	})
	return item, exists, nil
}

func (r *TeamRepository) GetByName(_ context.Context, name string) (team.Team, bool, error) {
	var (
		item   team.Team
		exists bool
	)
	r.view(func(d *dataset) {
		for _, candidate := range d.teams {
			if strings.EqualFold(candidate.Name, name) {
				item, exists = candidate.Clone(), true
				return
			}
		}
	})
	return item, exists, nil
}

func (r *TeamRepository) List(_ context.Context, filter team.ListFilter) ([]team.Team, error) {
	var out []team.Team
	r.view(func(d *dataset) {
		out = paginate(matchTeams(d, filter), filter.Offset, filter.Limit)
	})
	return out, nil
}

func (r *TeamRepository) Count(_ context.Context, filter team.ListFilter) (int, error) {
	var total int
	r.view(func(d *dataset) {
		total = len(matchTeams(d, filter))
	})
	return total, nil
}

func (r *TeamRepository) ListByIDs(_ context.Context, teamIDs []string) ([]team.Team, error) {
	out := make([]team.Team, 0, len(teamIDs))
	r.view(func(d *dataset) {
		for id := range idSet(teamIDs) {
			if item, ok := d.teams[id]; ok {
				out = append(out, item.Clone())
			}
		}
	})
	return out, nil
}

// Update overwrites the scalar fields. Roster and fixture references are
// only changed through the Append/Remove methods.
func (r *TeamRepository) Update(_ context.Context, item team.Team) error {
	return r.mutate(func(d *dataset) error {
		current, ok := d.teams[item.ID]
		if !ok {
			return fmt.Errorf("%w: team=%s", store.ErrNotFound, item.ID)
		}
		if err := ensureUniqueTeamName(d, item); err != nil {
			return err
		}
		item.PlayerIDs = current.PlayerIDs
		item.ScheduleIDs = current.ScheduleIDs
		item.CreatedAt = current.CreatedAt
		item.CreatedBy = current.CreatedBy
		d.teams[item.ID] = item.Clone()
		return nil
	})
}

func (r *TeamRepository) Delete(_ context.Context, teamID string) error {
	return r.mutate(func(d *dataset) error {
		if _, ok := d.teams[teamID]; !ok {
			return fmt.Errorf("%w: team=%s", store.ErrNotFound, teamID)
		}
		delete(d.teams, teamID)
		return nil
	})
}

func (r *TeamRepository) AppendPlayer(_ context.Context, teamID, playerID string) error {
	return r.updateRefs(teamID, func(item *team.Team) {
		if !item.HasPlayer(playerID) {
			item.PlayerIDs = append(item.PlayerIDs, playerID)
		}
	})
}

func (r *TeamRepository) RemovePlayer(_ context.Context, teamID, playerID string) error {
	return r.updateRefs(teamID, func(item *team.Team) {
		item.PlayerIDs = removeID(item.PlayerIDs, playerID)
	})
}

func (r *TeamRepository) AppendSchedule(_ context.Context, teamID, scheduleID string) error {
	return r.updateRefs(teamID, func(item *team.Team) {
		if !item.HasSchedule(scheduleID) {
			item.ScheduleIDs = append(item.ScheduleIDs, scheduleID)
		}
	})
}

func (r *TeamRepository) RemoveSchedule(_ context.Context, teamID, scheduleID string) error {
	return r.updateRefs(teamID, func(item *team.Team) {
		item.ScheduleIDs = removeID(item.ScheduleIDs, scheduleID)
	})
}

func (r *TeamRepository) updateRefs(teamID string, apply func(item *team.Team)) error {
	return r.mutate(func(d *dataset) error {
		current, ok := d.teams[teamID]
		if !ok {
			return fmt.Errorf("%w: team=%s", store.ErrNotFound, teamID)
		}
		item := current.Clone()
		apply(&item)
		d.teams[teamID] = item
		return nil
	})
}

func ensureUniqueTeamName(d *dataset, item team.Team) error {
	for _, existing := range d.teams {
		if existing.ID != item.ID && strings.EqualFold(existing.Name, item.Name) {
			return fmt.Errorf("%w: team name=%s", store.ErrDuplicate, item.Name)
		}
	}
	return nil
}

func matchTeams(d *dataset, filter team.ListFilter) []team.Team {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]team.Team, 0, len(d.teams))
	for _, item := range d.teams {
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.City), search) {
			continue
		}
		out = append(out, item.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func removeID(ids []string, id string) []string {
	out := ids[:0:0]
	for _, item := range ids {
		if item != id {
			out = append(out, item)
		}
	}
	return out
}
