package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/league-registry/internal/domain/player"
	"github.com/riskibarqy/league-registry/internal/domain/store"
)

type PlayerRepository struct {
	scope
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) error {
	return r.mutate(func(d *dataset) error {
		if _, ok := d.players[item.ID]; ok {
			return fmt.Errorf("%w: player id=%s", store.ErrDuplicate, item.ID)
		}
		if err := ensureUniqueNumber(d, item); err != nil {
			return err
		}
		d.players[item.ID] = item
		return nil
	})
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	var (
		item   player.Player
		exists bool
	)
	r.view(func(d *dataset) {
		item, exists = d.players[playerID]
	})
	return item, exists, nil
}

func (r *PlayerRepository) GetByTeamAndNumber(_ context.Context, teamID string, number int) (player.Player, bool, error) {
	var (
		item   player.Player
		exists bool
	)
	r.view(func(d *dataset) {
		for _, candidate := range d.players {
			if candidate.TeamID != "" && candidate.TeamID == teamID && candidate.Number == number {
				item, exists = candidate, true
				return
			}
		}
	})
	return item, exists, nil
}

func (r *PlayerRepository) List(_ context.Context, filter player.ListFilter) ([]player.Player, error) {
	var out []player.Player
	r.view(func(d *dataset) {
		out = paginate(matchPlayers(d, filter), filter.Offset, filter.Limit)
	})
	return out, nil
}

func (r *PlayerRepository) Count(_ context.Context, filter player.ListFilter) (int, error) {
	var total int
	r.view(func(d *dataset) {
		total = len(matchPlayers(d, filter))
	})
	return total, nil
}

func (r *PlayerRepository) ListByIDs(_ context.Context, playerIDs []string) ([]player.Player, error) {
	out := make([]player.Player, 0, len(playerIDs))
	r.view(func(d *dataset) {
		for id := range idSet(playerIDs) {
			if item, ok := d.players[id]; ok {
				out = append(out, item)
			}
		}
	})
	return out, nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) error {
	return r.mutate(func(d *dataset) error {
		current, ok := d.players[item.ID]
		if !ok {
			return fmt.Errorf("%w: player=%s", store.ErrNotFound, item.ID)
		}
		if err := ensureUniqueNumber(d, item); err != nil {
			return err
		}
		item.CreatedAt = current.CreatedAt
		item.CreatedBy = current.CreatedBy
		d.players[item.ID] = item
		return nil
	})
}

func (r *PlayerRepository) Delete(_ context.Context, playerID string) error {
	return r.mutate(func(d *dataset) error {
		if _, ok := d.players[playerID]; !ok {
			return fmt.Errorf("%w: player=%s", store.ErrNotFound, playerID)
		}
		delete(d.players, playerID)
		return nil
	})
}

// ClearTeam orphans every player of teamID and returns how many changed.
func (r *PlayerRepository) ClearTeam(_ context.Context, teamID string) (int, error) {
	if teamID == "" {
		return 0, nil
	}
	cleared := 0
	err := r.mutate(func(d *dataset) error {
		for id, item := range d.players {
			if item.TeamID != teamID {
				continue
			}
			item.TeamID = ""
			d.players[id] = item
			cleared++
		}
		return nil
	})
	return cleared, err
}

func ensureUniqueNumber(d *dataset, item player.Player) error {
	if item.TeamID == "" {
		return nil
	}
	for _, existing := range d.players {
		if existing.ID != item.ID && existing.TeamID == item.TeamID && existing.Number == item.Number {
			return fmt.Errorf("%w: team=%s number=%d", store.ErrDuplicate, item.TeamID, item.Number)
		}
	}
	return nil
}

func matchPlayers(d *dataset, filter player.ListFilter) []player.Player {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]player.Player, 0, len(d.players))
	for _, item := range d.players {
		if filter.TeamID != "" && item.TeamID != filter.TeamID {
			continue
		}
		if filter.Position != "" && !strings.EqualFold(string(item.Position), string(filter.Position)) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.FirstName), search) &&
			!strings.Contains(strings.ToLower(item.LastName), search) {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		if out[i].FirstName != out[j].FirstName {
			return out[i].FirstName < out[j].FirstName
		}
		return out[i].ID < out[j].ID
	})
	return out
}
