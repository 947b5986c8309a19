package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/league-registry/internal/domain/schedule"
	"github.com/riskibarqy/league-registry/internal/domain/store"
)

type ScheduleRepository struct {
	scope
}

func (r *ScheduleRepository) Create(_ context.Context, item schedule.Schedule) error {
	return r.mutate(func(d *dataset) error {
		if _, ok := d.schedules[item.ID]; ok {
			return fmt.Errorf("%w: schedule id=%s", store.ErrDuplicate, item.ID)
		}
		if err := ensureUniqueMatchup(d, item); err != nil {
			return err
		}
		d.schedules[item.ID] = item
		return nil
	})
}

func (r *ScheduleRepository) GetByID(_ context.Context, scheduleID string) (schedule.Schedule, bool, error) {
	var (
		item   schedule.Schedule
		exists bool
	)
	r.view(func(d *dataset) {
		item, exists = d.schedules[scheduleID]
	})
	return item, exists, nil
}

func (r *ScheduleRepository) FindByMatchup(_ context.Context, homeTeamID, awayTeamID string, date time.Time) (schedule.Schedule, bool, error) {
	var (
		item   schedule.Schedule
		exists bool
	)
	r.view(func(d *dataset) {
		for _, candidate := range d.schedules {
			if sameMatchup(candidate, homeTeamID, awayTeamID, date) {
				item, exists = candidate, true
				return
			}
		}
	})
	return item, exists, nil
}

func (r *ScheduleRepository) List(_ context.Context) ([]schedule.Schedule, error) {
	var out []schedule.Schedule
	r.view(func(d *dataset) {
		out = collectSchedules(d, func(schedule.Schedule) bool { return true })
	})
	return out, nil
}

func (r *ScheduleRepository) ListByTeam(_ context.Context, teamID string) ([]schedule.Schedule, error) {
	var out []schedule.Schedule
	r.view(func(d *dataset) {
		out = collectSchedules(d, func(item schedule.Schedule) bool { return item.Involves(teamID) })
	})
	return out, nil
}

func (r *ScheduleRepository) ListByIDs(_ context.Context, scheduleIDs []string) ([]schedule.Schedule, error) {
	wanted := idSet(scheduleIDs)
	var out []schedule.Schedule
	r.view(func(d *dataset) {
		out = collectSchedules(d, func(item schedule.Schedule) bool {
			_, ok := wanted[item.ID]
			return ok
		})
	})
	return out, nil
}

func (r *ScheduleRepository) Update(_ context.Context, item schedule.Schedule) error {
	return r.mutate(func(d *dataset) error {
		current, ok := d.schedules[item.ID]
		if !ok {
			return fmt.Errorf("%w: schedule=%s", store.ErrNotFound, item.ID)
		}
		if err := ensureUniqueMatchup(d, item); err != nil {
			return err
		}
		item.CreatedAt = current.CreatedAt
		item.CreatedBy = current.CreatedBy
		d.schedules[item.ID] = item
		return nil
	})
}

func (r *ScheduleRepository) Delete(_ context.Context, scheduleID string) error {
	return r.mutate(func(d *dataset) error {
		if _, ok := d.schedules[scheduleID]; !ok {
			return fmt.Errorf("%w: schedule=%s", store.ErrNotFound, scheduleID)
		}
		delete(d.schedules, scheduleID)
		return nil
	})
}

func ensureUniqueMatchup(d *dataset, item schedule.Schedule) error {
	for _, existing := range d.schedules {
		if existing.ID != item.ID && sameMatchup(existing, item.HomeTeamID, item.AwayTeamID, item.Date) {
			return fmt.Errorf("%w: schedule home=%s away=%s date=%s", store.ErrDuplicate, item.HomeTeamID, item.AwayTeamID, item.Date.Format(time.RFC3339))
		}
	}
	return nil
}

func sameMatchup(item schedule.Schedule, homeTeamID, awayTeamID string, date time.Time) bool {
	return item.HomeTeamID == homeTeamID && item.AwayTeamID == awayTeamID && item.Date.Equal(date)
}

func collectSchedules(d *dataset, keep func(schedule.Schedule) bool) []schedule.Schedule {
	out := make([]schedule.Schedule, 0, len(d.schedules))
	for _, item := range d.schedules {
		if keep(item) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
