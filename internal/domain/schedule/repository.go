package schedule

import (
	"context"
	"time"
)

// Repository describes fixture persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Schedule) error
	GetByID(ctx context.Context, scheduleID string) (Schedule, bool, error)
	FindByMatchup(ctx context.Context, homeTeamID, awayTeamID string, date time.Time) (Schedule, bool, error)
	List(ctx context.Context) ([]Schedule, error)
	ListByTeam(ctx context.Context, teamID string) ([]Schedule, error)
	ListByIDs(ctx context.Context, scheduleIDs []string) ([]Schedule, error)
	Update(ctx context.Context, item Schedule) error
	Delete(ctx context.Context, scheduleID string) error
}
