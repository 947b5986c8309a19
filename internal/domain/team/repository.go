package team

import "context"

// ListFilter narrows team listings. Search matches name or city.
type ListFilter struct {
	Search string
	Offset int
	Limit  int
}

// Repository describes team persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Team) error
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	GetByName(ctx context.Context, name string) (Team, bool, error)
	List(ctx context.Context, filter ListFilter) ([]Team, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
	ListByIDs(ctx context.Context, teamIDs []string) ([]Team, error)
	Update(ctx context.Context, item Team) error
	Delete(ctx context.Context, teamID string) error
	AppendPlayer(ctx context.Context, teamID, playerID string) error
	RemovePlayer(ctx context.Context, teamID, playerID string) error
	AppendSchedule(ctx context.Context, teamID, scheduleID string) error
	RemoveSchedule(ctx context.Context, teamID, scheduleID string) error
}
