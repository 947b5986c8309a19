package player

import "context"

// ListFilter narrows player listings. Search matches first or last name.
type ListFilter struct {
	TeamID   string
	Position Position
	Search   string
	Offset   int
	Limit    int
}

// Repository describes player persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Player) error
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	GetByTeamAndNumber(ctx context.Context, teamID string, number int) (Player, bool, error)
	List(ctx context.Context, filter ListFilter) ([]Player, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
	ListByIDs(ctx context.Context, playerIDs []string) ([]Player, error)
	Update(ctx context.Context, item Player) error
	Delete(ctx context.Context, playerID string) error
	ClearTeam(ctx context.Context, teamID string) (int, error)
}
