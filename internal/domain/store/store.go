package store

import (
	"context"
	"errors"

	"github.com/riskibarqy/league-registry/internal/domain/player"
	"github.com/riskibarqy/league-registry/internal/domain/schedule"
	"github.com/riskibarqy/league-registry/internal/domain/team"
	"github.com/riskibarqy/league-registry/internal/domain/user"
)

// ErrDuplicate is returned by repositories when a write violates a
// uniqueness rule (team name, roster number, fixture triple, username, email).
var ErrDuplicate = errors.New("duplicate record")

// ErrNotFound is returned by repository mutations that target a missing row.
var ErrNotFound = errors.New("record not found")

// Repositories groups the entity repositories bound to one storage scope.
type Repositories struct {
	Users     user.Repository
	Teams     team.Repository
	Players   player.Repository
	Schedules schedule.Repository
}

// TxManager runs fn with repositories bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
