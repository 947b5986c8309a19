package event

import (
	"context"
	"time"
)

type Type string

const (
	TypeTeamCreated     Type = "team.created"
	TypeTeamUpdated     Type = "team.updated"
	TypeTeamDeleted     Type = "team.deleted"
	TypePlayerCreated   Type = "player.created"
	TypePlayerUpdated   Type = "player.updated"
	TypePlayerDeleted   Type = "player.deleted"
	TypeScheduleCreated Type = "schedule.created"
	TypeScheduleUpdated Type = "schedule.updated"
	TypeScheduleDeleted Type = "schedule.deleted"
)

// Event describes a committed change to a league entity.
type Event struct {
	Type       Type
	EntityID   string
	ActorID    string
	OccurredAt time.Time
	Attributes map[string]string
}

// Publisher delivers events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}
