package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/league-registry/internal/domain/event"
	"github.com/riskibarqy/league-registry/internal/platform/logging"
)

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, event.Event) error { return nil }

// NoopPublisher discards every event.
func NoopPublisher() event.Publisher {
	return noopPublisher{}
}

// eventEmitter publishes after commit. Delivery failures are logged and
// never surface to the caller.
type eventEmitter struct {
	publisher event.Publisher
	logger    *logging.Logger
}

func newEventEmitter(publisher event.Publisher, logger *logging.Logger) eventEmitter {
	if publisher == nil {
		publisher = NoopPublisher()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return eventEmitter{publisher: publisher, logger: logger}
}

func (e eventEmitter) emit(ctx context.Context, typ event.Type, entityID, actorID string, at time.Time, attrs map[string]string) {
	evt := event.Event{
		Type:       typ,
		EntityID:   entityID,
		ActorID:    actorID,
		OccurredAt: at.UTC(),
		Attributes: attrs,
	}
	if err := e.publisher.Publish(ctx, evt); err != nil {
		e.logger.WarnContext(ctx, "publish domain event failed", "event_type", string(typ), "entity_id", entityID, "error", err)
	}
}
