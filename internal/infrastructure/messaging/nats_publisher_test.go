package messaging

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/jonboulle/clockwork"
	"github.com/nats-io/nats.go"
	"github.com/riskibarqy/league-registry/internal/domain/event"
	"github.com/riskibarqy/league-registry/internal/platform/logging"
	"github.com/riskibarqy/league-registry/internal/platform/resilience"
)

type fakeConn struct {
	subjects []string
	payloads [][]byte
	headers  []nats.Header
	err      error
	drained  bool
}

func (f *fakeConn) PublishMsg(msg *nats.Msg) error {
	if f.err != nil {
		return f.err
	}
	f.subjects = append(f.subjects, msg.Subject)
	f.payloads = append(f.payloads, append([]byte(nil), msg.Data...))
	f.headers = append(f.headers, msg.Header)
	return nil
}

func (f *fakeConn) Drain() error {
	f.drained = true
	return nil
}

func TestNATSPublisher_PublishEncodesEnvelope(t *testing.T) {
	t.Parallel()

	conn := &fakeConn{}
	publisher := newNATSPublisher(conn, NATSPublisherConfig{SubjectPrefix: "league.events."}, logging.NewNop(), clockwork.NewFakeClock())

	occurredAt := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	err := publisher.Publish(context.Background(), event.Event{
		Type:       event.TypeTeamCreated,
		EntityID:   "t-1",
		ActorID:    "u-1",
		OccurredAt: occurredAt,
		Attributes: map[string]string{"name": "Hawks"},
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(conn.subjects) != 1 || conn.subjects[0] != "league.events.team.created" {
		t.Fatalf("unexpected subjects: %+v", conn.subjects)
	}
	if got := conn.headers[0].Get(headerEntityID); got != "t-1" {
		t.Fatalf("unexpected entity header: %q", got)
	}

	var envelope eventEnvelope
	if err := sonic.Unmarshal(conn.payloads[0], &envelope); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if envelope.Type != "team.created" || envelope.ActorID != "u-1" || envelope.Attributes["name"] != "Hawks" {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
	if !envelope.OccurredAt.Equal(occurredAt) {
		t.Fatalf("unexpected occurredAt: %s", envelope.OccurredAt)
	}
}

func TestNATSPublisher_CircuitOpensAfterFailures(t *testing.T) {
	t.Parallel()

	conn := &fakeConn{err: errors.New("nats: connection closed")}
	publisher := newNATSPublisher(conn, NATSPublisherConfig{
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	}, logging.NewNop(), clockwork.NewFakeClock())

	evt := event.Event{Type: event.TypePlayerDeleted, EntityID: "p-1"}
	for i := 0; i < 2; i++ {
		err := publisher.Publish(context.Background(), evt)
		if err == nil || !strings.Contains(err.Error(), "connection closed") {
			t.Fatalf("attempt %d: expected publish error, got %v", i, err)
		}
	}

	err := publisher.Publish(context.Background(), evt)
	if !errors.Is(err, resilience.ErrCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}
}

func TestNATSPublisher_DefaultsAndClose(t *testing.T) {
	t.Parallel()

	conn := &fakeConn{}
	publisher := newNATSPublisher(conn, NATSPublisherConfig{}, nil, nil)
	if got := publisher.subject(event.TypeScheduleUpdated); got != "league.schedule.updated" {
		t.Fatalf("unexpected default subject: %s", got)
	}
	if err := publisher.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !conn.drained {
		t.Fatalf("expected connection to be drained")
	}
}

func TestNewNATSPublisher_RequiresURL(t *testing.T) {
	t.Parallel()

	if _, err := NewNATSPublisher(NATSPublisherConfig{URL: " "}, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty url")
	}
}
