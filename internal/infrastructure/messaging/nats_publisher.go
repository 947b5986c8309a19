package messaging

import (
	"context"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	"github.com/nats-io/nats.go"
	"github.com/riskibarqy/league-registry/internal/domain/event"
	"github.com/riskibarqy/league-registry/internal/platform/logging"
	"github.com/riskibarqy/league-registry/internal/platform/resilience"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	headerEventType = "Event-Type"
	headerEntityID  = "Entity-ID"
)

type NATSPublisherConfig struct {
	URL            string
	SubjectPrefix  string
	ClientName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// msgPublisher is the subset of *nats.Conn the publisher needs.
type msgPublisher interface {
	PublishMsg(msg *nats.Msg) error
	Drain() error
}

type NATSPublisher struct {
	conn           msgPublisher
	subjectPrefix  string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewNATSPublisher(cfg NATSPublisherConfig, logger *logging.Logger) (*NATSPublisher, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, crerr.New("nats url is required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	reconnectWait := cfg.ReconnectWait
	if reconnectWait <= 0 {
		reconnectWait = 2 * time.Second
	}
	maxReconnects := cfg.MaxReconnects
	if maxReconnects == 0 {
		maxReconnects = -1
	}

	opts := []nats.Option{
		nats.Name(cfg.ClientName),
		nats.MaxReconnects(maxReconnects),
		nats.ReconnectWait(reconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			logger.Error("nats async error", "error", err)
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, crerr.Wrapf(err, "connect to nats url=%s", cfg.URL)
	}

	return newNATSPublisher(nc, cfg, logger, clockwork.NewRealClock()), nil
}

func newNATSPublisher(conn msgPublisher, cfg NATSPublisherConfig, logger *logging.Logger, clock clockwork.Clock) *NATSPublisher {
	if logger == nil {
		logger = logging.Default()
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)
	prefix := strings.Trim(strings.TrimSpace(cfg.SubjectPrefix), ".")
	if prefix == "" {
		prefix = "league"
	}

	return &NATSPublisher{
		conn:           conn,
		subjectPrefix:  prefix,
		logger:         logger,
		breaker:        resilience.NewCircuitBreakerFromConfig(breakerCfg, clock),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (p *NATSPublisher) Publish(ctx context.Context, evt event.Event) error {
	subject := p.subject(evt.Type)

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(toEnvelope(evt)); err != nil {
		return crerr.Wrapf(err, "encode event type=%s", evt.Type)
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("messaging.system", "nats"),
			attribute.String("messaging.destination", subject),
			attribute.String("league.entity_id", evt.EntityID),
		)
	}

	msg := &nats.Msg{
		Subject: subject,
		Data:    buf.B,
		Header: nats.Header{
			headerEventType: []string{string(evt.Type)},
			headerEntityID:  []string{evt.EntityID},
		},
	}

	publish := func() error {
		if err := p.conn.PublishMsg(msg); err != nil {
			return crerr.Wrapf(err, "publish subject=%s", subject)
		}
		return nil
	}

	var err error
	if p.circuitEnabled {
		err = p.breaker.Execute(publish)
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			p.logger.WarnContext(ctx, "nats circuit breaker rejected event", "subject", subject, "state", p.breaker.State())
		}
	} else {
		err = publish()
	}
	if err != nil {
		return err
	}

	p.logger.DebugContext(ctx, "event published", "subject", subject, "entity_id", evt.EntityID)
	return nil
}

// Close flushes buffered messages before closing the connection.
func (p *NATSPublisher) Close() error {
	if p.conn == nil {
		return nil
	}
	if err := p.conn.Drain(); err != nil {
		return crerr.Wrap(err, "drain nats connection")
	}
	return nil
}

func (p *NATSPublisher) subject(typ event.Type) string {
	return p.subjectPrefix + "." + string(typ)
}

type eventEnvelope struct {
	Type       string            `json:"type"`
	EntityID   string            `json:"entityId"`
	ActorID    string            `json:"actorId,omitempty"`
	OccurredAt time.Time         `json:"occurredAt"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

func toEnvelope(evt event.Event) eventEnvelope {
	return eventEnvelope{
		Type:       string(evt.Type),
		EntityID:   evt.EntityID,
		ActorID:    evt.ActorID,
		OccurredAt: evt.OccurredAt.UTC(),
		Attributes: evt.Attributes,
	}
}
