package observability

import (
	"errors"
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestShouldSkipUptraceLog(t *testing.T) {
	if !shouldSkipUptraceLog("http request", []any{"path", "/healthz"}) {
		t.Fatalf("expected health check log to be skipped")
	}
	if shouldSkipUptraceLog("http request", []any{"path", "/v1/teams"}) {
		t.Fatalf("did not expect non-health log to be skipped")
	}
	if shouldSkipUptraceLog("publish domain event failed", []any{"path", "/healthz"}) {
		t.Fatalf("did not expect non-request event to be skipped")
	}
}

func TestBuildOTelLogAttributes(t *testing.T) {
	attrs := buildOTelLogAttributes([]any{"team_id", "team-001", "attempt", 2, "payload"})
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "team_id" || attrs[0].Value.AsString() != "team-001" {
		t.Fatalf("unexpected team_id attribute")
	}
	if attrs[1].Key != "attempt" || attrs[1].Value.AsInt64() != 2 {
		t.Fatalf("unexpected attempt attribute")
	}
	if attrs[2].Key != "payload" || attrs[2].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected payload attribute")
	}
}

func TestToOTelLogValue_Map(t *testing.T) {
	v := toOTelLogValue(map[string]any{
		"players": 11,
		"active":  true,
	}, 0)
	if v.Kind() != otellog.KindMap {
		t.Fatalf("expected map value, got %s", v.Kind())
	}
	if items := v.AsMap(); len(items) != 2 {
		t.Fatalf("expected 2 map items, got %d", len(items))
	}
}

func TestFieldsToArgs_SortedPairs(t *testing.T) {
	args := fieldsToArgs([]zapcore.Field{
		zap.String("team_id", "team-001"),
		zap.Int("cleared_players", 3),
		zap.NamedError("error", errors.New("boom")),
	})
	if len(args) != 6 {
		t.Fatalf("expected 6 args, got %d: %+v", len(args), args)
	}
	if args[0] != "cleared_players" || args[2] != "error" || args[4] != "team_id" {
		t.Fatalf("unexpected key order: %+v", args)
	}
	if args[3] != "boom" {
		t.Fatalf("expected error flattened to message, got %+v", args[3])
	}
}

func TestOTelLogCore_WithKeepsParentFields(t *testing.T) {
	core := newUptraceLogCore("test", zapcore.InfoLevel)
	child := core.With([]zapcore.Field{zap.String("component", "nats")})

	if core.Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug disabled for info core")
	}
	if got := len(child.(*otelLogCore).fields); got != 1 {
		t.Fatalf("expected 1 field on child core, got %d", got)
	}
	if got := len(core.(*otelLogCore).fields); got != 0 {
		t.Fatalf("expected parent core untouched, got %d fields", got)
	}
	if err := child.Write(zapcore.Entry{Level: zapcore.InfoLevel, Message: "hello", Time: time.Now()}, nil); err != nil {
		t.Fatalf("write entry: %v", err)
	}
}
