package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"go.uber.org/fx"
)

func TestNewProvidesJSONLogger(t *testing.T) {
	l := New()
	if l == nil {
		t.Fatal("expected logger, got nil")
	}

	if !l.Enabled(context.Background(), slog.LevelInfo) {
		t.Errorf("expected info level to be enabled")
	}
	if l.Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("did not expect debug level to be enabled")
	}

	if _, ok := l.Handler().(*slog.JSONHandler); !ok {
		t.Fatalf("expected JSON handler, got %T", l.Handler())
	}
}

func TestLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf)
	l.Info("order approved", slog.String("orderNo", "#0033"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON output: %v", err)
	}
	if record["msg"] != "order approved" || record["orderNo"] != "#0033" {
		t.Fatalf("unexpected record %v", record)
	}
}

func TestModuleProvidesLogger(t *testing.T) {
	var resolved *slog.Logger
	app := fx.New(
		Module,
		fx.Populate(&resolved),
	)
	t.Cleanup(func() { _ = app.Stop(context.Background()) })
	if err := app.Err(); err != nil {
		t.Fatalf("fx app failed: %v", err)
	}
	if resolved == nil {
		t.Fatal("expected logger to be populated")
	}
}
