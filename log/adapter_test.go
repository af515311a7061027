package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// testLogger builds a logger with a single plain console handler capturing
// everything into the returned buffer.
func testLogger(t *testing.T, level Level) (*Logger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer

	logger := newLogger("TEST")
	logger.AddHandler(newConsoleHandler(&buf, level, true, nil))

	return logger, &buf
}

func TestAdapter_DefaultNamePrefixesMessage(t *testing.T) {
	logger, buf := testLogger(t, LevelDebug)

	adapter := NewAdapter(logger, "WORKER")
	adapter.Info("pulling job")

	if !strings.Contains(buf.String(), "WORKER: pulling job") {
		t.Errorf("output %q missing default name prefix", buf.String())
	}
}

func TestAdapter_CallTimeNameOverridesDefault(t *testing.T) {
	logger, buf := testLogger(t, LevelDebug)

	adapter := NewAdapter(logger, "WORKER")
	adapter.Info("pulling job", slog.String(NameKey, "INGEST"))

	out := buf.String()

	if !strings.Contains(out, "INGEST: pulling job") {
		t.Errorf("output %q missing overriding name prefix", out)
	}

	if strings.Contains(out, "WORKER") {
		t.Errorf("output %q still carries the default name", out)
	}
}

func TestAdapter_LastCallTimeAttrWins(t *testing.T) {
	logger, buf := testLogger(t, LevelDebug)

	adapter := NewAdapter(logger, "WORKER")
	adapter.Info("msg",
		slog.String(NameKey, "FIRST"),
		slog.String(NameKey, "SECOND"),
	)

	if !strings.Contains(buf.String(), "SECOND: msg") {
		t.Errorf("output %q: last matching attribute did not win", buf.String())
	}
}

func TestAdapter_AllLevels(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(*Adapter, string, ...slog.Attr)
		want    string
	}{
		{"debug", (*Adapter).Debug, "DEBUG"},
		{"info", (*Adapter).Info, "INFO"},
		{"warning", (*Adapter).Warning, "WARNING"},
		{"error", (*Adapter).Error, "ERROR"},
		{"critical", (*Adapter).Critical, "CRITICAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := testLogger(t, LevelDebug)

			adapter := NewAdapter(logger, "SUB")
			tt.logFunc(adapter, "test message")

			out := buf.String()

			if !strings.HasPrefix(out, tt.want) {
				t.Errorf("output %q does not start with %q", out, tt.want)
			}

			if !strings.Contains(out, "SUB: test message") {
				t.Errorf("output %q missing prefixed message", out)
			}
		})
	}
}

func TestAdapter_With_AddsDefaultAttr(t *testing.T) {
	logger, buf := testLogger(t, LevelDebug)

	adapter := NewAdapter(logger, "WORKER").With("job", "backfill")
	adapter.Info("running")

	if !strings.Contains(buf.String(), "job=backfill") {
		t.Errorf("output %q missing inherited attribute", buf.String())
	}

	if adapter.Name() != "WORKER" {
		t.Errorf("Name() = %q, want WORKER", adapter.Name())
	}
}

func TestAdapter_ExtraAttrsDoNotAccumulate(t *testing.T) {
	logger, buf := testLogger(t, LevelDebug)

	adapter := NewAdapter(logger, "WORKER")
	adapter.Info("first", slog.String("job", "a"))

	buf.Reset()
	adapter.Info("second")

	if strings.Contains(buf.String(), "job=") {
		t.Errorf("output %q: earlier call's attribute leaked", buf.String())
	}
}
