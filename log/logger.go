package log

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"
	"time"
)

// Logger is a named logger that fans each record out to every attached
// handler. The logger's own threshold is pinned to DEBUG; filtering is
// delegated entirely to each handler's threshold, so handlers with different
// thresholds observe the same record stream.
type Logger struct {
	mu       sync.Mutex
	handlers []slog.Handler
	slogger  *slog.Logger
	name     string
}

func newLogger(name string) *Logger {
	l := &Logger{name: name}
	l.slogger = slog.New(&fanout{logger: l})

	return l
}

// Name returns the logger's registry name.
func (l *Logger) Name() string { return l.name }

// Slog returns the underlying [slog.Logger] for callers that want the
// standard interface.
func (l *Logger) Slog() *slog.Logger { return l.slogger }

// AddHandler attaches a handler to the logger. Handlers accumulate: calling
// [Configure] twice for the same name attaches a second pair.
func (l *Logger) AddHandler(h slog.Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.handlers = append(l.handlers, h)
}

// Handlers returns a snapshot of the attached handlers.
func (l *Logger) Handlers() []slog.Handler {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]slog.Handler(nil), l.handlers...)
}

// LogContext logs a message at the given level with the provided context.
func (l *Logger) LogContext(
	ctx context.Context,
	level Level,
	msg string,
	attrs ...slog.Attr,
) {
	if !l.slogger.Enabled(ctx, slog.Level(level)) {
		return
	}

	var pcs [1]uintptr
	// Skip runtime.Callers, LogContext, and the per-level wrapper.
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), slog.Level(level), msg, pcs[0])
	r.AddAttrs(attrs...)
	_ = l.slogger.Handler().Handle(ctx, r)
}

// Log logs a message at the given level.
func (l *Logger) Log(level Level, msg string, attrs ...slog.Attr) {
	l.LogContext(context.Background(), level, msg, attrs...)
}

// Debug logs a message at DEBUG level.
func (l *Logger) Debug(msg string, attrs ...slog.Attr) {
	l.LogContext(context.Background(), LevelDebug, msg, attrs...)
}

// Info logs a message at INFO level.
func (l *Logger) Info(msg string, attrs ...slog.Attr) {
	l.LogContext(context.Background(), LevelInfo, msg, attrs...)
}

// Warning logs a message at WARNING level.
func (l *Logger) Warning(msg string, attrs ...slog.Attr) {
	l.LogContext(context.Background(), LevelWarning, msg, attrs...)
}

// Error logs a message at ERROR level.
func (l *Logger) Error(msg string, attrs ...slog.Attr) {
	l.LogContext(context.Background(), LevelError, msg, attrs...)
}

// Critical logs a message at CRITICAL level.
func (l *Logger) Critical(msg string, attrs ...slog.Attr) {
	l.LogContext(context.Background(), LevelCritical, msg, attrs...)
}

// fanout dispatches each record to every attached handler that reports the
// record's level enabled. Each handler receives its own clone of the record,
// since color state differs per handler and no handler may observe another's
// view.
type fanout struct {
	logger *Logger

	// fixed is the materialized handler list of a WithAttrs or WithGroup
	// derivative; nil means the live list of the owning Logger.
	fixed []slog.Handler
}

func (f *fanout) snapshot() []slog.Handler {
	if f.fixed != nil {
		return f.fixed
	}

	return f.logger.Handlers()
}

func (f *fanout) Enabled(_ context.Context, level slog.Level) bool {
	// The logger-level threshold is always DEBUG.
	return level >= slog.Level(LevelDebug)
}

func (f *fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error

	for _, h := range f.snapshot() {
		if !h.Enabled(ctx, r.Level) {
			continue
		}

		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (f *fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	live := f.snapshot()
	fixed := make([]slog.Handler, len(live))

	for i, h := range live {
		fixed[i] = h.WithAttrs(attrs)
	}

	return &fanout{logger: f.logger, fixed: fixed}
}

func (f *fanout) WithGroup(name string) slog.Handler {
	live := f.snapshot()
	fixed := make([]slog.Handler, len(live))

	for i, h := range live {
		fixed[i] = h.WithGroup(name)
	}

	return &fanout{logger: f.logger, fixed: fixed}
}
