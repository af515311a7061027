package log

import (
	"log/slog"
)

// Adapter wraps a [Logger] with a fixed subsystem name. It exposes the same
// level methods as the logger, merging the caller's attributes over its
// defaults on every call: an attribute with the same key as a default (most
// usefully "name") overrides it for that record only.
//
// The adapter holds one stable attribute map; no per-call state accumulates
// on the underlying logger.
type Adapter struct {
	logger   *Logger
	defaults Attrs
}

// NewAdapter wraps logger with the given subsystem name.
func NewAdapter(logger *Logger, name string) *Adapter {
	return &Adapter{
		logger:   logger,
		defaults: Attrs{NameKey: name},
	}
}

// With returns a new adapter that also carries the given default attribute.
func (a *Adapter) With(key string, value any) *Adapter {
	defaults := make(Attrs, len(a.defaults)+1)
	for k, v := range a.defaults {
		defaults[k] = v
	}

	defaults[key] = value

	return &Adapter{logger: a.logger, defaults: defaults}
}

// Logger returns the wrapped logger.
func (a *Adapter) Logger() *Logger { return a.logger }

// Name returns the adapter's subsystem name.
func (a *Adapter) Name() string {
	name, _ := a.defaults[NameKey].(string)

	return name
}

// Log logs a message at the given level with the adapter's defaults merged
// under the call-time attributes.
func (a *Adapter) Log(level Level, msg string, attrs ...slog.Attr) {
	a.logger.Log(level, msg, a.defaults.merge(attrs)...)
}

// Debug logs a message at DEBUG level.
func (a *Adapter) Debug(msg string, attrs ...slog.Attr) {
	a.Log(LevelDebug, msg, attrs...)
}

// Info logs a message at INFO level.
func (a *Adapter) Info(msg string, attrs ...slog.Attr) {
	a.Log(LevelInfo, msg, attrs...)
}

// Warning logs a message at WARNING level.
func (a *Adapter) Warning(msg string, attrs ...slog.Attr) {
	a.Log(LevelWarning, msg, attrs...)
}

// Error logs a message at ERROR level.
func (a *Adapter) Error(msg string, attrs ...slog.Attr) {
	a.Log(LevelError, msg, attrs...)
}

// Critical logs a message at CRITICAL level.
func (a *Adapter) Critical(msg string, attrs ...slog.Attr) {
	a.Log(LevelCritical, msg, attrs...)
}
