package log

import (
	"log/slog"
	"maps"
	"slices"
)

// Reserved attribute keys consumed by handlers instead of being rendered as
// key=value pairs.
const (
	// NameKey carries the subsystem name used to prefix the message.
	NameKey = "name"

	// ColorKey carries a per-record color name that wraps the whole
	// rendered message on the console.
	ColorKey = "color"
)

// Attrs is a stable set of default attributes held by an [Adapter].
// Defaults are merged under call-time attributes on every log call: a
// call-time attribute with the same key overrides the default.
type Attrs map[string]any

// merge returns the default attributes followed by the call-time attributes.
// Defaults are emitted in sorted key order so output is deterministic;
// handlers resolve duplicate keys last-wins, which gives call-time values
// precedence.
func (a Attrs) merge(attrs []slog.Attr) []slog.Attr {
	merged := make([]slog.Attr, 0, len(a)+len(attrs))

	for _, key := range slices.Sorted(maps.Keys(a)) {
		merged = append(merged, slog.Any(key, a[key]))
	}

	return append(merged, attrs...)
}
