package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// consoleHandler renders records as single colorized lines:
//
//	LEVEL    NAME: message key=value ...
//
// The level name is padded to a fixed width before any color is applied, so
// the visible name is always exactly [levelNameWidth] characters regardless
// of escape sequences. Rendering is a pure function of the record; the
// handler holds no per-record state and never mutates the record it is
// handed.
type consoleHandler struct {
	mu      *sync.Mutex
	w       io.Writer
	match   *matcher
	attrs   []slog.Attr
	groups  []string
	level   Level
	noColor bool
}

func newConsoleHandler(
	w io.Writer,
	level Level,
	noColor bool,
	match *matcher,
) *consoleHandler {
	return &consoleHandler{
		mu:      &sync.Mutex{},
		w:       w,
		match:   match,
		level:   level,
		noColor: noColor,
	}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.Level(h.level)
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	name, color, rest := splitAttrs(h.attrs, r)

	if h.match != nil && !h.match.matches(Level(r.Level), name, r.Message) {
		return nil
	}

	buf := new(bytes.Buffer)

	// Pad first, then color: the padding must survive the color wrapping.
	level := fmt.Sprintf("%-*s", levelNameWidth, Level(r.Level).String())
	if !h.noColor {
		level = colorize(levelColor(Level(r.Level)), level)
	}

	buf.WriteString(level)
	buf.WriteByte(' ')

	msg := r.Message
	if name != "" {
		msg = name + ": " + msg
	}

	// A per-record color override wraps the whole message body. Unknown
	// names degrade to the identity wrapper inside colorize.
	if !h.noColor && color != "" {
		msg = colorize(color, msg)
	}

	buf.WriteString(msg)

	for _, a := range rest {
		fmt.Fprintf(buf, " %s=%v", a.Key, a.Value)
	}

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)

	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return &clone
}

// splitAttrs resolves the reserved name and color attributes from the
// handler's bound attributes followed by the record's own, returning the
// remaining attributes in order. Duplicate keys resolve last-wins, so
// call-time values override adapter defaults.
func splitAttrs(
	bound []slog.Attr,
	r slog.Record,
) (name, color string, rest []slog.Attr) {
	seen := map[string]int{}

	consume := func(a slog.Attr) {
		switch a.Key {
		case NameKey:
			name = a.Value.String()
		case ColorKey:
			color = a.Value.String()
		default:
			if i, ok := seen[a.Key]; ok {
				rest[i] = a

				return
			}

			seen[a.Key] = len(rest)
			rest = append(rest, a)
		}
	}

	for _, a := range bound {
		consume(a)
	}

	r.Attrs(func(a slog.Attr) bool {
		consume(a)

		return true
	})

	return name, color, rest
}
