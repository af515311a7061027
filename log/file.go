package log

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// fileTimeLayout is the timestamp layout used for log file lines.
const fileTimeLayout = "2006-01-02 15:04:05"

// fileSink is the shared backing file of a fileHandler and its WithAttrs
// clones. The file is opened lazily on the first write and held open for
// the process lifetime.
type fileSink struct {
	mu   sync.Mutex
	f    *os.File
	path string
}

// write appends one formatted line, opening the file on first use.
func (s *fileSink) write(line []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.f == nil {
		f, err := os.OpenFile(
			s.path,
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			0o644,
		)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}

		s.f = f
	}

	_, err := s.f.Write(line)

	return err
}

func (s *fileSink) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.f == nil {
		return nil
	}

	err := s.f.Close()
	s.f = nil

	return err
}

// fileHandler writes plain-text lines to a log file:
//
//	2006-01-02 15:04:05 LEVEL NAME: message key=value ...
//
// The handler threshold is pinned to DEBUG so the file captures everything
// regardless of console verbosity.
type fileHandler struct {
	sink  *fileSink
	name  string
	attrs []slog.Attr
}

// newFileHandler creates a handler backed by the file at path.
// The path is resolved to an absolute path; the file itself is not touched
// until the first record arrives.
func newFileHandler(path string) (*fileHandler, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve log file path: %w", err)
	}

	return &fileHandler{
		sink: &fileSink{path: abs},
		name: FileHandlerName,
	}, nil
}

// Name returns the handler's fixed identifying name.
func (h *fileHandler) Name() string { return h.name }

// Path returns the absolute path of the backing file.
func (h *fileHandler) Path() string { return h.sink.path }

// Close closes the backing file if it was ever opened.
func (h *fileHandler) Close() error { return h.sink.close() }

func (h *fileHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.Level(LevelDebug)
}

func (h *fileHandler) Handle(_ context.Context, r slog.Record) error {
	name, _, rest := splitAttrs(h.attrs, r)

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	buf := new(bytes.Buffer)
	buf.WriteString(ts.Format(fileTimeLayout))
	buf.WriteByte(' ')
	buf.WriteString(Level(r.Level).String())
	buf.WriteByte(' ')

	if name != "" {
		buf.WriteString(name)
		buf.WriteString(": ")
	}

	buf.WriteString(r.Message)

	for _, a := range rest {
		fmt.Fprintf(buf, " %s=%v", a.Key, a.Value)
	}

	buf.WriteByte('\n')

	return h.sink.write(buf.Bytes())
}

func (h *fileHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &fileHandler{
		sink:  h.sink,
		name:  h.name,
		attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
	}
}

func (h *fileHandler) WithGroup(string) slog.Handler { return h }

// discardHandler stands in for the file handler when file logging is
// skipped. It reports every level as disabled, so no file is ever created
// and no record is retained.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool { return false }

func (discardHandler) Handle(context.Context, slog.Record) error { return nil }

func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler { return d }

func (d discardHandler) WithGroup(string) slog.Handler { return d }
