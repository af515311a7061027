package log

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// defaultDirMode is the permission mode for created log directories.
var defaultDirMode os.FileMode = 0o755

// Configure resolves the named logger from the registry, ensures the log
// directory exists, and attaches one console handler and one file handler:
//
//   - The console handler writes to the configured writer (stdout by
//     default) at the level computed from the verbosity count, colorized
//     unless color is disabled.
//   - The file handler writes timestamped plain-text lines to
//     <log dir>/logging.log at DEBUG level regardless of console verbosity.
//     When file logging is skipped, a discard handler takes its place and no
//     file is ever created.
//
// One record announcing the resolved console level is emitted.
//
// Configure is not idempotent: calling it twice for the same name attaches a
// second pair of handlers. Call it at most once per logger name.
func Configure(reg *Registry, name string, opts ...Option) (*Logger, error) {
	cfg := makeConfig(opts...)
	logger := reg.Get(name)

	if err := os.MkdirAll(cfg.logDir, defaultDirMode); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	var match *matcher

	if cfg.match != "" {
		m, err := compileMatch(cfg.match)
		if err != nil {
			return nil, err
		}

		match = m
	}

	level := Verbosity(cfg.verbosity)
	logger.AddHandler(newConsoleHandler(cfg.console, level, cfg.noColor, match))

	if cfg.skipFile {
		logger.AddHandler(discardHandler{})
	} else {
		fh, err := newFileHandler(
			filepath.Join(cfg.logDir, DefaultLogFileName),
		)
		if err != nil {
			return nil, err
		}

		logger.AddHandler(fh)
	}

	logger.Info("verbosity level resolved",
		slog.String("logger", logger.Name()),
		slog.String("level", level.String()),
	)

	return logger, nil
}

// NewLogger is the one-shot convenience entry point: it configures the named
// logger and returns an [Adapter] carrying the upper-cased name as its
// subsystem attribute.
func NewLogger(reg *Registry, name string, opts ...Option) (*Adapter, error) {
	logger, err := Configure(reg, name, opts...)
	if err != nil {
		return nil, err
	}

	adapter := NewAdapter(logger, strings.ToUpper(name))
	adapter.Debug("logger configured")

	return adapter, nil
}

// LogFile returns the absolute path of the file backing the named logger's
// file handler.
//
// It fails with [ErrLoggerNotFound] when no logger is registered under the
// name, and with [ErrHandlerNotFound] when the logger has no file handler
// (never configured, or configured with file logging skipped).
func LogFile(reg *Registry, loggerName string) (string, error) {
	logger, ok := reg.Lookup(loggerName)
	if !ok {
		return "", fmt.Errorf("%q: %w", loggerName, ErrLoggerNotFound)
	}

	for _, h := range logger.Handlers() {
		fh, ok := h.(*fileHandler)
		if ok && fh.Name() == FileHandlerName {
			return fh.Path(), nil
		}
	}

	return "", fmt.Errorf("%s on %q: %w",
		FileHandlerName, logger.Name(), ErrHandlerNotFound)
}
