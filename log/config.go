package log

import (
	"io"
	"os"
)

// DefaultLoggerName is the logger name used when none is given.
const DefaultLoggerName = "LOGGING"

// DefaultLogDir is the directory used for the log file when none is given.
const DefaultLogDir = "logs"

// DefaultLogFileName is the name of the log file within the log directory.
const DefaultLogFileName = "logging.log"

// FileHandlerName identifies the file handler attached by [Configure] so it
// can be located later by [LogFile].
const FileHandlerName = "LOGGING_FILE_HANDLER"

// config holds the options consumed by [Configure].
type config struct {
	console   io.Writer
	logDir    string
	match     string
	verbosity int
	noColor   bool
	skipFile  bool
}

// makeConfig creates a new config with defaults applied, overridden by any
// provided options.
func makeConfig(opts ...Option) config {
	var c config

	return apply(apply(c, WithDefaults()), opts...)
}

// WithDefaults returns a functional option that sets the default
// configuration: console output on stdout, zero verbosity, color enabled,
// file output under [DefaultLogDir].
func WithDefaults() Option {
	return func(c config) config {
		c.console = os.Stdout
		c.logDir = DefaultLogDir
		c.match = ""
		c.verbosity = 0
		c.noColor = false
		c.skipFile = false

		return c
	}
}

// WithConsole returns a functional option that sets the console output
// writer. If a nil writer is provided, [io.Discard] is used instead.
func WithConsole(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = io.Discard
		}

		c.console = w

		return c
	}
}

// WithVerbosity returns a functional option that sets the verbosity count.
// The count maps to the console level via [Verbosity].
func WithVerbosity(count int) Option {
	return func(c config) config {
		c.verbosity = count

		return c
	}
}

// WithColorDisabled returns a functional option that controls whether ANSI
// color is suppressed on console output.
func WithColorDisabled(disable bool) Option {
	return func(c config) config {
		c.noColor = disable

		return c
	}
}

// WithSkipLogging returns a functional option that controls whether file
// output is discarded. When enabled, no log file is ever created.
func WithSkipLogging(skip bool) Option {
	return func(c config) config {
		c.skipFile = skip

		return c
	}
}

// WithLogDir returns a functional option that sets the directory holding the
// log file. The directory and any missing parents are created by [Configure].
func WithLogDir(dir string) Option {
	return func(c config) config {
		if dir == "" {
			dir = DefaultLogDir
		}

		c.logDir = dir

		return c
	}
}

// WithMatch returns a functional option that sets an expression console
// records must match. Records that do not match are dropped from the console;
// the file keeps everything. See [Configure] for the expression environment.
func WithMatch(src string) Option {
	return func(c config) config {
		c.match = src

		return c
	}
}
