// Package log is a thin convenience layer over [log/slog] for colored
// console output, plain-text file output, and per-record subsystem
// attributes.
//
// # Basic Usage
//
//	reg := log.NewRegistry()
//	worker, err := log.NewLogger(reg, "worker", log.WithVerbosity(1))
//	if err != nil {
//		return err
//	}
//	worker.Info("started")                 // INFO     WORKER: started
//	worker.Error("bad input", slog.String("color", "red"))
//
// [Configure] attaches two handlers to the named logger: a console handler
// whose threshold follows the -v count (0 → WARNING, 1 → INFO, 2+ → DEBUG)
// and a file handler pinned to DEBUG that writes timestamped lines to
// <log dir>/logging.log. The logger's own threshold is always DEBUG, so
// every handler sees the full record stream and applies its own cutoff.
//
// # Attributes
//
// Two attribute keys are reserved. "name" prefixes the rendered message
// with "NAME: " and "color" wraps the whole console message in the named
// color. An [Adapter] carries a fixed "name" default; a call-time attribute
// with the same key overrides it for that record only:
//
//	worker.Warning("queue full", slog.String("name", "INGEST"))
//
// Unknown color names degrade to a no-op wrapper; they never fail.
//
// # Querying the log file
//
//	path, err := log.LogFile(reg, "worker")
//
// fails with [ErrHandlerNotFound] when file logging was skipped.
package log
