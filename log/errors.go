package log

import "errors"

// ErrLoggerNotFound is returned by [LogFile] when no logger is registered
// under the requested name.
var ErrLoggerNotFound = errors.New("logger not found")

// ErrHandlerNotFound is returned by [LogFile] when the logger has no file
// handler attached, either because [Configure] was never called or because
// file logging was skipped.
var ErrHandlerNotFound = errors.New("file handler not found")
