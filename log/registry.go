package log

import (
	"strings"
	"sync"
)

// Registry resolves loggers by name. Names are normalized to upper case, and
// a logger is created on first access and lives for the registry's lifetime.
//
// Components that resolve loggers take a Registry as an explicit dependency;
// [Default] provides a process-wide instance for callers that do not need
// isolation.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger
}

// NewRegistry creates an empty logger registry.
func NewRegistry() *Registry {
	return &Registry{loggers: map[string]*Logger{}}
}

// Get returns the logger registered under name, creating it on first access.
func (r *Registry) Get(name string) *Logger {
	name = normalize(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.loggers[name]
	if !ok {
		l = newLogger(name)
		r.loggers[name] = l
	}

	return l
}

// Lookup returns the logger registered under name without creating one.
func (r *Registry) Lookup(name string) (*Logger, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.loggers[normalize(name)]

	return l, ok
}

// Names returns the names of all registered loggers.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}

	return names
}

func normalize(name string) string {
	if name == "" {
		name = DefaultLoggerName
	}

	return strings.ToUpper(name)
}

// Default returns the process-wide default registry.
var Default = sync.OnceValue(NewRegistry)
