package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

// Profiler holds the profiling parameters. Mode selects one of the modes
// listed by [Modes]; Path is the output directory for profile files.
type Profiler struct {
	Mode  string
	Path  string
	Quiet bool
}

// Start initializes the profiler and returns an interface for stopping it.
//
// If the binary was built without the pprof tag, or Mode is unset, Start
// returns a no-op implementation. Both Start and Stop are always safely
// callable.
func (p Profiler) Start() interface{ Stop() } {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

// ignore is the no-op controller used when profiling is unavailable.
type ignore struct{}

func (ignore) Stop() {}
