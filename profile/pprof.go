//go:build pprof

package profile

import (
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"
)

// Modes returns the list of supported profiling modes when built with the
// pprof build tag.
var Modes = sync.OnceValue(
	func() []string {
		return slices.Sorted(maps.Keys(mode))
	},
)

var mode = map[string]func(*profile.Profile){
	"block":     profile.BlockProfile,
	"cpu":       profile.CPUProfile,
	"clock":     profile.ClockProfile,
	"goroutine": profile.GoroutineProfile,
	"mem":       profile.MemProfile,
	"allocs":    profile.MemProfileAllocs,
	"heap":      profile.MemProfileHeap,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

func start(p Profiler) interface{ Stop() } {
	fn, ok := mode[p.Mode]
	if !ok {
		return ignore{}
	}

	opts := []func(*profile.Profile){fn}

	if p.Path != "" {
		opts = append(opts, profile.ProfilePath(p.Path))
	}

	if p.Quiet {
		opts = append(opts, profile.Quiet)
	}

	return profile.Start(opts...)
}
