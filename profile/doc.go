// Package profile provides optional runtime profiling for the sublog
// command.
//
// It integrates [github.com/pkg/profile] behind the "pprof" build tag. When
// built without the tag (the default), all operations are no-ops with zero
// runtime overhead.
//
// Supported modes when built with the tag: allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread, and trace. Use [Modes] to retrieve
// the list programmatically.
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/profiles"}
//	ctrl := p.Start()
//	defer ctrl.Stop()
//
// Profile files are written to the configured directory with names matching
// the mode (e.g. cpu.pprof) and can be analyzed with `go tool pprof`.
package profile
