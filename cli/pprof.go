//go:build pprof

package cli

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/okeefe/sublog/profile"
)

type pprofConfig struct {
	Mode string `default:""            enum:",${pprofModeEnum}" help:"Enable profiling"         placeholder:"${enum}" short:"p"`
	Dir  string `default:"${pprofDir}"                          help:"Profile output directory"                                 type:"path"`
}

func (pprofConfig) vars() kong.Vars {
	return kong.Vars{
		"pprofModeEnum": strings.Join(profile.Modes(), ","),
		"pprofDir":      filepath.Join(cacheDir(), profile.Tag),
	}
}

func (pprofConfig) group() kong.Group {
	var group kong.Group

	group.Key = "pprof"
	group.Title = "Profiling (pprof)"

	return group
}

// start starts profiling if configured.
func (f pprofConfig) start() (stop func()) {
	p := profile.Profiler{
		Mode: f.Mode,
		Path: f.Dir,
	}

	return p.Start().Stop
}
