package cli

import (
	"github.com/alecthomas/kong"

	"github.com/okeefe/sublog/log"
)

// logConfig is the flag group that feeds [log.Configure]. An optional YAML
// settings file provides the base values; flags set explicitly on the
// command line override it.
type logConfig struct {
	Verbose     int    `help:"Increase console verbosity (repeatable)."      short:"v"            type:"counter"`
	NoColor     bool   `help:"Disable ANSI color on console output."`
	SkipLogging bool   `help:"Discard file output (no log file is created)."`
	LogDir      string `help:"Directory that receives the log file."         default:"logs"`
	Name        string `help:"Logger name."                                  default:"LOGGING"`
	Match       string `help:"Expression console records must match."        placeholder:"EXPR"`
	Config      string `help:"YAML settings file."                           type:"existingfile"  optional:""`
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

// settings merges the optional settings file with the parsed flags.
// Flags left at their defaults defer to the file.
func (f *logConfig) settings() (log.Settings, error) {
	settings := log.DefaultSettings()

	if f.Config != "" {
		loaded, err := log.LoadSettings(f.Config)
		if err != nil {
			return settings, err
		}

		settings = loaded
	}

	if f.Verbose > 0 {
		settings.Verbose = f.Verbose
	}

	if f.NoColor {
		settings.DisableColor = true
	}

	if f.SkipLogging {
		settings.SkipLogging = true
	}

	if f.LogDir != log.DefaultLogDir {
		settings.LogDir = f.LogDir
	}

	if f.Name != log.DefaultLoggerName {
		settings.Name = f.Name
	}

	if f.Match != "" {
		settings.Match = f.Match
	}

	return settings, nil
}
