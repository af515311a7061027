package cmd

import (
	"log/slog"

	"github.com/okeefe/sublog/log"
)

// Emit configures the named logger and logs each message argument through an
// adapter, exercising the console and file handlers end to end.
type Emit struct {
	Level string `default:"info" enum:"debug,info,warning,error,critical" help:"Record severity." short:"l"`
	Color string `help:"Wrap the whole console message in this color."    optional:""`

	Messages []string `arg:"" help:"Message text to log." name:"message"`
}

// Run executes the emit command.
func (e *Emit) Run(reg *log.Registry, settings log.Settings) error {
	adapter, err := log.NewLogger(reg, settings.Name, settings.Options()...)
	if err != nil {
		return err
	}

	level := log.ParseLevel(e.Level)

	var attrs []slog.Attr
	if e.Color != "" {
		attrs = append(attrs, slog.String(log.ColorKey, e.Color))
	}

	for _, msg := range e.Messages {
		adapter.Log(level, msg, attrs...)
	}

	return nil
}
