package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/okeefe/sublog/cli/cmd/tail"
	"github.com/okeefe/sublog/log"
)

// Tail opens an interactive viewer over the log file with fuzzy filtering.
type Tail struct {
	Follow bool   `help:"Reload the file as it grows." short:"f"`
	Filter string `help:"Initial filter text."`
}

// Run executes the tail command.
func (t *Tail) Run(ctx context.Context, settings log.Settings) error {
	if settings.SkipLogging {
		return fmt.Errorf("file logging is disabled: %w", log.ErrHandlerNotFound)
	}

	path, err := filepath.Abs(
		filepath.Join(settings.LogDir, log.DefaultLogFileName),
	)
	if err != nil {
		return fmt.Errorf("resolve log file path: %w", err)
	}

	return tail.Run(ctx, path, t.Filter, t.Follow)
}
