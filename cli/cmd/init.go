package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/okeefe/sublog/log"
)

// Init writes a YAML settings file seeded with the current flag values.
type Init struct {
	Force  bool   `help:"Overwrite an existing settings file."  short:"f"`
	Output string `help:"Settings file to write."               default:"${settings_file}" type:"path"`
}

// Run executes the init command.
func (i *Init) Run(settings log.Settings) error {
	if _, err := os.Stat(i.Output); err == nil && !i.Force {
		return fmt.Errorf(
			"settings file %s exists (use --force to overwrite)", i.Output,
		)
	}

	if err := os.MkdirAll(filepath.Dir(i.Output), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	data, err := settings.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(i.Output, data, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	fmt.Println(i.Output)

	return nil
}
