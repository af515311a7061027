package cmd

import (
	"fmt"

	"github.com/okeefe/sublog/log"
)

// Path configures the named logger and prints the absolute path of its
// file handler's backing file.
type Path struct{}

// Run executes the path command.
func (p *Path) Run(reg *log.Registry, settings log.Settings) error {
	if _, err := log.Configure(reg, settings.Name, settings.Options()...); err != nil {
		return err
	}

	path, err := log.LogFile(reg, settings.Name)
	if err != nil {
		return err
	}

	fmt.Println(path)

	return nil
}
