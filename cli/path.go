package cli

import (
	"os"
	"path/filepath"
	"sync"
)

// settingsFileName is the base name of the YAML settings file written by the
// init command.
const settingsFileName = "sublog.yaml"

// configDir returns the configuration directory path.
var configDir = sync.OnceValue(
	func() string {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir, err = os.UserHomeDir()
			if err == nil {
				dir = filepath.Join(dir, ".config")
			} else {
				dir, err = os.Getwd()
				if err != nil {
					dir = "."
				}
			}
		}

		return filepath.Join(dir, "sublog")
	},
)

// cacheDir returns the cache directory path used for transient files such
// as pprof output.
var cacheDir = sync.OnceValue(
	func() string {
		dir, err := os.UserCacheDir()
		if err != nil {
			dir, err = os.UserHomeDir()
			if err == nil {
				dir = filepath.Join(dir, ".cache")
			} else {
				dir, err = os.Getwd()
				if err != nil {
					dir = "."
				}
			}
		}

		return filepath.Join(dir, "sublog")
	},
)

// settingsPath returns the default absolute path of the settings file.
func settingsPath() string {
	return filepath.Join(configDir(), settingsFileName)
}
