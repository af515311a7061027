package log

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Settings mirrors the [Configure] options for file-based configuration.
type Settings struct {
	Name         string `yaml:"name"`
	LogDir       string `yaml:"log_path"`
	Match        string `yaml:"match,omitempty"`
	Verbose      int    `yaml:"verbose"`
	DisableColor bool   `yaml:"disable_color"`
	SkipLogging  bool   `yaml:"skip_logging"`
}

// DefaultSettings returns the settings that correspond to calling
// [Configure] with no options.
func DefaultSettings() Settings {
	return Settings{
		Name:   DefaultLoggerName,
		LogDir: DefaultLogDir,
	}
}

// LoadSettings reads settings from a YAML file. Keys absent from the file
// keep their defaults.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("parse settings file: %w", err)
	}

	return settings, nil
}

// Marshal renders the settings as YAML.
func (s Settings) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal settings: %w", err)
	}

	return data, nil
}

// Options converts the settings to the equivalent [Configure] options.
// The logger name is not an option; pass [Settings.Name] to [Configure]
// directly.
func (s Settings) Options() []Option {
	return []Option{
		WithVerbosity(s.Verbose),
		WithColorDisabled(s.DisableColor),
		WithSkipLogging(s.SkipLogging),
		WithLogDir(s.LogDir),
		WithMatch(s.Match),
	}
}
