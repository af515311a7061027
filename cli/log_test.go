package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/okeefe/sublog/log"
)

func TestLogConfig_Settings_DefaultsWithoutFile(t *testing.T) {
	cfg := logConfig{
		LogDir: log.DefaultLogDir,
		Name:   log.DefaultLoggerName,
	}

	settings, err := cfg.settings()
	if err != nil {
		t.Fatalf("settings: %v", err)
	}

	if settings != log.DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", settings)
	}
}

func TestLogConfig_Settings_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sublog.yaml")

	file := []byte("verbose: 1\nname: filelogger\nlog_path: /var/log/file\n")
	if err := os.WriteFile(path, file, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := logConfig{
		Verbose: 2,
		LogDir:  log.DefaultLogDir,
		Name:    "flaglogger",
		Config:  path,
	}

	settings, err := cfg.settings()
	if err != nil {
		t.Fatalf("settings: %v", err)
	}

	if settings.Verbose != 2 {
		t.Errorf("Verbose = %d, want flag value 2", settings.Verbose)
	}

	if settings.Name != "flaglogger" {
		t.Errorf("Name = %q, want flag value", settings.Name)
	}

	// LogDir was left at its flag default, so the file value wins.
	if settings.LogDir != "/var/log/file" {
		t.Errorf("LogDir = %q, want file value", settings.LogDir)
	}
}

func TestLogConfig_Settings_MissingFileFails(t *testing.T) {
	cfg := logConfig{
		LogDir: log.DefaultLogDir,
		Name:   log.DefaultLoggerName,
		Config: filepath.Join(t.TempDir(), "absent.yaml"),
	}

	if _, err := cfg.settings(); err == nil {
		t.Fatal("settings succeeded with a missing config file")
	}
}
