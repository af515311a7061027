package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okeefe/sublog/log"
)

func testSettings(t *testing.T) log.Settings {
	t.Helper()

	settings := log.DefaultSettings()
	settings.Name = "EMITTEST"
	settings.LogDir = t.TempDir()

	return settings
}

func TestEmit_Run_WritesMessagesToLogFile(t *testing.T) {
	reg := log.NewRegistry()
	settings := testSettings(t)

	emit := Emit{
		Level:    "error",
		Messages: []string{"first failure", "second failure"},
	}

	if err := emit.Run(reg, settings); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(
		filepath.Join(settings.LogDir, log.DefaultLogFileName),
	)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	for _, want := range []string{
		"ERROR EMITTEST: first failure",
		"ERROR EMITTEST: second failure",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log file missing %q:\n%s", want, data)
		}
	}
}

func TestEmit_Run_SkipLoggingCreatesNoFile(t *testing.T) {
	reg := log.NewRegistry()

	settings := testSettings(t)
	settings.SkipLogging = true

	emit := Emit{
		Level:    "warning",
		Messages: []string{"nothing on disk"},
	}

	if err := emit.Run(reg, settings); err != nil {
		t.Fatalf("Run: %v", err)
	}

	entries, err := os.ReadDir(settings.LogDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}

	if len(entries) != 0 {
		t.Errorf("log directory not empty: %v", entries)
	}
}
