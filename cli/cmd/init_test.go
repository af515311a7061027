package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okeefe/sublog/log"
)

func TestInit_Run_WritesLoadableSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sublog.yaml")

	settings := log.DefaultSettings()
	settings.Verbose = 2
	settings.DisableColor = true

	init := Init{Output: path}
	if err := init.Run(settings); err != nil {
		t.Fatalf("Run: %v", err)
	}

	loaded, err := log.LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}

	if loaded != settings {
		t.Errorf("loaded = %+v, want %+v", loaded, settings)
	}
}

func TestInit_Run_RefusesToOverwriteWithoutForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sublog.yaml")

	if err := os.WriteFile(path, []byte("name: KEEP\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	init := Init{Output: path}
	if err := init.Run(log.DefaultSettings()); err == nil {
		t.Fatal("Run overwrote an existing file without --force")
	}

	init.Force = true
	if err := init.Run(log.DefaultSettings()); err != nil {
		t.Fatalf("Run with --force: %v", err)
	}
}

func TestInit_Run_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "sublog.yaml")

	init := Init{Output: path}
	if err := init.Run(log.DefaultSettings()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("settings file missing: %v", err)
	}
}

func TestPath_Run_FailsWhenFileLoggingSkipped(t *testing.T) {
	reg := log.NewRegistry()

	settings := log.DefaultSettings()
	settings.Name = "PATHTEST"
	settings.LogDir = t.TempDir()
	settings.SkipLogging = true

	var path Path
	err := path.Run(reg, settings)

	if !errors.Is(err, log.ErrHandlerNotFound) {
		t.Errorf("err = %v, want ErrHandlerNotFound", err)
	}
}
