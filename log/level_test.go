package log

import (
	"log/slog"
	"slices"
	"testing"
)

func TestLevel_String_CanonicalNames(t *testing.T) {
	tests := []struct {
		want  string
		level Level
	}{
		{"DEBUG", LevelDebug},
		{"INFO", LevelInfo},
		{"WARNING", LevelWarning},
		{"ERROR", LevelError},
		{"CRITICAL", LevelCritical},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLevel_String_UnnamedFallsBackToSlog(t *testing.T) {
	level := Level(slog.LevelInfo + 2)

	if got := level.String(); got != "INFO+2" {
		t.Errorf("String() = %q, want INFO+2", got)
	}
}

func TestLevel_Ordering(t *testing.T) {
	ordered := []Level{
		LevelDebug,
		LevelInfo,
		LevelWarning,
		LevelError,
		LevelCritical,
	}

	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("%v not below %v", ordered[i-1], ordered[i])
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"Warning", LevelWarning},
		{"warn", LevelWarning},
		{"error", LevelError},
		{"critical", LevelCritical},
		{"crit", LevelCritical},
		{" info ", LevelInfo},
		{"INFO+2", Level(slog.LevelInfo + 2)},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestVerbosity_ClampsToScale(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  Level
	}{
		{"zero", 0, LevelWarning},
		{"one", 1, LevelInfo},
		{"two", 2, LevelDebug},
		{"beyond scale", 99, LevelDebug},
		{"negative", -3, LevelWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Verbosity(tt.count); got != tt.want {
				t.Errorf("Verbosity(%d) = %v, want %v", tt.count, got, tt.want)
			}
		})
	}
}

func TestLevels_OrderedLeastToMostSevere(t *testing.T) {
	var names []string
	for name := range Levels() {
		names = append(names, name)
	}

	want := []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}
	if !slices.Equal(names, want) {
		t.Errorf("Levels() = %v, want %v", names, want)
	}
}
