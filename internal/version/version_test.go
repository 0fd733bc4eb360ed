package version

import (
	"strings"
	"testing"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestVersion_CanBeOverridden(t *testing.T) {
	origVersion, origGitCommit, origBuildDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origGitCommit, origBuildDate }()

	// как при сборке с -ldflags
	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"

	if Version != "1.2.3" || GitCommit != "abc123def456" || BuildDate != "2024-01-15T10:30:00Z" {
		t.Errorf("overrides lost: %q %q %q", Version, GitCommit, BuildDate)
	}
}

func TestColored(t *testing.T) {
	tests := []struct {
		in      string
		enabled bool
		plain   bool
	}{
		{"0.1.0-dev", false, true},
		{"dev", true, true},
		{"1.2", true, true},
		{"1.2.3-rc.1+build.123", true, false},
	}
	for _, tt := range tests {
		got := Colored(tt.in, tt.enabled)
		if tt.plain && got != tt.in {
			t.Errorf("Colored(%q, %v) = %q, want unchanged", tt.in, tt.enabled, got)
		}
		if !tt.plain {
			if !strings.Contains(got, "\x1b[") {
				t.Errorf("Colored(%q) has no escapes: %q", tt.in, got)
			}
			if !strings.HasSuffix(got, "-rc.1+build.123") {
				t.Errorf("Colored(%q) lost the suffix: %q", tt.in, got)
			}
		}
	}
}
