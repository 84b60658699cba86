package build_test

import (
	"testing"

	"github.com/rohmanhakim/linkscrub/internal/build"
)

func setVersion(t *testing.T, version, commit, buildTime string) {
	t.Helper()
	oldVersion, oldCommit, oldBuildTime := build.Version, build.Commit, build.BuildTime
	t.Cleanup(func() {
		build.Version, build.Commit, build.BuildTime = oldVersion, oldCommit, oldBuildTime
	})
	build.Version, build.Commit, build.BuildTime = version, commit, buildTime
}

func TestFullVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		want    string
	}{
		{"default values", "dev", "none", "dev+none"},
		{"version with commit", "1.0.0", "abc123", "1.0.0+abc123"},
		{"version with empty commit", "1.0.0", "", "1.0.0+"},
		{"semver prerelease", "2.1.0-beta", "89dece5", "2.1.0-beta+89dece5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setVersion(t, tt.version, tt.commit, "unknown")

			got := build.FullVersion()
			if got != tt.want {
				t.Errorf("FullVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	setVersion(t, "1.2.0", "abc123", "2026-01-02T03:04:05Z")

	want := "linkscrub 1.2.0+abc123 (built 2026-01-02T03:04:05Z)"
	if got := build.Summary("linkscrub"); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}
