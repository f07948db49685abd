package version

import (
	"runtime/debug"
	"testing"
)

func stubBuildInfo(t *testing.T, info *debug.BuildInfo, ok bool) {
	t.Helper()
	prev := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, ok }
	t.Cleanup(func() { readBuildInfo = prev })
}

func TestGetVersion(t *testing.T) {
	tests := []struct {
		name     string
		release  string
		info     *debug.BuildInfo
		ok       bool
		expected string
	}{
		{name: "release wins", release: "v1.2.0", ok: false, expected: "v1.2.0"},
		{name: "no build info", ok: false, expected: "dev"},
		{name: "no revision", info: &debug.BuildInfo{}, ok: true, expected: "dev"},
		{
			name: "clean revision",
			info: &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.modified", Value: "false"},
			}},
			ok:       true,
			expected: "0123456",
		},
		{
			name: "dirty revision",
			info: &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
				{Key: "vcs.modified", Value: "true"},
			}},
			ok:       true,
			expected: "abc (dirty)",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			stubBuildInfo(t, tc.info, tc.ok)
			prev := Version
			Version = tc.release
			t.Cleanup(func() { Version = prev })

			if got := GetVersion(); got != tc.expected {
				t.Fatalf("version: got %q want %q", got, tc.expected)
			}
		})
	}
}
