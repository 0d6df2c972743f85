package version

import "testing"

func TestString(t *testing.T) {
	origCommit, origBuild := Commit, BuildTime
	defer func() { Commit, BuildTime = origCommit, origBuild }()

	tests := []struct {
		name      string
		commit    string
		buildTime string
		want      string
	}{
		{"long commit is shortened", "0123456789abcdef", "unknown", "expedicoes dev (commit: 0123456, built: unknown)"},
		{"short commit kept", "abc12", "2024-06-15T10:00:00Z", "expedicoes dev (commit: abc12, built: 2024-06-15T10:00:00Z)"},
		{"defaults", "unknown", "unknown", "expedicoes dev (commit: unknown, built: unknown)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Commit, BuildTime = tt.commit, tt.buildTime
			if got := String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
