package version

import "testing"

func TestBuildString(t *testing.T) {
	tests := []struct {
		b    Build
		want string
	}{
		{Build{Version: "dev", GitCommit: "unknown"}, "dev"},
		{Build{Version: "1.2.0", GitCommit: ""}, "1.2.0"},
		{Build{Version: "1.2.0", GitCommit: "abc1234"}, "1.2.0 (abc1234)"},
	}
	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.b, got, tt.want)
		}
	}
}

func TestCurrent(t *testing.T) {
	b := Current()
	if b.Version != Version || b.GoVersion == "" {
		t.Errorf("Current() = %+v", b)
	}
}
