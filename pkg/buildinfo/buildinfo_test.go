package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	Version, Commit, Date = "v1.2.3", "abc123", "2024-01-01"
	t.Cleanup(func() { Version, Commit, Date = "dev", "none", "unknown" })

	got := Template()
	for _, want := range []string{"{{.Name}} version v1.2.3", "commit: abc123", "built: 2024-01-01"} {
		if !strings.Contains(got, want) {
			t.Errorf("Template() = %q, missing %q", got, want)
		}
	}
	if s := String(); !strings.HasPrefix(s, "version: v1.2.3\n") {
		t.Errorf("String() = %q", s)
	}
}
