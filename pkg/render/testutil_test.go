package render

import (
	"strings"
	"testing"
)

// attrValue returns the value of the first attr="..." occurrence in s.
func attrValue(t *testing.T, s, attr string) string {
	t.Helper()

	needle := " " + attr + `="`
	idx := strings.Index(s, needle)
	if idx == -1 {
		t.Fatalf("expected %s attribute in %q", attr, s)
	}
	start := idx + len(needle)
	end := strings.IndexByte(s[start:], '"')
	if end == -1 {
		t.Fatalf("unterminated attribute %q in %q", attr, s)
	}
	return s[start : start+end]
}

