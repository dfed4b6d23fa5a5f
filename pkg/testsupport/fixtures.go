// Package testsupport provides fixture helpers shared by contract tests.
// Helpers fail the owning test on error to keep call sites concise.
package testsupport

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgsample "github.com/goliatone/go-modelgen/pkg/sample"
)

// MustParseDocument builds a sample Document from inline JSON.
func MustParseDocument(t *testing.T, raw string) pkgsample.Document {
	t.Helper()

	doc, err := pkgsample.ParseDocument(pkgsample.SourceFromBytes("fixture"), []byte(raw))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return doc
}

// LoadDocument reads a fixture file and parses it into a sample Document.
func LoadDocument(t *testing.T, path string) pkgsample.Document {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	doc, err := pkgsample.ParseDocument(pkgsample.SourceFromFile(path), data)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

// CompareGolden diffs two values, returning an empty string when they match.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// RequireContainsInOrder asserts that every part appears in the output, each
// one after the previous match. Renderer tests rely on this to pin field
// order without coupling to template whitespace.
func RequireContainsInOrder(t *testing.T, output string, parts ...string) {
	t.Helper()

	rest := output
	offset := 0
	for _, part := range parts {
		idx := strings.Index(rest, part)
		if idx < 0 {
			t.Fatalf("missing %q after byte %d in output:\n%s", part, offset, output)
		}
		rest = rest[idx+len(part):]
		offset += idx + len(part)
	}
}

// RequireCount asserts that a substring appears exactly n times.
func RequireCount(t *testing.T, output, part string, n int) {
	t.Helper()

	if got := strings.Count(output, part); got != n {
		t.Fatalf("expected %d occurrences of %q, got %d in output:\n%s", n, part, got, output)
	}
}
