// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/leapstack-labs/lsa/internal/cli/output"
)

// envKeys are the LSA_* variables the config loader reads.
var envKeys = []string{"LSA_SORT", "LSA_COLOR", "LSA_LS_COMMAND", "LSA_LS_ARGS", "LSA_INPUT", "LSA_VERBOSE"}

// IsolateEnv unsets every LSA_* variable and points the user config
// directory at an empty temp dir for the duration of the test. It returns
// a scratch directory for the test's own files.
func IsolateEnv(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	for _, key := range envKeys {
		// Setenv registers the restore; the unset makes the key absent.
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
	}
	return dir
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
// Output is captured in buffers for inspection.
func NewTestRenderer(mode output.Mode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// NewTestRendererPlain creates a test renderer that writes no escapes.
func NewTestRendererPlain() *TestRenderer {
	return NewTestRenderer(output.ModeNever, true)
}

// NewTestRendererColor creates a test renderer that always writes escapes.
func NewTestRendererColor() *TestRenderer {
	return NewTestRenderer(output.ModeAlways, false)
}

// Output returns the stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// Reset clears both output buffers.
func (tr *TestRenderer) Reset() {
	tr.Out.Reset()
	tr.ErrOut.Reset()
}

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansi.Strip(s) != s {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// BodyNames returns the name column of each body row of a plain report,
// skipping the header, both rules and the footer.
func BodyNames(t *testing.T, report string) []string {
	t.Helper()

	lines := strings.Split(strings.TrimSuffix(ansi.Strip(report), "\n"), "\n")
	if len(lines) < 5 {
		t.Fatalf("report too short:\n%s", report)
	}

	var names []string
	for _, line := range lines[2 : len(lines)-2] {
		if len(line) < 60 {
			t.Fatalf("row narrower than the name column: %q", line)
		}
		names = append(names, strings.TrimRight(line[:60], " "))
	}
	return names
}

// GetTestdataDir returns the path to the testdata directory.
func GetTestdataDir(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	// Try different relative paths based on where tests are run from
	candidates := []string{
		filepath.Join(wd, "testdata"),
		filepath.Join(wd, "..", "testdata"),
		filepath.Join(wd, "..", "..", "testdata"),
		filepath.Join(wd, "..", "..", "..", "testdata"),
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}

	t.Fatalf("testdata directory not found from %s", wd)
	return ""
}

// ListingFixture returns the path of the captured sample listing.
func ListingFixture(t *testing.T) string {
	t.Helper()
	return filepath.Join(GetTestdataDir(t), "listing.txt")
}
