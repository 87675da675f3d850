package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/uienv/pkg/errors"
	"github.com/go-drift/uienv/pkg/platform"
)

// runCapture runs the CLI with args and returns what it wrote to stdout.
func runCapture(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	platform.ResetForTest()
	t.Cleanup(func() {
		stdout = prev
		platform.ResetForTest()
		errors.SetHandler(nil)
	})
	err := run(args)
	return buf.String(), err
}

func TestTree(t *testing.T) {
	out, err := runCapture(t, "tree", "--dir", t.TempDir())
	if err != nil {
		t.Fatalf("tree: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "Window(main)" {
		t.Errorf("first line = %q, want Window(main)", lines[0])
	}
	for _, want := range []string{"Controller(tabs)", "Controller(compose)", "View(editor)", "View(avatar)"} {
		if !strings.Contains(out, want) {
			t.Errorf("tree output missing %s:\n%s", want, out)
		}
	}
}

func TestTree_UnknownNode(t *testing.T) {
	_, err := runCapture(t, "tree", "--dir", t.TempDir(), "nope")
	if err == nil || !strings.Contains(err.Error(), `no node named "nope"`) {
		t.Errorf("tree nope error = %v", err)
	}
}

func TestResolve_FromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := "app:\n  name: Sample\nenvironment:\n  locale: pl_PL\n  size_category: xxl\n"
	if err := os.WriteFile(filepath.Join(dir, "uienv.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCapture(t, "resolve", "--dir", dir, "title")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !strings.HasPrefix(out, "title in Sample\n") {
		t.Errorf("unexpected header:\n%s", out)
	}
	for _, want := range []string{"pl-PL", "Window(main)", "extra-extra-large", "default"} {
		if !strings.Contains(out, want) {
			t.Errorf("resolve output missing %q:\n%s", want, out)
		}
	}
}

func TestSimulate(t *testing.T) {
	out, err := runCapture(t, "simulate", "--dir", t.TempDir(), `{"interfaceStyle":"dark"}`, "prefer:editor=light")
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if !strings.Contains(out, "step 1: ") || !strings.Contains(out, "changed: interfaceStyle") {
		t.Errorf("missing settings step:\n%s", out)
	}
	for _, want := range []string{"main=1", "title=1", "editor=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("simulate output missing %q:\n%s", want, out)
		}
	}
	step2 := out[strings.Index(out, "step 2: "):]
	// compose is set first, then editor itself.
	if !strings.Contains(step2, "compose=1") || !strings.Contains(step2, "editor=2") || strings.Contains(step2, "title=") {
		t.Errorf("prefer should only reach the modal:\n%s", step2)
	}
}

func TestSimulate_BadStep(t *testing.T) {
	_, err := runCapture(t, "simulate", "--dir", t.TempDir(), "bogus")
	if err == nil || !strings.Contains(err.Error(), `step 1: unknown step "bogus"`) {
		t.Errorf("simulate bogus error = %v", err)
	}
}

func TestRun_UnknownLogLevel(t *testing.T) {
	if _, err := runCapture(t, "--log-level", "loud", "tree"); err == nil {
		t.Error("expected an error for an unknown log level")
	}
}

func TestVersion(t *testing.T) {
	out, err := runCapture(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, Version) {
		t.Errorf("version output = %q", out)
	}
}
