package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lam")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunScriptFile(t *testing.T) {
	path := writeScript(t, `let a = 10; let b = 20; print a + b;`)
	var stdout, stderr bytes.Buffer
	if code := run([]string{path}, &stdout, &stderr); code != exitOK {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	if stdout.String() != "30\n" {
		t.Fatalf("got %q", stdout.String())
	}
}

func TestRunEmitsMarkupForWidgets(t *testing.T) {
	path := writeScript(t, `
ui w = createWindow("Home");
w.add(createButton("OK"));
print "built";`)
	var stdout, stderr bytes.Buffer
	if code := run([]string{path}, &stdout, &stderr); code != exitOK {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	out := stdout.String()
	if !strings.HasPrefix(out, "built\n") {
		t.Fatalf("script output must precede markup, got %q", out)
	}
	if !strings.Contains(out, "<aceml>") || !strings.Contains(out, `<window title="Home">`) {
		t.Fatalf("missing markup: %q", out)
	}
}

func TestRunDefaultScene(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != exitOK {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "<aceml>") {
		t.Fatalf("default scene must emit markup, got %q", out)
	}
}

func TestRunUsageError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"a.lam", "b.lam"}, &stdout, &stderr); code != exitUsage {
		t.Fatalf("expected exit %d, got %d", exitUsage, code)
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Fatalf("expected usage text, got %q", stderr.String())
	}
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "nope.lam")
	if code := run([]string{missing}, &stdout, &stderr); code != exitIO {
		t.Fatalf("expected exit %d, got %d", exitIO, code)
	}
}

func TestRunCompileError(t *testing.T) {
	path := writeScript(t, `let s = "abc`)
	var stdout, stderr bytes.Buffer
	if code := run([]string{path}, &stdout, &stderr); code != exitCompile {
		t.Fatalf("expected exit %d, got %d", exitCompile, code)
	}
	if !strings.Contains(stderr.String(), "Unterminated string.") {
		t.Fatalf("expected diagnostic on stderr, got %q", stderr.String())
	}
	if stdout.String() != "" {
		t.Fatalf("nothing may run on compile failure, got %q", stdout.String())
	}
}

func TestRunRuntimeError(t *testing.T) {
	path := writeScript(t, `print 1; print missing;`)
	var stdout, stderr bytes.Buffer
	if code := run([]string{path}, &stdout, &stderr); code != exitRuntime {
		t.Fatalf("expected exit %d, got %d", exitRuntime, code)
	}
	if stdout.String() != "1\n" {
		t.Fatalf("output before the fault must stand, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "UndefinedVariable") {
		t.Fatalf("expected runtime error on stderr, got %q", stderr.String())
	}
}
