package main

import (
	"strings"
	"testing"
)

func TestEvaluateExpression(t *testing.T) {
	m := newREPLModel()
	output, isErr := m.evaluate("1 + 2")
	if isErr {
		t.Fatalf("unexpected error: %s", output)
	}
	if output != "3" {
		t.Fatalf("got %q", output)
	}
}

func TestEvaluateAppendsSemicolon(t *testing.T) {
	m := newREPLModel()
	if output, isErr := m.evaluate("let a = 40"); isErr {
		t.Fatalf("unexpected error: %s", output)
	}
	output, isErr := m.evaluate("a + 2")
	if isErr || output != "42" {
		t.Fatalf("got %q isErr=%v", output, isErr)
	}
}

func TestEvaluateCapturesPrintOutput(t *testing.T) {
	m := newREPLModel()
	output, isErr := m.evaluate(`print "hi"`)
	if isErr {
		t.Fatalf("unexpected error: %s", output)
	}
	if output != "hi" {
		t.Fatalf("got %q", output)
	}
}

func TestEvaluateStatePersistsAcrossInputs(t *testing.T) {
	m := newREPLModel()
	m.evaluate(`class Greeter { hello() { return "yo"; } }`)
	m.evaluate("let g = Greeter()")
	output, isErr := m.evaluate("g.hello()")
	if isErr || output != "yo" {
		t.Fatalf("got %q isErr=%v", output, isErr)
	}
}

func TestEvaluateReportsErrors(t *testing.T) {
	m := newREPLModel()
	output, isErr := m.evaluate("missing")
	if !isErr {
		t.Fatal("expected an error")
	}
	if !strings.Contains(output, "UndefinedVariable") {
		t.Fatalf("got %q", output)
	}
}

func TestCommandUIWithoutWidgets(t *testing.T) {
	m := newREPLModel()
	m, _ = m.handleCommand(":ui")
	if len(m.history) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(m.history))
	}
	if m.history[0].output != "No widgets created yet" {
		t.Fatalf("got %q", m.history[0].output)
	}
}

func TestCommandMarkupAfterScene(t *testing.T) {
	m := newREPLModel()
	if output, isErr := m.evaluate(`ui w = createWindow("Home")`); isErr {
		t.Fatalf("scene failed: %s", output)
	}
	m, _ = m.handleCommand(":markup")
	if len(m.history) != 1 || !strings.Contains(m.history[0].output, "<aceml>") {
		t.Fatalf("expected markup entry, got %+v", m.history)
	}
}

func TestCommandUnknown(t *testing.T) {
	m := newREPLModel()
	m, _ = m.handleCommand(":nope")
	if len(m.history) != 1 || !m.history[0].isErr {
		t.Fatalf("expected error entry, got %+v", m.history)
	}
}
