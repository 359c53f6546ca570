package solvee

import (
	"strings"
	"testing"
)

func TestEvalDocument(t *testing.T) {
	results := EvalDocument("10 + 5 == x\nx * 2")
	expected := []string{"15", "30"}
	if len(results) != len(expected) {
		t.Fatalf("got %d results, expected %d", len(results), len(expected))
	}
	for i := range expected {
		if results[i] != expected[i] {
			t.Errorf("result %d = %q, expected %q", i, results[i], expected[i])
		}
	}
}

func TestSessionReuse(t *testing.T) {
	s := NewSession()
	first := s.EvalDocument("10 == x\nx")
	second := s.EvalDocument("x")

	if first[1] != "10" {
		t.Errorf("first document x = %q, expected 10", first[1])
	}
	// Scopes are per-document: x does not carry over.
	if second[0] != "" {
		t.Errorf("second document x = %q, expected blank", second[0])
	}
}

func TestNewSessionWithUnits(t *testing.T) {
	defs := `
units:
  - name: smoot
    aliases: [smoots]
    dimension: length
    scale: 1.702
`
	s, err := NewSessionWithUnits(strings.NewReader(defs))
	if err != nil {
		t.Fatalf("NewSessionWithUnits: %v", err)
	}

	results := s.EvalDocument("1 smoot to cm")
	if results[0] != "170.20 cm" {
		t.Errorf("smoot conversion = %q, expected %q", results[0], "170.20 cm")
	}

	// Built-in units still work alongside the extension.
	results = s.EvalDocument("1 cup in ml")
	if results[0] != "236.59 ml" {
		t.Errorf("cup conversion = %q, expected %q", results[0], "236.59 ml")
	}
}

func TestNewSessionWithUnitsRejectsBadDefs(t *testing.T) {
	defs := `
units:
  - name: blob
    dimension: goo
    scale: 1
`
	if _, err := NewSessionWithUnits(strings.NewReader(defs)); err == nil {
		t.Fatal("expected an error for an unknown dimension")
	}
}

func TestBufferedLogger(t *testing.T) {
	l := NewBufferedLogger()

	l.Log("line", 1)
	l.LogLine("done")
	l.LogLine("second line")

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "line 1done" {
		t.Errorf("lines[0] = %q", lines[0])
	}
	if got := l.String(); got != "line 1done\nsecond line" {
		t.Errorf("String() = %q", got)
	}

	// Lines returns a copy.
	lines[0] = "mutated"
	if l.Lines()[0] == "mutated" {
		t.Error("Lines() must return a copy")
	}

	l.Reset()
	if len(l.Lines()) != 0 {
		t.Error("Reset must discard buffered lines")
	}
}

func TestBufferedLoggerCapturesTraces(t *testing.T) {
	l := NewBufferedLogger()
	s := NewSession()
	s.Logger = l

	s.EvalDocument("1 / 0")

	if !strings.Contains(l.String(), "MATH-0001") {
		t.Errorf("trace missing suppressed error code:\n%s", l.String())
	}
}

func TestWriterLogger(t *testing.T) {
	var sb strings.Builder
	l := NewWriterLogger(&sb)

	l.Log("a", "b")
	l.LogLine("c")

	if got := sb.String(); got != "a bc\n" {
		t.Errorf("writer logger output = %q, expected %q", got, "a bc\n")
	}
}

func TestNullLogger(t *testing.T) {
	s := NewSession()
	s.Logger = NewNullLogger()
	// Must simply not panic or print.
	s.EvalDocument("1 / 0\n100 + 22%")
}
