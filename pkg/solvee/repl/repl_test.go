package repl

import (
	"strings"
	"testing"

	"github.com/GiuseppeAngenica/Solvee/pkg/solvee/evaluator"
)

func TestCompletionWords(t *testing.T) {
	words := completionWords(evaluator.NewSession())

	found := map[string]bool{}
	for _, w := range words {
		found[w] = true
	}
	for _, required := range []string{"sqrt", "pi", "to", "in", "ml", "tablespoon"} {
		if !found[required] {
			t.Errorf("completion words missing %q", required)
		}
	}
}

func TestFilterCompletions(t *testing.T) {
	words := completionWords(evaluator.NewSession())
	scope := evaluator.NewScope()

	got := filterCompletions("sq", words, scope)
	if len(got) != 1 || got[0] != "sqrt" {
		t.Errorf("filterCompletions(\"sq\") = %v, expected [sqrt]", got)
	}

	// The line before the word being completed is preserved.
	got = filterCompletions("1 + sq", words, scope)
	if len(got) != 1 || got[0] != "1 + sqrt" {
		t.Errorf("filterCompletions(\"1 + sq\") = %v, expected [1 + sqrt]", got)
	}

	got = filterCompletions("25 ml to tab", words, scope)
	if len(got) == 0 || got[0] != "25 ml to tablespoon" {
		t.Errorf("filterCompletions(\"25 ml to tab\") = %v", got)
	}
}

func TestFilterCompletionsEdges(t *testing.T) {
	words := completionWords(evaluator.NewSession())
	scope := evaluator.NewScope()

	if got := filterCompletions("", words, scope); got != nil {
		t.Errorf("empty line should complete nothing, got %v", got)
	}
	if got := filterCompletions("sqrt(16) ", words, scope); got != nil {
		t.Errorf("trailing space should complete nothing, got %v", got)
	}
	if got := filterCompletions("sqrt", words, scope); len(got) != 0 {
		t.Errorf("a fully typed word should not complete to itself, got %v", got)
	}
}

func TestFilterCompletionsIncludesVariables(t *testing.T) {
	words := completionWords(evaluator.NewSession())
	scope := evaluator.NewScope()
	scope.Set("expenses", &evaluator.Number{Value: 100})

	got := filterCompletions("exp", words, scope)
	if len(got) != 1 || got[0] != "expenses" {
		t.Errorf("filterCompletions(\"exp\") = %v, expected [expenses]", got)
	}
}

func TestPrintAligned(t *testing.T) {
	var sb strings.Builder
	lines := []string{"1 + 1", "x"}
	results := []string{"2", ""}

	printAligned(&sb, lines, results, nil)

	expected := "1 + 1  2\nx\n"
	if sb.String() != expected {
		t.Errorf("printAligned output:\n%q\nexpected:\n%q", sb.String(), expected)
	}
}

func TestPrintVariables(t *testing.T) {
	var sb strings.Builder
	scope := evaluator.NewScope()

	printVariables(&sb, scope)
	if !strings.Contains(sb.String(), "(no variables)") {
		t.Errorf("empty scope output: %q", sb.String())
	}

	sb.Reset()
	scope.Set("x", &evaluator.Number{Value: 15})
	printVariables(&sb, scope)
	if sb.String() != "  x = 15\n" {
		t.Errorf("printVariables output: %q", sb.String())
	}
}

func TestPrintUnits(t *testing.T) {
	var sb strings.Builder
	printUnits(&sb, evaluator.NewSession())

	out := sb.String()
	for _, want := range []string{"length:", "volume:", "temperature:", "tablespoon (tablespoons, tbsp)"} {
		if !strings.Contains(out, want) {
			t.Errorf("unit listing missing %q:\n%s", want, out)
		}
	}
}

func TestHandleCommand(t *testing.T) {
	session := evaluator.NewSession()
	var sb strings.Builder

	document := []string{"10 == x"}
	_, scope := session.EvalLinesWithScope(document)

	if quit := handleCommand(":clear", &sb, session, nil, &document, &scope); quit {
		t.Error(":clear must not quit")
	}
	if document != nil {
		t.Error(":clear must drop the document")
	}
	if len(scope.VariableNames()) != 0 {
		t.Error(":clear must reset the scope")
	}

	if quit := handleCommand(":q", &sb, session, nil, &document, &scope); !quit {
		t.Error(":q must quit")
	}

	sb.Reset()
	handleCommand(":bogus", &sb, session, nil, &document, &scope)
	if !strings.Contains(sb.String(), "Unknown command") {
		t.Errorf("unknown command output: %q", sb.String())
	}

	sb.Reset()
	document = []string{"1 + 1"}
	handleCommand(":show", &sb, session, nil, &document, &scope)
	if !strings.Contains(sb.String(), "1 + 1  2") {
		t.Errorf(":show output: %q", sb.String())
	}
}
