package tests

import (
	"testing"

	"github.com/GiuseppeAngenica/Solvee/pkg/solvee/solvee"
)

func TestExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// arithmetic and precedence
		{"1 + 2 * 3", "7"},
		{"(1 + 2) * 3", "9"},
		{"10 / 4", "2.50"},
		{"2 ^ 10", "1024"},
		{"2 ^ 3 ^ 2", "512"},
		{"-2 ^ 2", "-4"},
		{"(-2) ^ 2", "4"},

		// formatting: whole numbers bare, fractions at two decimals
		{"15.0", "15"},
		{"0.5", "0.50"},
		{"1 / 3", "0.33"},
		{"10000 * 10000", "100000000"},

		// constants and functions
		{"pi", "3.14"},
		{"tau", "6.28"},
		{"sqrt(16)", "4"},
		{"max(3, 7) * min(2, 5)", "14"},
		{"round(2.6) + floor(2.6)", "5"},
		{"hypot(3, 4)", "5"},

		// special values are values, not errors
		{"inf", "inf"},
		{"0 - inf", "-inf"},
		{"nan", "nan"},
		{"nan + 1", "nan"},
	}

	for _, tt := range tests {
		results := solvee.EvalDocument(tt.input)
		if results[0] != tt.expected {
			t.Errorf("%q: got %q, expected %q", tt.input, results[0], tt.expected)
		}
		t.Logf("✓ %s -> %s", tt.input, results[0])
	}
}

func TestExpressionErrorsSuppressed(t *testing.T) {
	inputs := []string{
		"1 / 0",
		"10 % 0",
		"sqrt(-4)",
		"log(0)",
		"asin(2)",
		"sqrt(1, 2)",
		"notdefined + 1",
		"pi(3)",
		"sin + cos",
		"1 + + 2 +",
		"((((",
	}

	for _, input := range inputs {
		results := solvee.EvalDocument(input)
		if results[0] != "" {
			t.Errorf("%q: got %q, expected blank", input, results[0])
		}
	}
}

func TestScopeAccumulation(t *testing.T) {
	document := `2.5 == hours
95 == rate
hours * rate == pay
pay * 52 == yearly
yearly / 12`

	results := solvee.EvalDocument(document)
	expected := []string{"2.50", "95", "237.50", "12350", "1029.17"}
	for i := range expected {
		if results[i] != expected[i] {
			t.Errorf("line %d: got %q, expected %q", i+1, results[i], expected[i])
		}
	}
}

func TestBuiltinShadowing(t *testing.T) {
	document := "pi\n10 == pi\npi * 2\nsqrt(pi - 6)"
	results := solvee.EvalDocument(document)
	expected := []string{"3.14", "10", "20", "2"}
	for i := range expected {
		if results[i] != expected[i] {
			t.Errorf("line %d: got %q, expected %q", i+1, results[i], expected[i])
		}
	}

	// Shadowing is per-document: a fresh document sees the constant again.
	if fresh := solvee.EvalDocument("pi"); fresh[0] != "3.14" {
		t.Errorf("fresh document pi = %q", fresh[0])
	}
}
