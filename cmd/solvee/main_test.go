package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestEvaluateInline tests that -e prints the notepad layout by default
func TestEvaluateInline(t *testing.T) {
	tests := []struct {
		name     string
		document string
		expected string
	}{
		{
			name:     "expression",
			document: "1 + 2",
			expected: "1 + 2  3\n",
		},
		{
			name:     "assignment and use",
			document: "10 + 5 == x\nx * 2",
			expected: "10 + 5 == x  15\nx * 2        30\n",
		},
		{
			name:     "percentage",
			document: "100 + 22%",
			expected: "100 + 22%  122\n",
		},
		{
			name:     "conversion",
			document: "25 ml to tablespoon",
			expected: "25 ml to tablespoon  1.69 tablespoon\n",
		},
		{
			name:     "failed line stays blank",
			document: "1 +\n2 + 2",
			expected: "1 +\n2 + 2  4\n",
		},
		{
			name:     "invalid assignment target",
			document: "5 == 2x",
			expected: "5 == 2x  error: invalid name \"2x\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command("./solvee", "-e", tt.document)
			output, err := cmd.CombinedOutput()
			if err != nil {
				t.Fatalf("Command failed: %v\nOutput: %s", err, output)
			}
			if string(output) != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, string(output))
			}
		})
	}
}

// TestEvaluateInlineResultsOnly tests -r / --results-only output
func TestEvaluateInlineResultsOnly(t *testing.T) {
	tests := []struct {
		name     string
		document string
		flag     string
		expected string
	}{
		{
			name:     "results only with -r",
			document: "10 + 5 == x\nx * 2",
			flag:     "-r",
			expected: "15\n30\n",
		},
		{
			name:     "results only with --results-only",
			document: "10 + 5 == x\nx * 2",
			flag:     "--results-only",
			expected: "15\n30\n",
		},
		{
			name:     "blank lines preserved",
			document: "1 +\n2 + 2",
			flag:     "-r",
			expected: "\n4\n",
		},
		{
			name:     "conversion",
			document: "0°C to fahrenheit",
			flag:     "-r",
			expected: "32.00 °F\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command("./solvee", tt.flag, "-e", tt.document)
			output, err := cmd.CombinedOutput()
			if err != nil {
				t.Fatalf("Command failed: %v\nOutput: %s", err, output)
			}
			if string(output) != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, string(output))
			}
		})
	}
}

// TestEvaluateStdin tests that piped input evaluates as a document
func TestEvaluateStdin(t *testing.T) {
	cmd := exec.Command("./solvee", "-r")
	cmd.Stdin = strings.NewReader("100 + 22%\n50%")
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}
	if string(output) != "122\n0.50\n" {
		t.Errorf("Expected %q, got %q", "122\n0.50\n", string(output))
	}
}

// TestEvaluateFile tests evaluating a document file
func TestEvaluateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.txt")
	doc := "1200 == rent\n400 == food\nrent + food == total\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := exec.Command("./solvee", "-r", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}
	if string(output) != "1200\n400\n1600\n" {
		t.Errorf("Expected %q, got %q", "1200\n400\n1600\n", string(output))
	}
}

// TestUnitsFlag tests loading extra unit definitions from YAML
func TestUnitsFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	defs := "units:\n  - name: smoot\n    dimension: length\n    scale: 1.702\n"
	if err := os.WriteFile(path, []byte(defs), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := exec.Command("./solvee", "-u", path, "-r", "-e", "1 smoot to cm")
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}
	if string(output) != "170.20 cm\n" {
		t.Errorf("Expected %q, got %q", "170.20 cm\n", string(output))
	}
}

// TestColorFlag tests that -c wraps output in ANSI escapes
func TestColorFlag(t *testing.T) {
	cmd := exec.Command("./solvee", "-c", "-e", "1 + 2")
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(string(output), "\x1b[") {
		t.Errorf("Expected ANSI escapes in colored output, got %q", output)
	}
}

// TestDebugFlag tests that -d traces to stderr without changing stdout
func TestDebugFlag(t *testing.T) {
	cmd := exec.Command("./solvee", "-d", "-r", "-e", "1 / 0")
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(string(output), "MATH-0001") {
		t.Errorf("Expected a suppression trace, got %q", output)
	}
}

// TestVersionFlag tests -V / --version
func TestVersionFlag(t *testing.T) {
	for _, flag := range []string{"-V", "--version"} {
		cmd := exec.Command("./solvee", flag)
		output, err := cmd.CombinedOutput()
		if err != nil {
			t.Fatalf("Command failed: %v\nOutput: %s", err, output)
		}
		if !strings.HasPrefix(string(output), "solvee version ") {
			t.Errorf("Expected version banner, got %q", output)
		}
	}
}

// TestHelpFlag tests -h / --help
func TestHelpFlag(t *testing.T) {
	cmd := exec.Command("./solvee", "-h")
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}
	for _, want := range []string{"Usage:", "-e, --eval", "-w, --watch"} {
		if !strings.Contains(string(output), want) {
			t.Errorf("Help output missing %q:\n%s", want, output)
		}
	}
}

// TestMain ensures the binary is built before running tests
func TestMain(m *testing.M) {
	// Build the binary
	buildCmd := exec.Command("go", "build", "-o", "solvee", ".")
	if err := buildCmd.Run(); err != nil {
		os.Exit(1)
	}

	// Run tests
	code := m.Run()

	// Cleanup
	os.Remove("solvee")

	os.Exit(code)
}
