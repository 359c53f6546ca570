// Package errors provides structured error types for the Solvee evaluator.
//
// This package defines SolveeError, a unified error type for parse and
// evaluation failures, and the per-class suppression policy: during a
// document recompute every error class except ClassAssign is caught at the
// per-line boundary and blanked, while invalid assignment targets surface
// as a visible error string.
package errors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
)

// ErrorClass categorizes errors for the suppression policy and for display.
type ErrorClass string

const (
	ClassParse     ErrorClass = "parse"     // Malformed expression text
	ClassName      ErrorClass = "name"      // Identifier not in scope, call of a non-function
	ClassArity     ErrorClass = "arity"     // Wrong argument count to a builtin
	ClassUnit      ErrorClass = "unit"      // Unknown unit, malformed quantity
	ClassDimension ErrorClass = "dimension" // Incompatible dimensions
	ClassAssign    ErrorClass = "assign"    // Invalid assignment target
	ClassMath      ErrorClass = "math"      // Division by zero, domain violations
	ClassInternal  ErrorClass = "internal"  // Should-not-happen conditions
)

// Surfaces reports whether errors of this class appear in the line's result.
// This is the explicit policy table: assignment-target errors are the one
// kind the user must see; everything else blanks the line so that
// half-typed expressions stay quiet.
func (c ErrorClass) Surfaces() bool {
	return c == ClassAssign
}

// SolveeError represents any error from parsing or evaluation.
type SolveeError struct {
	Class   ErrorClass     `json:"class"`           // Error category
	Code    string         `json:"code"`            // Error code (e.g., "UNIT-0001")
	Message string         `json:"message"`         // Human-readable message
	Hints   []string       `json:"hints,omitempty"` // Suggestions for fixing
	Line    int            `json:"line"`            // 1-based line (0 if unknown)
	Column  int            `json:"column"`          // 1-based column (0 if unknown)
	File    string         `json:"file,omitempty"`  // File path (if known)
	Data    map[string]any `json:"data,omitempty"`  // Template variables
}

// Error implements the error interface.
func (e *SolveeError) Error() string {
	return e.String()
}

// String returns a formatted string representation of the error.
func (e *SolveeError) String() string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(e.File)
		sb.WriteString(": ")
	}
	if e.Line > 0 {
		sb.WriteString(fmt.Sprintf("line %d, column %d: ", e.Line, e.Column))
	}

	sb.WriteString(e.Message)

	for _, hint := range e.Hints {
		sb.WriteString("\n  ")
		sb.WriteString(hint)
	}

	return sb.String()
}

// ResultString renders the error the way it appears in a line's result
// column. Only ClassAssign errors ever reach a result.
func (e *SolveeError) ResultString() string {
	return "error: " + e.Message
}

// ToJSON returns the error as JSON bytes.
func (e *SolveeError) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// WithPosition returns a copy of the error with line and column set.
func (e *SolveeError) WithPosition(line, column int) *SolveeError {
	copy := *e
	copy.Line = line
	copy.Column = column
	return &copy
}

// WithFile returns a copy of the error with the file path set.
func (e *SolveeError) WithFile(file string) *SolveeError {
	copy := *e
	copy.File = file
	return &copy
}

// IsParseError returns true if this is a parser error.
func (e *SolveeError) IsParseError() bool {
	return e.Class == ClassParse
}

// ErrorDef defines an error in the catalog.
type ErrorDef struct {
	Class    ErrorClass // Error category
	Template string     // Message template with {{.placeholders}}
	Hints    []string   // Hint templates (may use {{.placeholders}})
}

// ErrorCatalog maps error codes to their definitions.
var ErrorCatalog = map[string]ErrorDef{
	// ========================================
	// Parse errors (PARSE-0xxx)
	// ========================================
	"PARSE-0001": {
		Class:    ClassParse,
		Template: "expected {{.Expected}}, got '{{.Got}}'",
	},
	"PARSE-0002": {
		Class:    ClassParse,
		Template: "unexpected token '{{.Token}}'",
	},
	"PARSE-0003": {
		Class:    ClassParse,
		Template: "invalid number literal: {{.Literal}}",
	},
	"PARSE-0004": {
		Class:    ClassParse,
		Template: "unexpected trailing input after expression: '{{.Token}}'",
	},

	// ========================================
	// Name errors (NAME-0xxx)
	// ========================================
	"NAME-0001": {
		Class:    ClassName,
		Template: "identifier not found: {{.Name}}",
		// Hint "Did you mean `X`?" added dynamically by fuzzy matching
	},
	"NAME-0002": {
		Class:    ClassName,
		Template: "'{{.Name}}' is not a function",
	},
	"NAME-0003": {
		Class:    ClassName,
		Template: "'{{.Name}}' is a function, not a value",
		Hints:    []string{"call it, e.g. {{.Name}}(...)"},
	},

	// ========================================
	// Arity errors (ARITY-0xxx)
	// ========================================
	"ARITY-0001": {
		Class:    ClassArity,
		Template: "wrong number of arguments to `{{.Function}}`. got={{.Got}}, want={{.Want}}",
	},

	// ========================================
	// Unit errors (UNIT-0xxx)
	// ========================================
	"UNIT-0001": {
		Class:    ClassUnit,
		Template: "unknown unit: {{.Unit}}",
		// Hint "Did you mean `X`?" added dynamically by fuzzy matching
	},
	"UNIT-0002": {
		Class:    ClassDimension,
		Template: "cannot convert {{.From}} to {{.To}}: incompatible dimensions",
	},
	"UNIT-0003": {
		Class:    ClassUnit,
		Template: "cannot parse quantity: {{.Source}}",
	},
	"UNIT-0004": {
		Class:    ClassDimension,
		Template: "cannot {{.Operation}} {{.Left}} and {{.Right}}: incompatible dimensions",
	},

	// ========================================
	// Assignment errors (ASSIGN-0xxx)
	// ========================================
	"ASSIGN-0001": {
		Class:    ClassAssign,
		Template: "invalid name \"{{.Target}}\"",
		Hints:    []string{"names start with a letter or underscore"},
	},

	// ========================================
	// Math errors (MATH-0xxx)
	// ========================================
	"MATH-0001": {
		Class:    ClassMath,
		Template: "division by zero",
	},
	"MATH-0002": {
		Class:    ClassMath,
		Template: "math domain error: {{.Detail}}",
	},
}

// New creates a SolveeError from the catalog.
// If the code is not found, creates a generic error with the message.
func New(code string, data map[string]any) *SolveeError {
	def, ok := ErrorCatalog[code]
	if !ok {
		msg := code
		if data != nil {
			if m, ok := data["message"].(string); ok {
				msg = m
			}
		}
		return &SolveeError{
			Class:   ClassInternal,
			Code:    code,
			Message: msg,
			Data:    data,
		}
	}

	msg := renderTemplate(def.Template, data)

	var hints []string
	for _, hintTmpl := range def.Hints {
		rendered := renderTemplate(hintTmpl, data)
		if rendered != "" {
			hints = append(hints, rendered)
		}
	}

	return &SolveeError{
		Class:   def.Class,
		Code:    code,
		Message: msg,
		Hints:   hints,
		Data:    data,
	}
}

// NewWithPosition creates a SolveeError with position information.
func NewWithPosition(code string, line, column int, data map[string]any) *SolveeError {
	err := New(code, data)
	err.Line = line
	err.Column = column
	return err
}

// renderTemplate renders a Go template with the given data.
func renderTemplate(tmplStr string, data map[string]any) string {
	if data == nil {
		return tmplStr
	}

	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return tmplStr
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return tmplStr
	}

	return buf.String()
}

// ============================================================================
// Fuzzy Matching - "Did you mean?" suggestions
// ============================================================================

// levenshteinDistance computes the edit distance between two strings.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
		matrix[i][0] = i
	}
	for j := range matrix[0] {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}

// FindClosestMatch finds the closest match to the given string from candidates.
// Returns the best match if the distance is within the threshold, otherwise
// empty string. The threshold is calculated from the length of the input.
func FindClosestMatch(input string, candidates []string) string {
	if len(input) == 0 || len(candidates) == 0 {
		return ""
	}

	inputLower := strings.ToLower(input)

	var bestMatch string
	bestDistance := -1

	for _, candidate := range candidates {
		candidateLower := strings.ToLower(candidate)

		dist := levenshteinDistance(inputLower, candidateLower)

		if bestDistance == -1 || dist < bestDistance {
			bestDistance = dist
			bestMatch = candidate
		}
	}

	// Short words (1-3): max 1 edit; medium (4-6): 2; longer: 3.
	threshold := 1
	if len(input) >= 4 && len(input) <= 6 {
		threshold = 2
	} else if len(input) >= 7 {
		threshold = 3
	}

	if bestDistance <= 0 || bestDistance > threshold {
		return ""
	}

	return bestMatch
}

// NewUndefinedIdentifier creates an undefined identifier error with optional
// fuzzy matching over the names currently in scope.
func NewUndefinedIdentifier(name string, availableIdentifiers []string) *SolveeError {
	data := map[string]any{"Name": name}
	err := New("NAME-0001", data)

	if suggestion := FindClosestMatch(name, availableIdentifiers); suggestion != "" {
		err.Hints = append(err.Hints, "Did you mean `"+suggestion+"`?")
	}

	return err
}

// NewUnknownUnit creates an unknown unit error with optional fuzzy matching
// over the registered unit names.
func NewUnknownUnit(unit string, availableUnits []string) *SolveeError {
	data := map[string]any{"Unit": unit}
	err := New("UNIT-0001", data)

	if suggestion := FindClosestMatch(unit, availableUnits); suggestion != "" {
		err.Hints = append(err.Hints, "Did you mean `"+suggestion+"`?")
	}

	return err
}
