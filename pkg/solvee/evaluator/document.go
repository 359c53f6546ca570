package evaluator

import (
	"fmt"
	"strings"

	serrors "github.com/GiuseppeAngenica/Solvee/pkg/solvee/errors"
	"github.com/GiuseppeAngenica/Solvee/pkg/solvee/lexer"
	"github.com/GiuseppeAngenica/Solvee/pkg/solvee/parser"
	"github.com/GiuseppeAngenica/Solvee/pkg/solvee/units"
)

// Logger receives evaluation traces: which lines converted, which errors
// were suppressed, what percentage sugar expanded to. Values are joined
// with spaces, one call per line of output.
type Logger interface {
	Log(values ...any)
	LogLine(values ...any)
}

// Session evaluates documents. It owns the unit registry; the builtin
// table is seeded into a fresh scope per recompute, so sessions are safe
// to reuse across documents and results never depend on earlier runs.
type Session struct {
	Registry *units.Registry // nil disables unit conversion
	Logger   Logger          // nil disables tracing
}

// NewSession returns a session with the default unit registry and no
// tracing.
func NewSession() *Session {
	return &Session{Registry: units.Default()}
}

// EvalDocument evaluates a whole document and returns one result string
// per line, in order. Blank lines and lines that fail to parse or
// evaluate yield ""; only invalid assignment targets yield a visible
// "error: ..." result.
func (s *Session) EvalDocument(text string) []string {
	return s.EvalLines(strings.Split(text, "\n"))
}

// EvalLines evaluates lines top to bottom against a single fresh scope.
// len(results) == len(lines) always holds.
func (s *Session) EvalLines(lines []string) []string {
	results, _ := s.EvalLinesWithScope(lines)
	return results
}

// EvalLinesWithScope evaluates lines and also returns the final scope, for
// callers that want to inspect the bindings the document ends with (the
// REPL's :vars, completion).
func (s *Session) EvalLinesWithScope(lines []string) ([]string, *Scope) {
	scope := NewScope()
	results := make([]string, len(lines))
	for i, line := range lines {
		results[i] = s.evalLine(i+1, line, scope)
	}
	return results, scope
}

// evalLine runs one line through the fixed pipeline: blank check, unit
// conversion on the untouched text, percentage rewriting, then assignment
// or plain expression. Every error except an invalid assignment target
// blanks the line.
func (s *Session) evalLine(lineNo int, raw string, scope *Scope) string {
	line := strings.TrimSpace(raw)
	if line == "" {
		return ""
	}

	result, convErr := TryConversion(line, scope, s.Registry)
	if result != "" {
		s.tracef("line %d: conversion: %s -> %s", lineNo, line, result)
		return result
	}
	if convErr != nil {
		s.tracef("line %d: conversion failed (%s), trying as expression: %s",
			lineNo, convErr.Code, convErr.Message)
	}

	rewritten := RewritePercentages(line)
	if rewritten != line {
		s.tracef("line %d: percentage sugar: %s -> %s", lineNo, line, rewritten)
	}

	if idx := strings.Index(rewritten, "=="); idx >= 0 {
		return s.evalAssignment(lineNo, rewritten[:idx], rewritten[idx+2:], scope)
	}

	obj := s.evalText(lineNo, rewritten, scope)
	if isError(obj) {
		return s.suppress(lineNo, obj)
	}
	return FormatResult(obj)
}

// evalAssignment handles "<expression> == <name>". The target is validated
// before the expression is evaluated: a bad target is the one error class
// that surfaces in the result column.
func (s *Session) evalAssignment(lineNo int, lhs, rhs string, scope *Scope) string {
	target := strings.TrimSpace(rhs)
	if !isValidIdentifier(target) {
		err := serrors.NewWithPosition("ASSIGN-0001", lineNo, 0, map[string]any{
			"Target": target,
		})
		s.tracef("line %d: %s", lineNo, err.Message)
		return err.ResultString()
	}

	obj := s.evalText(lineNo, lhs, scope)
	if isError(obj) {
		return s.suppress(lineNo, obj)
	}

	scope.Set(target, obj)
	s.tracef("line %d: %s = %s", lineNo, target, FormatResult(obj))
	return FormatResult(obj)
}

// evalText parses and evaluates expression text against the scope.
func (s *Session) evalText(lineNo int, text string, scope *Scope) Object {
	p := parser.New(lexer.New(text))
	expr := p.Parse()
	if errs := p.StructuredErrors(); len(errs) > 0 {
		err := errs[0]
		return &Error{Err: err.WithPosition(lineNo, err.Column)}
	}
	if expr == nil {
		return newError("INTERNAL-0001", map[string]any{"message": "parser returned no expression"})
	}

	obj := Eval(expr, scope)
	if e, ok := obj.(*Error); ok {
		e.Err = e.Err.WithPosition(lineNo, e.Err.Column)
	}
	return obj
}

// suppress applies the per-line error policy: surfacing classes render in
// the result column, everything else blanks the line (and is traced).
func (s *Session) suppress(lineNo int, obj Object) string {
	e := obj.(*Error)
	if e.Err.Class.Surfaces() {
		return e.Err.ResultString()
	}
	s.tracef("line %d: suppressed %s: %s", lineNo, e.Err.Code, e.Err.Message)
	return ""
}

func (s *Session) tracef(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.LogLine(fmt.Sprintf(format, args...))
	}
}

// isValidIdentifier reports whether name lexes as exactly one identifier.
// Keywords ("to", "in") and anything with leftover tokens are rejected.
func isValidIdentifier(name string) bool {
	toks := lexer.Tokens(name)
	return len(toks) == 2 && toks[0].Type == lexer.IDENT && toks[1].Type == lexer.EOF
}
