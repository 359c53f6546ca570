// Package solvee is the embedding API for the Solvee calculator: evaluate
// a notepad document, get one result string per line.
//
//	results := solvee.EvalDocument("10 + 5 == x\nx * 2")
//	// results == []string{"15", "30"}
//
// For repeated use, or to customize units and tracing, hold a Session:
//
//	s := solvee.NewSession()
//	s.Logger = solvee.NewWriterLogger(os.Stderr)
//	results := s.EvalDocument(text)
package solvee

import (
	"io"

	"github.com/GiuseppeAngenica/Solvee/pkg/solvee/evaluator"
	"github.com/GiuseppeAngenica/Solvee/pkg/solvee/units"
)

// Session evaluates documents. See evaluator.Session; re-exported so that
// embedders only import this package.
type Session = evaluator.Session

// Scope is the final binding state of a document evaluation.
type Scope = evaluator.Scope

// NewSession returns a session with the built-in unit table and no tracing.
func NewSession() *Session {
	return evaluator.NewSession()
}

// NewSessionWithUnits returns a session whose registry is the built-in
// table extended (or overridden) by YAML unit definitions.
func NewSessionWithUnits(defs io.Reader) (*Session, error) {
	reg := units.Default()
	if err := reg.LoadDefinitions(defs); err != nil {
		return nil, err
	}
	return &Session{Registry: reg}, nil
}

// EvalDocument evaluates text with a default session: one result per line.
func EvalDocument(text string) []string {
	return NewSession().EvalDocument(text)
}
