package solvee

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/GiuseppeAngenica/Solvee/pkg/solvee/evaluator"
)

// Logger receives evaluation traces. Log appends to the current line,
// LogLine completes one. All implementations here are safe for concurrent
// use.
type Logger = evaluator.Logger

// DefaultLogger writes traces to standard error.
var DefaultLogger Logger = NewWriterLogger(os.Stderr)

// NewWriterLogger returns a Logger that writes to w.
func NewWriterLogger(w io.Writer) Logger {
	return &writerLogger{w: w}
}

type writerLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *writerLogger) Log(values ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.w, formatValues(values))
}

func (l *writerLogger) LogLine(values ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, formatValues(values))
}

// BufferedLogger accumulates trace lines in memory, for tests and for the
// REPL's debug toggle.
type BufferedLogger struct {
	mu      sync.Mutex
	lines   []string
	partial string
}

// NewBufferedLogger returns an empty BufferedLogger.
func NewBufferedLogger() *BufferedLogger {
	return &BufferedLogger{}
}

func (l *BufferedLogger) Log(values ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.partial += formatValues(values)
}

func (l *BufferedLogger) LogLine(values ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, l.partial+formatValues(values))
	l.partial = ""
}

// Lines returns a copy of the completed trace lines.
func (l *BufferedLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// String returns the completed lines joined with newlines.
func (l *BufferedLogger) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.lines, "\n")
}

// Reset discards all buffered lines.
func (l *BufferedLogger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = nil
	l.partial = ""
}

// NewNullLogger returns a Logger that discards everything.
func NewNullLogger() Logger {
	return nullLogger{}
}

type nullLogger struct{}

func (nullLogger) Log(values ...any)     {}
func (nullLogger) LogLine(values ...any) {}

// formatValues joins values with single spaces, the way the traces expect.
func formatValues(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
