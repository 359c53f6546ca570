// Package repl is the interactive notepad: every line entered joins the
// document, the whole document recomputes, and the new line's result
// prints. Line editing, history and tab completion come from liner.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/peterh/liner"

	"github.com/GiuseppeAngenica/Solvee/pkg/solvee/evaluator"
	"github.com/GiuseppeAngenica/Solvee/pkg/solvee/highlight"
)

const PROMPT = ">> "

const LOGO = `
█▀ █▀█ █░░ █░█ █▀▀ █▀▀
▄█ █▄█ █▄▄ ▀▄▀ ██▄ ██▄ `

// keywords joins the builtin names and unit names in tab completion.
var keywords = []string{"to", "in"}

// Start runs the interactive loop until :quit or Ctrl+D. The session's
// registry drives unit completion; hl may be nil to disable color.
func Start(out io.Writer, version string, session *evaluator.Session, hl *highlight.Highlighter) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	var document []string
	scope := evaluator.NewScope()

	completions := completionWords(session)
	line.SetCompleter(func(input string) []string {
		return filterCompletions(input, completions, scope)
	})

	historyFile := historyPath()
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Fprintf(out, "%s", LOGO)
	fmt.Fprintln(out, "v", version)
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Every line joins the document; results update as you type.")
	fmt.Fprintln(out, "Type ':help' for commands, ':quit' or Ctrl+D to leave")
	fmt.Fprintln(out, "")

	for {
		input, err := line.Prompt(PROMPT)
		if err != nil {
			if err == liner.ErrPromptAborted {
				fmt.Fprintln(out, "^C")
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(out, "Error reading input: %v\n", err)
			continue
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "exit" || trimmed == "quit" {
			fmt.Fprintln(out, "Goodbye!")
			return
		}

		if strings.HasPrefix(trimmed, ":") {
			if quit := handleCommand(trimmed, out, session, hl, &document, &scope); quit {
				fmt.Fprintln(out, "Goodbye!")
				return
			}
			continue
		}

		if trimmed == "" {
			continue
		}

		line.AppendHistory(input)

		// The document model: append, recompute everything, show the
		// newest result. Earlier lines may change meaning too ("10 == x"
		// after "x * 2"), which :show reveals.
		document = append(document, input)
		var results []string
		results, scope = session.EvalLinesWithScope(document)

		result := results[len(results)-1]
		if result != "" {
			fmt.Fprintln(out, hl.Result(result))
		}
	}
}

// handleCommand dispatches ':' meta-commands. Returns true to quit.
func handleCommand(cmd string, out io.Writer, session *evaluator.Session, hl *highlight.Highlighter, document *[]string, scope **evaluator.Scope) bool {
	switch cmd {
	case ":help", ":h", ":?":
		fmt.Fprintln(out, "Commands:")
		fmt.Fprintln(out, "  :help, :h, :?   Show this help")
		fmt.Fprintln(out, "  :show           Show the document with results")
		fmt.Fprintln(out, "  :vars           Show variables bound by the document")
		fmt.Fprintln(out, "  :units          List the known units")
		fmt.Fprintln(out, "  :clear          Start a fresh document")
		fmt.Fprintln(out, "  :quit           Exit (also exit, quit, Ctrl+D)")

	case ":show":
		if len(*document) == 0 {
			fmt.Fprintln(out, "(empty document)")
			return false
		}
		results := session.EvalLines(*document)
		printAligned(out, *document, results, hl)

	case ":vars":
		printVariables(out, *scope)

	case ":units":
		printUnits(out, session)

	case ":clear":
		*document = nil
		*scope = evaluator.NewScope()
		fmt.Fprintln(out, "Document cleared")

	case ":quit", ":q":
		return true

	default:
		fmt.Fprintf(out, "Unknown command: %s (type :help for commands)\n", cmd)
	}
	return false
}

// printAligned renders lines in a left column and results in a right
// column, the notepad layout.
func printAligned(out io.Writer, lines, results []string, hl *highlight.Highlighter) {
	width := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}

	for i, line := range lines {
		pad := strings.Repeat(" ", width-runewidth.StringWidth(line))
		if results[i] == "" {
			fmt.Fprintf(out, "%s\n", hl.Line(line))
			continue
		}
		fmt.Fprintf(out, "%s%s  %s\n", hl.Line(line), pad, hl.Result(results[i]))
	}
}

func printVariables(out io.Writer, scope *evaluator.Scope) {
	names := scope.VariableNames()
	if len(names) == 0 {
		fmt.Fprintln(out, "(no variables)")
		return
	}

	vars := scope.Variables()
	for _, name := range names {
		fmt.Fprintf(out, "  %s = %s\n", name, evaluator.FormatResult(vars[name]))
	}
}

func printUnits(out io.Writer, session *evaluator.Session) {
	if session.Registry == nil {
		fmt.Fprintln(out, "(unit conversion disabled)")
		return
	}

	// Group by dimension, keeping registration order within each group.
	groups := make(map[string][]string)
	var order []string
	for _, u := range session.Registry.Units() {
		dim := u.Dim.String()
		if _, seen := groups[dim]; !seen {
			order = append(order, dim)
		}
		entry := u.Name
		if len(u.Aliases) > 0 {
			entry += " (" + strings.Join(u.Aliases, ", ") + ")"
		}
		groups[dim] = append(groups[dim], entry)
	}

	for _, dim := range order {
		fmt.Fprintf(out, "%s:\n", dim)
		for _, entry := range groups[dim] {
			fmt.Fprintf(out, "  %s\n", entry)
		}
	}
}

// completionWords collects the static completion set: builtins, keywords
// and unit names.
func completionWords(session *evaluator.Session) []string {
	words := append([]string{}, evaluator.BuiltinNames()...)
	words = append(words, keywords...)
	if session.Registry != nil {
		words = append(words, session.Registry.Names()...)
	}
	return words
}

// filterCompletions completes the word being typed, keeping the rest of
// the line intact. Document variables complete alongside the static words.
func filterCompletions(line string, words []string, scope *evaluator.Scope) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	if line[len(line)-1] == ' ' || line[len(line)-1] == '\t' {
		return nil
	}

	fields := strings.Fields(line)
	lastWord := fields[len(fields)-1]
	prefix := line[:len(line)-len(lastWord)]

	var matches []string
	add := func(word string) {
		if strings.HasPrefix(word, lastWord) && word != lastWord {
			matches = append(matches, prefix+word)
		}
	}
	for _, word := range words {
		add(word)
	}
	for _, name := range scope.VariableNames() {
		add(name)
	}
	return matches
}

// historyPath puts history in the user cache dir, falling back to /tmp.
func historyPath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		path := filepath.Join(dir, "solvee")
		if err := os.MkdirAll(path, 0o755); err == nil {
			return filepath.Join(path, "history")
		}
	}
	return filepath.Join(os.TempDir(), ".solvee_history")
}
