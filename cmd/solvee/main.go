package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mattn/go-runewidth"

	"github.com/GiuseppeAngenica/Solvee/config"
	"github.com/GiuseppeAngenica/Solvee/pkg/solvee/evaluator"
	"github.com/GiuseppeAngenica/Solvee/pkg/solvee/highlight"
	"github.com/GiuseppeAngenica/Solvee/pkg/solvee/repl"
	"github.com/GiuseppeAngenica/Solvee/pkg/solvee/solvee"
)

// Version is set at compile time via -ldflags
var Version = "1.2.5"

var (
	// Display flags
	helpFlag        = flag.Bool("h", false, "Show help message")
	helpLongFlag    = flag.Bool("help", false, "Show help message")
	versionFlag     = flag.Bool("V", false, "Show version information")
	versionLongFlag = flag.Bool("version", false, "Show version information")
	colorFlag       = flag.Bool("c", false, "Colorize output")
	colorLongFlag   = flag.Bool("color", false, "Colorize output")
	resultsFlag     = flag.Bool("r", false, "Print results only, one per line")
	resultsLongFlag = flag.Bool("results-only", false, "Print results only, one per line")

	// Evaluation flags
	evalFlag     = flag.String("e", "", "Evaluate a document passed inline")
	evalLongFlag = flag.String("eval", "", "Evaluate a document passed inline")
	watchFlag    = flag.Bool("w", false, "Watch the file and re-evaluate on change")
	watchLong    = flag.Bool("watch", false, "Watch the file and re-evaluate on change")

	// Configuration flags
	themeFlag     = flag.String("t", "", "Theme file (default: probe theme.toml locations)")
	themeLongFlag = flag.String("theme", "", "Theme file (default: probe theme.toml locations)")
	unitsFlag     = flag.String("u", "", "YAML file with extra unit definitions")
	unitsLongFlag = flag.String("units", "", "YAML file with extra unit definitions")
	debugFlag     = flag.Bool("d", false, "Trace evaluation to stderr")
	debugLongFlag = flag.Bool("debug", false, "Trace evaluation to stderr")
)

func main() {
	flag.Usage = printHelp
	flag.Parse()

	if *helpFlag || *helpLongFlag {
		printHelp()
		os.Exit(0)
	}

	if *versionFlag || *versionLongFlag {
		fmt.Printf("solvee version %s\n", Version)
		os.Exit(0)
	}

	evalText := *evalFlag
	if evalText == "" {
		evalText = *evalLongFlag
	}
	themePath := *themeFlag
	if themePath == "" {
		themePath = *themeLongFlag
	}
	unitsPath := *unitsFlag
	if unitsPath == "" {
		unitsPath = *unitsLongFlag
	}
	colorOn := *colorFlag || *colorLongFlag
	resultsOnly := *resultsFlag || *resultsLongFlag
	watch := *watchFlag || *watchLong
	debug := *debugFlag || *debugLongFlag

	session, err := buildSession(unitsPath, debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	hl, err := buildHighlighter(colorOn, themePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Mode dispatch
	switch {
	case evalText != "":
		renderDocument(os.Stdout, session, evalText, resultsOnly, hl)

	case len(flag.Args()) > 0:
		filename := flag.Args()[0]
		if watch {
			if err := watchFile(filename, session, resultsOnly, hl); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			return
		}
		if err := renderFile(os.Stdout, filename, session, resultsOnly, hl); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

	case !stdinIsTerminal():
		// Piped input: treat stdin as a document
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		renderDocument(os.Stdout, session, string(data), resultsOnly, hl)

	default:
		repl.Start(os.Stdout, Version, session, hl)
	}
}

func printHelp() {
	fmt.Printf(`solvee - notepad calculator version %s

Usage:
  solvee [flags]              Start the interactive notepad
  solvee [flags] <file>       Evaluate a document file
  solvee -e "<document>"      Evaluate a document passed inline
  command | solvee            Evaluate a document from stdin

Flags:
  -e, --eval <text>     Evaluate text as a document and print results
  -w, --watch           Re-evaluate the file whenever it changes
  -r, --results-only    Print the result column only, one line per input line
  -c, --color           Colorize output (ANSI, 24-bit)
  -t, --theme <file>    Theme file (default: theme.toml probe locations)
  -u, --units <file>    YAML file with extra unit definitions
  -d, --debug           Trace evaluation to stderr
  -V, --version         Show version information
  -h, --help            Show this help message

Examples:
  solvee budget.txt
  solvee -w -c budget.txt
  solvee -e "10 + 5 == x
x * 2"
  solvee -e "25 ml to tablespoon"
  echo "100 + 22%%" | solvee -r
`, Version)
}

// buildSession assembles the evaluation session: default units, optional
// user definitions, optional tracing.
func buildSession(unitsPath string, debug bool) (*evaluator.Session, error) {
	session := solvee.NewSession()

	if unitsPath != "" {
		f, err := os.Open(unitsPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if err := session.Registry.LoadDefinitions(f); err != nil {
			return nil, fmt.Errorf("%s: %w", unitsPath, err)
		}
	}

	if debug {
		session.Logger = solvee.NewWriterLogger(os.Stderr)
	}
	return session, nil
}

// buildHighlighter maps the theme onto terminal colors. Without -c it
// returns nil, which disables coloring throughout.
func buildHighlighter(colorOn bool, themePath string) (*highlight.Highlighter, error) {
	if !colorOn {
		return nil, nil
	}

	theme := config.Load()
	if themePath != "" {
		loaded, err := config.LoadFile(themePath)
		if err != nil {
			return nil, err
		}
		theme = loaded
	}

	return highlight.New(highlight.Palette{
		Number:     theme.Color.Number,
		Operator:   theme.Color.Operator,
		Assignment: theme.Color.Assignment,
		Keyword:    theme.Color.Keyword,
		Unit:       theme.Color.Unit,
		Variable:   theme.Color.Variable,
		Result:     theme.Color.Result,
		Error:      theme.Color.Assignment,
	}), nil
}

func renderFile(out io.Writer, filename string, session *evaluator.Session, resultsOnly bool, hl *highlight.Highlighter) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	text := strings.TrimSuffix(string(data), "\n")
	renderDocument(out, session, text, resultsOnly, hl)
	return nil
}

// renderDocument evaluates and prints a document: either the result column
// alone, or the notepad layout with inputs left and results right.
func renderDocument(out io.Writer, session *evaluator.Session, text string, resultsOnly bool, hl *highlight.Highlighter) {
	lines := strings.Split(text, "\n")
	results := session.EvalLines(lines)

	if resultsOnly {
		for _, result := range results {
			fmt.Fprintln(out, hl.Result(result))
		}
		return
	}

	width := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	for i, line := range lines {
		if results[i] == "" {
			fmt.Fprintf(out, "%s\n", hl.Line(line))
			continue
		}
		pad := strings.Repeat(" ", width-runewidth.StringWidth(line))
		fmt.Fprintf(out, "%s%s  %s\n", hl.Line(line), pad, hl.Result(results[i]))
	}
}

// watchFile renders the file, then re-renders every time it changes, until
// interrupted. Changes arrive in bursts from editors, so rapid events are
// debounced.
func watchFile(filename string, session *evaluator.Session, resultsOnly bool, hl *highlight.Highlighter) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory: editors that save via rename would otherwise
	// detach the watch from the file.
	dir := filepath.Dir(filename)
	if dir == "" {
		dir = "."
	}
	if err := watcher.Add(dir); err != nil {
		return err
	}

	render := func() {
		fmt.Print("\x1b[2J\x1b[H") // clear screen, home cursor
		if err := renderFile(os.Stdout, filename, session, resultsOnly, hl); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
	render()

	// Editors save in bursts (write, chmod, rename). After the first
	// matching event the burst is absorbed before rendering, so the render
	// always reads the newest state.
	const settle = 100 * time.Millisecond
	base := filepath.Base(filename)

	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !absorbBurst(ctx, watcher, base, settle) {
				fmt.Println()
				return nil
			}
			render()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

// absorbBurst consumes follow-up events for the same file until none
// arrive for a full settle window. Returns false when the context ends
// before the burst does.
func absorbBurst(ctx context.Context, watcher *fsnotify.Watcher, base string, settle time.Duration) bool {
	timer := time.NewTimer(settle)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return false

		case event, ok := <-watcher.Events:
			if !ok {
				return true
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(settle)

		case <-timer.C:
			return true
		}
	}
}

func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return true
	}
	return info.Mode()&os.ModeCharDevice != 0
}
