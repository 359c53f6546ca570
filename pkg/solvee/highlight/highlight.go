// Package highlight renders calculator lines with 24-bit ANSI colors:
// numbers, operators, the assignment marker, conversion keywords, unit
// names and assignment targets each get their own style.
package highlight

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Palette holds the hex colors ("#RRGGBB") for each token kind. Invalid
// hex strings disable the corresponding rule rather than erroring.
type Palette struct {
	Number     string
	Operator   string
	Assignment string
	Keyword    string
	Unit       string
	Variable   string
	Result     string
	Error      string
}

// DefaultPalette is the built-in dark theme.
func DefaultPalette() Palette {
	return Palette{
		Number:     "#D19A66",
		Operator:   "#56B6C2",
		Assignment: "#E06C75",
		Keyword:    "#C678DD",
		Unit:       "#D19A66",
		Variable:   "#C678DD",
		Result:     "#98C379",
		Error:      "#E06C75",
	}
}

const reset = "\x1b[0m"

// rule colors one submatch group of a pattern. Rules apply in order and
// later rules win on overlap, so the assignment-target rule repaints what
// the unit rules may have claimed.
type rule struct {
	re    *regexp.Regexp
	group int
	sgr   string
}

// Highlighter applies a fixed rule set for one palette. A nil Highlighter
// is valid and passes text through unchanged, which is how color is
// switched off.
type Highlighter struct {
	rules     []rule
	resultSGR string
	errorSGR  string
}

var (
	numberRE     = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)
	operatorRE   = regexp.MustCompile(`[-+*/%^()]`)
	assignRE     = regexp.MustCompile(`==`)
	keywordRE    = regexp.MustCompile(`\b(?:to|in)\b`)
	unitAfterNum = regexp.MustCompile(`\d\s*([a-zA-Z°]+)`)
	unitBeforeKw = regexp.MustCompile(`([a-zA-Z°]+)\s+(?:to|in)\b`)
	unitAfterKw  = regexp.MustCompile(`\b(?:to|in)\s+([a-zA-Z°]+)`)
	targetRE     = regexp.MustCompile(`==\s*([a-zA-Z_][a-zA-Z0-9_]*)`)
)

// New builds a Highlighter for the palette.
func New(p Palette) *Highlighter {
	h := &Highlighter{
		resultSGR: sgr(p.Result, false, false),
		errorSGR:  sgr(p.Error, true, false),
	}

	add := func(re *regexp.Regexp, group int, code string) {
		if code == "" {
			return
		}
		h.rules = append(h.rules, rule{re: re, group: group, sgr: code})
	}

	add(numberRE, 0, sgr(p.Number, false, false))
	add(operatorRE, 0, sgr(p.Operator, false, false))
	add(assignRE, 0, sgr(p.Assignment, true, false))
	add(keywordRE, 0, sgr(p.Keyword, true, false))
	add(unitAfterNum, 1, sgr(p.Unit, false, true))
	add(unitBeforeKw, 1, sgr(p.Unit, false, true))
	add(unitAfterKw, 1, sgr(p.Unit, false, true))
	add(targetRE, 1, sgr(p.Variable, false, true))

	return h
}

// Line colors one source line.
func (h *Highlighter) Line(s string) string {
	if h == nil || s == "" || len(h.rules) == 0 {
		return s
	}

	// Last-writer-wins ownership per byte. Matches always cover whole
	// runes, so style changes land on rune boundaries.
	owners := make([]int, len(s))
	for i := range owners {
		owners[i] = -1
	}
	for ri, r := range h.rules {
		for _, m := range r.re.FindAllStringSubmatchIndex(s, -1) {
			start, end := m[2*r.group], m[2*r.group+1]
			if start < 0 {
				continue
			}
			for i := start; i < end; i++ {
				owners[i] = ri
			}
		}
	}

	var b strings.Builder
	for i := 0; i < len(s); {
		j := i
		for j < len(s) && owners[j] == owners[i] {
			j++
		}
		if owners[i] >= 0 {
			b.WriteString(h.rules[owners[i]].sgr)
			b.WriteString(s[i:j])
			b.WriteString(reset)
		} else {
			b.WriteString(s[i:j])
		}
		i = j
	}
	return b.String()
}

// Result colors a result-column string. Errors get the error style.
func (h *Highlighter) Result(s string) string {
	if h == nil || s == "" {
		return s
	}
	code := h.resultSGR
	if strings.HasPrefix(s, "error:") {
		code = h.errorSGR
	}
	if code == "" {
		return s
	}
	return code + s + reset
}

// sgr builds a 24-bit foreground escape, optionally bold or italic.
// An unparsable hex color yields "".
func sgr(hex string, bold, italic bool) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return ""
	}
	var attrs []string
	if bold {
		attrs = append(attrs, "1")
	}
	if italic {
		attrs = append(attrs, "3")
	}
	attrs = append(attrs, fmt.Sprintf("38;2;%d;%d;%d", r, g, b))
	return "\x1b[" + strings.Join(attrs, ";") + "m"
}

func parseHex(hex string) (r, g, b int, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	var parts [3]uint64
	for i := range parts {
		v, err := strconv.ParseUint(hex[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return 0, 0, 0, false
		}
		parts[i] = v
	}
	return int(parts[0]), int(parts[1]), int(parts[2]), true
}
