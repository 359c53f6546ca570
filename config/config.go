// Package config loads the display theme. Themes are TOML files with a
// [color] table of hex values and a [font] table; every key is optional
// and falls back to the built-in dark theme.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Theme is the full display configuration.
type Theme struct {
	Color ColorConfig `toml:"color"`
	Font  FontConfig  `toml:"font"`
}

// ColorConfig holds hex colors ("#RRGGBB") per token kind.
type ColorConfig struct {
	Background  string `toml:"background_color"`
	Text        string `toml:"text_color"`
	Number      string `toml:"number_color"`
	Operator    string `toml:"operator_color"`
	Variable    string `toml:"variable_color"`
	Assignment  string `toml:"assignment_color"`
	Result      string `toml:"result_color"`
	Unit        string `toml:"unit_color"`
	Keyword     string `toml:"keyword_color"`
	Placeholder string `toml:"placeholder_color"`
}

// FontConfig names the editor font. Terminal output ignores it, but the
// keys are kept so one theme.toml serves every front end.
type FontConfig struct {
	Family string `toml:"family"`
	Size   int    `toml:"size"`
}

// Defaults returns the built-in dark theme.
func Defaults() *Theme {
	return &Theme{
		Color: ColorConfig{
			Background:  "#1E1E1E",
			Text:        "#ABB2BF",
			Number:      "#D19A66",
			Operator:    "#56B6C2",
			Variable:    "#C678DD",
			Assignment:  "#E06C75",
			Result:      "#98C379",
			Unit:        "#D19A66",
			Keyword:     "#C678DD",
			Placeholder: "#5C6370",
		},
		Font: FontConfig{
			Family: "CaskaydiaCove Nerd Font",
			Size:   14,
		},
	}
}

// SearchPaths returns the probe order for theme.toml: working directory,
// system share directory, then the user's config directory.
func SearchPaths() []string {
	paths := []string{
		"theme.toml",
		"/usr/share/solvee/theme.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "solvee", "theme.toml"))
	}
	return paths
}

// Load probes the search paths and returns the first theme that parses.
// Unreadable or malformed files are skipped; when nothing matches, the
// defaults are returned. Load never fails: a broken theme must not take
// the calculator down.
func Load() *Theme {
	for _, path := range SearchPaths() {
		theme, err := LoadFile(path)
		if err != nil {
			continue
		}
		return theme
	}
	return Defaults()
}

// LoadFile reads one theme file, overlaying its keys onto the defaults.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	theme := Defaults()
	if err := toml.Unmarshal(data, theme); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return theme, nil
}
