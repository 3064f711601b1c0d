package theme

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	errUtils "github.com/cloudposse/ticktock/errors"
)

// themes.json carries a subset of the terminal themes from https://github.com/charmbracelet/vhs
// (MIT License, Copyright (c) 2022 Charmbracelet, Inc) plus the two native ticktock palettes.
// Attributions are kept in the meta.credits field.
//
//go:embed themes.json
var themesJSON []byte

// Names of the built-in palettes used when no theme is configured.
const (
	DefaultDarkTheme  = "ticktock"
	DefaultLightTheme = "ticktock light"
)

// Credit represents theme author information.
type Credit struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// Meta holds theme metadata.
type Meta struct {
	IsDark  bool      `json:"isDark"`
	Credits *[]Credit `json:"credits,omitempty"`
}

// Theme represents a terminal color theme.
type Theme struct {
	Name          string `json:"name"`
	Black         string `json:"black"`
	Red           string `json:"red"`
	Green         string `json:"green"`
	Yellow        string `json:"yellow"`
	Blue          string `json:"blue"`
	Magenta       string `json:"magenta"`
	Cyan          string `json:"cyan"`
	White         string `json:"white"`
	BrightBlack   string `json:"brightBlack"`
	BrightRed     string `json:"brightRed"`
	BrightGreen   string `json:"brightGreen"`
	BrightYellow  string `json:"brightYellow"`
	BrightBlue    string `json:"brightBlue"`
	BrightMagenta string `json:"brightMagenta"`
	BrightCyan    string `json:"brightCyan"`
	BrightWhite   string `json:"brightWhite"`
	Background    string `json:"background"`
	Foreground    string `json:"foreground"`
	Cursor        string `json:"cursor"`
	Selection     string `json:"selection"`
	Meta          Meta   `json:"meta"`
}

// RecommendedThemes is a curated list of themes that render the clock faces well.
var RecommendedThemes = []string{
	DefaultDarkTheme,
	DefaultLightTheme,
	"Dracula",
	"Catppuccin Mocha",
	"Catppuccin Latte",
	"Tokyo Night",
	"Nord",
}

// IsRecommended checks if a theme is in the recommended list.
func IsRecommended(themeName string) bool {
	for _, recommended := range RecommendedThemes {
		if strings.EqualFold(recommended, themeName) {
			return true
		}
	}
	return false
}

// LoadThemes loads all themes from the embedded JSON file.
func LoadThemes() ([]*Theme, error) {
	var themes []*Theme
	if err := json.Unmarshal(themesJSON, &themes); err != nil {
		return nil, fmt.Errorf("%w: %w", errUtils.ErrInvalidThemes, err)
	}
	return themes, nil
}

// SortThemes sorts themes alphabetically by name.
func SortThemes(themes []*Theme) {
	sort.Slice(themes, func(i, j int) bool {
		return strings.ToLower(themes[i].Name) < strings.ToLower(themes[j].Name)
	})
}

// Registry holds the loaded themes keyed by lower-cased name.
type Registry struct {
	themes map[string]*Theme
	sorted []*Theme
}

// NewRegistry loads the embedded themes into a registry.
func NewRegistry() (*Registry, error) {
	themes, err := LoadThemes()
	if err != nil {
		return nil, err
	}
	SortThemes(themes)

	r := &Registry{
		themes: make(map[string]*Theme, len(themes)),
		sorted: themes,
	}
	for _, t := range themes {
		r.themes[strings.ToLower(t.Name)] = t
	}
	return r, nil
}

// Get returns the theme with the given name (case-insensitive).
func (r *Registry) Get(name string) (*Theme, bool) {
	t, ok := r.themes[strings.ToLower(name)]
	return t, ok
}

// GetOrDefault returns the named theme, falling back to the default dark palette.
func (r *Registry) GetOrDefault(name string) *Theme {
	if t, ok := r.Get(name); ok {
		return t
	}
	return r.themes[DefaultDarkTheme]
}

// List returns all themes sorted by name.
func (r *Registry) List() []*Theme {
	return r.sorted
}

// ForMode resolves the theme to use for a mode.
// An explicitly configured theme wins; otherwise the native palette for the mode is used.
func (r *Registry) ForMode(configured string, mode Mode) *Theme {
	if configured != "" {
		if t, ok := r.Get(configured); ok {
			return t
		}
	}
	if mode == Light {
		return r.GetOrDefault(DefaultLightTheme)
	}
	return r.GetOrDefault(DefaultDarkTheme)
}
