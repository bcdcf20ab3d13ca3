package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// CLI helpers pull from `current`; the TUI holds its own copy.
type Theme struct {
	Name                                         string
	Title, Muted, Accent, Success, Error, Output lipgloss.Style
	Key                                          lipgloss.Style
	Border                                       lipgloss.Color
	SymOK, SymFail, Arrow                        string
}

var themes = map[string]Theme{
	"light": {
		Name:     "light",
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1e3a8a")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("#2563eb")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("#15803d")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#b91c1c")).Bold(true),
		Output:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#111827")),
		Key:      lipgloss.NewStyle().Foreground(lipgloss.Color("#7c3aed")),
		Border:   lipgloss.Color("#9ca3af"),
		SymOK:    "✓", SymFail: "✗", Arrow: "→",
	},
	"dark": {
		Name:     "dark",
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cba6f7")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")).Bold(true),
		Output:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cdd6f4")),
		Key:      lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af")),
		Border:   lipgloss.Color("#585b70"),
		SymOK:    "✓", SymFail: "✗", Arrow: "→",
	},
}

var current = themes["light"]

// ThemeFor returns the dark or the light theme.
func ThemeFor(dark bool) Theme {
	if dark {
		return themes["dark"]
	}
	return themes["light"]
}

// SetTheme switches the CLI theme; unknown names fall back to light.
func SetTheme(name string) {
	if t, ok := themes[strings.ToLower(name)]; ok {
		current = t
		return
	}
	current = themes["light"]
}

// Expose what renderers need
func Current() Theme { return current }
