package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PanelString frames lines in a rounded box drawn with the theme's border colour.
func PanelString(t Theme, lines []string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// Panel draws a framed box using the current theme.
func Panel(w io.Writer, lines []string) {
	if disableColor || !(forceColor || isTTY(w)) {
		fmt.Fprintln(w, strings.Join(lines, "\n"))
		return
	}
	fmt.Fprintln(w, PanelString(current, lines))
}
