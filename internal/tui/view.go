package tui

import (
	"fmt"
	"strings"

	"github.com/Makepad-fr/pxrem/internal/units"
	"github.com/Makepad-fr/pxrem/internal/ui"
)

func (m modelTUI) View() string {
	t := m.theme
	in, out := m.state.InputUnit(), m.state.OutputUnit()

	var lines []string
	lines = append(lines,
		t.Title.Render(fmt.Sprintf("Convert %s to %s", in, out))+"  "+t.Muted.Render("ctrl+k to toggle"),
		"",
		m.label(fieldValue, "Enter value in "+in),
		m.value.View(),
	)
	switch {
	case m.invalid:
		lines = append(lines, t.Error.Render("not a number"))
	case m.output != "":
		lines = append(lines, t.Muted.Render(t.Arrow+" ")+t.Output.Render(m.output+out))
	default:
		lines = append(lines, "")
	}

	if m.feedback != "" {
		style := t.Success
		if !m.feedbackOK {
			style = t.Error
		}
		lines = append(lines, style.Render(m.feedback))
	} else {
		lines = append(lines, "")
	}

	lines = append(lines,
		m.label(fieldBase, "Base font size (px)"),
		m.base.View(),
		"",
		m.presetLine(),
		"",
		m.label(fieldBatch, fmt.Sprintf("Batch convert (%s %s %s)", in, t.Arrow, out)),
		m.batch.View(),
	)
	if m.batchOut != "" {
		lines = append(lines, t.Muted.Render(m.batchOut))
	}
	lines = append(lines, "", m.help.View(m.keys))
	return ui.PanelString(t, lines)
}

func (m modelTUI) label(f field, text string) string {
	if m.focus == f {
		return m.theme.Accent.Render(text)
	}
	return m.theme.Muted.Render(text)
}

func (m modelTUI) presetLine() string {
	if len(m.opt.Presets) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m.opt.Presets))
	for i, p := range m.opt.Presets {
		parts = append(parts, fmt.Sprintf("%s %s",
			m.theme.Key.Render(fmt.Sprintf("alt+%d", i+1)), units.FormatNumber(p)))
	}
	return m.theme.Muted.Render("Presets  ") + strings.Join(parts, "  ")
}
