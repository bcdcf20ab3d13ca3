package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Convert key.Binding
	Toggle  key.Binding
	Clear   key.Binding
	Dark    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Preset  key.Binding
	Quit    key.Binding
}

func newKeyMap(presets int) keyMap {
	presetKeys := make([]string, 0, presets)
	for i := 1; i <= presets; i++ {
		presetKeys = append(presetKeys, "alt+"+strconv.Itoa(i))
	}
	preset := key.NewBinding(key.WithKeys(presetKeys...), key.WithHelp("alt+1…"+strconv.Itoa(presets), "preset"))
	if presets == 0 {
		preset.SetEnabled(false)
	}
	return keyMap{
		Convert: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "convert & copy")),
		Toggle:  key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "px ⇄ rem")),
		Clear:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Dark:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "dark mode")),
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Preset:  preset,
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Convert, k.Toggle, k.Clear, k.Dark, k.Next, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Convert, k.Toggle, k.Clear},
		{k.Dark, k.Next, k.Prev},
		{k.Preset, k.Quit},
	}
}

// presetIndex maps alt+N to the zero-based preset slot.
func presetIndex(msg tea.KeyMsg, presets int) (int, bool) {
	s, ok := strings.CutPrefix(msg.String(), "alt+")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > presets {
		return 0, false
	}
	return n - 1, true
}
