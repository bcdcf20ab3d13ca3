// Package clip copies conversion results to the system clipboard.
package clip

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnsupported = errors.New("clipboard unavailable")

// Writer puts text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System is the OS clipboard (xclip/xsel/wl-copy on Linux, pbcopy on macOS).
type System struct{}

func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}

// Func adapts a plain function to Writer.
type Func func(string) error

func (f Func) WriteAll(text string) error { return f(text) }

// Result reports the outcome of one copy.
type Result struct {
	Text string
	Err  error
}

// Cmd performs the copy outside the update loop and delivers a Result.
func Cmd(w Writer, text string) tea.Cmd {
	return func() tea.Msg {
		return Result{Text: text, Err: w.WriteAll(text)}
	}
}
