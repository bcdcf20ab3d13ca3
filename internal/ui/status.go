package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	forceColor   bool
	disableColor bool
)

func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// C renders s with style when w is a terminal (or colour is forced).
func C(w io.Writer, style lipgloss.Style, s string) string {
	if disableColor {
		return s
	}
	if forceColor || isTTY(w) {
		return style.Render(s)
	}
	return s
}

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, C(w, current.Success, current.SymOK+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, C(w, current.Error, current.SymFail+" "+msg))
}
