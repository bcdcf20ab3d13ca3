package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestThemeFor(t *testing.T) {
	if got := ThemeFor(true).Name; got != "dark" {
		t.Errorf("ThemeFor(true) = %q, want dark", got)
	}
	if got := ThemeFor(false).Name; got != "light" {
		t.Errorf("ThemeFor(false) = %q, want light", got)
	}
}

func TestSetTheme(t *testing.T) {
	defer SetTheme("light")
	SetTheme("DARK")
	if Current().Name != "dark" {
		t.Errorf("Current() = %q after SetTheme(DARK)", Current().Name)
	}
	SetTheme("neon")
	if Current().Name != "light" {
		t.Errorf("Current() = %q after unknown theme, want light", Current().Name)
	}
}

func TestStatusPlainWhenNotTTY(t *testing.T) {
	var buf bytes.Buffer
	OK(&buf, "copied")
	Fail(&buf, "copy failed")
	want := "✓ copied\n✗ copy failed\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPanelPlainWhenNotTTY(t *testing.T) {
	var buf bytes.Buffer
	Panel(&buf, []string{"a", "b"})
	if buf.String() != "a\nb\n" {
		t.Errorf("Panel() = %q", buf.String())
	}
}

func TestPanelString(t *testing.T) {
	out := PanelString(ThemeFor(false), []string{"16px → 1rem"})
	if !strings.Contains(out, "16px → 1rem") || !strings.Contains(out, "╭") {
		t.Errorf("PanelString() = %q", out)
	}
}
