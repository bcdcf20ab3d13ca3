// Package tui is the interactive converter. It owns input handling and timing
// (auto-copy debounce, feedback expiry); conversions are delegated to units.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Makepad-fr/pxrem/internal/clip"
	"github.com/Makepad-fr/pxrem/internal/model"
	"github.com/Makepad-fr/pxrem/internal/store/jsonstore"
	"github.com/Makepad-fr/pxrem/internal/ui"
	"github.com/Makepad-fr/pxrem/internal/units"
)

// Options configure one TUI session.
type Options struct {
	State            units.State
	Presets          []float64
	AutoCopy         bool
	CopyDelay        time.Duration
	FeedbackDuration time.Duration
	Clipboard        clip.Writer
	Prefs            *jsonstore.Store // nil disables the dark-mode preference
	Log              *zap.Logger
}

type field int

const (
	fieldValue field = iota
	fieldBase
	fieldBatch
	fieldCount
)

// autoCopyMsg fires after the typing pause; only the latest seq copies.
type autoCopyMsg struct{ seq int }

// feedbackExpiredMsg hides the copy feedback it belongs to.
type feedbackExpiredMsg struct{ seq int }

type modelTUI struct {
	opt   Options
	log   *zap.Logger
	state units.State
	keys  keyMap
	help  help.Model

	value textinput.Model
	base  textinput.Model
	batch textarea.Model
	focus field

	output   string // last successful conversion, as displayed and copied
	invalid  bool   // value field failed to parse
	batchOut string

	copySeq     int
	feedback    string
	feedbackOK  bool
	feedbackSeq int

	dark  bool
	theme ui.Theme
	width int
}

func newModel(opt Options) modelTUI {
	if opt.Log == nil {
		opt.Log = zap.NewNop()
	}
	if opt.Clipboard == nil {
		opt.Clipboard = clip.System{}
	}
	if opt.State.BaseSize == 0 {
		opt.State = units.NewState()
	}
	m := modelTUI{
		opt:   opt,
		log:   opt.Log,
		state: opt.State,
		keys:  newKeyMap(len(opt.Presets)),
		help:  help.New(),
		width: 80,
	}

	m.value = textinput.New()
	m.value.Prompt = "› "
	m.value.CharLimit = 32
	m.value.Placeholder = placeholder(m.state.Direction)
	m.value.Focus()

	m.base = textinput.New()
	m.base.Prompt = "› "
	m.base.CharLimit = 12
	m.base.SetValue(units.FormatNumber(m.state.BaseSize))

	m.batch = textarea.New()
	m.batch.Placeholder = "Paste CSS or a list of values…"
	m.batch.ShowLineNumbers = false
	m.batch.CharLimit = 0
	m.batch.SetHeight(4)
	m.batch.SetWidth(m.width - 6)

	if opt.Prefs != nil {
		p, err := opt.Prefs.Load()
		if err != nil {
			m.log.Warn("Failed to load dark mode preference", zap.Error(err))
		}
		m.dark = p.DarkMode
	}
	m.theme = ui.ThemeFor(m.dark)
	return m
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(ctx context.Context, opt Options) error {
	m := newModel(opt)
	m.log.Debug("TUI started",
		zap.Stringer("direction", m.state.Direction),
		zap.Float64("base", m.state.BaseSize),
		zap.Bool("dark", m.dark))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func placeholder(d units.Direction) string {
	if d == units.RemToPxDir {
		return "e.g., 1"
	}
	return "e.g., 16"
}

func (m modelTUI) Init() tea.Cmd { return textinput.Blink }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.batch.SetWidth(max(msg.Width-6, 20))
		return m, nil

	case autoCopyMsg:
		if msg.seq != m.copySeq || m.value.Value() == "" || m.output == "" {
			return m, nil
		}
		return m, m.copyCmd(m.output)

	case clip.Result:
		return m, m.showFeedback(msg)

	case feedbackExpiredMsg:
		if msg.seq == m.feedbackSeq {
			m.feedback = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// cursor blinks and the like go to whichever field has focus
	var cmd tea.Cmd
	switch m.focus {
	case fieldValue:
		m.value, cmd = m.value.Update(msg)
	case fieldBase:
		m.base, cmd = m.base.Update(msg)
	case fieldBatch:
		m.batch, cmd = m.batch.Update(msg)
	}
	return m, cmd
}

func (m modelTUI) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.toggleDirection()
		return m, nil
	case key.Matches(msg, m.keys.Dark):
		m.toggleDark()
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		return m, m.clear()
	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus((m.focus + 1) % fieldCount)
	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	}
	if i, ok := presetIndex(msg, len(m.opt.Presets)); ok {
		return m, m.applyPreset(i)
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldValue:
		if key.Matches(msg, m.keys.Convert) {
			m.copySeq++ // supersede a pending auto-copy
			return m, m.convert(true)
		}
		before := m.value.Value()
		m.value, cmd = m.value.Update(msg)
		if m.value.Value() != before {
			cmd = tea.Batch(cmd, m.onValueInput())
		}
	case fieldBase:
		if key.Matches(msg, m.keys.Convert) {
			return m, m.applyBase()
		}
		m.base, cmd = m.base.Update(msg)
	case fieldBatch:
		before := m.batch.Value()
		m.batch, cmd = m.batch.Update(msg)
		if m.batch.Value() != before {
			m.recomputeBatch()
		}
	}
	return m, cmd
}

// convert parses the value field and refreshes the output. With andCopy set the
// result goes to the clipboard right away.
func (m *modelTUI) convert(andCopy bool) tea.Cmd {
	v, err := units.ParseValue(m.value.Value())
	var res float64
	if err == nil {
		res, err = m.state.Convert(v)
	}
	if err != nil {
		m.invalid = true
		m.output = ""
		m.log.Debug("Conversion rejected", zap.String("input", m.value.Value()), zap.Error(err))
		return nil
	}
	m.invalid = false
	m.output = units.FormatNumber(res)
	m.log.Debug("Converted",
		zap.Stringer("direction", m.state.Direction),
		zap.Float64("input", v),
		zap.String("output", m.output))
	if andCopy {
		return m.copyCmd(m.output)
	}
	return nil
}

// onValueInput converts on every edit and schedules the delayed copy.
func (m *modelTUI) onValueInput() tea.Cmd {
	m.copySeq++
	if m.value.Value() == "" {
		m.output = ""
		m.invalid = false
		return nil
	}
	m.convert(false)
	if !m.opt.AutoCopy || m.output == "" {
		return nil
	}
	seq := m.copySeq
	return tea.Tick(m.opt.CopyDelay, func(time.Time) tea.Msg { return autoCopyMsg{seq: seq} })
}

// applyBase commits the base-size field. Invalid input reverts the field; only
// an actual change re-converts.
func (m *modelTUI) applyBase() tea.Cmd {
	prev := m.state.BaseSize
	err := m.state.ParseBaseSize(m.base.Value())
	m.base.SetValue(units.FormatNumber(m.state.BaseSize))
	if err != nil {
		m.log.Debug("Base size rejected", zap.Error(err))
		return nil
	}
	if m.state.BaseSize == prev {
		return nil
	}
	m.recomputeBatch()
	if m.value.Value() == "" {
		return nil
	}
	m.copySeq++
	return m.convert(true)
}

func (m *modelTUI) applyPreset(i int) tea.Cmd {
	focusCmd := m.setFocus(fieldValue)
	m.value.SetValue(units.FormatNumber(m.opt.Presets[i]))
	m.value.CursorEnd()
	m.copySeq++
	return tea.Batch(focusCmd, m.convert(true))
}

func (m *modelTUI) toggleDirection() {
	m.state.Toggle()
	m.value.SetValue("")
	m.value.Placeholder = placeholder(m.state.Direction)
	m.output = ""
	m.invalid = false
	m.copySeq++
	m.recomputeBatch()
}

func (m *modelTUI) clear() tea.Cmd {
	m.value.SetValue("")
	m.output = ""
	m.invalid = false
	m.copySeq++
	return m.setFocus(fieldValue)
}

func (m *modelTUI) toggleDark() {
	m.dark = !m.dark
	m.theme = ui.ThemeFor(m.dark)
	if m.opt.Prefs == nil {
		return
	}
	if err := m.opt.Prefs.Save(model.Preferences{DarkMode: m.dark}); err != nil {
		m.log.Warn("Failed to save dark mode preference", zap.Error(err))
	}
}

// setFocus moves focus, committing the base size when leaving its field.
func (m *modelTUI) setFocus(f field) tea.Cmd {
	if f == m.focus {
		return nil
	}
	var cmds []tea.Cmd
	switch m.focus {
	case fieldValue:
		m.value.Blur()
	case fieldBase:
		m.base.Blur()
		cmds = append(cmds, m.applyBase())
	case fieldBatch:
		m.batch.Blur()
	}
	m.focus = f
	switch f {
	case fieldValue:
		cmds = append(cmds, m.value.Focus())
	case fieldBase:
		cmds = append(cmds, m.base.Focus())
	case fieldBatch:
		cmds = append(cmds, m.batch.Focus())
	}
	return tea.Batch(cmds...)
}

func (m *modelTUI) recomputeBatch() {
	lines, err := m.state.BatchConvert(m.batch.Value())
	switch {
	case errors.Is(err, units.ErrNoValidNumbers):
		m.batchOut = "No valid numbers found"
	case err != nil:
		m.batchOut = err.Error()
	default:
		m.batchOut = units.JoinLines(lines)
	}
}

func (m *modelTUI) copyCmd(text string) tea.Cmd {
	m.log.Debug("Copying to clipboard", zap.String("text", text))
	return clip.Cmd(m.opt.Clipboard, text)
}

func (m *modelTUI) showFeedback(res clip.Result) tea.Cmd {
	if res.Err != nil {
		m.log.Warn("Failed to copy", zap.Error(res.Err))
		m.feedback, m.feedbackOK = "✗ Copy failed", false
	} else {
		m.feedback, m.feedbackOK = "✓ Copied!", true
	}
	m.feedbackSeq++
	seq := m.feedbackSeq
	return tea.Tick(m.opt.FeedbackDuration, func(time.Time) tea.Msg { return feedbackExpiredMsg{seq: seq} })
}
