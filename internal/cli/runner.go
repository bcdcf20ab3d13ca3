package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/Makepad-fr/pxrem/internal/clip"
	"github.com/Makepad-fr/pxrem/internal/config"
	"github.com/Makepad-fr/pxrem/internal/model"
	"github.com/Makepad-fr/pxrem/internal/store/jsonstore"
	"github.com/Makepad-fr/pxrem/internal/tui"
	"github.com/Makepad-fr/pxrem/internal/ui"
	"github.com/Makepad-fr/pxrem/internal/units"
)

// Options tune behavior from root flags.
type Options struct {
	BaseSize   float64 // used only when BaseSet
	BaseSet    bool
	Reverse    bool // rem→px
	Copy       bool // copy the result to the clipboard
	ConfigPath string

	// Collaborators; nil means the real thing.
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Clipboard clip.Writer
	Prefs     *jsonstore.Store
}

type env struct {
	opt   Options
	cfg   *config.Config
	log   *zap.Logger
	// closeLog flushes and closes the log file
	closeLog func() error
	state units.State
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	opt = withDefaults(opt)
	if len(args) == 0 {
		PrintHelp(opt.Stdout)
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0
	}

	e, code := prepare(opt)
	if code != 0 {
		return code
	}
	defer e.close()
	e.log.Debug("Program started", zap.Strings("args", args))

	switch cmd {
	case "px2rem":
		e.state.Direction = units.PxToRemDir
		return e.doConvert(cmd, a)
	case "rem2px":
		e.state.Direction = units.RemToPxDir
		return e.doConvert(cmd, a)
	case "convert":
		return e.doConvert(cmd, a)
	case "batch":
		return e.doBatch(a)
	case "presets":
		return e.doPresets()
	case "theme":
		if len(a) > 1 {
			e.fail("usage: pxrem theme [dark|light|toggle]")
			return 2
		}
		return e.doTheme(a)
	case "config":
		return e.doConfig()
	case "ui":
		return e.doUI(ctx)
	}

	e.fail("unknown subcommand: " + cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `pxrem - px ⇄ rem converter

Usage:
  pxrem [flags] <subcommand> [args]

Subcommands:
  px2rem <value...>          Convert pixel values to rem
  rem2px <value...>          Convert rem values to pixels
  convert <value...>         Convert in the root direction (px→rem, or rem→px with --reverse)
  batch [text...]            Convert every number in text (reads stdin when no text is given)
  presets                    Show the preset values converted
  theme [dark|light|toggle]  Show or change the dark mode preference
  config                     Print the effective configuration (YAML)
  ui                         Interactive converter

Flags:
  -b, --base <px>            Base font size (default 16)
  -r, --reverse              Convert rem to px
  -c, --copy                 Copy the result to the clipboard
      --config <file>        Load configuration from file (also $%s)
      --no-color             Disable colored output

Examples:
  pxrem px2rem 24
  pxrem -b 10 rem2px 1.6
  pxrem batch "margin: 16px 24px"
  pxrem -r batch < tokens.txt
`, config.EnvConfigPath)
}

func withDefaults(opt Options) Options {
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.Clipboard == nil {
		opt.Clipboard = clip.System{}
	}
	return opt
}

// prepare loads configuration, logging and preferences.
func prepare(opt Options) (*env, int) {
	e := &env{opt: opt}
	cfg, err := config.Load(config.Resolve(opt.ConfigPath))
	if err != nil {
		e.fail("config: " + err.Error())
		return nil, 1
	}
	e.cfg = cfg
	if e.log, e.closeLog, err = cfg.Logging.Prepare(); err != nil {
		e.fail("logging: " + err.Error())
		return nil, 1
	}

	e.state = cfg.State()
	if opt.BaseSet {
		if err := e.state.SetBaseSize(opt.BaseSize); err != nil {
			e.fail(err.Error())
			e.close()
			return nil, 2
		}
	}
	if opt.Reverse {
		e.state.Direction = units.RemToPxDir
	}

	if e.opt.Prefs == nil {
		if s, err := jsonstore.OpenDefault(); err != nil {
			e.log.Warn("Preferences unavailable", zap.Error(err))
		} else {
			e.opt.Prefs = s
		}
	}
	if e.opt.Prefs != nil {
		p, err := e.opt.Prefs.Load()
		if err != nil {
			e.log.Warn("Failed to load dark mode preference", zap.Error(err))
		}
		ui.SetTheme(themeName(p.DarkMode))
	}
	return e, 0
}

func (e *env) close() {
	if err := e.closeLog(); err != nil {
		fmt.Fprintln(e.opt.Stderr, "log close:", err)
	}
}

func (e *env) ok(msg string)   { ui.OK(e.opt.Stdout, msg) }
func (e *env) fail(msg string) { ui.Fail(e.opt.Stderr, msg) }

// -------------- subcommand impls ----------------

func (e *env) doConvert(cmd string, values []string) int {
	if len(values) == 0 {
		e.fail("usage: pxrem " + cmd + " <value...>")
		return 2
	}
	var (
		errs error
		last string
	)
	for _, s := range values {
		v, err := units.ParseValue(s)
		var out float64
		if err == nil {
			out, err = e.state.Convert(v)
		}
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		line := units.Line{Input: v, InputUnit: e.state.InputUnit(), Output: out, OutputUnit: e.state.OutputUnit()}
		fmt.Fprintln(e.opt.Stdout, line.String())
		last = units.FormatNumber(out)
		e.log.Debug("Converted", zap.Stringer("direction", e.state.Direction), zap.Float64("base", e.state.BaseSize),
			zap.Float64("input", v), zap.Float64("output", out))
	}
	if errs != nil {
		for _, err := range multierr.Errors(errs) {
			e.fail(cmd + ": " + err.Error())
		}
		return 2
	}
	return e.copyResult(last)
}

func (e *env) doBatch(words []string) int {
	text := strings.Join(words, " ")
	if len(words) == 0 {
		if f, isFile := e.opt.Stdin.(*os.File); isFile && term.IsTerminal(int(f.Fd())) {
			e.fail("usage: pxrem batch <text...> (or pipe text on stdin)")
			return 2
		}
		b, err := io.ReadAll(e.opt.Stdin)
		if err != nil {
			e.fail("read stdin: " + err.Error())
			return 1
		}
		text = string(b)
	}

	lines, err := e.state.BatchConvert(text)
	if errors.Is(err, units.ErrNoValidNumbers) {
		e.fail("No valid numbers found")
		return 1
	}
	if err != nil {
		e.fail("batch: " + err.Error())
		return 1
	}
	if len(lines) == 0 {
		return 0
	}
	out := units.JoinLines(lines)
	fmt.Fprintln(e.opt.Stdout, out)
	e.log.Debug("Batch converted", zap.Int("count", len(lines)))
	return e.copyResult(out)
}

func (e *env) doPresets() int {
	t := ui.Current()
	header := fmt.Sprintf("%s  %s",
		ui.C(e.opt.Stdout, t.Title, "Presets"),
		ui.C(e.opt.Stdout, t.Muted, fmt.Sprintf("base %spx", units.FormatNumber(e.state.BaseSize))),
	)
	lines := []string{header, ""}
	if len(e.cfg.Presets) == 0 {
		lines = append(lines, ui.C(e.opt.Stdout, t.Muted, "no presets configured"))
	}
	for i, p := range e.cfg.Presets {
		out, err := e.state.Convert(p)
		if err != nil {
			continue
		}
		line := units.Line{Input: p, InputUnit: e.state.InputUnit(), Output: out, OutputUnit: e.state.OutputUnit()}
		lines = append(lines, fmt.Sprintf("%s %s", ui.C(e.opt.Stdout, t.Key, fmt.Sprintf("%d.", i+1)), line))
	}
	ui.Panel(e.opt.Stdout, lines)
	return 0
}

func (e *env) doTheme(a []string) int {
	if e.opt.Prefs == nil {
		e.fail("theme: preferences unavailable")
		return 1
	}
	p, err := e.opt.Prefs.Load()
	if err != nil {
		e.log.Warn("Failed to load dark mode preference", zap.Error(err))
	}
	if len(a) == 0 {
		fmt.Fprintln(e.opt.Stdout, themeName(p.DarkMode))
		return 0
	}
	switch a[0] {
	case "dark":
		p.DarkMode = true
	case "light":
		p.DarkMode = false
	case "toggle":
		p.DarkMode = !p.DarkMode
	default:
		e.fail("usage: pxrem theme [dark|light|toggle]")
		return 2
	}
	if err := e.opt.Prefs.Save(model.Preferences{DarkMode: p.DarkMode}); err != nil {
		e.fail("save: " + err.Error())
		return 1
	}
	ui.SetTheme(themeName(p.DarkMode))
	e.ok("theme: " + themeName(p.DarkMode))
	return 0
}

func (e *env) doConfig() int {
	b, err := config.Dump(e.cfg)
	if err != nil {
		e.fail(err.Error())
		return 1
	}
	fmt.Fprint(e.opt.Stdout, string(b))
	return 0
}

func (e *env) doUI(ctx context.Context) int {
	err := tui.Run(ctx, tui.Options{
		State:            e.state,
		Presets:          e.cfg.Presets,
		AutoCopy:         e.cfg.AutoCopy,
		CopyDelay:        e.cfg.CopyDelay,
		FeedbackDuration: e.cfg.FeedbackDuration,
		Clipboard:        e.opt.Clipboard,
		Prefs:            e.opt.Prefs,
		Log:              e.log,
	})
	if err != nil {
		e.fail("tui: " + err.Error())
		return 1
	}
	return 0
}

// copyResult honours --copy. The result is already printed, a failed copy
// only changes the exit code.
func (e *env) copyResult(text string) int {
	if !e.opt.Copy || text == "" {
		return 0
	}
	if err := e.opt.Clipboard.WriteAll(text); err != nil {
		e.log.Warn("Failed to copy", zap.Error(err))
		e.fail("Copy failed: " + err.Error())
		return 1
	}
	ui.OK(e.opt.Stderr, "Copied!")
	return 0
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
