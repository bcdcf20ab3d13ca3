package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/Makepad-fr/pxrem/internal/cli"
	"github.com/Makepad-fr/pxrem/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	base := pflag.Float64P("base", "b", 16, "base font size in px")
	reverse := pflag.BoolP("reverse", "r", false, "convert rem to px")
	copyOut := pflag.BoolP("copy", "c", false, "copy the result to the clipboard")
	cfgPath := pflag.String("config", "", "load configuration from `FILE` (YAML)")
	noColor := pflag.Bool("no-color", false, "disable colored output")
	pflag.Usage = func() { cli.PrintHelp(os.Stderr) }
	// stop at the subcommand so negative values are not taken for flags
	pflag.CommandLine.SetInterspersed(false)
	pflag.Parse()

	ui.SetColorForcing(false, *noColor || os.Getenv("NO_COLOR") != "")

	// Hand the remaining args to the CLI runner.
	args := pflag.Args()
	if len(args) == 0 {
		cli.PrintHelp(os.Stdout)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, args, cli.Options{
		BaseSize:   *base,
		BaseSet:    pflag.CommandLine.Changed("base"),
		Reverse:    *reverse,
		Copy:       *copyOut,
		ConfigPath: *cfgPath,
	})
	stop()
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
