package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sumant1122/tmux-applet/internal/applet"
	"github.com/sumant1122/tmux-applet/internal/config"
	"github.com/sumant1122/tmux-applet/internal/format"
	"github.com/sumant1122/tmux-applet/internal/monitor"
)

const version = "0.2.0"

// Exit codes.
const (
	exitOK         = 0
	exitConfig     = 1
	exitAttributes = 2
)

type options struct {
	config   string
	settings string
	format   string
	source   string
	procRoot string
	verbose  bool
	version  bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

func newFlagSet(stderr io.Writer, opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet("tmux-applet", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.config, "config", "", "applet script (default ~/.tmux-applet.conf, then /etc/tmux-applet.conf)")
	fs.StringVar(&opts.settings, "settings", "", "settings file in TOML")
	fs.StringVar(&opts.format, "format", "", `output format: "tmux" or "ansi"`)
	fs.StringVar(&opts.source, "source", "", `statistics source: "auto", "procfs" or "portable"`)
	fs.StringVar(&opts.procRoot, "proc", "", "mount point of the proc filesystem")
	fs.BoolVar(&opts.verbose, "v", false, "report why an applet printed nothing")
	fs.BoolVar(&opts.version, "version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `tmux-applet - status line for tmux

USAGE:
  tmux-applet [options]          run the applets listed in the config
  tmux-applet [options] l|m|r    run load, memory or raid alone
  tmux-applet [options] d [path] run disk alone (path defaults to /)

APPLETS: %s

OPTIONS:
`, strings.Join(applet.Names(), ", "))
		fs.PrintDefaults()
	}
	return fs
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opts options
	logger := log.New(stderr, "tmux-applet: ", 0)

	fs := newFlagSet(stderr, &opts)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitConfig
	}
	if opts.version {
		fmt.Fprintf(stdout, "tmux-applet %s\n", version)
		return exitOK
	}

	settings, used, err := config.LoadSettings(opts.settings)
	if err != nil {
		logger.Printf("settings: %v", err)
		return exitConfig
	}
	if opts.verbose && used != "" {
		logger.Printf("settings: using %s", used)
	}
	applyFlags(&settings, opts)

	renderer, ok := format.NewRenderer(settings.Format)
	if !ok {
		logger.Printf("unknown format %q", settings.Format)
		return exitConfig
	}
	src, err := monitor.New(settings.Source, settings.ProcRoot)
	if err != nil {
		logger.Print(err)
		return exitConfig
	}

	invs, code := invocations(fs.Args(), settings, logger)
	if code != exitOK {
		return code
	}

	runner := &applet.Runner{Source: src, Defaults: settings.Defaults}
	if opts.verbose {
		runner.Log = logger
	}
	line := format.NewLine(renderer, settings.Separator)
	runner.Run(ctx, invs, line)

	fmt.Fprintln(stdout, line.String())
	return exitOK
}

func applyFlags(s *config.Settings, opts options) {
	if opts.config != "" {
		s.Config = opts.config
	}
	if opts.format != "" {
		s.Format = opts.format
	}
	if opts.source != "" {
		s.Source = opts.source
	}
	if opts.procRoot != "" {
		s.ProcRoot = opts.procRoot
	}
}

// invocations comes from the single letter command when one is given,
// from the applet script otherwise.
func invocations(args []string, s config.Settings, logger *log.Logger) ([]applet.Invocation, int) {
	if len(args) > 0 {
		inv, err := applet.Shorthand(args[0], args[1:])
		if err != nil {
			logger.Print(err)
			return nil, exitConfig
		}
		return []applet.Invocation{inv}, exitOK
	}

	f, err := config.OpenScript(config.ScriptPaths(s.Config))
	if err != nil {
		logger.Print(err)
		return nil, exitConfig
	}
	defer f.Close()

	script, err := applet.Parse(f)
	if err != nil {
		logger.Printf("%s: %v", f.Name(), err)
		if errors.Is(err, applet.ErrBadAttributes) {
			return nil, exitAttributes
		}
		return nil, exitConfig
	}
	for _, w := range script.Warnings {
		logger.Printf("%s: %s", f.Name(), w)
	}
	return script.Invocations, exitOK
}
