// Package applet runs the status line applets named in a config script.
package applet

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/sumant1122/tmux-applet/internal/format"
	"github.com/sumant1122/tmux-applet/internal/monitor"
)

// Applet is one stat-reading unit of the status line.
type Applet interface {
	// DefaultAttr is the style used when the config gives none
	DefaultAttr() string
	// Args is the number of config tokens consumed after the name
	Args() int
	// Run reads the statistic and returns what to print
	Run(ctx context.Context, src monitor.Source, args []string) (Result, error)
}

// Result is the output of one applet. Attr, when set, replaces the applet's
// default attributes for this run only.
type Result struct {
	Attr  string
	Spans []format.Span
}

type factory func() Applet

var registry = make(map[string]factory)

func register(name string, f factory) {
	if _, dup := registry[name]; dup {
		panic("applet " + name + " duplicated in registry")
	}
	registry[name] = f
}

// Lookup returns a new instance of the named applet.
func Lookup(name string) (Applet, bool) {
	create, ok := registry[name]
	if !ok {
		return nil, false
	}
	return create(), true
}

// Names lists the registered applets in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invocation is one applet call read from the config.
type Invocation struct {
	Name   string
	Applet Applet
	Args   []string
	Attr   string
	Line   int
}

// Runner executes invocations in order against a Source.
type Runner struct {
	Source monitor.Source
	// Defaults overrides DefaultAttr per applet name.
	Defaults map[string]string
	// Log receives the reason an applet printed nothing. Nil keeps failures silent.
	Log *log.Logger
}

func (r *Runner) logf(msg string, v ...any) {
	if r.Log != nil {
		r.Log.Printf(msg, v...)
	}
}

// Run appends the output of every invocation to line. An applet whose read
// fails is skipped and the rest still run.
func (r *Runner) Run(ctx context.Context, invs []Invocation, line *format.Line) {
	for _, inv := range invs {
		a := inv.Applet
		res, err := a.Run(ctx, r.Source, inv.Args)
		if err != nil {
			r.logf("%s: %v", inv.Name, err)
			continue
		}
		def := a.DefaultAttr()
		if d, ok := r.Defaults[inv.Name]; ok {
			def = d
		}
		if res.Attr != "" {
			def = res.Attr
		}
		line.Add(inv.Attr, def, res.Spans...)
	}
}

// Shorthand builds the invocation for the single letter command line form:
// l (load), m (memory), d [path] (disk, defaults to /), r (raid).
func Shorthand(letter string, args []string) (Invocation, error) {
	var (
		name string
		argv []string
	)
	switch letter {
	case "l":
		name = "load"
	case "m":
		name = "memory"
	case "d":
		argv = []string{"/"}
		if len(args) > 0 {
			argv = args[:1]
		}
		name = "disk"
	case "r":
		name = "raid"
	default:
		return Invocation{}, fmt.Errorf("unknown command %q", letter)
	}
	a, _ := Lookup(name)
	return Invocation{Name: name, Applet: a, Args: argv}, nil
}
