package applet

import (
	"context"
	"strconv"

	"github.com/sumant1122/tmux-applet/internal/format"
	"github.com/sumant1122/tmux-applet/internal/monitor"
)

type load struct{}

func init() {
	register("load", func() Applet { return &load{} })
}

func (load) DefaultAttr() string { return "fg=yellow" }
func (load) Args() int { return 0 }

// Run prints the one minute load average.
func (load) Run(ctx context.Context, src monitor.Source, _ []string) (Result, error) {
	avg, err := src.Load(ctx)
	if err != nil {
		return Result{}, err
	}
	return Result{Spans: []format.Span{
		format.Bright(strconv.FormatFloat(avg.One, 'f', 2, 64)),
	}}, nil
}
