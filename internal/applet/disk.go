package applet

import (
	"context"
	"errors"
	"fmt"

	"github.com/sumant1122/tmux-applet/internal/format"
	"github.com/sumant1122/tmux-applet/internal/monitor"
)

type disk struct{}

func init() {
	register("disk", func() Applet { return &disk{} })
}

func (disk) DefaultAttr() string { return "fg=magenta" }
func (disk) Args() int { return 1 }

// Run prints the used percentage of the filesystem holding args[0] and the
// space left on it.
func (disk) Run(ctx context.Context, src monitor.Source, args []string) (Result, error) {
	if len(args) == 0 || args[0] == "" {
		return Result{}, errors.New("missing path")
	}
	path := args[0]
	u, err := src.Disk(ctx, path)
	if err != nil {
		return Result{}, fmt.Errorf("unable to statfs %q: %w", path, err)
	}
	pct, ok := u.UsedPercent()
	if !ok {
		return Result{}, fmt.Errorf("%q: %w", path, monitor.ErrNoData)
	}
	return Result{Spans: usage(pct, u.Free, format.Bytes)}, nil
}
