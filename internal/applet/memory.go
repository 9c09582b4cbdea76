package applet

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sumant1122/tmux-applet/internal/format"
	"github.com/sumant1122/tmux-applet/internal/monitor"
)

type memory struct{}

func init() {
	register("memory", func() Applet { return &memory{} })
}

func (memory) DefaultAttr() string { return "fg=green" }
func (memory) Args() int { return 0 }

// Run prints the percentage of RAM in use and the amount still free,
// counting buffers and page cache as free.
func (memory) Run(ctx context.Context, src monitor.Source, _ []string) (Result, error) {
	info, err := src.Memory(ctx)
	if err != nil {
		return Result{}, err
	}
	pct, ok := info.UsedPercent()
	if !ok {
		return Result{}, fmt.Errorf("implausible totals %+v: %w", info, monitor.ErrNoData)
	}
	return Result{Spans: usage(pct, info.Available(), format.Kilobytes)}, nil
}

// usage renders "42%," followed by the free amount.
func usage(pct, free uint64, mag format.Magnitude) []format.Span {
	spans := []format.Span{
		format.Bright(strconv.FormatUint(pct, 10)),
		format.Dim("%,"),
	}
	return append(spans, format.Size(free, mag)...)
}
