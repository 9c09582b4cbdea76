package applet

import (
	"context"
	"strconv"

	"github.com/sumant1122/tmux-applet/internal/format"
	"github.com/sumant1122/tmux-applet/internal/monitor"
)

const raidDegradedAttr = "fg=red"

type raid struct{}

func init() {
	register("raid", func() Applet { return &raid{} })
}

func (raid) DefaultAttr() string { return "fg=cyan" }
func (raid) Args() int { return 0 }

// Run prints every md array with its in-sync and total member counts,
// e.g. "md0 2/2 md1 1/2".
// A degraded array turns the default colour red.
func (raid) Run(ctx context.Context, src monitor.Source, _ []string) (Result, error) {
	arrays, err := src.RAID(ctx)
	if err != nil {
		return Result{}, err
	}
	if len(arrays) == 0 {
		return Result{}, monitor.ErrNoData
	}
	var res Result
	for i, a := range arrays {
		if i > 0 {
			res.Spans = append(res.Spans, format.Dim(" "))
		}
		res.Spans = append(res.Spans, format.Bright(a.Name), format.Dim(" "+arrayStatus(a)))
		if a.Degraded() {
			res.Attr = raidDegradedAttr
		}
	}
	return res, nil
}

func arrayStatus(a monitor.MDArray) string {
	if a.State != "active" {
		return a.State
	}
	status := strconv.Itoa(a.Have) + "/" + strconv.Itoa(a.Want)
	if a.Action != "" {
		status += " " + a.Action + " " + strconv.FormatFloat(a.Progress, 'f', 1, 64) + "%"
	}
	return status
}
