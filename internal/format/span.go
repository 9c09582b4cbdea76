// Package format builds the status line: spans of bright and dim text grouped
// into per-applet segments and rendered for a target (tmux or an ANSI terminal).
package format

import "strings"

// Span is a run of text drawn either bright or dim.
type Span struct {
	Text   string
	Bright bool
}

func Bright(s string) Span { return Span{Text: s, Bright: true} }

func Dim(s string) Span { return Span{Text: s} }

// Renderer turns a segment into target-specific text.
type Renderer interface {
	Segment(attr string, spans []Span) string
}

// Line accumulates rendered segments. The count of segments written so far
// decides whether a separator goes in front of the next one.
type Line struct {
	r     Renderer
	sep   string
	count int
	b     strings.Builder
}

const DefaultSeparator = "  "

func NewLine(r Renderer, sep string) *Line {
	return &Line{r: r, sep: sep}
}

// Add renders one segment. attr falls back to def when empty.
func (l *Line) Add(attr, def string, spans ...Span) {
	if attr == "" {
		attr = def
	}
	if l.count != 0 {
		l.b.WriteString(l.sep)
	}
	l.b.WriteString(l.r.Segment(attr, spans))
	l.count++
}

func (l *Line) String() string {
	return l.b.String()
}
