package format

import (
	"strings"

	"github.com/sumant1122/tmux-applet/internal/theme"
)

// ANSI renders segments for a terminal, translating tmux attributes into
// lipgloss styles. Useful for previewing a config outside tmux.
type ANSI struct{}

func (ANSI) Segment(attr string, spans []Span) string {
	base := theme.Parse(attr)
	var b strings.Builder
	for _, s := range spans {
		st := base
		if s.Bright {
			st = st.Bold(true)
		}
		b.WriteString(st.Render(s.Text))
	}
	return b.String()
}

// NewRenderer returns the renderer registered under name.
func NewRenderer(name string) (Renderer, bool) {
	switch name {
	case "", "tmux":
		return Tmux{}, true
	case "ansi":
		return ANSI{}, true
	}
	return nil, false
}
