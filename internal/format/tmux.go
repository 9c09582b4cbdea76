package format

import "strings"

// Tmux renders segments with tmux #[...] style directives.
type Tmux struct{}

func (Tmux) Segment(attr string, spans []Span) string {
	var b strings.Builder
	b.WriteString("#[bright")
	if attr != "" {
		b.WriteString(",")
		b.WriteString(attr)
	}
	b.WriteString("]")

	bright := true
	for _, s := range spans {
		if s.Bright != bright {
			if s.Bright {
				b.WriteString("#[bright]")
			} else {
				b.WriteString("#[nobright]")
			}
			bright = s.Bright
		}
		b.WriteString(s.Text)
	}
	b.WriteString("#[default]")
	return b.String()
}
