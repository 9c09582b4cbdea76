// Package theme maps tmux style attributes onto lipgloss styles.
package theme

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette names the eight tmux base colours and their bright variants.
var Palette = map[string]string{
	"black":         "0",
	"red":           "1",
	"green":         "2",
	"yellow":        "3",
	"blue":          "4",
	"magenta":       "5",
	"cyan":          "6",
	"white":         "7",
	"brightblack":   "8",
	"brightred":     "9",
	"brightgreen":   "10",
	"brightyellow":  "11",
	"brightblue":    "12",
	"brightmagenta": "13",
	"brightcyan":    "14",
	"brightwhite":   "15",
}

// Color resolves a tmux colour name (green, colour208, #ff8800) to a lipgloss
// colour. ok is false for "default" and for anything unrecognised.
func Color(name string) (lipgloss.Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := Palette[name]; ok {
		return lipgloss.Color(c), true
	}
	for _, prefix := range []string{"colour", "color"} {
		if n, found := strings.CutPrefix(name, prefix); found {
			v, err := strconv.Atoi(n)
			if err != nil || v < 0 || v > 255 {
				return "", false
			}
			return lipgloss.Color(n), true
		}
	}
	if len(name) == 7 && name[0] == '#' {
		if _, err := strconv.ParseUint(name[1:], 16, 32); err == nil {
			return lipgloss.Color(name), true
		}
	}
	return "", false
}

// Parse builds a style from a comma separated attribute string such as
// "fg=green,bg=black,underscore". Unknown attributes are ignored.
func Parse(attr string) lipgloss.Style {
	s := lipgloss.NewStyle()
	for _, part := range strings.Split(attr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if key, val, ok := strings.Cut(part, "="); ok {
			c, known := Color(val)
			if !known {
				continue
			}
			switch key {
			case "fg":
				s = s.Foreground(c)
			case "bg":
				s = s.Background(c)
			}
			continue
		}
		switch part {
		case "bright", "bold":
			s = s.Bold(true)
		case "nobright", "nobold":
			s = s.Bold(false)
		case "dim":
			s = s.Faint(true)
		case "underscore":
			s = s.Underline(true)
		case "blink":
			s = s.Blink(true)
		case "reverse":
			s = s.Reverse(true)
		case "italics":
			s = s.Italic(true)
		case "strikethrough":
			s = s.Strikethrough(true)
		}
	}
	return s
}
