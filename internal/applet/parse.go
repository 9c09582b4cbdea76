package applet

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrBadAttributes is returned for an attribute token missing its closing bracket.
var ErrBadAttributes = errors.New("invalid attributes specification")

// Script is a parsed config file.
type Script struct {
	Invocations []Invocation
	// Warnings describes skipped tokens such as unknown applet names.
	Warnings []string
}

// tokenizer yields whitespace separated words across lines. Lines are read
// whole, however long.
type tokenizer struct {
	r      *bufio.Reader
	fields []string
	line   int
	err    error
}

func (t *tokenizer) next() (string, bool) {
	for len(t.fields) == 0 {
		if t.err != nil {
			return "", false
		}
		text, err := t.r.ReadString('\n')
		if err != nil {
			t.err = err
			if text == "" {
				return "", false
			}
		}
		t.line++
		t.fields = strings.Fields(text)
	}
	tok := t.fields[0]
	t.fields = t.fields[1:]
	return tok, true
}

func (t *tokenizer) skipLine() {
	t.fields = nil
}

// Parse reads a config script. Words are whitespace separated; a word
// starting with '#' comments out the rest of its line; "[attr]" sets the
// attributes of the next applet; any other word names an applet, followed
// by as many argument words as that applet takes.
func Parse(r io.Reader) (*Script, error) {
	var (
		s    Script
		attr string
		tok  = &tokenizer{r: bufio.NewReader(r)}
	)
	for {
		word, ok := tok.next()
		if !ok {
			break
		}
		switch word[0] {
		case '#':
			tok.skipLine()
		case '[':
			if len(word) < 2 || word[len(word)-1] != ']' {
				return nil, fmt.Errorf("line %d: %q: %w", tok.line, word, ErrBadAttributes)
			}
			attr = word[1 : len(word)-1]
		default:
			inv := Invocation{Name: word, Attr: attr, Line: tok.line}
			attr = ""
			a, known := Lookup(word)
			inv.Applet = a
			if !known {
				s.Warnings = append(s.Warnings, fmt.Sprintf("line %d: unknown applet %q", inv.Line, word))
				continue
			}
			for i := 0; i < a.Args(); i++ {
				arg, ok := tok.next()
				if !ok {
					break
				}
				inv.Args = append(inv.Args, arg)
			}
			s.Invocations = append(s.Invocations, inv)
		}
	}
	if tok.err != nil && !errors.Is(tok.err, io.EOF) {
		return nil, tok.err
	}
	return &s, nil
}
