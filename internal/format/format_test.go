package format

import (
	"strings"
	"testing"
)

func sizeText(size uint64, mag Magnitude) string {
	var b strings.Builder
	for _, s := range Size(size, mag) {
		b.WriteString(s.Text)
	}
	return b.String()
}

func TestSizeText(t *testing.T) {
	tests := []struct {
		size     uint64
		mag      Magnitude
		expected string
	}{
		{0, Bytes, "0B"},
		{512, Bytes, "512B"},
		{1023, Bytes, "1023B"},
		{1024, Bytes, "1.0k"},
		{1536, Bytes, "1.4k"},
		{2048, Bytes, "2.0k"},
		{10239, Bytes, "9.9k"},
		{10240, Bytes, "10k"},
		{1 << 20, Bytes, "1.0M"},
		{2048, Kilobytes, "2.0M"},
		{9260088, Kilobytes, "8.8G"},
		{1 << 40, Bytes, "1.0T"},
		{5000, Terabytes, "5000T"},
		{1 << 60, Bytes, "1048576T"},
		{3 << 30, Gigabytes, "3145728T"},
	}

	for _, tt := range tests {
		result := sizeText(tt.size, tt.mag)
		if result != tt.expected {
			t.Errorf("sizeText(%d, %d) = %q, want %q", tt.size, tt.mag, result, tt.expected)
		}
	}
}

func TestSizeRescaleConsistent(t *testing.T) {
	for _, size := range []uint64{10240, 1 << 20, 123 << 20, 7 << 30, 999 << 30} {
		a := sizeText(size, Bytes)
		b := sizeText(size>>10, Kilobytes)
		if a != b {
			t.Errorf("%d bytes = %q but %d kilobytes = %q", size, a, size>>10, b)
		}
	}
}

func TestSizeSpans(t *testing.T) {
	spans := Size(2048, Bytes)
	if len(spans) != 2 || !spans[0].Bright || spans[1].Bright {
		t.Fatalf("expected bright number then dim unit, got %+v", spans)
	}
	if spans[0].Text != "2.0" || spans[1].Text != "k" {
		t.Errorf("unexpected spans %+v", spans)
	}
}

func TestTmuxSegment(t *testing.T) {
	tests := []struct {
		name     string
		attr     string
		spans    []Span
		expected string
	}{
		{"bright only", "fg=yellow", []Span{Bright("0.52")}, "#[bright,fg=yellow]0.52#[default]"},
		{
			"usage",
			"fg=green",
			[]Span{Bright("42"), Dim("%,"), Bright("3.1"), Dim("G")},
			"#[bright,fg=green]42#[nobright]%,#[bright]3.1#[nobright]G#[default]",
		},
		{"starts dim", "fg=cyan", []Span{Dim("x")}, "#[bright,fg=cyan]#[nobright]x#[default]"},
		{"no attr", "", []Span{Bright("x")}, "#[bright]x#[default]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tmux{}.Segment(tt.attr, tt.spans)
			if got != tt.expected {
				t.Errorf("Segment() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLineSeparators(t *testing.T) {
	l := NewLine(Tmux{}, DefaultSeparator)
	if l.String() != "" {
		t.Fatalf("new line should be empty")
	}
	l.Add("", "fg=yellow", Bright("1"))
	l.Add("fg=red", "fg=magenta", Bright("2"))
	want := "#[bright,fg=yellow]1#[default]  #[bright,fg=red]2#[default]"
	if l.String() != want {
		t.Errorf("got %q, want %q", l.String(), want)
	}
}

func TestANSISegmentKeepsText(t *testing.T) {
	got := ANSI{}.Segment("fg=green,underscore", []Span{Bright("42"), Dim("%,"), Bright("3.1"), Dim("G")})
	for _, part := range []string{"42", "%,", "3.1", "G"} {
		if !strings.Contains(got, part) {
			t.Errorf("ANSI segment %q lost %q", got, part)
		}
	}
	if strings.Contains(got, "#[") {
		t.Errorf("ANSI segment should not contain tmux directives: %q", got)
	}
}

func TestNewRenderer(t *testing.T) {
	for _, name := range []string{"", "tmux", "ansi"} {
		if _, ok := NewRenderer(name); !ok {
			t.Errorf("NewRenderer(%q) not found", name)
		}
	}
	if _, ok := NewRenderer("html"); ok {
		t.Error("NewRenderer(html) should fail")
	}
}
