package ui

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/notational-fzf/shorten-path/internal/grepline"
	"github.com/notational-fzf/shorten-path/internal/pathstyle"
)

func TestColor(t *testing.T) {
	f := NewFormatter(termenv.ANSI, DefaultPalette(), pathstyle.Posix)

	tests := []struct {
		name  string
		color termenv.Color
		seq   string
	}{
		{"cyan", termenv.ANSICyan, ColorCyan},
		{"green", termenv.ANSIGreen, ColorGreen},
		{"purple", termenv.ANSIMagenta, ColorPurple},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range []string{"", "main.py", "a:b", ColorCyan + "nested" + ColorReset} {
				got := f.Color(s, tt.color)
				assert.Equal(t, tt.seq+s+ColorReset, got)
				assert.True(t, strings.HasPrefix(got, tt.seq))
				assert.True(t, strings.HasSuffix(got, ColorReset))
			}
		})
	}
}

func TestColorNever(t *testing.T) {
	f := NewFormatter(termenv.Ascii, DefaultPalette(), pathstyle.Posix)
	assert.Equal(t, "main.py", f.Color("main.py", termenv.ANSICyan))
}

func TestColorDegradesToProfile(t *testing.T) {
	f := NewFormatter(termenv.ANSI, DefaultPalette(), pathstyle.Posix)

	for _, c := range []termenv.Color{termenv.RGBColor("#ff8800"), termenv.ANSI256Color(208)} {
		got := f.Color("main.py", c)
		want := "\033[" + termenv.ANSI.Convert(c).Sequence(false) + "m" + "main.py" + ColorReset
		assert.Equal(t, want, got)
		assert.NotContains(t, got, "38;2;")
		assert.NotContains(t, got, "38;5;")
	}

	tc := NewFormatter(termenv.TrueColor, DefaultPalette(), pathstyle.Posix)
	assert.True(t, strings.HasPrefix(tc.Color("main.py", termenv.RGBColor("#ff8800")), "\033[38;2;"))
}

func TestShortName(t *testing.T) {
	f := NewFormatter(termenv.ANSI, DefaultPalette(), pathstyle.Posix)

	assert.Equal(t, ColorCyan+"README.md"+ColorReset, f.ShortName("", "README.md"))
	assert.Equal(t,
		ColorPurple+"~/p/s/"+ColorReset+ColorCyan+"main.py"+ColorReset,
		f.ShortName("~/p/s", "main.py"))
	assert.Equal(t,
		ColorPurple+"/"+ColorReset+ColorCyan+"f.go"+ColorReset,
		f.ShortName("/", "f.go"))

	w := NewFormatter(termenv.ANSI, DefaultPalette(), pathstyle.Windows)
	assert.Equal(t,
		ColorPurple+`~\d\`+ColorReset+ColorCyan+"a.txt"+ColorReset,
		w.ShortName(`~\d`, "a.txt"))
}

func TestFormat(t *testing.T) {
	f := NewFormatter(termenv.ANSI, DefaultPalette(), pathstyle.Posix)
	rec := grepline.Record{Filename: "/home/alice/project/src/main.py", Line: "42", Content: "def foo():"}

	got := f.Format(rec, "~/p/s", "main.py")

	want := ColorCyan + "/home/alice/project/src/main.py" + ColorReset + ":" +
		ColorGreen + "42" + ColorReset + ":" +
		ColorPurple + "~/p/s/" + ColorReset + ColorCyan + "main.py" + ColorReset + ":" +
		ColorGreen + "42" + ColorReset + ":" +
		"def foo():"
	assert.Equal(t, want, got)
	assert.Equal(t, 2, strings.Count(got, ":"+ColorGreen+"42"+ColorReset+":"))
}

func TestFormatPlain(t *testing.T) {
	f := NewFormatter(termenv.Ascii, DefaultPalette(), pathstyle.Posix)
	rec := grepline.Record{Filename: "/a/b.txt", Line: "3", Content: ""}

	assert.Equal(t, "/a/b.txt:3:/a/b.txt:3:", f.Format(rec, "/a", "b.txt"))
}

func TestParsePalette(t *testing.T) {
	p, ok := ParsePalette("", "", "")
	assert.True(t, ok)
	assert.Equal(t, DefaultPalette(), p)

	p, ok = ParsePalette("4", "208", "#ff8800")
	assert.True(t, ok)
	assert.Equal(t, termenv.ANSIColor(4), p.Path)
	assert.Equal(t, termenv.ANSI256Color(208), p.Line)
	assert.Equal(t, termenv.RGBColor("#ff8800"), p.Dir)

	p, ok = ParsePalette("0", "255", "#FF8800")
	assert.True(t, ok)
	assert.Equal(t, termenv.ANSIColor(0), p.Path)
	assert.Equal(t, termenv.ANSI256Color(255), p.Line)
	assert.Equal(t, termenv.RGBColor("#ff8800"), p.Dir)

	for _, bad := range []string{"cyan", "300", "256", "-1", "#zzzzzz", "#fff", "#ff88001", "ff8800", " 4"} {
		_, ok = ParsePalette("", bad, "")
		assert.False(t, ok, bad)
	}
}

func TestProfileFor(t *testing.T) {
	p, ok := ProfileFor(ColorAlways)
	assert.True(t, ok)
	assert.Equal(t, termenv.ANSI, p)

	p, ok = ProfileFor(ColorNever)
	assert.True(t, ok)
	assert.Equal(t, termenv.Ascii, p)

	t.Setenv("NO_COLOR", "1")
	p, ok = ProfileFor(ColorAuto)
	assert.True(t, ok)
	assert.Equal(t, termenv.Ascii, p)

	_, ok = ProfileFor("rainbow")
	assert.False(t, ok)
}
