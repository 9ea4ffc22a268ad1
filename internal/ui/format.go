package ui

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/notational-fzf/shorten-path/internal/grepline"
	"github.com/notational-fzf/shorten-path/internal/pathstyle"
)

// Formatter renders parsed records as long form and short form side by side.
type Formatter struct {
	profile termenv.Profile
	palette Palette
	style   pathstyle.Style
}

// NewFormatter creates a Formatter. The style decides the separator written
// between the short parent directory and the file name.
func NewFormatter(profile termenv.Profile, palette Palette, style pathstyle.Style) *Formatter {
	return &Formatter{
		profile: profile,
		palette: palette,
		style:   style,
	}
}

// Color wraps s in the escape sequence of c and a reset. c is first degraded
// to what the profile supports, so a #rrggbb color becomes one of the 16 ANSI
// colors under termenv.ANSI.
func (f *Formatter) Color(s string, c termenv.Color) string {
	return f.profile.String(s).Foreground(f.profile.Convert(c)).String()
}

// ShortName colors the shortened parent (with its trailing separator) and the
// file name separately. An empty parent yields just the file name.
func (f *Formatter) ShortName(parent, base string) string {
	if parent == "" {
		return f.Color(base, f.palette.Path)
	}
	if !f.style.IsSeparator(parent[len(parent)-1]) {
		parent += f.style.Sep()
	}
	return f.Color(parent, f.palette.Dir) + f.Color(base, f.palette.Path)
}

// Format returns long path, line, short path, line and content joined by
// colons. Vim picks one of the two forms.
func (f *Formatter) Format(rec grepline.Record, parent, base string) string {
	line := f.Color(rec.Line, f.palette.Line)
	return strings.Join([]string{
		f.Color(rec.Filename, f.palette.Path),
		line,
		f.ShortName(parent, base),
		line,
		rec.Content,
	}, ":")
}
