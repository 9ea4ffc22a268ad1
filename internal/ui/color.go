package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ANSI escape sequences of the default palette
const (
	ColorReset  = "\033[0m"
	ColorGreen  = "\033[32m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
)

// Color modes accepted by ProfileFor
const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// Palette holds the colors of the three colored fields.
type Palette struct {
	// Path colors the absolute path and the short file name
	Path termenv.Color
	// Line colors line numbers
	Line termenv.Color
	// Dir colors the shortened parent directory
	Dir termenv.Color
}

// DefaultPalette is cyan paths, green line numbers and purple directories.
func DefaultPalette() Palette {
	return Palette{
		Path: termenv.ANSICyan,
		Line: termenv.ANSIGreen,
		Dir:  termenv.ANSIMagenta,
	}
}

// ParsePalette builds a palette from ANSI color numbers ("0"-"255") or
// "#rrggbb" values. Empty values keep the default color.
func ParsePalette(path, line, dir string) (Palette, bool) {
	p := DefaultPalette()
	for _, c := range []struct {
		value string
		dst   *termenv.Color
	}{
		{path, &p.Path},
		{line, &p.Line},
		{dir, &p.Dir},
	} {
		if c.value == "" {
			continue
		}
		color, ok := parseColor(c.value)
		if !ok {
			return Palette{}, false
		}
		*c.dst = color
	}
	return p, true
}

// parseColor accepts "0"-"255" and "#rrggbb".
func parseColor(value string) (termenv.Color, bool) {
	if strings.HasPrefix(value, "#") {
		if len(value) != len("#rrggbb") {
			return nil, false
		}
		if _, err := colorful.Hex(value); err != nil {
			return nil, false
		}
		return termenv.RGBColor(strings.ToLower(value)), true
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || n > 255 {
		return nil, false
	}
	if n < 16 {
		return termenv.ANSIColor(n), true
	}
	return termenv.ANSI256Color(n), true
}

// ProfileFor maps a color mode to a termenv profile. Unknown modes report
// false. "auto" enables color only when stdout is a terminal and NO_COLOR
// is unset.
func ProfileFor(mode string) (termenv.Profile, bool) {
	switch mode {
	case ColorAlways, "":
		return termenv.ANSI, true
	case ColorNever:
		return termenv.Ascii, true
	case ColorAuto:
		if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
			return termenv.Ascii, true
		}
		fd := os.Stdout.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return termenv.ANSI, true
		}
		return termenv.Ascii, true
	}
	return termenv.Ascii, false
}
