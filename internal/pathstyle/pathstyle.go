// Package pathstyle describes the path conventions of a platform as a value,
// so paths of either convention can be handled on any host.
package pathstyle

import (
	"fmt"
	"path"
	"runtime"
	"strings"
)

// Style holds the separator and root conventions of a platform.
type Style struct {
	// Name identifies the style ("posix" or "windows")
	Name string
	// Separator is the primary path separator
	Separator byte
	// AltSeparator is accepted when splitting, 0 if none
	AltSeparator byte
	// Drives reports whether paths may start with a drive letter or UNC root
	Drives bool
}

var (
	// Posix is the style of Linux, macOS and the BSDs
	Posix = Style{Name: "posix", Separator: '/'}
	// Windows is the style of Windows, with drive letters and UNC roots
	Windows = Style{Name: "windows", Separator: '\\', AltSeparator: '/', Drives: true}
)

// ForGOOS returns the style used by the given GOOS value.
func ForGOOS(goos string) Style {
	if goos == "windows" {
		return Windows
	}
	return Posix
}

// Parse resolves a style name. "auto" and "" select the host style.
func Parse(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return ForGOOS(runtime.GOOS), nil
	case "posix", "unix":
		return Posix, nil
	case "windows", "win32":
		return Windows, nil
	}
	return Style{}, fmt.Errorf("unknown platform %q (use auto, posix or windows)", name)
}

// Sep returns the primary separator as a string.
func (s Style) Sep() string {
	return string(s.Separator)
}

// IsSeparator reports whether c separates path elements in this style.
func (s Style) IsSeparator(c byte) bool {
	return c == s.Separator || (s.AltSeparator != 0 && c == s.AltSeparator)
}

// SplitDrive splits p into a drive or UNC root and the remainder.
//
//	C:\Windows\foo.txt     -> "C:", "\Windows\foo.txt"
//	\\server\share\foo.txt -> "\\server\share", "\foo.txt"
//	/any/path              -> "", "/any/path"
//
// Styles without drives always return an empty drive.
func (s Style) SplitDrive(p string) (drive, rest string) {
	if !s.Drives || len(p) < 2 {
		return "", p
	}
	if s.IsSeparator(p[0]) && s.IsSeparator(p[1]) && (len(p) == 2 || !s.IsSeparator(p[2])) {
		index := s.indexSeparator(p, 2)
		if index == -1 {
			return "", p
		}
		index2 := s.indexSeparator(p, index+1)
		if index2 == index+1 {
			return "", p
		}
		if index2 == -1 {
			index2 = len(p)
		}
		return p[:index2], p[index2:]
	}
	if p[1] == ':' {
		return p[:2], p[2:]
	}
	return "", p
}

// SanitizeDrive replaces any colon inside the drive or UNC root of p with an
// underscore, leaving the remainder untouched.
func (s Style) SanitizeDrive(p string) string {
	drive, rest := s.SplitDrive(p)
	if drive == "" {
		return p
	}
	return strings.ReplaceAll(drive, ":", "_") + rest
}

// Split splits p after its final separator into a directory and a file name.
// Trailing separators are trimmed from the directory unless it is a root.
func (s Style) Split(p string) (dir, file string) {
	drive, rest := s.SplitDrive(p)
	i := len(rest)
	for i > 0 && !s.IsSeparator(rest[i-1]) {
		i--
	}
	head, tail := rest[:i], rest[i:]
	if trimmed := strings.TrimRight(head, s.separators()); trimmed != "" {
		head = trimmed
	}
	return drive + head, tail
}

// Parent returns the parent directory of p; the parent of a root is the root.
func (s Style) Parent(p string) string {
	dir, _ := s.Split(p)
	return dir
}

// Segments returns the non-empty elements of p.
func (s Style) Segments(p string) []string {
	return strings.FieldsFunc(p, func(r rune) bool {
		return r < 0x80 && s.IsSeparator(byte(r))
	})
}

// Join joins elements with the primary separator. Like a path join, an empty
// leading element adds no separator and elements ending in one get no second,
// so a file at the root reads /f.go and not //f.go.
func (s Style) Join(elem ...string) string {
	var sb strings.Builder
	for _, e := range elem {
		if e == "" {
			continue
		}
		if out := sb.String(); out != "" && !s.IsSeparator(out[len(out)-1]) {
			sb.WriteByte(s.Separator)
		}
		sb.WriteString(e)
	}
	return sb.String()
}

// Abs resolves p against cwd and cleans the result. Only posix paths are
// resolved; windows paths are returned as written.
func (s Style) Abs(p, cwd string) string {
	if s.Drives {
		return p
	}
	if !strings.HasPrefix(p, "/") {
		p = cwd + "/" + p
	}
	return path.Clean(p)
}

func (s Style) separators() string {
	if s.AltSeparator != 0 {
		return string([]byte{s.Separator, s.AltSeparator})
	}
	return s.Sep()
}

func (s Style) indexSeparator(p string, from int) int {
	for i := from; i < len(p); i++ {
		if s.IsSeparator(p[i]) {
			return i
		}
	}
	return -1
}
