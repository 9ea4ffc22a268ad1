// Package shorten abbreviates directory paths into breadcrumbs such as
// ~/p/s, relative to a small ordered table of well-known prefixes.
package shorten

import (
	"strings"
	"unicode/utf8"

	"github.com/notational-fzf/shorten-path/internal/pathstyle"
)

// Display tokens of the default rules
const (
	CurrentDirToken = ""
	ParentDirToken  = ".."
	HomeDirToken    = "~"
)

// Rule replaces a leading absolute prefix with a display token.
type Rule struct {
	Token  string
	Prefix string
}

// DefaultRules returns the rule table for the current, parent and home
// directories, in that priority order. Rules with an unknown prefix are
// left out. On styles with drive letters the prefixes get the same colon
// rewrite that parsed file names get, so the two stay comparable; an
// unrewritten C:\ prefix would never match a C_\ file name.
func DefaultRules(style pathstyle.Style, cwd, home string) []Rule {
	var rules []Rule
	add := func(token, prefix string) {
		if prefix == "" {
			return
		}
		if style.Drives {
			prefix = style.SanitizeDrive(prefix)
		} else {
			prefix = style.Abs(prefix, cwd)
		}
		rules = append(rules, Rule{Token: token, Prefix: prefix})
	}

	if cwd != "" {
		add(CurrentDirToken, cwd)
		add(ParentDirToken, style.Parent(cwd))
	}
	add(HomeDirToken, home)
	return rules
}

// Shortener applies a fixed rule table. It is immutable and safe to share.
type Shortener struct {
	style pathstyle.Style
	rules []Rule
}

// New creates a Shortener evaluating rules in the given order.
func New(style pathstyle.Style, rules ...Rule) *Shortener {
	return &Shortener{
		style: style,
		rules: append([]Rule(nil), rules...),
	}
}

// Rules returns a copy of the rule table.
func (s *Shortener) Rules() []Rule {
	return append([]Rule(nil), s.rules...)
}

// Match returns the first rule whose prefix is a string prefix of dir.
func (s *Shortener) Match(dir string) (Rule, bool) {
	for _, rule := range s.rules {
		if strings.HasPrefix(dir, rule.Prefix) {
			return rule, true
		}
	}
	return Rule{}, false
}

// Shorten returns the abbreviated parent directory of path and its file name.
// The file name is never abbreviated.
func (s *Shortener) Shorten(path string) (parent, base string) {
	dir, name := s.style.Split(path)

	rule, ok := s.Match(dir)
	if !ok {
		return Abbreviate(s.style, dir), name
	}

	// The prefix need not end on a separator (cwd /work, dir /workshop/x, or
	// cwd /). Every segment of the remainder is kept, so "shop/x" gives s/x
	// rather than dropping its first segment.
	remainder := dir[len(rule.Prefix):]
	elems := append([]string{rule.Token}, initials(s.style.Segments(remainder))...)
	return s.style.Join(elems...), name
}

// Abbreviate cuts every element of dir to its first character. A leading
// root separator is kept, e.g. /var/log -> /v/l.
func Abbreviate(style pathstyle.Style, dir string) string {
	var root string
	if dir != "" && style.IsSeparator(dir[0]) {
		root = style.Sep()
	}
	return style.Join(append([]string{root}, initials(style.Segments(dir))...)...)
}

func initials(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		_, size := utf8.DecodeRuneInString(seg)
		out = append(out, seg[:size])
	}
	return out
}
