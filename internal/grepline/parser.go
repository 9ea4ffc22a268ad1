// Package grepline parses grep-style "file:line:content" records.
package grepline

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/notational-fzf/shorten-path/internal/pathstyle"
)

// ErrMalformedLine is returned for lines with fewer than three fields.
var ErrMalformedLine = errors.New("expected file:line:content")

// Record is one parsed input line.
type Record struct {
	// Filename is absolute on posix styles, as written (drive sanitized) otherwise
	Filename string
	// Line is the line number field, kept verbatim
	Line string
	// Content is the rest of the line without trailing whitespace
	Content string
}

// Parser splits input lines under one path style.
type Parser struct {
	style pathstyle.Style
	cwd   string
}

// NewParser creates a parser resolving relative file names against cwd.
func NewParser(style pathstyle.Style, cwd string) *Parser {
	return &Parser{style: style, cwd: cwd}
}

// Parse splits line into file name, line number and content. The content may
// itself contain colons.
func (p *Parser) Parse(line string) (Record, error) {
	if p.style.Drives {
		// A drive colon would be taken for a field delimiter.
		line = p.style.SanitizeDrive(line)
	}

	fields := strings.SplitN(line, ":", 3)
	if len(fields) < 3 {
		return Record{}, fmt.Errorf("%w, got %q", ErrMalformedLine, strings.TrimRightFunc(line, unicode.IsSpace))
	}

	filename := fields[0]
	if !p.style.Drives {
		filename = p.style.Abs(filename, p.cwd)
	}

	return Record{
		Filename: filename,
		Line:     fields[1],
		Content:  strings.TrimRightFunc(fields[2], unicode.IsSpace),
	}, nil
}
