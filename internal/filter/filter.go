// Package filter runs the line-by-line rewrite from an input stream to an
// output stream.
package filter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"syscall"

	clierrors "github.com/notational-fzf/shorten-path/internal/errors"
	"github.com/notational-fzf/shorten-path/internal/grepline"
	"github.com/notational-fzf/shorten-path/internal/logger"
	"github.com/notational-fzf/shorten-path/internal/shorten"
	"github.com/notational-fzf/shorten-path/internal/ui"
)

// Processor turns one input line into one output line.
type Processor struct {
	parser    *grepline.Parser
	shortener *shorten.Shortener
	formatter *ui.Formatter
}

// NewProcessor wires a parser, a shortener and a formatter together.
func NewProcessor(parser *grepline.Parser, shortener *shorten.Shortener, formatter *ui.Formatter) *Processor {
	return &Processor{
		parser:    parser,
		shortener: shortener,
		formatter: formatter,
	}
}

// ProcessLine parses, shortens and formats a single line.
func (p *Processor) ProcessLine(line string) (string, error) {
	rec, err := p.parser.Parse(line)
	if err != nil {
		return "", err
	}
	parent, base := p.shortener.Shorten(rec.Filename)
	return p.formatter.Format(rec, parent, base), nil
}

// Run reads r until end of input and writes one formatted line to w per
// input line. The first malformed line stops the run with an input error;
// lines already processed are flushed first. A closed output pipe ends the
// run without error.
func (p *Processor) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	reader := bufio.NewReader(r)
	out := bufio.NewWriter(w)

	count := 0
	for {
		if err := ctx.Err(); err != nil {
			return finish(out, err)
		}

		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return finish(out, clierrors.Wrap(readErr, "failed to read input"))
		}
		if line == "" && readErr == io.EOF {
			break
		}
		count++

		formatted, err := p.ProcessLine(line)
		if err != nil {
			logger.Log.Debug().Int("line", count).Err(err).Msg("Malformed input line")
			return finish(out, clierrors.NewInputError(err, fmt.Sprintf("malformed input on line %d", count)).WithStackTrace())
		}

		if _, err := out.WriteString(formatted + "\n"); err != nil {
			return finish(out, err)
		}

		if readErr == io.EOF {
			break
		}
	}

	logger.Log.Debug().Int("lines", count).Msg("Input processed")
	return finish(out, nil)
}

// finish flushes buffered output and reports the first relevant error.
func finish(out *bufio.Writer, err error) error {
	flushErr := out.Flush()
	if err == nil {
		err = flushErr
	}
	if isBrokenPipe(err) {
		logger.Debug("Output closed by reader")
		return nil
	}
	return err
}

func isBrokenPipe(err error) bool {
	return err != nil && clierrors.Is(err, syscall.EPIPE)
}
