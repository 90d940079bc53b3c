// Package lint rewrites SQL scripts into a normalized form: comments
// and blank lines removed, one statement per block, every statement
// terminated.
package lint

import (
	"context"
	"io"
	"strings"

	"github.com/schemalex/sqlscript"
	"github.com/schemalex/sqlscript/internal/errors"
	"github.com/schemalex/sqlscript/internal/option"
	"go.uber.org/zap"
)

type Option = sqlscript.Option

const (
	optkeyIndent = "indent"
	optkeyLogger = "logger"
)

// WithIndent specifies the string that continuation lines of a
// statement are indented with, repeated n times. Statements keep
// their original indentation if unspecified
func WithIndent(s string, n int) Option {
	return option.New(optkeyIndent, strings.Repeat(s, n))
}

// WithLogger specifies the logger passed on to the segmenter.
func WithLogger(l *zap.Logger) Option {
	return option.New(optkeyLogger, l)
}

type Linter struct{}

func New() *Linter {
	return &Linter{}
}

func (l *Linter) Run(ctx context.Context, src sqlscript.ScriptSource, dst io.Writer, options ...Option) error {
	var indent *string
	logger := zap.NewNop()
	for _, o := range options {
		switch o.Name() {
		case optkeyIndent:
			s := o.Value().(string)
			indent = &s
		case optkeyLogger:
			logger = o.Value().(*zap.Logger)
		}
	}

	stmts, err := sqlscript.New(sqlscript.WithLogger(logger)).SegmentSource(src)
	if err != nil {
		return errors.Wrap(err, `failed to read from source`)
	}

	for i, stmt := range stmts {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, `lint interrupted`)
		}

		if i != 0 {
			if _, err := io.WriteString(dst, "\n\n"); err != nil {
				return errors.Wrap(err, `failed to write separator`)
			}
		}

		if _, err := io.WriteString(dst, normalize(stmt, indent)); err != nil {
			return errors.Wrap(err, `failed to write statement`)
		}
	}
	if len(stmts) > 0 {
		if _, err := io.WriteString(dst, "\n"); err != nil {
			return errors.Wrap(err, `failed to write newline`)
		}
	}

	return nil
}

// normalize trims trailing whitespace from every line of stmt, re-indents
// continuation lines if indent is non-nil, and makes sure the statement
// ends with the terminator.
func normalize(stmt sqlscript.Statement, indent *string) string {
	lines := strings.Split(stmt.String(), "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if indent != nil && i > 0 {
			line = *indent + strings.TrimLeft(line, " \t")
		}
		lines[i] = line
	}

	s := strings.Join(lines, "\n")
	if !stmt.Terminated() {
		s += string(sqlscript.Terminator)
	}
	return s
}
