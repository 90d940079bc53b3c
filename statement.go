package sqlscript

import (
	"io"
	"strings"

	"github.com/schemalex/sqlscript/internal/errors"
	"github.com/schemalex/sqlscript/internal/util"
)

// Statement is a single SQL statement as it appeared in the script,
// trimmed of surrounding whitespace.
type Statement string

// Statements is a list of Statement in script order.
type Statements []Statement

func (s Statement) String() string {
	return string(s)
}

// Kind classifies the statement by its leading keywords.
func (s Statement) Kind() Kind {
	return Classify(string(s))
}

// Terminated returns true if the statement ends with the Terminator.
// Only the last statement of a script may be unterminated.
func (s Statement) Terminated() bool {
	return strings.HasSuffix(string(s), string(Terminator))
}

// Preview returns the first n characters of the statement, followed
// by "..." when the statement is longer than that.
func (s Statement) Preview(n int) string {
	return util.Truncate(string(s), n)
}

// Len returns the number of statements.
func (stmts Statements) Len() int {
	return len(stmts)
}

// Strings returns the statements as plain strings, in order.
func (stmts Statements) Strings() []string {
	l := make([]string, len(stmts))
	for i, s := range stmts {
		l[i] = s.String()
	}
	return l
}

// WriteTo writes each statement on its own line.
func (stmts Statements) WriteTo(dst io.Writer) (int64, error) {
	newline := []byte{'\n'}
	var sofar int64
	for _, s := range stmts {
		n, err := io.WriteString(dst, s.String())
		sofar += int64(n)
		if err != nil {
			return sofar, errors.Wrapf(err, `failed to write statement '%s'`, s.String())
		}
		n, err = dst.Write(newline)
		sofar += int64(n)
		if err != nil {
			return sofar, errors.Wrap(err, `failed to write newline`)
		}
	}
	return sofar, nil
}
