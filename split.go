package sqlscript

import (
	"strings"
	"unicode/utf8"
)

// Terminator is the character that ends a statement.
const Terminator = ';'

// SplitStatements cuts comment-free text into statements. Each statement
// keeps its terminator and is trimmed of surrounding whitespace. Text
// after the last terminator becomes a final, unterminated statement
// unless it is blank.
func SplitStatements(text string) Statements {
	return scanTerminated(text, Terminator)
}

// scanTerminated is a plain character scan: it does not know about
// quoted strings or identifiers, so a terminator inside a literal
// ends the statement.
func scanTerminated(text string, term rune) Statements {
	var stmts Statements
	width := utf8.RuneLen(term)
	for {
		i := strings.IndexRune(text, term)
		if i < 0 {
			break
		}
		stmts = append(stmts, Statement(strings.TrimSpace(text[:i+width])))
		text = text[i+width:]
	}

	if rest := strings.TrimSpace(text); rest != "" {
		stmts = append(stmts, Statement(rest))
	}
	return stmts
}
