package sqlscript

import (
	"strconv"
	"strings"
)

const (
	lineCommentMarker = "--"
	blockCommentBegin = "/*"
	blockCommentEnd   = "*/"
)

// CommentState is the state of a Stripper between two lines.
type CommentState int

const (
	// StateNormal means that the next line is outside any comment.
	StateNormal CommentState = iota
	// StateInBlockComment means that a "/*" was seen and the matching
	// "*/" has not been seen yet.
	StateInBlockComment
)

func (s CommentState) String() string {
	switch s {
	case StateNormal:
		return "Normal"
	case StateInBlockComment:
		return "InBlockComment"
	default:
		return "CommentState(" + strconv.Itoa(int(s)) + ")"
	}
}

// Stripper removes comments from a script one line at a time.
//
// The rules are line oriented:
//
//   - everything from the first "--" to the end of the line is removed
//   - a line containing "/*" starts a block comment, and a line containing
//     "*/" ends it. Either way, that line is dropped as a whole, including
//     any text before "/*" or after "*/"
//   - lines inside a block comment are dropped
//   - lines that are blank after the above are dropped
//
// A block comment that is never closed swallows the rest of the script.
// State reports StateInBlockComment afterwards.
type Stripper struct {
	state CommentState
}

// NewStripper creates a Stripper in StateNormal.
func NewStripper() *Stripper {
	return &Stripper{}
}

// State returns the comment state carried over to the next line.
func (s *Stripper) State() CommentState {
	return s.state
}

// Reset puts the Stripper back in StateNormal.
func (s *Stripper) Reset() {
	s.state = StateNormal
}

// Line processes a single line, without its trailing newline. It returns
// the text to keep and true, or an empty string and false if the line
// is to be dropped. Kept text is not trimmed.
func (s *Stripper) Line(line string) (string, bool) {
	if i := strings.Index(line, lineCommentMarker); i >= 0 {
		line = line[:i]
	}

	if strings.Contains(line, blockCommentBegin) {
		s.state = StateInBlockComment
		if strings.Contains(line, blockCommentEnd) {
			s.state = StateNormal
			return "", false
		}
	} else if strings.Contains(line, blockCommentEnd) {
		s.state = StateNormal
		return "", false
	}

	if s.state == StateInBlockComment || strings.TrimSpace(line) == "" {
		return "", false
	}
	return line, true
}

// Strip runs every line of src through Line, starting from the current
// state, and joins the kept lines with "\n". Both "\n" and "\r\n" end
// a line.
func (s *Stripper) Strip(src string) string {
	var buf strings.Builder
	var kept int
	for _, line := range strings.Split(src, "\n") {
		text, ok := s.Line(strings.TrimSuffix(line, "\r"))
		if !ok {
			continue
		}
		if kept > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(text)
		kept++
	}
	return buf.String()
}

// StripComments removes comments and blank lines from src using a
// fresh Stripper.
func StripComments(src string) string {
	return NewStripper().Strip(src)
}
