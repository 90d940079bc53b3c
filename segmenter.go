package sqlscript

import (
	"bytes"

	"github.com/schemalex/sqlscript/internal/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Segmenter turns script text into Statements. A Segmenter holds no
// state between calls and may be shared.
type Segmenter struct {
	fs     afero.Fs
	logger *zap.Logger
}

// New creates a Segmenter.
func New(options ...Option) *Segmenter {
	s := &Segmenter{
		fs:     afero.NewOsFs(),
		logger: zap.NewNop(),
	}
	for _, o := range options {
		switch o.Name() {
		case optkeyFs:
			s.fs = o.Value().(afero.Fs)
		case optkeyLogger:
			s.logger = o.Value().(*zap.Logger)
		}
	}
	return s
}

// Segment strips comments from src and splits the rest into statements.
// It never fails: malformed comments only change which lines survive.
func (s *Segmenter) Segment(src []byte) Statements {
	return s.SegmentString(string(src))
}

// SegmentString is like Segment, but takes the script as a string.
// A script that ends inside a block comment is logged as a warning.
func (s *Segmenter) SegmentString(src string) Statements {
	stripper := NewStripper()
	text := stripper.Strip(src)
	if stripper.State() == StateInBlockComment {
		s.logger.Warn("script ends inside a block comment")
	}

	stmts := SplitStatements(text)
	s.logger.Debug("segmented script",
		zap.Int("bytes", len(src)),
		zap.Int("stripped_bytes", len(text)),
		zap.Int("statements", len(stmts)),
	)
	return stmts
}

// SegmentSource reads the whole script from src before segmenting it.
// If reading fails, no statements are returned.
func (s *Segmenter) SegmentSource(src ScriptSource) (Statements, error) {
	var buf bytes.Buffer
	if err := src.WriteScript(&buf); err != nil {
		return nil, errors.Wrap(err, `failed to read script`)
	}
	return s.Segment(buf.Bytes()), nil
}

// SegmentFile reads and segments the local file at path, using the
// Segmenter's filesystem.
func (s *Segmenter) SegmentFile(path string) (Statements, error) {
	s.logger.Debug("reading script file", zap.String("path", path))
	return s.SegmentSource(NewLocalFileSourceFs(s.fs, path))
}

// Segment is a shortcut for New().SegmentString(src).
func Segment(src string) Statements {
	return New().SegmentString(src)
}
