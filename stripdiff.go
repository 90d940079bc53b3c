package sqlscript

import (
	"io"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/schemalex/sqlscript/internal/errors"
)

// WriteStripDiff writes a unified diff between src and the text that
// remains after comment stripping. Nothing is written if stripping
// leaves src unchanged.
func WriteStripDiff(dst io.Writer, name string, src []byte) error {
	text := string(src)
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(text),
		B:        difflib.SplitLines(StripComments(text)),
		FromFile: name,
		ToFile:   name + " (stripped)",
		Context:  3,
	}
	if err := difflib.WriteUnifiedDiff(dst, diff); err != nil {
		return errors.Wrap(err, `failed to write diff`)
	}
	return nil
}
