package exec

import (
	mapset "github.com/deckarep/golang-set"
	"github.com/schemalex/sqlscript"
	"github.com/schemalex/sqlscript/internal/option"
	"go.uber.org/zap"
)

type Option = sqlscript.Option

const (
	optkeyKinds        = "kinds"
	optkeyLogger       = "logger"
	optkeyPreviewWidth = "preview-width"
)

// DefaultPreviewWidth is the number of characters of each statement
// echoed by Run before it is executed.
const DefaultPreviewWidth = 80

// WithKinds restricts execution to statements of the given kinds.
// Other statements are counted as skipped. If unspecified, every
// statement is executed
func WithKinds(kinds ...sqlscript.Kind) Option {
	set := mapset.NewSet()
	for _, k := range kinds {
		set.Add(k)
	}
	return option.New(optkeyKinds, set)
}

// WithLogger specifies the logger that receives debug information
// about each statement.
func WithLogger(l *zap.Logger) Option {
	return option.New(optkeyLogger, l)
}

// WithPreviewWidth specifies how many characters of each statement
// are echoed before it is executed. 0 echoes the whole statement.
func WithPreviewWidth(n int) Option {
	return option.New(optkeyPreviewWidth, n)
}
