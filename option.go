package sqlscript

import (
	"github.com/schemalex/sqlscript/internal/option"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	optkeyFs     = "fs"
	optkeyLogger = "logger"
)

// WithFs specifies the filesystem that local script files are read
// from. If unspecified, the OS filesystem is used
func WithFs(fs afero.Fs) Option {
	return option.New(optkeyFs, fs)
}

// WithLogger specifies the logger that receives debug information
// about segmentation. If unspecified, nothing is logged
func WithLogger(l *zap.Logger) Option {
	return option.New(optkeyLogger, l)
}
