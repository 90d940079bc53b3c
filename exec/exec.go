// Package exec feeds segmented statements, in order, to an Executor.
package exec

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set"
	"github.com/schemalex/sqlscript"
	"github.com/schemalex/sqlscript/internal/errors"
	"go.uber.org/zap"
)

// Executor consumes statements one at a time.
type Executor interface {
	Execute(ctx context.Context, stmt sqlscript.Statement) error
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(context.Context, sqlscript.Statement) error

func (f ExecutorFunc) Execute(ctx context.Context, stmt sqlscript.Statement) error {
	return f(ctx, stmt)
}

// Report summarizes a call to Run.
type Report struct {
	Total    int
	Executed int
	Skipped  int
	// Tables holds the names of the tables created by executed
	// CREATE TABLE statements.
	Tables mapset.Set
}

// TableNames returns the created table names, sorted.
func (r *Report) TableNames() []string {
	names := make([]string, 0, r.Tables.Cardinality())
	for _, v := range r.Tables.ToSlice() {
		names = append(names, v.(string))
	}
	sort.Strings(names)
	return names
}

func (r *Report) WriteTo(dst io.Writer) (int64, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "script finished: executed %d of %d statements", r.Executed, r.Total)
	if r.Skipped > 0 {
		fmt.Fprintf(&buf, " (%d skipped)", r.Skipped)
	}
	buf.WriteByte('\n')
	if names := r.TableNames(); len(names) > 0 {
		buf.WriteString("tables created: ")
		buf.WriteString(strings.Join(names, ", "))
		buf.WriteByte('\n')
	}
	return buf.WriteTo(dst)
}

// Run hands every statement to e in order, echoing a 1-based index and
// a preview of each statement to dst first. It stops at the first
// statement that fails, and checks ctx between statements.
func Run(ctx context.Context, dst io.Writer, stmts sqlscript.Statements, e Executor, options ...Option) (*Report, error) {
	var kinds mapset.Set
	width := DefaultPreviewWidth
	logger := zap.NewNop()
	for _, o := range options {
		switch o.Name() {
		case optkeyKinds:
			kinds = o.Value().(mapset.Set)
		case optkeyLogger:
			logger = o.Value().(*zap.Logger)
		case optkeyPreviewWidth:
			width = o.Value().(int)
		}
	}

	report := &Report{
		Total:  len(stmts),
		Tables: mapset.NewSet(),
	}
	for i, stmt := range stmts {
		if err := ctx.Err(); err != nil {
			return report, errors.Wrap(err, `script execution interrupted`)
		}

		index := i + 1
		kind := stmt.Kind()
		if kinds != nil && !kinds.Contains(kind) {
			logger.Debug("skipping statement", zap.Int("index", index), zap.Stringer("kind", kind))
			report.Skipped++
			continue
		}

		if _, err := fmt.Fprintf(dst, "statement %d: %s\n", index, stmt.Preview(width)); err != nil {
			return report, errors.Wrap(err, `failed to write statement header`)
		}

		logger.Debug("executing statement", zap.Int("index", index), zap.Stringer("kind", kind))
		if err := e.Execute(ctx, stmt); err != nil {
			return report, errors.Wrapf(err, `failed to execute statement %d`, index)
		}
		report.Executed++

		if name, ok := sqlscript.TableName(stmt.String()); ok {
			report.Tables.Add(name)
		}
	}
	return report, nil
}
