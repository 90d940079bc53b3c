package exec

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/schemalex/sqlscript"
	"github.com/schemalex/sqlscript/internal/errors"
	"github.com/schemalex/sqlscript/internal/util"
)

// acknowledgementWidth is the number of characters of a statement
// repeated in its acknowledgement.
const acknowledgementWidth = 50

var kindLabels = map[sqlscript.Kind]string{
	sqlscript.KindInsert: "INSERT statement",
	sqlscript.KindSelect: "SELECT query",
	sqlscript.KindUpdate: "UPDATE statement",
	sqlscript.KindDelete: "DELETE statement",
	sqlscript.KindAlter:  "ALTER TABLE statement",
	sqlscript.KindDrop:   "DROP TABLE statement",
}

const simulatedResult = `[result]
+------------------+
| simulated row    |
+------------------+
`

// Printer is an Executor that does not run anything. It prints an
// acknowledgement for each statement, according to its Kind.
type Printer struct {
	dst io.Writer
}

func NewPrinter(dst io.Writer) *Printer {
	return &Printer{dst: dst}
}

func (p *Printer) Execute(_ context.Context, stmt sqlscript.Statement) error {
	s := strings.TrimSpace(stmt.String())
	if s == "" {
		return nil
	}

	var buf bytes.Buffer
	switch kind := stmt.Kind(); kind {
	case sqlscript.KindCreate:
		if name, ok := sqlscript.TableName(s); ok {
			fmt.Fprintf(&buf, "[ok] created table %s\n", util.Backquote(strings.Trim(name, "`")))
		} else {
			buf.WriteString("[ok] CREATE TABLE statement\n")
		}
	case sqlscript.KindOther:
		fmt.Fprintf(&buf, "[exec] SQL statement: %s\n", util.Truncate(s, acknowledgementWidth))
	default:
		fmt.Fprintf(&buf, "[ok] %s: %s\n", kindLabels[kind], util.Truncate(s, acknowledgementWidth))
		if kind == sqlscript.KindSelect {
			buf.WriteString(simulatedResult)
		}
	}
	buf.WriteByte('\n')

	if _, err := buf.WriteTo(p.dst); err != nil {
		return errors.Wrap(err, `failed to write acknowledgement`)
	}
	return nil
}
