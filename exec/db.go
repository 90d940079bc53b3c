package exec

import (
	"context"
	"database/sql"
	"io"
	"strings"

	"github.com/schemalex/sqlscript"
	"github.com/schemalex/sqlscript/internal/errors"
)

// Execer is implemented by *sql.DB, *sql.Conn and *sql.Tx.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// DB is an Executor that sends each statement to a database.
type DB struct {
	execer Execer
}

func NewDB(e Execer) *DB {
	return &DB{execer: e}
}

// Execute runs the statement without its terminator.
func (d *DB) Execute(ctx context.Context, stmt sqlscript.Statement) error {
	query := strings.TrimSpace(strings.TrimSuffix(stmt.String(), string(sqlscript.Terminator)))
	if query == "" {
		return nil
	}

	if _, err := d.execer.ExecContext(ctx, query); err != nil {
		return errors.Wrapf(err, `failed to execute "%s"`, query)
	}
	return nil
}

// MySQLSource is a script source that can also be connected to.
// sqlscript.NewMySQLSource returns one.
type MySQLSource interface {
	sqlscript.ScriptSource
	Open() (*sql.DB, error)
}

// Deploy runs the statements against the database specified by target
// inside a single transaction. The transaction is rolled back if any
// statement fails.
//
// Note that MySQL commits implicitly after most DDL statements, so a
// failing script may still leave earlier CREATE/ALTER/DROP TABLE
// statements applied.
func Deploy(ctx context.Context, target sqlscript.ScriptSource, dst io.Writer, stmts sqlscript.Statements, options ...Option) (*Report, error) {
	mysqlsrc, ok := target.(MySQLSource)
	if !ok {
		return nil, errors.New(`deploy target must be a valid mysql source`)
	}

	db, err := mysqlsrc.Open()
	if err != nil {
		return nil, errors.Wrap(err, `failed to open connection to database`)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, `failed to begin transaction`)
	}

	report, err := Run(ctx, dst, stmts, NewDB(tx), options...)
	if err != nil {
		tx.Rollback()
		return report, errors.Wrap(err, `failed to deploy script`)
	}

	if err := tx.Commit(); err != nil {
		return report, errors.Wrap(err, `failed to commit`)
	}
	return report, nil
}
