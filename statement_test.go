package sqlscript

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatement(t *testing.T) {
	stmt := Statement("INSERT INTO t VALUES (1);")
	assert.True(t, stmt.Terminated())
	assert.False(t, Statement("SELECT 1").Terminated())
	assert.Equal(t, "INSERT INTO...", stmt.Preview(11))
	assert.Equal(t, stmt.String(), stmt.Preview(80))
}

func TestStatementsWriteTo(t *testing.T) {
	stmts := Statements{"A;", "B;", "C"}

	var buf bytes.Buffer
	n, err := stmts.WriteTo(&buf)
	if !assert.NoError(t, err, "WriteTo should succeed") {
		return
	}
	assert.Equal(t, "A;\nB;\nC\n", buf.String())
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, 3, stmts.Len())
	assert.Equal(t, []string{"A;", "B;", "C"}, stmts.Strings())
}
