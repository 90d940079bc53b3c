package exec_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/schemalex/sqlscript"
	"github.com/schemalex/sqlscript/exec"
	"github.com/stretchr/testify/assert"
)

func TestPrinter(t *testing.T) {
	specs := []struct {
		Input  string
		Expect string
	}{
		{
			Input:  "CREATE TABLE t (id INT);",
			Expect: "[ok] created table `t`\n\n",
		},
		{
			Input:  "CREATE TABLE `users` (id INT);",
			Expect: "[ok] created table `users`\n\n",
		},
		{
			Input:  "CREATE TABLE",
			Expect: "[ok] CREATE TABLE statement\n\n",
		},
		{
			Input:  "INSERT INTO t VALUES (1);",
			Expect: "[ok] INSERT statement: INSERT INTO t VALUES (1);\n\n",
		},
		{
			Input:  "SELECT * FROM t;",
			Expect: "[ok] SELECT query: SELECT * FROM t;\n[result]\n+------------------+\n| simulated row    |\n+------------------+\n\n",
		},
		{
			Input:  "UPDATE t SET id = 2;",
			Expect: "[ok] UPDATE statement: UPDATE t SET id = 2;\n\n",
		},
		{
			Input:  "DELETE FROM t;",
			Expect: "[ok] DELETE statement: DELETE FROM t;\n\n",
		},
		{
			Input:  "ALTER TABLE t ADD COLUMN c INT;",
			Expect: "[ok] ALTER TABLE statement: ALTER TABLE t ADD COLUMN c INT;\n\n",
		},
		{
			Input:  "DROP TABLE t;",
			Expect: "[ok] DROP TABLE statement: DROP TABLE t;\n\n",
		},
		{
			Input:  "INSERT INTO t VALUES (1), (2), (3), (4), (5), (6), (7), (8);",
			Expect: "[ok] INSERT statement: INSERT INTO t VALUES (1), (2), (3), (4), (5), (6),...\n\n",
		},
		{
			Input:  "USE mydb;",
			Expect: "[exec] SQL statement: USE mydb;\n\n",
		},
		{
			Input:  "  ",
			Expect: "",
		},
	}

	for _, spec := range specs {
		var dst bytes.Buffer
		if !assert.NoError(t, exec.NewPrinter(&dst).Execute(context.Background(), sqlscript.Statement(spec.Input)), "Execute(%q) should succeed", spec.Input) {
			return
		}
		assert.Equal(t, spec.Expect, dst.String(), "Execute(%q)", spec.Input)
	}
}
