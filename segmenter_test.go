package sqlscript

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestSegment(t *testing.T) {
	type Spec struct {
		Name   string
		Input  string
		Expect []string
	}

	specs := []Spec{
		{
			Name:   "simple statements",
			Input:  "A; B; C;",
			Expect: []string{"A;", "B;", "C;"},
		},
		{
			Name:   "missing final terminator",
			Input:  "X; Y",
			Expect: []string{"X;", "Y"},
		},
		{
			Name:   "line comment after statement",
			Input:  "SELECT 1; -- note\n",
			Expect: []string{"SELECT 1;"},
		},
		{
			Name:   "terminator inside line comment",
			Input:  "SELECT 1; -- SELECT 2; SELECT 3;\nSELECT 4;",
			Expect: []string{"SELECT 1;", "SELECT 4;"},
		},
		{
			Name:   "only whitespace and comments",
			Input:  "  \n-- one\n/* two\nthree */\n\t\n",
			Expect: nil,
		},
		{
			Name:   "empty script",
			Input:  "",
			Expect: nil,
		},
		{
			Name:   "one line block comment drops the line",
			Input:  "A;\n/* skip */ B;",
			Expect: []string{"A;"},
		},
		{
			// The comment rules drop any line holding "/*" as a whole, so
			// the usual reading of this input as ["A;"] does not apply
			// when everything is on one line.
			Name:   "one line block comment drops text on both sides, not just after the comment",
			Input:  "A; /* skip */ B;",
			Expect: nil,
		},
		{
			Name:   "CRLF line endings",
			Input:  "SELECT 1\r\nFROM t;\r\n",
			Expect: []string{"SELECT 1\nFROM t;"},
		},
		{
			Name:   "unterminated block comment swallows the rest",
			Input:  "A;\n/* open\nB;\nC;\n",
			Expect: []string{"A;"},
		},
		{
			Name:   "statement spanning lines",
			Input:  "SELECT\n  id,\n  name -- display name\nFROM t\nWHERE id = 1;\n",
			Expect: []string{"SELECT\n  id,\n  name \nFROM t\nWHERE id = 1;"},
		},
		{
			Name:   "terminator inside quotes is not special",
			Input:  "INSERT INTO t VALUES ('a;b');",
			Expect: []string{"INSERT INTO t VALUES ('a;", "b');"},
		},
		{
			Name:   "empty statements",
			Input:  "A;;\n;",
			Expect: []string{"A;", ";", ";"},
		},
		{
			Name:   "end to end",
			Input:  "CREATE TABLE t (id INT);\nINSERT INTO t VALUES (1);\n-- done\n",
			Expect: []string{"CREATE TABLE t (id INT);", "INSERT INTO t VALUES (1);"},
		},
	}

	for _, spec := range specs {
		t.Run(spec.Name, func(t *testing.T) {
			got := Segment(spec.Input)
			if diff := cmp.Diff(spec.Expect, got.Strings(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Segment(%q) mismatch (-want +got):\n%s", spec.Input, diff)
			}
		})
	}
}

const sampleScript = `-- sample schema
CREATE TABLE users (
  id INT,      -- primary key
  name VARCHAR(20)
);

/*
 * seed data
 */
INSERT INTO users VALUES (1, 'alice');
INSERT INTO users VALUES (2, 'bob'); INSERT INTO users VALUES (3, 'carol');

SELECT * FROM users
`

func TestSegmentIdempotent(t *testing.T) {
	s := New()
	first := s.SegmentString(sampleScript)
	second := s.SegmentString(sampleScript)
	assert.Equal(t, first, second, "segmenting twice should yield the same statements")
	assert.Equal(t, first, s.Segment([]byte(sampleScript)), "Segment and SegmentString should agree")
	assert.Len(t, first, 5)
}

func TestSegmentTerminatorCount(t *testing.T) {
	for _, input := range []string{sampleScript, "A;;B", "A; -- ;\n;", "x"} {
		stripped := StripComments(input)
		var terminated int
		for _, stmt := range Segment(input) {
			if stmt.Terminated() {
				terminated++
			}
		}
		assert.Equal(t, strings.Count(stripped, string(Terminator)), terminated, "input %q", input)
	}
}

func TestSegmentPreservesText(t *testing.T) {
	stripped := StripComments(sampleScript)
	joined := strings.Join(Segment(sampleScript).Strings(), " ")
	assert.Equal(t, strings.Join(strings.Fields(stripped), " "), strings.Join(strings.Fields(joined), " "),
		"statements should reproduce the stripped script modulo whitespace")
}

func TestSegmentFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if !assert.NoError(t, afero.WriteFile(fs, "/scripts/init.sql", []byte("CREATE TABLE t (id INT);\nINSERT INTO t VALUES (1);\n-- done\n"), 0644), "writing fixture should succeed") {
		return
	}

	s := New(WithFs(fs))

	stmts, err := s.SegmentFile("/scripts/init.sql")
	if !assert.NoError(t, err, "SegmentFile should succeed") {
		return
	}
	assert.Equal(t, Statements{"CREATE TABLE t (id INT);", "INSERT INTO t VALUES (1);"}, stmts)

	stmts, err = s.SegmentFile("/scripts/missing.sql")
	if !assert.Error(t, err, "SegmentFile should fail for a missing file") {
		return
	}
	assert.Nil(t, stmts, "no statements should be returned on error")
	assert.True(t, IsNotFound(err), "error should be a not found error: %s", err)
	assert.False(t, IsReadError(err), "error should not be a read error")
}

func TestSegmentFileInvalidUTF8(t *testing.T) {
	fs := afero.NewMemMapFs()
	if !assert.NoError(t, afero.WriteFile(fs, "/scripts/binary.sql", []byte("SELECT '\xff\xfe';\n"), 0644), "writing fixture should succeed") {
		return
	}

	stmts, err := New(WithFs(fs)).SegmentFile("/scripts/binary.sql")
	if !assert.Error(t, err, "SegmentFile should fail for invalid UTF-8") {
		return
	}
	assert.Nil(t, stmts, "no statements should be returned on error")
	assert.True(t, IsReadError(err), "error should be a read error: %s", err)
}

func TestSegmentSource(t *testing.T) {
	stmts, err := New().SegmentSource(NewReaderSource(strings.NewReader("A;\nB")))
	if !assert.NoError(t, err, "SegmentSource should succeed") {
		return
	}
	assert.Equal(t, []string{"A;", "B"}, stmts.Strings())
}
