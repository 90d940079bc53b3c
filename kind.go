package sqlscript

import (
	"strings"
	"unicode"

	"github.com/schemalex/sqlscript/internal/errors"
)

// Kind is the coarse category of a statement, decided by its
// leading keywords.
type Kind int

const (
	KindOther Kind = iota
	KindCreate
	KindInsert
	KindSelect
	KindUpdate
	KindDelete
	KindAlter
	KindDrop
)

var kindNames = map[Kind]string{
	KindOther:  "Other",
	KindCreate: "Create",
	KindInsert: "Insert",
	KindSelect: "Select",
	KindUpdate: "Update",
	KindDelete: "Delete",
	KindAlter:  "Alter",
	KindDrop:   "Drop",
}

// Kinds lists every Kind, KindOther last.
var Kinds = []Kind{KindCreate, KindInsert, KindSelect, KindUpdate, KindDelete, KindAlter, KindDrop, KindOther}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// ParseKind parses a Kind name, ignoring case.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(name, s) {
			return k, nil
		}
	}
	return KindOther, errors.Errorf(`unknown statement kind '%s'`, s)
}

// kindPrefixes is checked in order against the upper-cased statement.
var kindPrefixes = []struct {
	prefix string
	kind   Kind
}{
	{"CREATE TABLE", KindCreate},
	{"INSERT INTO", KindInsert},
	{"SELECT", KindSelect},
	{"UPDATE", KindUpdate},
	{"DELETE", KindDelete},
	{"ALTER TABLE", KindAlter},
	{"DROP TABLE", KindDrop},
}

// Classify returns the Kind of stmt. Statements that match none of
// the known prefixes, including CREATE DATABASE or DROP INDEX, are
// KindOther.
func Classify(stmt string) Kind {
	s := strings.ToUpper(strings.TrimSpace(stmt))
	for _, p := range kindPrefixes {
		if strings.HasPrefix(s, p.prefix) {
			return p.kind
		}
	}
	return KindOther
}

// TableName extracts the table name from a CREATE TABLE statement.
// An "IF NOT EXISTS" clause is skipped, and the name ends at the first
// '(' or ';'.
func TableName(stmt string) (string, bool) {
	if Classify(stmt) != KindCreate {
		return "", false
	}

	fields := strings.FieldsFunc(stmt, unicode.IsSpace)
	fields = fields[2:]
	if len(fields) >= 3 && strings.EqualFold(fields[0], "IF") && strings.EqualFold(fields[1], "NOT") && strings.EqualFold(fields[2], "EXISTS") {
		fields = fields[3:]
	}
	if len(fields) == 0 {
		return "", false
	}

	name := strings.TrimPrefix(fields[0], "(")
	if i := strings.IndexAny(name, "(;"); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return "", false
	}
	return name, true
}
