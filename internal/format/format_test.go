package format

import (
	"strings"
	"testing"

	"github.com/sqlc-dev/cqlast/ast"
)

func TestFormat(t *testing.T) {
	stmts := []ast.Statement{
		&ast.Use{Keyspace: ast.NewIdentifier("ks")},
		&ast.Unknown{Text: "  not cql \n"},
		&ast.ApplyBatch{},
	}
	got := Format(stmts)
	want := "USE ks;\nnot cql;\nAPPLY BATCH;"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q", got)
	}
}

func TestStatementNil(t *testing.T) {
	var sb strings.Builder
	Statement(&sb, nil)
	if sb.Len() != 0 {
		t.Errorf("Statement(nil) wrote %q", sb.String())
	}
}

func TestPartial(t *testing.T) {
	var sb strings.Builder
	stmt := &ast.Select{Columns: []ast.SelectElement{&ast.Star{}}, From: ast.NewQualifiedName("", "foo")}
	Partial(&sb, stmt, []*ast.Unknown{{Text: " WHERE some invalid part\n"}, nil, {Text: "  "}})
	if got, want := sb.String(), "SELECT * FROM foo WHERE some invalid part"; got != want {
		t.Errorf("Partial() = %q, want %q", got, want)
	}
}
