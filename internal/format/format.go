// Package format renders CQL scripts from parsed statements.
package format

import (
	"strings"

	"github.com/sqlc-dev/cqlast/ast"
)

// Format returns the CQL text of the statements, each terminated by a
// semicolon and separated by newlines.
func Format(stmts []ast.Statement) string {
	var sb strings.Builder
	for i, stmt := range stmts {
		if i > 0 {
			sb.WriteString("\n")
		}
		Statement(&sb, stmt)
		sb.WriteString(";")
	}
	return sb.String()
}

// Partial formats a statement followed by the unparsed text that trails it.
// The fragments stay inside the statement, separated by spaces, so the
// output is as incomplete as the input was.
func Partial(sb *strings.Builder, stmt ast.Statement, trailing []*ast.Unknown) {
	Statement(sb, stmt)
	for _, u := range trailing {
		if u == nil {
			continue
		}
		if text := strings.TrimSpace(u.Text); text != "" {
			sb.WriteString(" ")
			sb.WriteString(text)
		}
	}
}

// Statement formats a single statement. Unrecognized text is written back
// with surrounding whitespace trimmed.
func Statement(sb *strings.Builder, stmt ast.Statement) {
	if stmt == nil {
		return
	}
	if u, ok := stmt.(*ast.Unknown); ok {
		sb.WriteString(strings.TrimSpace(u.Text))
		return
	}
	ast.WriteStatement(sb, stmt)
}
