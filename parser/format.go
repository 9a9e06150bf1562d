package parser

import (
	"strings"

	"github.com/sqlc-dev/cqlast/ast"
	"github.com/sqlc-dev/cqlast/internal/format"
)

// Format returns the CQL text of the statements, one per line, each
// terminated by a semicolon.
func Format(stmts []ast.Statement) string {
	return format.Format(stmts)
}

// FormatResults formats every result on its own line. Unknowns that trail a
// partially recognized statement are written inside that statement, before
// its semicolon, so that reparsing the output fails where the input did.
func FormatResults(results []*Result) string {
	var sb strings.Builder
	for i, r := range results {
		if i > 0 {
			sb.WriteString("\n")
		}
		writeResult(&sb, r)
	}
	return sb.String()
}

func writeResult(sb *strings.Builder, r *Result) {
	var inline []*ast.Unknown
	for _, u := range r.Unknowns {
		if u != r.rest {
			inline = append(inline, u)
		}
	}
	format.Partial(sb, r.Statement, inline)
	sb.WriteString(";")
	if r.rest != nil {
		sb.WriteString("\n")
		format.Statement(sb, r.rest)
		sb.WriteString(";")
	}
}
