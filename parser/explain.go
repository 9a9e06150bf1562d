package parser

import (
	"github.com/sqlc-dev/cqlast/ast"
	"github.com/sqlc-dev/cqlast/internal/explain"
)

// Explain returns an indented dump of the parsed model of a statement.
func Explain(stmt ast.Statement) string {
	return explain.Explain(stmt)
}
