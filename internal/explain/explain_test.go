package explain_test

import (
	"strings"
	"testing"

	"github.com/sqlc-dev/cqlast/ast"
	"github.com/sqlc-dev/cqlast/internal/explain"
	"github.com/sqlc-dev/cqlast/parser"
)

func TestExplainStatements(t *testing.T) {
	tests := []struct {
		name string
		cql  string
		want string
	}{
		{
			name: "select",
			cql:  "SELECT * FROM ks.users WHERE id = 1",
			want: `Select (children 3)
 SelectList (children 1)
  Star
 Table ks.users
 Where (children 1)
  Relation = (children 2)
   Column id
   Literal Integer 1
`,
		},
		{
			name: "insert",
			cql:  "INSERT INTO t (a) VALUES (1) USING TTL 5",
			want: `Insert (children 4)
 Table t
 Columns (children 1)
  Identifier a
 Values (children 1)
  Literal Integer 1
 Using (children 1)
  TTL (children 1)
   Literal Integer 5
`,
		},
		{
			name: "raw operand",
			cql:  "SELECT * FROM t WHERE a = 1 + 2",
			want: `Select (children 3)
 SelectList (children 1)
  Star
 Table t
 Where (children 1)
  Relation = (children 2)
   Column a
   Raw 1 + 2
`,
		},
		{
			name: "list users",
			cql:  "LIST USERS",
			want: "ListUsers\n",
		},
		{
			name: "use",
			cql:  "USE ks",
			want: "Use ks\n",
		},
		{
			name: "apply batch",
			cql:  "APPLY BATCH",
			want: "ApplyBatch\n",
		},
		{
			name: "truncate",
			cql:  "TRUNCATE TABLE ks.t",
			want: "Truncate (children 1)\n Table ks.t\n",
		},
		{
			name: "drop",
			cql:  "DROP TABLE IF EXISTS t",
			want: "DropTable t (children 1)\n IfExists\n",
		},
		{
			name: "unknown",
			cql:  "not cql",
			want: "Unknown \"not cql\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := explain.Explain(parser.Parse(tt.cql).Statement)
			if got != tt.want {
				t.Errorf("Explain(%q)\nwant:\n%s\ngot:\n%s", tt.cql, tt.want, got)
			}
		})
	}
}

func TestNodeDepth(t *testing.T) {
	m := &ast.MapLiteral{Entries: []ast.MapEntry{{
		Key:   &ast.StringLiteral{Value: "a"},
		Value: &ast.IntegerLiteral{Text: "1"},
	}}}
	var sb strings.Builder
	explain.Node(&sb, m, 1)
	want := ` Map (children 1)
  Entry (children 2)
   Literal String "a"
   Literal Integer 1
`
	if sb.String() != want {
		t.Errorf("Node()\nwant:\n%s\ngot:\n%s", want, sb.String())
	}
}

func TestNodeNil(t *testing.T) {
	var sb strings.Builder
	explain.Node(&sb, nil, 0)
	if sb.String() != "<nil>\n" {
		t.Errorf("Node(nil) = %q", sb.String())
	}
}
