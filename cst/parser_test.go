package cst

import (
	"strings"
	"testing"

	"github.com/sqlc-dev/cqlast/token"
)

func TestSExpr(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			name:     "use",
			src:      "USE ks;",
			expected: `(source_file (use "USE" (identifier "ks")) ";")`,
		},
		{
			name:     "drop",
			src:      "DROP TABLE IF EXISTS ks.t",
			expected: `(source_file (drop_table "DROP" "TABLE" (if_exists "IF" "EXISTS") (qualified_name (identifier "ks") "." (identifier "t"))))`,
		},
		{
			name:     "unrecognized",
			src:      "hello world",
			expected: `(source_file (ERROR (identifier "hello") (identifier "world")))`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := Parse(tt.src)
			if got := tree.Root.SExpr(); got != tt.expected {
				t.Errorf("SExpr() =\n%s\nwant\n%s", got, tt.expected)
			}
		})
	}
}

func TestParseStatementKinds(t *testing.T) {
	tests := []struct {
		src  string
		kind Kind
	}{
		{"SELECT * FROM t", KindSelectStatement},
		{"INSERT INTO t (a) VALUES (1)", KindInsertStatement},
		{"BEGIN BATCH DELETE FROM t WHERE a = 1", KindDeleteStatement},
		{"CREATE KEYSPACE ks WITH replication = {}", KindCreateKeyspace},
		{"CREATE INDEX ON t (a)", KindCreateIndex},
		{"CREATE MATERIALIZED VIEW v AS SELECT * FROM t WHERE a IS NOT NULL PRIMARY KEY (a)", KindCreateMaterializedView},
		{"ALTER USER u NOSUPERUSER", KindAlterUser},
		{"GRANT r TO u", KindGrantRole},
		{"LIST SELECT OF u", KindListPermissions},
		{"LIST ROLES", KindListRoles},
	}

	for _, tt := range tests {
		tree := Parse(tt.src)
		if len(tree.Errors) != 0 {
			t.Errorf("Parse(%q) errors: %v", tt.src, tree.Errors)
			continue
		}
		if got := tree.Root.Children[0].Kind; got != tt.kind {
			t.Errorf("Parse(%q) kind = %s, want %s", tt.src, got, tt.kind)
		}
	}
}

func TestTrailingError(t *testing.T) {
	src := "SELECT * FROM foo WHERE some invalid part"
	tree := Parse(src)
	if len(tree.Errors) != 1 {
		t.Fatalf("Expected 1 error, got %d", len(tree.Errors))
	}

	stmt := tree.Root.Children[0]
	if stmt.Kind != KindSelectStatement {
		t.Fatalf("Expected select_statement, got %s", stmt.Kind)
	}
	if !stmt.HasError() || stmt.IsError() {
		t.Errorf("Statement should contain an error without being one")
	}
	bad := stmt.Errors()
	if len(bad) != 1 {
		t.Fatalf("Expected 1 error node, got %d", len(bad))
	}
	if got := bad[0].Text(src); got != "WHERE some invalid part" {
		t.Errorf("error text = %q", got)
	}
	if stmt.Child(KindWhereSpec) != nil {
		t.Errorf("failed WHERE clause should not be attached")
	}

	err := tree.Errors[0]
	if err.Near != "invalid" {
		t.Errorf("Near = %q, want invalid", err.Near)
	}
	if !strings.Contains(err.Error(), "line 1") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestTotalFailure(t *testing.T) {
	tree := Parse("SELECT * FROM")
	if len(tree.Errors) != 1 {
		t.Fatalf("Expected 1 error, got %d", len(tree.Errors))
	}
	if !tree.Root.Children[0].IsError() {
		t.Errorf("Expected an ERROR node, got %s", tree.Root.Children[0].Kind)
	}
	if !strings.Contains(tree.Errors[0].Message, "end of statement") {
		t.Errorf("Message = %q", tree.Errors[0].Message)
	}
}

func TestNodeHelpers(t *testing.T) {
	src := "SELECT DISTINCT a, b FROM t"
	stmt := Parse(src).Root.Children[0]

	if !stmt.HasKeyword(token.DISTINCT) {
		t.Errorf("HasKeyword(DISTINCT) = false")
	}
	if stmt.HasKeyword(token.JSON) {
		t.Errorf("HasKeyword(JSON) = true")
	}
	elems := stmt.Child(KindSelectElements)
	if got := len(elems.ChildrenOf(KindSelectElement)); got != 2 {
		t.Errorf("ChildrenOf(select_element) = %d, want 2", got)
	}
	after := stmt.After(token.FROM)
	if len(after) != 1 || after[0].Kind != KindQualifiedName {
		t.Errorf("After(FROM) = %v", after)
	}
	if got := stmt.Text(src); got != src {
		t.Errorf("Text() = %q", got)
	}
	if !after[0].Children[0].IsLeaf() {
		t.Errorf("identifier should be a leaf")
	}
}

func TestComments(t *testing.T) {
	tree := Parse("/* header */ USE ks -- trailing\n;")
	if len(tree.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", tree.Errors)
	}
	if got := tree.Root.Children[0].Kind; got != KindUse {
		t.Errorf("kind = %s, want use", got)
	}
}

func TestUnterminatedComment(t *testing.T) {
	tree := Parse("USE ks /* open")
	if len(tree.Errors) == 0 {
		t.Fatalf("expected a syntax error")
	}
	use := tree.Root.Children[0]
	if use.Kind != KindUse || !use.HasError() {
		t.Errorf("got %s, want use with a trailing error", use.SExpr())
	}
}
