package parser_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sqlc-dev/cqlast/ast"
	"github.com/sqlc-dev/cqlast/parser"
)

// testMetadata holds optional metadata for a test case
type testMetadata struct {
	Todo   bool   `json:"todo,omitempty"`
	Source string `json:"source,omitempty"`
}

// TestParser tests the parser using test cases from the testdata directory.
// Each subdirectory in testdata represents a test case with:
// - query.cql: The CQL statements to parse
// - expected.cql: The statements as the formatter writes them back
// - explain.txt (optional): The tree dump of every statement
// - metadata.json (optional): Metadata including:
//   - todo: true if the test is not yet expected to pass
func TestParser(t *testing.T) {
	testdataDir := "testdata"

	entries, err := os.ReadDir(testdataDir)
	if err != nil {
		t.Fatalf("Failed to read testdata directory: %v", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		testName := entry.Name()
		testDir := filepath.Join(testdataDir, testName)

		t.Run(testName, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
			defer cancel()

			var metadata testMetadata
			if metadataBytes, err := os.ReadFile(filepath.Join(testDir, "metadata.json")); err == nil {
				if err := json.Unmarshal(metadataBytes, &metadata); err != nil {
					t.Fatalf("Failed to parse metadata.json: %v", err)
				}
			}

			results, err := parser.ParseFile(ctx, filepath.Join(testDir, "query.cql"))
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			if len(results) == 0 {
				if metadata.Todo {
					t.Skipf("TODO: Parser returned no statements")
				}
				t.Fatalf("Expected at least 1 statement, got 0")
			}

			expected, err := os.ReadFile(filepath.Join(testDir, "expected.cql"))
			if err != nil {
				t.Fatalf("Failed to read expected.cql: %v", err)
			}
			got := parser.FormatResults(results) + "\n"
			if got != string(expected) {
				if metadata.Todo {
					t.Skipf("TODO: formatted output differs")
				}
				t.Errorf("Formatted output mismatch\nwant:\n%s\ngot:\n%s", expected, got)
			}

			if explainBytes, err := os.ReadFile(filepath.Join(testDir, "explain.txt")); err == nil {
				var sb strings.Builder
				for _, r := range results {
					for _, stmt := range r.Statements() {
						sb.WriteString(parser.Explain(stmt))
					}
				}
				if sb.String() != string(explainBytes) {
					t.Errorf("Explain output mismatch\nwant:\n%s\ngot:\n%s", explainBytes, sb.String())
				}
			}

			// Every statement must survive JSON encoding.
			for _, r := range results {
				if _, err := json.Marshal(r.Statement); err != nil {
					t.Fatalf("JSON marshal error: %v", err)
				}
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		cql      string
		expected string
	}{
		{"select star", "SELECT * FROM tbl", "SELECT * FROM tbl"},
		{"distinct json", "SELECT DISTINCT JSON * FROM tbl", "SELECT DISTINCT JSON * FROM tbl"},
		{"aliases", "SELECT col AS col2, func(*) AS func2 FROM tbl;", "SELECT col AS col2, func(*) AS func2 FROM tbl"},
		{"lower case keywords", "select * from ks.Tbl where col >= 3.5", "SELECT * FROM ks.tbl WHERE col >= 3.5"},
		{"not equal angle", "SELECT * FROM tbl WHERE col <> -5", "SELECT * FROM tbl WHERE col <> -5"},
		{"not equal bang", "SELECT * FROM tbl WHERE col != 5", "SELECT * FROM tbl WHERE col != 5"},
		{"blob", "SELECT * FROM tbl WHERE col = 0XFF", "SELECT * FROM tbl WHERE col = 0XFF"},
		{"dollar string", "SELECT * FROM tbl WHERE col = $$ a code's block $$", "SELECT * FROM tbl WHERE col = $$ a code's block $$"},
		{"function comparison", "SELECT * FROM tbl WHERE func(*) = func2(*)", "SELECT * FROM tbl WHERE func(*) = func2(*)"},
		{"in list", "SELECT * FROM tbl WHERE col IN ( 'literal', 5, func(*), true )", "SELECT * FROM tbl WHERE col IN ('literal', 5, func(*), true)"},
		{"tuple in", "SELECT * FROM tbl WHERE (col1, col2) IN (( 5, 'stuff'), (6, 'other'))", "SELECT * FROM tbl WHERE (col1, col2) IN ((5, 'stuff'), (6, 'other'))"},
		{"in marker", "SELECT * FROM tbl WHERE id IN ?", "SELECT * FROM tbl WHERE id IN ?"},
		{"token", "SELECT * FROM tbl WHERE token(a, b) > token(1, 2)", "SELECT * FROM tbl WHERE TOKEN(a, b) > token(1, 2)"},
		{"contains key", "SELECT * FROM tbl WHERE m CONTAINS KEY 'k' ALLOW FILTERING", "SELECT * FROM tbl WHERE m CONTAINS KEY 'k' ALLOW FILTERING"},
		{"order default asc", "SELECT a FROM tbl WHERE k = 1 ORDER BY c", "SELECT a FROM tbl WHERE k = 1 ORDER BY c ASC"},
		{"per partition limit", "SELECT * FROM tbl PER PARTITION LIMIT 2 LIMIT 10", "SELECT * FROM tbl PER PARTITION LIMIT 2 LIMIT 10"},
		{"group by", "SELECT a, count(*) FROM tbl GROUP BY a", "SELECT a, count(*) FROM tbl GROUP BY a"},
		{"quoted identifier", `SELECT "MixedCase" FROM "Tbl"`, `SELECT "MixedCase" FROM "Tbl"`},
		{"insert", "INSERT INTO tbl (a, b) VALUES (1, 'x') IF NOT EXISTS USING TTL 10", "INSERT INTO tbl (a, b) VALUES (1, 'x') IF NOT EXISTS USING TTL 10"},
		{"insert json", "INSERT INTO tbl JSON '{\"a\": 1}' DEFAULT UNSET", "INSERT INTO tbl JSON '{\"a\": 1}' DEFAULT UNSET"},
		{"update", "UPDATE tbl SET a = a + 1, m['k'] = 'v' WHERE id = ? IF EXISTS", "UPDATE tbl SET a = a + 1, m['k'] = 'v' WHERE id = ? IF EXISTS"},
		{"delete", "DELETE m['k'] FROM tbl WHERE id = :id IF a = 1", "DELETE m['k'] FROM tbl WHERE id = :id IF a = 1"},
		{"batch", "BEGIN UNLOGGED BATCH INSERT INTO tbl (a) VALUES (1)", "BEGIN UNLOGGED BATCH INSERT INTO tbl (a) VALUES (1)"},
		{"apply batch", "apply batch", "APPLY BATCH"},
		{"use", "USE MyKeyspace", "USE mykeyspace"},
		{"truncate", "TRUNCATE tbl", "TRUNCATE TABLE tbl"},
		{"drop if exists", "DROP TABLE IF EXISTS ks.tbl", "DROP TABLE IF EXISTS ks.tbl"},
		{"drop keyspace", "drop keyspace ks", "DROP KEYSPACE ks"},
		{"create keyspace", "CREATE KEYSPACE ks WITH replication = {'class': 'SimpleStrategy'} AND durable_writes = true",
			"CREATE KEYSPACE ks WITH REPLICATION = {'class':'SimpleStrategy'} AND DURABLE_WRITES = TRUE"},
		{"create table", "CREATE TABLE IF NOT EXISTS t (id uuid PRIMARY KEY, vals list<frozen<map<text, int>>>)",
			"CREATE TABLE IF NOT EXISTS t (id UUID PRIMARY KEY, vals LIST<FROZEN<MAP<TEXT, INT>>>)"},
		{"grant", "GRANT SELECT ON ks.tbl TO analyst", "GRANT SELECT ON TABLE ks.tbl TO analyst"},
		{"revoke all", "REVOKE ALL ON ALL KEYSPACES FROM analyst", "REVOKE ALL PERMISSIONS ON ALL KEYSPACES FROM analyst"},
		{"grant role", "GRANT reader TO alice", "GRANT reader TO alice"},
		{"list roles", "LIST ROLES OF alice NORECURSIVE", "LIST ROLES OF alice NORECURSIVE"},
		{"create user", "CREATE USER bob WITH PASSWORD 'pw' NOSUPERUSER", "CREATE USER bob WITH PASSWORD 'pw' NOSUPERUSER"},
		{"grant on function overload", "GRANT EXECUTE ON FUNCTION ks.f(int) TO r", "GRANT EXECUTE ON FUNCTION ks.f(INT) TO r"},
		{"grant on function", "GRANT EXECUTE ON FUNCTION ks.f TO r", "GRANT EXECUTE ON FUNCTION ks.f TO r"},
		{"grant on all mbeans", "grant select on all mbeans to r", "GRANT SELECT ON ALL MBEANS TO r"},
		{"grant on mbean", "GRANT DESCRIBE ON MBEAN 'org.apache.cassandra.db:type=Tables' TO r", "GRANT DESCRIBE ON MBEAN 'org.apache.cassandra.db:type=Tables' TO r"},
		{"revoke on mbeans", "REVOKE MODIFY ON MBEANS 'org.apache.cassandra.db:*' FROM r", "REVOKE MODIFY ON MBEANS 'org.apache.cassandra.db:*' FROM r"},
		{"list users", "list users", "LIST USERS"},
		{"table named users", "SELECT * FROM users", "SELECT * FROM users"},
		{"table named mbean", "GRANT SELECT ON mbean TO r", "GRANT SELECT ON TABLE mbean TO r"},
		{"arithmetic", "SELECT a FROM t WHERE a = 1 + 2", "SELECT a FROM t WHERE a = 1 + 2"},
		{"cast", "SELECT CAST(a AS text) FROM t", "SELECT CAST(a AS text) FROM t"},
		{"field selection", "SELECT a.b FROM t", "SELECT a.b FROM t"},
		{"update with counter", "UPDATE t SET c = c + 1 WHERE k = 1", "UPDATE t SET c = c + 1 WHERE k = 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := parser.Parse(tt.cql)
			if r.HasError {
				t.Fatalf("Parse error for %q: %v", tt.cql, r.Errors)
			}
			if got := r.Statement.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseUnrecognized(t *testing.T) {
	r := parser.Parse("This is an invalid statement")
	if !r.HasError {
		t.Errorf("Expected HasError")
	}
	u, ok := r.Statement.(*ast.Unknown)
	if !ok {
		t.Fatalf("Expected *ast.Unknown, got %T", r.Statement)
	}
	if u.Text != "This is an invalid statement" {
		t.Errorf("Unknown text = %q", u.Text)
	}
	if len(r.Unknowns) != 0 {
		t.Errorf("Expected no trailing unknowns, got %d", len(r.Unknowns))
	}
	if len(r.Errors) == 0 {
		t.Errorf("Expected a syntax error to be reported")
	}
}

func TestParsePartial(t *testing.T) {
	tests := []struct {
		name      string
		cql       string
		statement string
		unknown   string
	}{
		{"where clause", "SELECT * FROM foo WHERE some invalid part", "SELECT * FROM foo", "WHERE some invalid part"},
		{"trailing words", "DROP TABLE foo CASCADE NOW", "DROP TABLE foo", "CASCADE NOW"},
		{"second statement", "USE ks; SELECT * FROM t", "USE ks", "SELECT * FROM t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := parser.Parse(tt.cql)
			if !r.HasError {
				t.Errorf("Expected HasError")
			}
			if got := r.Statement.String(); got != tt.statement {
				t.Errorf("Statement = %q, want %q", got, tt.statement)
			}
			if len(r.Unknowns) != 1 {
				t.Fatalf("Expected 1 trailing unknown, got %d", len(r.Unknowns))
			}
			if got := r.Unknowns[0].Text; got != tt.unknown {
				t.Errorf("Unknown = %q, want %q", got, tt.unknown)
			}
			if got := len(r.Statements()); got != 2 {
				t.Errorf("Expected 2 statements, got %d", got)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, cql := range []string{"", "   ", ";", "-- only a comment"} {
		r := parser.Parse(cql)
		if !r.HasError {
			t.Errorf("Parse(%q): expected HasError", cql)
		}
		if _, ok := r.Statement.(*ast.Unknown); !ok {
			t.Errorf("Parse(%q): expected *ast.Unknown, got %T", cql, r.Statement)
		}
	}
}

func TestSpans(t *testing.T) {
	src := "USE a;\nSELECT * FROM b"
	results, err := parser.ParseString(context.Background(), src)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 statements, got %d", len(results))
	}
	sel := results[1].Statement
	if sel.Pos().Line != 2 || sel.Pos().Column != 1 {
		t.Errorf("Pos = %d:%d, want 2:1", sel.Pos().Line, sel.Pos().Column)
	}
	if got := src[sel.Pos().Offset:sel.End().Offset]; got != "SELECT * FROM b" {
		t.Errorf("Span text = %q", got)
	}
}

func TestMutation(t *testing.T) {
	r := parser.Parse("select foo from myTable")
	sel, ok := r.Statement.(*ast.Select)
	if !ok {
		t.Fatalf("Expected *ast.Select, got %T", r.Statement)
	}
	alias := ast.NewIdentifier("baz")
	sel.Columns = append(sel.Columns, &ast.Named{
		Expr:  &ast.ColumnRef{Name: ast.NewIdentifier("bar")},
		Alias: &alias,
	})
	sel.OrderBy = append(sel.OrderBy, ast.OrderClause{Column: ast.NewIdentifier("baz")})

	want := "SELECT foo, bar AS baz FROM mytable ORDER BY baz ASC"
	if got := sel.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

// BenchmarkParser benchmarks the parser performance using a complex query
func BenchmarkParser(b *testing.B) {
	query := `
		SELECT DISTINCT
			id,
			name,
			writetime(name) AS written,
			ttl(name)
		FROM ks.users
		WHERE id IN (1, 2, 3) AND token(id) > token(0)
			AND tags CONTAINS 'admin'
		ORDER BY name DESC
		PER PARTITION LIMIT 5
		LIMIT 100
		ALLOW FILTERING
	`

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		r := parser.Parse(query)
		if r.HasError {
			b.Fatal(r.Errors)
		}
	}
}

func TestParseRawOperands(t *testing.T) {
	tests := []struct {
		name string
		cql  string
		raw  func(ast.Statement) ast.Term
		text string
	}{
		{
			name: "arithmetic in relation",
			cql:  "SELECT a FROM t WHERE a = 1 + 2",
			raw:  func(s ast.Statement) ast.Term { return s.(*ast.Select).Where[0].(*ast.Comparison).Right },
			text: "1 + 2",
		},
		{
			name: "cast in projection",
			cql:  "SELECT CAST(a AS text) FROM t",
			raw:  func(s ast.Statement) ast.Term { return s.(*ast.Select).Columns[0].(*ast.Named).Expr },
			text: "CAST(a AS text)",
		},
		{
			name: "field in projection",
			cql:  "SELECT a.b FROM t",
			raw:  func(s ast.Statement) ast.Term { return s.(*ast.Select).Columns[0].(*ast.Named).Expr },
			text: "a.b",
		},
		{
			name: "product in assignment",
			cql:  "UPDATE t SET c = a * 2 WHERE k = 1",
			raw:  func(s ast.Statement) ast.Term { return s.(*ast.Update).Assignments[0].Value },
			text: "a * 2",
		},
		{
			name: "sum in insert values",
			cql:  "INSERT INTO t (a) VALUES (1 + 1)",
			raw:  func(s ast.Statement) ast.Term { return s.(*ast.Insert).Values[0] },
			text: "1 + 1",
		},
		{
			name: "element in in-list",
			cql:  "SELECT * FROM t WHERE k IN (m['a'], 2)",
			raw:  func(s ast.Statement) ast.Term { return s.(*ast.Select).Where[0].(*ast.InRelation).Values[0] },
			text: "m['a']",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := parser.Parse(tt.cql)
			if r.HasError {
				t.Fatalf("Parse error for %q: %v", tt.cql, r.Errors)
			}
			raw, ok := tt.raw(r.Statement).(*ast.RawTerm)
			if !ok {
				t.Fatalf("Expected *ast.RawTerm, got %T", tt.raw(r.Statement))
			}
			if raw.Text != tt.text {
				t.Errorf("RawTerm text = %q, want %q", raw.Text, tt.text)
			}
			if got := r.Statement.String(); got != tt.cql {
				t.Errorf("String() = %q, want %q", got, tt.cql)
			}
		})
	}
}

func TestParseCounterUpdateStaysTyped(t *testing.T) {
	r := parser.Parse("UPDATE t SET c = c + 1 WHERE k = 1")
	if r.HasError {
		t.Fatalf("Parse error: %v", r.Errors)
	}
	a := r.Statement.(*ast.Update).Assignments[0]
	if a.Op != ast.OpPlus {
		t.Errorf("Op = %q, want %q", a.Op, ast.OpPlus)
	}
	if _, ok := a.Value.(*ast.ColumnRef); !ok {
		t.Errorf("Value = %T, want *ast.ColumnRef", a.Value)
	}
	if _, ok := a.Operand.(*ast.IntegerLiteral); !ok {
		t.Errorf("Operand = %T, want *ast.IntegerLiteral", a.Operand)
	}
}

func TestParseResources(t *testing.T) {
	tests := []struct {
		cql      string
		kind     ast.ResourceKind
		name     string
		argTypes int
	}{
		{"GRANT EXECUTE ON FUNCTION ks.f(int, text) TO r", ast.ResourceFunction, "ks.f", 2},
		{"GRANT EXECUTE ON FUNCTION ks.f() TO r", ast.ResourceFunction, "ks.f", 0},
		{"GRANT SELECT ON ALL MBEANS TO r", ast.ResourceAllMBeans, "", 0},
		{"GRANT SELECT ON MBEAN 'a:type=b' TO r", ast.ResourceMBean, "'a:type=b'", 0},
		{"GRANT SELECT ON MBEANS 'a:*' TO r", ast.ResourceMBeans, "'a:*'", 0},
	}

	for _, tt := range tests {
		t.Run(tt.cql, func(t *testing.T) {
			r := parser.Parse(tt.cql)
			if r.HasError {
				t.Fatalf("Parse error: %v", r.Errors)
			}
			res := r.Statement.(*ast.Grant).Privilege.Resource
			if res.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", res.Kind, tt.kind)
			}
			if tt.name != "" && res.Name.String() != tt.name {
				t.Errorf("Name = %q, want %q", res.Name.String(), tt.name)
			}
			if len(res.ArgTypes) != tt.argTypes {
				t.Errorf("ArgTypes = %v, want %d types", res.ArgTypes, tt.argTypes)
			}
		})
	}

	r := parser.Parse("GRANT EXECUTE ON FUNCTION ks.f() TO r")
	if res := r.Statement.(*ast.Grant).Privilege.Resource; res.ArgTypes == nil {
		t.Errorf("Expected an empty, non-nil ArgTypes for f()")
	} else if got := r.Statement.String(); got != "GRANT EXECUTE ON FUNCTION ks.f() TO r" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseUnterminatedComment(t *testing.T) {
	r := parser.Parse("SELECT * FROM foo /* unterminated")
	if !r.HasError {
		t.Fatalf("Expected HasError")
	}
	if got := r.Statement.String(); got != "SELECT * FROM foo" {
		t.Errorf("Statement = %q", got)
	}
	if len(r.Unknowns) != 1 || r.Unknowns[0].Text != "/* unterminated" {
		t.Errorf("Unknowns = %v, want the unterminated comment", r.Unknowns)
	}

	// A closed comment is still ignored.
	if r := parser.Parse("SELECT * FROM foo /* closed */"); r.HasError {
		t.Errorf("Unexpected error: %v", r.Errors)
	}
}

func TestReservedIdentifierRoundTrip(t *testing.T) {
	stmt := &ast.Select{
		Columns: []ast.SelectElement{&ast.Named{Expr: &ast.ColumnRef{Name: ast.NewIdentifier("from")}}},
		From:    ast.NewQualifiedName("", "select"),
	}
	text := stmt.String()
	if want := `SELECT "from" FROM "select"`; text != want {
		t.Fatalf("String() = %q, want %q", text, want)
	}
	r := parser.Parse(text)
	if r.HasError {
		t.Fatalf("Parse(%q) error: %v", text, r.Errors)
	}
	sel := r.Statement.(*ast.Select)
	if !sel.From.Name.Equal(ast.NewIdentifier("select")) {
		t.Errorf("From = %s, want select", sel.From)
	}
}
