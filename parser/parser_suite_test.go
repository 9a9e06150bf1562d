package parser_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sqlc-dev/cqlast/ast"
	"github.com/sqlc-dev/cqlast/parser"
)

func TestParserSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Parser Suite")
}

// reformat parses text and renders it again.
func reformat(text string) string {
	return parser.FormatResults([]*parser.Result{parser.Parse(text)})
}

var _ = Describe("Parser", func() {
	Describe("recovery", func() {
		It("keeps a statement it cannot recognize as unknown text", func() {
			r := parser.Parse("This is an invalid statement")
			Expect(r.HasError).To(BeTrue())
			Expect(r.Statement).To(BeAssignableToTypeOf(&ast.Unknown{}))
			Expect(r.Statement.(*ast.Unknown).Text).To(Equal("This is an invalid statement"))
			Expect(r.Unknowns).To(BeEmpty())
		})

		It("keeps the recognized head of a partially valid statement", func() {
			r := parser.Parse("SELECT * FROM foo WHERE some invalid part")
			Expect(r.HasError).To(BeTrue())

			sel, ok := r.Statement.(*ast.Select)
			Expect(ok).To(BeTrue())
			Expect(sel.From.String()).To(Equal("foo"))
			Expect(sel.Where).To(BeEmpty())
			Expect(sel.Columns).To(Equal([]ast.SelectElement{&ast.Star{}}))

			Expect(r.Unknowns).To(HaveLen(1))
			Expect(r.Unknowns[0].Text).To(Equal("WHERE some invalid part"))
		})

		It("keeps everything from the first unparsable token as one unknown", func() {
			r := parser.Parse("INSERT INTO t (a) VALUES (1) IF NOT EXISTS garbage USING TTL 5 more")
			Expect(r.HasError).To(BeTrue())
			Expect(r.Statement.String()).To(Equal("INSERT INTO t (a) VALUES (1) IF NOT EXISTS"))
			Expect(r.Unknowns).To(HaveLen(1))
			Expect(r.Unknowns[0].Text).To(Equal("garbage USING TTL 5 more"))
		})

		It("reports text after the first statement as unknown", func() {
			r := parser.Parse("USE a; USE b; USE c")
			Expect(r.HasError).To(BeTrue())
			Expect(r.Statement.String()).To(Equal("USE a"))
			Expect(r.Unknowns).To(HaveLen(1))
			Expect(r.Unknowns[0].Text).To(Equal("USE b; USE c"))
			Expect(r.Errors).NotTo(BeEmpty())
		})

		It("reports no error for a single terminated statement", func() {
			r := parser.Parse("USE a;")
			Expect(r.HasError).To(BeFalse())
			Expect(r.Errors).To(BeEmpty())
			Expect(r.Unknowns).To(BeEmpty())
		})
	})

	Describe("mutation", func() {
		It("renders fields assigned after parsing", func() {
			sel := parser.Parse("select foo from myTable").Statement.(*ast.Select)
			alias := ast.NewIdentifier("baz")
			sel.Columns = append(sel.Columns, &ast.Named{
				Expr:  &ast.ColumnRef{Name: ast.NewIdentifier("bar")},
				Alias: &alias,
			})
			sel.OrderBy = []ast.OrderClause{{Column: ast.NewIdentifier("baz")}}
			Expect(sel.String()).To(Equal("SELECT foo, bar AS baz FROM mytable ORDER BY baz ASC"))
		})

		It("renders a replaced where clause", func() {
			del := parser.Parse("DELETE FROM t WHERE a = 1").Statement.(*ast.Delete)
			del.Where = []ast.Relation{&ast.InRelation{
				Left:   &ast.ColumnRef{Name: ast.NewIdentifier("a")},
				Values: []ast.Term{&ast.IntegerLiteral{Text: "1"}, &ast.IntegerLiteral{Text: "2"}},
			}}
			del.IfExists = true
			Expect(del.String()).To(Equal("DELETE FROM t WHERE a IN (1, 2) IF EXISTS"))
		})

		It("renders a statement built by hand", func() {
			ks := ast.NewIdentifier("ks")
			drop := &ast.DropTable{CommonDrop: ast.CommonDrop{
				IfExists: true,
				Name:     ast.QualifiedName{Keyspace: &ks, Name: ast.NewQuotedIdentifier("Events")},
			}}
			Expect(drop.String()).To(Equal(`DROP TABLE IF EXISTS ks."Events"`))
		})
	})

	Describe("identifiers", func() {
		It("treats quoted lower-case names as equal to unquoted ones", func() {
			sel := parser.Parse(`SELECT * FROM "users"`).Statement.(*ast.Select)
			Expect(sel.From.Name.Quoted).To(BeTrue())
			Expect(sel.From.Name.Equal(ast.NewIdentifier("USERS"))).To(BeTrue())
		})

		It("keeps the case of quoted names", func() {
			sel := parser.Parse(`SELECT * FROM "Users"`).Statement.(*ast.Select)
			Expect(sel.From.Name.Equal(ast.NewIdentifier("users"))).To(BeFalse())
			Expect(sel.String()).To(Equal(`SELECT * FROM "Users"`))
		})

		It("doubles embedded quotes on output", func() {
			use := parser.Parse(`USE "a""b"`).Statement.(*ast.Use)
			Expect(use.Keyspace.Name).To(Equal(`a"b`))
			Expect(use.String()).To(Equal(`USE "a""b"`))
		})
	})

	Describe("DROP statements", func() {
		DescribeTable("render IF EXISTS only when it was given",
			func(text, want string) {
				r := parser.Parse(text)
				Expect(r.HasError).To(BeFalse())
				Expect(r.Statement.String()).To(Equal(want))
			},
			Entry("keyspace", "DROP KEYSPACE IF EXISTS ks", "DROP KEYSPACE IF EXISTS ks"),
			Entry("table", "DROP TABLE ks.t", "DROP TABLE ks.t"),
			Entry("index", "DROP INDEX IF EXISTS ks.i", "DROP INDEX IF EXISTS ks.i"),
			Entry("type", "DROP TYPE t", "DROP TYPE t"),
			Entry("view", "DROP MATERIALIZED VIEW IF EXISTS v", "DROP MATERIALIZED VIEW IF EXISTS v"),
			Entry("role", "DROP ROLE IF EXISTS r", "DROP ROLE IF EXISTS r"),
			Entry("user", "DROP USER u", "DROP USER u"),
			Entry("function", "DROP FUNCTION IF EXISTS ks.f (int, text)", "DROP FUNCTION IF EXISTS ks.f (INT, TEXT)"),
			Entry("aggregate", "DROP AGGREGATE a", "DROP AGGREGATE a"),
			Entry("trigger", "DROP TRIGGER IF EXISTS tr ON ks.t", "DROP TRIGGER IF EXISTS tr ON ks.t"),
		)
	})

	Describe("formatting", func() {
		DescribeTable("is stable once applied",
			func(text string) {
				once := reformat(text)
				Expect(reformat(once)).To(Equal(once))
			},
			Entry("select", "select a, b as c from ks.t where a = 1 and b > 2 order by b desc limit 5"),
			Entry("select json", "SELECT DISTINCT JSON a FROM t"),
			Entry("partial select", "SELECT * FROM foo WHERE some invalid part"),
			Entry("partial delete", "DELETE FROM t WHERE k = 1 IF a = 1 junk"),
			Entry("insert", "insert into t (a, b) values (?, :b) using ttl 5 and timestamp 10"),
			Entry("update", "UPDATE t SET l = l + [1, 2], s = s - {'x'} WHERE k = 1 IF v = 2"),
			Entry("delete", "delete a, m['k'], u.f from t where k in (1, 2)"),
			Entry("batch", "BEGIN COUNTER BATCH USING TIMESTAMP 5 UPDATE t SET c = c + 1 WHERE k = 1"),
			Entry("create keyspace", "create keyspace ks with replication = {'class': 'NetworkTopologyStrategy', 'dc1': 3}"),
			Entry("alter keyspace", "ALTER KEYSPACE ks WITH durable_writes = false"),
			Entry("create table", "CREATE TABLE t (k int, c timeuuid, v text, PRIMARY KEY ((k, v), c)) WITH compaction = {'class': 'LeveledCompactionStrategy'} AND COMPACT STORAGE"),
			Entry("alter table add", "ALTER TABLE t ADD x int"),
			Entry("alter table drop", "ALTER TABLE t DROP x"),
			Entry("alter table rename", "ALTER TABLE t RENAME a TO b AND c TO d"),
			Entry("create index", "CREATE INDEX IF NOT EXISTS i ON t (KEYS(m))"),
			Entry("custom index", "CREATE CUSTOM INDEX ON t (v) USING 'org.apache.cassandra.index.sasi.SASIIndex'"),
			Entry("create type", "CREATE TYPE ks.addr (street text, zip int)"),
			Entry("alter type", "ALTER TYPE addr RENAME zip TO postcode"),
			Entry("create function", "CREATE OR REPLACE FUNCTION f (a int) CALLED ON NULL INPUT RETURNS int LANGUAGE java AS 'return a;'"),
			Entry("create aggregate", "CREATE AGGREGATE a (int) SFUNC f STYPE int INITCOND 0"),
			Entry("create trigger", "CREATE TRIGGER tr ON t USING 'org.example.Trigger'"),
			Entry("create view", "CREATE MATERIALIZED VIEW v AS SELECT a, b FROM t WHERE a IS NOT NULL AND b IS NOT NULL PRIMARY KEY (b, a)"),
			Entry("create role", "CREATE ROLE r WITH PASSWORD = 'p' AND LOGIN = true AND SUPERUSER = false"),
			Entry("alter user", "ALTER USER u WITH PASSWORD 'p' SUPERUSER"),
			Entry("grant", "GRANT MODIFY ON KEYSPACE ks TO r"),
			Entry("revoke", "REVOKE EXECUTE ON FUNCTION ks.f FROM r"),
			Entry("list permissions", "LIST ALL PERMISSIONS ON ALL FUNCTIONS IN KEYSPACE ks OF r NORECURSIVE"),
			Entry("truncate", "TRUNCATE ks.t"),
			Entry("partial", "SELECT * FROM foo WHERE some invalid part"),
			Entry("unrecognized", "This is an invalid statement"),
		)
	})
})
