package ast

import (
	"bytes"
	"testing"

	"github.com/gocql/gocql"
	"gopkg.in/inf.v0"
)

func TestIdentifierString(t *testing.T) {
	tests := []struct {
		name     string
		id       Identifier
		expected string
	}{
		{"unquoted lower-cases", NewIdentifier("MyTable"), "mytable"},
		{"quoted keeps case", NewQuotedIdentifier("MyTable"), `"MyTable"`},
		{"quoted doubles quotes", NewQuotedIdentifier(`a"b`), `"a""b"`},
		{"single quoted", Identifier{Name: "it's", Quoted: true, Quote: '\''}, `'it''s'`},
		{"quoted without delimiter", Identifier{Name: "X", Quoted: true}, `"X"`},
		{"reserved word is quoted", NewIdentifier("select"), `"select"`},
		{"reserved word in any case", NewIdentifier("FROM"), `"from"`},
		{"space is quoted", NewIdentifier("My Col"), `"my col"`},
		{"leading digit is quoted", NewIdentifier("1st"), `"1st"`},
		{"nan reads as a number", NewIdentifier("NaN"), `"nan"`},
		{"unreserved keyword stays bare", NewIdentifier("key"), "key"},
		{"table stays bare", NewIdentifier("table"), "table"},
		{"underscore and digits", NewIdentifier("_a1"), "_a1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIdentifierEqual(t *testing.T) {
	tests := []struct {
		a, b  Identifier
		equal bool
	}{
		{NewIdentifier("Users"), NewIdentifier("USERS"), true},
		{NewQuotedIdentifier("users"), NewIdentifier("Users"), true},
		{NewQuotedIdentifier("Users"), NewIdentifier("users"), false},
		{NewQuotedIdentifier("Users"), NewQuotedIdentifier("Users"), true},
		{NewIdentifier("a"), NewIdentifier("b"), false},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.equal {
			t.Errorf("%s.Equal(%s) = %v, want %v", tt.a, tt.b, got, tt.equal)
		}
	}
}

func TestParseIdentifier(t *testing.T) {
	id := ParseIdentifier(`"Foo""Bar"`)
	if !id.Quoted || id.Name != `Foo"Bar` || id.Quote != '"' {
		t.Errorf("ParseIdentifier = %#v", id)
	}
	if id := ParseIdentifier("plain"); id.Quoted || id.Name != "plain" {
		t.Errorf("ParseIdentifier(plain) = %#v", id)
	}

	q := ParseQualifiedName(`"a.b".c`)
	if q.Keyspace == nil || q.Keyspace.Name != "a.b" || q.Name.Name != "c" {
		t.Fatalf("ParseQualifiedName = %#v", q)
	}
	if got := q.String(); got != `"a.b".c` {
		t.Errorf("String() = %q", got)
	}
	if got := q.KeyspaceOr("def"); got != "a.b" {
		t.Errorf("KeyspaceOr() = %q", got)
	}
	if got := ParseQualifiedName("t").KeyspaceOr("def"); got != "def" {
		t.Errorf("KeyspaceOr() = %q, want def", got)
	}
}

func TestQualifiedNameEqual(t *testing.T) {
	if !NewQualifiedName("KS", "T").Equal(NewQualifiedName("ks", "t")) {
		t.Errorf("expected case-insensitive match")
	}
	if NewQualifiedName("", "t").Equal(NewQualifiedName("ks", "t")) {
		t.Errorf("unqualified name must not equal qualified name")
	}
}

func TestEscapeString(t *testing.T) {
	tests := []struct {
		in, expected string
	}{
		{"plain", "'plain'"},
		{"it's", "$$it's$$"},
		{"a'$$b", "'a''$$b'"},
		{"", "''"},
	}

	for _, tt := range tests {
		if got := EscapeString(tt.in); got != tt.expected {
			t.Errorf("EscapeString(%q) = %q, want %q", tt.in, got, tt.expected)
		}
		if got := UnescapeString(EscapeString(tt.in)); got != tt.in {
			t.Errorf("UnescapeString(EscapeString(%q)) = %q", tt.in, got)
		}
	}

	if got := UnescapeString("'it''s'"); got != "it's" {
		t.Errorf("UnescapeString = %q", got)
	}
	if got := UnescapeString("raw"); got != "raw" {
		t.Errorf("UnescapeString(raw) = %q", got)
	}
}

func TestLiteralDecimal(t *testing.T) {
	tests := []struct {
		name     string
		lit      interface{ Decimal() (*inf.Dec, bool) }
		expected string
		ok       bool
	}{
		{"integer", &IntegerLiteral{Text: "-5"}, "-5", true},
		{"float", &FloatLiteral{Text: "3.25"}, "3.25", true},
		{"exponent", &FloatLiteral{Text: "1.5e2"}, "150", true},
		{"negative exponent", &FloatLiteral{Text: "25E-1"}, "2.5", true},
		{"nan", &FloatLiteral{Text: "NaN"}, "", false},
		{"infinity", &FloatLiteral{Text: "-Infinity"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.lit.Decimal()
			if ok != tt.ok {
				t.Fatalf("Decimal() ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			want, _ := new(inf.Dec).SetString(tt.expected)
			if got.Cmp(want) != 0 {
				t.Errorf("Decimal() = %s, want %s", got, want)
			}
		})
	}
}

func TestIntegerLiteralInt64(t *testing.T) {
	v, err := (&IntegerLiteral{Text: "-42"}).Int64()
	if err != nil || v != -42 {
		t.Errorf("Int64() = %d, %v", v, err)
	}
	if _, err := (&IntegerLiteral{Text: "99999999999999999999"}).Int64(); err == nil {
		t.Errorf("expected overflow error")
	}
}

func TestUUIDLiteral(t *testing.T) {
	lit := &UUIDLiteral{Text: "5b6962dd-3f90-4c93-8f61-eabfa4a803e2"}
	u, err := lit.UUID()
	if err != nil {
		t.Fatalf("UUID() error: %v", err)
	}
	if u.String() != lit.Text {
		t.Errorf("UUID() = %s", u)
	}
	if u.Version() != 4 {
		t.Errorf("Version() = %d, want 4", u.Version())
	}
}

func TestBlobLiteral(t *testing.T) {
	tests := []struct {
		text     string
		expected []byte
	}{
		{"0xCAFE", []byte{0xca, 0xfe}},
		{"0X1", []byte{0x01}},
		{"0x", []byte{}},
	}

	for _, tt := range tests {
		got, err := (&BlobLiteral{Text: tt.text}).Bytes()
		if err != nil {
			t.Errorf("Bytes(%s) error: %v", tt.text, err)
			continue
		}
		if !bytes.Equal(got, tt.expected) {
			t.Errorf("Bytes(%s) = %x, want %x", tt.text, got, tt.expected)
		}
	}
}

func TestMapLiteralLookup(t *testing.T) {
	m := &MapLiteral{Entries: []MapEntry{
		{Key: &StringLiteral{Value: "class"}, Value: &StringLiteral{Value: "SimpleStrategy"}},
		{Key: &StringLiteral{Value: "replication_factor"}, Value: &IntegerLiteral{Text: "3"}},
	}}
	v, ok := m.Lookup("replication_factor")
	if !ok || v.String() != "3" {
		t.Errorf("Lookup() = %v, %v", v, ok)
	}
	if _, ok := m.Lookup("missing"); ok {
		t.Errorf("Lookup(missing) reported a value")
	}
	if got := m.String(); got != "{'class':'SimpleStrategy', 'replication_factor':3}" {
		t.Errorf("String() = %q", got)
	}
}

func TestDataType(t *testing.T) {
	frozen := NewDataType(TypeFrozen, NewDataType(TypeList, NewDataType(TypeInt)))
	if got := frozen.String(); got != "FROZEN<LIST<INT>>" {
		t.Errorf("String() = %q", got)
	}
	if got := frozen.CQLType(); got != gocql.TypeList {
		t.Errorf("CQLType() = %v, want list", got)
	}

	addr := NewQualifiedName("ks", "Address")
	udt := DataType{Custom: &addr}
	if got := udt.CQLType(); got != gocql.TypeUDT {
		t.Errorf("CQLType() = %v, want udt", got)
	}
	if got := udt.String(); got != "ks.address" {
		t.Errorf("String() = %q", got)
	}

	if name, ok := LookupDataTypeName("timeuuid"); !ok || name != TypeTimeUUID {
		t.Errorf("LookupDataTypeName(timeuuid) = %q, %v", name, ok)
	}
	if _, ok := LookupDataTypeName("address"); ok {
		t.Errorf("LookupDataTypeName(address) should not match")
	}
	if got := DataTypeName("WIDGET").CQLType(); got != gocql.TypeCustom {
		t.Errorf("CQLType() = %v, want custom", got)
	}
}

func TestOperatorEval(t *testing.T) {
	tests := []struct {
		op     Operator
		cmp    int
		result bool
		ok     bool
	}{
		{OpEq, 0, true, true},
		{OpNotEq, 0, false, true},
		{OpBangEq, 1, true, true},
		{OpLt, -1, true, true},
		{OpLte, 0, true, true},
		{OpGt, 0, false, true},
		{OpGte, 1, true, true},
		{OpContains, 0, false, false},
	}

	for _, tt := range tests {
		result, ok := tt.op.Eval(tt.cmp)
		if result != tt.result || ok != tt.ok {
			t.Errorf("%s.Eval(%d) = %v, %v; want %v, %v", tt.op, tt.cmp, result, ok, tt.result, tt.ok)
		}
	}
}

func TestWhereColumns(t *testing.T) {
	col := func(name string) *ColumnRef { return &ColumnRef{Name: NewIdentifier(name)} }
	rels := []Relation{
		&Comparison{Left: col("a"), Operator: OpEq, Right: &IntegerLiteral{Text: "1"}},
		&InRelation{Left: &TupleLiteral{Elements: []Term{col("A"), col("b")}}, Marker: &BindMarker{}},
		&TokenRelation{Columns: []Identifier{NewIdentifier("c")}, Operator: OpGt, Value: &IntegerLiteral{Text: "0"}},
	}

	var names []string
	for _, id := range WhereColumns(rels) {
		names = append(names, id.Normalized())
	}
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Errorf("WhereColumns() = %v", names)
	}

	byColumn := RelationsByColumn(rels)
	if len(byColumn["a"]) != 2 {
		t.Errorf("RelationsByColumn()[a] has %d relations, want 2", len(byColumn["a"]))
	}
	if len(byColumn["c"]) != 1 {
		t.Errorf("RelationsByColumn()[c] has %d relations, want 1", len(byColumn["c"]))
	}
}

func TestKeyspaceOf(t *testing.T) {
	tests := []struct {
		name     string
		stmt     Statement
		expected string
	}{
		{"qualified select", &Select{From: NewQualifiedName("ks", "t")}, "ks"},
		{"unqualified select", &Select{From: NewQualifiedName("", "t")}, "def"},
		{"create keyspace", &CreateKeyspace{Name: NewIdentifier("Shop")}, "shop"},
		{"use quoted", &Use{Keyspace: NewQuotedIdentifier("Shop")}, "Shop"},
		{"drop keyspace", &DropKeyspace{CommonDrop: CommonDrop{Name: NewQualifiedName("", "old")}}, "old"},
		{"grant", &Grant{}, "def"},
		{"unknown", &Unknown{Text: "garbage"}, "def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyspaceOf(tt.stmt, "def"); got != tt.expected {
				t.Errorf("KeyspaceOf() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTableName(t *testing.T) {
	name, ok := TableName(&CreateIndex{Table: NewQualifiedName("ks", "t")})
	if !ok || name.String() != "ks.t" {
		t.Errorf("TableName(CreateIndex) = %s, %v", name, ok)
	}
	if _, ok := TableName(&CreateType{Name: NewQualifiedName("", "addr")}); ok {
		t.Errorf("TableName(CreateType) should report false")
	}
}

func TestStatementStrings(t *testing.T) {
	one := &IntegerLiteral{Text: "1"}
	tests := []struct {
		name     string
		stmt     Statement
		expected string
	}{
		{
			name: "select everything",
			stmt: &Select{
				Distinct: true,
				Columns:  []SelectElement{&Named{Expr: &FunctionCall{Name: NewQualifiedName("", "count"), Star: true}}},
				From:     NewQualifiedName("ks", "t"),
				Where: []Relation{
					&Comparison{Left: &ColumnRef{Name: NewIdentifier("k")}, Operator: OpEq, Right: one},
				},
				OrderBy:           []OrderClause{{Column: NewIdentifier("c"), Desc: true}},
				PerPartitionLimit: one,
				Limit:             &BindMarker{},
				AllowFiltering:    true,
			},
			expected: "SELECT DISTINCT count(*) FROM ks.t WHERE k = 1 ORDER BY c DESC PER PARTITION LIMIT 1 LIMIT ? ALLOW FILTERING",
		},
		{
			name:     "empty projection",
			stmt:     &Select{From: NewQualifiedName("", "t")},
			expected: "SELECT * FROM t",
		},
		{
			name: "insert json",
			stmt: &Insert{
				Table:       NewQualifiedName("", "t"),
				JSON:        NewStringLiteral(`{"a":1}`),
				JSONDefault: JSONDefaultNull,
			},
			expected: `INSERT INTO t JSON '{"a":1}' DEFAULT NULL`,
		},
		{
			name: "update with condition",
			stmt: &Update{
				Batch:       &BeginBatch{Type: BatchLogged},
				Table:       NewQualifiedName("", "t"),
				Using:       &UsingClause{TTL: one, Timestamp: one},
				Assignments: []Assignment{{Target: Selector{Column: NewIdentifier("l")}, Value: &ColumnRef{Name: NewIdentifier("l")}, Op: OpMinus, Operand: &ListLiteral{Elements: []Term{one}}}},
				Where:       []Relation{&Comparison{Left: &ColumnRef{Name: NewIdentifier("k")}, Operator: OpEq, Right: one}},
				If:          []Relation{&Comparison{Left: &ColumnRef{Name: NewIdentifier("v")}, Operator: OpNotEq, Right: &NullLiteral{}}},
			},
			expected: "BEGIN LOGGED BATCH UPDATE t USING TTL 1 AND TIMESTAMP 1 SET l = l - [1] WHERE k = 1 IF v <> NULL",
		},
		{
			name:     "truncate",
			stmt:     &Truncate{Table: NewQualifiedName("", "t")},
			expected: "TRUNCATE TABLE t",
		},
		{
			name: "grant all",
			stmt: &Grant{Privilege: Privilege{
				Permission: PermissionAll,
				Resource:   &Resource{Kind: ResourceAllFunctions, Keyspace: &Identifier{Name: "ks"}},
				Role:       &Identifier{Name: "r"},
			}},
			expected: "GRANT ALL PERMISSIONS ON ALL FUNCTIONS IN KEYSPACE ks TO r",
		},
		{
			name: "grant on function overload",
			stmt: &Grant{Privilege: Privilege{
				Permission: PermissionExecute,
				Resource:   &Resource{Kind: ResourceFunction, Name: NewQualifiedName("ks", "f"), ArgTypes: []DataType{NewDataType(TypeInt)}},
				Role:       &Identifier{Name: "r"},
			}},
			expected: "GRANT EXECUTE ON FUNCTION ks.f(INT) TO r",
		},
		{
			name: "grant on all mbeans",
			stmt: &Grant{Privilege: Privilege{
				Permission: PermissionSelect,
				Resource:   &Resource{Kind: ResourceAllMBeans},
				Role:       &Identifier{Name: "r"},
			}},
			expected: "GRANT SELECT ON ALL MBEANS TO r",
		},
		{
			name:     "list users",
			stmt:     &ListUsers{},
			expected: "LIST USERS",
		},
		{
			name:     "reserved table name",
			stmt:     &Select{From: NewQualifiedName("", "select")},
			expected: `SELECT * FROM "select"`,
		},
		{
			name:     "unknown",
			stmt:     &Unknown{Text: "not cql"},
			expected: "not cql",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stmt.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStatementStringsWithNilFields(t *testing.T) {
	k := &ColumnRef{Name: NewIdentifier("k")}
	tests := []struct {
		name     string
		stmt     Statement
		expected string
	}{
		{
			name:     "nil projection element",
			stmt:     &Select{Columns: []SelectElement{nil}, From: NewQualifiedName("", "t")},
			expected: "SELECT * FROM t",
		},
		{
			name: "nil list element",
			stmt: &Select{
				From:  NewQualifiedName("", "t"),
				Where: []Relation{&Comparison{Left: k, Operator: OpEq, Right: &ListLiteral{Elements: []Term{nil}}}},
			},
			expected: "SELECT * FROM t WHERE k = []",
		},
		{
			name: "nil named expression",
			stmt: &Select{
				Columns: []SelectElement{&Named{}, &Named{Expr: k}},
				From:    NewQualifiedName("", "t"),
			},
			expected: "SELECT , k FROM t",
		},
		{
			name: "nil relations are skipped",
			stmt: &Select{
				From:  NewQualifiedName("", "t"),
				Where: []Relation{nil, &Comparison{Left: k, Operator: OpEq, Right: &IntegerLiteral{Text: "1"}}, nil},
			},
			expected: "SELECT * FROM t WHERE k = 1",
		},
		{
			name:     "only nil relations",
			stmt:     &Delete{Table: NewQualifiedName("", "t"), Where: []Relation{nil}, If: []Relation{nil}},
			expected: "DELETE FROM t",
		},
		{
			name: "nil comparison sides",
			stmt: &Select{
				From:  NewQualifiedName("", "t"),
				Where: []Relation{&Comparison{Operator: OpEq}, &InRelation{Left: k, Values: []Term{nil}}},
			},
			expected: "SELECT * FROM t WHERE  =  AND k IN ()",
		},
		{
			name: "nil map entry parts",
			stmt: &Insert{
				Table:   NewQualifiedName("", "t"),
				Columns: []Identifier{NewIdentifier("m")},
				Values:  []Term{&MapLiteral{Entries: []MapEntry{{}}}, nil},
			},
			expected: "INSERT INTO t (m) VALUES ({:}, )",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stmt.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
