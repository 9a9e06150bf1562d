package parser

import (
	"fmt"
	"strings"

	"github.com/sqlc-dev/cqlast/ast"
	"github.com/sqlc-dev/cqlast/cst"
	"github.com/sqlc-dev/cqlast/token"
)

// builder turns concrete syntax nodes into ast values. It holds the source
// text so that leaves can be rendered exactly as written.
type builder struct {
	src string
}

type buildFunc func(*builder, *cst.Node) ast.Statement

// dispatch maps every statement kind the grammar produces to its builder.
var dispatch = map[cst.Kind]buildFunc{
	cst.KindSelectStatement: (*builder).selectStatement,
	cst.KindInsertStatement: (*builder).insertStatement,
	cst.KindUpdate:          (*builder).updateStatement,
	cst.KindDeleteStatement: (*builder).deleteStatement,
	cst.KindApplyBatch:      (*builder).applyBatch,
	cst.KindUse:             (*builder).useStatement,
	cst.KindTruncate:        (*builder).truncateStatement,

	cst.KindCreateKeyspace:         (*builder).createKeyspace,
	cst.KindAlterKeyspace:          (*builder).alterKeyspace,
	cst.KindCreateTable:            (*builder).createTable,
	cst.KindAlterTable:             (*builder).alterTable,
	cst.KindCreateIndex:            (*builder).createIndex,
	cst.KindCreateType:             (*builder).createType,
	cst.KindAlterType:              (*builder).alterType,
	cst.KindCreateFunction:         (*builder).createFunction,
	cst.KindCreateAggregate:        (*builder).createAggregate,
	cst.KindCreateTrigger:          (*builder).createTrigger,
	cst.KindCreateMaterializedView: (*builder).createMaterializedView,
	cst.KindAlterMaterializedView:  (*builder).alterMaterializedView,

	cst.KindDropKeyspace:         (*builder).dropKeyspace,
	cst.KindDropTable:            (*builder).dropTable,
	cst.KindDropIndex:            (*builder).dropIndex,
	cst.KindDropType:             (*builder).dropType,
	cst.KindDropFunction:         (*builder).dropFunction,
	cst.KindDropAggregate:        (*builder).dropAggregate,
	cst.KindDropTrigger:          (*builder).dropTrigger,
	cst.KindDropMaterializedView: (*builder).dropMaterializedView,
	cst.KindDropRole:             (*builder).dropRole,
	cst.KindDropUser:             (*builder).dropUser,

	cst.KindCreateRole:      (*builder).createRole,
	cst.KindAlterRole:       (*builder).alterRole,
	cst.KindCreateUser:      (*builder).createUser,
	cst.KindAlterUser:       (*builder).alterUser,
	cst.KindGrant:           (*builder).grant,
	cst.KindRevoke:          (*builder).revoke,
	cst.KindGrantRole:       (*builder).grantRole,
	cst.KindRevokeRole:      (*builder).revokeRole,
	cst.KindListPermissions: (*builder).listPermissions,
	cst.KindListRoles:       (*builder).listRoles,
	cst.KindListUsers:       (*builder).listUsers,
}

// expect panics when a builder is handed a node of the wrong kind. The
// grammar and the dispatch table must agree, so this is a programming error.
func expect(n *cst.Node, kind cst.Kind) {
	if n == nil || n.Kind != kind {
		got := cst.Kind("<nil>")
		if n != nil {
			got = n.Kind
		}
		panic(fmt.Sprintf("parser: %s builder called with %s node", kind, got))
	}
}

func span(n *cst.Node) ast.Span {
	return ast.Span{Position: n.Start, EndPosition: n.End}
}

// ident builds an identifier from a name leaf. Double-quoted names keep their
// case, string literals become single-quoted names, and keywords used as
// names are taken as written.
func (b *builder) ident(n *cst.Node) ast.Identifier {
	if !n.IsLeaf() {
		panic(fmt.Sprintf("parser: identifier built from %s node", n.Kind))
	}
	switch it := n.Token; {
	case it.Token == token.IDENT && it.Quoted:
		return ast.Identifier{Name: it.Value, Quoted: true, Quote: '"'}
	case it.Token == token.STRING:
		return ast.Identifier{Name: it.Value, Quoted: true, Quote: '\''}
	default:
		return ast.NewIdentifier(it.Text(b.src))
	}
}

func (b *builder) identPtr(n *cst.Node) *ast.Identifier {
	if n == nil {
		return nil
	}
	id := b.ident(n)
	return &id
}

// idents builds every identifier leaf directly under n.
func (b *builder) idents(n *cst.Node) []ast.Identifier {
	var out []ast.Identifier
	for _, c := range n.ChildrenOf(cst.KindIdentifier) {
		out = append(out, b.ident(c))
	}
	return out
}

func (b *builder) qualifiedName(n *cst.Node) ast.QualifiedName {
	expect(n, cst.KindQualifiedName)
	parts := n.ChildrenOf(cst.KindIdentifier)
	if len(parts) == 2 {
		ks := b.ident(parts[0])
		return ast.QualifiedName{Keyspace: &ks, Name: b.ident(parts[1])}
	}
	return ast.QualifiedName{Name: b.ident(parts[0])}
}

// term builds a term from any expression node. Nodes that are not terms are
// kept verbatim as raw text.
func (b *builder) term(n *cst.Node) ast.Term {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case cst.KindConstant:
		return b.constant(n)
	case cst.KindIdentifier:
		return &ast.ColumnRef{Name: b.ident(n)}
	case cst.KindListLiteral:
		return &ast.ListLiteral{Elements: b.terms(n)}
	case cst.KindSetLiteral:
		return &ast.SetLiteral{Elements: b.terms(n)}
	case cst.KindTupleLiteral:
		return &ast.TupleLiteral{Elements: b.terms(n)}
	case cst.KindMapLiteral:
		m := &ast.MapLiteral{}
		for _, e := range n.ChildrenOf(cst.KindMapEntry) {
			m.Entries = append(m.Entries, ast.MapEntry{
				Key:   b.term(e.Children[0]),
				Value: b.term(e.Children[2]),
			})
		}
		return m
	case cst.KindFunctionCall:
		return b.functionCall(n)
	case cst.KindBindMarker:
		return b.bindMarker(n)
	case cst.KindOperand:
		return &ast.RawTerm{Text: n.Text(b.src)}
	}
	return &ast.RawTerm{Text: n.Text(b.src)}
}

// terms builds the term children of a collection or list node, skipping
// punctuation.
func (b *builder) terms(n *cst.Node) []ast.Term {
	var out []ast.Term
	for _, c := range n.Children {
		if c.Kind == cst.KindKeyword || c.Kind == cst.KindQualifiedName {
			continue
		}
		out = append(out, b.term(c))
	}
	return out
}

func (b *builder) constant(n *cst.Node) ast.Term {
	expect(n, cst.KindConstant)
	lit := n.Children[len(n.Children)-1]
	sign := ""
	if len(n.Children) == 2 {
		sign = "-"
	}
	text := lit.Text(b.src)
	switch lit.Token.Token {
	case token.INTEGER:
		return &ast.IntegerLiteral{Text: sign + text}
	case token.FLOAT:
		return &ast.FloatLiteral{Text: sign + text}
	case token.STRING:
		return &ast.StringLiteral{Value: lit.Token.Value, Dollar: strings.HasPrefix(text, "$$")}
	case token.HEXNUM:
		return &ast.BlobLiteral{Text: text}
	case token.UUID:
		return &ast.UUIDLiteral{Text: text}
	case token.TRUE:
		return &ast.BooleanLiteral{Value: true}
	case token.FALSE:
		return &ast.BooleanLiteral{Value: false}
	case token.NULL:
		return &ast.NullLiteral{}
	}
	return &ast.RawTerm{Text: n.Text(b.src)}
}

func (b *builder) functionCall(n *cst.Node) *ast.FunctionCall {
	expect(n, cst.KindFunctionCall)
	return &ast.FunctionCall{
		Name: b.qualifiedName(n.Child(cst.KindQualifiedName)),
		Args: b.terms(n),
		Star: n.HasKeyword(token.ASTERISK),
	}
}

func (b *builder) bindMarker(n *cst.Node) *ast.BindMarker {
	expect(n, cst.KindBindMarker)
	return &ast.BindMarker{Name: b.identPtr(n.Child(cst.KindIdentifier))}
}

// dataType builds a native, collection or user-defined type.
func (b *builder) dataType(n *cst.Node) ast.DataType {
	expect(n, cst.KindDataType)
	var dt ast.DataType
	if set := n.Child(cst.KindIdentifier); set != nil {
		dt.Name = ast.TypeSet
	} else {
		qn := b.qualifiedName(n.Child(cst.KindQualifiedName))
		name, ok := ast.LookupDataTypeName(qn.Name.Name)
		if ok && qn.Keyspace == nil && !qn.Name.Quoted {
			dt.Name = name
		} else {
			dt.Custom = &qn
		}
	}
	for _, arg := range n.ChildrenOf(cst.KindDataType) {
		dt.Args = append(dt.Args, b.dataType(arg))
	}
	return dt
}

func (b *builder) dataTypes(n *cst.Node) []ast.DataType {
	out := []ast.DataType{}
	for _, c := range n.ChildrenOf(cst.KindDataType) {
		out = append(out, b.dataType(c))
	}
	return out
}

// operator reads the operator leaves of a relation. The two spellings of
// inequality are kept apart so that text round-trips.
func (b *builder) operator(leaves []*cst.Node) ast.Operator {
	if len(leaves) == 1 {
		switch leaves[0].Token.Token {
		case token.NEQ:
			if leaves[0].Text(b.src) == "!=" {
				return ast.OpBangEq
			}
			return ast.OpNotEq
		case token.EQ, token.LT, token.LTE, token.GT, token.GTE:
			return ast.Operator(leaves[0].Text(b.src))
		}
	}
	words := make([]string, len(leaves))
	for i, l := range leaves {
		words[i] = l.Token.Token.String()
	}
	return ast.Operator(strings.Join(words, " "))
}

func (b *builder) relation(n *cst.Node) ast.Relation {
	expect(n, cst.KindRelation)
	lhs := n.Children[0]
	var ops []*cst.Node
	var rhs *cst.Node
	for _, c := range n.Children[1:] {
		if c.Kind == cst.KindKeyword {
			ops = append(ops, c)
			continue
		}
		rhs = c
	}
	op := b.operator(ops)

	if op == ast.OpIn {
		in := &ast.InRelation{Left: b.relationTarget(lhs)}
		if rhs.Kind == cst.KindBindMarker {
			in.Marker = b.bindMarker(rhs)
		} else {
			in.Values = b.terms(rhs)
		}
		return in
	}

	if lhs.Kind == cst.KindFunctionCall {
		fn := b.functionCall(lhs)
		if cols, ok := tokenColumns(fn); ok {
			return &ast.TokenRelation{Columns: cols, Operator: op, Value: b.term(rhs)}
		}
	}
	return &ast.Comparison{Left: b.relationTarget(lhs), Operator: op, Right: b.term(rhs)}
}

// relationTarget builds the left side of a relation: a column, a function
// call, or a parenthesized list of columns.
func (b *builder) relationTarget(n *cst.Node) ast.Term {
	if n.Kind == cst.KindColumnList {
		tuple := &ast.TupleLiteral{}
		for _, id := range b.idents(n) {
			tuple.Elements = append(tuple.Elements, &ast.ColumnRef{Name: id})
		}
		return tuple
	}
	return b.term(n)
}

// tokenColumns reports whether fn is token(col, ...) and returns its columns.
func tokenColumns(fn *ast.FunctionCall) ([]ast.Identifier, bool) {
	if fn.Name.Keyspace != nil || !strings.EqualFold(fn.Name.Name.Name, "token") || fn.Name.Name.Quoted || len(fn.Args) == 0 {
		return nil, false
	}
	cols := make([]ast.Identifier, 0, len(fn.Args))
	for _, a := range fn.Args {
		ref, ok := a.(*ast.ColumnRef)
		if !ok {
			return nil, false
		}
		cols = append(cols, ref.Name)
	}
	return cols, true
}

func (b *builder) relations(n *cst.Node) []ast.Relation {
	if n == nil {
		return nil
	}
	var out []ast.Relation
	for _, c := range n.ChildrenOf(cst.KindRelation) {
		out = append(out, b.relation(c))
	}
	return out
}

// condition reads an optional IF EXISTS or IF relations clause.
func (b *builder) condition(n *cst.Node) (ifExists bool, rels []ast.Relation) {
	if n.Child(cst.KindIfExists) != nil {
		return true, nil
	}
	return false, b.relations(n.Child(cst.KindIfSpec))
}

func (b *builder) using(n *cst.Node) *ast.UsingClause {
	if n == nil {
		return nil
	}
	u := &ast.UsingClause{}
	if ttl := n.Child(cst.KindUsingTTL); ttl != nil {
		u.TTL = b.term(ttl.Children[1])
	}
	if ts := n.Child(cst.KindUsingTimestamp); ts != nil {
		u.Timestamp = b.term(ts.Children[1])
	}
	return u
}

func (b *builder) beginBatch(n *cst.Node) *ast.BeginBatch {
	if n == nil {
		return nil
	}
	bb := &ast.BeginBatch{}
	switch {
	case n.HasKeyword(token.LOGGED):
		bb.Type = ast.BatchLogged
	case n.HasKeyword(token.UNLOGGED):
		bb.Type = ast.BatchUnlogged
	case n.HasKeyword(token.COUNTER):
		bb.Type = ast.BatchCounter
	}
	if ts := n.Child(cst.KindUsingTimestamp); ts != nil {
		bb.Timestamp = b.term(ts.Children[len(ts.Children)-1])
	}
	return bb
}

func (b *builder) orderElements(n *cst.Node) []ast.OrderClause {
	var out []ast.OrderClause
	for _, e := range n.ChildrenOf(cst.KindOrderElement) {
		out = append(out, ast.OrderClause{
			Column: b.ident(e.Children[0]),
			Desc:   e.HasKeyword(token.DESC),
		})
	}
	return out
}

// withItems builds the options of a WITH clause on a table or view.
func (b *builder) withItems(n *cst.Node) []ast.WithItem {
	if n == nil {
		return nil
	}
	var out []ast.WithItem
	for _, c := range n.Children {
		switch c.Kind {
		case cst.KindTableProperty:
			out = append(out, &ast.Property{Name: b.ident(c.Children[0]), Value: b.term(c.Children[2])})
		case cst.KindClusteringOrder:
			out = append(out, &ast.ClusteringOrder{Columns: b.orderElements(c)})
		case cst.KindTableID:
			out = append(out, &ast.TableID{Value: b.term(c.Children[2])})
		case cst.KindCompactStorage:
			out = append(out, &ast.CompactStorage{})
		}
	}
	return out
}

func (b *builder) primaryKey(n *cst.Node) ast.PrimaryKey {
	expect(n, cst.KindPrimaryKeySpec)
	return ast.PrimaryKey{
		Partition:  b.idents(n.Child(cst.KindPartitionKey)),
		Clustering: b.idents(n),
	}
}

func (b *builder) columnDefinition(n *cst.Node) ast.ColumnDefinition {
	expect(n, cst.KindColumnDefinition)
	return ast.ColumnDefinition{
		Name:       b.ident(n.Children[0]),
		Type:       b.dataType(n.Child(cst.KindDataType)),
		Static:     n.HasKeyword(token.STATIC),
		PrimaryKey: n.HasKeyword(token.PRIMARY),
	}
}

func (b *builder) fieldDefinitions(n *cst.Node, kind cst.Kind) []ast.FieldDefinition {
	var out []ast.FieldDefinition
	for _, f := range n.ChildrenOf(kind) {
		out = append(out, ast.FieldDefinition{
			Name: b.ident(f.Children[0]),
			Type: b.dataType(f.Child(cst.KindDataType)),
		})
	}
	return out
}

func (b *builder) renames(n *cst.Node) []ast.Rename {
	var out []ast.Rename
	for _, r := range n.ChildrenOf(cst.KindRenameItem) {
		out = append(out, ast.Rename{From: b.ident(r.Children[0]), To: b.ident(r.Children[2])})
	}
	return out
}

// selector builds a column reference optionally narrowed by [key] or .field.
func (b *builder) selector(children []*cst.Node) (ast.Selector, []*cst.Node) {
	s := ast.Selector{Column: b.ident(children[0])}
	rest := children[1:]
	if len(rest) == 0 {
		return s, rest
	}
	switch {
	case rest[0].Is(token.LBRACKET):
		s.Key = b.term(rest[1])
		rest = rest[3:]
	case rest[0].Is(token.DOT):
		s.Field = b.identPtr(rest[1])
		rest = rest[2:]
	}
	return s, rest
}
