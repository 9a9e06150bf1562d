package parser

import (
	"github.com/sqlc-dev/cqlast/ast"
	"github.com/sqlc-dev/cqlast/cst"
	"github.com/sqlc-dev/cqlast/token"
)

func (b *builder) selectStatement(n *cst.Node) ast.Statement {
	expect(n, cst.KindSelectStatement)
	s := &ast.Select{
		Span:           span(n),
		Distinct:       n.HasKeyword(token.DISTINCT),
		JSON:           n.HasKeyword(token.JSON),
		Columns:        b.selectElements(n.Child(cst.KindSelectElements)),
		From:           b.qualifiedName(n.Child(cst.KindQualifiedName)),
		Where:          b.relations(n.Child(cst.KindWhereSpec)),
		AllowFiltering: n.Child(cst.KindAllowFiltering) != nil,
	}
	if g := n.Child(cst.KindGroupBySpec); g != nil {
		s.GroupBy = b.idents(g)
	}
	if o := n.Child(cst.KindOrderSpec); o != nil {
		s.OrderBy = b.orderElements(o)
	}
	if l := n.Child(cst.KindPerPartitionLimit); l != nil {
		s.PerPartitionLimit = b.term(l.Children[len(l.Children)-1])
	}
	if l := n.Child(cst.KindLimitSpec); l != nil {
		s.Limit = b.term(l.Children[1])
	}
	return s
}

func (b *builder) selectElements(n *cst.Node) []ast.SelectElement {
	expect(n, cst.KindSelectElements)
	if n.HasKeyword(token.ASTERISK) {
		return []ast.SelectElement{&ast.Star{}}
	}
	var out []ast.SelectElement
	for _, e := range n.ChildrenOf(cst.KindSelectElement) {
		named := &ast.Named{Expr: b.term(e.Children[0])}
		if len(e.Children) == 3 {
			named.Alias = b.identPtr(e.Children[2])
		}
		out = append(out, named)
	}
	return out
}

func (b *builder) insertStatement(n *cst.Node) ast.Statement {
	expect(n, cst.KindInsertStatement)
	s := &ast.Insert{
		Span:        span(n),
		Batch:       b.beginBatch(n.Child(cst.KindBeginBatch)),
		Table:       b.qualifiedName(n.Child(cst.KindQualifiedName)),
		IfNotExists: n.Child(cst.KindIfNotExists) != nil,
		Using:       b.using(n.Child(cst.KindUsingSpec)),
	}
	if cols := n.Child(cst.KindColumnList); cols != nil {
		s.Columns = b.idents(cols)
	}
	if v := n.Child(cst.KindInsertValues); v != nil {
		s.Values = b.terms(v)
	}
	if j := n.Child(cst.KindInsertJSON); j != nil {
		s.JSON = b.term(j.Children[1])
		if j.HasKeyword(token.DEFAULT) {
			s.JSONDefault = ast.JSONDefaultNull
			if j.HasKeyword(token.UNSET) {
				s.JSONDefault = ast.JSONDefaultUnset
			}
		}
	}
	return s
}

func (b *builder) updateStatement(n *cst.Node) ast.Statement {
	expect(n, cst.KindUpdate)
	s := &ast.Update{
		Span:  span(n),
		Batch: b.beginBatch(n.Child(cst.KindBeginBatch)),
		Table: b.qualifiedName(n.Child(cst.KindQualifiedName)),
		Using: b.using(n.Child(cst.KindUsingSpec)),
		Where: b.relations(n.Child(cst.KindWhereSpec)),
	}
	for _, a := range n.ChildrenOf(cst.KindAssignment) {
		s.Assignments = append(s.Assignments, b.assignment(a))
	}
	s.IfExists, s.If = b.condition(n)
	return s
}

// assignment builds target = value [(+|-) operand].
func (b *builder) assignment(n *cst.Node) ast.Assignment {
	expect(n, cst.KindAssignment)
	target, rest := b.selector(n.Children)
	// rest is "=" value [op operand]
	a := ast.Assignment{Target: target, Value: b.term(rest[1])}
	if len(rest) == 4 {
		a.Op = ast.OpPlus
		if rest[2].Is(token.MINUS) {
			a.Op = ast.OpMinus
		}
		a.Operand = b.term(rest[3])
	}
	return a
}

func (b *builder) deleteStatement(n *cst.Node) ast.Statement {
	expect(n, cst.KindDeleteStatement)
	s := &ast.Delete{
		Span:  span(n),
		Batch: b.beginBatch(n.Child(cst.KindBeginBatch)),
		Table: b.qualifiedName(n.Child(cst.KindQualifiedName)),
		Using: b.using(n.Child(cst.KindUsingSpec)),
		Where: b.relations(n.Child(cst.KindWhereSpec)),
	}
	for _, c := range n.ChildrenOf(cst.KindDeleteColumn) {
		sel, _ := b.selector(c.Children)
		s.Columns = append(s.Columns, sel)
	}
	s.IfExists, s.If = b.condition(n)
	return s
}

func (b *builder) applyBatch(n *cst.Node) ast.Statement {
	expect(n, cst.KindApplyBatch)
	return &ast.ApplyBatch{Span: span(n)}
}

func (b *builder) useStatement(n *cst.Node) ast.Statement {
	expect(n, cst.KindUse)
	return &ast.Use{Span: span(n), Keyspace: b.ident(n.Child(cst.KindIdentifier))}
}

func (b *builder) truncateStatement(n *cst.Node) ast.Statement {
	expect(n, cst.KindTruncate)
	return &ast.Truncate{Span: span(n), Table: b.qualifiedName(n.Child(cst.KindQualifiedName))}
}
