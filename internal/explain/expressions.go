package explain

import (
	"strconv"

	"github.com/sqlc-dev/cqlast/ast"
)

func term(t ast.Term) *node {
	switch n := t.(type) {
	case nil:
		return nil
	case *ast.IntegerLiteral:
		return leaf("Literal Integer %s", n.Text)
	case *ast.FloatLiteral:
		return leaf("Literal Float %s", n.Text)
	case *ast.StringLiteral:
		return leaf("Literal String %s", strconv.Quote(n.Value))
	case *ast.BooleanLiteral:
		return leaf("Literal Boolean %t", n.Value)
	case *ast.NullLiteral:
		return leaf("Literal NULL")
	case *ast.UUIDLiteral:
		return leaf("Literal UUID %s", n.Text)
	case *ast.BlobLiteral:
		return leaf("Literal Blob %s", n.Text)
	case *ast.ListLiteral:
		return terms("List", n.Elements)
	case *ast.SetLiteral:
		return terms("Set", n.Elements)
	case *ast.TupleLiteral:
		return terms("Tuple", n.Elements)
	case *ast.MapLiteral:
		m := branch("Map")
		for _, e := range n.Entries {
			m.children = append(m.children, branch("Entry", term(e.Key), term(e.Value)))
		}
		return m
	case *ast.FunctionCall:
		args := terms("ExpressionList", n.Args)
		if n.Star {
			args.children = append(args.children, leaf("Star"))
		}
		return branch("Function "+n.Name.String(), args)
	case *ast.BindMarker:
		if n.Name != nil {
			return leaf("BindMarker :%s", n.Name.String())
		}
		return leaf("BindMarker ?")
	case *ast.ColumnRef:
		return leaf("Column %s", n.Name.String())
	case *ast.RawTerm:
		return leaf("Raw %s", n.Text)
	}
	return leaf("%T", t)
}

func terms(label string, ts []ast.Term) *node {
	n := branch(label)
	for _, t := range ts {
		n.children = append(n.children, term(t))
	}
	return n
}

func relation(r ast.Relation) *node {
	switch n := r.(type) {
	case *ast.Comparison:
		return branch("Relation "+string(n.Operator), term(n.Left), term(n.Right))
	case *ast.InRelation:
		if n.Marker != nil {
			return branch("Relation IN", term(n.Left), term(n.Marker))
		}
		return branch("Relation IN", term(n.Left), terms("ExpressionList", n.Values))
	case *ast.TokenRelation:
		return branch("Relation TOKEN "+string(n.Operator), identifiers("Columns", n.Columns), term(n.Value))
	}
	return leaf("%T", r)
}

func relations(label string, rs []ast.Relation) *node {
	if len(rs) == 0 {
		return nil
	}
	n := branch(label)
	for _, r := range rs {
		n.children = append(n.children, relation(r))
	}
	return n
}

func identifiers(label string, ids []ast.Identifier) *node {
	if len(ids) == 0 {
		return nil
	}
	n := branch(label)
	for _, id := range ids {
		n.children = append(n.children, leaf("Identifier %s", id.String()))
	}
	return n
}

func identifier(label string, id *ast.Identifier) *node {
	if id == nil {
		return nil
	}
	return leaf("%s %s", label, id.String())
}

func qualifiedName(label string, qn ast.QualifiedName) *node {
	return leaf("%s %s", label, qn.String())
}

func dataType(dt ast.DataType) *node {
	return leaf("DataType %s", dt.String())
}

func selectElement(e ast.SelectElement) *node {
	switch n := e.(type) {
	case *ast.Star:
		return leaf("Star")
	case *ast.Named:
		if n.Alias != nil {
			return branch("Alias "+n.Alias.String(), term(n.Expr))
		}
		return term(n.Expr)
	}
	return leaf("%T", e)
}

func selectList(cols []ast.SelectElement) *node {
	n := branch("SelectList")
	if len(cols) == 0 {
		n.children = append(n.children, leaf("Star"))
	}
	for _, c := range cols {
		n.children = append(n.children, selectElement(c))
	}
	return n
}

func orderBy(label string, cols []ast.OrderClause) *node {
	if len(cols) == 0 {
		return nil
	}
	n := branch(label)
	for _, c := range cols {
		dir := "ASC"
		if c.Desc {
			dir = "DESC"
		}
		n.children = append(n.children, leaf("OrderBy %s %s", c.Column.String(), dir))
	}
	return n
}

func withItem(w ast.WithItem) *node {
	switch n := w.(type) {
	case *ast.Property:
		return branch("Property "+n.Name.String(), term(n.Value))
	case *ast.ClusteringOrder:
		return orderBy("ClusteringOrder", n.Columns)
	case *ast.TableID:
		return branch("ID", term(n.Value))
	case *ast.CompactStorage:
		return leaf("CompactStorage")
	}
	return leaf("%T", w)
}

func withItems(items []ast.WithItem) *node {
	if len(items) == 0 {
		return nil
	}
	n := branch("With")
	for _, w := range items {
		n.children = append(n.children, withItem(w))
	}
	return n
}
