// Package explain dumps the parsed model of CQL statements as an indented
// tree, one node per line.
//
// Every line holds a label; nodes with children report their count:
//
//	Select (children 3)
//	 SelectList (children 1)
//	  Star
//	 Table ks.users
//	 Where (children 1)
//	  Relation = (children 2)
//	   Column id
//	   Literal Integer 1
package explain

import (
	"fmt"
	"strings"

	"github.com/sqlc-dev/cqlast/ast"
)

// Explain returns the tree dump of a statement.
func Explain(stmt ast.Statement) string {
	var sb strings.Builder
	Node(&sb, stmt, 0)
	return sb.String()
}

// Node writes the tree dump of a statement, term, relation or clause at the
// given depth. Values it does not know are written as their Go type.
func Node(sb *strings.Builder, v any, depth int) {
	build(v).write(sb, depth)
}

// node is one line of the dump.
type node struct {
	label    string
	children []*node
}

func (n *node) write(sb *strings.Builder, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat(" ", depth)
	if len(n.children) > 0 {
		fmt.Fprintf(sb, "%s%s (children %d)\n", indent, n.label, len(n.children))
	} else {
		fmt.Fprintf(sb, "%s%s\n", indent, n.label)
	}
	for _, c := range n.children {
		c.write(sb, depth+1)
	}
}

func leaf(format string, args ...any) *node {
	return &node{label: fmt.Sprintf(format, args...)}
}

// branch returns a node with the non-nil children.
func branch(label string, children ...*node) *node {
	n := &node{label: label}
	for _, c := range children {
		if c != nil {
			n.children = append(n.children, c)
		}
	}
	return n
}

// flag returns a leaf named label when set is true.
func flag(label string, set bool) *node {
	if !set {
		return nil
	}
	return leaf("%s", label)
}

func build(v any) *node {
	switch n := v.(type) {
	case nil:
		return leaf("<nil>")
	case ast.Statement:
		return statement(n)
	case ast.Relation:
		return relation(n)
	case ast.Term:
		return term(n)
	case ast.SelectElement:
		return selectElement(n)
	case ast.WithItem:
		return withItem(n)
	case ast.DataType:
		return dataType(n)
	case ast.Identifier:
		return leaf("Identifier %s", n.String())
	case ast.QualifiedName:
		return qualifiedName("Name", n)
	}
	return leaf("%T", v)
}
