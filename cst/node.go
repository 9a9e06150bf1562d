// Package cst builds concrete syntax trees for CQL3 source text.
//
// A tree is a plain, read-only structure: every node has a kind named after
// the grammar rule that produced it, its children in source order, and the
// exact byte span it covers. Malformed input never aborts a parse; instead the
// unparsable region is wrapped in a node of kind ERROR.
package cst

import (
	"fmt"
	"strings"

	"github.com/sqlc-dev/cqlast/lexer"
	"github.com/sqlc-dev/cqlast/token"
)

// Node is a node of the concrete syntax tree.
type Node struct {
	Kind     Kind
	Children []*Node
	Token    *lexer.Item // set on leaves only
	Start    token.Position
	End      token.Position
}

// Tree is the result of parsing one source text.
type Tree struct {
	Root   *Node
	Source string
	Errors []*SyntaxError
}

// SyntaxError describes the first point at which a statement stopped matching
// the grammar.
type SyntaxError struct {
	Pos     token.Position
	Near    string
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Near == "" {
		return fmt.Sprintf("line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return fmt.Sprintf("line %d, column %d: %s near %q", e.Pos.Line, e.Pos.Column, e.Message, e.Near)
}

// IsError reports whether the node itself is an error node.
func (n *Node) IsError() bool {
	return n != nil && n.Kind == KindError
}

// HasError reports whether the node or any of its descendants is an error node.
func (n *Node) HasError() bool {
	if n == nil {
		return false
	}
	if n.IsError() {
		return true
	}
	for _, c := range n.Children {
		if c.HasError() {
			return true
		}
	}
	return false
}

// IsLeaf reports whether the node wraps a single token.
func (n *Node) IsLeaf() bool {
	return n != nil && n.Token != nil
}

// Text returns the source text covered by the node.
func (n *Node) Text(src string) string {
	if n == nil || n.End.Offset > len(src) || n.Start.Offset > n.End.Offset {
		return ""
	}
	return src[n.Start.Offset:n.End.Offset]
}

// Child returns the first direct child of the given kind, or nil.
func (n *Node) Child(kind Kind) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// ChildrenOf returns all direct children of the given kind.
func (n *Node) ChildrenOf(kind Kind) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Is reports whether the node is a leaf holding the given token.
func (n *Node) Is(tok token.Token) bool {
	return n.IsLeaf() && n.Token.Token == tok
}

// HasKeyword reports whether a direct child is the given keyword or punctuation.
func (n *Node) HasKeyword(tok token.Token) bool {
	return n.keyword(tok) != nil
}

// keyword returns the direct leaf child holding tok.
func (n *Node) keyword(tok token.Token) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Is(tok) {
			return c
		}
	}
	return nil
}

// HasWord reports whether a direct keyword child is spelled word, ignoring
// case.
func (n *Node) HasWord(word string) bool {
	if n == nil {
		return false
	}
	for _, c := range n.Children {
		if c.Kind == KindKeyword && c.IsLeaf() && strings.EqualFold(c.Token.Value, word) {
			return true
		}
	}
	return false
}

// After returns the direct children following the first leaf holding tok.
func (n *Node) After(tok token.Token) []*Node {
	if n == nil {
		return nil
	}
	for i, c := range n.Children {
		if c.Is(tok) {
			return n.Children[i+1:]
		}
	}
	return nil
}

// Errors returns the error nodes found in the subtree, outermost first.
func (n *Node) Errors() []*Node {
	if n == nil {
		return nil
	}
	if n.IsError() {
		return []*Node{n}
	}
	var out []*Node
	for _, c := range n.Children {
		out = append(out, c.Errors()...)
	}
	return out
}

// SExpr renders the subtree as an S-expression of node kinds, with leaves shown
// by their token.
func (n *Node) SExpr() string {
	var sb strings.Builder
	n.writeSExpr(&sb)
	return sb.String()
}

func (n *Node) writeSExpr(sb *strings.Builder) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		switch n.Token.Token {
		case token.IDENT, token.STRING, token.INTEGER, token.FLOAT, token.HEXNUM, token.UUID:
			fmt.Fprintf(sb, "(%s %q)", n.Kind, n.Token.Value)
		default:
			fmt.Fprintf(sb, "%q", n.Token.Token.String())
		}
		return
	}
	sb.WriteString("(")
	sb.WriteString(string(n.Kind))
	for _, c := range n.Children {
		sb.WriteString(" ")
		c.writeSExpr(sb)
	}
	sb.WriteString(")")
}

func newNode(kind Kind, children ...*Node) *Node {
	n := &Node{Kind: kind}
	for _, c := range children {
		n.add(c)
	}
	return n
}

func (n *Node) add(c *Node) {
	if c == nil {
		return
	}
	if len(n.Children) == 0 {
		n.Start = c.Start
	}
	n.Children = append(n.Children, c)
	n.End = c.End
}

func leaf(kind Kind, it lexer.Item) *Node {
	item := it
	return &Node{Kind: kind, Token: &item, Start: it.Pos, End: it.End}
}
