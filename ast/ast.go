// Package ast defines the abstract syntax tree for CQL3.
//
// Every type in this package is plain data: fields may be read and assigned
// freely, and String on any statement renders the current field values back
// into CQL text.
package ast

import (
	"github.com/sqlc-dev/cqlast/token"
)

// Node is the interface implemented by all statement nodes.
type Node interface {
	Pos() token.Position
	End() token.Position
}

// Statement is the interface implemented by all statement nodes.
type Statement interface {
	Node
	// ShortName returns the statement keyword sequence, e.g. "DROP MATERIALIZED VIEW".
	ShortName() string
	String() string
	statementNode()
}

// Term is a value: a literal, a collection, a function call, a bind marker
// or a column reference.
type Term interface {
	String() string
	termNode()
}

// Relation is one predicate of a WHERE or IF clause.
type Relation interface {
	String() string
	relationNode()
}

// SelectElement is one projection of a SELECT statement.
type SelectElement interface {
	String() string
	selectElementNode()
}

// WithItem is one option of a table or view WITH clause.
type WithItem interface {
	String() string
	withItemNode()
}

// Span records the source range a statement was built from. Statements
// created by hand have a zero Span.
type Span struct {
	Position    token.Position `json:"-"`
	EndPosition token.Position `json:"-"`
}

func (s Span) Pos() token.Position { return s.Position }
func (s Span) End() token.Position { return s.EndPosition }
