package ast

import "strings"

// Operator is a relation operator as written in CQL.
type Operator string

const (
	OpEq          Operator = "="
	OpNotEq       Operator = "<>"
	OpBangEq      Operator = "!="
	OpLt          Operator = "<"
	OpLte         Operator = "<="
	OpGt          Operator = ">"
	OpGte         Operator = ">="
	OpLike        Operator = "LIKE"
	OpContains    Operator = "CONTAINS"
	OpContainsKey Operator = "CONTAINS KEY"
	OpIsNot       Operator = "IS NOT"
	OpIn          Operator = "IN"
)

// Eval applies an ordering operator to the result of a three-way comparison
// (negative, zero or positive). ok is false for operators that do not order
// values.
func (o Operator) Eval(cmp int) (result, ok bool) {
	switch o {
	case OpEq:
		return cmp == 0, true
	case OpNotEq, OpBangEq:
		return cmp != 0, true
	case OpLt:
		return cmp < 0, true
	case OpLte:
		return cmp <= 0, true
	case OpGt:
		return cmp > 0, true
	case OpGte:
		return cmp >= 0, true
	}
	return false, false
}

// Comparison is left op right. Left is a column, a function call, or a tuple
// of columns.
type Comparison struct {
	Left     Term     `json:"left"`
	Operator Operator `json:"operator"`
	Right    Term     `json:"right"`
}

// InRelation is left IN (values) or left IN marker.
type InRelation struct {
	Left   Term        `json:"left"`
	Values []Term      `json:"values,omitempty"`
	Marker *BindMarker `json:"marker,omitempty"`
}

// TokenRelation is TOKEN(columns) op value.
type TokenRelation struct {
	Columns  []Identifier `json:"columns"`
	Operator Operator     `json:"operator"`
	Value    Term         `json:"value"`
}

func (*Comparison) relationNode()    {}
func (*InRelation) relationNode()    {}
func (*TokenRelation) relationNode() {}

func (c *Comparison) String() string {
	return termString(c.Left) + " " + string(c.Operator) + " " + termString(c.Right)
}

func (r *InRelation) String() string {
	if r.Marker != nil {
		return termString(r.Left) + " IN " + r.Marker.String()
	}
	return termString(r.Left) + " IN (" + joinTerms(r.Values) + ")"
}

func (r *TokenRelation) String() string {
	return "TOKEN(" + joinIdentifiers(r.Columns) + ") " + string(r.Operator) + " " + termString(r.Value)
}

func joinIdentifiers(ids []Identifier) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ", ")
}

// joinRelations writes a conjunction. Nil relations are skipped.
func joinRelations(rels []Relation) string {
	parts := make([]string, 0, len(rels))
	for _, r := range rels {
		if r != nil {
			parts = append(parts, r.String())
		}
	}
	return strings.Join(parts, " AND ")
}

// columnsOf returns the columns a relation's left side refers to.
func columnsOf(r Relation) []Identifier {
	var left Term
	switch r := r.(type) {
	case *Comparison:
		left = r.Left
	case *InRelation:
		left = r.Left
	case *TokenRelation:
		return r.Columns
	}
	switch l := left.(type) {
	case *ColumnRef:
		return []Identifier{l.Name}
	case *TupleLiteral:
		var out []Identifier
		for _, e := range l.Elements {
			if c, ok := e.(*ColumnRef); ok {
				out = append(out, c.Name)
			}
		}
		return out
	}
	return nil
}

// WhereColumns returns the columns constrained by rels, in order of first
// appearance and without duplicates.
func WhereColumns(rels []Relation) []Identifier {
	var out []Identifier
	seen := make(map[string]bool)
	for _, r := range rels {
		for _, c := range columnsOf(r) {
			if seen[c.Normalized()] {
				continue
			}
			seen[c.Normalized()] = true
			out = append(out, c)
		}
	}
	return out
}

// RelationsByColumn groups rels by the normalized name of each column they
// constrain. A relation on a tuple of columns appears under every column.
func RelationsByColumn(rels []Relation) map[string][]Relation {
	out := make(map[string][]Relation)
	for _, r := range rels {
		for _, c := range columnsOf(r) {
			out[c.Normalized()] = append(out[c.Normalized()], r)
		}
	}
	return out
}
