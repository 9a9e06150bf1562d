package ast

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/gocql/gocql"
	"gopkg.in/inf.v0"
)

// IntegerLiteral is an integer constant. Text keeps the source spelling,
// including a leading minus sign.
type IntegerLiteral struct {
	Text string `json:"text"`
}

// Int64 returns the value of the literal.
func (l *IntegerLiteral) Int64() (int64, error) {
	return strconv.ParseInt(l.Text, 10, 64)
}

// Decimal returns the exact value of the literal.
func (l *IntegerLiteral) Decimal() (*inf.Dec, bool) {
	return new(inf.Dec).SetString(l.Text)
}

// FloatLiteral is a floating point constant, including NaN and Infinity.
type FloatLiteral struct {
	Text string `json:"text"`
}

// Decimal returns the exact value of the literal. It reports false for NaN
// and Infinity, which have no decimal representation.
func (l *FloatLiteral) Decimal() (*inf.Dec, bool) {
	mantissa, exp := l.Text, ""
	if i := strings.IndexAny(l.Text, "eE"); i >= 0 {
		mantissa, exp = l.Text[:i], l.Text[i+1:]
	}
	d, ok := new(inf.Dec).SetString(mantissa)
	if !ok {
		return nil, false
	}
	if exp != "" {
		e, err := strconv.Atoi(exp)
		if err != nil {
			return nil, false
		}
		d.SetScale(d.Scale() - inf.Scale(e))
	}
	return d, true
}

// StringLiteral is a string constant. Value holds the decoded text; Dollar
// selects the $$...$$ form on output.
type StringLiteral struct {
	Value  string `json:"value"`
	Dollar bool   `json:"dollar,omitempty"`
}

// NewStringLiteral returns a string literal for v, using the $$ form when v
// contains a single quote and can be written that way.
func NewStringLiteral(v string) *StringLiteral {
	return &StringLiteral{
		Value:  v,
		Dollar: strings.Contains(v, "'") && !strings.Contains(v, "$$"),
	}
}

// EscapeString returns s as a CQL string constant. Text holding a single
// quote is wrapped in $$ unless it also holds $$, in which case quotes are
// doubled inside '...'.
func EscapeString(s string) string {
	return NewStringLiteral(s).String()
}

// UnescapeString decodes a CQL string constant. A '...' constant loses its
// delimiters and doubled quotes collapse; a $$...$$ constant loses its
// delimiters only. Any other text is returned unchanged.
func UnescapeString(text string) string {
	switch {
	case len(text) >= 2 && text[0] == '\'' && text[len(text)-1] == '\'':
		return strings.ReplaceAll(text[1:len(text)-1], "''", "'")
	case len(text) >= 4 && strings.HasPrefix(text, "$$") && strings.HasSuffix(text, "$$"):
		return text[2 : len(text)-2]
	}
	return text
}

// BooleanLiteral is true or false.
type BooleanLiteral struct {
	Value bool `json:"value"`
}

// NullLiteral is NULL.
type NullLiteral struct{}

// UUIDLiteral is an unquoted UUID constant.
type UUIDLiteral struct {
	Text string `json:"text"`
}

// UUID decodes the literal.
func (l *UUIDLiteral) UUID() (gocql.UUID, error) {
	return gocql.ParseUUID(l.Text)
}

// BlobLiteral is a 0x-prefixed hexadecimal constant.
type BlobLiteral struct {
	Text string `json:"text"`
}

// Bytes decodes the literal.
func (l *BlobLiteral) Bytes() ([]byte, error) {
	digits := l.Text
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	return hex.DecodeString(digits)
}

// ListLiteral is [a, b, ...].
type ListLiteral struct {
	Elements []Term `json:"elements"`
}

// SetLiteral is {a, b, ...}.
type SetLiteral struct {
	Elements []Term `json:"elements"`
}

// MapEntry is one key:value pair of a map literal.
type MapEntry struct {
	Key   Term `json:"key"`
	Value Term `json:"value"`
}

// MapLiteral is {k:v, ...}.
type MapLiteral struct {
	Entries []MapEntry `json:"entries"`
}

// Lookup returns the value of the first entry whose key is a string constant
// equal to key.
func (m *MapLiteral) Lookup(key string) (Term, bool) {
	for _, e := range m.Entries {
		if s, ok := e.Key.(*StringLiteral); ok && s.Value == key {
			return e.Value, true
		}
	}
	return nil, false
}

// TupleLiteral is (a, b, ...).
type TupleLiteral struct {
	Elements []Term `json:"elements"`
}

// FunctionCall is name(args), or name(*) when Star is set.
type FunctionCall struct {
	Name QualifiedName `json:"name"`
	Args []Term        `json:"args,omitempty"`
	Star bool          `json:"star,omitempty"`
}

// BindMarker is ? or :name.
type BindMarker struct {
	Name *Identifier `json:"name,omitempty"`
}

// ColumnRef names a column inside an expression.
type ColumnRef struct {
	Name Identifier `json:"name"`
}

// RawTerm holds the source text of a value that could not be read into a
// typed term.
type RawTerm struct {
	Text string `json:"text"`
}

func (*IntegerLiteral) termNode() {}
func (*FloatLiteral) termNode()   {}
func (*StringLiteral) termNode()  {}
func (*BooleanLiteral) termNode() {}
func (*NullLiteral) termNode()    {}
func (*UUIDLiteral) termNode()    {}
func (*BlobLiteral) termNode()    {}
func (*ListLiteral) termNode()    {}
func (*SetLiteral) termNode()     {}
func (*MapLiteral) termNode()     {}
func (*TupleLiteral) termNode()   {}
func (*FunctionCall) termNode()   {}
func (*BindMarker) termNode()     {}
func (*ColumnRef) termNode()      {}
func (*RawTerm) termNode()        {}

func (l *IntegerLiteral) String() string { return l.Text }
func (l *FloatLiteral) String() string   { return l.Text }
func (l *UUIDLiteral) String() string    { return l.Text }
func (l *BlobLiteral) String() string    { return l.Text }
func (*NullLiteral) String() string      { return "NULL" }
func (t *RawTerm) String() string        { return t.Text }
func (c *ColumnRef) String() string      { return c.Name.String() }

func (l *StringLiteral) String() string {
	if l.Dollar {
		return "$$" + l.Value + "$$"
	}
	return "'" + strings.ReplaceAll(l.Value, "'", "''") + "'"
}

func (l *BooleanLiteral) String() string {
	if l.Value {
		return "true"
	}
	return "false"
}

func (l *ListLiteral) String() string {
	return "[" + joinTerms(l.Elements) + "]"
}

func (l *SetLiteral) String() string {
	return "{" + joinTerms(l.Elements) + "}"
}

func (l *MapLiteral) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, e := range l.Entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(termString(e.Key))
		sb.WriteString(":")
		sb.WriteString(termString(e.Value))
	}
	sb.WriteString("}")
	return sb.String()
}

func (l *TupleLiteral) String() string {
	return "(" + joinTerms(l.Elements) + ")"
}

func (f *FunctionCall) String() string {
	if f.Star {
		return f.Name.String() + "(*)"
	}
	return f.Name.String() + "(" + joinTerms(f.Args) + ")"
}

func (b *BindMarker) String() string {
	if b.Name == nil {
		return "?"
	}
	return ":" + b.Name.String()
}

func joinTerms(terms []Term) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = termString(t)
	}
	return strings.Join(parts, ", ")
}

// Star is the * projection.
type Star struct{}

// Named is a projected term with an optional alias.
type Named struct {
	Expr  Term        `json:"expr"`
	Alias *Identifier `json:"alias,omitempty"`
}

func (*Star) selectElementNode()  {}
func (*Named) selectElementNode() {}

func (*Star) String() string { return "*" }

func (n *Named) String() string {
	if n.Alias == nil {
		return termString(n.Expr)
	}
	return termString(n.Expr) + " AS " + n.Alias.String()
}
