package ast

import (
	"strings"
	"unicode"

	"github.com/sqlc-dev/cqlast/token"
)

// Identifier is a name of a keyspace, table, column, role or other schema
// object.
//
// Unquoted identifiers are case-insensitive and are written lower-case.
// Quoted identifiers are case-sensitive and are written with their delimiter,
// which is '"' for a quoted name and '\'' for a name given as a string.
type Identifier struct {
	Name   string `json:"name"`
	Quoted bool   `json:"quoted,omitempty"`
	Quote  byte   `json:"quote,omitempty"`
}

// NewIdentifier returns an unquoted identifier.
func NewIdentifier(name string) Identifier {
	return Identifier{Name: name}
}

// NewQuotedIdentifier returns a double-quoted identifier.
func NewQuotedIdentifier(name string) Identifier {
	return Identifier{Name: name, Quoted: true, Quote: '"'}
}

// ParseIdentifier reads an identifier as written in CQL source. Text wrapped
// in double or single quotes yields a quoted identifier with doubled
// delimiters collapsed; anything else is unquoted.
func ParseIdentifier(text string) Identifier {
	if len(text) >= 2 {
		q := text[0]
		if (q == '"' || q == '\'') && text[len(text)-1] == q {
			d := string(q)
			return Identifier{
				Name:   strings.ReplaceAll(text[1:len(text)-1], d+d, d),
				Quoted: true,
				Quote:  q,
			}
		}
	}
	return Identifier{Name: text}
}

func (i Identifier) delimiter() byte {
	if i.Quote == 0 {
		return '"'
	}
	return i.Quote
}

// String returns the identifier as CQL source. An unquoted name that would
// not read back as a name, such as a reserved word, is written double-quoted
// in lower case so that it still resolves to the same object.
func (i Identifier) String() string {
	if !i.Quoted {
		name := strings.ToLower(i.Name)
		if name != "" && needsQuotes(name) {
			return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
		}
		return name
	}
	d := string(i.delimiter())
	return d + strings.ReplaceAll(i.Name, d, d+d) + d
}

func needsQuotes(name string) bool {
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return true
	}
	switch name {
	case "nan", "infinity":
		return true
	}
	return token.Lookup(name).IsReserved()
}

// Normalized returns the name Cassandra resolves the identifier to.
func (i Identifier) Normalized() string {
	if i.Quoted {
		return i.Name
	}
	return strings.ToLower(i.Name)
}

// Equal reports whether both identifiers resolve to the same name. A quoted
// lower-case identifier equals its unquoted spelling in any case.
func (i Identifier) Equal(o Identifier) bool {
	return i.Normalized() == o.Normalized()
}

// IsZero reports whether the identifier is unset.
func (i Identifier) IsZero() bool {
	return i.Name == "" && !i.Quoted
}

// QualifiedName is a name optionally prefixed with a keyspace.
type QualifiedName struct {
	Keyspace *Identifier `json:"keyspace,omitempty"`
	Name     Identifier  `json:"name"`
}

// NewQualifiedName returns an unquoted name, qualified when keyspace is not empty.
func NewQualifiedName(keyspace, name string) QualifiedName {
	q := QualifiedName{Name: NewIdentifier(name)}
	if keyspace != "" {
		ks := NewIdentifier(keyspace)
		q.Keyspace = &ks
	}
	return q
}

// ParseQualifiedName reads keyspace.name or name as written in CQL source.
func ParseQualifiedName(text string) QualifiedName {
	if i := splitQualified(text); i >= 0 {
		ks := ParseIdentifier(text[:i])
		return QualifiedName{Keyspace: &ks, Name: ParseIdentifier(text[i+1:])}
	}
	return QualifiedName{Name: ParseIdentifier(text)}
}

// splitQualified returns the index of the first dot outside quotes, or -1.
func splitQualified(text string) int {
	var quote byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '.':
			return i
		}
	}
	return -1
}

func (q QualifiedName) String() string {
	if q.Keyspace == nil {
		return q.Name.String()
	}
	return q.Keyspace.String() + "." + q.Name.String()
}

// KeyspaceOr returns the normalized keyspace, or def when the name is not
// qualified.
func (q QualifiedName) KeyspaceOr(def string) string {
	if q.Keyspace == nil {
		return def
	}
	return q.Keyspace.Normalized()
}

// Equal reports whether both names resolve to the same object. An unqualified
// name only equals another unqualified name.
func (q QualifiedName) Equal(o QualifiedName) bool {
	if (q.Keyspace == nil) != (o.Keyspace == nil) {
		return false
	}
	if q.Keyspace != nil && !q.Keyspace.Equal(*o.Keyspace) {
		return false
	}
	return q.Name.Equal(o.Name)
}
