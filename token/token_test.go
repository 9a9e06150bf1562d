package token

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		ident string
		want  Token
	}{
		{"select", SELECT},
		{"Select", SELECT},
		{"KEYSPACE", KEYSPACE},
		{"materialized", MATERIALIZED},
		{"token", IDENT},
		{"count", IDENT},
		{"users", IDENT},
		{"frozen", IDENT},
	}
	for _, tt := range tests {
		if got := Lookup(tt.ident); got != tt.want {
			t.Errorf("Lookup(%q) = %s, want %s", tt.ident, got, tt.want)
		}
	}
}

func TestReserved(t *testing.T) {
	for _, tok := range []Token{SELECT, FROM, WHERE, AND, PRIMARY, TRUNCATE, NULL} {
		if !tok.IsReserved() {
			t.Errorf("%s should be reserved", tok)
		}
	}
	for _, tok := range []Token{KEYSPACE, TABLE, VIEW, IDENT} {
		if tok.IsReserved() {
			t.Errorf("%s should not be reserved", tok)
		}
	}
}

func TestKeywordRange(t *testing.T) {
	if IDENT.IsKeyword() || EOF.IsKeyword() {
		t.Error("non-keywords reported as keywords")
	}
	for name, tok := range Keywords {
		if !tok.IsKeyword() {
			t.Errorf("Keywords[%q] = %s is not a keyword", name, tok)
		}
		if tok.String() != name {
			t.Errorf("Keywords[%q].String() = %q", name, tok.String())
		}
	}
}

func TestPositionIsValid(t *testing.T) {
	if (Position{}).IsValid() {
		t.Error("zero position reported valid")
	}
	if !(Position{Line: 1, Column: 1}).IsValid() {
		t.Error("line 1 position reported invalid")
	}
}
