// Package lexer implements a lexer for CQL3.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sqlc-dev/cqlast/token"
)

// Lexer tokenizes CQL3 input.
type Lexer struct {
	input string
	ch    rune // current character
	pos   token.Position
	read  int // offset of the byte after ch
	eof   bool
}

// Item represents a lexical token with its value and position.
type Item struct {
	Token  token.Token
	Value  string         // decoded value: quotes removed, escapes collapsed
	Pos    token.Position // first byte of the token
	End    token.Position // first byte after the token
	Quoted bool           // true if this identifier was double-quoted
}

// Text returns the exact source text of the item.
func (i Item) Text(src string) string {
	if i.End.Offset > len(src) || i.Pos.Offset > i.End.Offset {
		return ""
	}
	return src[i.Pos.Offset:i.End.Offset]
}

// New creates a new Lexer over the input.
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		pos:   token.Position{Offset: 0, Line: 1, Column: 1},
	}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.eof {
		return
	}
	if l.read > 0 {
		if l.ch == '\n' {
			l.pos.Line++
			l.pos.Column = 1
		} else {
			l.pos.Column++
		}
	}
	l.pos.Offset = l.read
	if l.read >= len(l.input) {
		l.ch = 0
		l.eof = true
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.read:])
	l.ch = r
	l.read += size
}

func (l *Lexer) peekChar() rune {
	if l.eof || l.read >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.read:])
	return r
}

func (l *Lexer) skipWhitespace() {
	// Skip whitespace and BOM (byte order mark U+FEFF)
	for !l.eof && (unicode.IsSpace(l.ch) || l.ch == '\uFEFF') {
		l.readChar()
	}
}

func (l *Lexer) item(tok token.Token, value string, pos token.Position) Item {
	return Item{Token: tok, Value: value, Pos: pos, End: l.pos}
}

// single consumes one character and returns it as a token.
func (l *Lexer) single(tok token.Token, pos token.Position) Item {
	v := string(l.ch)
	l.readChar()
	return l.item(tok, v, pos)
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Item {
	l.skipWhitespace()

	pos := l.pos

	if l.eof {
		return l.item(token.EOF, "", pos)
	}

	// Handle comments
	if (l.ch == '-' && l.peekChar() == '-') || (l.ch == '/' && l.peekChar() == '/') {
		return l.readLineComment()
	}
	if l.ch == '/' && l.peekChar() == '*' {
		return l.readBlockComment()
	}

	if isHexDigit(l.ch) && isUUID(l.input[l.pos.Offset:]) {
		return l.readUUID()
	}

	switch l.ch {
	case '+':
		return l.single(token.PLUS, pos)
	case '-':
		return l.single(token.MINUS, pos)
	case '*':
		return l.single(token.ASTERISK, pos)
	case '/':
		return l.single(token.SLASH, pos)
	case '=':
		return l.single(token.EQ, pos)
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.item(token.NEQ, "!=", pos)
		}
		return l.single(token.ILLEGAL, pos)
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.item(token.LTE, "<=", pos)
		}
		if l.peekChar() == '>' {
			l.readChar()
			l.readChar()
			return l.item(token.NEQ, "<>", pos)
		}
		return l.single(token.LT, pos)
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.item(token.GTE, ">=", pos)
		}
		return l.single(token.GT, pos)
	case '(':
		return l.single(token.LPAREN, pos)
	case ')':
		return l.single(token.RPAREN, pos)
	case '[':
		return l.single(token.LBRACKET, pos)
	case ']':
		return l.single(token.RBRACKET, pos)
	case '{':
		return l.single(token.LBRACE, pos)
	case '}':
		return l.single(token.RBRACE, pos)
	case ',':
		return l.single(token.COMMA, pos)
	case '.':
		if unicode.IsDigit(l.peekChar()) {
			return l.readNumber()
		}
		return l.single(token.DOT, pos)
	case ';':
		return l.single(token.SEMICOLON, pos)
	case ':':
		return l.single(token.COLON, pos)
	case '?':
		return l.single(token.QUESTION, pos)
	case '$':
		// Dollar-quoted strings: $$...$$
		if l.peekChar() == '$' {
			return l.readDollarQuotedString()
		}
		return l.single(token.ILLEGAL, pos)
	case '\'':
		return l.readString()
	case '"':
		return l.readQuotedIdentifier()
	default:
		if unicode.IsDigit(l.ch) {
			return l.readNumber()
		}
		if isIdentStart(l.ch) {
			return l.readIdentifier()
		}
		return l.single(token.ILLEGAL, pos)
	}
}

func (l *Lexer) readLineComment() Item {
	pos := l.pos
	for !l.eof && l.ch != '\n' {
		l.readChar()
	}
	return Item{Token: token.COMMENT, Value: l.input[pos.Offset:l.pos.Offset], Pos: pos, End: l.pos}
}

// readBlockComment reads a /* */ comment. An unterminated comment yields
// ILLEGAL spanning to the end of input.
func (l *Lexer) readBlockComment() Item {
	pos := l.pos
	// Skip /*
	l.readChar()
	l.readChar()
	for !l.eof {
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			return Item{Token: token.COMMENT, Value: l.input[pos.Offset:l.pos.Offset], Pos: pos, End: l.pos}
		}
		l.readChar()
	}
	return l.item(token.ILLEGAL, l.input[pos.Offset:], pos)
}

// readString reads a single-quoted string; a doubled quote stands for one quote.
// An unterminated string yields ILLEGAL spanning to the end of input.
func (l *Lexer) readString() Item {
	pos := l.pos
	var sb strings.Builder
	l.readChar() // skip opening quote

	for !l.eof {
		if l.ch == '\'' {
			if l.peekChar() == '\'' {
				sb.WriteRune('\'')
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar() // skip closing quote
			return l.item(token.STRING, sb.String(), pos)
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return l.item(token.ILLEGAL, l.input[pos.Offset:], pos)
}

func (l *Lexer) readDollarQuotedString() Item {
	pos := l.pos
	l.readChar() // skip first $
	l.readChar() // skip second $
	start := l.pos.Offset
	for !l.eof {
		if l.ch == '$' && l.peekChar() == '$' {
			value := l.input[start:l.pos.Offset]
			l.readChar()
			l.readChar()
			return l.item(token.STRING, value, pos)
		}
		l.readChar()
	}
	return l.item(token.ILLEGAL, l.input[pos.Offset:], pos)
}

func (l *Lexer) readQuotedIdentifier() Item {
	pos := l.pos
	var sb strings.Builder
	l.readChar() // skip opening quote

	for !l.eof {
		if l.ch == '"' {
			// Check for SQL-style doubled quote escape ""
			l.readChar()
			if l.ch == '"' {
				sb.WriteRune('"')
				l.readChar()
				continue
			}
			it := l.item(token.IDENT, sb.String(), pos)
			it.Quoted = true
			return it
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return l.item(token.ILLEGAL, l.input[pos.Offset:], pos)
}

func (l *Lexer) readUUID() Item {
	pos := l.pos
	for i := 0; i < uuidLen; i++ {
		l.readChar()
	}
	return l.item(token.UUID, l.input[pos.Offset:l.pos.Offset], pos)
}

func (l *Lexer) readNumber() Item {
	pos := l.pos

	// Hexadecimal blob constant
	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		l.readChar()
		l.readChar()
		for isHexDigit(l.ch) {
			l.readChar()
		}
		return l.item(token.HEXNUM, l.input[pos.Offset:l.pos.Offset], pos)
	}

	tok := token.INTEGER
	for unicode.IsDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && unicode.IsDigit(l.peekChar()) {
		tok = token.FLOAT
		l.readChar()
		for unicode.IsDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if unicode.IsDigit(next) || next == '+' || next == '-' {
			tok = token.FLOAT
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for unicode.IsDigit(l.ch) {
				l.readChar()
			}
		}
	}
	return l.item(tok, l.input[pos.Offset:l.pos.Offset], pos)
}

func (l *Lexer) readIdentifier() Item {
	pos := l.pos
	for isIdentChar(l.ch) {
		l.readChar()
	}
	word := l.input[pos.Offset:l.pos.Offset]
	switch strings.ToUpper(word) {
	case "NAN", "INFINITY":
		return l.item(token.FLOAT, word, pos)
	}
	return l.item(token.Lookup(word), word, pos)
}

// Tokenize returns all tokens from the input, comments included, ending with EOF.
func Tokenize(input string) []Item {
	l := New(input)
	var items []Item
	for {
		it := l.NextToken()
		items = append(items, it)
		if it.Token == token.EOF {
			return items
		}
	}
}

const uuidLen = 36

// isUUID reports whether s starts with a canonical 8-4-4-4-12 UUID that is
// not followed by further identifier characters.
func isUUID(s string) bool {
	if len(s) < uuidLen {
		return false
	}
	for i := 0; i < uuidLen; i++ {
		c := rune(s[i])
		switch i {
		case 8, 13, 18, 23:
			if c != '-' {
				return false
			}
		default:
			if !isHexDigit(c) {
				return false
			}
		}
	}
	if len(s) > uuidLen {
		r, _ := utf8.DecodeRuneInString(s[uuidLen:])
		if isIdentChar(r) {
			return false
		}
	}
	return true
}

func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isIdentChar(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_'
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
