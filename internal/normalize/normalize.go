// Package normalize provides CQL normalization functions for comparing
// semantically equivalent statements that differ in spelling or layout.
package normalize

import (
	"regexp"
	"strings"

	"github.com/sqlc-dev/cqlast/lexer"
	"github.com/sqlc-dev/cqlast/token"
)

// Pre-compiled regexes for performance
var (
	whitespaceRegex    = regexp.MustCompile(`\s+`)
	operatorSpaceRegex = regexp.MustCompile(`\s*(!=|<>|<=|>=|[=<>+:])\s*`)
	ascRegex           = regexp.MustCompile(` ASC\b`)
	truncateTableRegex = regexp.MustCompile(`^TRUNCATE TABLE\b`)
	spaceParenRegex    = regexp.MustCompile(`\s*([()\[\]{}])\s*`)
	permissionsRegex   = regexp.MustCompile(`\bALL PERMISSIONS\b`)
)

// Whitespace collapses all whitespace sequences to a single space
// and trims leading/trailing whitespace.
func Whitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// Case rewrites keywords upper-case and unquoted identifiers lower-case,
// leaving strings, quoted identifiers and comments untouched.
func Case(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	last := 0
	for _, it := range lexer.Tokenize(s) {
		if it.Token == token.EOF {
			break
		}
		text := it.Text(s)
		switch {
		case it.Token.IsKeyword():
			text = strings.ToUpper(text)
		case it.Token == token.IDENT && !it.Quoted:
			text = strings.ToLower(text)
		}
		sb.WriteString(s[last:it.Pos.Offset])
		sb.WriteString(text)
		last = it.End.Offset
	}
	sb.WriteString(s[last:])
	return sb.String()
}

// DollarStrings rewrites $$...$$ strings as single-quoted strings, doubling
// any quotes they contain.
func DollarStrings(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	last := 0
	for _, it := range lexer.Tokenize(s) {
		if it.Token == token.EOF {
			break
		}
		text := it.Text(s)
		if it.Token != token.STRING || !strings.HasPrefix(text, "$$") {
			continue
		}
		sb.WriteString(s[last:it.Pos.Offset])
		sb.WriteString("'" + strings.ReplaceAll(it.Value, "'", "''") + "'")
		last = it.End.Offset
	}
	sb.WriteString(s[last:])
	return sb.String()
}

// CommasOutsideStrings removes spaces after commas that are outside of string literals.
func CommasOutsideStrings(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	inString := false
	stringChar := byte(0)
	i := 0
	for i < len(s) {
		ch := s[i]
		if !inString {
			if ch == '\'' || ch == '"' {
				inString = true
				stringChar = ch
				result.WriteByte(ch)
				i++
			} else if ch == ',' && i+1 < len(s) && s[i+1] == ' ' {
				result.WriteByte(ch)
				i += 2
			} else {
				result.WriteByte(ch)
				i++
			}
			continue
		}
		if ch == stringChar {
			// A doubled delimiter stays inside the string.
			if i+1 < len(s) && s[i+1] == stringChar {
				result.WriteByte(ch)
				result.WriteByte(s[i+1])
				i += 2
				continue
			}
			inString = false
		}
		result.WriteByte(ch)
		i++
	}
	return result.String()
}

// ForFormat normalizes CQL for format comparison. Two statements that
// differ only in layout, comments, keyword or identifier case, quoting
// style of strings, or optional noise words normalize to the same text.
func ForFormat(s string) string {
	normalized := StripComments(s)
	normalized = DollarStrings(normalized)
	normalized = Case(normalized)
	normalized = Whitespace(normalized)
	// Strip trailing semicolon and any spaces before it
	normalized = strings.TrimSuffix(strings.TrimSpace(normalized), ";")
	normalized = operatorSpaceRegex.ReplaceAllString(normalized, "$1")
	normalized = spaceParenRegex.ReplaceAllString(normalized, "$1")
	normalized = CommasOutsideStrings(normalized)
	// ASC is the default order
	normalized = ascRegex.ReplaceAllString(normalized, "")
	normalized = truncateTableRegex.ReplaceAllString(normalized, "TRUNCATE")
	normalized = permissionsRegex.ReplaceAllString(normalized, "ALL")
	return strings.TrimSpace(normalized)
}

// StripComments removes CQL comments from a query string.
// It handles:
//   - Line comments: -- or // to end of line
//   - Block comments: /* ... */
func StripComments(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	last := 0
	for _, it := range lexer.Tokenize(s) {
		if it.Token == token.EOF {
			break
		}
		if it.Token != token.COMMENT {
			continue
		}
		sb.WriteString(s[last:it.Pos.Offset])
		sb.WriteString(" ")
		last = it.End.Offset
	}
	sb.WriteString(s[last:])
	return sb.String()
}
