// Package highlight colours CQL source for terminal output.
package highlight

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sqlc-dev/cqlast/lexer"
	"github.com/sqlc-dev/cqlast/token"
)

// Highlighter renders CQL with one style per token class.
type Highlighter struct {
	Keyword    lipgloss.Style
	Identifier lipgloss.Style
	String     lipgloss.Style
	Number     lipgloss.Style
	Operator   lipgloss.Style
	Comment    lipgloss.Style
	Error      lipgloss.Style
}

// New returns a highlighter with the default palette.
func New() *Highlighter {
	return &Highlighter{
		Keyword: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF79C6")).
			Bold(true),
		Identifier: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8BE9FD")),
		String: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F1FA8C")),
		Number: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#BD93F9")),
		Operator: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB86C")),
		Comment: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4")).
			Italic(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Underline(true),
	}
}

// Highlight returns src with every token styled. Whitespace between tokens
// is kept as is.
func (h *Highlighter) Highlight(src string) string {
	var sb strings.Builder
	last := 0
	for _, it := range lexer.Tokenize(src) {
		if it.Token == token.EOF {
			break
		}
		sb.WriteString(src[last:it.Pos.Offset])
		sb.WriteString(h.style(it).Render(it.Text(src)))
		last = it.End.Offset
	}
	sb.WriteString(src[last:])
	return sb.String()
}

// Unrecognized renders text that could not be parsed.
func (h *Highlighter) Unrecognized(text string) string {
	return h.Error.Render(text)
}

func (h *Highlighter) style(it lexer.Item) lipgloss.Style {
	switch tok := it.Token; {
	case tok == token.COMMENT:
		return h.Comment
	case tok == token.ILLEGAL:
		return h.Error
	case tok == token.STRING:
		return h.String
	case tok == token.INTEGER, tok == token.FLOAT, tok == token.HEXNUM, tok == token.UUID:
		return h.Number
	case tok == token.IDENT:
		return h.Identifier
	case tok.IsKeyword():
		return h.Keyword
	}
	return h.Operator
}
