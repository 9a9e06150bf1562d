// Package parser builds typed CQL3 statements from source text.
//
// Parsing never fails on malformed input. A statement that cannot be
// recognized at all becomes an ast.Unknown holding its text; a statement
// whose tail cannot be recognized keeps the recognized part and reports the
// tail as a trailing ast.Unknown.
package parser

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sqlc-dev/cqlast/ast"
	"github.com/sqlc-dev/cqlast/cst"
	"github.com/sqlc-dev/cqlast/token"
)

// Result is the outcome of parsing one statement.
type Result struct {
	// Statement is the parsed statement, or an *ast.Unknown holding the
	// whole text when nothing could be recognized.
	Statement ast.Statement
	// Unknowns holds text that followed the recognized statement but could
	// not be parsed as part of it.
	Unknowns []*ast.Unknown
	HasError bool
	Errors   []*cst.SyntaxError

	// rest is the unknown holding text after the statement's semicolon.
	rest *ast.Unknown
}

// Statements returns the primary statement followed by any trailing unknowns.
func (r *Result) Statements() []ast.Statement {
	out := make([]ast.Statement, 0, 1+len(r.Unknowns))
	out = append(out, r.Statement)
	for _, u := range r.Unknowns {
		out = append(out, u)
	}
	return out
}

// Parse parses a single statement. Text following the first semicolon is
// not part of the statement; it is returned as a trailing unknown and marks
// the result as erroneous.
func Parse(text string) *Result {
	tree := cst.Parse(text)
	nodes := statementNodes(tree.Root)
	if len(nodes) == 0 {
		return &Result{
			Statement: &ast.Unknown{Text: text},
			HasError:  true,
			Errors:    tree.Errors,
		}
	}

	r := build(text, nodes[0], tree.Errors)
	if r.Statement == nil {
		r.Statement = &ast.Unknown{Text: text}
	}
	if len(nodes) > 1 {
		first, last := nodes[1], nodes[len(nodes)-1]
		r.rest = &ast.Unknown{
			Span: ast.Span{Position: first.Start, EndPosition: last.End},
			Text: text[first.Start.Offset:last.End.Offset],
		}
		r.Unknowns = append(r.Unknowns, r.rest)
		r.HasError = true
		if !hasErrorAt(r.Errors, first.Start) {
			r.Errors = append(r.Errors, &cst.SyntaxError{
				Pos:     first.Start,
				Near:    first.Text(text),
				Message: "unexpected input after end of statement",
			})
		}
	}
	return r
}

// ParseAll parses every semicolon-separated statement read from r. The
// context is checked between statements.
func ParseAll(ctx context.Context, r io.Reader) ([]*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	text := string(data)
	tree := cst.Parse(text)

	var results []*Result
	for _, n := range statementNodes(tree.Root) {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}
		results = append(results, build(text, n, errorsWithin(tree.Errors, n)))
	}
	return results, nil
}

// ParseString parses every statement in text.
func ParseString(ctx context.Context, text string) ([]*Result, error) {
	return ParseAll(ctx, strings.NewReader(text))
}

// ParseFile parses every statement in the named file.
func ParseFile(ctx context.Context, path string) ([]*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return ParseAll(ctx, f)
}

// statementNodes returns the statement and error nodes of a tree, skipping
// semicolons.
func statementNodes(root *cst.Node) []*cst.Node {
	var out []*cst.Node
	for _, c := range root.Children {
		if c.Is(token.SEMICOLON) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// build turns one statement node into a result.
func build(src string, n *cst.Node, errs []*cst.SyntaxError) *Result {
	r := &Result{Errors: errs}
	if n.IsError() {
		r.Statement = &ast.Unknown{
			Span: ast.Span{Position: n.Start, EndPosition: n.End},
			Text: n.Text(src),
		}
		r.HasError = true
		return r
	}

	fn, ok := dispatch[n.Kind]
	if !ok {
		r.Statement = &ast.Unknown{
			Span: ast.Span{Position: n.Start, EndPosition: n.End},
			Text: n.Text(src),
		}
		r.HasError = true
		return r
	}
	b := &builder{src: src}
	r.Statement = fn(b, n)

	if bad := n.Errors(); len(bad) > 0 {
		// Merge every error region into one trailing unknown running from
		// the first failure to the end of the statement.
		first := bad[0]
		r.Unknowns = append(r.Unknowns, &ast.Unknown{
			Span: ast.Span{Position: first.Start, EndPosition: n.End},
			Text: src[first.Start.Offset:n.End.Offset],
		})
		r.HasError = true
	}
	return r
}

func errorsWithin(errs []*cst.SyntaxError, n *cst.Node) []*cst.SyntaxError {
	var out []*cst.SyntaxError
	for _, e := range errs {
		if e.Pos.Offset >= n.Start.Offset && e.Pos.Offset <= n.End.Offset {
			out = append(out, e)
		}
	}
	return out
}

func hasErrorAt(errs []*cst.SyntaxError, pos token.Position) bool {
	for _, e := range errs {
		if e.Pos.Offset == pos.Offset {
			return true
		}
	}
	return false
}
