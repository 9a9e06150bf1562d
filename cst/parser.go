package cst

import (
	"fmt"
	"strings"

	"github.com/sqlc-dev/cqlast/lexer"
	"github.com/sqlc-dev/cqlast/token"
)

// parser is a backtracking recursive-descent parser over a token slice.
// Each statement is parsed inside its own chunk, the tokens up to the next
// semicolon; end marks the exclusive upper bound of that chunk.
type parser struct {
	src   string
	items []lexer.Item
	pos   int
	end   int
	far   int // furthest position at which a token failed to match
}

// Parse parses src into a concrete syntax tree. It never fails: statements that
// do not match the grammar are wrapped in ERROR nodes and reported in
// Tree.Errors.
func Parse(src string) *Tree {
	var items []lexer.Item
	for _, it := range lexer.Tokenize(src) {
		if it.Token != token.COMMENT {
			items = append(items, it)
		}
	}
	p := &parser{src: src, items: items}
	tree := &Tree{Source: src}
	root := &Node{Kind: KindSourceFile}

	eof := len(items) - 1
	for p.pos < eof {
		if items[p.pos].Token == token.SEMICOLON {
			root.add(leaf(KindKeyword, items[p.pos]))
			p.pos++
			continue
		}
		p.end = p.pos
		for p.end < eof && items[p.end].Token != token.SEMICOLON {
			p.end++
		}
		if err := p.chunk(root); err != nil {
			tree.Errors = append(tree.Errors, err)
		}
		p.pos = p.end
	}

	root.Start = token.Position{Offset: 0, Line: 1, Column: 1}
	root.End = items[eof].End
	tree.Root = root
	return tree
}

// chunk parses one statement between p.pos and p.end and appends it to root.
func (p *parser) chunk(root *Node) *SyntaxError {
	start := p.pos
	p.far = start
	stmt := p.try(p.statement)
	if stmt == nil {
		root.add(p.errorNode(start, p.end))
		return p.syntaxError(p.far, "syntax error")
	}
	root.add(stmt)
	if p.pos >= p.end {
		return nil
	}
	at := p.pos
	if p.far > at {
		at = p.far
	}
	stmt.add(p.errorNode(p.pos, p.end))
	return p.syntaxError(at, "unexpected input")
}

func (p *parser) errorNode(from, to int) *Node {
	return p.wrap(KindError, from, to)
}

// wrap returns a node of the given kind holding the tokens from..to as leaves.
func (p *parser) wrap(kind Kind, from, to int) *Node {
	n := &Node{Kind: kind}
	for _, it := range p.items[from:to] {
		n.add(leaf(leafKind(it.Token), it))
	}
	return n
}

func (p *parser) syntaxError(at int, msg string) *SyntaxError {
	if at > p.end {
		at = p.end
	}
	it := p.items[at]
	e := &SyntaxError{Pos: it.Pos, Message: msg}
	if at < p.end {
		e.Near = it.Text(p.src)
	} else {
		e.Message = fmt.Sprintf("%s at end of statement", msg)
	}
	return e
}

func leafKind(tok token.Token) Kind {
	switch tok {
	case token.IDENT:
		return KindIdentifier
	case token.STRING, token.INTEGER, token.FLOAT, token.HEXNUM, token.UUID:
		return KindLiteral
	}
	return KindKeyword
}

// tokenAt returns the token n positions ahead, EOF past the chunk.
func (p *parser) tokenAt(n int) token.Token {
	if p.pos+n >= p.end {
		return token.EOF
	}
	return p.items[p.pos+n].Token
}

func (p *parser) cur() token.Token { return p.tokenAt(0) }

func (p *parser) at(toks ...token.Token) bool {
	c := p.cur()
	for _, t := range toks {
		if c == t {
			return true
		}
	}
	return false
}

// wordAt reports whether the token n positions ahead is the unquoted
// identifier word. Such words act as keywords only where the grammar asks
// for them.
func (p *parser) wordAt(n int, word string) bool {
	if p.tokenAt(n) != token.IDENT {
		return false
	}
	it := p.items[p.pos+n]
	return !it.Quoted && strings.EqualFold(it.Value, word)
}

func (p *parser) peekIs(n int, tok token.Token) bool {
	return p.tokenAt(n) == tok
}

func (p *parser) fail() {
	if p.pos > p.far {
		p.far = p.pos
	}
}

// take consumes the current token as a leaf of the given kind.
func (p *parser) take(kind Kind) *Node {
	n := leaf(kind, p.items[p.pos])
	p.pos++
	return n
}

// accept consumes tok and returns its leaf, or records a failure and returns nil.
func (p *parser) accept(tok token.Token) *Node {
	if !p.at(tok) {
		p.fail()
		return nil
	}
	return p.take(leafKind(tok))
}

// try runs rule and rewinds the position when it does not match.
func (p *parser) try(rule func() *Node) *Node {
	mark := p.pos
	if n := rule(); n != nil {
		return n
	}
	p.pos = mark
	return nil
}

// first returns the result of the first rule that matches.
func (p *parser) first(rules ...func() *Node) *Node {
	for _, r := range rules {
		if n := p.try(r); n != nil {
			return n
		}
	}
	return nil
}

// expect consumes the given tokens in order, adding them to n.
func (p *parser) expect(n *Node, toks ...token.Token) bool {
	for _, t := range toks {
		c := p.accept(t)
		if c == nil {
			return false
		}
		n.add(c)
	}
	return true
}

// need adds c to n and reports whether c matched.
func need(n, c *Node) bool {
	if c == nil {
		return false
	}
	n.add(c)
	return true
}

// andList parses rule (AND rule)* into n. The first element is required; a
// later element that does not match is left unconsumed together with its AND.
func (p *parser) andList(n *Node, rule func() *Node) bool {
	if !need(n, p.try(rule)) {
		return false
	}
	for p.at(token.AND) {
		mark := p.pos
		and := p.take(KindKeyword)
		next := p.try(rule)
		if next == nil {
			p.pos = mark
			return true
		}
		n.add(and)
		n.add(next)
	}
	return true
}

// clause is an optional trailing clause introduced by a keyword.
type clause struct {
	tok  token.Token
	rule func() *Node
}

// clauses appends each clause whose keyword is present, in order. It stops at
// the first clause that starts but does not match, leaving the rest of the
// chunk unconsumed.
func (p *parser) clauses(n *Node, cs ...clause) *Node {
	for _, c := range cs {
		if !p.at(c.tok) {
			continue
		}
		m := p.try(c.rule)
		if m == nil {
			return n
		}
		n.add(m)
	}
	return n
}

// optional parses rule when the current token is tok. ok is false when the
// rule started but did not match.
func (p *parser) optional(n *Node, tok token.Token, rule func() *Node) bool {
	if !p.at(tok) {
		return true
	}
	return need(n, p.try(rule))
}

func (p *parser) statement() *Node {
	switch p.cur() {
	case token.SELECT:
		return p.selectStatement()
	case token.INSERT:
		return p.insertStatement()
	case token.UPDATE:
		return p.updateStatement()
	case token.DELETE:
		return p.deleteStatement()
	case token.BEGIN:
		return p.first(p.insertStatement, p.updateStatement, p.deleteStatement)
	case token.APPLY:
		return p.applyBatch()
	case token.USE:
		return p.useStatement()
	case token.TRUNCATE:
		return p.truncateStatement()
	case token.CREATE:
		return p.first(
			p.createKeyspace, p.createTable, p.createIndex, p.createType,
			p.createFunction, p.createAggregate, p.createTrigger,
			p.createMaterializedView, p.createRole, p.createUser,
		)
	case token.ALTER:
		return p.first(
			p.alterKeyspace, p.alterTable, p.alterType,
			p.alterMaterializedView, p.alterRole, p.alterUser,
		)
	case token.DROP:
		return p.first(
			p.dropKeyspace, p.dropTable, p.dropIndex, p.dropType,
			p.dropFunction, p.dropAggregate, p.dropTrigger,
			p.dropMaterializedView, p.dropRole, p.dropUser,
		)
	case token.GRANT:
		return p.first(p.grant, p.grantRole)
	case token.REVOKE:
		return p.first(p.revoke, p.revokeRole)
	case token.LIST:
		return p.first(p.listUsers, p.listRoles, p.listPermissions)
	}
	p.fail()
	return nil
}
