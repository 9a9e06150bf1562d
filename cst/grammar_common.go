package cst

import "github.com/sqlc-dev/cqlast/token"

// isNameToken reports whether tok can stand for a name. String literals are
// accepted as single-quoted names.
func isNameToken(tok token.Token) bool {
	return tok == token.IDENT || tok == token.STRING || (tok.IsKeyword() && !tok.IsReserved())
}

// isColumnToken reports whether tok can start a column reference inside an
// expression, where a string literal is a constant rather than a name.
func isColumnToken(tok token.Token) bool {
	return tok == token.IDENT || (tok.IsKeyword() && !tok.IsReserved())
}

func (p *parser) identifier() *Node {
	if !isNameToken(p.cur()) {
		p.fail()
		return nil
	}
	return p.take(KindIdentifier)
}

// qualifiedName parses name or keyspace.name.
func (p *parser) qualifiedName() *Node {
	n := newNode(KindQualifiedName)
	if !need(n, p.identifier()) {
		return nil
	}
	if p.at(token.DOT) {
		n.add(p.take(KindKeyword))
		if !need(n, p.identifier()) {
			return nil
		}
	}
	return n
}

// identifierList parses ident (, ident)*.
func (p *parser) identifierList(n *Node) bool {
	if !need(n, p.identifier()) {
		return false
	}
	for p.at(token.COMMA) {
		n.add(p.take(KindKeyword))
		if !need(n, p.identifier()) {
			return false
		}
	}
	return true
}

// startsTerm reports whether the token n positions ahead can begin a term.
func (p *parser) startsTerm(n int) bool {
	switch tok := p.tokenAt(n); tok {
	case token.STRING, token.INTEGER, token.FLOAT, token.HEXNUM, token.UUID,
		token.TRUE, token.FALSE, token.NULL, token.MINUS,
		token.LBRACKET, token.LBRACE, token.LPAREN, token.QUESTION, token.COLON:
		return true
	default:
		return isColumnToken(tok)
	}
}

// term parses a constant, collection, tuple, function call, bind marker or
// column reference. Column references are returned as bare identifier leaves.
func (p *parser) term() *Node {
	switch p.cur() {
	case token.MINUS:
		if !p.peekIs(1, token.INTEGER) && !p.peekIs(1, token.FLOAT) {
			p.fail()
			return nil
		}
		n := newNode(KindConstant, p.take(KindKeyword))
		n.add(p.take(KindLiteral))
		return n
	case token.STRING, token.INTEGER, token.FLOAT, token.HEXNUM, token.UUID:
		return newNode(KindConstant, p.take(KindLiteral))
	case token.TRUE, token.FALSE, token.NULL:
		return newNode(KindConstant, p.take(KindKeyword))
	case token.LBRACKET:
		return p.listLiteral()
	case token.LBRACE:
		return p.braceLiteral()
	case token.LPAREN:
		return p.tupleLiteral()
	case token.QUESTION, token.COLON:
		return p.bindMarker()
	}
	if !isColumnToken(p.cur()) {
		p.fail()
		return nil
	}
	if p.peekIs(1, token.LPAREN) || (p.peekIs(1, token.DOT) && p.peekIs(3, token.LPAREN)) {
		return p.functionCall()
	}
	return p.take(KindIdentifier)
}

// continuesOperand reports whether the current token extends a value into
// an expression the grammar does not model.
func (p *parser) continuesOperand() bool {
	return p.at(token.PLUS, token.MINUS, token.ASTERISK, token.SLASH, token.DOT, token.LBRACKET)
}

// operand parses a term. Arithmetic, casts, field selection and element
// access are kept as one operand node holding the raw tokens; when such an
// expression does not complete, the leading term alone is returned.
func (p *parser) operand() *Node {
	start, far := p.pos, p.far
	t := p.try(p.term)
	if t != nil && !p.continuesOperand() {
		return t
	}
	after := p.pos
	p.pos = start
	if p.rawOperand() {
		p.far = far
		return p.wrap(KindOperand, start, p.pos)
	}
	if t != nil {
		p.pos = after
		return t
	}
	p.pos = start
	return nil
}

// rawOperand consumes value (op value | .field | [key])*.
func (p *parser) rawOperand() bool {
	if !p.operandValue() {
		return false
	}
	for p.continuesOperand() {
		switch p.cur() {
		case token.DOT:
			p.pos++
			if p.identifier() == nil {
				return false
			}
		case token.LBRACKET:
			if !p.balanced(token.LBRACKET, token.RBRACKET) {
				return false
			}
		default:
			p.pos++
			if !p.operandValue() {
				return false
			}
		}
	}
	return true
}

// operandValue consumes a term or a name followed by a parenthesized
// argument list the grammar does not model, e.g. CAST(x AS int).
func (p *parser) operandValue() bool {
	if p.try(p.term) != nil {
		return true
	}
	if !isColumnToken(p.cur()) || !p.peekIs(1, token.LPAREN) {
		p.fail()
		return false
	}
	p.pos++
	return p.balanced(token.LPAREN, token.RPAREN)
}

// balanced consumes open ... close, including nested pairs.
func (p *parser) balanced(open, close token.Token) bool {
	if !p.at(open) {
		p.fail()
		return false
	}
	depth := 0
	for p.pos < p.end {
		switch p.cur() {
		case open:
			depth++
		case close:
			depth--
		}
		p.pos++
		if depth == 0 {
			return true
		}
	}
	p.fail()
	return false
}

// operandList parses operand (, operand)* into n.
func (p *parser) operandList(n *Node) bool {
	if !need(n, p.operand()) {
		return false
	}
	for p.at(token.COMMA) {
		n.add(p.take(KindKeyword))
		if !need(n, p.operand()) {
			return false
		}
	}
	return true
}

// termList parses term (, term)* into n.
func (p *parser) termList(n *Node) bool {
	if !need(n, p.term()) {
		return false
	}
	for p.at(token.COMMA) {
		n.add(p.take(KindKeyword))
		if !need(n, p.term()) {
			return false
		}
	}
	return true
}

func (p *parser) listLiteral() *Node {
	n := newNode(KindListLiteral)
	if !p.expect(n, token.LBRACKET) {
		return nil
	}
	if !p.at(token.RBRACKET) && !p.termList(n) {
		return nil
	}
	if !p.expect(n, token.RBRACKET) {
		return nil
	}
	return n
}

// braceLiteral parses a map {k: v, ...} or a set {a, b, ...}. An empty pair of
// braces is a map.
func (p *parser) braceLiteral() *Node {
	open := p.accept(token.LBRACE)
	if open == nil {
		return nil
	}
	if p.at(token.RBRACE) {
		return newNode(KindMapLiteral, open, p.take(KindKeyword))
	}
	first := p.term()
	if first == nil {
		return nil
	}
	if !p.at(token.COLON) {
		n := newNode(KindSetLiteral, open, first)
		for p.at(token.COMMA) {
			n.add(p.take(KindKeyword))
			if !need(n, p.term()) {
				return nil
			}
		}
		if !p.expect(n, token.RBRACE) {
			return nil
		}
		return n
	}
	n := newNode(KindMapLiteral, open)
	entry := newNode(KindMapEntry, first, p.take(KindKeyword))
	if !need(entry, p.term()) {
		return nil
	}
	n.add(entry)
	for p.at(token.COMMA) {
		n.add(p.take(KindKeyword))
		entry := newNode(KindMapEntry)
		if !need(entry, p.term()) || !p.expect(entry, token.COLON) || !need(entry, p.term()) {
			return nil
		}
		n.add(entry)
	}
	if !p.expect(n, token.RBRACE) {
		return nil
	}
	return n
}

func (p *parser) tupleLiteral() *Node {
	n := newNode(KindTupleLiteral)
	if !p.expect(n, token.LPAREN) || !p.termList(n) || !p.expect(n, token.RPAREN) {
		return nil
	}
	return n
}

func (p *parser) bindMarker() *Node {
	n := newNode(KindBindMarker)
	if p.at(token.QUESTION) {
		n.add(p.take(KindKeyword))
		return n
	}
	if !p.expect(n, token.COLON) || !need(n, p.identifier()) {
		return nil
	}
	return n
}

// functionCall parses name(*), name() or name(term, ...).
func (p *parser) functionCall() *Node {
	n := newNode(KindFunctionCall)
	if !need(n, p.qualifiedName()) || !p.expect(n, token.LPAREN) {
		return nil
	}
	switch {
	case p.at(token.ASTERISK):
		n.add(p.take(KindKeyword))
	case p.at(token.RPAREN):
	default:
		if !p.termList(n) {
			return nil
		}
	}
	if !p.expect(n, token.RPAREN) {
		return nil
	}
	return n
}

// dataType parses a native, collection, frozen, tuple or user-defined type.
func (p *parser) dataType() *Node {
	n := newNode(KindDataType)
	if p.at(token.SET) {
		n.add(p.take(KindIdentifier))
	} else if !need(n, p.qualifiedName()) {
		return nil
	}
	if !p.at(token.LT) {
		return n
	}
	n.add(p.take(KindKeyword))
	if !need(n, p.dataType()) {
		return nil
	}
	for p.at(token.COMMA) {
		n.add(p.take(KindKeyword))
		if !need(n, p.dataType()) {
			return nil
		}
	}
	if !p.expect(n, token.GT) {
		return nil
	}
	return n
}

// dataTypeList parses ( type, ... ) into a node of the given kind.
func (p *parser) dataTypeList(kind Kind) *Node {
	n := newNode(kind)
	if !p.expect(n, token.LPAREN) {
		return nil
	}
	if !p.at(token.RPAREN) {
		if !need(n, p.dataType()) {
			return nil
		}
		for p.at(token.COMMA) {
			n.add(p.take(KindKeyword))
			if !need(n, p.dataType()) {
				return nil
			}
		}
	}
	if !p.expect(n, token.RPAREN) {
		return nil
	}
	return n
}

// relation parses one predicate of a WHERE or IF clause.
func (p *parser) relation() *Node {
	n := newNode(KindRelation)
	switch {
	case p.at(token.LPAREN):
		cols := newNode(KindColumnList, p.take(KindKeyword))
		if !p.identifierList(cols) || !p.expect(cols, token.RPAREN) {
			return nil
		}
		n.add(cols)
	case isColumnToken(p.cur()) && p.peekIs(1, token.LPAREN):
		if !need(n, p.functionCall()) {
			return nil
		}
	default:
		if !need(n, p.identifier()) {
			return nil
		}
	}

	switch p.cur() {
	case token.EQ, token.NEQ, token.LT, token.LTE, token.GT, token.GTE, token.LIKE:
		n.add(p.take(KindKeyword))
	case token.CONTAINS:
		n.add(p.take(KindKeyword))
		if p.at(token.KEY) && p.startsTerm(1) {
			n.add(p.take(KindKeyword))
		}
	case token.IS:
		if !p.expect(n, token.IS, token.NOT) {
			return nil
		}
	case token.IN:
		n.add(p.take(KindKeyword))
		if p.at(token.QUESTION, token.COLON) {
			if !need(n, p.bindMarker()) {
				return nil
			}
			return n
		}
		values := newNode(KindInValues)
		if !p.expect(values, token.LPAREN) {
			return nil
		}
		if !p.at(token.RPAREN) && !p.operandList(values) {
			return nil
		}
		if !p.expect(values, token.RPAREN) {
			return nil
		}
		n.add(values)
		return n
	default:
		p.fail()
		return nil
	}
	if !need(n, p.operand()) {
		return nil
	}
	return n
}

// relations parses relation (AND relation)* into n.
func (p *parser) relations(n *Node) bool {
	return p.andList(n, p.relation)
}

func (p *parser) whereSpec() *Node {
	n := newNode(KindWhereSpec)
	if !p.expect(n, token.WHERE) || !p.relations(n) {
		return nil
	}
	return n
}

// ifSpec parses IF EXISTS or IF relation (AND relation)*.
func (p *parser) ifSpec() *Node {
	if p.at(token.IF) && p.peekIs(1, token.EXISTS) {
		return p.ifExists()
	}
	n := newNode(KindIfSpec)
	if !p.expect(n, token.IF) || !p.relations(n) {
		return nil
	}
	return n
}

func (p *parser) ifExists() *Node {
	n := newNode(KindIfExists)
	if !p.expect(n, token.IF, token.EXISTS) {
		return nil
	}
	return n
}

func (p *parser) ifNotExists() *Node {
	n := newNode(KindIfNotExists)
	if !p.expect(n, token.IF, token.NOT, token.EXISTS) {
		return nil
	}
	return n
}

// usingSpec parses USING TTL t | TIMESTAMP t (AND ...)*.
func (p *parser) usingSpec() *Node {
	n := newNode(KindUsingSpec)
	if !p.expect(n, token.USING) || !p.andList(n, p.usingItem) {
		return nil
	}
	return n
}

func (p *parser) usingItem() *Node {
	var n *Node
	switch p.cur() {
	case token.TTL:
		n = newNode(KindUsingTTL, p.take(KindKeyword))
	case token.TIMESTAMP:
		n = newNode(KindUsingTimestamp, p.take(KindKeyword))
	default:
		p.fail()
		return nil
	}
	if !need(n, p.term()) {
		return nil
	}
	return n
}

// beginBatch parses BEGIN [LOGGED|UNLOGGED|COUNTER] BATCH [USING TIMESTAMP t].
func (p *parser) beginBatch() *Node {
	n := newNode(KindBeginBatch)
	if !p.expect(n, token.BEGIN) {
		return nil
	}
	if p.at(token.LOGGED, token.UNLOGGED, token.COUNTER) {
		n.add(p.take(KindKeyword))
	}
	if !p.expect(n, token.BATCH) {
		return nil
	}
	if p.at(token.USING) {
		ts := newNode(KindUsingTimestamp)
		if !p.expect(ts, token.USING, token.TIMESTAMP) || !need(ts, p.term()) {
			return nil
		}
		n.add(ts)
	}
	return n
}

func (p *parser) orderElement() *Node {
	n := newNode(KindOrderElement)
	if !need(n, p.identifier()) {
		return nil
	}
	if p.at(token.ASC, token.DESC) {
		n.add(p.take(KindKeyword))
	}
	return n
}

// tableOptions parses WITH option (AND option)* for tables and views.
func (p *parser) tableOptions() *Node {
	n := newNode(KindTableOptions)
	if !p.expect(n, token.WITH) || !p.andList(n, p.tableOption) {
		return nil
	}
	return n
}

func (p *parser) tableOption() *Node {
	switch {
	case p.at(token.CLUSTERING):
		n := newNode(KindClusteringOrder)
		if !p.expect(n, token.CLUSTERING, token.ORDER, token.BY, token.LPAREN) || !need(n, p.orderElement()) {
			return nil
		}
		for p.at(token.COMMA) {
			n.add(p.take(KindKeyword))
			if !need(n, p.orderElement()) {
				return nil
			}
		}
		if !p.expect(n, token.RPAREN) {
			return nil
		}
		return n
	case p.at(token.COMPACT):
		n := newNode(KindCompactStorage)
		if !p.expect(n, token.COMPACT, token.STORAGE) {
			return nil
		}
		return n
	case p.at(token.ID) && p.peekIs(1, token.EQ):
		n := newNode(KindTableID, p.take(KindKeyword), p.take(KindKeyword))
		if !need(n, p.term()) {
			return nil
		}
		return n
	}
	n := newNode(KindTableProperty)
	if !need(n, p.identifier()) || !p.expect(n, token.EQ) || !need(n, p.term()) {
		return nil
	}
	return n
}

// primaryKeySpec parses PRIMARY KEY (p, c, ...) or PRIMARY KEY ((p1, p2), c, ...).
func (p *parser) primaryKeySpec() *Node {
	n := newNode(KindPrimaryKeySpec)
	if !p.expect(n, token.PRIMARY, token.KEY, token.LPAREN) {
		return nil
	}
	pk := newNode(KindPartitionKey)
	if p.at(token.LPAREN) {
		pk.add(p.take(KindKeyword))
		if !p.identifierList(pk) || !p.expect(pk, token.RPAREN) {
			return nil
		}
	} else if !need(pk, p.identifier()) {
		return nil
	}
	n.add(pk)
	for p.at(token.COMMA) {
		n.add(p.take(KindKeyword))
		if !need(n, p.identifier()) {
			return nil
		}
	}
	if !p.expect(n, token.RPAREN) {
		return nil
	}
	return n
}
