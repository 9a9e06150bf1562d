package cst

import "github.com/sqlc-dev/cqlast/token"

// selectStatement parses
//
//	SELECT [DISTINCT] [JSON] selectors FROM table [WHERE ...] [GROUP BY ...]
//	  [ORDER BY ...] [PER PARTITION LIMIT n] [LIMIT n] [ALLOW FILTERING]
func (p *parser) selectStatement() *Node {
	n := newNode(KindSelectStatement)
	if !p.expect(n, token.SELECT) {
		return nil
	}
	if p.at(token.DISTINCT) && p.isModifier(1) {
		n.add(p.take(KindKeyword))
	}
	if p.at(token.JSON) && p.isModifier(1) {
		n.add(p.take(KindKeyword))
	}
	if !need(n, p.selectElements()) || !p.expect(n, token.FROM) || !need(n, p.qualifiedName()) {
		return nil
	}
	return p.clauses(n,
		clause{token.WHERE, p.whereSpec},
		clause{token.GROUP, p.groupBySpec},
		clause{token.ORDER, p.orderSpec},
		clause{token.PER, p.perPartitionLimit},
		clause{token.LIMIT, p.limitSpec},
		clause{token.ALLOW, p.allowFiltering},
	)
}

// isModifier reports whether the keyword before position n is a selector
// modifier rather than a column named like one.
func (p *parser) isModifier(n int) bool {
	switch p.tokenAt(n) {
	case token.FROM, token.COMMA, token.AS, token.EOF:
		return false
	}
	return true
}

func (p *parser) selectElements() *Node {
	n := newNode(KindSelectElements)
	if p.at(token.ASTERISK) {
		n.add(p.take(KindKeyword))
		return n
	}
	if !need(n, p.selectElement()) {
		return nil
	}
	for p.at(token.COMMA) {
		n.add(p.take(KindKeyword))
		if !need(n, p.selectElement()) {
			return nil
		}
	}
	return n
}

func (p *parser) selectElement() *Node {
	n := newNode(KindSelectElement)
	if !need(n, p.operand()) {
		return nil
	}
	if p.at(token.AS) {
		n.add(p.take(KindKeyword))
		if !need(n, p.identifier()) {
			return nil
		}
	}
	return n
}

func (p *parser) groupBySpec() *Node {
	n := newNode(KindGroupBySpec)
	if !p.expect(n, token.GROUP, token.BY) || !p.identifierList(n) {
		return nil
	}
	return n
}

func (p *parser) orderSpec() *Node {
	n := newNode(KindOrderSpec)
	if !p.expect(n, token.ORDER, token.BY) || !need(n, p.orderElement()) {
		return nil
	}
	for p.at(token.COMMA) {
		n.add(p.take(KindKeyword))
		if !need(n, p.orderElement()) {
			return nil
		}
	}
	return n
}

func (p *parser) perPartitionLimit() *Node {
	n := newNode(KindPerPartitionLimit)
	if !p.expect(n, token.PER, token.PARTITION, token.LIMIT) || !need(n, p.term()) {
		return nil
	}
	return n
}

func (p *parser) limitSpec() *Node {
	n := newNode(KindLimitSpec)
	if !p.expect(n, token.LIMIT) || !need(n, p.term()) {
		return nil
	}
	return n
}

func (p *parser) allowFiltering() *Node {
	n := newNode(KindAllowFiltering)
	if !p.expect(n, token.ALLOW, token.FILTERING) {
		return nil
	}
	return n
}

// insertStatement parses
//
//	[BEGIN ... BATCH] INSERT INTO table [(cols)] VALUES (terms) | JSON 'doc' [DEFAULT NULL|UNSET]
//	  [IF NOT EXISTS] [USING ...]
func (p *parser) insertStatement() *Node {
	n := newNode(KindInsertStatement)
	if !p.optional(n, token.BEGIN, p.beginBatch) {
		return nil
	}
	if !p.expect(n, token.INSERT, token.INTO) || !need(n, p.qualifiedName()) {
		return nil
	}
	if p.at(token.LPAREN) {
		cols := newNode(KindColumnList, p.take(KindKeyword))
		if !p.identifierList(cols) || !p.expect(cols, token.RPAREN) {
			return nil
		}
		n.add(cols)
	}
	switch p.cur() {
	case token.VALUES:
		v := newNode(KindInsertValues, p.take(KindKeyword))
		if !p.expect(v, token.LPAREN) || !p.operandList(v) || !p.expect(v, token.RPAREN) {
			return nil
		}
		n.add(v)
	case token.JSON:
		j := newNode(KindInsertJSON, p.take(KindKeyword))
		if !need(j, p.term()) {
			return nil
		}
		if p.at(token.DEFAULT) && (p.peekIs(1, token.NULL) || p.peekIs(1, token.UNSET)) {
			j.add(p.take(KindKeyword))
			j.add(p.take(KindKeyword))
		}
		n.add(j)
	default:
		p.fail()
		return nil
	}
	return p.clauses(n,
		clause{token.IF, p.ifNotExists},
		clause{token.USING, p.usingSpec},
		clause{token.IF, p.ifNotExists},
	)
}

// updateStatement parses
//
//	[BEGIN ... BATCH] UPDATE table [USING ...] SET assignment, ... WHERE ... [IF ...]
func (p *parser) updateStatement() *Node {
	n := newNode(KindUpdate)
	if !p.optional(n, token.BEGIN, p.beginBatch) {
		return nil
	}
	if !p.expect(n, token.UPDATE) || !need(n, p.qualifiedName()) {
		return nil
	}
	if !p.optional(n, token.USING, p.usingSpec) {
		return nil
	}
	if !p.expect(n, token.SET) || !need(n, p.assignment()) {
		return nil
	}
	for p.at(token.COMMA) {
		n.add(p.take(KindKeyword))
		if !need(n, p.assignment()) {
			return nil
		}
	}
	if !need(n, p.whereSpec()) {
		return nil
	}
	return p.clauses(n, clause{token.IF, p.ifSpec})
}

// assignment parses col = term, col = term (+|-) term, col[k] = term and
// col.field = term.
func (p *parser) assignment() *Node {
	n := newNode(KindAssignment)
	if !need(n, p.identifier()) {
		return nil
	}
	switch p.cur() {
	case token.LBRACKET:
		n.add(p.take(KindKeyword))
		if !need(n, p.term()) || !p.expect(n, token.RBRACKET) {
			return nil
		}
	case token.DOT:
		n.add(p.take(KindKeyword))
		if !need(n, p.identifier()) {
			return nil
		}
	}
	if !p.expect(n, token.EQ) {
		return nil
	}
	if v := p.try(p.updateValue); v != nil {
		for _, c := range v.Children {
			n.add(c)
		}
		return n
	}
	if !need(n, p.operand()) {
		return nil
	}
	return n
}

// updateValue parses term [(+|-) term] when nothing else follows it; the
// children are moved into the assignment.
func (p *parser) updateValue() *Node {
	n := newNode(KindAssignment)
	if !need(n, p.term()) {
		return nil
	}
	if p.at(token.PLUS, token.MINUS) {
		n.add(p.take(KindKeyword))
		if !need(n, p.term()) {
			return nil
		}
	}
	if p.continuesOperand() {
		return nil
	}
	return n
}

// deleteStatement parses
//
//	[BEGIN ... BATCH] DELETE [col, ...] FROM table [USING TIMESTAMP t] WHERE ... [IF ...]
func (p *parser) deleteStatement() *Node {
	n := newNode(KindDeleteStatement)
	if !p.optional(n, token.BEGIN, p.beginBatch) {
		return nil
	}
	if !p.expect(n, token.DELETE) {
		return nil
	}
	if !p.at(token.FROM) {
		if !need(n, p.deleteColumn()) {
			return nil
		}
		for p.at(token.COMMA) {
			n.add(p.take(KindKeyword))
			if !need(n, p.deleteColumn()) {
				return nil
			}
		}
	}
	if !p.expect(n, token.FROM) || !need(n, p.qualifiedName()) {
		return nil
	}
	if !p.optional(n, token.USING, p.usingSpec) {
		return nil
	}
	if !need(n, p.whereSpec()) {
		return nil
	}
	return p.clauses(n, clause{token.IF, p.ifSpec})
}

func (p *parser) deleteColumn() *Node {
	n := newNode(KindDeleteColumn)
	if !need(n, p.identifier()) {
		return nil
	}
	switch p.cur() {
	case token.LBRACKET:
		n.add(p.take(KindKeyword))
		if !need(n, p.term()) || !p.expect(n, token.RBRACKET) {
			return nil
		}
	case token.DOT:
		n.add(p.take(KindKeyword))
		if !need(n, p.identifier()) {
			return nil
		}
	}
	return n
}

func (p *parser) applyBatch() *Node {
	n := newNode(KindApplyBatch)
	if !p.expect(n, token.APPLY, token.BATCH) {
		return nil
	}
	return n
}

func (p *parser) useStatement() *Node {
	n := newNode(KindUse)
	if !p.expect(n, token.USE) || !need(n, p.identifier()) {
		return nil
	}
	return n
}

func (p *parser) truncateStatement() *Node {
	n := newNode(KindTruncate)
	if !p.expect(n, token.TRUNCATE) {
		return nil
	}
	if p.at(token.TABLE) && isNameToken(p.tokenAt(1)) {
		n.add(p.take(KindKeyword))
	}
	if !need(n, p.qualifiedName()) {
		return nil
	}
	return n
}
