package cst

import "github.com/sqlc-dev/cqlast/token"

func (p *parser) createKeyspace() *Node {
	n := newNode(KindCreateKeyspace)
	if !p.expect(n, token.CREATE, token.KEYSPACE) || !p.optional(n, token.IF, p.ifNotExists) {
		return nil
	}
	if !need(n, p.identifier()) || !need(n, p.keyspaceOptions()) {
		return nil
	}
	return n
}

func (p *parser) alterKeyspace() *Node {
	n := newNode(KindAlterKeyspace)
	if !p.expect(n, token.ALTER, token.KEYSPACE) || !p.optional(n, token.IF, p.ifExists) {
		return nil
	}
	if !need(n, p.identifier()) || !need(n, p.keyspaceOptions()) {
		return nil
	}
	return n
}

// keyspaceOptions parses WITH REPLICATION = {...} [AND DURABLE_WRITES = bool].
func (p *parser) keyspaceOptions() *Node {
	n := newNode(KindKeyspaceOptions)
	if !p.expect(n, token.WITH) || !p.andList(n, p.keyspaceOption) {
		return nil
	}
	return n
}

func (p *parser) keyspaceOption() *Node {
	if !p.at(token.REPLICATION, token.DURABLE_WRITES) {
		p.fail()
		return nil
	}
	n := newNode(KindKeyspaceOption, p.take(KindKeyword))
	if !p.expect(n, token.EQ) || !need(n, p.term()) {
		return nil
	}
	return n
}

// createTable parses CREATE TABLE [IF NOT EXISTS] t (defs) [WITH options].
func (p *parser) createTable() *Node {
	n := newNode(KindCreateTable)
	if !p.expect(n, token.CREATE, token.TABLE) || !p.optional(n, token.IF, p.ifNotExists) {
		return nil
	}
	if !need(n, p.qualifiedName()) || !p.expect(n, token.LPAREN) {
		return nil
	}
	for {
		var def *Node
		if p.at(token.PRIMARY) && p.peekIs(1, token.KEY) {
			def = p.primaryKeySpec()
		} else {
			def = p.columnDefinition()
		}
		if !need(n, def) {
			return nil
		}
		if !p.at(token.COMMA) {
			break
		}
		n.add(p.take(KindKeyword))
	}
	if !p.expect(n, token.RPAREN) {
		return nil
	}
	return p.clauses(n, clause{token.WITH, p.tableOptions})
}

func (p *parser) columnDefinition() *Node {
	n := newNode(KindColumnDefinition)
	if !need(n, p.identifier()) || !need(n, p.dataType()) {
		return nil
	}
	if p.at(token.STATIC) {
		n.add(p.take(KindKeyword))
	}
	if p.at(token.PRIMARY) {
		if !p.expect(n, token.PRIMARY, token.KEY) {
			return nil
		}
	}
	return n
}

func (p *parser) alterTable() *Node {
	n := newNode(KindAlterTable)
	if !p.expect(n, token.ALTER, token.TABLE) || !p.optional(n, token.IF, p.ifExists) {
		return nil
	}
	if !need(n, p.qualifiedName()) {
		return nil
	}
	var op *Node
	switch {
	case p.at(token.ADD):
		op = p.alterTableAdd()
	case p.at(token.DROP) && p.peekIs(1, token.COMPACT):
		op = newNode(KindDropCompact)
		if !p.expect(op, token.DROP, token.COMPACT, token.STORAGE) {
			return nil
		}
	case p.at(token.DROP):
		op = p.alterTableDrop()
	case p.at(token.RENAME):
		op = p.rename(KindAlterTableRename)
	case p.at(token.WITH):
		op = p.tableOptions()
	case p.at(token.ALTER):
		op = p.alterColumnType()
	default:
		p.fail()
	}
	if !need(n, op) {
		return nil
	}
	return n
}

// alterTableAdd parses ADD col type [, col type] with optional parentheses.
func (p *parser) alterTableAdd() *Node {
	n := newNode(KindAlterTableAdd)
	if !p.expect(n, token.ADD) {
		return nil
	}
	paren := p.at(token.LPAREN)
	if paren {
		n.add(p.take(KindKeyword))
	}
	if !need(n, p.columnDefinition()) {
		return nil
	}
	for p.at(token.COMMA) {
		n.add(p.take(KindKeyword))
		if !need(n, p.columnDefinition()) {
			return nil
		}
	}
	if paren && !p.expect(n, token.RPAREN) {
		return nil
	}
	return n
}

func (p *parser) alterTableDrop() *Node {
	n := newNode(KindAlterTableDrop)
	if !p.expect(n, token.DROP) {
		return nil
	}
	paren := p.at(token.LPAREN)
	if paren {
		n.add(p.take(KindKeyword))
	}
	if !p.identifierList(n) {
		return nil
	}
	if paren && !p.expect(n, token.RPAREN) {
		return nil
	}
	return n
}

// rename parses RENAME a TO b (AND c TO d)*.
func (p *parser) rename(kind Kind) *Node {
	n := newNode(kind)
	if !p.expect(n, token.RENAME) || !p.andList(n, p.renameItem) {
		return nil
	}
	return n
}

func (p *parser) renameItem() *Node {
	n := newNode(KindRenameItem)
	if !need(n, p.identifier()) || !p.expect(n, token.TO) || !need(n, p.identifier()) {
		return nil
	}
	return n
}

func (p *parser) alterColumnType() *Node {
	n := newNode(KindAlterColumnType)
	if !p.expect(n, token.ALTER) || !need(n, p.identifier()) || !p.expect(n, token.TYPE) || !need(n, p.dataType()) {
		return nil
	}
	return n
}

// createIndex parses
//
//	CREATE [CUSTOM] INDEX [IF NOT EXISTS] [name] ON t (col | KEYS(col) | ...)
//	  [USING 'class' [WITH OPTIONS = {...}]]
func (p *parser) createIndex() *Node {
	n := newNode(KindCreateIndex)
	if !p.expect(n, token.CREATE) {
		return nil
	}
	if p.at(token.CUSTOM) {
		n.add(p.take(KindKeyword))
	}
	if !p.expect(n, token.INDEX) || !p.optional(n, token.IF, p.ifNotExists) {
		return nil
	}
	if !p.at(token.ON) && !need(n, p.identifier()) {
		return nil
	}
	if !p.expect(n, token.ON) || !need(n, p.qualifiedName()) || !p.expect(n, token.LPAREN) {
		return nil
	}
	col := newNode(KindIndexColumn)
	if p.at(token.KEYS, token.ENTRIES, token.FULL, token.VALUES) && p.peekIs(1, token.LPAREN) {
		col.add(p.take(KindKeyword))
		col.add(p.take(KindKeyword))
		if !need(col, p.identifier()) || !p.expect(col, token.RPAREN) {
			return nil
		}
	} else if !need(col, p.identifier()) {
		return nil
	}
	n.add(col)
	if !p.expect(n, token.RPAREN) {
		return nil
	}
	return p.clauses(n, clause{token.USING, p.indexUsing})
}

func (p *parser) indexUsing() *Node {
	n := newNode(KindIndexUsing)
	if !p.expect(n, token.USING) || !need(n, p.term()) {
		return nil
	}
	if p.at(token.WITH) {
		if !p.expect(n, token.WITH, token.OPTIONS, token.EQ) || !need(n, p.term()) {
			return nil
		}
	}
	return n
}

func (p *parser) createType() *Node {
	n := newNode(KindCreateType)
	if !p.expect(n, token.CREATE, token.TYPE) || !p.optional(n, token.IF, p.ifNotExists) {
		return nil
	}
	if !need(n, p.qualifiedName()) || !p.expect(n, token.LPAREN) || !p.fieldDefinitions(n) || !p.expect(n, token.RPAREN) {
		return nil
	}
	return n
}

// fieldDefinitions parses name type (, name type)* into n.
func (p *parser) fieldDefinitions(n *Node) bool {
	for {
		f := newNode(KindFieldDefinition)
		if !need(f, p.identifier()) || !need(f, p.dataType()) {
			return false
		}
		n.add(f)
		if !p.at(token.COMMA) {
			return true
		}
		n.add(p.take(KindKeyword))
	}
}

func (p *parser) alterType() *Node {
	n := newNode(KindAlterType)
	if !p.expect(n, token.ALTER, token.TYPE) || !p.optional(n, token.IF, p.ifExists) {
		return nil
	}
	if !need(n, p.qualifiedName()) {
		return nil
	}
	var op *Node
	switch p.cur() {
	case token.ALTER:
		op = p.alterColumnType()
	case token.ADD:
		op = newNode(KindAlterTypeAdd, p.take(KindKeyword))
		if !p.fieldDefinitions(op) {
			return nil
		}
	case token.RENAME:
		op = p.rename(KindAlterTypeRename)
	default:
		p.fail()
	}
	if !need(n, op) {
		return nil
	}
	return n
}

// orReplace consumes an optional OR REPLACE after CREATE.
func (p *parser) orReplace(n *Node) bool {
	if !p.at(token.OR) {
		return true
	}
	return p.expect(n, token.OR, token.REPLACE)
}

// createFunction parses
//
//	CREATE [OR REPLACE] FUNCTION [IF NOT EXISTS] f (params)
//	  (CALLED | RETURNS NULL) ON NULL INPUT RETURNS type LANGUAGE lang AS 'body'
func (p *parser) createFunction() *Node {
	n := newNode(KindCreateFunction)
	if !p.expect(n, token.CREATE) || !p.orReplace(n) || !p.expect(n, token.FUNCTION) {
		return nil
	}
	if !p.optional(n, token.IF, p.ifNotExists) || !need(n, p.qualifiedName()) || !p.expect(n, token.LPAREN) {
		return nil
	}
	if !p.at(token.RPAREN) {
		for {
			param := newNode(KindFunctionParameter)
			if !need(param, p.identifier()) || !need(param, p.dataType()) {
				return nil
			}
			n.add(param)
			if !p.at(token.COMMA) {
				break
			}
			n.add(p.take(KindKeyword))
		}
	}
	if !p.expect(n, token.RPAREN) {
		return nil
	}

	mode := newNode(KindFunctionNullMode)
	switch p.cur() {
	case token.CALLED:
		if !p.expect(mode, token.CALLED, token.ON, token.NULL, token.INPUT) {
			return nil
		}
	case token.RETURNS:
		if !p.expect(mode, token.RETURNS, token.NULL, token.ON, token.NULL, token.INPUT) {
			return nil
		}
	default:
		p.fail()
		return nil
	}
	n.add(mode)

	returns := newNode(KindFunctionReturns)
	if !p.expect(returns, token.RETURNS) || !need(returns, p.dataType()) {
		return nil
	}
	n.add(returns)

	body := newNode(KindFunctionBody)
	if !p.expect(body, token.LANGUAGE) || !need(body, p.identifier()) || !p.expect(body, token.AS) || !need(body, p.term()) {
		return nil
	}
	n.add(body)
	return n
}

// createAggregate parses
//
//	CREATE [OR REPLACE] AGGREGATE [IF NOT EXISTS] a (types) SFUNC f STYPE type
//	  [FINALFUNC f] [INITCOND term]
func (p *parser) createAggregate() *Node {
	n := newNode(KindCreateAggregate)
	if !p.expect(n, token.CREATE) || !p.orReplace(n) || !p.expect(n, token.AGGREGATE) {
		return nil
	}
	if !p.optional(n, token.IF, p.ifNotExists) || !need(n, p.qualifiedName()) || !need(n, p.dataTypeList(KindArgumentTypes)) {
		return nil
	}
	sfunc := newNode(KindAggregateSfunc)
	if !p.expect(sfunc, token.SFUNC) || !need(sfunc, p.identifier()) {
		return nil
	}
	n.add(sfunc)
	stype := newNode(KindAggregateStype)
	if !p.expect(stype, token.STYPE) || !need(stype, p.dataType()) {
		return nil
	}
	n.add(stype)
	return p.clauses(n,
		clause{token.FINALFUNC, p.aggregateFinalFunc},
		clause{token.INITCOND, p.aggregateInitCond},
	)
}

func (p *parser) aggregateFinalFunc() *Node {
	n := newNode(KindAggregateFinal)
	if !p.expect(n, token.FINALFUNC) || !need(n, p.identifier()) {
		return nil
	}
	return n
}

func (p *parser) aggregateInitCond() *Node {
	n := newNode(KindAggregateInitcond)
	if !p.expect(n, token.INITCOND) || !need(n, p.term()) {
		return nil
	}
	return n
}

// createTrigger parses CREATE TRIGGER [IF NOT EXISTS] name [ON table] USING 'class'.
func (p *parser) createTrigger() *Node {
	n := newNode(KindCreateTrigger)
	if !p.expect(n, token.CREATE, token.TRIGGER) || !p.optional(n, token.IF, p.ifNotExists) || !need(n, p.qualifiedName()) {
		return nil
	}
	if !p.optional(n, token.ON, p.triggerTable) {
		return nil
	}
	using := newNode(KindTriggerUsing)
	if !p.expect(using, token.USING) || !need(using, p.term()) {
		return nil
	}
	n.add(using)
	return n
}

func (p *parser) triggerTable() *Node {
	n := newNode(KindTriggerTable)
	if !p.expect(n, token.ON) || !need(n, p.qualifiedName()) {
		return nil
	}
	return n
}

// createMaterializedView parses
//
//	CREATE MATERIALIZED VIEW [IF NOT EXISTS] v AS SELECT cols FROM t WHERE ...
//	  PRIMARY KEY (...) [WITH options]
func (p *parser) createMaterializedView() *Node {
	n := newNode(KindCreateMaterializedView)
	if !p.expect(n, token.CREATE, token.MATERIALIZED, token.VIEW) || !p.optional(n, token.IF, p.ifNotExists) {
		return nil
	}
	if !need(n, p.qualifiedName()) || !p.expect(n, token.AS, token.SELECT) || !need(n, p.selectElements()) {
		return nil
	}
	if !p.expect(n, token.FROM) || !need(n, p.qualifiedName()) || !need(n, p.whereSpec()) || !need(n, p.primaryKeySpec()) {
		return nil
	}
	return p.clauses(n, clause{token.WITH, p.tableOptions})
}

func (p *parser) alterMaterializedView() *Node {
	n := newNode(KindAlterMaterializedView)
	if !p.expect(n, token.ALTER, token.MATERIALIZED, token.VIEW) || !p.optional(n, token.IF, p.ifExists) || !need(n, p.qualifiedName()) {
		return nil
	}
	return p.clauses(n, clause{token.WITH, p.tableOptions})
}

// dropStatement parses DROP <object> [IF EXISTS] name, shared by every DROP kind.
func (p *parser) dropStatement(kind Kind, object ...token.Token) *Node {
	n := newNode(kind)
	if !p.expect(n, token.DROP) || !p.expect(n, object...) {
		return nil
	}
	if !p.optional(n, token.IF, p.ifExists) || !need(n, p.qualifiedName()) {
		return nil
	}
	return n
}

func (p *parser) dropKeyspace() *Node { return p.dropStatement(KindDropKeyspace, token.KEYSPACE) }
func (p *parser) dropTable() *Node    { return p.dropStatement(KindDropTable, token.TABLE) }
func (p *parser) dropIndex() *Node    { return p.dropStatement(KindDropIndex, token.INDEX) }
func (p *parser) dropType() *Node     { return p.dropStatement(KindDropType, token.TYPE) }
func (p *parser) dropRole() *Node     { return p.dropStatement(KindDropRole, token.ROLE) }
func (p *parser) dropUser() *Node     { return p.dropStatement(KindDropUser, token.USER) }

func (p *parser) dropMaterializedView() *Node {
	return p.dropStatement(KindDropMaterializedView, token.MATERIALIZED, token.VIEW)
}

func (p *parser) dropFunction() *Node {
	n := p.dropStatement(KindDropFunction, token.FUNCTION)
	if n == nil {
		return nil
	}
	return p.clauses(n, clause{token.LPAREN, p.argumentTypes})
}

func (p *parser) dropAggregate() *Node {
	n := p.dropStatement(KindDropAggregate, token.AGGREGATE)
	if n == nil {
		return nil
	}
	return p.clauses(n, clause{token.LPAREN, p.argumentTypes})
}

func (p *parser) argumentTypes() *Node { return p.dataTypeList(KindArgumentTypes) }

// dropTrigger parses DROP TRIGGER [IF EXISTS] name ON table.
func (p *parser) dropTrigger() *Node {
	n := p.dropStatement(KindDropTrigger, token.TRIGGER)
	if n == nil || !need(n, p.triggerTable()) {
		return nil
	}
	return n
}
