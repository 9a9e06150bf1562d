package parser

import (
	"github.com/sqlc-dev/cqlast/ast"
	"github.com/sqlc-dev/cqlast/cst"
	"github.com/sqlc-dev/cqlast/token"
)

func (b *builder) keyspaceOptions(n *cst.Node) ast.KeyspaceOptions {
	var o ast.KeyspaceOptions
	for _, opt := range n.ChildrenOf(cst.KindKeyspaceOption) {
		v := b.term(opt.Children[2])
		if opt.Children[0].Is(token.REPLICATION) {
			o.Replication = v
		} else {
			o.DurableWrites = v
		}
	}
	return o
}

func (b *builder) createKeyspace(n *cst.Node) ast.Statement {
	expect(n, cst.KindCreateKeyspace)
	return &ast.CreateKeyspace{
		Span:        span(n),
		IfNotExists: n.Child(cst.KindIfNotExists) != nil,
		Name:        b.ident(n.Child(cst.KindIdentifier)),
		Options:     b.keyspaceOptions(n.Child(cst.KindKeyspaceOptions)),
	}
}

func (b *builder) alterKeyspace(n *cst.Node) ast.Statement {
	expect(n, cst.KindAlterKeyspace)
	return &ast.AlterKeyspace{
		Span:     span(n),
		IfExists: n.Child(cst.KindIfExists) != nil,
		Name:     b.ident(n.Child(cst.KindIdentifier)),
		Options:  b.keyspaceOptions(n.Child(cst.KindKeyspaceOptions)),
	}
}

func (b *builder) createTable(n *cst.Node) ast.Statement {
	expect(n, cst.KindCreateTable)
	s := &ast.CreateTable{
		Span:        span(n),
		IfNotExists: n.Child(cst.KindIfNotExists) != nil,
		Name:        b.qualifiedName(n.Child(cst.KindQualifiedName)),
		Columns:     []ast.ColumnDefinition{},
		With:        b.withItems(n.Child(cst.KindTableOptions)),
	}
	for _, c := range n.ChildrenOf(cst.KindColumnDefinition) {
		s.Columns = append(s.Columns, b.columnDefinition(c))
	}
	if pk := n.Child(cst.KindPrimaryKeySpec); pk != nil {
		key := b.primaryKey(pk)
		s.PrimaryKey = &key
	}
	return s
}

func (b *builder) alterTable(n *cst.Node) ast.Statement {
	expect(n, cst.KindAlterTable)
	s := &ast.AlterTable{
		Span:     span(n),
		IfExists: n.Child(cst.KindIfExists) != nil,
		Name:     b.qualifiedName(n.Child(cst.KindQualifiedName)),
	}
	for _, c := range n.Children {
		switch c.Kind {
		case cst.KindAlterTableAdd:
			add := &ast.AlterTableAdd{}
			for _, def := range c.ChildrenOf(cst.KindColumnDefinition) {
				add.Columns = append(add.Columns, b.columnDefinition(def))
			}
			s.Operation = add
		case cst.KindAlterTableDrop:
			s.Operation = &ast.AlterTableDrop{Columns: b.idents(c)}
		case cst.KindDropCompact:
			s.Operation = &ast.AlterTableDropCompactStorage{}
		case cst.KindAlterTableRename:
			s.Operation = &ast.AlterTableRename{Renames: b.renames(c)}
		case cst.KindTableOptions:
			s.Operation = &ast.AlterTableWith{Options: b.withItems(c)}
		case cst.KindAlterColumnType:
			s.Operation = b.alterColumnType(c)
		}
	}
	return s
}

func (b *builder) alterColumnType(n *cst.Node) *ast.AlterColumnType {
	expect(n, cst.KindAlterColumnType)
	return &ast.AlterColumnType{
		Column: b.ident(n.Child(cst.KindIdentifier)),
		Type:   b.dataType(n.Child(cst.KindDataType)),
	}
}

func (b *builder) createIndex(n *cst.Node) ast.Statement {
	expect(n, cst.KindCreateIndex)
	s := &ast.CreateIndex{
		Span:        span(n),
		Custom:      n.HasKeyword(token.CUSTOM),
		IfNotExists: n.Child(cst.KindIfNotExists) != nil,
		Name:        b.identPtr(n.Child(cst.KindIdentifier)),
		Table:       b.qualifiedName(n.Child(cst.KindQualifiedName)),
	}
	col := n.Child(cst.KindIndexColumn)
	s.Column.Column = b.ident(col.Child(cst.KindIdentifier))
	if first := col.Children[0]; first.Kind == cst.KindKeyword {
		s.Column.Kind = ast.IndexKind(first.Token.Token.String())
	}
	if u := n.Child(cst.KindIndexUsing); u != nil {
		args := b.terms(u)
		s.Using = args[0]
		if len(args) > 1 {
			s.Options = args[1]
		}
	}
	return s
}

func (b *builder) createType(n *cst.Node) ast.Statement {
	expect(n, cst.KindCreateType)
	return &ast.CreateType{
		Span:        span(n),
		IfNotExists: n.Child(cst.KindIfNotExists) != nil,
		Name:        b.qualifiedName(n.Child(cst.KindQualifiedName)),
		Fields:      b.fieldDefinitions(n, cst.KindFieldDefinition),
	}
}

func (b *builder) alterType(n *cst.Node) ast.Statement {
	expect(n, cst.KindAlterType)
	s := &ast.AlterType{
		Span:     span(n),
		IfExists: n.Child(cst.KindIfExists) != nil,
		Name:     b.qualifiedName(n.Child(cst.KindQualifiedName)),
	}
	for _, c := range n.Children {
		switch c.Kind {
		case cst.KindAlterColumnType:
			s.Operation = b.alterColumnType(c)
		case cst.KindAlterTypeAdd:
			s.Operation = &ast.AlterTypeAdd{Fields: b.fieldDefinitions(c, cst.KindFieldDefinition)}
		case cst.KindAlterTypeRename:
			s.Operation = &ast.AlterTypeRename{Renames: b.renames(c)}
		}
	}
	return s
}

func (b *builder) createFunction(n *cst.Node) ast.Statement {
	expect(n, cst.KindCreateFunction)
	body := n.Child(cst.KindFunctionBody)
	return &ast.CreateFunction{
		Span:         span(n),
		OrReplace:    n.HasKeyword(token.REPLACE),
		IfNotExists:  n.Child(cst.KindIfNotExists) != nil,
		Name:         b.qualifiedName(n.Child(cst.KindQualifiedName)),
		Params:       b.fieldDefinitions(n, cst.KindFunctionParameter),
		CalledOnNull: n.Child(cst.KindFunctionNullMode).HasKeyword(token.CALLED),
		Returns:      b.dataType(n.Child(cst.KindFunctionReturns).Child(cst.KindDataType)),
		Language:     b.ident(body.Children[1]),
		Body:         b.term(body.Children[3]),
	}
}

func (b *builder) createAggregate(n *cst.Node) ast.Statement {
	expect(n, cst.KindCreateAggregate)
	s := &ast.CreateAggregate{
		Span:        span(n),
		OrReplace:   n.HasKeyword(token.REPLACE),
		IfNotExists: n.Child(cst.KindIfNotExists) != nil,
		Name:        b.qualifiedName(n.Child(cst.KindQualifiedName)),
		ArgTypes:    b.dataTypes(n.Child(cst.KindArgumentTypes)),
		StateFunc:   b.ident(n.Child(cst.KindAggregateSfunc).Children[1]),
		StateType:   b.dataType(n.Child(cst.KindAggregateStype).Child(cst.KindDataType)),
	}
	if f := n.Child(cst.KindAggregateFinal); f != nil {
		s.FinalFunc = b.identPtr(f.Children[1])
	}
	if c := n.Child(cst.KindAggregateInitcond); c != nil {
		s.InitCond = b.term(c.Children[1])
	}
	return s
}

func (b *builder) createTrigger(n *cst.Node) ast.Statement {
	expect(n, cst.KindCreateTrigger)
	s := &ast.CreateTrigger{
		Span:        span(n),
		IfNotExists: n.Child(cst.KindIfNotExists) != nil,
		Name:        b.qualifiedName(n.Child(cst.KindQualifiedName)),
		Class:       b.term(n.Child(cst.KindTriggerUsing).Children[1]),
	}
	if t := n.Child(cst.KindTriggerTable); t != nil {
		table := b.qualifiedName(t.Child(cst.KindQualifiedName))
		s.Table = &table
	}
	return s
}

func (b *builder) createMaterializedView(n *cst.Node) ast.Statement {
	expect(n, cst.KindCreateMaterializedView)
	names := n.ChildrenOf(cst.KindQualifiedName)
	return &ast.CreateMaterializedView{
		Span:        span(n),
		IfNotExists: n.Child(cst.KindIfNotExists) != nil,
		Name:        b.qualifiedName(names[0]),
		Columns:     b.selectElements(n.Child(cst.KindSelectElements)),
		From:        b.qualifiedName(names[1]),
		Where:       b.relations(n.Child(cst.KindWhereSpec)),
		PrimaryKey:  b.primaryKey(n.Child(cst.KindPrimaryKeySpec)),
		With:        b.withItems(n.Child(cst.KindTableOptions)),
	}
}

func (b *builder) alterMaterializedView(n *cst.Node) ast.Statement {
	expect(n, cst.KindAlterMaterializedView)
	return &ast.AlterMaterializedView{
		Span:     span(n),
		IfExists: n.Child(cst.KindIfExists) != nil,
		Name:     b.qualifiedName(n.Child(cst.KindQualifiedName)),
		With:     b.withItems(n.Child(cst.KindTableOptions)),
	}
}

// commonDrop reads the [IF EXISTS] name part shared by every DROP statement.
func (b *builder) commonDrop(n *cst.Node) ast.CommonDrop {
	return ast.CommonDrop{
		IfExists: n.Child(cst.KindIfExists) != nil,
		Name:     b.qualifiedName(n.Child(cst.KindQualifiedName)),
	}
}

func (b *builder) dropKeyspace(n *cst.Node) ast.Statement {
	expect(n, cst.KindDropKeyspace)
	return &ast.DropKeyspace{Span: span(n), CommonDrop: b.commonDrop(n)}
}

func (b *builder) dropTable(n *cst.Node) ast.Statement {
	expect(n, cst.KindDropTable)
	return &ast.DropTable{Span: span(n), CommonDrop: b.commonDrop(n)}
}

func (b *builder) dropIndex(n *cst.Node) ast.Statement {
	expect(n, cst.KindDropIndex)
	return &ast.DropIndex{Span: span(n), CommonDrop: b.commonDrop(n)}
}

func (b *builder) dropType(n *cst.Node) ast.Statement {
	expect(n, cst.KindDropType)
	return &ast.DropType{Span: span(n), CommonDrop: b.commonDrop(n)}
}

func (b *builder) dropMaterializedView(n *cst.Node) ast.Statement {
	expect(n, cst.KindDropMaterializedView)
	return &ast.DropMaterializedView{Span: span(n), CommonDrop: b.commonDrop(n)}
}

func (b *builder) dropRole(n *cst.Node) ast.Statement {
	expect(n, cst.KindDropRole)
	return &ast.DropRole{Span: span(n), CommonDrop: b.commonDrop(n)}
}

func (b *builder) dropUser(n *cst.Node) ast.Statement {
	expect(n, cst.KindDropUser)
	return &ast.DropUser{Span: span(n), CommonDrop: b.commonDrop(n)}
}

func (b *builder) dropFunction(n *cst.Node) ast.Statement {
	expect(n, cst.KindDropFunction)
	s := &ast.DropFunction{Span: span(n), CommonDrop: b.commonDrop(n)}
	if args := n.Child(cst.KindArgumentTypes); args != nil {
		s.ArgTypes = b.dataTypes(args)
	}
	return s
}

func (b *builder) dropAggregate(n *cst.Node) ast.Statement {
	expect(n, cst.KindDropAggregate)
	s := &ast.DropAggregate{Span: span(n), CommonDrop: b.commonDrop(n)}
	if args := n.Child(cst.KindArgumentTypes); args != nil {
		s.ArgTypes = b.dataTypes(args)
	}
	return s
}

func (b *builder) dropTrigger(n *cst.Node) ast.Statement {
	expect(n, cst.KindDropTrigger)
	return &ast.DropTrigger{
		Span:       span(n),
		CommonDrop: b.commonDrop(n),
		Table:      b.qualifiedName(n.Child(cst.KindTriggerTable).Child(cst.KindQualifiedName)),
	}
}
