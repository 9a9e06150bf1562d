package ast

// KeyspaceOptions are the options of CREATE and ALTER KEYSPACE.
type KeyspaceOptions struct {
	Replication   Term `json:"replication,omitempty"`
	DurableWrites Term `json:"durable_writes,omitempty"`
}

// Strategy returns the replication class, if the replication map names one.
func (o KeyspaceOptions) Strategy() (string, bool) {
	m, ok := o.Replication.(*MapLiteral)
	if !ok {
		return "", false
	}
	v, ok := m.Lookup("class")
	if !ok {
		return "", false
	}
	s, ok := v.(*StringLiteral)
	if !ok {
		return "", false
	}
	return s.Value, true
}

// CreateKeyspace represents CREATE KEYSPACE.
type CreateKeyspace struct {
	Span
	IfNotExists bool            `json:"if_not_exists,omitempty"`
	Name        Identifier      `json:"name"`
	Options     KeyspaceOptions `json:"options"`
}

// AlterKeyspace represents ALTER KEYSPACE.
type AlterKeyspace struct {
	Span
	IfExists bool            `json:"if_exists,omitempty"`
	Name     Identifier      `json:"name"`
	Options  KeyspaceOptions `json:"options"`
}

// CreateTable represents CREATE TABLE. PrimaryKey is nil when the key is
// declared inline on a column.
type CreateTable struct {
	Span
	IfNotExists bool               `json:"if_not_exists,omitempty"`
	Name        QualifiedName      `json:"name"`
	Columns     []ColumnDefinition `json:"columns"`
	PrimaryKey  *PrimaryKey        `json:"primary_key,omitempty"`
	With        []WithItem         `json:"with,omitempty"`
}

// AlterTableOperation is the change made by ALTER TABLE.
type AlterTableOperation interface {
	String() string
	alterTableNode()
}

// AlterTypeOperation is the change made by ALTER TYPE.
type AlterTypeOperation interface {
	String() string
	alterTypeNode()
}

// AlterTableAdd is ADD col type, ...
type AlterTableAdd struct {
	Columns []ColumnDefinition `json:"columns"`
}

// AlterTableDrop is DROP col, ...
type AlterTableDrop struct {
	Columns []Identifier `json:"columns"`
}

// AlterTableDropCompactStorage is DROP COMPACT STORAGE.
type AlterTableDropCompactStorage struct{}

// AlterTableRename is RENAME a TO b AND ...
type AlterTableRename struct {
	Renames []Rename `json:"renames"`
}

// AlterTableWith is WITH option AND ...
type AlterTableWith struct {
	Options []WithItem `json:"options"`
}

// AlterColumnType is ALTER col TYPE type, for tables and user-defined types.
type AlterColumnType struct {
	Column Identifier `json:"column"`
	Type   DataType   `json:"type"`
}

// AlterTypeAdd is ADD field type, ...
type AlterTypeAdd struct {
	Fields []FieldDefinition `json:"fields"`
}

// AlterTypeRename is RENAME a TO b AND ...
type AlterTypeRename struct {
	Renames []Rename `json:"renames"`
}

func (*AlterTableAdd) alterTableNode()                {}
func (*AlterTableDrop) alterTableNode()               {}
func (*AlterTableDropCompactStorage) alterTableNode() {}
func (*AlterTableRename) alterTableNode()             {}
func (*AlterTableWith) alterTableNode()               {}
func (*AlterColumnType) alterTableNode()              {}
func (*AlterColumnType) alterTypeNode()               {}
func (*AlterTypeAdd) alterTypeNode()                  {}
func (*AlterTypeRename) alterTypeNode()               {}

func (o *AlterTableAdd) String() string             { return "ADD " + joinColumns(o.Columns) }
func (o *AlterTableDrop) String() string            { return "DROP " + joinIdentifiers(o.Columns) }
func (*AlterTableDropCompactStorage) String() string { return "DROP COMPACT STORAGE" }
func (o *AlterTableRename) String() string          { return "RENAME " + joinRenames(o.Renames) }
func (o *AlterTableWith) String() string            { return "WITH " + joinWith(o.Options) }
func (o *AlterTypeAdd) String() string              { return "ADD " + joinFields(o.Fields) }
func (o *AlterTypeRename) String() string           { return "RENAME " + joinRenames(o.Renames) }

func (o *AlterColumnType) String() string {
	return "ALTER " + o.Column.String() + " TYPE " + o.Type.String()
}

// AlterTable represents ALTER TABLE.
type AlterTable struct {
	Span
	IfExists  bool                `json:"if_exists,omitempty"`
	Name      QualifiedName       `json:"name"`
	Operation AlterTableOperation `json:"operation"`
}

// CreateType represents CREATE TYPE.
type CreateType struct {
	Span
	IfNotExists bool              `json:"if_not_exists,omitempty"`
	Name        QualifiedName     `json:"name"`
	Fields      []FieldDefinition `json:"fields"`
}

// AlterType represents ALTER TYPE.
type AlterType struct {
	Span
	IfExists  bool               `json:"if_exists,omitempty"`
	Name      QualifiedName      `json:"name"`
	Operation AlterTypeOperation `json:"operation"`
}

// IndexKind selects what part of a collection an index covers.
type IndexKind string

const (
	IndexValues  IndexKind = ""
	IndexKeys    IndexKind = "KEYS"
	IndexEntries IndexKind = "ENTRIES"
	IndexFull    IndexKind = "FULL"
	// IndexExplicitValues is VALUES(col), written out.
	IndexExplicitValues IndexKind = "VALUES"
)

// IndexColumn is the indexed column, optionally wrapped in KEYS(), ENTRIES(),
// FULL() or VALUES().
type IndexColumn struct {
	Kind   IndexKind  `json:"kind,omitempty"`
	Column Identifier `json:"column"`
}

func (c IndexColumn) String() string {
	if c.Kind == IndexValues {
		return c.Column.String()
	}
	return string(c.Kind) + "(" + c.Column.String() + ")"
}

// CreateIndex represents CREATE [CUSTOM] INDEX.
type CreateIndex struct {
	Span
	Custom      bool          `json:"custom,omitempty"`
	IfNotExists bool          `json:"if_not_exists,omitempty"`
	Name        *Identifier   `json:"name,omitempty"`
	Table       QualifiedName `json:"table"`
	Column      IndexColumn   `json:"column"`
	Using       Term          `json:"using,omitempty"`
	Options     Term          `json:"options,omitempty"`
}

// CreateFunction represents CREATE FUNCTION. CalledOnNull selects CALLED ON
// NULL INPUT over RETURNS NULL ON NULL INPUT.
type CreateFunction struct {
	Span
	OrReplace    bool              `json:"or_replace,omitempty"`
	IfNotExists  bool              `json:"if_not_exists,omitempty"`
	Name         QualifiedName     `json:"name"`
	Params       []FieldDefinition `json:"params,omitempty"`
	CalledOnNull bool              `json:"called_on_null,omitempty"`
	Returns      DataType          `json:"returns"`
	Language     Identifier        `json:"language"`
	Body         Term              `json:"body"`
}

// CreateAggregate represents CREATE AGGREGATE.
type CreateAggregate struct {
	Span
	OrReplace   bool          `json:"or_replace,omitempty"`
	IfNotExists bool          `json:"if_not_exists,omitempty"`
	Name        QualifiedName `json:"name"`
	ArgTypes    []DataType    `json:"arg_types"`
	StateFunc   Identifier    `json:"sfunc"`
	StateType   DataType      `json:"stype"`
	FinalFunc   *Identifier   `json:"finalfunc,omitempty"`
	InitCond    Term          `json:"initcond,omitempty"`
}

// CreateTrigger represents CREATE TRIGGER.
type CreateTrigger struct {
	Span
	IfNotExists bool           `json:"if_not_exists,omitempty"`
	Name        QualifiedName  `json:"name"`
	Table       *QualifiedName `json:"table,omitempty"`
	Class       Term           `json:"class"`
}

// CreateMaterializedView represents CREATE MATERIALIZED VIEW.
type CreateMaterializedView struct {
	Span
	IfNotExists bool            `json:"if_not_exists,omitempty"`
	Name        QualifiedName   `json:"name"`
	Columns     []SelectElement `json:"columns"`
	From        QualifiedName   `json:"from"`
	Where       []Relation      `json:"where"`
	PrimaryKey  PrimaryKey      `json:"primary_key"`
	With        []WithItem      `json:"with,omitempty"`
}

// AlterMaterializedView represents ALTER MATERIALIZED VIEW.
type AlterMaterializedView struct {
	Span
	IfExists bool          `json:"if_exists,omitempty"`
	Name     QualifiedName `json:"name"`
	With     []WithItem    `json:"with,omitempty"`
}

// CommonDrop holds the parts shared by every DROP statement.
type CommonDrop struct {
	IfExists bool          `json:"if_exists,omitempty"`
	Name     QualifiedName `json:"name"`
}

type DropKeyspace struct {
	Span
	CommonDrop
}

type DropTable struct {
	Span
	CommonDrop
}

type DropIndex struct {
	Span
	CommonDrop
}

type DropType struct {
	Span
	CommonDrop
}

type DropMaterializedView struct {
	Span
	CommonDrop
}

type DropRole struct {
	Span
	CommonDrop
}

type DropUser struct {
	Span
	CommonDrop
}

// DropFunction represents DROP FUNCTION. A non-nil ArgTypes selects one
// overload.
type DropFunction struct {
	Span
	CommonDrop
	ArgTypes []DataType `json:"arg_types,omitempty"`
}

// DropAggregate represents DROP AGGREGATE. A non-nil ArgTypes selects one
// overload.
type DropAggregate struct {
	Span
	CommonDrop
	ArgTypes []DataType `json:"arg_types,omitempty"`
}

// DropTrigger represents DROP TRIGGER name ON table.
type DropTrigger struct {
	Span
	CommonDrop
	Table QualifiedName `json:"table"`
}

func (*CreateKeyspace) statementNode()         {}
func (*AlterKeyspace) statementNode()          {}
func (*CreateTable) statementNode()            {}
func (*AlterTable) statementNode()             {}
func (*CreateType) statementNode()             {}
func (*AlterType) statementNode()              {}
func (*CreateIndex) statementNode()            {}
func (*CreateFunction) statementNode()         {}
func (*CreateAggregate) statementNode()        {}
func (*CreateTrigger) statementNode()          {}
func (*CreateMaterializedView) statementNode() {}
func (*AlterMaterializedView) statementNode()  {}
func (*DropKeyspace) statementNode()           {}
func (*DropTable) statementNode()              {}
func (*DropIndex) statementNode()              {}
func (*DropType) statementNode()               {}
func (*DropMaterializedView) statementNode()   {}
func (*DropRole) statementNode()               {}
func (*DropUser) statementNode()               {}
func (*DropFunction) statementNode()           {}
func (*DropAggregate) statementNode()          {}
func (*DropTrigger) statementNode()            {}

func (*CreateKeyspace) ShortName() string         { return "CREATE KEYSPACE" }
func (*AlterKeyspace) ShortName() string          { return "ALTER KEYSPACE" }
func (*CreateTable) ShortName() string            { return "CREATE TABLE" }
func (*AlterTable) ShortName() string             { return "ALTER TABLE" }
func (*CreateType) ShortName() string             { return "CREATE TYPE" }
func (*AlterType) ShortName() string              { return "ALTER TYPE" }
func (*CreateIndex) ShortName() string            { return "CREATE INDEX" }
func (*CreateFunction) ShortName() string         { return "CREATE FUNCTION" }
func (*CreateAggregate) ShortName() string        { return "CREATE AGGREGATE" }
func (*CreateTrigger) ShortName() string          { return "CREATE TRIGGER" }
func (*CreateMaterializedView) ShortName() string { return "CREATE MATERIALIZED VIEW" }
func (*AlterMaterializedView) ShortName() string  { return "ALTER MATERIALIZED VIEW" }
func (*DropKeyspace) ShortName() string           { return "DROP KEYSPACE" }
func (*DropTable) ShortName() string              { return "DROP TABLE" }
func (*DropIndex) ShortName() string              { return "DROP INDEX" }
func (*DropType) ShortName() string               { return "DROP TYPE" }
func (*DropMaterializedView) ShortName() string   { return "DROP MATERIALIZED VIEW" }
func (*DropRole) ShortName() string               { return "DROP ROLE" }
func (*DropUser) ShortName() string               { return "DROP USER" }
func (*DropFunction) ShortName() string           { return "DROP FUNCTION" }
func (*DropAggregate) ShortName() string          { return "DROP AGGREGATE" }
func (*DropTrigger) ShortName() string            { return "DROP TRIGGER" }

func (s *CreateKeyspace) String() string         { return Format(s) }
func (s *AlterKeyspace) String() string          { return Format(s) }
func (s *CreateTable) String() string            { return Format(s) }
func (s *AlterTable) String() string             { return Format(s) }
func (s *CreateType) String() string             { return Format(s) }
func (s *AlterType) String() string              { return Format(s) }
func (s *CreateIndex) String() string            { return Format(s) }
func (s *CreateFunction) String() string         { return Format(s) }
func (s *CreateAggregate) String() string        { return Format(s) }
func (s *CreateTrigger) String() string          { return Format(s) }
func (s *CreateMaterializedView) String() string { return Format(s) }
func (s *AlterMaterializedView) String() string  { return Format(s) }
func (s *DropKeyspace) String() string           { return Format(s) }
func (s *DropTable) String() string              { return Format(s) }
func (s *DropIndex) String() string              { return Format(s) }
func (s *DropType) String() string               { return Format(s) }
func (s *DropMaterializedView) String() string   { return Format(s) }
func (s *DropRole) String() string               { return Format(s) }
func (s *DropUser) String() string               { return Format(s) }
func (s *DropFunction) String() string           { return Format(s) }
func (s *DropAggregate) String() string          { return Format(s) }
func (s *DropTrigger) String() string            { return Format(s) }
