package ast

// KeyspaceOf returns the keyspace a statement operates on, or def when the
// statement names no keyspace.
func KeyspaceOf(stmt Statement, def string) string {
	switch s := stmt.(type) {
	case *CreateKeyspace:
		return s.Name.Normalized()
	case *AlterKeyspace:
		return s.Name.Normalized()
	case *DropKeyspace:
		return s.Name.Name.Normalized()
	case *Use:
		return s.Keyspace.Normalized()
	case *CreateIndex:
		return s.Table.KeyspaceOr(def)
	case *Grant, *Revoke, *ListPermissions:
		return def
	}
	if name, ok := objectName(stmt); ok {
		return name.KeyspaceOr(def)
	}
	return def
}

// objectName returns the keyspace-qualified name of the object a statement
// creates, alters, reads or drops.
func objectName(stmt Statement) (QualifiedName, bool) {
	switch s := stmt.(type) {
	case *Select:
		return s.From, true
	case *Insert:
		return s.Table, true
	case *Update:
		return s.Table, true
	case *Delete:
		return s.Table, true
	case *Truncate:
		return s.Table, true
	case *CreateTable:
		return s.Name, true
	case *AlterTable:
		return s.Name, true
	case *CreateType:
		return s.Name, true
	case *AlterType:
		return s.Name, true
	case *CreateFunction:
		return s.Name, true
	case *CreateAggregate:
		return s.Name, true
	case *CreateTrigger:
		return s.Name, true
	case *CreateMaterializedView:
		return s.Name, true
	case *AlterMaterializedView:
		return s.Name, true
	case *DropTable:
		return s.Name, true
	case *DropIndex:
		return s.Name, true
	case *DropType:
		return s.Name, true
	case *DropMaterializedView:
		return s.Name, true
	case *DropFunction:
		return s.Name, true
	case *DropAggregate:
		return s.Name, true
	case *DropTrigger:
		return s.Name, true
	}
	return QualifiedName{}, false
}

// TableName returns the table a statement reads, writes or defines. It
// reports false for statements that do not target a table.
func TableName(stmt Statement) (QualifiedName, bool) {
	switch s := stmt.(type) {
	case *Select:
		return s.From, true
	case *Insert:
		return s.Table, true
	case *Update:
		return s.Table, true
	case *Delete:
		return s.Table, true
	case *Truncate:
		return s.Table, true
	case *CreateTable:
		return s.Name, true
	case *AlterTable:
		return s.Name, true
	case *DropTable:
		return s.Name, true
	case *CreateIndex:
		return s.Table, true
	case *CreateMaterializedView:
		return s.From, true
	case *DropTrigger:
		return s.Table, true
	}
	return QualifiedName{}, false
}
