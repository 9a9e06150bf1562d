package ast

import "strings"

// Format returns the CQL text of a single statement, without a trailing
// semicolon.
func Format(stmt Statement) string {
	var sb strings.Builder
	WriteStatement(&sb, stmt)
	return sb.String()
}

// WriteStatement writes the CQL text of stmt to sb.
func WriteStatement(sb *strings.Builder, stmt Statement) {
	if stmt == nil {
		return
	}

	switch s := stmt.(type) {
	case *Select:
		formatSelect(sb, s)
	case *Insert:
		formatInsert(sb, s)
	case *Update:
		formatUpdate(sb, s)
	case *Delete:
		formatDelete(sb, s)
	case *ApplyBatch:
		sb.WriteString("APPLY BATCH")
	case *Use:
		sb.WriteString("USE ")
		sb.WriteString(s.Keyspace.String())
	case *Truncate:
		sb.WriteString("TRUNCATE TABLE ")
		sb.WriteString(s.Table.String())
	case *CreateKeyspace:
		formatCreateKeyspace(sb, s)
	case *AlterKeyspace:
		formatAlterKeyspace(sb, s)
	case *CreateTable:
		formatCreateTable(sb, s)
	case *AlterTable:
		formatAlterTable(sb, s)
	case *CreateType:
		formatCreateType(sb, s)
	case *AlterType:
		formatAlterType(sb, s)
	case *CreateIndex:
		formatCreateIndex(sb, s)
	case *CreateFunction:
		formatCreateFunction(sb, s)
	case *CreateAggregate:
		formatCreateAggregate(sb, s)
	case *CreateTrigger:
		formatCreateTrigger(sb, s)
	case *CreateMaterializedView:
		formatCreateMaterializedView(sb, s)
	case *AlterMaterializedView:
		formatAlterMaterializedView(sb, s)
	case *DropKeyspace:
		formatDrop(sb, "KEYSPACE", s.CommonDrop)
	case *DropTable:
		formatDrop(sb, "TABLE", s.CommonDrop)
	case *DropIndex:
		formatDrop(sb, "INDEX", s.CommonDrop)
	case *DropType:
		formatDrop(sb, "TYPE", s.CommonDrop)
	case *DropMaterializedView:
		formatDrop(sb, "MATERIALIZED VIEW", s.CommonDrop)
	case *DropRole:
		formatDrop(sb, "ROLE", s.CommonDrop)
	case *DropUser:
		formatDrop(sb, "USER", s.CommonDrop)
	case *DropFunction:
		formatDrop(sb, "FUNCTION", s.CommonDrop)
		formatArgTypes(sb, s.ArgTypes)
	case *DropAggregate:
		formatDrop(sb, "AGGREGATE", s.CommonDrop)
		formatArgTypes(sb, s.ArgTypes)
	case *DropTrigger:
		formatDrop(sb, "TRIGGER", s.CommonDrop)
		sb.WriteString(" ON ")
		sb.WriteString(s.Table.String())
	case *CreateRole:
		formatCreateRole(sb, s)
	case *AlterRole:
		formatAlterRole(sb, s)
	case *CreateUser:
		formatCreateUser(sb, s)
	case *AlterUser:
		formatAlterUser(sb, s)
	case *Grant:
		formatPrivilege(sb, "GRANT", "TO", s.Privilege)
	case *Revoke:
		formatPrivilege(sb, "REVOKE", "FROM", s.Privilege)
	case *GrantRole:
		sb.WriteString("GRANT ")
		sb.WriteString(s.Role.String())
		sb.WriteString(" TO ")
		sb.WriteString(s.Grantee.String())
	case *RevokeRole:
		sb.WriteString("REVOKE ")
		sb.WriteString(s.Role.String())
		sb.WriteString(" FROM ")
		sb.WriteString(s.Revokee.String())
	case *ListPermissions:
		formatListPermissions(sb, s)
	case *ListRoles:
		formatListRoles(sb, s)
	case *ListUsers:
		sb.WriteString("LIST USERS")
	case *Unknown:
		sb.WriteString(s.Text)
	}
}

// formatDrop writes DROP <object> [IF EXISTS] name.
func formatDrop(sb *strings.Builder, object string, d CommonDrop) {
	sb.WriteString("DROP ")
	sb.WriteString(object)
	sb.WriteString(" ")
	if d.IfExists {
		sb.WriteString("IF EXISTS ")
	}
	sb.WriteString(d.Name.String())
}

func termString(t Term) string {
	if t == nil {
		return ""
	}
	return t.String()
}

// optionString writes booleans of role and keyspace options upper-case.
func optionString(t Term) string {
	if b, ok := t.(*BooleanLiteral); ok {
		if b.Value {
			return "TRUE"
		}
		return "FALSE"
	}
	return termString(t)
}

func formatWhere(sb *strings.Builder, rels []Relation) {
	where := joinRelations(rels)
	if where == "" {
		return
	}
	sb.WriteString(" WHERE ")
	sb.WriteString(where)
}

// formatCondition writes IF EXISTS or IF relations. ifExists wins when both
// are set.
func formatCondition(sb *strings.Builder, ifExists bool, rels []Relation) {
	if ifExists {
		sb.WriteString(" IF EXISTS")
		return
	}
	if cond := joinRelations(rels); cond != "" {
		sb.WriteString(" IF ")
		sb.WriteString(cond)
	}
}

func formatWith(sb *strings.Builder, items []WithItem) {
	with := joinWith(items)
	if with == "" {
		return
	}
	sb.WriteString(" WITH ")
	sb.WriteString(with)
}

func formatArgTypes(sb *strings.Builder, types []DataType) {
	if types == nil {
		return
	}
	sb.WriteString(" (")
	sb.WriteString(joinDataTypes(types))
	sb.WriteString(")")
}
