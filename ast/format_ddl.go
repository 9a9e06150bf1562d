package ast

import "strings"

func writeIfNotExists(sb *strings.Builder, ok bool) {
	if ok {
		sb.WriteString("IF NOT EXISTS ")
	}
}

func writeIfExists(sb *strings.Builder, ok bool) {
	if ok {
		sb.WriteString("IF EXISTS ")
	}
}

func formatKeyspaceOptions(sb *strings.Builder, o KeyspaceOptions) {
	var parts []string
	if o.Replication != nil {
		parts = append(parts, "REPLICATION = "+optionString(o.Replication))
	}
	if o.DurableWrites != nil {
		parts = append(parts, "DURABLE_WRITES = "+optionString(o.DurableWrites))
	}
	if len(parts) == 0 {
		return
	}
	sb.WriteString(" WITH ")
	sb.WriteString(strings.Join(parts, " AND "))
}

func formatCreateKeyspace(sb *strings.Builder, s *CreateKeyspace) {
	sb.WriteString("CREATE KEYSPACE ")
	writeIfNotExists(sb, s.IfNotExists)
	sb.WriteString(s.Name.String())
	formatKeyspaceOptions(sb, s.Options)
}

func formatAlterKeyspace(sb *strings.Builder, s *AlterKeyspace) {
	sb.WriteString("ALTER KEYSPACE ")
	writeIfExists(sb, s.IfExists)
	sb.WriteString(s.Name.String())
	formatKeyspaceOptions(sb, s.Options)
}

func formatCreateTable(sb *strings.Builder, s *CreateTable) {
	sb.WriteString("CREATE TABLE ")
	writeIfNotExists(sb, s.IfNotExists)
	sb.WriteString(s.Name.String())
	sb.WriteString(" (")
	sb.WriteString(joinColumns(s.Columns))
	if s.PrimaryKey != nil {
		if len(s.Columns) > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(s.PrimaryKey.String())
	}
	sb.WriteString(")")
	formatWith(sb, s.With)
}

func formatAlterTable(sb *strings.Builder, s *AlterTable) {
	sb.WriteString("ALTER TABLE ")
	writeIfExists(sb, s.IfExists)
	sb.WriteString(s.Name.String())
	if s.Operation != nil {
		sb.WriteString(" ")
		sb.WriteString(s.Operation.String())
	}
}

func formatCreateType(sb *strings.Builder, s *CreateType) {
	sb.WriteString("CREATE TYPE ")
	writeIfNotExists(sb, s.IfNotExists)
	sb.WriteString(s.Name.String())
	sb.WriteString(" (")
	sb.WriteString(joinFields(s.Fields))
	sb.WriteString(")")
}

func formatAlterType(sb *strings.Builder, s *AlterType) {
	sb.WriteString("ALTER TYPE ")
	writeIfExists(sb, s.IfExists)
	sb.WriteString(s.Name.String())
	if s.Operation != nil {
		sb.WriteString(" ")
		sb.WriteString(s.Operation.String())
	}
}

func formatCreateIndex(sb *strings.Builder, s *CreateIndex) {
	sb.WriteString("CREATE ")
	if s.Custom {
		sb.WriteString("CUSTOM ")
	}
	sb.WriteString("INDEX ")
	writeIfNotExists(sb, s.IfNotExists)
	if s.Name != nil {
		sb.WriteString(s.Name.String())
		sb.WriteString(" ")
	}
	sb.WriteString("ON ")
	sb.WriteString(s.Table.String())
	sb.WriteString(" (")
	sb.WriteString(s.Column.String())
	sb.WriteString(")")
	if s.Using != nil {
		sb.WriteString(" USING ")
		sb.WriteString(s.Using.String())
		if s.Options != nil {
			sb.WriteString(" WITH OPTIONS = ")
			sb.WriteString(s.Options.String())
		}
	}
}

func formatCreateFunction(sb *strings.Builder, s *CreateFunction) {
	sb.WriteString("CREATE ")
	if s.OrReplace {
		sb.WriteString("OR REPLACE ")
	}
	sb.WriteString("FUNCTION ")
	writeIfNotExists(sb, s.IfNotExists)
	sb.WriteString(s.Name.String())
	sb.WriteString(" (")
	sb.WriteString(joinFields(s.Params))
	sb.WriteString(")")
	if s.CalledOnNull {
		sb.WriteString(" CALLED ON NULL INPUT")
	} else {
		sb.WriteString(" RETURNS NULL ON NULL INPUT")
	}
	sb.WriteString(" RETURNS ")
	sb.WriteString(s.Returns.String())
	sb.WriteString(" LANGUAGE ")
	sb.WriteString(s.Language.String())
	sb.WriteString(" AS ")
	sb.WriteString(termString(s.Body))
}

func formatCreateAggregate(sb *strings.Builder, s *CreateAggregate) {
	sb.WriteString("CREATE ")
	if s.OrReplace {
		sb.WriteString("OR REPLACE ")
	}
	sb.WriteString("AGGREGATE ")
	writeIfNotExists(sb, s.IfNotExists)
	sb.WriteString(s.Name.String())
	formatArgTypes(sb, append([]DataType{}, s.ArgTypes...))
	sb.WriteString(" SFUNC ")
	sb.WriteString(s.StateFunc.String())
	sb.WriteString(" STYPE ")
	sb.WriteString(s.StateType.String())
	if s.FinalFunc != nil {
		sb.WriteString(" FINALFUNC ")
		sb.WriteString(s.FinalFunc.String())
	}
	if s.InitCond != nil {
		sb.WriteString(" INITCOND ")
		sb.WriteString(s.InitCond.String())
	}
}

func formatCreateTrigger(sb *strings.Builder, s *CreateTrigger) {
	sb.WriteString("CREATE TRIGGER ")
	writeIfNotExists(sb, s.IfNotExists)
	sb.WriteString(s.Name.String())
	if s.Table != nil {
		sb.WriteString(" ON ")
		sb.WriteString(s.Table.String())
	}
	sb.WriteString(" USING ")
	sb.WriteString(termString(s.Class))
}

func formatCreateMaterializedView(sb *strings.Builder, s *CreateMaterializedView) {
	sb.WriteString("CREATE MATERIALIZED VIEW ")
	writeIfNotExists(sb, s.IfNotExists)
	sb.WriteString(s.Name.String())
	sb.WriteString(" AS SELECT ")
	formatSelectElements(sb, s.Columns)
	sb.WriteString(" FROM ")
	sb.WriteString(s.From.String())
	formatWhere(sb, s.Where)
	sb.WriteString(" ")
	sb.WriteString(s.PrimaryKey.String())
	formatWith(sb, s.With)
}

func formatAlterMaterializedView(sb *strings.Builder, s *AlterMaterializedView) {
	sb.WriteString("ALTER MATERIALIZED VIEW ")
	writeIfExists(sb, s.IfExists)
	sb.WriteString(s.Name.String())
	formatWith(sb, s.With)
}
