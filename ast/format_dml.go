package ast

import "strings"

func formatSelect(sb *strings.Builder, s *Select) {
	sb.WriteString("SELECT ")
	if s.Distinct {
		sb.WriteString("DISTINCT ")
	}
	if s.JSON {
		sb.WriteString("JSON ")
	}
	formatSelectElements(sb, s.Columns)
	sb.WriteString(" FROM ")
	sb.WriteString(s.From.String())
	formatWhere(sb, s.Where)
	if len(s.GroupBy) > 0 {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(joinIdentifiers(s.GroupBy))
	}
	if len(s.OrderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(joinOrder(s.OrderBy))
	}
	if s.PerPartitionLimit != nil {
		sb.WriteString(" PER PARTITION LIMIT ")
		sb.WriteString(s.PerPartitionLimit.String())
	}
	if s.Limit != nil {
		sb.WriteString(" LIMIT ")
		sb.WriteString(s.Limit.String())
	}
	if s.AllowFiltering {
		sb.WriteString(" ALLOW FILTERING")
	}
}

func formatSelectElements(sb *strings.Builder, cols []SelectElement) {
	n := 0
	for _, c := range cols {
		if c == nil {
			continue
		}
		if n > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
		n++
	}
	if n == 0 {
		sb.WriteString("*")
	}
}

func formatBatch(sb *strings.Builder, b *BeginBatch) {
	if b == nil {
		return
	}
	sb.WriteString(b.String())
	sb.WriteString(" ")
}

func formatUsing(sb *strings.Builder, u *UsingClause) {
	if u == nil || (u.TTL == nil && u.Timestamp == nil) {
		return
	}
	sb.WriteString(" ")
	sb.WriteString(u.String())
}

func formatInsert(sb *strings.Builder, s *Insert) {
	formatBatch(sb, s.Batch)
	sb.WriteString("INSERT INTO ")
	sb.WriteString(s.Table.String())
	if len(s.Columns) > 0 {
		sb.WriteString(" (")
		sb.WriteString(joinIdentifiers(s.Columns))
		sb.WriteString(")")
	}
	if s.JSON != nil {
		sb.WriteString(" JSON ")
		sb.WriteString(s.JSON.String())
		if s.JSONDefault != JSONDefaultNone {
			sb.WriteString(" DEFAULT ")
			sb.WriteString(string(s.JSONDefault))
		}
	} else {
		sb.WriteString(" VALUES (")
		sb.WriteString(joinTerms(s.Values))
		sb.WriteString(")")
	}
	if s.IfNotExists {
		sb.WriteString(" IF NOT EXISTS")
	}
	formatUsing(sb, s.Using)
}

func formatUpdate(sb *strings.Builder, s *Update) {
	formatBatch(sb, s.Batch)
	sb.WriteString("UPDATE ")
	sb.WriteString(s.Table.String())
	formatUsing(sb, s.Using)
	sb.WriteString(" SET ")
	for i, a := range s.Assignments {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	formatWhere(sb, s.Where)
	formatCondition(sb, s.IfExists, s.If)
}

func formatDelete(sb *strings.Builder, s *Delete) {
	formatBatch(sb, s.Batch)
	sb.WriteString("DELETE ")
	for i, c := range s.Columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	if len(s.Columns) > 0 {
		sb.WriteString(" ")
	}
	sb.WriteString("FROM ")
	sb.WriteString(s.Table.String())
	formatUsing(sb, s.Using)
	formatWhere(sb, s.Where)
	formatCondition(sb, s.IfExists, s.If)
}
