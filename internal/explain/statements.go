package explain

import (
	"github.com/sqlc-dev/cqlast/ast"
)

func statement(stmt ast.Statement) *node {
	switch s := stmt.(type) {
	case *ast.Select:
		return explainSelect(s)
	case *ast.Insert:
		return explainInsert(s)
	case *ast.Update:
		return explainUpdate(s)
	case *ast.Delete:
		return explainDelete(s)
	case *ast.ApplyBatch:
		return leaf("ApplyBatch")
	case *ast.Use:
		return leaf("Use %s", s.Keyspace.String())
	case *ast.Truncate:
		return branch("Truncate", qualifiedName("Table", s.Table))
	case *ast.Unknown:
		return leaf("Unknown %q", s.Text)
	case *ast.CreateKeyspace:
		return branch("CreateKeyspace "+s.Name.String(), flag("IfNotExists", s.IfNotExists), keyspaceOptions(s.Options))
	case *ast.AlterKeyspace:
		return branch("AlterKeyspace "+s.Name.String(), flag("IfExists", s.IfExists), keyspaceOptions(s.Options))
	case *ast.CreateTable:
		return explainCreateTable(s)
	case *ast.AlterTable:
		return branch("AlterTable "+s.Name.String(), flag("IfExists", s.IfExists), alterOperation(s.Operation))
	case *ast.CreateType:
		return branch("CreateType "+s.Name.String(), flag("IfNotExists", s.IfNotExists), fields("Fields", s.Fields))
	case *ast.AlterType:
		return branch("AlterType "+s.Name.String(), flag("IfExists", s.IfExists), alterOperation(s.Operation))
	case *ast.CreateIndex:
		return explainCreateIndex(s)
	case *ast.CreateFunction:
		return explainCreateFunction(s)
	case *ast.CreateAggregate:
		return explainCreateAggregate(s)
	case *ast.CreateTrigger:
		n := branch("CreateTrigger "+s.Name.String(), flag("IfNotExists", s.IfNotExists))
		if s.Table != nil {
			n.children = append(n.children, qualifiedName("Table", *s.Table))
		}
		n.children = append(n.children, branch("Using", term(s.Class)))
		return n
	case *ast.CreateMaterializedView:
		return branch("CreateMaterializedView "+s.Name.String(),
			flag("IfNotExists", s.IfNotExists),
			selectList(s.Columns),
			qualifiedName("Table", s.From),
			relations("Where", s.Where),
			primaryKey(&s.PrimaryKey),
			withItems(s.With),
		)
	case *ast.AlterMaterializedView:
		return branch("AlterMaterializedView "+s.Name.String(), flag("IfExists", s.IfExists), withItems(s.With))
	case *ast.DropKeyspace:
		return drop("DropKeyspace", s.CommonDrop)
	case *ast.DropTable:
		return drop("DropTable", s.CommonDrop)
	case *ast.DropIndex:
		return drop("DropIndex", s.CommonDrop)
	case *ast.DropType:
		return drop("DropType", s.CommonDrop)
	case *ast.DropMaterializedView:
		return drop("DropMaterializedView", s.CommonDrop)
	case *ast.DropRole:
		return drop("DropRole", s.CommonDrop)
	case *ast.DropUser:
		return drop("DropUser", s.CommonDrop)
	case *ast.DropFunction:
		return drop("DropFunction", s.CommonDrop, argTypes(s.ArgTypes))
	case *ast.DropAggregate:
		return drop("DropAggregate", s.CommonDrop, argTypes(s.ArgTypes))
	case *ast.DropTrigger:
		return drop("DropTrigger", s.CommonDrop, qualifiedName("Table", s.Table))
	case *ast.CreateRole:
		return branch("CreateRole "+s.Name.String(), flag("IfNotExists", s.IfNotExists), roleOptions(s.Options))
	case *ast.AlterRole:
		return branch("AlterRole "+s.Name.String(), flag("IfExists", s.IfExists), roleOptions(s.Options))
	case *ast.CreateUser:
		return branch("CreateUser "+s.Name.String(), flag("IfNotExists", s.IfNotExists), userOptions(s.Options))
	case *ast.AlterUser:
		return branch("AlterUser "+s.Name.String(), flag("IfExists", s.IfExists), userOptions(s.Options))
	case *ast.Grant:
		return privilege("Grant", s.Privilege)
	case *ast.Revoke:
		return privilege("Revoke", s.Privilege)
	case *ast.GrantRole:
		return branch("GrantRole", leaf("Role %s", s.Role.String()), leaf("Grantee %s", s.Grantee.String()))
	case *ast.RevokeRole:
		return branch("RevokeRole", leaf("Role %s", s.Role.String()), leaf("Revokee %s", s.Revokee.String()))
	case *ast.ListPermissions:
		n := privilege("ListPermissions", s.Privilege)
		if s.NoRecursive {
			n.children = append(n.children, leaf("NoRecursive"))
		}
		return n
	case *ast.ListUsers:
		return leaf("ListUsers")
	case *ast.ListRoles:
		return branch("ListRoles", identifier("Of", s.Of), flag("NoRecursive", s.NoRecursive))
	}
	return leaf("%T", stmt)
}

func explainSelect(s *ast.Select) *node {
	n := branch("Select",
		flag("Distinct", s.Distinct),
		flag("JSON", s.JSON),
		selectList(s.Columns),
		qualifiedName("Table", s.From),
		relations("Where", s.Where),
		identifiers("GroupBy", s.GroupBy),
		orderBy("OrderByList", s.OrderBy),
	)
	if s.PerPartitionLimit != nil {
		n.children = append(n.children, branch("PerPartitionLimit", term(s.PerPartitionLimit)))
	}
	if s.Limit != nil {
		n.children = append(n.children, branch("Limit", term(s.Limit)))
	}
	if s.AllowFiltering {
		n.children = append(n.children, leaf("AllowFiltering"))
	}
	return n
}

func batch(b *ast.BeginBatch) *node {
	if b == nil {
		return nil
	}
	label := "Batch"
	if b.Type != ast.BatchDefault {
		label += " " + string(b.Type)
	}
	if b.Timestamp == nil {
		return leaf("%s", label)
	}
	return branch(label, branch("Timestamp", term(b.Timestamp)))
}

func using(u *ast.UsingClause) *node {
	if u == nil {
		return nil
	}
	n := branch("Using")
	if u.TTL != nil {
		n.children = append(n.children, branch("TTL", term(u.TTL)))
	}
	if u.Timestamp != nil {
		n.children = append(n.children, branch("Timestamp", term(u.Timestamp)))
	}
	return n
}

func explainInsert(s *ast.Insert) *node {
	n := branch("Insert",
		batch(s.Batch),
		qualifiedName("Table", s.Table),
		identifiers("Columns", s.Columns),
	)
	if s.JSON != nil {
		j := branch("JSON", term(s.JSON))
		if s.JSONDefault != ast.JSONDefaultNone {
			j.children = append(j.children, leaf("Default %s", s.JSONDefault))
		}
		n.children = append(n.children, j)
	} else {
		n.children = append(n.children, terms("Values", s.Values))
	}
	n.children = append(n.children, flag("IfNotExists", s.IfNotExists), using(s.Using))
	return compact(n)
}

func assignment(a ast.Assignment) *node {
	n := branch("Assignment "+a.Target.String(), term(a.Value))
	if a.Operand != nil {
		n.children = append(n.children, branch("Operator "+string(a.Op), term(a.Operand)))
	}
	return n
}

func condition(ifExists bool, rels []ast.Relation) *node {
	if ifExists {
		return leaf("IfExists")
	}
	return relations("If", rels)
}

func explainUpdate(s *ast.Update) *node {
	set := branch("Set")
	for _, a := range s.Assignments {
		set.children = append(set.children, assignment(a))
	}
	return branch("Update",
		batch(s.Batch),
		qualifiedName("Table", s.Table),
		using(s.Using),
		set,
		relations("Where", s.Where),
		condition(s.IfExists, s.If),
	)
}

func explainDelete(s *ast.Delete) *node {
	var cols *node
	if len(s.Columns) > 0 {
		cols = branch("Columns")
		for _, c := range s.Columns {
			cols.children = append(cols.children, leaf("Selector %s", c.String()))
		}
	}
	return branch("Delete",
		batch(s.Batch),
		cols,
		qualifiedName("Table", s.Table),
		using(s.Using),
		relations("Where", s.Where),
		condition(s.IfExists, s.If),
	)
}

// compact drops the nil children appended after construction.
func compact(n *node) *node {
	out := n.children[:0]
	for _, c := range n.children {
		if c != nil {
			out = append(out, c)
		}
	}
	n.children = out
	return n
}
