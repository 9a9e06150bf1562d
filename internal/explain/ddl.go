package explain

import (
	"github.com/sqlc-dev/cqlast/ast"
)

func option(label string, t ast.Term) *node {
	if t == nil {
		return nil
	}
	return branch(label, term(t))
}

func keyspaceOptions(o ast.KeyspaceOptions) *node {
	n := branch("Options", option("Replication", o.Replication), option("DurableWrites", o.DurableWrites))
	if len(n.children) == 0 {
		return nil
	}
	return n
}

func column(c ast.ColumnDefinition) *node {
	return branch("Column "+c.Name.String(),
		dataType(c.Type),
		flag("Static", c.Static),
		flag("PrimaryKey", c.PrimaryKey),
	)
}

func primaryKey(pk *ast.PrimaryKey) *node {
	if pk == nil {
		return nil
	}
	return branch("PrimaryKey",
		identifiers("Partition", pk.Partition),
		identifiers("Clustering", pk.Clustering),
	)
}

func explainCreateTable(s *ast.CreateTable) *node {
	cols := branch("Columns")
	for _, c := range s.Columns {
		cols.children = append(cols.children, column(c))
	}
	return branch("CreateTable "+s.Name.String(),
		flag("IfNotExists", s.IfNotExists),
		cols,
		primaryKey(s.PrimaryKey),
		withItems(s.With),
	)
}

func fields(label string, fs []ast.FieldDefinition) *node {
	n := branch(label)
	for _, f := range fs {
		n.children = append(n.children, branch("Field "+f.Name.String(), dataType(f.Type)))
	}
	return n
}

func renames(label string, rs []ast.Rename) *node {
	n := branch(label)
	for _, r := range rs {
		n.children = append(n.children, leaf("Rename %s %s", r.From.String(), r.To.String()))
	}
	return n
}

// alterOperation explains the operation of an ALTER TABLE or ALTER TYPE.
func alterOperation(op any) *node {
	switch o := op.(type) {
	case nil:
		return nil
	case *ast.AlterTableAdd:
		n := branch("Add")
		for _, c := range o.Columns {
			n.children = append(n.children, column(c))
		}
		return n
	case *ast.AlterTableDrop:
		return identifiers("Drop", o.Columns)
	case *ast.AlterTableDropCompactStorage:
		return leaf("DropCompactStorage")
	case *ast.AlterTableRename:
		return renames("Rename", o.Renames)
	case *ast.AlterTableWith:
		return withItems(o.Options)
	case *ast.AlterColumnType:
		return branch("AlterColumn "+o.Column.String(), dataType(o.Type))
	case *ast.AlterTypeAdd:
		return fields("Add", o.Fields)
	case *ast.AlterTypeRename:
		return renames("Rename", o.Renames)
	}
	return leaf("%T", op)
}

func explainCreateIndex(s *ast.CreateIndex) *node {
	label := "CreateIndex"
	if s.Custom {
		label = "CreateCustomIndex"
	}
	if s.Name != nil {
		label += " " + s.Name.String()
	}
	return branch(label,
		flag("IfNotExists", s.IfNotExists),
		qualifiedName("Table", s.Table),
		leaf("IndexColumn %s", s.Column.String()),
		option("Using", s.Using),
		option("Options", s.Options),
	)
}

func explainCreateFunction(s *ast.CreateFunction) *node {
	mode := "ReturnsNullOnNullInput"
	if s.CalledOnNull {
		mode = "CalledOnNullInput"
	}
	return branch("CreateFunction "+s.Name.String(),
		flag("OrReplace", s.OrReplace),
		flag("IfNotExists", s.IfNotExists),
		fields("Parameters", s.Params),
		leaf("%s", mode),
		branch("Returns", dataType(s.Returns)),
		leaf("Language %s", s.Language.String()),
		option("Body", s.Body),
	)
}

func argTypes(ts []ast.DataType) *node {
	if ts == nil {
		return nil
	}
	n := branch("ArgumentTypes")
	for _, t := range ts {
		n.children = append(n.children, dataType(t))
	}
	return n
}

func explainCreateAggregate(s *ast.CreateAggregate) *node {
	return branch("CreateAggregate "+s.Name.String(),
		flag("OrReplace", s.OrReplace),
		flag("IfNotExists", s.IfNotExists),
		argTypes(append([]ast.DataType{}, s.ArgTypes...)),
		leaf("StateFunc %s", s.StateFunc.String()),
		branch("StateType", dataType(s.StateType)),
		identifier("FinalFunc", s.FinalFunc),
		option("InitCond", s.InitCond),
	)
}

func drop(label string, d ast.CommonDrop, extra ...*node) *node {
	n := branch(label+" "+d.Name.String(), flag("IfExists", d.IfExists))
	for _, e := range extra {
		if e != nil {
			n.children = append(n.children, e)
		}
	}
	return n
}

func roleOptions(o ast.RoleOptions) *node {
	if o.IsZero() {
		return nil
	}
	return branch("Options",
		option("Password", o.Password),
		option("Superuser", o.Superuser),
		option("Login", o.Login),
		option("Options", o.Options),
	)
}

func userOptions(o ast.UserOptions) *node {
	n := branch("Options", option("Password", o.Password))
	if o.Superuser != nil {
		if *o.Superuser {
			n.children = append(n.children, leaf("Superuser"))
		} else {
			n.children = append(n.children, leaf("NoSuperuser"))
		}
	}
	if len(n.children) == 0 {
		return nil
	}
	return n
}

func privilege(label string, p ast.Privilege) *node {
	n := branch(label, leaf("Permission %s", p.Permission.String()))
	if p.Resource != nil {
		n.children = append(n.children, leaf("Resource %s", p.Resource.String()))
	}
	if p.Role != nil {
		n.children = append(n.children, leaf("Role %s", p.Role.String()))
	}
	return n
}
