package ast

import "strings"

// OrderClause is one column of an ORDER BY or CLUSTERING ORDER BY clause.
type OrderClause struct {
	Column Identifier `json:"column"`
	Desc   bool       `json:"desc,omitempty"`
}

func (o OrderClause) String() string {
	if o.Desc {
		return o.Column.String() + " DESC"
	}
	return o.Column.String() + " ASC"
}

func joinOrder(order []OrderClause) string {
	parts := make([]string, len(order))
	for i, o := range order {
		parts[i] = o.String()
	}
	return strings.Join(parts, ", ")
}

// UsingClause is USING TTL t AND TIMESTAMP ts. Either part may be nil.
type UsingClause struct {
	TTL       Term `json:"ttl,omitempty"`
	Timestamp Term `json:"timestamp,omitempty"`
}

func (u *UsingClause) String() string {
	var parts []string
	if u.TTL != nil {
		parts = append(parts, "TTL "+u.TTL.String())
	}
	if u.Timestamp != nil {
		parts = append(parts, "TIMESTAMP "+u.Timestamp.String())
	}
	return "USING " + strings.Join(parts, " AND ")
}

// BatchType is the kind of a batch.
type BatchType string

const (
	BatchDefault  BatchType = ""
	BatchLogged   BatchType = "LOGGED"
	BatchUnlogged BatchType = "UNLOGGED"
	BatchCounter  BatchType = "COUNTER"
)

// BeginBatch is the BEGIN ... BATCH prefix of a modification statement.
type BeginBatch struct {
	Type      BatchType `json:"type,omitempty"`
	Timestamp Term      `json:"timestamp,omitempty"`
}

func (b *BeginBatch) String() string {
	var sb strings.Builder
	sb.WriteString("BEGIN ")
	if b.Type != BatchDefault {
		sb.WriteString(string(b.Type))
		sb.WriteString(" ")
	}
	sb.WriteString("BATCH")
	if b.Timestamp != nil {
		sb.WriteString(" USING TIMESTAMP ")
		sb.WriteString(b.Timestamp.String())
	}
	return sb.String()
}

// Property is name = value inside a WITH clause.
type Property struct {
	Name  Identifier `json:"name"`
	Value Term       `json:"value"`
}

// ClusteringOrder is CLUSTERING ORDER BY (...).
type ClusteringOrder struct {
	Columns []OrderClause `json:"columns"`
}

// TableID is ID = value.
type TableID struct {
	Value Term `json:"value"`
}

// CompactStorage is COMPACT STORAGE.
type CompactStorage struct{}

func (*Property) withItemNode()        {}
func (*ClusteringOrder) withItemNode() {}
func (*TableID) withItemNode()         {}
func (*CompactStorage) withItemNode()  {}

func (p *Property) String() string { return p.Name.String() + " = " + termString(p.Value) }

func (c *ClusteringOrder) String() string {
	return "CLUSTERING ORDER BY (" + joinOrder(c.Columns) + ")"
}

func (t *TableID) String() string     { return "ID = " + termString(t.Value) }
func (*CompactStorage) String() string { return "COMPACT STORAGE" }

func joinWith(items []WithItem) string {
	parts := make([]string, 0, len(items))
	for _, w := range items {
		if w != nil {
			parts = append(parts, w.String())
		}
	}
	return strings.Join(parts, " AND ")
}

// PrimaryKey is PRIMARY KEY (partition, clustering...). A partition key of
// more than one column is written in its own parentheses.
type PrimaryKey struct {
	Partition  []Identifier `json:"partition"`
	Clustering []Identifier `json:"clustering,omitempty"`
}

func (k *PrimaryKey) String() string {
	var sb strings.Builder
	sb.WriteString("PRIMARY KEY (")
	if len(k.Partition) == 1 {
		sb.WriteString(k.Partition[0].String())
	} else {
		sb.WriteString("(")
		sb.WriteString(joinIdentifiers(k.Partition))
		sb.WriteString(")")
	}
	for _, c := range k.Clustering {
		sb.WriteString(", ")
		sb.WriteString(c.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// Columns returns the partition columns followed by the clustering columns.
func (k *PrimaryKey) Columns() []Identifier {
	out := make([]Identifier, 0, len(k.Partition)+len(k.Clustering))
	out = append(out, k.Partition...)
	return append(out, k.Clustering...)
}

// ColumnDefinition is name type [STATIC] [PRIMARY KEY].
type ColumnDefinition struct {
	Name       Identifier `json:"name"`
	Type       DataType   `json:"type"`
	Static     bool       `json:"static,omitempty"`
	PrimaryKey bool       `json:"primary_key,omitempty"`
}

func (c ColumnDefinition) String() string {
	s := c.Name.String() + " " + c.Type.String()
	if c.Static {
		s += " STATIC"
	}
	if c.PrimaryKey {
		s += " PRIMARY KEY"
	}
	return s
}

func joinColumns(cols []ColumnDefinition) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

// FieldDefinition is one field of a user-defined type.
type FieldDefinition struct {
	Name Identifier `json:"name"`
	Type DataType   `json:"type"`
}

func (f FieldDefinition) String() string { return f.Name.String() + " " + f.Type.String() }

func joinFields(fields []FieldDefinition) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.String()
	}
	return strings.Join(parts, ", ")
}

// Rename is old TO new.
type Rename struct {
	From Identifier `json:"from"`
	To   Identifier `json:"to"`
}

func (r Rename) String() string { return r.From.String() + " TO " + r.To.String() }

func joinRenames(renames []Rename) string {
	parts := make([]string, len(renames))
	for i, r := range renames {
		parts[i] = r.String()
	}
	return strings.Join(parts, " AND ")
}

// Selector addresses a column, a collection element col[key] or a
// user-defined type field col.field.
type Selector struct {
	Column Identifier  `json:"column"`
	Key    Term        `json:"key,omitempty"`
	Field  *Identifier `json:"field,omitempty"`
}

func (s Selector) String() string {
	switch {
	case s.Key != nil:
		return s.Column.String() + "[" + s.Key.String() + "]"
	case s.Field != nil:
		return s.Column.String() + "." + s.Field.String()
	}
	return s.Column.String()
}

// ArithmeticOp is the operator of a collection or counter update.
type ArithmeticOp string

const (
	OpPlus  ArithmeticOp = "+"
	OpMinus ArithmeticOp = "-"
)

// Assignment is target = value, or target = value op operand.
type Assignment struct {
	Target  Selector     `json:"target"`
	Value   Term         `json:"value"`
	Op      ArithmeticOp `json:"op,omitempty"`
	Operand Term         `json:"operand,omitempty"`
}

func (a Assignment) String() string {
	s := a.Target.String() + " = " + termString(a.Value)
	if a.Op != "" && a.Operand != nil {
		s += " " + string(a.Op) + " " + termString(a.Operand)
	}
	return s
}
