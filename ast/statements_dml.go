package ast

// Select represents a SELECT statement.
type Select struct {
	Span
	Distinct          bool            `json:"distinct,omitempty"`
	JSON              bool            `json:"json,omitempty"`
	Columns           []SelectElement `json:"columns"`
	From              QualifiedName   `json:"from"`
	Where             []Relation      `json:"where,omitempty"`
	GroupBy           []Identifier    `json:"group_by,omitempty"`
	OrderBy           []OrderClause   `json:"order_by,omitempty"`
	PerPartitionLimit Term            `json:"per_partition_limit,omitempty"`
	Limit             Term            `json:"limit,omitempty"`
	AllowFiltering    bool            `json:"allow_filtering,omitempty"`
}

// SelectNames returns the projected column names, skipping functions,
// literals and the star.
func (s *Select) SelectNames() []string {
	var out []string
	for _, c := range s.Columns {
		if n, ok := c.(*Named); ok {
			if ref, ok := n.Expr.(*ColumnRef); ok {
				out = append(out, ref.Name.String())
			}
		}
	}
	return out
}

// SelectAliases returns the name each projected column is returned under:
// its alias when it has one, otherwise the column name. Unaliased
// expressions other than columns are skipped.
func (s *Select) SelectAliases() []string {
	var out []string
	for _, c := range s.Columns {
		n, ok := c.(*Named)
		if !ok {
			continue
		}
		if n.Alias != nil {
			out = append(out, n.Alias.String())
			continue
		}
		if ref, ok := n.Expr.(*ColumnRef); ok {
			out = append(out, ref.Name.String())
		}
	}
	return out
}

// JSONDefault is the DEFAULT mode of INSERT ... JSON.
type JSONDefault string

const (
	JSONDefaultNone  JSONDefault = ""
	JSONDefaultNull  JSONDefault = "NULL"
	JSONDefaultUnset JSONDefault = "UNSET"
)

// Insert represents an INSERT statement. Exactly one of Values and JSON is
// used; a non-nil JSON selects the JSON form.
type Insert struct {
	Span
	Batch       *BeginBatch   `json:"batch,omitempty"`
	Table       QualifiedName `json:"table"`
	Columns     []Identifier  `json:"columns,omitempty"`
	Values      []Term        `json:"values,omitempty"`
	JSON        Term          `json:"json,omitempty"`
	JSONDefault JSONDefault   `json:"json_default,omitempty"`
	IfNotExists bool          `json:"if_not_exists,omitempty"`
	Using       *UsingClause  `json:"using,omitempty"`
}

// ValueMap maps each column name to the value inserted into it. It is empty
// for the JSON form and when the column and value counts differ.
func (s *Insert) ValueMap() map[string]Term {
	out := make(map[string]Term)
	if s.JSON != nil || len(s.Columns) != len(s.Values) {
		return out
	}
	for i, c := range s.Columns {
		out[c.String()] = s.Values[i]
	}
	return out
}

// Update represents an UPDATE statement. IfExists and If are mutually
// exclusive.
type Update struct {
	Span
	Batch       *BeginBatch   `json:"batch,omitempty"`
	Table       QualifiedName `json:"table"`
	Using       *UsingClause  `json:"using,omitempty"`
	Assignments []Assignment  `json:"assignments"`
	Where       []Relation    `json:"where"`
	IfExists    bool          `json:"if_exists,omitempty"`
	If          []Relation    `json:"if,omitempty"`
}

// Delete represents a DELETE statement. An empty Columns deletes whole rows.
type Delete struct {
	Span
	Batch    *BeginBatch   `json:"batch,omitempty"`
	Columns  []Selector    `json:"columns,omitempty"`
	Table    QualifiedName `json:"table"`
	Using    *UsingClause  `json:"using,omitempty"`
	Where    []Relation    `json:"where"`
	IfExists bool          `json:"if_exists,omitempty"`
	If       []Relation    `json:"if,omitempty"`
}

// ApplyBatch represents APPLY BATCH.
type ApplyBatch struct {
	Span
}

// Use represents USE keyspace.
type Use struct {
	Span
	Keyspace Identifier `json:"keyspace"`
}

// Truncate represents TRUNCATE [TABLE] name.
type Truncate struct {
	Span
	Table QualifiedName `json:"table"`
}

// Unknown holds text that could not be recognized as a statement, either a
// whole statement or the unparsable tail of one.
type Unknown struct {
	Span
	Text string `json:"text"`
}

func (*Select) statementNode()     {}
func (*Insert) statementNode()     {}
func (*Update) statementNode()     {}
func (*Delete) statementNode()     {}
func (*ApplyBatch) statementNode() {}
func (*Use) statementNode()        {}
func (*Truncate) statementNode()   {}
func (*Unknown) statementNode()    {}

func (*Select) ShortName() string     { return "SELECT" }
func (*Insert) ShortName() string     { return "INSERT" }
func (*Update) ShortName() string     { return "UPDATE" }
func (*Delete) ShortName() string     { return "DELETE" }
func (*ApplyBatch) ShortName() string { return "APPLY BATCH" }
func (*Use) ShortName() string        { return "USE" }
func (*Truncate) ShortName() string   { return "TRUNCATE" }
func (*Unknown) ShortName() string    { return "UNRECOGNIZED CQL" }

func (s *Select) String() string     { return Format(s) }
func (s *Insert) String() string     { return Format(s) }
func (s *Update) String() string     { return Format(s) }
func (s *Delete) String() string     { return Format(s) }
func (s *ApplyBatch) String() string { return Format(s) }
func (s *Use) String() string        { return Format(s) }
func (s *Truncate) String() string   { return Format(s) }
func (s *Unknown) String() string    { return Format(s) }
