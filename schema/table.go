package schema

import "github.com/websudos/phantom/cql"

// Column describes one column of a column family: its CQL type plus
// its role in the primary key.
type Column struct {
	Name         string
	Type         cql.BindType
	PartitionKey bool
	Clustering   bool
}

// Table is the keyspace/table descriptor builders are bound to. It is
// a plain value; the query layer only reads it.
type Table struct {
	Keyspace string
	Name     string
	Columns  []Column
}

func NewTable(keyspace, name string, cols ...Column) Table {
	return Table{Keyspace: keyspace, Name: name, Columns: cols}
}

// TableFor derives a table descriptor from a record type name using a
// naming strategy, e.g. "UserProfile" -> ks.user_profiles.
func TableFor(keyspace, structName string, ns NamingStrategy, cols ...Column) Table {
	return NewTable(keyspace, ns.TableName(structName), cols...)
}

// QualifiedName returns "keyspace.table", or just the table name when
// the descriptor carries no keyspace.
func (t Table) QualifiedName() string {
	if t.Keyspace == "" {
		return t.Name
	}
	return t.Keyspace + "." + t.Name
}

// Column looks a column up by name.
func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Col returns the clause-building handle for a column. Unknown names
// fall back to a text-typed handle so ad hoc columns stay usable; the
// bind type only matters for prepared derivation.
func (t Table) Col(name string) cql.Column {
	if c, ok := t.Column(name); ok {
		return cql.Col(c.Name, c.Type)
	}
	return cql.Col(name, cql.TypeText)
}

// PartitionKeys returns the partition key columns in declaration
// order.
func (t Table) PartitionKeys() []Column {
	var out []Column
	for _, c := range t.Columns {
		if c.PartitionKey {
			out = append(out, c)
		}
	}
	return out
}
