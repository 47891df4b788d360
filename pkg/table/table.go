// Package table holds the in-memory row containers the core treats as
// read-only during optimization and execution. Population is the job
// of the catalog's sample-data loader, not of this package.
package table

import "queryopt/pkg/value"

// Column describes one schema slot: its qualifying table (empty for
// an unqualified column), its name, and its value kind.
type Column struct {
	TableName string
	Name      string
	Kind      value.Kind
}

// Schema is an ordered sequence of columns. Lookup by unqualified name
// returns the first match, matching the original's column_names scan.
type Schema struct {
	Columns []Column
}

// NewSchema builds a Schema from the given columns, in order.
func NewSchema(columns ...Column) Schema {
	return Schema{Columns: columns}
}

// IndexOf returns the position of the first column whose Name matches
// (ignoring any table qualifier), or -1 if none match.
func (s Schema) IndexOf(name string) int {
	for i, c := range s.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Concat returns a new schema that is the receiver's columns followed
// by other's columns, used by join output schemas.
func (s Schema) Concat(other Schema) Schema {
	cols := make([]Column, 0, len(s.Columns)+len(other.Columns))
	cols = append(cols, s.Columns...)
	cols = append(cols, other.Columns...)
	return Schema{Columns: cols}
}

// Len reports the number of columns.
func (s Schema) Len() int {
	return len(s.Columns)
}

// Row is an ordered sequence of values, aligned to a schema only by
// position; a Row itself carries no schema reference.
type Row struct {
	Values []value.Value
}

// NewRow wraps the given values as a Row.
func NewRow(values ...value.Value) Row {
	return Row{Values: values}
}

// Concat returns a new row that is the receiver's values followed by
// other's values.
func (r Row) Concat(other Row) Row {
	vals := make([]value.Value, 0, len(r.Values)+len(other.Values))
	vals = append(vals, r.Values...)
	vals = append(vals, other.Values...)
	return Row{Values: vals}
}

// Len reports the number of values in the row.
func (r Row) Len() int {
	return len(r.Values)
}

// Table is a named, schema-carrying, ordered sequence of rows. Tables
// are created once and mutated only by the data-loading collaborator.
type Table struct {
	Name   string
	Schema Schema
	Rows   []Row
}

// NewTable constructs an empty table with the given name and schema.
func NewTable(name string, schema Schema) *Table {
	return &Table{Name: name, Schema: schema}
}

// AddRow appends a row to the table, in insertion order.
func (t *Table) AddRow(r Row) {
	t.Rows = append(t.Rows, r)
}

// RowCount reports how many rows the table currently holds.
func (t *Table) RowCount() int {
	return len(t.Rows)
}
