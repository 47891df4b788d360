// Package catalog is the dependency injected into the optimizer and
// cost model: it owns tables and their statistics and is treated as
// read-only during any single optimize()/execute() call.
package catalog

import (
	"queryopt/pkg/queryerr"
	"queryopt/pkg/table"
)

// TableStatistics carries the per-table counters and named-predicate
// selectivities the cost model reads. Statistics are set once, at
// catalog population, and read-only thereafter.
type TableStatistics struct {
	TupleCount        int64
	PageCount         int64
	TupleWidth        int64
	ColumnSelectivity map[string]float64 // condition text -> selectivity
	DistinctValues    map[string]int64   // column name -> distinct count
}

// NewTableStatistics builds a TableStatistics with empty selectivity
// and distinct-value maps ready to populate.
func NewTableStatistics(tupleCount, pageCount, tupleWidth int64) TableStatistics {
	return TableStatistics{
		TupleCount:        tupleCount,
		PageCount:         pageCount,
		TupleWidth:        tupleWidth,
		ColumnSelectivity: make(map[string]float64),
		DistinctValues:    make(map[string]int64),
	}
}

// DefaultStatistics is used for any table that has no statistics set.
func DefaultStatistics() TableStatistics {
	return NewTableStatistics(1000, 10, 100)
}

// Catalog maps table name to Table and table name to TableStatistics.
// Keys are unique in both maps.
type Catalog struct {
	tables     map[string]*table.Table
	statistics map[string]TableStatistics
}

// New builds an empty catalog.
func New() *Catalog {
	return &Catalog{
		tables:     make(map[string]*table.Table),
		statistics: make(map[string]TableStatistics),
	}
}

// CreateTable registers a new, empty table with the given schema.
func (c *Catalog) CreateTable(name string, schema table.Schema) *table.Table {
	t := table.NewTable(name, schema)
	c.tables[name] = t
	return t
}

// Lookup finds a table by name, or returns TableNotFound.
func (c *Catalog) Lookup(name string) (*table.Table, error) {
	t, ok := c.tables[name]
	if !ok {
		return nil, queryerr.New(queryerr.TableNotFound, "table not found: "+name)
	}
	return t, nil
}

// SetStatistics stores the given statistics for a table name.
func (c *Catalog) SetStatistics(name string, stats TableStatistics) {
	c.statistics[name] = stats
}

// GetStatistics returns the statistics set for a table, or the default
// (1000, 10, 100) statistics if none were set.
func (c *Catalog) GetStatistics(name string) TableStatistics {
	if s, ok := c.statistics[name]; ok {
		return s
	}
	return DefaultStatistics()
}
