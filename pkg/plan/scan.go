package plan

import (
	"fmt"
	"queryopt/pkg/table"
)

// Self-estimate constants, duplicated from the cost model package so
// this node can be costed in isolation. Kept in sync by hand; the cost
// model package is the value the optimizer actually trusts.
const (
	selfSequentialIO = 1.0
	selfCPUTuple      = 0.01
)

// TableScanNode has no children; it is the leaf of every plan tree.
type TableScanNode struct {
	base
	TableName string
	Alias     string
	Schema    table.Schema
}

// NewTableScanNode builds a scan over the named table, with an
// optional alias (empty string if none).
func NewTableScanNode(tableName, alias string, schema table.Schema) *TableScanNode {
	return &TableScanNode{TableName: tableName, Alias: alias, Schema: schema}
}

func (s *TableScanNode) Kind() Kind         { return TableScanKind }
func (s *TableScanNode) Children() []Node   { return nil }
func (s *TableScanNode) OutputSchema() table.Schema { return s.Schema }

func (s *TableScanNode) String() string {
	if s.Alias != "" {
		return fmt.Sprintf("TableScan(%s as %s)", s.TableName, s.Alias)
	}
	return fmt.Sprintf("TableScan(%s)", s.TableName)
}

// SelfEstimateCost reproduces the scan row of the cost model's table:
// io = pages x SEQUENTIAL_IO, cpu = tuples x CPU_TUPLE.
func (s *TableScanNode) SelfEstimateCost() CostEstimate {
	io := float64(s.stats.PageCount) * selfSequentialIO
	cpu := float64(s.stats.RowCount) * selfCPUTuple
	return NewCostEstimate(io, cpu)
}
