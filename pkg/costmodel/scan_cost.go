package costmodel

import (
	"queryopt/pkg/catalog"
	"queryopt/pkg/plan"
)

// EstimateTableScanCost costs a table scan purely from catalog
// statistics: io is pages swept sequentially, cpu is per-tuple
// processing.
func (m *Model) EstimateTableScanCost(node *plan.TableScanNode, cat *catalog.Catalog) plan.CostEstimate {
	stats := cat.GetStatistics(node.TableName)
	io := float64(stats.PageCount) * m.SequentialIO
	cpu := float64(stats.TupleCount) * m.CPUTuple
	return plan.NewCostEstimate(io, cpu)
}
