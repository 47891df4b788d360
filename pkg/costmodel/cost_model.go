package costmodel

import (
	"queryopt/pkg/catalog"
	"queryopt/pkg/plan"
)

// EstimatePlanCost walks node bottom-up, recursively costing its
// children first, and returns node's own cost. It does not write the
// result onto node; the optimizer owns that step (see pkg/optimizer),
// keeping this function pure.
func (m *Model) EstimatePlanCost(node plan.Node, cat *catalog.Catalog) plan.CostEstimate {
	switch n := node.(type) {
	case *plan.TableScanNode:
		return m.EstimateTableScanCost(n, cat)

	case *plan.FilterNode:
		childCost := m.EstimatePlanCost(n.Child, cat)
		inputTuples := m.EstimateOutputCardinality(n.Child, cat)
		return m.EstimateFilterCost(childCost, inputTuples)

	case *plan.ProjectNode:
		childCost := m.EstimatePlanCost(n.Child, cat)
		inputTuples := m.EstimateOutputCardinality(n.Child, cat)
		return m.EstimateProjectCost(childCost, inputTuples)

	case *plan.JoinNode:
		leftCost := m.EstimatePlanCost(n.Left, cat)
		rightCost := m.EstimatePlanCost(n.Right, cat)
		leftTuples := m.EstimateOutputCardinality(n.Left, cat)
		rightTuples := m.EstimateOutputCardinality(n.Right, cat)
		return m.EstimateJoinCost(n, leftCost, rightCost, leftTuples, rightTuples)

	default:
		return plan.CostEstimate{}
	}
}
