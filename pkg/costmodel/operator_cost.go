package costmodel

import "queryopt/pkg/plan"

// EstimateFilterCost inherits the child's io cost unchanged and adds
// CPU_OPERATOR per input tuple.
func (m *Model) EstimateFilterCost(childCost plan.CostEstimate, inputTuples int64) plan.CostEstimate {
	return plan.NewCostEstimate(childCost.IO, childCost.CPU+float64(inputTuples)*m.CPUOperator)
}

// EstimateProjectCost inherits the child's io cost unchanged and adds
// half of CPU_OPERATOR per input tuple (column copying is cheaper
// than predicate evaluation).
func (m *Model) EstimateProjectCost(childCost plan.CostEstimate, inputTuples int64) plan.CostEstimate {
	return plan.NewCostEstimate(childCost.IO, childCost.CPU+float64(inputTuples)*m.CPUOperator*0.5)
}
