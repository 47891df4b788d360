package costmodel

import (
	"math"

	"queryopt/pkg/plan"
)

// log2Safe returns 0 for n<=1 rather than -Inf/NaN, matching the
// original's guard on its logarithmic sort cost term.
func log2Safe(n float64) float64 {
	if n <= 1 {
		return 0
	}
	return math.Log2(n)
}

func (m *Model) estimateSortCost(tupleCount int64) float64 {
	n := float64(tupleCount)
	if n <= 1 {
		return 0
	}
	return n * log2Safe(n) * m.CPUOperator * m.MemorySort
}

// EstimateJoinCost dispatches on the join node's algorithm, combining
// the already-costed children with the algorithm-specific term from
// the published cost table.
func (m *Model) EstimateJoinCost(node *plan.JoinNode, leftCost, rightCost plan.CostEstimate, leftTuples, rightTuples int64) plan.CostEstimate {
	totalIO := leftCost.IO + rightCost.IO
	totalCPU := leftCost.CPU + rightCost.CPU
	l, r := float64(leftTuples), float64(rightTuples)

	switch node.Algorithm {
	case plan.NestedLoopJoinKind:
		rightPages := math.Max(1, r/100)
		io := totalIO + l*rightPages*m.RandomIO
		cpu := totalCPU + l*r*m.CPUOperator
		return plan.NewCostEstimate(io, cpu)

	case plan.HashJoinKind:
		buildTuples := math.Min(l, r)
		probeTuples := math.Max(l, r)
		buildPages := math.Max(1, buildTuples/100)
		buildCost := buildTuples * m.HashBuild
		probeCost := probeTuples * m.HashProbe
		ioCost := buildPages * m.SequentialIO
		return plan.NewCostEstimate(totalIO, totalCPU+buildCost+probeCost+ioCost)

	case plan.SortMergeJoinKind:
		leftSort := m.estimateSortCost(leftTuples)
		rightSort := m.estimateSortCost(rightTuples)
		mergeCost := (l + r) * m.CPUOperator
		return plan.NewCostEstimate(totalIO, totalCPU+leftSort+rightSort+mergeCost)

	default:
		return plan.NewCostEstimate(totalIO, totalCPU)
	}
}
