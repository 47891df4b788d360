package costmodel

import (
	"strings"

	"queryopt/pkg/catalog"
	"queryopt/pkg/plan"
)

// EstimateOutputCardinality returns the expected row count of node's
// output, recursing into children as needed. It does not consult
// node.Stats() for scans — a fresh catalog lookup is the source of
// truth there — but does use children's already-estimated cardinality
// for filter/project/join, matching the recursive shape of the
// original cost model.
func (m *Model) EstimateOutputCardinality(node plan.Node, cat *catalog.Catalog) int64 {
	switch n := node.(type) {
	case *plan.TableScanNode:
		return cat.GetStatistics(n.TableName).TupleCount

	case *plan.FilterNode:
		input := m.EstimateOutputCardinality(n.Child, cat)
		return int64(float64(input) * filterSelectivity(n.ConditionText))

	case *plan.ProjectNode:
		return m.EstimateOutputCardinality(n.Child, cat)

	case *plan.JoinNode:
		left := m.EstimateOutputCardinality(n.Left, cat)
		right := m.EstimateOutputCardinality(n.Right, cat)
		sel := EstimateJoinSelectivity(n.ConditionText)
		return int64(float64(left) * float64(right) * sel)

	default:
		return 1000
	}
}

// filterSelectivity recognizes the two named demo predicates and
// falls back to a flat 0.1 for anything else, matching the filter row
// of the cost table.
func filterSelectivity(condition string) float64 {
	switch {
	case strings.Contains(condition, "age > 25"):
		return 0.88
	case strings.Contains(condition, "age < 30"):
		return 0.20
	default:
		return 0.1
	}
}

// EstimateJoinSelectivity is the join-selectivity heuristic: "=" in
// the condition text implies an equijoin (0.1), ">"/"<" implies a
// range join (0.33), anything else defaults to 0.1.
func EstimateJoinSelectivity(condition string) float64 {
	if strings.Contains(condition, "=") {
		return 0.1
	}
	if strings.Contains(condition, ">") || strings.Contains(condition, "<") {
		return 0.33
	}
	return 0.1
}
