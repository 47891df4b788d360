package plan

import (
	"fmt"
	"math"
	"queryopt/pkg/table"
)

const (
	selfRandomIO    = 4.0
	selfMemorySort  = 2.0
	selfHashBuild   = 1.0
	selfHashProbe   = 0.5
)

// JoinNode has exactly two children. Algorithm is which of the three
// physical join operators this node executes as; JoinType is the
// declared (but, for non-INNER, unexecuted) AST join type.
// ConditionText is the canonical rendering of the join predicate, used
// by the cost model's selectivity heuristic (no join algorithm in
// pkg/executor evaluates it row-by-row).
type JoinNode struct {
	base
	Left          Node
	Right         Node
	Algorithm     Kind
	JoinType      JoinTypeTag
	ConditionText string
	Schema        table.Schema
}

// NewJoinNode builds a join over left and right. A nil child (not
// produced by the builder in normal use, but a possible caller error)
// leaves Schema empty rather than panicking on OutputSchema(); Execute
// catches the nil child itself and raises InvalidPlan.
func NewJoinNode(algorithm Kind, left, right Node, joinType JoinTypeTag, conditionText string) *JoinNode {
	var schema table.Schema
	if left != nil && right != nil {
		schema = left.OutputSchema().Concat(right.OutputSchema())
	}
	return &JoinNode{
		Left:          left,
		Right:         right,
		Algorithm:     algorithm,
		JoinType:      joinType,
		ConditionText: conditionText,
		Schema:        schema,
	}
}

func (j *JoinNode) Kind() Kind                 { return j.Algorithm }
func (j *JoinNode) Children() []Node           { return []Node{j.Left, j.Right} }
func (j *JoinNode) OutputSchema() table.Schema { return j.Schema }

func (j *JoinNode) String() string {
	return fmt.Sprintf("%s(%s, %s)\n%s\n%s",
		j.Algorithm, j.JoinType, j.ConditionText,
		indent(j.Left.String(), 2), indent(j.Right.String(), 2))
}

// SelfEstimateCost dispatches on Algorithm, reproducing the matching
// row of the cost model's join table.
func (j *JoinNode) SelfEstimateCost() CostEstimate {
	leftCost, rightCost := j.Left.Cost(), j.Right.Cost()
	leftTuples := float64(j.Left.Stats().RowCount)
	rightTuples := float64(j.Right.Stats().RowCount)
	totalIO := leftCost.IO + rightCost.IO
	totalCPU := leftCost.CPU + rightCost.CPU

	switch j.Algorithm {
	case NestedLoopJoinKind:
		rightPages := math.Max(1, rightTuples/100)
		io := totalIO + leftTuples*rightPages*selfRandomIO
		cpu := totalCPU + leftTuples*rightTuples*selfCPUOperator
		return NewCostEstimate(io, cpu)

	case HashJoinKind:
		buildTuples := math.Min(leftTuples, rightTuples)
		probeTuples := math.Max(leftTuples, rightTuples)
		buildPages := math.Max(1, buildTuples/100)
		cpu := totalCPU + buildTuples*selfHashBuild + probeTuples*selfHashProbe + buildPages*selfSequentialIO
		return NewCostEstimate(totalIO, cpu)

	case SortMergeJoinKind:
		cpu := totalCPU + selfSortCost(leftTuples) + selfSortCost(rightTuples) + (leftTuples+rightTuples)*selfCPUOperator
		return NewCostEstimate(totalIO, cpu)

	default:
		return NewCostEstimate(totalIO, totalCPU)
	}
}

func selfSortCost(n float64) float64 {
	if n <= 1 {
		return 0
	}
	return n * math.Log2(n) * selfCPUOperator * selfMemorySort
}
