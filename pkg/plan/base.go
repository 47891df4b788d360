// Package plan defines the physical plan tree: a closed tagged-variant
// algebra over six operator kinds, each owning its children exclusively
// (no back-references). Every node supports pretty-printing, bottom-up
// self cost estimation, and child access; the canonical cost source is
// the cost model package, not the self-estimate on each node (see
// Node.SelfEstimateCost's doc comment).
package plan

import "queryopt/pkg/table"

// Kind tags which of the six closed operator variants a Node is.
type Kind int

const (
	TableScanKind Kind = iota
	FilterKind
	ProjectKind
	NestedLoopJoinKind
	HashJoinKind
	SortMergeJoinKind
)

func (k Kind) String() string {
	switch k {
	case TableScanKind:
		return "TableScan"
	case FilterKind:
		return "Filter"
	case ProjectKind:
		return "Project"
	case NestedLoopJoinKind:
		return "NestedLoopJoin"
	case HashJoinKind:
		return "HashJoin"
	case SortMergeJoinKind:
		return "SortMergeJoin"
	default:
		return "Unknown"
	}
}

// Stats holds an operator's estimated output shape.
type Stats struct {
	RowCount    int64
	PageCount   int64
	Selectivity float64
}

// CostEstimate is an (io, cpu) cost pair; Total must always equal
// IO+CPU after construction.
type CostEstimate struct {
	IO    float64
	CPU   float64
	Total float64
}

// NewCostEstimate builds a CostEstimate with Total derived from io+cpu,
// the only way a CostEstimate is meant to be constructed.
func NewCostEstimate(io, cpu float64) CostEstimate {
	return CostEstimate{IO: io, CPU: cpu, Total: io + cpu}
}

// JoinTypeTag is the plan-level join type carried by join nodes,
// distinct from the AST-level primitives.JoinKind the builder converts
// from. The executor honors INNER only; LEFT/RIGHT/FULL are recorded
// for pretty-printing but rejected before execution (see the optimizer).
type JoinTypeTag int

const (
	InnerJoinTag JoinTypeTag = iota
	LeftOuterJoinTag
	RightOuterJoinTag
	FullJoinTag
)

func (t JoinTypeTag) String() string {
	switch t {
	case InnerJoinTag:
		return "INNER"
	case LeftOuterJoinTag:
		return "LEFT"
	case RightOuterJoinTag:
		return "RIGHT"
	case FullJoinTag:
		return "FULL"
	default:
		return "UNKNOWN"
	}
}

// Node is the closed interface every plan operator implements. Callers
// that need operator-specific fields switch on Kind() and assert the
// concrete type, in the tagged-variant style; there is no inheritance
// hierarchy here.
type Node interface {
	Kind() Kind
	Children() []Node
	OutputSchema() table.Schema
	Stats() Stats
	SetStats(Stats)
	Cost() CostEstimate
	SetCost(CostEstimate)
	// SelfEstimateCost recomputes this node's cost from its children's
	// already-assigned costs, using the same formula shape as the cost
	// model package. It exists for self-contained, per-node inspection
	// (e.g. printing a fragment's cost without running the full cost
	// model); the optimizer always uses the cost model's estimate as
	// the value it writes into the plan via SetCost.
	SelfEstimateCost() CostEstimate
	String() string
}

// base is embedded by every concrete node to supply the Stats/Cost
// storage and accessors uniformly.
type base struct {
	stats Stats
	cost  CostEstimate
}

func (b *base) Stats() Stats            { return b.stats }
func (b *base) SetStats(s Stats)        { b.stats = s }
func (b *base) Cost() CostEstimate      { return b.cost }
func (b *base) SetCost(c CostEstimate)  { b.cost = c }
