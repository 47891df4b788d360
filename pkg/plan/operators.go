package plan

import (
	"fmt"
	"queryopt/pkg/table"
)

const selfCPUOperator = 0.0025

// FilterNode has exactly one child. ConditionText is the canonical
// rendering of the WHERE expression (see pkg/planbuilder), used both
// as the cost model's selectivity key and, separately, by the
// executor's predicate recognizer.
type FilterNode struct {
	base
	Child         Node
	ConditionText string
}

func NewFilterNode(child Node, conditionText string) *FilterNode {
	return &FilterNode{Child: child, ConditionText: conditionText}
}

func (f *FilterNode) Kind() Kind                  { return FilterKind }
func (f *FilterNode) Children() []Node            { return []Node{f.Child} }
func (f *FilterNode) OutputSchema() table.Schema  { return f.Child.OutputSchema() }

func (f *FilterNode) String() string {
	return fmt.Sprintf("Filter(%s)\n%s", f.ConditionText, indent(f.Child.String(), 2))
}

// SelfEstimateCost matches the Filter row of the cost model: io is
// inherited unchanged, cpu adds inputTuples x CPU_OPERATOR.
func (f *FilterNode) SelfEstimateCost() CostEstimate {
	childCost := f.Child.Cost()
	inputTuples := float64(f.Child.Stats().RowCount)
	return NewCostEstimate(childCost.IO, childCost.CPU+inputTuples*selfCPUOperator)
}

// ProjectNode has exactly one child. Columns is the ordered list of
// canonical-text projections; a single "*" entry means passthrough.
type ProjectNode struct {
	base
	Child   Node
	Columns []string
	Schema  table.Schema
}

// NewProjectNode builds a Project over child. Schema is passed through
// from the child unchanged (the plan builder does not re-derive a
// schema from the projection list; real column resolution happens at
// execution time against the child's actual result schema). A nil
// child leaves Schema empty rather than panicking; Execute catches the
// nil child itself and raises InvalidPlan.
func NewProjectNode(child Node, columns []string) *ProjectNode {
	var schema table.Schema
	if child != nil {
		schema = child.OutputSchema()
	}
	return &ProjectNode{Child: child, Columns: columns, Schema: schema}
}

func (p *ProjectNode) Kind() Kind                 { return ProjectKind }
func (p *ProjectNode) Children() []Node           { return []Node{p.Child} }
func (p *ProjectNode) OutputSchema() table.Schema { return p.Schema }

func (p *ProjectNode) String() string {
	return fmt.Sprintf("Project(%s)\n%s", joinColumns(p.Columns), indent(p.Child.String(), 2))
}

// SelfEstimateCost matches the Project row of the cost model: io is
// inherited unchanged, cpu adds inputTuples x CPU_OPERATOR x 0.5.
func (p *ProjectNode) SelfEstimateCost() CostEstimate {
	childCost := p.Child.Cost()
	inputTuples := float64(p.Child.Stats().RowCount)
	return NewCostEstimate(childCost.IO, childCost.CPU+inputTuples*selfCPUOperator*0.5)
}

func joinColumns(cols []string) string {
	out := ""
	for i, c := range cols {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}
