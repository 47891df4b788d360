// Package optimizer enumerates candidate physical plans for a parsed
// statement, costs each one, and selects the cheapest. It owns no
// plan-building or costing logic itself (see pkg/planbuilder and
// pkg/costmodel); it is the glue that drives them and picks a winner.
package optimizer

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"queryopt/pkg/ast"
	"queryopt/pkg/catalog"
	"queryopt/pkg/costmodel"
	"queryopt/pkg/logging"
	"queryopt/pkg/plan"
	"queryopt/pkg/planbuilder"
	"queryopt/pkg/primitives"
	"queryopt/pkg/queryerr"
	"queryopt/pkg/utils/functools"
)

// algorithms is the fixed set of physical join operators the optimizer
// considers for a single join.
var algorithms = []plan.Kind{plan.NestedLoopJoinKind, plan.HashJoinKind, plan.SortMergeJoinKind}

// Config holds the optimizer's tunables. There is currently one knob;
// it exists as a struct (rather than a bare constant) so the shape
// matches the rest of the stack's dependency-injected configuration.
type Config struct {
	// MaxConcurrentCandidates bounds how many candidates are costed at
	// once by the errgroup in costAll. Zero means unbounded.
	MaxConcurrentCandidates int
}

// DefaultConfig returns the optimizer's default configuration.
func DefaultConfig() Config {
	return Config{MaxConcurrentCandidates: 0}
}

// Candidate is one enumerated plan together with its assigned cost.
type Candidate struct {
	Plan plan.Node
	Cost plan.CostEstimate
}

// Optimizer enumerates, costs, and selects plans against a fixed
// catalog and cost model. Both are injected, never global.
type Optimizer struct {
	catalog *catalog.Catalog
	model   *costmodel.Model
	config  Config
	builder *planbuilder.Builder
}

// New builds an Optimizer over cat, using model for costing. If model
// is nil, costmodel.DefaultConfig() is used.
func New(cat *catalog.Catalog, model *costmodel.Model, config Config) *Optimizer {
	if model == nil {
		model = costmodel.NewModel(costmodel.DefaultConfig())
	}
	return &Optimizer{
		catalog: cat,
		model:   model,
		config:  config,
		builder: planbuilder.New(cat),
	}
}

// Optimize is the optimizer's entry point: build every candidate plan
// for stmt, cost each one, and return the cheapest. Zero-join
// statements have exactly one candidate; any non-INNER join is
// rejected with InvalidPlan before enumeration rather than being
// executed as INNER (see plan.JoinTypeTag). ApplyFilterPushdown and
// ChooseJoinAlgorithm are not called here.
func (o *Optimizer) Optimize(stmt ast.SelectStatement) (plan.Node, error) {
	for _, join := range stmt.Joins {
		if join.JoinType != primitives.InnerJoin {
			return nil, queryerr.New(queryerr.InvalidPlan,
				fmt.Sprintf("unsupported join type %s: only INNER joins are executed", join.JoinType))
		}
	}

	candidates, err := o.GenerateAllPlans(stmt)
	if err != nil {
		return nil, err
	}

	costed, err := o.costAll(candidates)
	if err != nil {
		return nil, err
	}

	best, err := o.SelectBest(costed)
	if err != nil {
		return nil, err
	}
	return best.Plan, nil
}

// GenerateAllPlans enumerates every candidate plan for stmt without
// costing them. A statement with zero joins yields exactly one
// candidate (the default plan). A statement with exactly one join
// yields 3 algorithms x 2 orderings = 6 candidates. Statements with
// more than one join are not enumerated beyond a fixed left-deep
// nested-loop fold (multi-way join search is out of scope); they also
// yield exactly one candidate.
func (o *Optimizer) GenerateAllPlans(stmt ast.SelectStatement) ([]plan.Node, error) {
	if len(stmt.Joins) != 1 {
		return []plan.Node{o.builder.BuildPlan(stmt)}, nil
	}

	join := stmt.Joins[0]
	fromScan := o.builder.BuildScan(stmt.FromTable)
	joinScan := o.builder.BuildScan(join.Table)

	candidates := make([]plan.Node, 0, len(algorithms)*2)
	for _, algorithm := range algorithms {
		leftDeep := o.finishCandidate(o.builder.BuildJoin(algorithm, fromScan, joinScan, join), stmt)
		candidates = append(candidates, leftDeep)

		swapped := o.finishCandidate(o.builder.BuildJoin(algorithm, joinScan, fromScan, join), stmt)
		candidates = append(candidates, swapped)
	}
	return candidates, nil
}

// finishCandidate applies WHERE (if present) and the final projection
// above a join candidate, matching build_plan's tail shape.
func (o *Optimizer) finishCandidate(join *plan.JoinNode, stmt ast.SelectStatement) plan.Node {
	var current plan.Node = join
	if stmt.Where != nil {
		current = o.builder.BuildFilter(current, stmt.Where)
	}
	return o.builder.BuildProject(current, stmt.SelectList)
}

// costAll estimates every candidate's cost concurrently via an
// errgroup, since each candidate's cost estimation is independent of
// the others and reads only from the (read-only during optimize) injected
// catalog and cost model.
func (o *Optimizer) costAll(candidates []plan.Node) ([]Candidate, error) {
	costs := make([]plan.CostEstimate, len(candidates))

	g, _ := errgroup.WithContext(context.Background())
	if o.config.MaxConcurrentCandidates > 0 {
		g.SetLimit(o.config.MaxConcurrentCandidates)
	}

	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			costs[i] = o.model.EstimatePlanCost(candidate, o.catalog)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, queryerr.Wrap(err, queryerr.OptimizationFailed, "cost-candidates", "optimizer")
	}

	out := make([]Candidate, len(candidates))
	for i, candidate := range candidates {
		candidate.SetCost(costs[i])
		out[i] = Candidate{Plan: candidate, Cost: costs[i]}
	}
	return out, nil
}

// SelectBest returns the candidate with the lowest total cost, ties
// broken by insertion order (the first minimum encountered wins).
// An empty candidate list is an OptimizationFailed error.
func (o *Optimizer) SelectBest(candidates []Candidate) (Candidate, error) {
	if len(candidates) == 0 {
		return Candidate{}, queryerr.New(queryerr.OptimizationFailed, "no candidate plans were generated")
	}

	return functools.Reduce(candidates[1:], candidates[0], func(best, c Candidate) Candidate {
		if c.Cost.Total < best.Cost.Total {
			return c
		}
		return best
	}), nil
}

// PrintReport renders a human-readable comparison of every candidate's
// plan text and total cost, in enumeration order, logging each line
// through the package-standard logger so the demo driver and tests
// both see a consistent report shape.
func (o *Optimizer) PrintReport(candidates []Candidate) string {
	logger := logging.WithComponent("optimizer")
	lines := functools.Map(candidates, func(c Candidate) string {
		return fmt.Sprintf("cost=%.4f\n%s\n", c.Cost.Total, c.Plan.String())
	})

	report := ""
	for i, line := range lines {
		report += fmt.Sprintf("candidate %d: %s", i, line)
		logger.Info("candidate evaluated", "index", i, "cost", candidates[i].Cost.Total)
	}
	return report
}

// ApplyFilterPushdown is a named placeholder transform: it returns its
// input unchanged. Whether to actually push filters below joins is
// left open; the transform exists so the pipeline's shape matches the
// contract even before it does real work.
func ApplyFilterPushdown(node plan.Node) plan.Node {
	return node
}

// ChooseJoinAlgorithm is a named placeholder transform: it returns its
// input unchanged rather than rewriting a join's algorithm based on
// estimated cardinalities. The optimizer's own enumeration already
// tries all three algorithms per candidate, so this transform's
// absence of effect does not weaken plan selection.
func ChooseJoinAlgorithm(node plan.Node) plan.Node {
	return node
}
