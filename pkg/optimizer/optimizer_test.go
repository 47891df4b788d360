package optimizer

import (
	"testing"

	"queryopt/pkg/ast"
	"queryopt/pkg/catalog"
	"queryopt/pkg/costmodel"
	"queryopt/pkg/plan"
	"queryopt/pkg/primitives"
	"queryopt/pkg/queryerr"
)

func demoCatalog() *catalog.Catalog {
	cat := catalog.New()
	catalog.PopulateSampleData(cat)
	catalog.SeedDemoStatistics(cat)
	return cat
}

func newOptimizer() *Optimizer {
	return New(demoCatalog(), costmodel.NewModel(costmodel.DefaultConfig()), DefaultConfig())
}

func usersOrdersJoinStatement() ast.SelectStatement {
	return ast.SelectStatement{
		SelectList: []ast.SelectItem{{Expression: ast.Column{Column: "*"}}},
		FromTable:  ast.TableReference{TableName: "users"},
		Joins: []ast.JoinClause{{
			JoinType: primitives.InnerJoin,
			Table:    ast.TableReference{TableName: "orders"},
			Condition: ast.BinaryOp{
				Left:  ast.Column{Table: "users", Column: "id"},
				Op:    primitives.Equals,
				Right: ast.Column{Table: "orders", Column: "user_id"},
			},
		}},
	}
}

func TestGenerateAllPlansNoJoinsYieldsOneCandidate(t *testing.T) {
	o := newOptimizer()
	stmt := ast.SelectStatement{
		SelectList: []ast.SelectItem{{Expression: ast.Column{Column: "*"}}},
		FromTable:  ast.TableReference{TableName: "users"},
	}

	candidates, err := o.GenerateAllPlans(stmt)
	if err != nil {
		t.Fatalf("GenerateAllPlans: %v", err)
	}
	if len(candidates) != 1 {
		t.Errorf("candidate count = %d, want 1", len(candidates))
	}
}

func TestGenerateAllPlansOneJoinYieldsSixCandidates(t *testing.T) {
	o := newOptimizer()
	candidates, err := o.GenerateAllPlans(usersOrdersJoinStatement())
	if err != nil {
		t.Fatalf("GenerateAllPlans: %v", err)
	}
	if len(candidates) != 6 {
		t.Errorf("candidate count = %d, want 6 (3 algorithms x 2 orderings)", len(candidates))
	}

	seen := make(map[plan.Kind]int)
	for _, c := range candidates {
		project := c.(*plan.ProjectNode)
		join := project.Child.(*plan.JoinNode)
		seen[join.Algorithm]++
	}
	for _, algorithm := range algorithms {
		if seen[algorithm] != 2 {
			t.Errorf("algorithm %v appears %d times, want 2 (one per ordering)", algorithm, seen[algorithm])
		}
	}
}

func TestOptimizeRejectsNonInnerJoins(t *testing.T) {
	o := newOptimizer()
	stmt := usersOrdersJoinStatement()
	stmt.Joins[0].JoinType = primitives.LeftJoin

	_, err := o.Optimize(stmt)
	if err == nil {
		t.Fatal("expected an error rejecting a non-INNER join")
	}
	qerr, ok := err.(*queryerr.Error)
	if !ok {
		t.Fatalf("error type = %T, want *queryerr.Error", err)
	}
	if qerr.Category != queryerr.InvalidPlan {
		t.Errorf("error category = %v, want InvalidPlan", qerr.Category)
	}
}

func TestOptimizeSelectsCheapestHashOrSortMergeOverNestedLoop(t *testing.T) {
	o := newOptimizer()
	best, err := o.Optimize(usersOrdersJoinStatement())
	if err != nil {
		t.Fatalf("Optimize: %v", err)
	}

	project, ok := best.(*plan.ProjectNode)
	if !ok {
		t.Fatalf("winning plan root is %T, want *plan.ProjectNode", best)
	}
	join, ok := project.Child.(*plan.JoinNode)
	if !ok {
		t.Fatalf("winning plan's join is %T, want *plan.JoinNode", project.Child)
	}
	if join.Algorithm == plan.NestedLoopJoinKind {
		t.Errorf("winning algorithm = NestedLoopJoin, want HashJoin or SortMergeJoin (cheaper on 1000x5000 rows)")
	}
}

func TestSelectBestPicksLowestCost(t *testing.T) {
	o := newOptimizer()
	candidates := []Candidate{
		{Plan: nil, Cost: plan.NewCostEstimate(10, 10)},
		{Plan: nil, Cost: plan.NewCostEstimate(1, 1)},
		{Plan: nil, Cost: plan.NewCostEstimate(5, 5)},
	}

	best, err := o.SelectBest(candidates)
	if err != nil {
		t.Fatalf("SelectBest: %v", err)
	}
	if best.Cost.Total != 2 {
		t.Errorf("best cost = %v, want 2", best.Cost.Total)
	}
}

func TestSelectBestRejectsEmptyCandidates(t *testing.T) {
	o := newOptimizer()
	if _, err := o.SelectBest(nil); err == nil {
		t.Fatal("expected an error for zero candidates")
	}
}
