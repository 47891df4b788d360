package executor

import (
	"testing"

	"queryopt/pkg/ast"
	"queryopt/pkg/catalog"
	"queryopt/pkg/plan"
	"queryopt/pkg/planbuilder"
	"queryopt/pkg/primitives"
	"queryopt/pkg/queryerr"
	"queryopt/pkg/table"
	"queryopt/pkg/value"
)

func demoCatalog() *catalog.Catalog {
	cat := catalog.New()
	catalog.PopulateSampleData(cat)
	catalog.SeedDemoStatistics(cat)
	return cat
}

func TestExecuteScan(t *testing.T) {
	cat := demoCatalog()
	scan := plan.NewTableScanNode("users", "", table.Schema{})

	result, err := Execute(scan, cat)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(result.Rows) != 1000 {
		t.Errorf("users row count = %d, want 1000", len(result.Rows))
	}
}

func TestExecuteScanMissingTable(t *testing.T) {
	cat := demoCatalog()
	scan := plan.NewTableScanNode("missing", "", table.Schema{})

	if _, err := Execute(scan, cat); err == nil {
		t.Fatal("expected an error scanning a missing table")
	}
}

func TestExecuteFilterAgeGreaterThan25(t *testing.T) {
	cat := demoCatalog()
	scan := plan.NewTableScanNode("users", "", table.Schema{})
	condition := ast.BinaryOp{
		Left:  ast.Column{Column: "age"},
		Right: ast.Literal{Text: "25"},
		Op:    primitives.GreaterThan,
	}
	filter := plan.NewFilterNode(scan, planbuilder.CanonicalText(condition))

	result, err := Execute(filter, cat)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(result.Rows) != 880 {
		t.Errorf("age>25 row count = %d, want 880", len(result.Rows))
	}
}

func TestExecuteFilterUnrecognizedPredicatePassesEverything(t *testing.T) {
	cat := demoCatalog()
	scan := plan.NewTableScanNode("users", "", table.Schema{})
	filter := plan.NewFilterNode(scan, "(city = City1)")

	result, err := Execute(filter, cat)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(result.Rows) != 1000 {
		t.Errorf("unrecognized predicate row count = %d, want 1000 (pass-all)", len(result.Rows))
	}
}

func TestExecuteProjectSelectsNamedColumns(t *testing.T) {
	cat := demoCatalog()
	scan := plan.NewTableScanNode("users", "", table.Schema{})
	project := plan.NewProjectNode(scan, []string{"name", "age"})

	result, err := Execute(project, cat)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(result.Schema.Columns) != 2 {
		t.Fatalf("projected schema has %d columns, want 2", len(result.Schema.Columns))
	}
	if result.Schema.Columns[0].Name != "name" || result.Schema.Columns[1].Name != "age" {
		t.Errorf("projected schema = %+v, want [name age]", result.Schema.Columns)
	}
	if len(result.Rows) != 1000 {
		t.Errorf("projected row count = %d, want 1000", len(result.Rows))
	}
	if result.Rows[0].Len() != 2 {
		t.Errorf("projected row width = %d, want 2", result.Rows[0].Len())
	}
}

func TestExecuteProjectAllUnresolvedIsSchemaMismatch(t *testing.T) {
	cat := demoCatalog()
	scan := plan.NewTableScanNode("users", "", table.Schema{})
	project := plan.NewProjectNode(scan, []string{"missing_table.nope", "also_missing"})

	_, err := Execute(project, cat)
	if err == nil {
		t.Fatal("expected an error when no projections resolve")
	}
	qerr, ok := err.(*queryerr.Error)
	if !ok {
		t.Fatalf("error type = %T, want *queryerr.Error", err)
	}
	if qerr.Category != queryerr.SchemaMismatch {
		t.Errorf("error category = %v, want SchemaMismatch", qerr.Category)
	}
}

func TestExecuteProjectWildcardIsPassthrough(t *testing.T) {
	cat := demoCatalog()
	scan := plan.NewTableScanNode("users", "", table.Schema{})
	project := plan.NewProjectNode(scan, []string{"*"})

	result, err := Execute(project, cat)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(result.Rows) != 1000 {
		t.Errorf("wildcard row count = %d, want 1000", len(result.Rows))
	}
}

// smallJoinCatalog builds a two-table catalog shaped so that column 0
// of "left" and column 1 of "right" are the join keys HashJoin and
// SortMergeJoin hard-code, without the other columns' widths lining up
// (which would mask an off-by-one in leftJoinKeyColumn/rightJoinKeyColumn).
func smallJoinCatalog(leftRows, rightRows []table.Row) *catalog.Catalog {
	cat := catalog.New()
	left := cat.CreateTable("left", table.NewSchema(
		table.Column{TableName: "left", Name: "id", Kind: value.IntKind},
		table.Column{TableName: "left", Name: "name", Kind: value.StringKind},
	))
	for _, r := range leftRows {
		left.AddRow(r)
	}

	right := cat.CreateTable("right", table.NewSchema(
		table.Column{TableName: "right", Name: "foo", Kind: value.StringKind},
		table.Column{TableName: "right", Name: "user_id", Kind: value.IntKind},
	))
	for _, r := range rightRows {
		right.AddRow(r)
	}
	return cat
}

func joinNode(algorithm plan.Kind) *plan.JoinNode {
	left := plan.NewTableScanNode("left", "", table.Schema{})
	right := plan.NewTableScanNode("right", "", table.Schema{})
	return plan.NewJoinNode(algorithm, left, right, plan.InnerJoinTag, "(left.id = right.user_id)")
}

func TestExecuteNestedLoopJoinIsUnfilteredCartesian(t *testing.T) {
	cat := smallJoinCatalog(
		[]table.Row{
			table.NewRow(value.Int(1), value.Str("a")),
			table.NewRow(value.Int(2), value.Str("b")),
			table.NewRow(value.Int(3), value.Str("c")),
		},
		[]table.Row{
			table.NewRow(value.Str("x"), value.Int(1)),
			table.NewRow(value.Str("y"), value.Int(2)),
			table.NewRow(value.Str("y2"), value.Int(2)),
			table.NewRow(value.Str("z"), value.Int(5)),
		},
	)

	result, err := Execute(joinNode(plan.NestedLoopJoinKind), cat)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	// 3 left rows x 4 right rows, regardless of whether the keys match:
	// the condition is never evaluated by this algorithm.
	if len(result.Rows) != 12 {
		t.Errorf("nested loop join row count = %d, want 12 (unfiltered cartesian product)", len(result.Rows))
	}
}

func TestExecuteHashJoinMatchesOnKeyColumns(t *testing.T) {
	cat := smallJoinCatalog(
		[]table.Row{
			table.NewRow(value.Int(1), value.Str("a")),
			table.NewRow(value.Int(2), value.Str("b")),
			table.NewRow(value.Int(3), value.Str("c")),
		},
		[]table.Row{
			table.NewRow(value.Str("x"), value.Int(1)),
			table.NewRow(value.Str("y"), value.Int(2)),
			table.NewRow(value.Str("y2"), value.Int(2)),
			table.NewRow(value.Str("z"), value.Int(5)),
		},
	)

	result, err := Execute(joinNode(plan.HashJoinKind), cat)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	// id=1 matches one right row, id=2 matches two duplicate right rows, id=3 matches none.
	if len(result.Rows) != 3 {
		t.Errorf("hash join row count = %d, want 3", len(result.Rows))
	}
}

func TestExecuteSortMergeJoinMissesDuplicateLeftKeys(t *testing.T) {
	cat := smallJoinCatalog(
		[]table.Row{
			table.NewRow(value.Int(1), value.Str("a1")),
			table.NewRow(value.Int(1), value.Str("a2")),
			table.NewRow(value.Int(2), value.Str("b")),
		},
		[]table.Row{
			table.NewRow(value.Str("x"), value.Int(1)),
			table.NewRow(value.Str("y"), value.Int(2)),
		},
	)

	result, err := Execute(joinNode(plan.SortMergeJoinKind), cat)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	// A correct merge join would emit 3 rows (both left id=1 rows paired
	// with right's single id=1 row, plus the id=2 pair). This operator
	// advances only the right cursor on an equal key, so the second
	// left row carrying a duplicate key is skipped once the right
	// cursor has already moved past its match.
	if len(result.Rows) != 2 {
		t.Errorf("sort-merge join row count = %d, want 2 (duplicate-left-key gap)", len(result.Rows))
	}
}

func TestExecuteNilChildIsInvalidPlanNotPanic(t *testing.T) {
	cat := demoCatalog()
	right := plan.NewTableScanNode("orders", "", table.Schema{})
	join := plan.NewJoinNode(plan.NestedLoopJoinKind, nil, right, plan.InnerJoinTag, "(users.id = orders.user_id)")

	_, err := Execute(join, cat)
	if err == nil {
		t.Fatal("expected an error for a join missing its left child")
	}
	qerr, ok := err.(*queryerr.Error)
	if !ok {
		t.Fatalf("error type = %T, want *queryerr.Error", err)
	}
	if qerr.Category != queryerr.InvalidPlan {
		t.Errorf("error category = %v, want InvalidPlan", qerr.Category)
	}
}
