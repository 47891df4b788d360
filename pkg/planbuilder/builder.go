package planbuilder

import (
	"strings"

	"queryopt/pkg/ast"
	"queryopt/pkg/catalog"
	"queryopt/pkg/plan"
	"queryopt/pkg/table"
)

// Builder translates AST fragments into plan nodes, pulling row/page
// counts from the catalog it was constructed with.
type Builder struct {
	catalog *catalog.Catalog
}

// New builds a Builder over the given catalog.
func New(cat *catalog.Catalog) *Builder {
	return &Builder{catalog: cat}
}

// BuildScan builds a TableScan over ref. The output schema records
// only the qualified table name with a wildcard column; the scan's
// stats are pulled from the catalog.
func (b *Builder) BuildScan(ref ast.TableReference) *plan.TableScanNode {
	schema := table.NewSchema(table.Column{TableName: ref.TableName, Name: "*"})
	scan := plan.NewTableScanNode(ref.TableName, ref.Alias, schema)

	stats := b.catalog.GetStatistics(ref.TableName)
	scan.SetStats(plan.Stats{RowCount: stats.TupleCount, PageCount: stats.PageCount})
	return scan
}

// BuildFilter wraps child in a Filter over condition, rendered to
// canonical text. Selectivity defaults to 0.1 for stats purposes here
// (the cost model's own cardinality pass applies the real named-
// predicate selectivities; this flat 0.1 only seeds the node's Stats
// field at build time, matching the original plan builder).
func (b *Builder) BuildFilter(child plan.Node, condition ast.Expression) *plan.FilterNode {
	conditionText := CanonicalText(condition)
	filter := plan.NewFilterNode(child, conditionText)

	childStats := child.Stats()
	filter.SetStats(plan.Stats{
		RowCount:    int64(float64(childStats.RowCount) * 0.1),
		PageCount:   childStats.PageCount,
		Selectivity: 0.1,
	})
	return filter
}

// BuildProject wraps child in a Project over items, each rendered to
// canonical text (table prefixes preserved; the executor strips them
// at execution time).
func (b *Builder) BuildProject(child plan.Node, items []ast.SelectItem) *plan.ProjectNode {
	columns := make([]string, 0, len(items))
	for _, item := range items {
		columns = append(columns, CanonicalText(item.Expression))
	}
	project := plan.NewProjectNode(child, columns)
	project.SetStats(child.Stats())
	return project
}

// BuildJoin wraps left and right in a join node using the given
// algorithm, carrying the join clause's type and condition. Composite
// stats follow the fixed formula: row_count = left*right/10,
// page_count = row_count/100, selectivity = 0.1.
func (b *Builder) BuildJoin(algorithm plan.Kind, left, right plan.Node, clause ast.JoinClause) *plan.JoinNode {
	conditionText := CanonicalText(clause.Condition)
	joinType := ConvertJoinType(clause.JoinType)
	join := plan.NewJoinNode(algorithm, left, right, joinType, conditionText)

	rowCount := left.Stats().RowCount * right.Stats().RowCount / 10
	pageCount := rowCount / 100
	join.SetStats(plan.Stats{RowCount: rowCount, PageCount: pageCount, Selectivity: 0.1})
	return join
}

// BuildPlan builds the full default plan for stmt: scan the FROM
// table, fold each join as a left-deep NestedLoopJoin, apply a filter
// if WHERE is present, and finish with a Project. This is the
// non-optimizing path; the optimizer's enumeration (pkg/optimizer)
// varies join algorithm and order instead of using this default.
func (b *Builder) BuildPlan(stmt ast.SelectStatement) plan.Node {
	var current plan.Node = b.BuildScan(stmt.FromTable)

	for _, join := range stmt.Joins {
		right := b.BuildScan(join.Table)
		current = b.BuildJoin(plan.NestedLoopJoinKind, current, right, join)
	}

	if stmt.Where != nil {
		current = b.BuildFilter(current, stmt.Where)
	}

	current = b.BuildProject(current, stmt.SelectList)
	return current
}

// stripTablePrefix removes a leading "table." qualifier from a
// canonical column reference (kept here so the prefix convention lives
// beside its producer; pkg/executor keeps its own copy for its
// projection step).
func stripTablePrefix(columnText string) string {
	if idx := strings.LastIndex(columnText, "."); idx >= 0 {
		return columnText[idx+1:]
	}
	return columnText
}

// StripTablePrefix is the exported form of stripTablePrefix.
// pkg/executor does not call it; it mirrors it with its own copy.
func StripTablePrefix(columnText string) string {
	return stripTablePrefix(columnText)
}
