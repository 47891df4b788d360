package executor

import (
	"strings"

	"queryopt/pkg/catalog"
	"queryopt/pkg/plan"
	"queryopt/pkg/queryerr"
	"queryopt/pkg/table"
	"queryopt/pkg/value"
)

// stripTablePrefix removes a leading "table." qualifier from a
// canonical column reference, mirroring planbuilder.StripTablePrefix
// (kept as its own copy here rather than imported, since the executor
// must not depend on the plan builder — it only consumes the plan
// tree the builder already produced).
func stripTablePrefix(columnText string) string {
	if idx := strings.LastIndex(columnText, "."); idx >= 0 {
		return columnText[idx+1:]
	}
	return columnText
}

func executeProject(n *plan.ProjectNode, cat *catalog.Catalog) (*ResultSet, error) {
	child, err := Execute(n.Child, cat)
	if err != nil {
		return nil, err
	}

	if len(n.Columns) == 1 && n.Columns[0] == "*" {
		return child, nil
	}

	indexes := make([]int, 0, len(n.Columns))
	cols := make([]table.Column, 0, len(n.Columns))
	for _, col := range n.Columns {
		name := stripTablePrefix(col)
		idx := child.Schema.IndexOf(name)
		if idx < 0 {
			continue // unresolved projection: dropped, not fatal
		}
		indexes = append(indexes, idx)
		cols = append(cols, child.Schema.Columns[idx])
	}
	if len(indexes) == 0 {
		return nil, queryerr.New(queryerr.SchemaMismatch, "no projections survived resolution")
	}
	schema := table.NewSchema(cols...)

	rows := make([]table.Row, len(child.Rows))
	for i, row := range child.Rows {
		rows[i] = projectRow(row, indexes)
	}

	return &ResultSet{Schema: schema, Rows: rows}, nil
}

func projectRow(row table.Row, indexes []int) table.Row {
	values := make([]value.Value, len(indexes))
	for i, idx := range indexes {
		values[i] = row.Values[idx]
	}
	return table.NewRow(values...)
}
