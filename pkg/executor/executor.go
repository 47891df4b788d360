// Package executor interprets a rooted physical plan and materializes
// its result set. It is single-threaded and pull-model in the loose
// sense that each operator fully produces its output before its
// parent proceeds; there is no suspension and no streaming between
// operators (see the package's ResultSet, not an iterator protocol).
package executor

import (
	"fmt"

	"queryopt/pkg/catalog"
	"queryopt/pkg/logging"
	"queryopt/pkg/plan"
	"queryopt/pkg/queryerr"
	"queryopt/pkg/table"
)

// ResultSet is the materialized output of one operator: a schema and
// an ordered sequence of schema-aligned rows.
type ResultSet struct {
	Schema table.Schema
	Rows   []table.Row
}

// Execute walks node and returns its materialized result, or a fatal
// queryerr.Error. Per-row failures inside filter/join key extraction
// never surface here; they are absorbed where they occur.
func Execute(node plan.Node, cat *catalog.Catalog) (*ResultSet, error) {
	logger := logging.WithComponent("executor")

	if node == nil {
		return nil, queryerr.New(queryerr.InvalidPlan, "plan node is missing a required child")
	}

	switch n := node.(type) {
	case *plan.TableScanNode:
		return executeScan(n, cat)

	case *plan.FilterNode:
		return executeFilter(n, cat)

	case *plan.ProjectNode:
		return executeProject(n, cat)

	case *plan.JoinNode:
		switch n.Algorithm {
		case plan.NestedLoopJoinKind:
			return executeNestedLoopJoin(n, cat)
		case plan.HashJoinKind:
			return executeHashJoin(n, cat)
		case plan.SortMergeJoinKind:
			return executeSortMergeJoin(n, cat)
		default:
			return nil, queryerr.New(queryerr.InvalidPlan,
				fmt.Sprintf("join node carries unsupported algorithm kind %v", n.Algorithm))
		}

	default:
		logger.Error("unsupported plan node kind", "kind", node.Kind())
		return nil, queryerr.New(queryerr.InvalidPlan,
			fmt.Sprintf("unsupported plan node kind %v", node.Kind()))
	}
}

func executeScan(n *plan.TableScanNode, cat *catalog.Catalog) (*ResultSet, error) {
	t, err := cat.Lookup(n.TableName)
	if err != nil {
		return nil, queryerr.Wrap(err, queryerr.TableNotFound, "scan", "executor")
	}

	rows := make([]table.Row, len(t.Rows))
	copy(rows, t.Rows)
	return &ResultSet{Schema: t.Schema, Rows: rows}, nil
}
