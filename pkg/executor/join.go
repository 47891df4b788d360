package executor

import (
	"sort"

	"queryopt/pkg/catalog"
	"queryopt/pkg/plan"
	"queryopt/pkg/table"
)

// leftJoinKeyColumn and rightJoinKeyColumn are the hard-coded join-key
// positions HashJoin and SortMergeJoin read from, rather than deriving
// them from the join condition. This matches the demo schema
// (users.id at column 0, orders.user_id at column 1) and is a known
// generalization gap: a real implementation would resolve these from
// the parsed join condition instead.
const (
	leftJoinKeyColumn  = 0
	rightJoinKeyColumn = 1
)

// executeNestedLoopJoin emits the full Cartesian product of its two
// children without ever evaluating the join condition — the condition
// text is recorded on the node for costing only, while the cost model
// costs this path as a true join. This is intentional; see
// TestExecuteNestedLoopJoinIsUnfilteredCartesian in executor_test.go.
func executeNestedLoopJoin(n *plan.JoinNode, cat *catalog.Catalog) (*ResultSet, error) {
	left, err := Execute(n.Left, cat)
	if err != nil {
		return nil, err
	}
	right, err := Execute(n.Right, cat)
	if err != nil {
		return nil, err
	}

	schema := left.Schema.Concat(right.Schema)
	rows := make([]table.Row, 0, len(left.Rows)*len(right.Rows))
	for _, l := range left.Rows {
		for _, r := range right.Rows {
			rows = append(rows, l.Concat(r))
		}
	}
	return &ResultSet{Schema: schema, Rows: rows}, nil
}

// executeHashJoin builds a hash table over the left child's rows keyed
// by the integer at leftJoinKeyColumn, then probes it with each right
// row's integer at rightJoinKeyColumn. Rows where either key
// extraction fails are skipped, not fatal.
func executeHashJoin(n *plan.JoinNode, cat *catalog.Catalog) (*ResultSet, error) {
	left, err := Execute(n.Left, cat)
	if err != nil {
		return nil, err
	}
	right, err := Execute(n.Right, cat)
	if err != nil {
		return nil, err
	}

	buildTable := make(map[int64][]table.Row, len(left.Rows))
	for _, l := range left.Rows {
		if leftJoinKeyColumn >= l.Len() {
			continue
		}
		key, ok := l.Values[leftJoinKeyColumn].AsInt()
		if !ok {
			continue
		}
		buildTable[key] = append(buildTable[key], l)
	}

	schema := left.Schema.Concat(right.Schema)
	rows := make([]table.Row, 0, len(right.Rows))
	for _, r := range right.Rows {
		if rightJoinKeyColumn >= r.Len() {
			continue
		}
		key, ok := r.Values[rightJoinKeyColumn].AsInt()
		if !ok {
			continue
		}
		for _, l := range buildTable[key] {
			rows = append(rows, l.Concat(r))
		}
	}
	return &ResultSet{Schema: schema, Rows: rows}, nil
}

// executeSortMergeJoin sorts both children by their respective
// join-key columns and merges with two cursors. On an equal key it
// emits one pair and advances only the right cursor — this correctly
// handles N duplicate keys on the right side for a single left row,
// but not duplicates on the left side of the same key (see
// TestExecuteSortMergeJoinMissesDuplicateLeftKeys, which pins this
// gap, preserved from the source it was translated from).
// Key-extraction failures advance the left cursor.
func executeSortMergeJoin(n *plan.JoinNode, cat *catalog.Catalog) (*ResultSet, error) {
	left, err := Execute(n.Left, cat)
	if err != nil {
		return nil, err
	}
	right, err := Execute(n.Right, cat)
	if err != nil {
		return nil, err
	}

	leftKeys := extractKeys(left.Rows, leftJoinKeyColumn)
	rightKeys := extractKeys(right.Rows, rightJoinKeyColumn)

	leftOrder := sortedIndexesByKey(leftKeys)
	rightOrder := sortedIndexesByKey(rightKeys)

	schema := left.Schema.Concat(right.Schema)
	var rows []table.Row

	i, j := 0, 0
	for i < len(leftOrder) && j < len(rightOrder) {
		li, rj := leftOrder[i], rightOrder[j]
		leftKey, rightKey := leftKeys[li], rightKeys[rj]
		lk, lok := leftKey.value, leftKey.ok
		rk, rok := rightKey.value, rightKey.ok

		if !lok {
			i++
			continue
		}
		if !rok {
			i++
			continue
		}

		switch {
		case lk == rk:
			rows = append(rows, left.Rows[li].Concat(right.Rows[rj]))
			j++
		case lk < rk:
			i++
		default:
			j++
		}
	}

	return &ResultSet{Schema: schema, Rows: rows}, nil
}

func extractKeys(rows []table.Row, column int) []optionalKey {
	keys := make([]optionalKey, len(rows))
	for i, row := range rows {
		if column >= row.Len() {
			continue
		}
		if v, ok := row.Values[column].AsInt(); ok {
			keys[i] = optionalKey{value: v, ok: true}
		}
	}
	return keys
}

type optionalKey struct {
	value int64
	ok    bool
}

func sortedIndexesByKey(keys []optionalKey) []int {
	idx := make([]int, len(keys))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ka, kb := keys[idx[a]], keys[idx[b]]
		if !ka.ok {
			return false
		}
		if !kb.ok {
			return true
		}
		return ka.value < kb.value
	})
	return idx
}
