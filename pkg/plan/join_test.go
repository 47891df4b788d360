package plan

import (
	"testing"

	"queryopt/pkg/table"
)

func TestJoinNodeStringUsesBareAlgorithmName(t *testing.T) {
	left := NewTableScanNode("users", "", table.Schema{})
	right := NewTableScanNode("orders", "", table.Schema{})

	cases := []struct {
		algorithm Kind
		want      string
	}{
		{NestedLoopJoinKind, "NestedLoopJoin(INNER, (users.id = orders.user_id))\n  TableScan(users)\n  TableScan(orders)"},
		{HashJoinKind, "HashJoin(INNER, (users.id = orders.user_id))\n  TableScan(users)\n  TableScan(orders)"},
		{SortMergeJoinKind, "SortMergeJoin(INNER, (users.id = orders.user_id))\n  TableScan(users)\n  TableScan(orders)"},
	}

	for _, tc := range cases {
		join := NewJoinNode(tc.algorithm, left, right, InnerJoinTag, "(users.id = orders.user_id)")
		if got := join.String(); got != tc.want {
			t.Errorf("%v.String() =\n%q\nwant\n%q", tc.algorithm, got, tc.want)
		}
	}
}

func TestNewJoinNodeNilChildDoesNotPanic(t *testing.T) {
	right := NewTableScanNode("orders", "", table.Schema{})

	join := NewJoinNode(NestedLoopJoinKind, nil, right, InnerJoinTag, "(users.id = orders.user_id)")
	if join.Schema.Len() != 0 {
		t.Errorf("nil-left join schema = %+v, want empty", join.Schema)
	}
}
