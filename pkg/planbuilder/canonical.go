// Package planbuilder translates AST fragments into plan nodes. It
// owns the canonical condition-text renderer used both as the cost
// model's selectivity lookup key and, independently, by the
// executor's predicate recognizer; the two are kept as separate named
// functions across packages (this one renders, pkg/executor
// recognizes) even though they both key off the same text shape.
package planbuilder

import (
	"fmt"

	"queryopt/pkg/ast"
	"queryopt/pkg/plan"
	"queryopt/pkg/primitives"
)

// CanonicalText renders an Expression to its fixed infix form: a bare
// or table-qualified name for Column, raw text for Literal, and fully
// parenthesized infix for BinaryOp.
func CanonicalText(expr ast.Expression) string {
	switch e := expr.(type) {
	case ast.Column:
		if e.Table == "" {
			return e.Column
		}
		return e.Table + "." + e.Column
	case ast.Literal:
		return e.Text
	case ast.BinaryOp:
		return fmt.Sprintf("(%s %s %s)", CanonicalText(e.Left), e.Op, CanonicalText(e.Right))
	default:
		return "UNKNOWN_EXPR"
	}
}

// ConvertJoinType maps the AST's join kind to the plan's join type
// tag. INNER passes through directly; LEFT/RIGHT become the plan's
// LEFT_OUTER/RIGHT_OUTER tags. Any unrecognized kind defaults to
// INNER.
func ConvertJoinType(kind primitives.JoinKind) plan.JoinTypeTag {
	switch kind {
	case primitives.InnerJoin:
		return plan.InnerJoinTag
	case primitives.LeftJoin:
		return plan.LeftOuterJoinTag
	case primitives.RightJoin:
		return plan.RightOuterJoinTag
	default:
		return plan.InnerJoinTag
	}
}
