package main

import (
	"queryopt/pkg/ast"
	"queryopt/pkg/primitives"
)

// demoQuery pairs a human-readable label with the hand-built
// statement it represents (there is no parser in this module; see
// pkg/ast's package doc comment).
type demoQuery struct {
	label string
	stmt  ast.SelectStatement
}

func demoQueries() []demoQuery {
	return []demoQuery{
		{
			label: "SELECT name, age FROM users WHERE age > 25",
			stmt: ast.SelectStatement{
				SelectList: []ast.SelectItem{
					{Expression: ast.Column{Column: "name"}},
					{Expression: ast.Column{Column: "age"}},
				},
				FromTable: ast.TableReference{TableName: "users"},
				Where: ast.BinaryOp{
					Left:  ast.Column{Column: "age"},
					Right: ast.Literal{Text: "25"},
					Op:    primitives.GreaterThan,
				},
			},
		},
		{
			label: "SELECT * FROM users JOIN orders ON users.id = orders.user_id",
			stmt: ast.SelectStatement{
				SelectList: []ast.SelectItem{{Expression: ast.Column{Column: "*"}}},
				FromTable:  ast.TableReference{TableName: "users"},
				Joins: []ast.JoinClause{
					{
						JoinType: primitives.InnerJoin,
						Table:    ast.TableReference{TableName: "orders"},
						Condition: ast.BinaryOp{
							Left:  ast.Column{Table: "users", Column: "id"},
							Right: ast.Column{Table: "orders", Column: "user_id"},
							Op:    primitives.Equals,
						},
					},
				},
			},
		},
		{
			label: "SELECT * FROM users JOIN orders ON users.id = orders.user_id WHERE amount > 100",
			stmt: ast.SelectStatement{
				SelectList: []ast.SelectItem{{Expression: ast.Column{Column: "*"}}},
				FromTable:  ast.TableReference{TableName: "users"},
				Joins: []ast.JoinClause{
					{
						JoinType: primitives.InnerJoin,
						Table:    ast.TableReference{TableName: "orders"},
						Condition: ast.BinaryOp{
							Left:  ast.Column{Table: "users", Column: "id"},
							Right: ast.Column{Table: "orders", Column: "user_id"},
							Op:    primitives.Equals,
						},
					},
				},
				Where: ast.BinaryOp{
					Left:  ast.Column{Column: "amount"},
					Right: ast.Literal{Text: "100"},
					Op:    primitives.GreaterThan,
				},
			},
		},
	}
}
