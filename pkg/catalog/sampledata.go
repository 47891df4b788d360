package catalog

import (
	"fmt"

	"queryopt/pkg/table"
	"queryopt/pkg/value"
)

// PopulateSampleData creates the "users" and "orders" demo tables and
// fills them with the fixed, deterministic row generation formulas
// the test suite and the demo driver both depend on.
func PopulateSampleData(c *Catalog) {
	users := c.CreateTable("users", table.NewSchema(
		table.Column{TableName: "users", Name: "id", Kind: value.IntKind},
		table.Column{TableName: "users", Name: "name", Kind: value.StringKind},
		table.Column{TableName: "users", Name: "age", Kind: value.IntKind},
		table.Column{TableName: "users", Name: "city", Kind: value.StringKind},
	))
	for i := 1; i <= 1000; i++ {
		users.AddRow(table.NewRow(
			value.Int(int64(i)),
			value.Str(fmt.Sprintf("User%d", i)),
			value.Int(int64(20+i%50)),
			value.Str(fmt.Sprintf("City%d", i%10+1)),
		))
	}

	orders := c.CreateTable("orders", table.NewSchema(
		table.Column{TableName: "orders", Name: "id", Kind: value.IntKind},
		table.Column{TableName: "orders", Name: "user_id", Kind: value.IntKind},
		table.Column{TableName: "orders", Name: "product", Kind: value.StringKind},
		table.Column{TableName: "orders", Name: "amount", Kind: value.IntKind},
	))
	for i := 1; i <= 5000; i++ {
		orders.AddRow(table.NewRow(
			value.Int(int64(i)),
			value.Int(int64(i%1000+1)),
			value.Str(fmt.Sprintf("Product%d", i%100+1)),
			value.Int(int64(10+i%500)),
		))
	}
}

// SeedDemoStatistics installs the canonical demo statistics for the
// "users" and "orders" tables, matching the cost model's ground-truth
// fixture values.
func SeedDemoStatistics(c *Catalog) {
	users := NewTableStatistics(1000, 10, 120)
	users.ColumnSelectivity["age > 25"] = 0.88
	users.ColumnSelectivity["age < 30"] = 0.20
	users.DistinctValues["id"] = 1000
	users.DistinctValues["age"] = 50
	users.DistinctValues["city"] = 10
	c.SetStatistics("users", users)

	orders := NewTableStatistics(5000, 50, 80)
	orders.ColumnSelectivity["amount > 100"] = 0.30
	orders.DistinctValues["id"] = 5000
	orders.DistinctValues["user_id"] = 1000
	orders.DistinctValues["product"] = 100
	c.SetStatistics("orders", orders)
}
