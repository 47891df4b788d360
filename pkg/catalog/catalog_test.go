package catalog

import "testing"

func TestLookupMissingTable(t *testing.T) {
	c := New()
	if _, err := c.Lookup("missing"); err == nil {
		t.Fatal("expected an error for a missing table")
	}
}

func TestGetStatisticsDefault(t *testing.T) {
	c := New()
	stats := c.GetStatistics("missing")
	if stats.TupleCount != 1000 || stats.PageCount != 10 || stats.TupleWidth != 100 {
		t.Errorf("default stats = %+v, want (1000, 10, 100)", stats)
	}
}

func TestPopulateSampleData(t *testing.T) {
	c := New()
	PopulateSampleData(c)

	users, err := c.Lookup("users")
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	if users.RowCount() != 1000 {
		t.Errorf("users row count = %d, want 1000", users.RowCount())
	}

	orders, err := c.Lookup("orders")
	if err != nil {
		t.Fatalf("orders: %v", err)
	}
	if orders.RowCount() != 5000 {
		t.Errorf("orders row count = %d, want 5000", orders.RowCount())
	}

	firstUser := users.Rows[0]
	id, _ := firstUser.Values[0].AsInt()
	age, _ := firstUser.Values[2].AsInt()
	if id != 1 || age != 21 {
		t.Errorf("first user (id, age) = (%d, %d), want (1, 21)", id, age)
	}
}

func TestSeedDemoStatistics(t *testing.T) {
	c := New()
	SeedDemoStatistics(c)

	users := c.GetStatistics("users")
	if users.ColumnSelectivity["age > 25"] != 0.88 {
		t.Errorf("users age>25 selectivity = %v, want 0.88", users.ColumnSelectivity["age > 25"])
	}
	if users.DistinctValues["city"] != 10 {
		t.Errorf("users distinct city = %d, want 10", users.DistinctValues["city"])
	}

	orders := c.GetStatistics("orders")
	if orders.TupleCount != 5000 {
		t.Errorf("orders tuple count = %d, want 5000", orders.TupleCount)
	}
}
