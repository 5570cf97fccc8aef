package query_test

import (
	"testing"

	"rukun/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.NewProjectionMap("citizens", "c").
		Project("id", "ID").
		Project("name", "Name").
		Project("tx_date", "Date")
}

func ptr(s string) *string { return &s }

func TestProjectionMapTable(t *testing.T) {
	p := testProjection()
	if got, want := p.Table(), "citizens c"; got != want {
		t.Errorf("Table() = %q, want %q", got, want)
	}
}

func TestProjectionMapColumns(t *testing.T) {
	p := testProjection()
	if got, want := p.Columns(), "c.id, c.name, c.tx_date"; got != want {
		t.Errorf("Columns() = %q, want %q", got, want)
	}
}

func TestProjectionMapColumnLookup(t *testing.T) {
	tests := []struct {
		name     string
		viewName string
		want     string
	}{
		{"mapped field", "Name", "c.name"},
		{"renamed field", "Date", "c.tx_date"},
		{"unmapped passthrough", "unknown", "unknown"},
	}

	p := testProjection()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Column(tt.viewName); got != tt.want {
				t.Errorf("Column(%q) = %q, want %q", tt.viewName, got, tt.want)
			}
		})
	}
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []query.SortField
	}{
		{"empty", "", nil},
		{"single ascending", "Name", []query.SortField{{Field: "Name"}}},
		{"descending prefix", "-Date", []query.SortField{{Field: "Date", Descending: true}}},
		{
			"mixed with whitespace",
			" Name , -Date ",
			[]query.SortField{{Field: "Name"}, {Field: "Date", Descending: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.ParseSortFields(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBuild(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).Build()
	want := "SELECT c.id, c.name, c.tx_date FROM citizens c"
	if sql != want {
		t.Errorf("Build() = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestBuildWithConditions(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).
		WhereEquals("Name", "Budi").
		WhereCompare("Date", ">=", "2024-03-01").
		Build()

	want := "SELECT c.id, c.name, c.tx_date FROM citizens c WHERE c.name = ? AND c.tx_date >= ?"
	if sql != want {
		t.Errorf("Build() = %q, want %q", sql, want)
	}
	if len(args) != 2 || args[0] != "Budi" || args[1] != "2024-03-01" {
		t.Errorf("args = %v", args)
	}
}

func TestBuildCount(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).
		WhereEquals("Name", "Budi").
		BuildCount()

	want := "SELECT COUNT(*) FROM citizens c WHERE c.name = ?"
	if sql != want {
		t.Errorf("BuildCount() = %q, want %q", sql, want)
	}
	if len(args) != 1 {
		t.Errorf("args = %v", args)
	}
}

func TestBuildPage(t *testing.T) {
	sql, _ := query.NewBuilder(testProjection(), query.SortField{Field: "Name"}).
		BuildPage(3, 10)

	want := "SELECT c.id, c.name, c.tx_date FROM citizens c ORDER BY c.name ASC LIMIT 10 OFFSET 20"
	if sql != want {
		t.Errorf("BuildPage() = %q, want %q", sql, want)
	}
}

func TestBuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).BuildSingle("ID", "abc")
	want := "SELECT c.id, c.name, c.tx_date FROM citizens c WHERE c.id = ?"
	if sql != want {
		t.Errorf("BuildSingle() = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "abc" {
		t.Errorf("args = %v", args)
	}
}

func TestOrderByOverridesDefault(t *testing.T) {
	sql, _ := query.NewBuilder(testProjection(), query.SortField{Field: "Name"}).
		OrderByFields([]query.SortField{{Field: "Date", Descending: true}}).
		Build()

	want := "SELECT c.id, c.name, c.tx_date FROM citizens c ORDER BY c.tx_date DESC"
	if sql != want {
		t.Errorf("Build() = %q, want %q", sql, want)
	}
}

func TestWhereContains(t *testing.T) {
	t.Run("adds a LIKE condition", func(t *testing.T) {
		sql, args := query.NewBuilder(testProjection()).
			WhereContains("Name", ptr("udi")).
			Build()

		want := "SELECT c.id, c.name, c.tx_date FROM citizens c WHERE c.name LIKE ?"
		if sql != want {
			t.Errorf("Build() = %q, want %q", sql, want)
		}
		if len(args) != 1 || args[0] != "%udi%" {
			t.Errorf("args = %v", args)
		}
	})

	t.Run("nil and empty are no-ops", func(t *testing.T) {
		sql, _ := query.NewBuilder(testProjection()).
			WhereContains("Name", nil).
			WhereContains("Name", ptr("")).
			Build()

		if sql != "SELECT c.id, c.name, c.tx_date FROM citizens c" {
			t.Errorf("Build() = %q", sql)
		}
	})
}

func TestWhereEqualsNilIgnored(t *testing.T) {
	var name *string
	sql, _ := query.NewBuilder(testProjection()).
		WhereEquals("Name", name).
		Build()

	if sql != "SELECT c.id, c.name, c.tx_date FROM citizens c" {
		t.Errorf("Build() = %q", sql)
	}
}

func TestWhereSearch(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).
		WhereSearch(ptr("melati"), "Name", "Date").
		Build()

	want := "SELECT c.id, c.name, c.tx_date FROM citizens c WHERE (c.name LIKE ? OR c.tx_date LIKE ?)"
	if sql != want {
		t.Errorf("Build() = %q, want %q", sql, want)
	}
	if len(args) != 2 || args[0] != "%melati%" {
		t.Errorf("args = %v", args)
	}
}

func TestWhereIn(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).
		WhereIn("Name", []any{"Budi", "Siti"}).
		Build()

	want := "SELECT c.id, c.name, c.tx_date FROM citizens c WHERE c.name IN (?, ?)"
	if sql != want {
		t.Errorf("Build() = %q, want %q", sql, want)
	}
	if len(args) != 2 {
		t.Errorf("args = %v", args)
	}
}
