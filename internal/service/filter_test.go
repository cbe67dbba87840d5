package service

import (
	"reflect"
	"testing"
	"time"

	"github.com/dafibh/fortuna/fortuna-dashboard/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func categoriesOf(table *domain.TransactionTable) []string {
	out := []string{}
	for _, row := range table.Rows {
		out = append(out, row.Category)
	}
	return out
}

func TestApplyFilter(t *testing.T) {
	table := normalized(t, `Date,Category,Amount
2025-01-01,Groceries,10
2025-01-03 18:45:00,Rent,20
2025-01-05,Groceries,5
2025-01-07,Fun,8
`)

	tests := []struct {
		name string
		spec domain.FilterSpec
		want []string
	}{
		{
			name: "inclusive bounds",
			spec: domain.NewFilterSpec(day(3), day(5), []string{"Groceries", "Rent", "Fun"}),
			want: []string{"Rent", "Groceries"},
		},
		{
			name: "category allow-list",
			spec: domain.NewFilterSpec(day(1), day(31), []string{"Groceries"}),
			want: []string{"Groceries", "Groceries"},
		},
		{
			name: "empty allow-list selects nothing",
			spec: domain.NewFilterSpec(day(1), day(31), []string{}),
			want: []string{},
		},
		{
			name: "unknown category",
			spec: domain.NewFilterSpec(day(1), day(31), []string{"Travel"}),
			want: []string{},
		},
		{
			name: "inverted range",
			spec: domain.NewFilterSpec(day(5), day(1), []string{"Groceries"}),
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := categoriesOf(ApplyFilter(table, tt.spec))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ApplyFilter() = %v, want %v", got, tt.want)
			}
		})
	}

	if table.Len() != 4 {
		t.Errorf("input table modified: Len() = %d, want 4", table.Len())
	}
}

func TestApplyFilter_Idempotent(t *testing.T) {
	table := normalized(t, scenarioCSV)
	spec := domain.NewFilterSpec(day(1), day(1), []string{"Groceries", "Rent"})

	once := ApplyFilter(table, spec)
	twice := ApplyFilter(once, spec)

	if !reflect.DeepEqual(once.Rows, twice.Rows) {
		t.Errorf("second application changed the result: %v vs %v", once.Rows, twice.Rows)
	}
}

func TestApplyFilter_SpecIsImmutable(t *testing.T) {
	categories := []string{"Rent"}
	spec := domain.NewFilterSpec(day(1), day(31), categories)
	categories[0] = "Groceries"

	got := categoriesOf(ApplyFilter(normalized(t, scenarioCSV), spec))
	if !reflect.DeepEqual(got, []string{"Rent"}) {
		t.Errorf("ApplyFilter() = %v, want [Rent]", got)
	}
}

func TestDistinctCategories(t *testing.T) {
	table := normalized(t, "Date,Category,Amount\n2025-01-01,b,1\n2025-01-02,a,1\n2025-01-03,b,1\n2025-01-04,,1\n")

	got := DistinctCategories(table)
	want := []string{"", "a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctCategories() = %q, want %q", got, want)
	}
}
