package service

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/dafibh/fortuna/fortuna-dashboard/internal/domain"
)

func TestSuggestColumns(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		want    domain.ColumnCandidates
	}{
		{
			name:    "canonical names",
			columns: []string{"Date", "Category", "Amount", "Note"},
			want: domain.ColumnCandidates{
				Date:     []string{"Date"},
				Category: []string{"Category"},
				Amount:   []string{"Amount"},
			},
		},
		{
			name:    "case-insensitive substrings",
			columns: []string{"Posted DATE", "Sub-category", "amt", "Value (USD)"},
			want: domain.ColumnCandidates{
				Date:     []string{"Posted DATE"},
				Category: []string{"Sub-category"},
				Amount:   []string{"amt", "Value (USD)"},
			},
		},
		{
			name:    "no match offers every column",
			columns: []string{"When", "What", "HowMuch"},
			want: domain.ColumnCandidates{
				Date:     []string{"When", "What", "HowMuch"},
				Category: []string{"When", "What", "HowMuch"},
				Amount:   []string{"When", "What", "HowMuch"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestColumns(tt.columns)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SuggestColumns() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDefaultMapping(t *testing.T) {
	// Every role falls back to all columns; date takes the first, category
	// the second and amount the third.
	got := DefaultMapping(SuggestColumns([]string{"When", "What", "HowMuch", "Memo"}))
	want := domain.ColumnMapping{Date: "When", Category: "What", Amount: "HowMuch"}
	if got != want {
		t.Errorf("DefaultMapping() = %+v, want %+v", got, want)
	}

	// Single candidates are used regardless of index
	got = DefaultMapping(SuggestColumns([]string{"Date", "Category", "Amount"}))
	want = domain.ColumnMapping{Date: "Date", Category: "Category", Amount: "Amount"}
	if got != want {
		t.Errorf("DefaultMapping() = %+v, want %+v", got, want)
	}
}

func TestResolveMapping_KeepsExplicitRoles(t *testing.T) {
	columns := []string{"Date", "Category", "Amount", "Other Amount"}
	got := ResolveMapping(columns, domain.ColumnMapping{Amount: "Other Amount"})
	want := domain.ColumnMapping{Date: "Date", Category: "Category", Amount: "Other Amount"}
	if got != want {
		t.Errorf("ResolveMapping() = %+v, want %+v", got, want)
	}
}

func TestNormalize_DropsOnlyInvalidRows(t *testing.T) {
	table := normalized(t, `Date,Category,Amount
2025-01-01,Groceries,10
2025-01-02,Rent,abc
not-a-date,Transport,5
2025-01-03,Fun,7.25
,Empty,1
2025-01-04,Blank,
`)

	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}
	if table.DroppedRows != 4 {
		t.Errorf("DroppedRows = %d, want 4", table.DroppedRows)
	}
	if table.Rows[0].Category != "Groceries" || table.Rows[1].Category != "Fun" {
		t.Errorf("kept rows = %q, %q, want Groceries, Fun", table.Rows[0].Category, table.Rows[1].Category)
	}
	if table.Rows[1].Amount.String() != "7.25" {
		t.Errorf("Amount = %s, want 7.25", table.Rows[1].Amount)
	}
	for _, row := range table.Rows {
		if row.Date.IsZero() {
			t.Errorf("row %+v has a missing date", row)
		}
	}
}

func TestNormalize_ParsesDateFormats(t *testing.T) {
	tests := []struct {
		value string
		want  time.Time
	}{
		{"2025-01-15", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"01/15/2025", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"Jan 15, 2025", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"2025-01-15 08:30:00", time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC)},
		{"2025-01-15T08:30:00Z", time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, ok := parseDate(tt.value)
			if !ok {
				t.Fatalf("parseDate(%q) failed", tt.value)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseDate(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}

	if _, ok := parseDate("not-a-date"); ok {
		t.Error("parseDate(not-a-date) should fail")
	}
}

func TestNormalize_ParsesAmounts(t *testing.T) {
	tests := []struct {
		value  string
		want   string
		wantOK bool
	}{
		{"12.50", "12.5", true},
		{" -3 ", "-3", true},
		{"+4", "4", true},
		{"1e2", "100", true},
		{"abc", "", false},
		{"12a", "", false},
		{"$12", "", false},
		{"1,200", "", false},
		{"", "", false},
		{"1e400", "", false},
		{"-1e400", "", false},
		{"1e50000000", "", false},
		{"1e300", "1" + strings.Repeat("0", 300), true},
		{"1e-400", "0", true},
		{"1e-50000000", "0", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, ok := parseAmount(tt.value)
			if ok != tt.wantOK {
				t.Fatalf("parseAmount(%q) ok = %v, want %v", tt.value, ok, tt.wantOK)
			}
			if ok && got.String() != tt.want {
				t.Errorf("parseAmount(%q) = %s, want %s", tt.value, got, tt.want)
			}
		})
	}
}

func TestNormalize_DropsNonFiniteAmounts(t *testing.T) {
	table := normalized(t, `Date,Category,Amount
2025-01-01,Groceries,10
2025-01-02,Rent,1e50000000
2025-01-03,Fun,-1e400
2025-01-04,Transport,5
`)

	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}
	if table.DroppedRows != 2 {
		t.Errorf("DroppedRows = %d, want 2", table.DroppedRows)
	}
	if got := table.Total().String(); got != "15" {
		t.Errorf("Total() = %s, want 15", got)
	}
}

func TestNormalize_TrimsCategoryAndKeepsEmpty(t *testing.T) {
	table := normalized(t, "Date,Category,Amount\n2025-01-01,  Food  ,1\n2025-01-02,,2\n")

	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}
	if table.Rows[0].Category != "Food" {
		t.Errorf("Category = %q, want Food", table.Rows[0].Category)
	}
	if table.Rows[1].Category != "" {
		t.Errorf("Category = %q, want empty", table.Rows[1].Category)
	}
}

func TestNormalize_RenamesMappedColumns(t *testing.T) {
	raw := rawTable(t, "When,What,HowMuch,Memo\n2025-02-01,Coffee,3.50,latte\n")

	table, err := Normalize(raw, domain.ColumnMapping{Date: "When", Category: "What", Amount: "HowMuch"})
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	want := []string{"Date", "Category", "Amount", "Memo"}
	if !reflect.DeepEqual(table.Columns, want) {
		t.Errorf("Columns = %v, want %v", table.Columns, want)
	}
	if !reflect.DeepEqual(table.Rows[0].Cells, []string{"2025-02-01", "Coffee", "3.50", "latte"}) {
		t.Errorf("Cells = %v", table.Rows[0].Cells)
	}
}

func TestNormalize_DropsShadowedCanonicalColumns(t *testing.T) {
	raw := rawTable(t, "Posted,Category,Amount,Group\n2025-02-01,ignored,3,Coffee\n")

	table, err := Normalize(raw, domain.ColumnMapping{Date: "Posted", Category: "Group", Amount: "Amount"})
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	want := []string{"Date", "Amount", "Category"}
	if !reflect.DeepEqual(table.Columns, want) {
		t.Errorf("Columns = %v, want %v", table.Columns, want)
	}
	if table.Rows[0].Category != "Coffee" {
		t.Errorf("Category = %q, want Coffee", table.Rows[0].Category)
	}
}

func TestNormalize_UnknownColumn(t *testing.T) {
	raw := rawTable(t, scenarioCSV)

	_, err := Normalize(raw, domain.ColumnMapping{Date: "Date", Category: "Category", Amount: "Missing"})
	if !errors.Is(err, domain.ErrColumnNotFound) {
		t.Errorf("Normalize() error = %v, want ErrColumnNotFound", err)
	}
}
