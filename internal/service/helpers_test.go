package service

import (
	"strings"
	"testing"

	"github.com/dafibh/fortuna/fortuna-dashboard/internal/domain"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/tabular"
)

// rawTable parses csv or fails the test
func rawTable(t *testing.T, csv string) *domain.RawTable {
	t.Helper()
	table, err := tabular.ReadCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	return table
}

// normalized parses csv and normalizes it with the default mapping
func normalized(t *testing.T, csv string) *domain.TransactionTable {
	t.Helper()
	raw := rawTable(t, csv)
	table, err := Normalize(raw, ResolveMapping(raw.Columns, domain.ColumnMapping{}))
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	return table
}

const scenarioCSV = `Date,Category,Amount
2025-01-01,Groceries,10
2025-01-01,Rent,20
2025-01-02,Groceries,5
`
