package service

import (
	"strings"

	"github.com/dafibh/fortuna/fortuna-dashboard/internal/domain"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/tabular"
)

// SampleFilename is reported for datasets loaded from the bundled sample
const SampleFilename = "sample_transactions.csv"

// SampleCSV is the bundled example dataset
const SampleCSV = `Date,Category,Amount,Note
2025-01-01,Groceries,120.50,Supermarket
2025-01-02,Rent,950.00,January rent
2025-01-03,Entertainment,45.00,Movie night
2025-01-05,Transport,60.00,Subway pass
2025-01-07,Groceries,80.00,Groceries
2025-01-10,Utilities,130.00,Hydro
2025-01-12,Entertainment,100.00,Concert
2025-01-15,Rent,950.00,Mid-month rent (example)
2025-01-18,Transport,50.00,Uber
2025-01-20,Savings,300.00,Transfer to savings
`

// SampleTable parses SampleCSV
func SampleTable() *domain.RawTable {
	table, err := tabular.ReadCSV(strings.NewReader(SampleCSV))
	if err != nil {
		panic("sample dataset is invalid: " + err.Error())
	}
	return table
}
