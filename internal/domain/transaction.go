package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Canonical column names
const (
	ColumnDate     = "Date"
	ColumnCategory = "Category"
	ColumnAmount   = "Amount"
)

// Transaction is one normalized row. Cells holds the row's original cells
// aligned with TransactionTable.Columns.
type Transaction struct {
	Date     time.Time
	Category string
	Amount   decimal.Decimal
	Cells    []string
}

// TransactionTable is an ordered sequence of normalized rows.
// Row order is input order until explicitly sorted.
type TransactionTable struct {
	Columns     []string
	Rows        []Transaction
	DroppedRows int
}

// Len returns the number of rows
func (t *TransactionTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// IsEmpty reports whether the table has no rows
func (t *TransactionTable) IsEmpty() bool {
	return t.Len() == 0
}

// Total sums every amount in the table
func (t *TransactionTable) Total() decimal.Decimal {
	total := decimal.Zero
	if t == nil {
		return total
	}
	for _, row := range t.Rows {
		total = total.Add(row.Amount)
	}
	return total
}

// DateSpan returns the earliest and latest dates. ok is false for an empty table.
func (t *TransactionTable) DateSpan() (min, max time.Time, ok bool) {
	if t.IsEmpty() {
		return time.Time{}, time.Time{}, false
	}
	min, max = t.Rows[0].Date, t.Rows[0].Date
	for _, row := range t.Rows[1:] {
		if row.Date.Before(min) {
			min = row.Date
		}
		if row.Date.After(max) {
			max = row.Date
		}
	}
	return min, max, true
}

// WithRows returns a new table sharing the header but holding rows
func (t *TransactionTable) WithRows(rows []Transaction) *TransactionTable {
	return &TransactionTable{
		Columns:     t.Columns,
		Rows:        rows,
		DroppedRows: t.DroppedRows,
	}
}
