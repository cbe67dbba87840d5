package service

import (
	"sort"
	"time"

	"github.com/dafibh/fortuna/fortuna-dashboard/internal/domain"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/util"
)

// ApplyFilter returns the rows whose calendar date lies in
// [spec.StartDate, spec.EndDate] and whose category is in spec.Categories.
// The input table is not modified.
func ApplyFilter(table *domain.TransactionTable, spec domain.FilterSpec) *domain.TransactionTable {
	allowed := spec.CategorySet()
	rows := make([]domain.Transaction, 0, table.Len())
	if len(allowed) == 0 {
		return table.WithRows(rows)
	}
	for _, row := range table.Rows {
		if !util.DateBetween(row.Date, spec.StartDate, spec.EndDate) {
			continue
		}
		if _, ok := allowed[row.Category]; !ok {
			continue
		}
		rows = append(rows, row)
	}
	return table.WithRows(rows)
}

// FilterByDate keeps the rows whose calendar date lies in [start, end]
func FilterByDate(table *domain.TransactionTable, start, end time.Time) *domain.TransactionTable {
	rows := make([]domain.Transaction, 0, table.Len())
	for _, row := range table.Rows {
		if util.DateBetween(row.Date, start, end) {
			rows = append(rows, row)
		}
	}
	return table.WithRows(rows)
}

// DistinctCategories returns the categories present in table, sorted
func DistinctCategories(table *domain.TransactionTable) []string {
	seen := make(map[string]struct{})
	categories := []string{}
	for _, row := range table.Rows {
		if _, ok := seen[row.Category]; ok {
			continue
		}
		seen[row.Category] = struct{}{}
		categories = append(categories, row.Category)
	}
	sort.Strings(categories)
	return categories
}
