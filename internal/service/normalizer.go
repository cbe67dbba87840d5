package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

// SuggestColumns applies the column-name heuristic: names containing "date"
// are date candidates, "cat" category candidates and "amount", "amt" or
// "value" amount candidates (case-insensitive). A role with no match offers
// every column.
func SuggestColumns(columns []string) domain.ColumnCandidates {
	return domain.ColumnCandidates{
		Date:     candidatesFor(columns, "date"),
		Category: candidatesFor(columns, "cat"),
		Amount:   candidatesFor(columns, "amount", "amt", "value"),
	}
}

func candidatesFor(columns []string, needles ...string) []string {
	var matches []string
	for _, c := range columns {
		lower := strings.ToLower(c)
		for _, n := range needles {
			if strings.Contains(lower, n) {
				matches = append(matches, c)
				break
			}
		}
	}
	if len(matches) == 0 {
		return append([]string(nil), columns...)
	}
	return matches
}

// DefaultMapping picks the pre-selected column for each role: the first date
// candidate, the second category candidate when there is more than one and
// the third amount candidate when there are more than two.
func DefaultMapping(candidates domain.ColumnCandidates) domain.ColumnMapping {
	return domain.ColumnMapping{
		Date:     pick(candidates.Date, 0),
		Category: pick(candidates.Category, 1),
		Amount:   pick(candidates.Amount, 2),
	}
}

func pick(options []string, index int) string {
	if len(options) == 0 {
		return ""
	}
	if len(options) > index {
		return options[index]
	}
	return options[0]
}

// ResolveMapping fills unset roles of mapping with the defaults for columns
func ResolveMapping(columns []string, mapping domain.ColumnMapping) domain.ColumnMapping {
	defaults := DefaultMapping(SuggestColumns(columns))
	if mapping.Date == "" {
		mapping.Date = defaults.Date
	}
	if mapping.Category == "" {
		mapping.Category = defaults.Category
	}
	if mapping.Amount == "" {
		mapping.Amount = defaults.Amount
	}
	return mapping
}

// schemaColumn is one column of the normalized table and the raw cell it reads
type schemaColumn struct {
	name   string
	source int
}

// Normalize renames the mapped columns to Date, Category and Amount, parses
// dates and amounts and trims categories. Rows whose date or amount cannot be
// parsed are dropped and counted, never reported as errors. The only error is
// a mapping that names a column the table does not have.
func Normalize(raw *domain.RawTable, mapping domain.ColumnMapping) (*domain.TransactionTable, error) {
	dateIdx, err := columnIndex(raw, mapping.Date)
	if err != nil {
		return nil, err
	}
	catIdx, err := columnIndex(raw, mapping.Category)
	if err != nil {
		return nil, err
	}
	amtIdx, err := columnIndex(raw, mapping.Amount)
	if err != nil {
		return nil, err
	}

	schema := buildSchema(raw.Columns, dateIdx, catIdx, amtIdx)
	columns := make([]string, len(schema))
	for i, col := range schema {
		columns[i] = col.name
	}

	table := &domain.TransactionTable{
		Columns: columns,
		Rows:    make([]domain.Transaction, 0, len(raw.Rows)),
	}

	for _, record := range raw.Rows {
		date, ok := parseDate(cell(record, dateIdx))
		if !ok {
			table.DroppedRows++
			continue
		}
		amount, ok := parseAmount(cell(record, amtIdx))
		if !ok {
			table.DroppedRows++
			continue
		}

		cells := make([]string, len(schema))
		for i, col := range schema {
			cells[i] = cell(record, col.source)
		}

		table.Rows = append(table.Rows, domain.Transaction{
			Date:     date,
			Category: strings.TrimSpace(cell(record, catIdx)),
			Amount:   amount,
			Cells:    cells,
		})
	}

	return table, nil
}

func columnIndex(raw *domain.RawTable, name string) (int, error) {
	idx := raw.ColumnIndex(name)
	if idx < 0 {
		return -1, fmt.Errorf("%w: %q", domain.ErrColumnNotFound, name)
	}
	return idx, nil
}

// buildSchema renames the mapped columns in place. Unmapped columns that
// already carry a canonical name would be ambiguous after the rename and are
// left out.
func buildSchema(columns []string, dateIdx, catIdx, amtIdx int) []schemaColumn {
	schema := make([]schemaColumn, 0, len(columns))
	for i, name := range columns {
		mapped := false
		if i == dateIdx {
			schema = append(schema, schemaColumn{name: domain.ColumnDate, source: i})
			mapped = true
		}
		if i == catIdx {
			schema = append(schema, schemaColumn{name: domain.ColumnCategory, source: i})
			mapped = true
		}
		if i == amtIdx {
			schema = append(schema, schemaColumn{name: domain.ColumnAmount, source: i})
			mapped = true
		}
		if mapped || isCanonical(name) {
			continue
		}
		schema = append(schema, schemaColumn{name: name, source: i})
	}
	return schema
}

func isCanonical(name string) bool {
	return name == domain.ColumnDate || name == domain.ColumnCategory || name == domain.ColumnAmount
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}

// parseDate accepts any layout dateparse understands; values without a zone are read as UTC
func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// maxAmountScale bounds the number of fractional digits an amount may carry.
// Finer values are read through float64 so a tiny exponent cannot blow up
// later rescaling.
const maxAmountScale = 64

// parseAmount accepts plain decimal numbers, optionally signed or in exponent
// form. Values that overflow a float64 are not finite and are rejected.
func parseAmount(value string) (decimal.Decimal, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, false
	}

	// decimal accepts any exponent; ParseFloat saturates to ±Inf on overflow
	f, err := strconv.ParseFloat(value, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return decimal.Zero, false
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, false
	}
	if amount.Exponent() < -maxAmountScale {
		return decimal.NewFromFloat(f), true
	}
	return amount, true
}
