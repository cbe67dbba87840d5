// Package tabular reads and writes comma-separated tables as raw string cells.
package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dafibh/fortuna/fortuna-dashboard/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV parses a CSV stream whose first record is the header. Quotes are
// read leniently so one odd row does not reject the whole file.
// Short rows are padded with empty cells and long rows are truncated so that
// every row matches the header width.
func ReadCSV(r io.Reader) (*domain.RawTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	// a stray quote inside a field is read as a literal character
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, domain.ErrEmptyDataset
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCSV, err)
	}

	table := &domain.RawTable{
		Columns: uniqueColumnNames(header),
		Rows:    [][]string{},
	}
	width := len(table.Columns)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCSV, err)
		}
		row := make([]string, width)
		copy(row, record)
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// WriteCSV writes a header and rows as CSV
func WriteCSV(w io.Writer, columns []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	return nil
}

// uniqueColumnNames names blank headers "Unnamed: N" and suffixes repeated
// names with ".1", ".2", ... so every column is addressable by name.
func uniqueColumnNames(header []string) []string {
	names := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, raw := range header {
		base := raw
		if strings.TrimSpace(base) == "" {
			base = "Unnamed: " + strconv.Itoa(i)
		}
		name := base
		for {
			if _, taken := seen[name]; !taken {
				break
			}
			seen[base]++
			name = base + "." + strconv.Itoa(seen[base])
		}
		seen[name] = 0
		names[i] = name
	}
	return names
}
