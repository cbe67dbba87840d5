package service

import (
	"fmt"
	"io"

	"github.com/dafibh/fortuna/fortuna-dashboard/internal/domain"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/tabular"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/util"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const (
	ExportCSVFilename  = "filtered_transactions.csv"
	ExportXLSXFilename = "filtered_transactions.xlsx"

	transactionsSheet = "Transactions"
	categoriesSheet   = "Categories"

	// numFmtAmount is the built-in "#,##0.00" number format
	numFmtAmount = 4
)

// ExportService serializes the filtered table of a session's dashboard
type ExportService struct {
	dashboardService *DashboardService
}

// NewExportService creates a new ExportService
func NewExportService(dashboardService *DashboardService) *ExportService {
	return &ExportService{dashboardService: dashboardService}
}

// ExportCSV writes the filtered rows, sorted by date, as CSV
func (s *ExportService) ExportCSV(sessionID uuid.UUID, opts domain.DashboardOptions, w io.Writer) error {
	dashboard, err := s.dashboardService.GetDashboard(sessionID, opts)
	if err != nil {
		return err
	}

	columns, rows := ExportRows(dashboard.Filtered)
	if err := tabular.WriteCSV(w, columns, rows); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}

	log.Debug().
		Str("session_id", sessionID.String()).
		Int("rows", len(rows)).
		Msg("Exported CSV")
	return nil
}

// ExportXLSX writes a workbook with the filtered rows and the category totals
func (s *ExportService) ExportXLSX(sessionID uuid.UUID, opts domain.DashboardOptions, w io.Writer) error {
	dashboard, err := s.dashboardService.GetDashboard(sessionID, opts)
	if err != nil {
		return err
	}

	f, err := BuildWorkbook(dashboard)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}

	log.Debug().
		Str("session_id", sessionID.String()).
		Int("rows", dashboard.Filtered.Len()).
		Msg("Exported XLSX")
	return nil
}

// ExportRows returns the header and the string rows of table sorted by date.
// Date, Category and Amount cells are written from their parsed values; the
// other cells are passed through unchanged.
func ExportRows(table *domain.TransactionTable) ([]string, [][]string) {
	if table == nil {
		return []string{domain.ColumnDate, domain.ColumnCategory, domain.ColumnAmount}, [][]string{}
	}

	sorted := SortedByDate(table)
	rows := make([][]string, len(sorted))
	for i, tx := range sorted {
		row := make([]string, len(table.Columns))
		for j, name := range table.Columns {
			switch name {
			case domain.ColumnDate:
				row[j] = formatExportDate(tx)
			case domain.ColumnCategory:
				row[j] = tx.Category
			case domain.ColumnAmount:
				row[j] = tx.Amount.String()
			default:
				if j < len(tx.Cells) {
					row[j] = tx.Cells[j]
				}
			}
		}
		rows[i] = row
	}
	return table.Columns, rows
}

func formatExportDate(tx domain.Transaction) string {
	if tx.Date.Equal(util.StartOfDay(tx.Date)) {
		return util.FormatDate(tx.Date)
	}
	return tx.Date.Format("2006-01-02 15:04:05")
}

// BuildWorkbook lays out the dashboard's filtered rows and category totals as
// two sheets. The caller closes the returned file.
func BuildWorkbook(dashboard *domain.Dashboard) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", transactionsSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E7FF"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create style: %w", err)
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmtAmount})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create style: %w", err)
	}

	if err := writeTransactionsSheet(f, dashboard.Filtered, headerStyle, amountStyle); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeCategoriesSheet(f, dashboard.Categories, headerStyle, amountStyle); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func writeTransactionsSheet(f *excelize.File, table *domain.TransactionTable, headerStyle, amountStyle int) error {
	columns, rows := ExportRows(table)
	amountCol := -1
	for i, name := range columns {
		if name == domain.ColumnAmount {
			amountCol = i
		}
	}

	if err := setRow(f, transactionsSheet, 1, toInterfaces(columns)); err != nil {
		return err
	}
	if err := styleRow(f, transactionsSheet, 1, len(columns), headerStyle); err != nil {
		return err
	}

	sorted := SortedByDate(table)
	for i, row := range rows {
		values := toInterfaces(row)
		if amountCol >= 0 {
			values[amountCol] = sorted[i].Amount.InexactFloat64()
		}
		if err := setRow(f, transactionsSheet, i+2, values); err != nil {
			return err
		}
	}

	if amountCol >= 0 && len(rows) > 0 {
		first, _ := excelize.CoordinatesToCellName(amountCol+1, 2)
		last, _ := excelize.CoordinatesToCellName(amountCol+1, len(rows)+1)
		if err := f.SetCellStyle(transactionsSheet, first, last, amountStyle); err != nil {
			return fmt.Errorf("style amounts: %w", err)
		}
	}
	return nil
}

func writeCategoriesSheet(f *excelize.File, slices []domain.CategorySlice, headerStyle, amountStyle int) error {
	if _, err := f.NewSheet(categoriesSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	header := []interface{}{"Rank", domain.ColumnCategory, "Total", "Share %"}
	if err := setRow(f, categoriesSheet, 1, header); err != nil {
		return err
	}
	if err := styleRow(f, categoriesSheet, 1, len(header), headerStyle); err != nil {
		return err
	}

	for i, slice := range slices {
		values := []interface{}{
			i + 1,
			slice.Category,
			slice.Total.InexactFloat64(),
			slice.Share.Round(1).InexactFloat64(),
		}
		if err := setRow(f, categoriesSheet, i+2, values); err != nil {
			return err
		}
	}

	if len(slices) > 0 {
		if err := f.SetCellStyle(categoriesSheet, "C2", fmt.Sprintf("C%d", len(slices)+1), amountStyle); err != nil {
			return fmt.Errorf("style totals: %w", err)
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func styleRow(f *excelize.File, sheet string, row, width, style int) error {
	if width == 0 {
		return nil
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(width, row)
	if err := f.SetCellStyle(sheet, first, last, style); err != nil {
		return fmt.Errorf("style %s header: %w", sheet, err)
	}
	return nil
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
