package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NoDataMessage is shown in place of a chart when the filters match nothing
const NoDataMessage = "No data for the selected filters."

// DashboardOptions carries the widget values of one interaction.
// Nil pointers mean "use the default for the loaded data".
type DashboardOptions struct {
	Mapping       ColumnMapping
	StartDate     *time.Time
	EndDate       *time.Time
	Categories    *[]string
	Granularity   Granularity
	RollingWindow int
}

// AppliedFilter reports the effective filter after defaults were resolved
type AppliedFilter struct {
	Mapping             ColumnMapping
	StartDate           time.Time
	EndDate             time.Time
	MinDate             time.Time
	MaxDate             time.Time
	SelectedCategories  []string
	AvailableCategories []string
	Granularity         Granularity
	RollingWindow       int
}

// DashboardSummary holds headline counts and totals
type DashboardSummary struct {
	RawRows      int
	ValidRows    int
	DroppedRows  int
	FilteredRows int
	Total        decimal.Decimal
}

// TrendPoint is one bucket of the trend chart
type TrendPoint struct {
	Bucket         time.Time
	Total          decimal.Decimal
	RollingAverage decimal.Decimal
}

// CategorySlice is one slice of the category pie chart
type CategorySlice struct {
	Category string
	Total    decimal.Decimal
	Share    decimal.Decimal // percent of the filtered total
}

// TopCategoryRow is one row of the top-categories table
type TopCategoryRow struct {
	Rank     int
	Category string
	Total    decimal.Decimal
	Display  string
}

// Dashboard is everything the presentation layer needs for one render
type Dashboard struct {
	Filter        AppliedFilter
	Summary       DashboardSummary
	Trend         []TrendPoint
	Categories    []CategorySlice
	Cumulative    []CumulativePoint
	TopCategories []TopCategoryRow
	// Filtered is the filtered table in input order, used by exports
	Filtered *TransactionTable
}

// HasData reports whether the filters matched at least one row
func (d *Dashboard) HasData() bool {
	return d.Summary.FilteredRows > 0
}
