package service

import (
	"errors"
	"fmt"

	"github.com/dafibh/fortuna/fortuna-dashboard/internal/domain"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/util"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DashboardService runs the normalize, filter and aggregate pipeline
type DashboardService struct {
	datasetRepo    domain.DatasetRepository
	currencySymbol string
	defaultWindow  int
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(datasetRepo domain.DatasetRepository, currencySymbol string, defaultWindow int) *DashboardService {
	if defaultWindow < domain.MinRollingWindow || defaultWindow > domain.MaxRollingWindow {
		defaultWindow = domain.DefaultRollingWindow
	}
	return &DashboardService{
		datasetRepo:    datasetRepo,
		currencySymbol: currencySymbol,
		defaultWindow:  defaultWindow,
	}
}

// GetDashboard renders the dashboard for the dataset last loaded by a session
func (s *DashboardService) GetDashboard(sessionID uuid.UUID, opts domain.DashboardOptions) (*domain.Dashboard, error) {
	dataset, err := s.datasetRepo.Get(sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoDataset
		}
		return nil, err
	}

	dashboard, err := s.Render(dataset.Table, opts)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("session_id", sessionID.String()).
		Int("raw_rows", dashboard.Summary.RawRows).
		Int("dropped_rows", dashboard.Summary.DroppedRows).
		Int("filtered_rows", dashboard.Summary.FilteredRows).
		Msg("Dashboard rendered")

	return dashboard, nil
}

// Render recomputes every output from the raw table and the widget values.
// It keeps no state between calls.
func (s *DashboardService) Render(raw *domain.RawTable, opts domain.DashboardOptions) (*domain.Dashboard, error) {
	spec, err := s.aggregationSpec(opts)
	if err != nil {
		return nil, err
	}

	mapping := ResolveMapping(raw.Columns, opts.Mapping)
	table, err := Normalize(raw, mapping)
	if err != nil {
		return nil, err
	}

	minDate, maxDate, _ := table.DateSpan()
	start, end := util.StartOfDay(minDate), util.StartOfDay(maxDate)
	if opts.StartDate != nil {
		start = *opts.StartDate
	}
	if opts.EndDate != nil {
		end = *opts.EndDate
	}
	if start.After(end) {
		return nil, fmt.Errorf("%w: %s > %s", domain.ErrInvalidDateRange, util.FormatDate(start), util.FormatDate(end))
	}

	// Category choices come from the date-filtered rows
	available := DistinctCategories(FilterByDate(table, start, end))
	selected := available
	if opts.Categories != nil {
		selected = append([]string{}, (*opts.Categories)...)
	}

	filtered := ApplyFilter(table, domain.NewFilterSpec(start, end, selected))
	aggregates, err := Aggregate(filtered, spec)
	if err != nil {
		return nil, err
	}

	total := filtered.Total()
	return &domain.Dashboard{
		Filter: domain.AppliedFilter{
			Mapping:             mapping,
			StartDate:           start,
			EndDate:             end,
			MinDate:             util.StartOfDay(minDate),
			MaxDate:             util.StartOfDay(maxDate),
			SelectedCategories:  selected,
			AvailableCategories: available,
			Granularity:         spec.Granularity,
			RollingWindow:       spec.RollingWindow,
		},
		Summary: domain.DashboardSummary{
			RawRows:      len(raw.Rows),
			ValidRows:    table.Len(),
			DroppedRows:  table.DroppedRows,
			FilteredRows: filtered.Len(),
			Total:        total,
		},
		Trend:         trendPoints(aggregates),
		Categories:    categorySlices(aggregates.CategoryTotals, total),
		Cumulative:    aggregates.Cumulative,
		TopCategories: s.topCategories(aggregates.CategoryTotals),
		Filtered:      filtered,
	}, nil
}

func (s *DashboardService) aggregationSpec(opts domain.DashboardOptions) (domain.AggregationSpec, error) {
	spec := domain.AggregationSpec{
		Granularity:   opts.Granularity,
		RollingWindow: opts.RollingWindow,
	}
	if spec.Granularity == "" {
		spec.Granularity = domain.GranularityDaily
	}
	if spec.RollingWindow == 0 {
		spec.RollingWindow = s.defaultWindow
	}
	if spec.RollingWindow < domain.MinRollingWindow || spec.RollingWindow > domain.MaxRollingWindow {
		return spec, fmt.Errorf("%w: %d not in [%d, %d]", domain.ErrInvalidWindow,
			spec.RollingWindow, domain.MinRollingWindow, domain.MaxRollingWindow)
	}
	return spec, spec.Validate()
}

func trendPoints(aggregates *domain.Aggregates) []domain.TrendPoint {
	points := make([]domain.TrendPoint, len(aggregates.Buckets))
	for i, bucket := range aggregates.Buckets {
		points[i] = domain.TrendPoint{
			Bucket:         bucket.Bucket,
			Total:          bucket.Total,
			RollingAverage: aggregates.RollingAverage[i].Total,
		}
	}
	return points
}

func categorySlices(totals []domain.CategoryTotal, grandTotal decimal.Decimal) []domain.CategorySlice {
	slices := make([]domain.CategorySlice, len(totals))
	for i, ct := range totals {
		share := decimal.Zero
		if !grandTotal.IsZero() {
			share = ct.Total.Div(grandTotal).Mul(hundred)
		}
		slices[i] = domain.CategorySlice{
			Category: ct.Category,
			Total:    ct.Total,
			Share:    share,
		}
	}
	return slices
}

func (s *DashboardService) topCategories(totals []domain.CategoryTotal) []domain.TopCategoryRow {
	rows := make([]domain.TopCategoryRow, len(totals))
	for i, ct := range totals {
		rows[i] = domain.TopCategoryRow{
			Rank:     i + 1,
			Category: ct.Category,
			Total:    ct.Total,
			Display:  util.FormatCurrency(s.currencySymbol, ct.Total),
		}
	}
	return rows
}
