package service

import (
	"errors"
	"testing"
	"time"

	"github.com/dafibh/fortuna/fortuna-dashboard/internal/domain"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDashboardService() (*DashboardService, *testutil.MockDatasetRepository) {
	repo := testutil.NewMockDatasetRepository()
	return NewDashboardService(repo, "$", domain.DefaultRollingWindow), repo
}

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestDashboardService_Render_SampleDefaults(t *testing.T) {
	svc, _ := newTestDashboardService()

	dashboard, err := svc.Render(SampleTable(), domain.DashboardOptions{})
	require.NoError(t, err)

	assert.True(t, dashboard.HasData())
	assert.Equal(t, domain.ColumnMapping{Date: "Date", Category: "Category", Amount: "Amount"}, dashboard.Filter.Mapping)
	assert.Equal(t, day(1), dashboard.Filter.StartDate)
	assert.Equal(t, day(20), dashboard.Filter.EndDate)
	assert.Equal(t, domain.GranularityDaily, dashboard.Filter.Granularity)
	assert.Equal(t, domain.DefaultRollingWindow, dashboard.Filter.RollingWindow)
	assert.Equal(t,
		[]string{"Entertainment", "Groceries", "Rent", "Savings", "Transport", "Utilities"},
		dashboard.Filter.AvailableCategories)
	assert.Equal(t, dashboard.Filter.AvailableCategories, dashboard.Filter.SelectedCategories)

	assert.Equal(t, 10, dashboard.Summary.RawRows)
	assert.Equal(t, 10, dashboard.Summary.ValidRows)
	assert.Equal(t, 0, dashboard.Summary.DroppedRows)
	assert.Equal(t, 10, dashboard.Summary.FilteredRows)
	assert.Equal(t, "2785.5", dashboard.Summary.Total.String())

	assert.Len(t, dashboard.Trend, 10)
	assert.Len(t, dashboard.Cumulative, 10)

	require.Len(t, dashboard.TopCategories, 6)
	assert.Equal(t, 1, dashboard.TopCategories[0].Rank)
	assert.Equal(t, "Rent", dashboard.TopCategories[0].Category)
	assert.Equal(t, "$1,900.00", dashboard.TopCategories[0].Display)
	assert.Equal(t, "Savings", dashboard.TopCategories[1].Category)
	assert.Equal(t, "$200.50", dashboard.TopCategories[2].Display)
}

func TestDashboardService_Render_Scenario(t *testing.T) {
	svc, _ := newTestDashboardService()

	dashboard, err := svc.Render(rawTable(t, scenarioCSV), domain.DashboardOptions{RollingWindow: 2})
	require.NoError(t, err)

	require.Len(t, dashboard.Trend, 2)
	assert.Equal(t, "30", dashboard.Trend[0].Total.String())
	assert.Equal(t, "30", dashboard.Trend[0].RollingAverage.String())
	assert.Equal(t, "5", dashboard.Trend[1].Total.String())
	assert.Equal(t, "17.5", dashboard.Trend[1].RollingAverage.String())

	require.Len(t, dashboard.Categories, 2)
	assert.Equal(t, "Rent", dashboard.Categories[0].Category)
	assert.Equal(t, "20", dashboard.Categories[0].Total.String())
	assert.Equal(t, "57.14", dashboard.Categories[0].Share.StringFixed(2))
}

func TestDashboardService_Render_Filters(t *testing.T) {
	svc, _ := newTestDashboardService()
	categories := []string{"Rent", "Transport"}

	dashboard, err := svc.Render(SampleTable(), domain.DashboardOptions{
		StartDate:   datePtr(day(5)),
		EndDate:     datePtr(day(15)),
		Categories:  &categories,
		Granularity: domain.GranularityMonthly,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, dashboard.Summary.FilteredRows)
	assert.Equal(t, "1010", dashboard.Summary.Total.String())
	assert.Equal(t,
		[]string{"Entertainment", "Groceries", "Rent", "Transport", "Utilities"},
		dashboard.Filter.AvailableCategories, "available categories come from the date range")
	require.Len(t, dashboard.Trend, 1)
	assert.Equal(t, day(1), dashboard.Trend[0].Bucket)
}

func TestDashboardService_Render_EmptySelection(t *testing.T) {
	svc, _ := newTestDashboardService()
	none := []string{}

	dashboard, err := svc.Render(SampleTable(), domain.DashboardOptions{Categories: &none})
	require.NoError(t, err)

	assert.False(t, dashboard.HasData())
	assert.Empty(t, dashboard.Trend)
	assert.Empty(t, dashboard.Categories)
	assert.Empty(t, dashboard.Cumulative)
	assert.Empty(t, dashboard.TopCategories)
	assert.True(t, dashboard.Summary.Total.IsZero())
	assert.NotEmpty(t, dashboard.Filter.AvailableCategories)
}

func TestDashboardService_Render_DropsInvalidRows(t *testing.T) {
	svc, _ := newTestDashboardService()
	raw := rawTable(t, `Date,Category,Amount
2025-01-01,Groceries,10
2025-01-02,Rent,abc
not-a-date,Fun,99
2025-01-03,Groceries,5
`)

	dashboard, err := svc.Render(raw, domain.DashboardOptions{})
	require.NoError(t, err)

	assert.Equal(t, 4, dashboard.Summary.RawRows)
	assert.Equal(t, 2, dashboard.Summary.ValidRows)
	assert.Equal(t, 2, dashboard.Summary.DroppedRows)
	assert.Equal(t, "15", dashboard.Summary.Total.String())
	assert.Equal(t, []string{"Groceries"}, dashboard.Filter.AvailableCategories)
}

func TestDashboardService_Render_Errors(t *testing.T) {
	svc, _ := newTestDashboardService()

	tests := []struct {
		name    string
		opts    domain.DashboardOptions
		wantErr error
	}{
		{
			name:    "window too large",
			opts:    domain.DashboardOptions{RollingWindow: 31},
			wantErr: domain.ErrInvalidWindow,
		},
		{
			name:    "negative window",
			opts:    domain.DashboardOptions{RollingWindow: -1},
			wantErr: domain.ErrInvalidWindow,
		},
		{
			name:    "unknown granularity",
			opts:    domain.DashboardOptions{Granularity: "weekly"},
			wantErr: domain.ErrInvalidGranularity,
		},
		{
			name:    "start after end",
			opts:    domain.DashboardOptions{StartDate: datePtr(day(10)), EndDate: datePtr(day(2))},
			wantErr: domain.ErrInvalidDateRange,
		},
		{
			name:    "unknown column",
			opts:    domain.DashboardOptions{Mapping: domain.ColumnMapping{Amount: "Cost"}},
			wantErr: domain.ErrColumnNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Render(SampleTable(), tt.opts)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDashboardService_Render_IsStateless(t *testing.T) {
	svc, _ := newTestDashboardService()
	raw := SampleTable()
	rent := []string{"Rent"}

	_, err := svc.Render(raw, domain.DashboardOptions{Categories: &rent})
	require.NoError(t, err)
	again, err := svc.Render(raw, domain.DashboardOptions{})
	require.NoError(t, err)

	assert.Equal(t, 10, again.Summary.FilteredRows)
}

func TestDashboardService_GetDashboard(t *testing.T) {
	svc, repo := newTestDashboardService()
	sessionID := uuid.New()

	_, err := svc.GetDashboard(sessionID, domain.DashboardOptions{})
	assert.ErrorIs(t, err, domain.ErrNoDataset)

	repo.AddDataset(&domain.Dataset{SessionID: sessionID, Table: SampleTable()})
	dashboard, err := svc.GetDashboard(sessionID, domain.DashboardOptions{})
	require.NoError(t, err)
	assert.Equal(t, 10, dashboard.Summary.FilteredRows)

	repo.GetErr = errors.New("boom")
	_, err = svc.GetDashboard(sessionID, domain.DashboardOptions{})
	assert.EqualError(t, err, "boom")
}
