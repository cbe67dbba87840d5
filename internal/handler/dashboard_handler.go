package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dafibh/fortuna/fortuna-dashboard/internal/domain"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/service"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/util"
	"github.com/labstack/echo/v4"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// FilterResponse reports the filter the dashboard was computed with
type FilterResponse struct {
	Mapping             domain.ColumnMapping `json:"mapping"`
	StartDate           string               `json:"startDate"`
	EndDate             string               `json:"endDate"`
	MinDate             string               `json:"minDate"`
	MaxDate             string               `json:"maxDate"`
	SelectedCategories  []string             `json:"selectedCategories"`
	AvailableCategories []string             `json:"availableCategories"`
	Granularity         string               `json:"granularity"`
	RollingWindow       int                  `json:"rollingWindow"`
}

// SummaryResponse holds headline counts and the filtered total
type SummaryResponse struct {
	RawRows      int    `json:"rawRows"`
	ValidRows    int    `json:"validRows"`
	DroppedRows  int    `json:"droppedRows"`
	FilteredRows int    `json:"filteredRows"`
	Total        string `json:"total"`
}

// TrendPointResponse is one bucket of the trend chart
type TrendPointResponse struct {
	Bucket         string `json:"bucket"`
	Total          string `json:"total"`
	RollingAverage string `json:"rollingAverage"`
}

// TrendChartResponse is the spending-over-time chart
type TrendChartResponse struct {
	Empty  bool                 `json:"empty"`
	Points []TrendPointResponse `json:"points"`
}

// CategorySliceResponse is one slice of the category pie chart
type CategorySliceResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
	Share    string `json:"share"`
}

// CategoryChartResponse is the spending-by-category chart
type CategoryChartResponse struct {
	Empty  bool                    `json:"empty"`
	Slices []CategorySliceResponse `json:"slices"`
}

// CumulativePointResponse is one transaction of the cumulative chart
type CumulativePointResponse struct {
	Date       string `json:"date"`
	Category   string `json:"category"`
	Amount     string `json:"amount"`
	Cumulative string `json:"cumulative"`
}

// CumulativeChartResponse is the cumulative spending chart
type CumulativeChartResponse struct {
	Empty  bool                      `json:"empty"`
	Points []CumulativePointResponse `json:"points"`
}

// TopCategoryResponse is one row of the top-categories table
type TopCategoryResponse struct {
	Rank     int    `json:"rank"`
	Category string `json:"category"`
	Total    string `json:"total"`
	Display  string `json:"display"`
}

// DashboardResponse represents the dashboard API response
type DashboardResponse struct {
	HasData       bool                    `json:"hasData"`
	Message       string                  `json:"message,omitempty"`
	Filter        FilterResponse          `json:"filter"`
	Summary       SummaryResponse         `json:"summary"`
	Trend         TrendChartResponse      `json:"trend"`
	Categories    CategoryChartResponse   `json:"categories"`
	Cumulative    CumulativeChartResponse `json:"cumulative"`
	TopCategories []TopCategoryResponse   `json:"topCategories"`
}

// GetDashboard godoc
// @Summary Get the spending dashboard
// @Description Normalize, filter and aggregate the session's dataset. Every request recomputes from the raw upload.
// @Tags dashboard
// @Produce json
// @Param dateColumn query string false "Column holding dates"
// @Param categoryColumn query string false "Column holding categories"
// @Param amountColumn query string false "Column holding amounts"
// @Param start query string false "Start date (YYYY-MM-DD), inclusive"
// @Param end query string false "End date (YYYY-MM-DD), inclusive"
// @Param categories query []string false "Selected categories; an empty value selects none" collectionFormat(multi)
// @Param granularity query string false "daily or monthly" Enums(daily, monthly)
// @Param window query int false "Rolling average window (1-30)" minimum(1) maximum(30)
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	opts, errs := parseDashboardOptions(c)
	if len(errs) > 0 {
		return NewValidationError(c, "Invalid dashboard parameters", errs)
	}

	dashboard, err := h.dashboardService.GetDashboard(middleware.GetSessionID(c), opts)
	if err != nil {
		return handleDatasetError(c, err, "Failed to build dashboard")
	}

	return c.JSON(http.StatusOK, toDashboardResponse(dashboard))
}

// parseDashboardOptions reads the widget values from the query string.
// A categories parameter with a single empty value selects no category.
func parseDashboardOptions(c echo.Context) (domain.DashboardOptions, []ValidationError) {
	var opts domain.DashboardOptions
	var errs []ValidationError

	opts.Mapping = domain.ColumnMapping{
		Date:     c.QueryParam("dateColumn"),
		Category: c.QueryParam("categoryColumn"),
		Amount:   c.QueryParam("amountColumn"),
	}

	if s := c.QueryParam("start"); s != "" {
		start, err := util.ParseDate(s)
		if err != nil {
			errs = append(errs, ValidationError{Field: "start", Message: "Must be a date in YYYY-MM-DD format"})
		} else {
			opts.StartDate = &start
		}
	}
	if s := c.QueryParam("end"); s != "" {
		end, err := util.ParseDate(s)
		if err != nil {
			errs = append(errs, ValidationError{Field: "end", Message: "Must be a date in YYYY-MM-DD format"})
		} else {
			opts.EndDate = &end
		}
	}

	if values, ok := c.QueryParams()["categories"]; ok {
		selected := []string{}
		if !(len(values) == 1 && values[0] == "") {
			selected = append(selected, values...)
		}
		opts.Categories = &selected
	}

	if s := c.QueryParam("granularity"); s != "" {
		granularity, err := domain.ParseGranularity(s)
		if err != nil {
			errs = append(errs, ValidationError{Field: "granularity", Message: "Must be one of: daily, monthly"})
		}
		opts.Granularity = granularity
	}

	if s := c.QueryParam("window"); s != "" {
		window, err := strconv.Atoi(s)
		if err != nil || window < domain.MinRollingWindow || window > domain.MaxRollingWindow {
			errs = append(errs, ValidationError{Field: "window", Message: "Must be an integer between 1 and 30"})
		} else {
			opts.RollingWindow = window
		}
	}

	return opts, errs
}

func toDashboardResponse(d *domain.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		HasData: d.HasData(),
		Filter: FilterResponse{
			Mapping:             d.Filter.Mapping,
			StartDate:           formatDay(d.Filter.StartDate),
			EndDate:             formatDay(d.Filter.EndDate),
			MinDate:             formatDay(d.Filter.MinDate),
			MaxDate:             formatDay(d.Filter.MaxDate),
			SelectedCategories:  nonNil(d.Filter.SelectedCategories),
			AvailableCategories: nonNil(d.Filter.AvailableCategories),
			Granularity:         string(d.Filter.Granularity),
			RollingWindow:       d.Filter.RollingWindow,
		},
		Summary: SummaryResponse{
			RawRows:      d.Summary.RawRows,
			ValidRows:    d.Summary.ValidRows,
			DroppedRows:  d.Summary.DroppedRows,
			FilteredRows: d.Summary.FilteredRows,
			Total:        d.Summary.Total.StringFixed(2),
		},
		Trend:         TrendChartResponse{Empty: len(d.Trend) == 0, Points: make([]TrendPointResponse, len(d.Trend))},
		Categories:    CategoryChartResponse{Empty: len(d.Categories) == 0, Slices: make([]CategorySliceResponse, len(d.Categories))},
		Cumulative:    CumulativeChartResponse{Empty: len(d.Cumulative) == 0, Points: make([]CumulativePointResponse, len(d.Cumulative))},
		TopCategories: make([]TopCategoryResponse, len(d.TopCategories)),
	}
	if !resp.HasData {
		resp.Message = domain.NoDataMessage
	}

	for i, p := range d.Trend {
		resp.Trend.Points[i] = TrendPointResponse{
			Bucket:         formatDay(p.Bucket),
			Total:          p.Total.StringFixed(2),
			RollingAverage: p.RollingAverage.StringFixed(2),
		}
	}
	for i, s := range d.Categories {
		resp.Categories.Slices[i] = CategorySliceResponse{
			Category: s.Category,
			Total:    s.Total.StringFixed(2),
			Share:    s.Share.StringFixed(2),
		}
	}
	for i, p := range d.Cumulative {
		resp.Cumulative.Points[i] = CumulativePointResponse{
			Date:       formatDay(p.Date),
			Category:   p.Category,
			Amount:     p.Amount.StringFixed(2),
			Cumulative: p.Cumulative.StringFixed(2),
		}
	}
	for i, row := range d.TopCategories {
		resp.TopCategories[i] = TopCategoryResponse{
			Rank:     row.Rank,
			Category: row.Category,
			Total:    row.Total.StringFixed(2),
			Display:  row.Display,
		}
	}
	return resp
}

// formatDay formats a calendar date; the zero time (empty dataset) is rendered as ""
func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return util.FormatDate(t)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
