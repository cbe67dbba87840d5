package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Granularity is the bucket size used for the trend series
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityMonthly Granularity = "monthly"
)

// ParseGranularity accepts "daily" or "monthly" in any case
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(strings.ToLower(strings.TrimSpace(s))) {
	case GranularityDaily:
		return GranularityDaily, nil
	case GranularityMonthly:
		return GranularityMonthly, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidGranularity, s)
}

// AggregationSpec configures bucketing and the rolling average
type AggregationSpec struct {
	Granularity   Granularity
	RollingWindow int
}

// Validate checks the granularity and that the window is at least 1
func (a AggregationSpec) Validate() error {
	if a.Granularity != GranularityDaily && a.Granularity != GranularityMonthly {
		return fmt.Errorf("%w: %q", ErrInvalidGranularity, a.Granularity)
	}
	if a.RollingWindow < MinRollingWindow {
		return fmt.Errorf("%w: %d", ErrInvalidWindow, a.RollingWindow)
	}
	return nil
}

// BucketTotal is the summed amount of one time bucket
type BucketTotal struct {
	Bucket time.Time
	Total  decimal.Decimal
}

// CategoryTotal is the summed amount of one category
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// CumulativePoint is one row of the date-sorted table with its running total
type CumulativePoint struct {
	Date       time.Time
	Category   string
	Amount     decimal.Decimal
	Cumulative decimal.Decimal
}

// Aggregates holds every derived series of one render
type Aggregates struct {
	Buckets        []BucketTotal
	RollingAverage []BucketTotal
	CategoryTotals []CategoryTotal
	Cumulative     []CumulativePoint
}
