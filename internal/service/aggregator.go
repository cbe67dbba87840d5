package service

import (
	"sort"

	"github.com/dafibh/fortuna/fortuna-dashboard/internal/domain"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/util"
	"github.com/shopspring/decimal"
)

// Aggregate computes every derived series of the filtered table
func Aggregate(table *domain.TransactionTable, spec domain.AggregationSpec) (*domain.Aggregates, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	buckets := BucketTotals(table, spec.Granularity)
	return &domain.Aggregates{
		Buckets:        buckets,
		RollingAverage: RollingAverage(buckets, spec.RollingWindow),
		CategoryTotals: CategoryTotals(table),
		Cumulative:     CumulativeSum(table),
	}, nil
}

// BucketTotals sums amounts per calendar day or per calendar month.
// Monthly keys are the first instant of the month. Keys are ascending.
func BucketTotals(table *domain.TransactionTable, granularity domain.Granularity) []domain.BucketTotal {
	sums := make(map[int64]*domain.BucketTotal)
	for _, row := range table.Rows {
		key := util.StartOfDay(row.Date)
		if granularity == domain.GranularityMonthly {
			key = util.StartOfMonth(row.Date)
		}
		bucket, ok := sums[key.Unix()]
		if !ok {
			bucket = &domain.BucketTotal{Bucket: key, Total: decimal.Zero}
			sums[key.Unix()] = bucket
		}
		bucket.Total = bucket.Total.Add(row.Amount)
	}

	result := make([]domain.BucketTotal, 0, len(sums))
	for _, bucket := range sums {
		result = append(result, *bucket)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Bucket.Before(result[j].Bucket)
	})
	return result
}

// RollingAverage computes a trailing mean over the bucketed series. The value
// at index i is the mean of buckets [max(0, i-window+1), i], so the window
// shrinks at the start of the series instead of waiting for a full window.
func RollingAverage(buckets []domain.BucketTotal, window int) []domain.BucketTotal {
	if window < domain.MinRollingWindow {
		window = domain.MinRollingWindow
	}

	result := make([]domain.BucketTotal, len(buckets))
	sum := decimal.Zero
	for i, bucket := range buckets {
		sum = sum.Add(bucket.Total)
		if i >= window {
			sum = sum.Sub(buckets[i-window].Total)
		}
		count := i + 1
		if count > window {
			count = window
		}
		result[i] = domain.BucketTotal{
			Bucket: bucket.Bucket,
			Total:  sum.Div(decimal.NewFromInt(int64(count))),
		}
	}
	return result
}

// CategoryTotals sums amounts per category, sorted by total descending.
// Equal totals keep the order in which their categories first appear.
func CategoryTotals(table *domain.TransactionTable) []domain.CategoryTotal {
	index := make(map[string]int)
	var result []domain.CategoryTotal
	for _, row := range table.Rows {
		i, ok := index[row.Category]
		if !ok {
			i = len(result)
			index[row.Category] = i
			result = append(result, domain.CategoryTotal{Category: row.Category, Total: decimal.Zero})
		}
		result[i].Total = result[i].Total.Add(row.Amount)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total.GreaterThan(result[j].Total)
	})
	return result
}

// SortedByDate returns the rows ordered by date ascending; rows on the same
// date keep their input order.
func SortedByDate(table *domain.TransactionTable) []domain.Transaction {
	if table.IsEmpty() {
		return []domain.Transaction{}
	}
	rows := make([]domain.Transaction, table.Len())
	copy(rows, table.Rows)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})
	return rows
}

// CumulativeSum is the running total of amounts over the date-sorted rows,
// one point per row.
func CumulativeSum(table *domain.TransactionTable) []domain.CumulativePoint {
	rows := SortedByDate(table)
	result := make([]domain.CumulativePoint, len(rows))
	running := decimal.Zero
	for i, row := range rows {
		running = running.Add(row.Amount)
		result[i] = domain.CumulativePoint{
			Date:       row.Date,
			Category:   row.Category,
			Amount:     row.Amount,
			Cumulative: running,
		}
	}
	return result
}
