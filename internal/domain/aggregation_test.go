package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseGranularity(t *testing.T) {
	tests := []struct {
		in      string
		want    Granularity
		wantErr bool
	}{
		{"daily", GranularityDaily, false},
		{"Monthly", GranularityMonthly, false},
		{" DAILY ", GranularityDaily, false},
		{"weekly", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGranularity(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidGranularity) {
					t.Errorf("ParseGranularity(%q) error = %v, want ErrInvalidGranularity", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseGranularity(%q) = (%q, %v), want %q", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestAggregationSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spec    AggregationSpec
		wantErr error
	}{
		{"daily window 1", AggregationSpec{GranularityDaily, 1}, nil},
		{"monthly large window", AggregationSpec{GranularityMonthly, 90}, nil},
		{"zero window", AggregationSpec{GranularityDaily, 0}, ErrInvalidWindow},
		{"unknown granularity", AggregationSpec{"yearly", 7}, ErrInvalidGranularity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr == nil && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewFilterSpec_CopiesCategories(t *testing.T) {
	categories := []string{"Food", "Rent"}
	spec := NewFilterSpec(time.Time{}, time.Time{}, categories)
	categories[0] = "Changed"

	if spec.Categories[0] != "Food" {
		t.Errorf("FilterSpec shares the caller's slice: %v", spec.Categories)
	}
	if _, ok := spec.CategorySet()["Rent"]; !ok {
		t.Error("CategorySet() is missing Rent")
	}
}

func TestNewFilterSpec_EmptyAllowList(t *testing.T) {
	spec := NewFilterSpec(time.Time{}, time.Time{}, nil)

	if spec.Categories == nil || len(spec.CategorySet()) != 0 {
		t.Errorf("empty allow-list = %v, want empty non-nil", spec.Categories)
	}
}
