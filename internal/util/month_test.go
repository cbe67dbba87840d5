package util

import (
	"testing"
	"time"
)

func TestStartOfMonth(t *testing.T) {
	tests := []struct {
		in   time.Time
		want time.Time
	}{
		{time.Date(2025, 1, 31, 23, 59, 0, 0, time.UTC), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC), time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		if got := StartOfMonth(tt.in); !got.Equal(tt.want) {
			t.Errorf("StartOfMonth(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
