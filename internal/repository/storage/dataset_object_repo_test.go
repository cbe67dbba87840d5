package storage

import (
	"strings"
	"testing"

	"github.com/dafibh/fortuna/fortuna-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{"joins prefix", "datasets", "jan.csv", "datasets/jan.csv"},
		{"nested key", "datasets/", "2025/jan.csv", "datasets/2025/jan.csv"},
		{"leading slash is relative", "datasets", "/jan.csv", "datasets/jan.csv"},
		{"no prefix", "", "jan.csv", "jan.csv"},
		{"trims whitespace", "datasets", "  jan.csv ", "datasets/jan.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ObjectKey(tt.prefix, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestObjectKey_Rejects(t *testing.T) {
	for _, key := range []string{"", "   ", "../secrets.csv", "a/../../b.csv", strings.Repeat("k", domain.MaxObjectKeyLength+1)} {
		_, err := ObjectKey("datasets", key)
		assert.ErrorIs(t, err, domain.ErrInvalidObjectKey, "key %q", key)
	}
}
