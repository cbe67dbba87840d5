package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/dafibh/fortuna/fortuna-dashboard/internal/domain"
)

// DatasetObjectRepository reads CSV datasets from object storage
type DatasetObjectRepository interface {
	// Open returns the object body and its size in bytes (-1 when unknown)
	Open(ctx context.Context, key string) (io.ReadCloser, int64, error)
}

// ObjectKey joins a user-supplied key onto prefix, rejecting keys that are
// empty, too long or try to leave the prefix.
func ObjectKey(prefix, key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || len(key) > domain.MaxObjectKeyLength {
		return "", domain.ErrInvalidObjectKey
	}
	for _, segment := range strings.Split(key, "/") {
		if segment == ".." {
			return "", fmt.Errorf("%w: %q", domain.ErrInvalidObjectKey, key)
		}
	}
	joined := path.Join(prefix, strings.TrimPrefix(key, "/"))
	return strings.TrimPrefix(joined, "/"), nil
}
