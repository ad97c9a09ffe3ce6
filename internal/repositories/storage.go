package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/rohits-web03/voxdesk/internal/config"
)

// ObjectStorage issues write locations for attachment bytes and confirms
// that an upload landed.
type ObjectStorage interface {
	PresignPut(ctx context.Context, key string, expires time.Duration) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// NewObjectStorage picks the backend named by cfg.StorageDriver.
func NewObjectStorage(ctx context.Context, cfg config.Config) (ObjectStorage, error) {
	switch cfg.StorageDriver {
	case "r2":
		return NewR2Storage(cfg.R2), nil
	case "minio":
		return NewMinioStorage(ctx, cfg.Minio)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
