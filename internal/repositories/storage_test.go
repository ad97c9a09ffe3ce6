package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rohits-web03/voxdesk/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewObjectStorageUnknownDriver(t *testing.T) {
	_, err := NewObjectStorage(context.Background(), config.Config{StorageDriver: "gcs"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"gcs"`)
}

func TestNewObjectStorageR2(t *testing.T) {
	s, err := NewObjectStorage(context.Background(), config.Config{
		StorageDriver: "r2",
		R2:            config.R2Config{AccountID: "acct", BucketName: "attachments", Region: "auto"},
	})
	require.NoError(t, err)
	assert.IsType(t, &R2Storage{}, s)
}

func TestTranslate(t *testing.T) {
	other := errors.New("connection reset")
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, translate(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)), ErrDuplicate)
	assert.Equal(t, other, translate(other))
}

func TestR2PresignPut(t *testing.T) {
	s := NewR2Storage(config.R2Config{
		AccountID:       "acct",
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
		BucketName:      "attachments",
		Region:          "auto",
	})

	url, err := s.PresignPut(context.Background(), "attachments/abc/token", 15*time.Minute)
	require.NoError(t, err)
	assert.Contains(t, url, "https://acct.r2.cloudflarestorage.com/attachments/attachments/abc/token?")
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.Contains(t, url, "X-Amz-Expires=900")
}
