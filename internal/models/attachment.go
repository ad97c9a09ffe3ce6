package models

import (
	"time"

	"github.com/google/uuid"
)

type Attachment struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Key       string    `json:"key" gorm:"uniqueIndex;not null"` // object key in the bucket
	FileName  string    `json:"fileName" gorm:"not null"`
	FileSize  int64     `json:"fileSize" gorm:"not null"` // bytes
	MimeType  string    `json:"mimeType"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
