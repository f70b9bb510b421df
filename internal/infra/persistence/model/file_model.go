package model

import (
	"time"

	"github.com/google/uuid"
)

// FileModel mirrors the 'files' table. The object bytes live in blob storage
// under StorageKey; this table only holds metadata.
type FileModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	ContentType string    `gorm:"type:varchar(100)"`
	Size        int64     `gorm:"not null"`
	StorageKey  string    `gorm:"type:varchar(255);unique;not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FileModel) TableName() string {
	return "files"
}
