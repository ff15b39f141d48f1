package model

import (
	"time"

	"github.com/google/uuid"
)

// ContentModel mirrors the 'contents' table. OwnerID deliberately has no
// foreign key: content outlives the account that created it.
type ContentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:text;not null"`
	Body      string    `gorm:"type:text;not null"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContentModel) TableName() string {
	return "contents"
}
