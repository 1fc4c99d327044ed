package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bookmark marks a cafe as saved by a user. One bookmark per (user, cafe).
type Bookmark struct {
	ID     string `json:"id" gorm:"type:uuid;primaryKey"`
	UserID string `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_cafe"`
	CafeID string `json:"cafe_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_cafe"`
	Cafe   Cafe   `json:"cafe,omitempty" gorm:"foreignKey:CafeID"`

	CreatedAt time.Time `json:"created_at"`
}

func (b *Bookmark) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
