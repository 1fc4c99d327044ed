package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is one user's rating of one cafe. Each of the four sub-scores is
// optional; GoldenBearScore is the mean of the sub-scores present at write
// time, rounded to one decimal, and is stored denormalized on the row.
type Review struct {
	ID     string `json:"id" gorm:"type:uuid;primaryKey"`
	CafeID string `json:"cafe_id" gorm:"type:uuid;not null;uniqueIndex:idx_cafe_user"`
	UserID string `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_cafe_user"`
	Cafe   *Cafe  `json:"cafe,omitempty" gorm:"foreignKey:CafeID"`
	User   User   `json:"user,omitempty" gorm:"foreignKey:UserID"`

	Content                  string   `json:"content"`
	GrindabilityScore        *float64 `json:"grindability_score"`
	StudentFriendlinessScore *float64 `json:"student_friendliness_score"`
	CoffeeQualityScore       *float64 `json:"coffee_quality_score"`
	VibeScore                *float64 `json:"vibe_score"`
	GoldenBearScore          *float64 `json:"golden_bear_score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
