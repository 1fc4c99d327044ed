package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeOfDay is one side of an opening period: a weekday (0 = Sunday) and a
// 4-digit 24-hour time string like "0730".
type TimeOfDay struct {
	Day  int    `json:"day"`
	Time string `json:"time"`
}

// Period is a single open/close pair for one weekday.
type Period struct {
	Open  TimeOfDay `json:"open"`
	Close TimeOfDay `json:"close"`
}

// BusinessHours mirrors the schedule JSON ingested from the places API.
// OpenNow is an optional live flag from the external source; Periods is the
// weekly schedule. The column is refreshed out-of-band and read-only to the
// review/scoring paths.
type BusinessHours struct {
	OpenNow     *bool    `json:"open_now,omitempty"`
	Periods     []Period `json:"periods,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

// Value serializes the schedule to JSON for storage
func (b BusinessHours) Value() (driver.Value, error) {
	return json.Marshal(b)
}

// Scan deserializes the stored JSON schedule
func (b *BusinessHours) Scan(value interface{}) error {
	if value == nil {
		*b = BusinessHours{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	default:
		return errors.New("business_hours: unsupported column type")
	}
}

type Cafe struct {
	ID            string  `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string  `json:"name" gorm:"not null"`
	Address       string  `json:"address" gorm:"not null"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	ImageURL      string  `json:"image_url"`
	PriceCategory string  `json:"price_category"`
	PlaceID       string  `json:"place_id"`

	BusinessHours *BusinessHours `json:"business_hours,omitempty" gorm:"type:text"`
	PopularTimes  *string        `json:"popular_times,omitempty" gorm:"type:text"`

	// Cached aggregates, written only by the review mutation path. Nil means
	// "no data", which is distinct from a score of zero.
	GrindabilityScore        *float64 `json:"grindability_score"`
	StudentFriendlinessScore *float64 `json:"student_friendliness_score"`
	CoffeeQualityScore       *float64 `json:"coffee_quality_score"`
	VibeScore                *float64 `json:"vibe_score"`
	GoldenBearScore          *float64 `json:"golden_bear_score"`
	ReviewCount              int      `json:"review_count"`

	Reviews   []Review  `json:"reviews,omitempty" gorm:"foreignKey:CafeID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Cafe) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
