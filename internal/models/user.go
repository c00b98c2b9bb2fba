package models

import (
	"time"

	"gorm.io/gorm"
)

// User holds the full profile row. The matching/messaging core only ever
// needs the ID; everything else is profile data served to clients.
type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Username     string  `gorm:"uniqueIndex;size:64;not null" json:"username"`
	PasswordHash string  `gorm:"not null" json:"-"`
	Name         string  `gorm:"size:100" json:"name"`
	Age          int     `json:"age"`
	Bio          string  `gorm:"type:text" json:"bio"`
	SportType    string  `gorm:"size:50;index" json:"sport_type"`
	AvgDistance  float64 `json:"avg_distance"`
	LastLat      float64 `json:"last_lat"`
	LastLng      float64 `json:"last_lng"`
	Availability string  `gorm:"size:100" json:"availability"`

	// Opaque third-party fitness token; refresh is handled by an external job.
	StravaToken string `gorm:"size:255" json:"-"`

	PreferredSportType *string `gorm:"size:50" json:"preferred_sport_type,omitempty"`
	PreferredMinAge    *int    `json:"preferred_min_age,omitempty"`
	PreferredMaxAge    *int    `json:"preferred_max_age,omitempty"`
	PushToken          string  `gorm:"size:255" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}
