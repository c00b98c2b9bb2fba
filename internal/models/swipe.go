package models

import "time"

// Swipe records one user's directional like/dislike toward another.
//
// Composite PK (SwiperID, SwipeeID) guarantees a single row per ordered
// pair; re-swipes overwrite in place. DeletedAt is managed explicitly
// (not gorm.DeletedAt) because an unmatched pair must be resurrectable
// by a later upsert that clears the tombstone.
type Swipe struct {
	SwiperID  uint       `gorm:"primaryKey;autoIncrement:false" json:"swiper_id"`
	SwipeeID  uint       `gorm:"primaryKey;autoIncrement:false" json:"swipee_id"`
	Liked     bool       `gorm:"not null" json:"liked"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"-"`
}

func (Swipe) TableName() string {
	return "swipes"
}
