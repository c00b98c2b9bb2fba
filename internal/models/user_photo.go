package models

// UserPhoto stores a photo URL for a profile. Binary storage lives with
// an external collaborator; only the URL and profile-pic flag are ours.
type UserPhoto struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	UserID       uint   `gorm:"not null;index" json:"user_id"`
	PhotoURL     string `gorm:"type:text;not null" json:"photo_url"`
	IsProfilePic bool   `gorm:"default:false" json:"is_profile_pic"`
}

func (UserPhoto) TableName() string {
	return "user_photos"
}
