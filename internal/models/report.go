package models

import "time"

// Report is an append-only audit record of one user reporting another.
// It has no effect on matches, blocks, or messages.
type Report struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ReporterID uint      `gorm:"not null;index" json:"reporter_id"`
	ReportedID uint      `gorm:"not null;index" json:"reported_id"`
	Reason     string    `gorm:"size:500;not null" json:"reason"`
	Status     string    `gorm:"size:50;not null;default:'pending'" json:"status"`
	AdminNote  string    `gorm:"size:1000" json:"admin_note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Report) TableName() string {
	return "user_reports"
}
