package models

import "time"

// Block is a directional block relation. Composite PK makes insertion
// naturally idempotent. Blocks only shape candidate suggestions; they do
// not revoke messaging access for an existing match.
type Block struct {
	BlockerID uint      `gorm:"primaryKey;autoIncrement:false" json:"blocker_id"`
	BlockedID uint      `gorm:"primaryKey;autoIncrement:false" json:"blocked_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Block) TableName() string {
	return "user_blocks"
}
