package models

import (
	"fmt"
	"time"
)

// ChatMessage is one encrypted message in a conversation. Ciphertext is
// base64-encoded AES-GCM output; plaintext never reaches the database.
//
// Messages are append-only. Unmatching a pair leaves its messages
// intact; DeletedAt exists so moderation can hide a row without losing it.
type ChatMessage struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	ConversationKey string     `gorm:"size:50;not null;index" json:"-"`
	SenderID        uint       `gorm:"not null" json:"sender_id"`
	Ciphertext      string     `gorm:"type:text;not null" json:"-"`
	Timestamp       time.Time  `gorm:"not null;index" json:"timestamp"`
	DeletedAt       *time.Time `json:"-"`
}

func (ChatMessage) TableName() string {
	return "chats"
}

// ConversationKey derives the order-independent key identifying the
// message thread between two users. Two users share exactly one thread,
// so conversation identity is inseparable from the pair itself.
func ConversationKey(a, b uint) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%d", a, b)
}
