package storage

import (
	"fmt"

	"github.com/sportmatch/backend/internal/models"
)

func (s *Service) CreateMessage(msg *models.ChatMessage) error {
	if err := s.db.Create(msg).Error; err != nil {
		return fmt.Errorf("failed to store message: %w", err)
	}
	return nil
}

// ListMessages returns the non-deleted messages of a conversation ordered
// by timestamp ascending, ties broken by insertion order.
func (s *Service) ListMessages(conversationKey string) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	err := s.db.
		Where("conversation_key = ? AND deleted_at IS NULL", conversationKey).
		Order("timestamp ASC, id ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}
	return msgs, nil
}
