package storage

import (
	"errors"
	"fmt"

	"github.com/sportmatch/backend/internal/models"
	"gorm.io/gorm"
)

func (s *Service) CreateRefreshToken(token *models.RefreshToken) error {
	if err := s.db.Create(token).Error; err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (s *Service) FindRefreshToken(tokenHash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := s.db.First(&token, "token_hash = ? AND revoked = false", tokenHash).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (s *Service) RevokeRefreshToken(tokenHash string) error {
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}
