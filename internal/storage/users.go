package storage

import (
	"errors"
	"fmt"

	"github.com/sportmatch/backend/internal/models"
	"gorm.io/gorm"
)

func (s *Service) CreateUser(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *Service) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

func (s *Service) FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

func (s *Service) SaveUser(user *models.User) error {
	return s.db.Save(user).Error
}

// FindCandidates loads suggestion candidates for a user: everyone except
// themselves, pairs blocked in either direction, and profiles already
// swiped on, optionally narrowed by preference filters. Distance ranking
// happens in the service layer; this only bounds the working set.
func (s *Service) FindCandidates(userID uint, filter CandidateFilter) ([]models.User, error) {
	query := s.db.Model(&models.User{}).
		Where("id <> ?", userID).
		Where("NOT EXISTS (SELECT 1 FROM user_blocks b WHERE b.blocker_id = ? AND b.blocked_id = users.id)", userID).
		Where("NOT EXISTS (SELECT 1 FROM user_blocks b WHERE b.blocker_id = users.id AND b.blocked_id = ?)", userID).
		Where("NOT EXISTS (SELECT 1 FROM swipes s WHERE s.swiper_id = ? AND s.swipee_id = users.id)", userID)

	if filter.SportType != nil && *filter.SportType != "" {
		query = query.Where("sport_type = ?", *filter.SportType)
	}
	if filter.MinAge != nil {
		query = query.Where("age >= ?", *filter.MinAge)
	}
	if filter.MaxAge != nil {
		query = query.Where("age <= ?", *filter.MaxAge)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 200
	}

	var users []models.User
	if err := query.Limit(limit).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}
	return users, nil
}
