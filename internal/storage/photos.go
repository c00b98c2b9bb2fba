package storage

import (
	"errors"
	"fmt"

	"github.com/sportmatch/backend/internal/models"
	"gorm.io/gorm"
)

func (s *Service) AddPhoto(photo *models.UserPhoto) error {
	if err := s.db.Create(photo).Error; err != nil {
		return fmt.Errorf("failed to add photo: %w", err)
	}
	return nil
}

func (s *Service) FindPhoto(photoID, userID uint) (*models.UserPhoto, error) {
	var photo models.UserPhoto
	err := s.db.First(&photo, "id = ? AND user_id = ?", photoID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (s *Service) DeletePhoto(photoID, userID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", photoID, userID).Delete(&models.UserPhoto{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) ListPhotos(userID uint) ([]models.UserPhoto, error) {
	var photos []models.UserPhoto
	if err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (s *Service) SetProfilePic(photoID uint) error {
	return s.db.Model(&models.UserPhoto{}).Where("id = ?", photoID).
		Update("is_profile_pic", true).Error
}

func (s *Service) ClearProfilePics(userID uint) error {
	return s.db.Model(&models.UserPhoto{}).Where("user_id = ?", userID).
		Update("is_profile_pic", false).Error
}
