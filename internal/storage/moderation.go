package storage

import (
	"fmt"

	"github.com/sportmatch/backend/internal/models"
	"gorm.io/gorm/clause"
)

// CreateBlock inserts the directional block row. The composite PK plus
// DO NOTHING makes the insert idempotent; created reports whether a new
// row was actually written.
func (s *Service) CreateBlock(blockerID, blockedID uint) (bool, error) {
	block := models.Block{BlockerID: blockerID, BlockedID: blockedID}
	result := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&block)
	if result.Error != nil {
		return false, fmt.Errorf("failed to create block: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *Service) IsBlockedEitherDirection(a, b uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Block{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)", a, b, b, a).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to query blocks: %w", err)
	}
	return count > 0, nil
}

func (s *Service) CreateReport(report *models.Report) error {
	if err := s.db.Create(report).Error; err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

func (s *Service) ListReports(status string, limit, offset int) ([]models.Report, int64, error) {
	var reports []models.Report
	var total int64

	query := s.db.Model(&models.Report{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query.Count(&total)

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reports).Error; err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

func (s *Service) UpdateReportStatus(id uint, status, adminNote string) error {
	result := s.db.Model(&models.Report{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"admin_note": adminNote,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
