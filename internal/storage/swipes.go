package storage

import (
	"fmt"
	"time"

	"github.com/sportmatch/backend/internal/models"
	"gorm.io/gorm/clause"
)

// UpsertSwipe writes the swipe row for an ordered pair. On conflict the
// liked flag is overwritten and any soft-delete tombstone is cleared, so
// a previously unmatched pair can be re-swiped back into existence.
// Concurrent swipes on the same pair resolve last-write-wins here; there
// is no application-level locking.
func (s *Service) UpsertSwipe(swiperID, swipeeID uint, liked bool) error {
	swipe := models.Swipe{
		SwiperID: swiperID,
		SwipeeID: swipeeID,
		Liked:    liked,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "swiper_id"}, {Name: "swipee_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"liked":      liked,
			"deleted_at": nil,
			"updated_at": time.Now().UTC(),
		}),
	}).Create(&swipe).Error
	if err != nil {
		return fmt.Errorf("failed to upsert swipe: %w", err)
	}
	return nil
}

// HasLiveLike reports whether a non-deleted liked swipe exists for the
// ordered pair.
func (s *Service) HasLiveLike(swiperID, swipeeID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Swipe{}).
		Where("swiper_id = ? AND swipee_id = ? AND liked = TRUE AND deleted_at IS NULL", swiperID, swipeeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to query swipe: %w", err)
	}
	return count > 0, nil
}

// HasMutualMatch recomputes match state from both swipe rows. Always a
// live read: the result reflects the latest committed state, never a cache.
func (s *Service) HasMutualMatch(a, b uint) (bool, error) {
	ab, err := s.HasLiveLike(a, b)
	if err != nil || !ab {
		return false, err
	}
	return s.HasLiveLike(b, a)
}

// ListMatches returns profile rows for every mutual match of userID,
// ordered by counterpart id for deterministic listings.
func (s *Service) ListMatches(userID uint) ([]MatchRow, error) {
	var rows []MatchRow
	err := s.db.Raw(`
		SELECT u.id, u.name, u.age, up.photo_url
		FROM users u
		JOIN swipes s1
		  ON s1.swipee_id = u.id
		 AND s1.swiper_id = ?
		 AND s1.liked = TRUE
		 AND s1.deleted_at IS NULL
		LEFT JOIN LATERAL (
			SELECT photo_url
			FROM user_photos up
			WHERE up.user_id = u.id AND up.is_profile_pic = TRUE
			ORDER BY up.id DESC
			LIMIT 1
		) up ON TRUE
		WHERE u.deleted_at IS NULL
		  AND EXISTS (
			SELECT 1
			FROM swipes s2
			WHERE s2.swiper_id = u.id
			  AND s2.swipee_id = ?
			  AND s2.liked = TRUE
			  AND s2.deleted_at IS NULL
		  )
		ORDER BY u.id ASC
	`, userID, userID).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return rows, nil
}

// SoftDeleteSwipePair tombstones the liked swipe rows in both directions.
// Already-deleted rows are left untouched, making repeated unmatch a no-op.
// Chat rows are never touched here: message history outlives the match.
func (s *Service) SoftDeleteSwipePair(a, b uint) error {
	err := s.db.Model(&models.Swipe{}).
		Where("((swiper_id = ? AND swipee_id = ?) OR (swiper_id = ? AND swipee_id = ?)) AND liked = TRUE AND deleted_at IS NULL",
			a, b, b, a).
		Update("deleted_at", time.Now().UTC()).Error
	if err != nil {
		return fmt.Errorf("failed to soft-delete swipes: %w", err)
	}
	return nil
}
