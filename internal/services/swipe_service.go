package services

import (
	"errors"
	"log/slog"

	"github.com/sportmatch/backend/internal/dto"
	"github.com/sportmatch/backend/internal/realtime"
	"github.com/sportmatch/backend/internal/storage"
)

var (
	ErrSelfSwipe   = errors.New("cannot swipe on your own profile")
	ErrSelfBlock   = errors.New("cannot block yourself")
	ErrSelfReport  = errors.New("cannot report yourself")
	ErrUserMissing = errors.New("user not found")
)

// SwipeService owns the match-formation state machine: the durable swipe
// ledger, mutual-match detection on top of it, and unmatching.
type SwipeService struct {
	store    storage.Storage
	notifier realtime.Notifier
}

func NewSwipeService(store storage.Storage, notifier realtime.Notifier) *SwipeService {
	return &SwipeService{store: store, notifier: notifier}
}

// Record upserts the directional swipe and, for likes, checks the
// reciprocal row to detect a fresh mutual match. Re-swiping the same pair
// overwrites in place and clears any unmatch tombstone.
func (s *SwipeService) Record(swiperID, swipeeID uint, liked bool) (*dto.SwipeResult, error) {
	if swiperID == swipeeID {
		return nil, ErrSelfSwipe
	}

	if err := s.store.UpsertSwipe(swiperID, swipeeID, liked); err != nil {
		return nil, err
	}
	slog.Info("swipe recorded", "swiper", swiperID, "swipee", swipeeID, "liked", liked)

	matched := false
	if liked {
		reciprocal, err := s.store.HasLiveLike(swipeeID, swiperID)
		if err != nil {
			return nil, err
		}
		if reciprocal {
			matched = true
			slog.Info("new match", "user_a", swiperID, "user_b", swipeeID)
			// Best-effort only; the match exists regardless of delivery.
			s.notifier.Notify(realtime.Event{Type: realtime.EventMatch, UserID: swipeeID, FromID: swiperID})
		}
	}

	return &dto.SwipeResult{Matched: matched}, nil
}

// IsMutualMatch recomputes match state from the two swipe rows on every
// call. Deliberately not memoized: an unmatch from either side must take
// effect on the very next request.
func (s *SwipeService) IsMutualMatch(a, b uint) (bool, error) {
	return s.store.HasMutualMatch(a, b)
}

// ListMatches returns the counterpart profiles of every mutual match,
// ordered by counterpart id.
func (s *SwipeService) ListMatches(userID uint) ([]storage.MatchRow, error) {
	rows, err := s.store.ListMatches(userID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []storage.MatchRow{}
	}
	return rows, nil
}

// Unmatch soft-deletes the liked swipe rows between the pair in both
// directions. Idempotent; message history is left untouched and becomes
// reachable again if the pair ever re-matches.
func (s *SwipeService) Unmatch(initiatorID, counterpartID uint) error {
	if err := s.store.SoftDeleteSwipePair(initiatorID, counterpartID); err != nil {
		return err
	}
	slog.Info("match soft-deleted", "initiator", initiatorID, "counterpart", counterpartID)
	s.notifier.Notify(realtime.Event{Type: realtime.EventUnmatch, UserID: counterpartID, FromID: initiatorID})
	return nil
}
