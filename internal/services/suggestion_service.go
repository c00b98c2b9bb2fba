package services

import (
	"math"
	"sort"

	"github.com/sportmatch/backend/internal/dto"
	"github.com/sportmatch/backend/internal/models"
	"github.com/sportmatch/backend/internal/storage"
	"github.com/umahmood/haversine"
)

// SuggestionService generates swipe candidates for a user: never the user
// themselves, never a pair blocked in either direction, never a profile
// already swiped on, narrowed by stored preferences and capped by
// straight-line distance.
type SuggestionService struct {
	store    storage.Storage
	radiusKm float64
	limit    int
}

func NewSuggestionService(store storage.Storage, radiusKm float64, limit int) *SuggestionService {
	return &SuggestionService{store: store, radiusKm: radiusKm, limit: limit}
}

// Suggestions returns candidates within the radius, closest first.
func (s *SuggestionService) Suggestions(user *models.User) ([]dto.Suggestion, error) {
	candidates, err := s.store.FindCandidates(user.ID, storage.CandidateFilter{
		SportType: user.PreferredSportType,
		MinAge:    user.PreferredMinAge,
		MaxAge:    user.PreferredMaxAge,
		Limit:     s.limit,
	})
	if err != nil {
		return nil, err
	}

	origin := haversine.Coord{Lat: user.LastLat, Lon: user.LastLng}
	suggestions := make([]dto.Suggestion, 0, len(candidates))
	for _, c := range candidates {
		_, km := haversine.Distance(origin, haversine.Coord{Lat: c.LastLat, Lon: c.LastLng})
		if km > s.radiusKm {
			continue
		}
		suggestions = append(suggestions, dto.Suggestion{
			ID:          c.ID,
			Name:        c.Name,
			Age:         c.Age,
			Bio:         c.Bio,
			SportType:   c.SportType,
			AvgDistance: c.AvgDistance,
			Lat:         c.LastLat,
			Lng:         c.LastLng,
			DistanceKm:  roundKm(km),
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		return suggestions[i].DistanceKm < suggestions[j].DistanceKm
	})
	return suggestions, nil
}

func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
