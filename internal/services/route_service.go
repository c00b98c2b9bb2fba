package services

import (
	"errors"
	"fmt"

	"github.com/sportmatch/backend/internal/dto"
	"github.com/sportmatch/backend/internal/storage"
	"github.com/umahmood/haversine"
)

// RouteService proposes a shared training route for a matched pair. Like
// messaging, it is only available while the match is live.
type RouteService struct {
	store storage.Storage
}

func NewRouteService(store storage.Storage) *RouteService {
	return &RouteService{store: store}
}

func (s *RouteService) SuggestRoute(userID, matchID uint) (*dto.RouteSuggestion, error) {
	ok, err := s.store.HasMutualMatch(userID, matchID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoMatch
	}

	user, err := s.store.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserMissing
		}
		return nil, err
	}
	match, err := s.store.FindUserByID(matchID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserMissing
		}
		return nil, err
	}

	_, km := haversine.Distance(
		haversine.Coord{Lat: user.LastLat, Lon: user.LastLng},
		haversine.Coord{Lat: match.LastLat, Lon: match.LastLng},
	)
	mapLink := fmt.Sprintf("https://www.google.com/maps/dir/%g,%g/%g,%g",
		user.LastLat, user.LastLng, match.LastLat, match.LastLng)

	return &dto.RouteSuggestion{
		Name:        "Shared route proposal",
		Description: "A route roughly halfway between your locations. Adjust to taste.",
		DistanceKm:  roundKm(km / 2),
		MapLink:     mapLink,
	}, nil
}
