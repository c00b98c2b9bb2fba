package services

import (
	"testing"

	"github.com/sportmatch/backend/internal/models"
	"github.com/sportmatch/backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestRoute_DeniedWithoutMatch(t *testing.T) {
	store := new(MockStorage)
	svc := NewRouteService(store)

	store.On("HasMutualMatch", uint(1), uint(2)).Return(false, nil)

	_, err := svc.SuggestRoute(1, 2)

	assert.ErrorIs(t, err, ErrNoMatch)
	store.AssertNotCalled(t, "FindUserByID")
}

func TestSuggestRoute_HalvesPairDistance(t *testing.T) {
	store := new(MockStorage)
	svc := NewRouteService(store)

	store.On("HasMutualMatch", uint(1), uint(2)).Return(true, nil)
	store.On("FindUserByID", uint(1)).Return(&models.User{ID: 1, LastLat: 52.52, LastLng: 13.405}, nil)
	store.On("FindUserByID", uint(2)).Return(&models.User{ID: 2, LastLat: 52.3906, LastLng: 13.0645}, nil)

	route, err := svc.SuggestRoute(1, 2)

	require.NoError(t, err)
	// Berlin-Potsdam is ~27 km, so the route proposal is ~13.5 km.
	assert.InDelta(t, 13.6, route.DistanceKm, 1.0)
	assert.Contains(t, route.MapLink, "https://www.google.com/maps/dir/")
	assert.Contains(t, route.MapLink, "52.52,13.405")
}

func TestSuggestRoute_MissingCounterpart(t *testing.T) {
	store := new(MockStorage)
	svc := NewRouteService(store)

	store.On("HasMutualMatch", uint(1), uint(2)).Return(true, nil)
	store.On("FindUserByID", uint(1)).Return(&models.User{ID: 1}, nil)
	store.On("FindUserByID", uint(2)).Return(nil, storage.ErrNotFound)

	_, err := svc.SuggestRoute(1, 2)

	assert.ErrorIs(t, err, ErrUserMissing)
}
