package services

import (
	"testing"

	"github.com/sportmatch/backend/internal/models"
	"github.com/sportmatch/backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Berlin as origin; Potsdam is ~27 km out, Hamburg ~255 km, Munich ~504 km.
var suggestionOrigin = &models.User{
	ID:      1,
	LastLat: 52.52,
	LastLng: 13.405,
}

func TestSuggestions_FiltersByRadius(t *testing.T) {
	store := new(MockStorage)
	svc := NewSuggestionService(store, 250, 200)

	store.On("FindCandidates", uint(1), storage.CandidateFilter{Limit: 200}).Return([]models.User{
		{ID: 2, Name: "Potsdam", LastLat: 52.3906, LastLng: 13.0645},
		{ID: 3, Name: "Munich", LastLat: 48.1351, LastLng: 11.582},
	}, nil)

	suggestions, err := svc.Suggestions(suggestionOrigin)

	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, uint(2), suggestions[0].ID)
	assert.Less(t, suggestions[0].DistanceKm, 50.0)
}

func TestSuggestions_SortedByDistance(t *testing.T) {
	store := new(MockStorage)
	svc := NewSuggestionService(store, 1000, 200)

	store.On("FindCandidates", uint(1), storage.CandidateFilter{Limit: 200}).Return([]models.User{
		{ID: 4, Name: "Munich", LastLat: 48.1351, LastLng: 11.582},
		{ID: 2, Name: "Potsdam", LastLat: 52.3906, LastLng: 13.0645},
		{ID: 3, Name: "Hamburg", LastLat: 53.5511, LastLng: 9.9937},
	}, nil)

	suggestions, err := svc.Suggestions(suggestionOrigin)

	require.NoError(t, err)
	require.Len(t, suggestions, 3)
	assert.Equal(t, uint(2), suggestions[0].ID)
	assert.Equal(t, uint(3), suggestions[1].ID)
	assert.Equal(t, uint(4), suggestions[2].ID)
}

func TestSuggestions_PreferencesForwardedToStore(t *testing.T) {
	store := new(MockStorage)
	svc := NewSuggestionService(store, 250, 200)

	sport := "running"
	minAge, maxAge := 25, 40
	user := &models.User{
		ID:                 1,
		LastLat:            52.52,
		LastLng:            13.405,
		PreferredSportType: &sport,
		PreferredMinAge:    &minAge,
		PreferredMaxAge:    &maxAge,
	}

	store.On("FindCandidates", uint(1), storage.CandidateFilter{
		SportType: &sport,
		MinAge:    &minAge,
		MaxAge:    &maxAge,
		Limit:     200,
	}).Return([]models.User{}, nil)

	_, err := svc.Suggestions(user)

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestSuggestions_EmptyResult(t *testing.T) {
	store := new(MockStorage)
	svc := NewSuggestionService(store, 250, 200)

	store.On("FindCandidates", uint(1), storage.CandidateFilter{Limit: 200}).Return([]models.User{}, nil)

	suggestions, err := svc.Suggestions(suggestionOrigin)

	require.NoError(t, err)
	assert.NotNil(t, suggestions)
	assert.Empty(t, suggestions)
}
