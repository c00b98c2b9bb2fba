package services

import (
	"errors"
	"testing"

	"github.com/sportmatch/backend/internal/realtime"
	"github.com/sportmatch/backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwipeRecord_SelfSwipeRejected(t *testing.T) {
	store := new(MockStorage)
	svc := NewSwipeService(store, &recordingNotifier{})

	result, err := svc.Record(7, 7, true)

	assert.ErrorIs(t, err, ErrSelfSwipe)
	assert.Nil(t, result)
	store.AssertNotCalled(t, "UpsertSwipe")
}

func TestSwipeRecord_ReciprocalLikeMatches(t *testing.T) {
	store := new(MockStorage)
	notifier := &recordingNotifier{}
	svc := NewSwipeService(store, notifier)

	store.On("UpsertSwipe", uint(1), uint(2), true).Return(nil)
	store.On("HasLiveLike", uint(2), uint(1)).Return(true, nil)

	result, err := svc.Record(1, 2, true)

	require.NoError(t, err)
	assert.True(t, result.Matched)
	require.Len(t, notifier.events, 1)
	assert.Equal(t, realtime.EventMatch, notifier.events[0].Type)
	assert.Equal(t, uint(2), notifier.events[0].UserID)
	assert.Equal(t, uint(1), notifier.events[0].FromID)
	store.AssertExpectations(t)
}

func TestSwipeRecord_NoReciprocalNoMatch(t *testing.T) {
	store := new(MockStorage)
	notifier := &recordingNotifier{}
	svc := NewSwipeService(store, notifier)

	store.On("UpsertSwipe", uint(1), uint(2), true).Return(nil)
	store.On("HasLiveLike", uint(2), uint(1)).Return(false, nil)

	result, err := svc.Record(1, 2, true)

	require.NoError(t, err)
	assert.False(t, result.Matched)
	assert.Empty(t, notifier.events)
}

func TestSwipeRecord_DislikeSkipsReciprocalCheck(t *testing.T) {
	store := new(MockStorage)
	svc := NewSwipeService(store, &recordingNotifier{})

	store.On("UpsertSwipe", uint(1), uint(2), false).Return(nil)

	result, err := svc.Record(1, 2, false)

	require.NoError(t, err)
	assert.False(t, result.Matched)
	store.AssertNotCalled(t, "HasLiveLike")
}

func TestSwipeRecord_StoreErrorPropagates(t *testing.T) {
	store := new(MockStorage)
	svc := NewSwipeService(store, &recordingNotifier{})

	store.On("UpsertSwipe", uint(1), uint(2), true).Return(errors.New("db down"))

	_, err := svc.Record(1, 2, true)

	assert.Error(t, err)
}

func TestListMatches_NilBecomesEmptySlice(t *testing.T) {
	store := new(MockStorage)
	svc := NewSwipeService(store, &recordingNotifier{})

	store.On("ListMatches", uint(5)).Return(nil, nil)

	rows, err := svc.ListMatches(5)

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestListMatches_ReturnsRows(t *testing.T) {
	store := new(MockStorage)
	svc := NewSwipeService(store, &recordingNotifier{})

	expected := []storage.MatchRow{{ID: 2, Name: "Ada", Age: 30}}
	store.On("ListMatches", uint(1)).Return(expected, nil)

	rows, err := svc.ListMatches(1)

	require.NoError(t, err)
	assert.Equal(t, expected, rows)
}

func TestUnmatch_NotifiesCounterpart(t *testing.T) {
	store := new(MockStorage)
	notifier := &recordingNotifier{}
	svc := NewSwipeService(store, notifier)

	store.On("SoftDeleteSwipePair", uint(1), uint(2)).Return(nil)

	require.NoError(t, svc.Unmatch(1, 2))
	require.Len(t, notifier.events, 1)
	assert.Equal(t, realtime.EventUnmatch, notifier.events[0].Type)
	assert.Equal(t, uint(2), notifier.events[0].UserID)
}
