package services

import (
	"testing"
	"time"

	"github.com/sportmatch/backend/internal/models"
	"github.com/sportmatch/backend/internal/realtime"
	"github.com/sportmatch/backend/internal/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCipher(t *testing.T) *security.MessageCipher {
	t.Helper()
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	c, err := security.NewMessageCipher(key)
	require.NoError(t, err)
	return c
}

func TestChatSend_DeniedWithoutMatch(t *testing.T) {
	store := new(MockStorage)
	svc := NewChatService(store, testCipher(t), &recordingNotifier{})

	store.On("HasMutualMatch", uint(1), uint(2)).Return(false, nil)

	err := svc.Send(1, 2, "hello")

	assert.ErrorIs(t, err, ErrNoMatch)
	store.AssertNotCalled(t, "CreateMessage")
}

func TestChatSend_EncryptsBeforeStoring(t *testing.T) {
	store := new(MockStorage)
	cipher := testCipher(t)
	notifier := &recordingNotifier{}
	svc := NewChatService(store, cipher, notifier)

	store.On("HasMutualMatch", uint(2), uint(1)).Return(true, nil)

	var stored *models.ChatMessage
	store.On("CreateMessage", mock.AnythingOfType("*models.ChatMessage")).
		Run(func(args mock.Arguments) {
			stored = args.Get(0).(*models.ChatMessage)
		}).
		Return(nil)

	require.NoError(t, svc.Send(2, 1, "see you at the track"))

	require.NotNil(t, stored)
	assert.Equal(t, "1:2", stored.ConversationKey)
	assert.Equal(t, uint(2), stored.SenderID)
	assert.NotEqual(t, "see you at the track", stored.Ciphertext)

	plaintext, err := cipher.Decrypt(stored.Ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "see you at the track", plaintext)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, realtime.EventMessage, notifier.events[0].Type)
	assert.Equal(t, uint(1), notifier.events[0].UserID)
}

func TestChatHistory_DeniedWithoutMatch(t *testing.T) {
	store := new(MockStorage)
	svc := NewChatService(store, testCipher(t), &recordingNotifier{})

	store.On("HasMutualMatch", uint(1), uint(2)).Return(false, nil)

	_, err := svc.History(1, 2)

	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestChatHistory_DecryptsInOrder(t *testing.T) {
	store := new(MockStorage)
	cipher := testCipher(t)
	svc := NewChatService(store, cipher, &recordingNotifier{})

	first, err := cipher.Encrypt("first")
	require.NoError(t, err)
	second, err := cipher.Encrypt("second")
	require.NoError(t, err)

	ts := time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.UTC)
	store.On("HasMutualMatch", uint(1), uint(2)).Return(true, nil)
	store.On("ListMessages", "1:2").Return([]models.ChatMessage{
		{ID: 1, SenderID: 1, Ciphertext: first, Timestamp: ts},
		{ID: 2, SenderID: 2, Ciphertext: second, Timestamp: ts.Add(time.Minute)},
	}, nil)

	entries, err := svc.History(1, 2)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, uint(1), entries[0].SenderID)
	assert.Equal(t, "second", entries[1].Message)
	assert.Equal(t, "2026-03-14T09:26:53.589793Z", entries[0].Timestamp)
}

func TestChatHistory_SkipsUndecryptableMessages(t *testing.T) {
	store := new(MockStorage)
	cipher := testCipher(t)
	svc := NewChatService(store, cipher, &recordingNotifier{})

	good, err := cipher.Encrypt("still readable")
	require.NoError(t, err)

	store.On("HasMutualMatch", uint(1), uint(2)).Return(true, nil)
	store.On("ListMessages", "1:2").Return([]models.ChatMessage{
		{ID: 1, SenderID: 1, Ciphertext: "not even base64!!", Timestamp: time.Now()},
		{ID: 2, SenderID: 2, Ciphertext: good, Timestamp: time.Now()},
	}, nil)

	entries, err := svc.History(1, 2)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "still readable", entries[0].Message)
}
