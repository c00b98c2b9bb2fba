package services

import (
	"errors"
	"log/slog"
	"time"

	"github.com/sportmatch/backend/internal/dto"
	"github.com/sportmatch/backend/internal/models"
	"github.com/sportmatch/backend/internal/realtime"
	"github.com/sportmatch/backend/internal/security"
	"github.com/sportmatch/backend/internal/storage"
)

// ErrNoMatch is the only authorization failure the messaging core raises.
// It deliberately does not say which direction of the match is missing.
var ErrNoMatch = errors.New("no active match between users")

// ChatService is the access-controlled encrypted messaging subsystem.
// Every send and every read re-validates mutual-match state first; there
// is no cached authorization to go stale.
type ChatService struct {
	store    storage.Storage
	cipher   *security.MessageCipher
	notifier realtime.Notifier
}

func NewChatService(store storage.Storage, cipher *security.MessageCipher, notifier realtime.Notifier) *ChatService {
	return &ChatService{store: store, cipher: cipher, notifier: notifier}
}

// canMessage is the single gate for chat access. It delegates to the live
// mutual-match computation only; blocks do not revoke access to an
// existing match.
func (s *ChatService) canMessage(senderID, counterpartID uint) error {
	ok, err := s.store.HasMutualMatch(senderID, counterpartID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoMatch
	}
	return nil
}

// Send encrypts and appends one message to the pair's conversation.
func (s *ChatService) Send(senderID, counterpartID uint, plaintext string) error {
	if err := s.canMessage(senderID, counterpartID); err != nil {
		return err
	}

	ciphertext, err := s.cipher.Encrypt(plaintext)
	if err != nil {
		return err
	}

	msg := models.ChatMessage{
		ConversationKey: models.ConversationKey(senderID, counterpartID),
		SenderID:        senderID,
		Ciphertext:      ciphertext,
		Timestamp:       time.Now().UTC(),
	}
	if err := s.store.CreateMessage(&msg); err != nil {
		return err
	}

	slog.Info("chat message stored", "sender", senderID, "counterpart", counterpartID)
	s.notifier.Notify(realtime.Event{Type: realtime.EventMessage, UserID: counterpartID, FromID: senderID})
	return nil
}

// History returns the decrypted conversation in timestamp order. A message
// that fails to decrypt (corruption, key rotation, encoding mismatch) is
// logged and skipped so the caller still gets everything readable.
func (s *ChatService) History(requesterID, counterpartID uint) ([]dto.ChatEntry, error) {
	if err := s.canMessage(requesterID, counterpartID); err != nil {
		return nil, err
	}

	msgs, err := s.store.ListMessages(models.ConversationKey(requesterID, counterpartID))
	if err != nil {
		return nil, err
	}

	entries := make([]dto.ChatEntry, 0, len(msgs))
	for _, msg := range msgs {
		plaintext, err := s.cipher.Decrypt(msg.Ciphertext)
		if err != nil {
			slog.Error("failed to decrypt message, skipping", "message_id", msg.ID, "error", err)
			continue
		}
		entries = append(entries, dto.ChatEntry{
			SenderID:  msg.SenderID,
			Message:   plaintext,
			Timestamp: formatTimestamp(msg.Timestamp),
		})
	}
	return entries, nil
}

// formatTimestamp renders a canonical ISO-8601 UTC timestamp with a "Z"
// suffix regardless of the zone the driver handed back.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.999999Z07:00")
}
