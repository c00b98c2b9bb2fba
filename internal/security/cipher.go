package security

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

var ErrDecryptFailed = errors.New("ciphertext could not be decrypted")

// MessageCipher encrypts chat messages with AES-256-GCM. The first key is
// used for encryption; all keys are tried for decryption so that old
// messages survive a key rotation.
type MessageCipher struct {
	gcms []cipher.AEAD
}

// NewMessageCipher builds a cipher from the primary key plus any legacy
// decryption-only keys.
func NewMessageCipher(key []byte, legacyKeys ...[]byte) (*MessageCipher, error) {
	mc := &MessageCipher{}
	for _, k := range append([][]byte{key}, legacyKeys...) {
		gcm, err := newGCM(k)
		if err != nil {
			return nil, err
		}
		mc.gcms = append(mc.gcms, gcm)
	}
	return mc, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return gcm, nil
}

// Encrypt seals plaintext with a fresh random nonce and returns the
// nonce-prefixed ciphertext as base64 suitable for a text column.
func (mc *MessageCipher) Encrypt(plaintext string) (string, error) {
	gcm := mc.gcms[0]
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt, trying every configured key. Corrupt or
// foreign ciphertext yields ErrDecryptFailed, never a panic.
func (mc *MessageCipher) Decrypt(encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptFailed, err)
	}
	for _, gcm := range mc.gcms {
		nonceSize := gcm.NonceSize()
		if len(data) < nonceSize {
			continue
		}
		nonce, payload := data[:nonceSize], data[nonceSize:]
		plaintext, err := gcm.Open(nil, nonce, payload, nil)
		if err == nil {
			return string(plaintext), nil
		}
	}
	return "", ErrDecryptFailed
}
