package credential

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"strings"
)

// ErrInvalidToken is the only error a decrypt failure produces. A bad
// key, a truncated token and a tampered ciphertext are indistinguishable
// to the caller so the gate endpoint cannot be used as an oracle.
var ErrInvalidToken = errors.New("invalid credential token")

// Cipher seals entry-credential payloads with AES-256-GCM. The key is
// derived once from the configured secret; each Seal call draws a fresh
// nonce, and the serialized form is "nonceHex:cipherHex".
type Cipher struct {
	aead cipher.AEAD
}

func NewCipher(secret string) (*Cipher, error) {
	if secret == "" {
		return nil, errors.New("credential token secret is empty")
	}

	key := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Cipher{aead: aead}, nil
}

func (c *Cipher) Seal(plaintext []byte) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := c.aead.Seal(nil, nonce, plaintext, nil)
	return hex.EncodeToString(nonce) + ":" + hex.EncodeToString(sealed), nil
}

func (c *Cipher) Open(token string) ([]byte, error) {
	parts := strings.SplitN(token, ":", 2)
	if len(parts) != 2 {
		return nil, ErrInvalidToken
	}

	nonce, err := hex.DecodeString(parts[0])
	if err != nil || len(nonce) != c.aead.NonceSize() {
		return nil, ErrInvalidToken
	}

	sealed, err := hex.DecodeString(parts[1])
	if err != nil {
		return nil, ErrInvalidToken
	}

	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return plaintext, nil
}
