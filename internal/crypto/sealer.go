// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// ErrSealedDataCorrupt is returned by Open for undecodable or forged blobs.
var ErrSealedDataCorrupt = errors.New("sealed data is corrupt or was sealed with another key")

const saltSize = 16

// credentialSealer is the private implementation of [CredentialSealer].
type credentialSealer struct {
	secret []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewCredentialSealer constructs a [CredentialSealer] keyed by secret with
// the Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewCredentialSealer(secret string) CredentialSealer {
	return &credentialSealer{
		secret:       []byte(secret),
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32,
	}
}

func (s *credentialSealer) deriveKey(salt []byte) []byte {
	return argon2.IDKey(s.secret, salt, s.argonTime, s.argonMemory, s.argonThreads, s.argonKeyLen)
}

func (s *credentialSealer) gcm(salt []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(s.deriveKey(salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// Seal implements [CredentialSealer].
func (s *credentialSealer) Seal(plaintext string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := s.gcm(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [CredentialSealer].
func (s *credentialSealer) Open(sealed string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrSealedDataCorrupt, err)
	}
	if len(blob) < saltSize {
		return "", fmt.Errorf("%w: blob too short", ErrSealedDataCorrupt)
	}

	salt, rest := blob[:saltSize], blob[saltSize:]
	gcm, err := s.gcm(salt)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize {
		return "", fmt.Errorf("%w: blob too short", ErrSealedDataCorrupt)
	}

	plaintext, err := gcm.Open(nil, rest[:nonceSize], rest[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSealedDataCorrupt, err)
	}

	return string(plaintext), nil
}
