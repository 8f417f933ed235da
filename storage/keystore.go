// Package storage persists the hex-encoded secret key in a single file.
package storage

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/84adam/ft-otp/crypto"
)

// ErrKeyFileNotFound indicates the key file does not exist at the store path.
var ErrKeyFileNotFound = errors.New("storage: key file not found")

// KeyStore reads and writes one hex-encoded secret key at a fixed path. The
// on-disk format is the raw 64-character hex string with no additional
// encoding; surrounding whitespace is tolerated on read.
type KeyStore struct {
	path string
}

// NewKeyStore creates a key store backed by the file at path.
func NewKeyStore(path string) *KeyStore {
	return &KeyStore{path: path}
}

// Path returns the file path backing the store.
func (s *KeyStore) Path() string {
	return s.path
}

// Save validates hexKey and writes it verbatim to the store file with
// owner-only permissions. The key material never touches disk in any other
// form.
func (s *KeyStore) Save(hexKey string) error {
	if _, err := crypto.ValidateAndDecodeKey(hexKey); err != nil {
		return err
	}

	if err := os.WriteFile(s.path, []byte(hexKey), 0600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}

	return nil
}

// Load reads the store file and returns its trimmed contents. The contents
// are not validated here; callers decode through the key codec.
func (s *KeyStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrKeyFileNotFound, s.path)
		}
		return "", fmt.Errorf("failed to read key file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// LoadKey reads, validates and decodes the stored key in one step.
func (s *KeyStore) LoadKey() ([]byte, error) {
	hexKey, err := s.Load()
	if err != nil {
		return nil, err
	}

	return crypto.ValidateAndDecodeKey(hexKey)
}
