// Package crypto provides the secret key codec and key material helpers for
// ft-otp: hex validation and decoding, random key generation, passphrase key
// derivation, and zeroization.
package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"
)

const (
	// KeyHexLength is the required length of a hex-encoded secret key.
	KeyHexLength = 64
	// KeyByteLength is the decoded secret key length in bytes.
	KeyByteLength = KeyHexLength / 2
)

// ErrInvalidKeyFormat indicates a key string that is not exactly KeyHexLength
// hexadecimal characters.
var ErrInvalidKeyFormat = errors.New("crypto: key must be 64 hexadecimal characters")

// ValidateAndDecodeKey checks that raw is exactly KeyHexLength hexadecimal
// characters (either case) and returns the KeyByteLength-byte decoding. The
// format is checked before any cryptographic use; the input is never
// truncated or padded to fit.
func ValidateAndDecodeKey(raw string) ([]byte, error) {
	if len(raw) != KeyHexLength {
		return nil, fmt.Errorf("%w: got %d characters", ErrInvalidKeyFormat, len(raw))
	}

	key, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyFormat, err)
	}

	return key, nil
}

// EncodeKey returns the lowercase hex encoding of key, the inverse of
// ValidateAndDecodeKey for KeyByteLength-byte input.
func EncodeKey(key []byte) string {
	return hex.EncodeToString(key)
}
