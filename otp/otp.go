// Package otp implements the HOTP (RFC 4226) and TOTP (RFC 6238) one-time
// password algorithms over a fixed-length shared secret key.
//
// All functions are pure: the caller supplies the key, the counter or the
// current time, and receives a zero-padded decimal code. The package never
// reads the system clock, never logs, and holds no state, so it is safe for
// concurrent use without locking.
package otp

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

const (
	// KeySize is the required secret key length in bytes.
	KeySize = 32
	// Digits is the number of decimal digits in a generated code.
	Digits = 6
	// Period is the TOTP time step in seconds.
	Period = 30
)

// codeModulus reduces the truncated 31-bit value to Digits decimal digits.
const codeModulus = 1000000

// ErrInvalidKeyLength indicates a key that is not exactly KeySize bytes was
// passed to the engine. The key codec guarantees the length on every normal
// path, so hitting this error means a caller bug.
var ErrInvalidKeyLength = errors.New("otp: key must be exactly 32 bytes")

// HOTP computes the RFC 4226 counter-based one-time password for the given
// key and counter. The result is a string of exactly Digits ASCII digits,
// zero-padded on the left.
func HOTP(key []byte, counter uint64) (string, error) {
	if len(key) != KeySize {
		return "", fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, len(key))
	}
	return generateCode(key, counter), nil
}

// TOTP computes the RFC 6238 time-based one-time password for the given key
// at the given instant. The counter is the number of whole Period-second
// steps since the Unix epoch. The caller supplies the time, so repeated
// calls with the same instant are deterministic.
func TOTP(key []byte, now time.Time) (string, error) {
	return HOTP(key, uint64(now.Unix())/Period)
}

// Validate reports whether code is the HOTP value for the given key and
// counter. The comparison is constant-time.
func Validate(key []byte, counter uint64, code string) (bool, error) {
	expected, err := HOTP(key, counter)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(code)) == 1, nil
}

// ValidateTOTP reports whether code is the TOTP value for the given key in
// the time step containing now. No adjacent steps are checked.
func ValidateTOTP(key []byte, now time.Time, code string) (bool, error) {
	return Validate(key, uint64(now.Unix())/Period, code)
}

// generateCode performs the HMAC-SHA1 computation and RFC 4226 section 5.3
// dynamic truncation. HMAC itself tolerates any key length (short keys are
// zero-padded to the block size), which is what makes the reference test
// vectors with their 20-byte key reachable; the exported API enforces the
// KeySize precondition before getting here.
func generateCode(key []byte, counter uint64) string {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(sha1.New, key)
	mac.Write(msg[:])
	digest := mac.Sum(nil)

	// Low nibble of the last digest byte selects a 4-byte window; the top
	// bit of that window is cleared so the value is a non-negative 31-bit
	// integer regardless of signed representation.
	offset := digest[len(digest)-1] & 0x0F
	truncated := binary.BigEndian.Uint32(digest[offset:offset+4]) & 0x7FFFFFFF

	return fmt.Sprintf("%0*d", Digits, truncated%codeModulus)
}
