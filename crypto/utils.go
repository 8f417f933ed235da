package crypto

import (
	"crypto/rand"
)

// GenerateRandomBytes creates a slice of bytes with a specified length,
// filled with cryptographically secure random data.
func GenerateRandomBytes(length int) []byte {
	randomBytes := make([]byte, length)
	if _, err := rand.Read(randomBytes); err != nil {
		// The OS entropy source failing is not recoverable here.
		panic("failed to generate random bytes: " + err.Error())
	}
	return randomBytes
}

// GenerateRandomKey creates a fresh KeyByteLength secret key.
func GenerateRandomKey() []byte {
	return GenerateRandomBytes(KeyByteLength)
}

// SecureZeroBytes securely zeros out a byte slice to prevent sensitive
// data from lingering in memory.
func SecureZeroBytes(slice []byte) {
	for i := range slice {
		slice[i] = 0
	}
}
