package crypto

import (
	"golang.org/x/crypto/argon2"
)

// PassphraseProfile defines Argon2id cost parameters for deriving a secret
// key from a passphrase.
type PassphraseProfile struct {
	Time    uint32 // iterations
	Memory  uint32 // KB
	Threads uint8  // parallelism
}

// PassphraseDefault is tuned for interactive one-shot derivation on the
// command line.
var PassphraseDefault = PassphraseProfile{
	Time:    4,
	Memory:  64 * 1024, // 64MB
	Threads: 2,
}

// PassphraseSaltLength is the salt length used for passphrase derivation.
const PassphraseSaltLength = 16

// DeriveKeyFromPassphrase derives a KeyByteLength secret key from a
// passphrase and salt using Argon2id with the given profile.
func DeriveKeyFromPassphrase(passphrase, salt []byte, profile PassphraseProfile) []byte {
	return argon2.IDKey(passphrase, salt, profile.Time, profile.Memory, profile.Threads, KeyByteLength)
}
