package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAndDecodeKey(t *testing.T) {
	valid := strings.Repeat("0123456789abcdef", 4)

	testCases := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "valid lowercase", raw: valid},
		{name: "valid uppercase", raw: strings.ToUpper(valid)},
		{name: "valid mixed case", raw: strings.Repeat("0123456789AbCdEf", 4)},
		{name: "empty", raw: "", wantErr: true},
		{name: "too short by one", raw: valid[:63], wantErr: true},
		{name: "too long by one", raw: valid + "a", wantErr: true},
		{name: "non-hex letter", raw: "g" + valid[1:], wantErr: true},
		{name: "dash", raw: valid[:32] + "-" + valid[33:], wantErr: true},
		{name: "embedded space", raw: valid[:10] + " " + valid[11:], wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := ValidateAndDecodeKey(tc.raw)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKeyFormat)
				assert.Nil(t, key)
				return
			}
			require.NoError(t, err)
			assert.Len(t, key, KeyByteLength)
		})
	}
}

func TestDecodeIsCaseInsensitive(t *testing.T) {
	raw := strings.Repeat("00deadbeef00cafe", 4)

	lower, err := ValidateAndDecodeKey(strings.ToLower(raw))
	require.NoError(t, err)

	upper, err := ValidateAndDecodeKey(strings.ToUpper(raw))
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
}

func TestDecodeByteOrder(t *testing.T) {
	raw := "ff" + strings.Repeat("00", 30) + "01"

	key, err := ValidateAndDecodeKey(raw)
	require.NoError(t, err)

	assert.Equal(t, byte(0xFF), key[0])
	assert.Equal(t, byte(0x01), key[31])
}

func TestKeyRoundTrip(t *testing.T) {
	for i := 0; i < 16; i++ {
		key := GenerateRandomKey()
		require.Len(t, key, KeyByteLength)

		decoded, err := ValidateAndDecodeKey(EncodeKey(key))
		require.NoError(t, err)
		assert.Equal(t, key, decoded)
	}
}

func TestGenerateRandomKeyIsNotConstant(t *testing.T) {
	a := GenerateRandomKey()
	b := GenerateRandomKey()
	assert.NotEqual(t, a, b)
}

func TestDeriveKeyFromPassphrase(t *testing.T) {
	salt := []byte("0123456789abcdef")

	key1 := DeriveKeyFromPassphrase([]byte("correct horse battery staple"), salt, PassphraseDefault)
	require.Len(t, key1, KeyByteLength)

	// Same inputs derive the same key.
	key2 := DeriveKeyFromPassphrase([]byte("correct horse battery staple"), salt, PassphraseDefault)
	assert.Equal(t, key1, key2)

	// A different passphrase or salt derives a different key.
	key3 := DeriveKeyFromPassphrase([]byte("incorrect horse"), salt, PassphraseDefault)
	assert.NotEqual(t, key1, key3)

	key4 := DeriveKeyFromPassphrase([]byte("correct horse battery staple"), []byte("fedcba9876543210"), PassphraseDefault)
	assert.NotEqual(t, key1, key4)
}

func TestSecureZeroBytes(t *testing.T) {
	key := GenerateRandomKey()
	SecureZeroBytes(key)
	for i, b := range key {
		require.Zero(t, b, "byte %d not cleared", i)
	}
}
