package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/84adam/ft-otp/crypto"
)

func TestGenerateKeyFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "key.hex")

	require.NoError(t, generateKeyFile(out, false, false))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	// The file holds a valid 64-character hex key and nothing else.
	key, err := crypto.ValidateAndDecodeKey(string(data))
	require.NoError(t, err)
	assert.Len(t, key, crypto.KeyByteLength)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestGenerateKeyFileRefusesOverwrite(t *testing.T) {
	out := filepath.Join(t.TempDir(), "key.hex")
	require.NoError(t, os.WriteFile(out, []byte("existing"), 0600))

	err := generateKeyFile(out, false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// Untouched without -force.
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(data))

	// Overwritten with -force.
	require.NoError(t, generateKeyFile(out, false, true))
	data, err = os.ReadFile(out)
	require.NoError(t, err)
	_, err = crypto.ValidateAndDecodeKey(string(data))
	assert.NoError(t, err)
}

func TestGeneratedKeysAreUnique(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.hex")
	second := filepath.Join(dir, "b.hex")

	require.NoError(t, generateKeyFile(first, false, false))
	require.NoError(t, generateKeyFile(second, false, false))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
