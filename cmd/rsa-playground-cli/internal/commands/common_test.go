//go:build unit
// +build unit

package commands

import (
	"math/big"
	"path/filepath"
	"testing"

	"rsa_playground_service/internal/domain/rsa"
	"rsa_playground_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyFileRoundTrip(t *testing.T) {
	dir := t.TempDir()

	publicKey := &rsa.PublicKey{N: big.NewInt(3233), E: big.NewInt(17)}
	privateKey := &rsa.PrivateKey{N: big.NewInt(3233), D: big.NewInt(2753)}

	publicPath := filepath.Join(dir, "public.key")
	require.NoError(t, savePublicKeyToFile(publicKey, publicPath))

	privatePath := filepath.Join(dir, "private.key")
	require.NoError(t, savePrivateKeyToFile(privateKey, privatePath))

	loadedPublic, err := readPublicKey(publicPath)
	require.NoError(t, err)
	assert.Zero(t, loadedPublic.N.Cmp(publicKey.N))
	assert.Zero(t, loadedPublic.E.Cmp(publicKey.E))

	loadedPrivate, err := readPrivateKey(privatePath)
	require.NoError(t, err)
	assert.Zero(t, loadedPrivate.N.Cmp(privateKey.N))
	assert.Zero(t, loadedPrivate.D.Cmp(privateKey.D))
}

func TestReadKeyFileRejectsMalformedContent(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"single line", "3233\n"},
		{"three lines", "3233\n17\n99\n"},
		{"non-decimal modulus", "0xca1\n17\n"},
		{"non-decimal exponent", "3233\nseventeen\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "broken.key")
			require.NoError(t, testutil.CreateTestFile(path, []byte(tt.content)))

			_, _, err := readKeyFile(path)
			assert.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, _, err := readKeyFile(filepath.Join(dir, "does-not-exist.key"))
		assert.Error(t, err)
	})
}

func TestCiphertextFileRoundTrip(t *testing.T) {
	dir := t.TempDir()

	units := []*big.Int{big.NewInt(2790), big.NewInt(0), big.NewInt(3120)}
	path := filepath.Join(dir, "message.enc")
	require.NoError(t, saveCiphertextToFile(units, path))

	loaded, err := readCiphertextFromFile(path)
	require.NoError(t, err)
	require.Len(t, loaded, len(units))
	for i, unit := range units {
		assert.Zero(t, loaded[i].Cmp(unit), "unit at position %d", i)
	}
}

func TestReadCiphertextFromFileRejectsMalformedUnits(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "broken.enc")
	require.NoError(t, testutil.CreateTestFile(path, []byte("2790\nnot-a-number\n")))

	_, err := readCiphertextFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position 1")
}
