//go:build unit
// +build unit

package cryptography

import (
	"math/big"
	mrand "math/rand"
	"testing"

	"rsa_playground_service/internal/domain/rsa"
	"rsa_playground_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	TestKeyBits64  = 64
	TestKeyBits128 = 128
)

func setupKeyPairGenerator(t *testing.T) rsa.KeyPairGenerator {
	t.Helper()
	random := mrand.New(mrand.NewSource(99))
	tester, err := NewMillerRabinTester(random)
	require.NoError(t, err)
	log := testutil.SetupTestLogger(t)
	primes, err := NewPrimeGenerator(tester, random, log)
	require.NoError(t, err)
	generator, err := NewKeyPairGenerator(primes, random, log)
	require.NoError(t, err)
	return generator
}

func TestGenerateKeyPair(t *testing.T) {
	generator := setupKeyPairGenerator(t)

	t.Run("ProducesValidKeyPair", func(t *testing.T) {
		keyPair, err := generator.GenerateKeyPair(TestKeyBits128)
		require.NoError(t, err)
		require.NoError(t, keyPair.Validate())

		assert.Zero(t, keyPair.Public.N.Cmp(keyPair.Private.N), "halves must share the modulus")
		// Two 64-bit primes multiply into a 127- or 128-bit modulus.
		assert.GreaterOrEqual(t, keyPair.Public.N.BitLen(), TestKeyBits128-1)
		assert.LessOrEqual(t, keyPair.Public.N.BitLen(), TestKeyBits128)
	})

	t.Run("ExponentsInvertEachOther", func(t *testing.T) {
		keyPair, err := generator.GenerateKeyPair(TestKeyBits64)
		require.NoError(t, err)

		for _, m := range []int64{0, 1, 2, 65, 255, 94823} {
			message := big.NewInt(m)
			cipher := new(big.Int).Exp(message, keyPair.Public.E, keyPair.Public.N)
			plain := new(big.Int).Exp(cipher, keyPair.Private.D, keyPair.Private.N)
			assert.Zero(t, message.Cmp(plain), "message %d must survive the round trip", m)
		}
	})

	t.Run("ExponentBounds", func(t *testing.T) {
		keyPair, err := generator.GenerateKeyPair(TestKeyBits64)
		require.NoError(t, err)

		assert.True(t, keyPair.Public.E.Cmp(big2) >= 0, "public exponent must be at least 2")
		assert.True(t, keyPair.Public.E.Cmp(keyPair.Public.N) < 0, "public exponent must stay below the modulus")
		assert.True(t, keyPair.Private.D.Sign() > 0, "private exponent must be positive")
	})

	t.Run("SuccessiveKeyPairsDiffer", func(t *testing.T) {
		first, err := generator.GenerateKeyPair(TestKeyBits64)
		require.NoError(t, err)
		second, err := generator.GenerateKeyPair(TestKeyBits64)
		require.NoError(t, err)
		assert.NotZero(t, first.Public.N.Cmp(second.Public.N))
	})

	t.Run("RejectsTinyKeySizes", func(t *testing.T) {
		for _, bits := range []int{0, 8, 15} {
			_, err := generator.GenerateKeyPair(bits)
			assert.Error(t, err, "key size %d must be rejected", bits)
		}
	})

	t.Run("RejectsNilPrimeGenerator", func(t *testing.T) {
		log := testutil.SetupTestLogger(t)
		_, err := NewKeyPairGenerator(nil, nil, log)
		assert.Error(t, err)
	})
}
