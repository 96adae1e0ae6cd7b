//go:build unit
// +build unit

package cryptography

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGcd(t *testing.T) {
	t.Run("KnownPairs", func(t *testing.T) {
		cases := []struct {
			a, b, want int64
		}{
			{48, 18, 6},
			{18, 48, 6},
			{17, 3120, 1},
			{270, 192, 6},
			{1, 999, 1},
			{0, 5, 5},
			{5, 0, 5},
			{0, 0, 0},
		}
		for _, c := range cases {
			got := Gcd(big.NewInt(c.a), big.NewInt(c.b))
			assert.Equal(t, c.want, got.Int64(), "gcd(%d, %d)", c.a, c.b)
		}
	})

	t.Run("DoesNotModifyArguments", func(t *testing.T) {
		a := big.NewInt(48)
		b := big.NewInt(18)
		Gcd(a, b)
		assert.Equal(t, int64(48), a.Int64())
		assert.Equal(t, int64(18), b.Int64())
	})

	t.Run("LargeValues", func(t *testing.T) {
		a, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
		require.True(t, ok)
		b := new(big.Int).Mul(a, big.NewInt(7))
		got := Gcd(a, b)
		assert.Zero(t, got.Cmp(a))
	})
}

func TestModularInverse(t *testing.T) {
	t.Run("TextbookExponentPair", func(t *testing.T) {
		d, err := ModularInverse(big.NewInt(17), big.NewInt(3120))
		require.NoError(t, err)
		assert.Equal(t, int64(2753), d.Int64())
	})

	t.Run("ProductIsCongruentToOne", func(t *testing.T) {
		a := big.NewInt(12345)
		m := big.NewInt(1000000007)
		inv, err := ModularInverse(a, m)
		require.NoError(t, err)

		product := new(big.Int).Mul(a, inv)
		product.Mod(product, m)
		assert.Equal(t, int64(1), product.Int64())
		assert.True(t, inv.Sign() >= 0 && inv.Cmp(m) < 0, "inverse must be normalized into [0, m)")
	})

	t.Run("NoInverseWhenNotCoprime", func(t *testing.T) {
		_, err := ModularInverse(big.NewInt(6), big.NewInt(9))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no inverse")
	})

	t.Run("ModulusOne", func(t *testing.T) {
		inv, err := ModularInverse(big.NewInt(42), big.NewInt(1))
		require.NoError(t, err)
		assert.Equal(t, int64(0), inv.Int64())
	})

	t.Run("NegativeArgumentIsNormalized", func(t *testing.T) {
		// -3 is congruent to 4 modulo 7, and 4*2 is congruent to 1.
		inv, err := ModularInverse(big.NewInt(-3), big.NewInt(7))
		require.NoError(t, err)
		assert.Equal(t, int64(2), inv.Int64())
	})

	t.Run("NonPositiveModulus", func(t *testing.T) {
		_, err := ModularInverse(big.NewInt(3), big.NewInt(0))
		assert.Error(t, err)

		_, err = ModularInverse(big.NewInt(3), big.NewInt(-7))
		assert.Error(t, err)
	})

	t.Run("NilArguments", func(t *testing.T) {
		_, err := ModularInverse(nil, big.NewInt(7))
		assert.Error(t, err)

		_, err = ModularInverse(big.NewInt(3), nil)
		assert.Error(t, err)
	})
}
