//go:build unit
// +build unit

package rsa

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestUnitTooLargeErrorMatchesSentinel verifies errors.Is matching and the
// message contents for oversized plaintext units
func TestUnitTooLargeErrorMatchesSentinel(t *testing.T) {
	err := &UnitTooLargeError{Unit: big.NewInt(0x1F600), Position: 3}

	assert.True(t, errors.Is(err, ErrUnitTooLarge))
	assert.False(t, errors.Is(err, ErrInvalidByteValue))
	assert.Contains(t, err.Error(), "position 3")
	// A printable code point is named in the message.
	assert.Contains(t, err.Error(), "'\U0001F600'")

	wrapped := fmt.Errorf("encrypting message: %w", err)
	assert.True(t, errors.Is(wrapped, ErrUnitTooLarge))

	var unitErr *UnitTooLargeError
	assert.True(t, errors.As(wrapped, &unitErr))
	assert.Equal(t, 3, unitErr.Position)
}

// TestUnitTooLargeErrorSkipsUnprintableUnits verifies that units beyond the
// code point range are reported numerically only
func TestUnitTooLargeErrorSkipsUnprintableUnits(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 64)
	err := &UnitTooLargeError{Unit: huge, Position: 0}

	assert.Contains(t, err.Error(), huge.String())
	assert.NotContains(t, err.Error(), "'")
}

// TestInvalidByteValueErrorMatchesSentinel verifies errors.Is matching for
// out-of-range decrypted bytes
func TestInvalidByteValueErrorMatchesSentinel(t *testing.T) {
	err := &InvalidByteValueError{Value: big.NewInt(256), Position: 7}

	assert.True(t, errors.Is(err, ErrInvalidByteValue))
	assert.False(t, errors.Is(err, ErrUnitTooLarge))
	assert.Contains(t, err.Error(), "256")
	assert.Contains(t, err.Error(), "position 7")
}

// TestInvalidCodePointErrorMatchesSentinel verifies errors.Is matching for
// decrypted values that are not code points
func TestInvalidCodePointErrorMatchesSentinel(t *testing.T) {
	err := &InvalidCodePointError{Value: big.NewInt(0xD800), Position: 1}

	assert.True(t, errors.Is(err, ErrInvalidCodePoint))
	assert.False(t, errors.Is(err, ErrInvalidByteValue))
	assert.Contains(t, err.Error(), "not a valid code point")
}
