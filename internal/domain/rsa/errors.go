package rsa

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"
)

// Sentinel errors for matching codec failures with errors.Is.
var (
	// ErrUnitTooLarge indicates a plaintext unit that does not fit below the
	// key modulus. The key is too small for the data.
	ErrUnitTooLarge = errors.New("plaintext unit too large for key modulus")

	// ErrInvalidByteValue indicates a decrypted value outside [0, 255]. The
	// key does not match the ciphertext or the ciphertext is corrupted.
	ErrInvalidByteValue = errors.New("decrypted value outside byte range")

	// ErrInvalidCodePoint indicates a decrypted value that is not a valid
	// Unicode code point.
	ErrInvalidCodePoint = errors.New("decrypted value is not a valid code point")
)

// UnitTooLargeError reports a plaintext unit at or above the modulus, along
// with its position in the message. The failing call returns no partial
// output.
type UnitTooLargeError struct {
	Unit     *big.Int
	Position int
}

func (e *UnitTooLargeError) Error() string {
	if e.Unit.IsInt64() {
		if v := e.Unit.Int64(); v >= 0 && v <= utf8.MaxRune && utf8.ValidRune(rune(v)) {
			return fmt.Sprintf("unit %s (%q) at position %d does not fit below the modulus", e.Unit, rune(v), e.Position)
		}
	}
	return fmt.Sprintf("unit %s at position %d does not fit below the modulus", e.Unit, e.Position)
}

// Is reports whether target is ErrUnitTooLarge.
func (e *UnitTooLargeError) Is(target error) bool {
	return target == ErrUnitTooLarge
}

// InvalidByteValueError reports a decrypted value that cannot be a byte,
// along with its position in the ciphertext.
type InvalidByteValueError struct {
	Value    *big.Int
	Position int
}

func (e *InvalidByteValueError) Error() string {
	return fmt.Sprintf("decrypted value %s at position %d is outside [0, 255]", e.Value, e.Position)
}

// Is reports whether target is ErrInvalidByteValue.
func (e *InvalidByteValueError) Is(target error) bool {
	return target == ErrInvalidByteValue
}

// InvalidCodePointError reports a decrypted value that is not a valid Unicode
// code point, along with its position in the ciphertext.
type InvalidCodePointError struct {
	Value    *big.Int
	Position int
}

func (e *InvalidCodePointError) Error() string {
	return fmt.Sprintf("decrypted value %s at position %d is not a valid code point", e.Value, e.Position)
}

// Is reports whether target is ErrInvalidCodePoint.
func (e *InvalidCodePointError) Is(target error) bool {
	return target == ErrInvalidCodePoint
}
