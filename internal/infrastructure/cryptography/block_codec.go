package cryptography

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"

	"rsa_playground_service/internal/domain/rsa"
	"rsa_playground_service/internal/pkg/logger"
)

// blockCodec struct that implements the BlockCodec interface
type blockCodec struct {
	logger logger.Logger
}

// NewBlockCodec creates and returns a new instance of blockCodec
func NewBlockCodec(logger logger.Logger) (rsa.BlockCodec, error) {
	return &blockCodec{
		logger: logger,
	}, nil
}

// encryptAll checks every unit against the modulus and raises it to the
// public exponent. Shared by the unit, text and byte entry points. The first
// failing unit aborts the call without partial output.
func (c *blockCodec) encryptAll(key *rsa.PublicKey, units []*big.Int) ([]*big.Int, error) {
	if key == nil {
		return nil, errors.New("public key cannot be nil")
	}
	if err := key.Validate(); err != nil {
		return nil, fmt.Errorf("invalid public key: %w", err)
	}

	out := make([]*big.Int, len(units))
	for i, unit := range units {
		if unit == nil {
			return nil, fmt.Errorf("unit at position %d is nil", i)
		}
		if unit.Sign() < 0 {
			return nil, fmt.Errorf("unit %s at position %d is negative", unit, i)
		}
		if unit.Cmp(key.N) >= 0 {
			return nil, &rsa.UnitTooLargeError{Unit: new(big.Int).Set(unit), Position: i}
		}
		out[i] = new(big.Int).Exp(unit, key.E, key.N)
	}
	return out, nil
}

// decryptAll raises every unit to the private exponent. Range checks on the
// results are left to the callers that know the expected value domain.
func (c *blockCodec) decryptAll(key *rsa.PrivateKey, units []*big.Int) ([]*big.Int, error) {
	if key == nil {
		return nil, errors.New("private key cannot be nil")
	}
	if err := key.Validate(); err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	out := make([]*big.Int, len(units))
	for i, unit := range units {
		if unit == nil {
			return nil, fmt.Errorf("unit at position %d is nil", i)
		}
		out[i] = new(big.Int).Exp(unit, key.D, key.N)
	}
	return out, nil
}

// EncryptUnits encrypts a sequence of numeric units with the public key.
func (c *blockCodec) EncryptUnits(key *rsa.PublicKey, units []*big.Int) ([]*big.Int, error) {
	out, err := c.encryptAll(key, units)
	if err != nil {
		return nil, err
	}
	c.logger.Info("Encrypted ", len(out), " units")
	return out, nil
}

// DecryptUnits decrypts a sequence of numeric units with the private key.
func (c *blockCodec) DecryptUnits(key *rsa.PrivateKey, units []*big.Int) ([]*big.Int, error) {
	out, err := c.decryptAll(key, units)
	if err != nil {
		return nil, err
	}
	c.logger.Info("Decrypted ", len(out), " units")
	return out, nil
}

// EncryptText encrypts text one Unicode code point per unit.
func (c *blockCodec) EncryptText(key *rsa.PublicKey, text string) ([]*big.Int, error) {
	runes := []rune(text)
	units := make([]*big.Int, len(runes))
	for i, r := range runes {
		units[i] = big.NewInt(int64(r))
	}

	out, err := c.encryptAll(key, units)
	if err != nil {
		return nil, err
	}
	c.logger.Info("Encrypted text of ", len(runes), " characters")
	return out, nil
}

// DecryptText decrypts units back into a string. Every decrypted value must
// be a valid Unicode code point; surrogate halves are rejected.
func (c *blockCodec) DecryptText(key *rsa.PrivateKey, units []*big.Int) (string, error) {
	decrypted, err := c.decryptAll(key, units)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i, v := range decrypted {
		if !v.IsInt64() {
			return "", &rsa.InvalidCodePointError{Value: v, Position: i}
		}
		// The bound check must happen on the int64 value; converting an
		// oversized value to rune first would silently truncate it.
		cp := v.Int64()
		if cp < 0 || cp > utf8.MaxRune || !utf8.ValidRune(rune(cp)) {
			return "", &rsa.InvalidCodePointError{Value: v, Position: i}
		}
		sb.WriteRune(rune(cp))
	}

	c.logger.Info("Decrypted text of ", len(decrypted), " characters")
	return sb.String(), nil
}

// EncryptBytes encrypts raw data one byte per unit.
func (c *blockCodec) EncryptBytes(key *rsa.PublicKey, data []byte) ([]*big.Int, error) {
	units := make([]*big.Int, len(data))
	for i, b := range data {
		units[i] = big.NewInt(int64(b))
	}

	out, err := c.encryptAll(key, units)
	if err != nil {
		return nil, err
	}
	c.logger.Info("Encrypted ", len(data), " bytes")
	return out, nil
}

// DecryptBytes decrypts units back into raw bytes. Every decrypted value
// must fall inside [0, 255].
func (c *blockCodec) DecryptBytes(key *rsa.PrivateKey, units []*big.Int) ([]byte, error) {
	decrypted, err := c.decryptAll(key, units)
	if err != nil {
		return nil, err
	}

	data := make([]byte, len(decrypted))
	for i, v := range decrypted {
		if !v.IsInt64() {
			return nil, &rsa.InvalidByteValueError{Value: v, Position: i}
		}
		b := v.Int64()
		if b < 0 || b > 255 {
			return nil, &rsa.InvalidByteValueError{Value: v, Position: i}
		}
		data[i] = byte(b)
	}

	c.logger.Info("Decrypted ", len(data), " bytes")
	return data, nil
}
