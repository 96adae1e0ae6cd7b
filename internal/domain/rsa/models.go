package rsa

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/go-playground/validator/v10"
)

// PublicKey holds the modulus and the public exponent of a key pair. Anyone
// holding it can encrypt; only the matching PrivateKey can decrypt.
type PublicKey struct {
	N *big.Int `validate:"required"`
	E *big.Int `validate:"required"`
}

// Validate for validating PublicKey struct
func (k *PublicKey) Validate() error {
	validate := validator.New()

	err := validate.Struct(k)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	if k.N.Sign() <= 0 {
		return fmt.Errorf("validation failed: modulus must be positive, got %s", k.N)
	}
	if k.E.Sign() <= 0 {
		return fmt.Errorf("validation failed: public exponent must be positive, got %s", k.E)
	}

	return nil
}

// PrivateKey holds the modulus and the private exponent of a key pair.
type PrivateKey struct {
	N *big.Int `validate:"required"`
	D *big.Int `validate:"required"`
}

// Validate for validating PrivateKey struct
func (k *PrivateKey) Validate() error {
	validate := validator.New()

	err := validate.Struct(k)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	if k.N.Sign() <= 0 {
		return fmt.Errorf("validation failed: modulus must be positive, got %s", k.N)
	}
	if k.D.Sign() <= 0 {
		return fmt.Errorf("validation failed: private exponent must be positive, got %s", k.D)
	}

	return nil
}

// KeyPair bundles the two halves produced by one generation call. Both halves
// share the modulus.
type KeyPair struct {
	Public  *PublicKey
	Private *PrivateKey
}

// Validate for validating KeyPair struct
func (kp *KeyPair) Validate() error {
	if kp.Public == nil || kp.Private == nil {
		return fmt.Errorf("validation failed: key pair must carry both halves")
	}
	if err := kp.Public.Validate(); err != nil {
		return fmt.Errorf("invalid public key: %w", err)
	}
	if err := kp.Private.Validate(); err != nil {
		return fmt.Errorf("invalid private key: %w", err)
	}
	if kp.Public.N.Cmp(kp.Private.N) != 0 {
		return fmt.Errorf("validation failed: public and private moduli differ")
	}
	return nil
}
