package validators

import (
	"github.com/go-playground/validator/v10"
)

// KeyBitsValidation validates a requested modulus size in bits. Sizes follow
// the 256 to 2048 range in steps of 128 that the interactive shell offers.
func KeyBitsValidation(fl validator.FieldLevel) bool {
	bits := fl.Field().Int()

	if bits < 256 || bits > 2048 {
		return false
	}
	return bits%128 == 0
}
