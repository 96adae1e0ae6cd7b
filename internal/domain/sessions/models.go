package sessions

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"rsa_playground_service/internal/domain/rsa"
	"rsa_playground_service/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Session entity. Key material is stored as decimal strings because the
// numbers outgrow every native integer column type.
type Session struct {
	ID              string    `validate:"required,uuid4"`
	Bits            int       `validate:"required,keyBitsValidation"`
	Modulus         string    `validate:"required"`
	PublicExponent  string    `validate:"required"`
	PrivateExponent string    `validate:"required"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Session struct
func (s *Session) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("keyBitsValidation", validators.KeyBitsValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(s)
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

	return nil
}

// PublicKey reconstructs the public half from the stored decimal strings.
func (s *Session) PublicKey() (*rsa.PublicKey, error) {
	n, ok := new(big.Int).SetString(s.Modulus, 10)
	if !ok {
		return nil, fmt.Errorf("invalid modulus %q", s.Modulus)
	}
	e, ok := new(big.Int).SetString(s.PublicExponent, 10)
	if !ok {
		return nil, fmt.Errorf("invalid public exponent %q", s.PublicExponent)
	}
	return &rsa.PublicKey{N: n, E: e}, nil
}

// PrivateKey reconstructs the private half from the stored decimal strings.
func (s *Session) PrivateKey() (*rsa.PrivateKey, error) {
	n, ok := new(big.Int).SetString(s.Modulus, 10)
	if !ok {
		return nil, fmt.Errorf("invalid modulus %q", s.Modulus)
	}
	d, ok := new(big.Int).SetString(s.PrivateExponent, 10)
	if !ok {
		return nil, fmt.Errorf("invalid private exponent %q", s.PrivateExponent)
	}
	return &rsa.PrivateKey{N: n, D: d}, nil
}

// Message entity. Ciphertext units are stored as space-separated decimal
// text; an empty ciphertext represents an empty plaintext.
type Message struct {
	ID              string `validate:"required,uuid4"`
	SessionID       string `validate:"required,uuid4"`
	Kind            string `validate:"required,oneof=text bytes"`
	Name            string `validate:"omitempty,max=255"`
	ContentType     string `validate:"omitempty,max=100"`
	Size            int64  `validate:"min=0"`
	Width           int    `validate:"min=0"`
	Height          int    `validate:"min=0"`
	Checksum        string `validate:"required,len=64,hexadecimal"`
	Ciphertext      string
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Message struct
func (m *Message) Validate() error {
	validate := validator.New()

	err := validate.Struct(m)
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

	return nil
}

// Units parses the stored ciphertext back into numeric units.
func (m *Message) Units() ([]*big.Int, error) {
	return DecodeUnits(m.Ciphertext)
}

// EncodeUnits renders ciphertext units as space-separated decimal text.
func EncodeUnits(units []*big.Int) string {
	parts := make([]string, len(units))
	for i, unit := range units {
		parts[i] = unit.String()
	}
	return strings.Join(parts, " ")
}

// DecodeUnits parses space-separated decimal text into numeric units.
func DecodeUnits(s string) ([]*big.Int, error) {
	fields := strings.Fields(s)
	units := make([]*big.Int, len(fields))
	for i, field := range fields {
		unit, ok := new(big.Int).SetString(field, 10)
		if !ok {
			return nil, fmt.Errorf("invalid ciphertext unit %q at position %d", field, i)
		}
		units[i] = unit
	}
	return units, nil
}

// DecryptedMessage carries the recovered plaintext of a stored message.
// Text holds the plaintext for text messages, Data for byte messages.
type DecryptedMessage struct {
	MessageID   string
	Kind        string
	Name        string
	ContentType string
	Text        string
	Data        []byte
}

// SessionQuery defines filters, sorting and pagination for listing sessions.
type SessionQuery struct {
	Bits            int `validate:"min=0"`
	DateTimeCreated time.Time

	SortBy    string `validate:"omitempty,oneof=id bits date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"omitempty,min=1,max=100"`
	Offset    int    `validate:"min=0"`
}

// NewSessionQuery creates a SessionQuery with default pagination applied.
func NewSessionQuery() *SessionQuery {
	return &SessionQuery{
		SortBy:    "date_time_created",
		SortOrder: "desc",
		Limit:     10,
		Offset:    0,
	}
}

// Validate for validating SessionQuery struct
func (q *SessionQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
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

	return nil
}

// MessageQuery defines filters, sorting and pagination for listing messages.
type MessageQuery struct {
	SessionID       string `validate:"omitempty,uuid4"`
	Kind            string `validate:"omitempty,oneof=text bytes"`
	Name            string `validate:"omitempty,max=255"`
	DateTimeCreated time.Time

	SortBy    string `validate:"omitempty,oneof=id kind size date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"omitempty,min=1,max=100"`
	Offset    int    `validate:"min=0"`
}

// NewMessageQuery creates a MessageQuery with default pagination applied.
func NewMessageQuery() *MessageQuery {
	return &MessageQuery{
		SortBy:    "date_time_created",
		SortOrder: "desc",
		Limit:     10,
		Offset:    0,
	}
}

// Validate for validating MessageQuery struct
func (q *MessageQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
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

	return nil
}
