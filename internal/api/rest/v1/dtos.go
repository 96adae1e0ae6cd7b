package v1

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"rsa_playground_service/internal/domain/sessions"
	"rsa_playground_service/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// CreateSessionRequest represents the payload for creating a session.
// A zero bits value selects the default key size.
type CreateSessionRequest struct {
	Bits int `json:"bits" validate:"omitempty,keyBitsValidation"`
}

// Validate for validating CreateSessionRequest struct
func (r *CreateSessionRequest) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("keyBitsValidation", validators.KeyBitsValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(r)
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

// EncryptTextRequest represents the payload for encrypting a text message.
// An empty text is allowed and produces an empty ciphertext.
type EncryptTextRequest struct {
	Text string `json:"text"`
}

// SessionResponse represents a stored session. The private exponent never
// leaves the server.
type SessionResponse struct {
	ID              string    `json:"id"`
	Bits            int       `json:"bits"`
	Modulus         string    `json:"modulus"`
	PublicExponent  string    `json:"public_exponent"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// MessageResponse represents a stored message. Ciphertext crosses the wire
// as one decimal string per unit.
type MessageResponse struct {
	ID              string    `json:"id"`
	SessionID       string    `json:"session_id"`
	Kind            string    `json:"kind"`
	Name            string    `json:"name,omitempty"`
	ContentType     string    `json:"content_type,omitempty"`
	Size            int64     `json:"size"`
	Width           int       `json:"width,omitempty"`
	Height          int       `json:"height,omitempty"`
	Checksum        string    `json:"checksum"`
	Ciphertext      []string  `json:"ciphertext"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// DecryptTextResponse carries the recovered plaintext of a text message
type DecryptTextResponse struct {
	MessageID string `json:"message_id"`
	Kind      string `json:"kind"`
	Text      string `json:"text"`
}

// VerifyResponse reports whether a message still decrypts to the plaintext
// recorded at encryption time
type VerifyResponse struct {
	MessageID string `json:"message_id"`
	Matches   bool   `json:"matches"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational response
type InfoResponse struct {
	Message string `json:"message"`
}

// newSessionResponse maps a domain session onto its response shape
func newSessionResponse(session *sessions.Session) SessionResponse {
	return SessionResponse{
		ID:              session.ID,
		Bits:            session.Bits,
		Modulus:         session.Modulus,
		PublicExponent:  session.PublicExponent,
		DateTimeCreated: session.DateTimeCreated,
	}
}

// newMessageResponse maps a domain message onto its response shape
func newMessageResponse(message *sessions.Message) MessageResponse {
	return MessageResponse{
		ID:              message.ID,
		SessionID:       message.SessionID,
		Kind:            message.Kind,
		Name:            message.Name,
		ContentType:     message.ContentType,
		Size:            message.Size,
		Width:           message.Width,
		Height:          message.Height,
		Checksum:        message.Checksum,
		Ciphertext:      strings.Fields(message.Ciphertext),
		DateTimeCreated: message.DateTimeCreated,
	}
}
