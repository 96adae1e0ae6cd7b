package app

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	// The blank imports register the PNG and JPEG formats with image.DecodeConfig.
	_ "image/jpeg"
	_ "image/png"

	"rsa_playground_service/internal/domain/rsa"
	"rsa_playground_service/internal/domain/sessions"
	"rsa_playground_service/internal/pkg/logger"

	"github.com/google/uuid"
)

// messageService implements the MessageService interface for encrypting,
// storing and recovering messages
type messageService struct {
	blockCodec  rsa.BlockCodec
	sessionRepo sessions.SessionRepository
	messageRepo sessions.MessageRepository
	logger      logger.Logger
}

// NewMessageService creates a new messageService instance
func NewMessageService(blockCodec rsa.BlockCodec, sessionRepo sessions.SessionRepository, messageRepo sessions.MessageRepository, logger logger.Logger) (sessions.MessageService, error) {
	return &messageService{
		blockCodec:  blockCodec,
		sessionRepo: sessionRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}, nil
}

// EncryptText encrypts text under the session's public key and persists the
// resulting message. Size counts characters, matching the number of
// ciphertext units.
func (s *messageService) EncryptText(ctx context.Context, sessionID, text string) (*sessions.Message, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	publicKey, err := session.PublicKey()
	if err != nil {
		return nil, fmt.Errorf("failed to load session key material: %w", err)
	}

	units, err := s.blockCodec.EncryptText(publicKey, text)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt text: %w", err)
	}

	digest := sha256.Sum256([]byte(text))

	message := &sessions.Message{
		ID:              uuid.New().String(),
		SessionID:       session.ID,
		Kind:            sessions.MessageKindText,
		ContentType:     "text/plain; charset=utf-8",
		Size:            int64(utf8.RuneCountInString(text)),
		Checksum:        hex.EncodeToString(digest[:]),
		Ciphertext:      sessions.EncodeUnits(units),
		DateTimeCreated: time.Now(),
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info(fmt.Sprintf("Encrypted %d characters into message %s", message.Size, message.ID))
	return message, nil
}

// EncryptBytes encrypts raw data under the session's public key and persists
// the resulting message together with its file metadata. An empty content
// type is sniffed from the payload.
func (s *messageService) EncryptBytes(ctx context.Context, sessionID, name, contentType string, data []byte) (*sessions.Message, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	publicKey, err := session.PublicKey()
	if err != nil {
		return nil, fmt.Errorf("failed to load session key material: %w", err)
	}

	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	width, height := imageDimensions(contentType, data)

	units, err := s.blockCodec.EncryptBytes(publicKey, data)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	digest := sha256.Sum256(data)

	message := &sessions.Message{
		ID:              uuid.New().String(),
		SessionID:       session.ID,
		Kind:            sessions.MessageKindBytes,
		Name:            name,
		ContentType:     contentType,
		Size:            int64(len(data)),
		Width:           width,
		Height:          height,
		Checksum:        hex.EncodeToString(digest[:]),
		Ciphertext:      sessions.EncodeUnits(units),
		DateTimeCreated: time.Now(),
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info(fmt.Sprintf("Encrypted %d bytes into message %s", message.Size, message.ID))
	return message, nil
}

// List retrieves all messages considering a query filter
func (s *messageService) List(ctx context.Context, query *sessions.MessageQuery) ([]*sessions.Message, error) {
	messages, err := s.messageRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return messages, nil
}

// GetByID retrieves a message by ID
func (s *messageService) GetByID(ctx context.Context, messageID string) (*sessions.Message, error) {
	message, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return message, nil
}

// DeleteByID deletes a message by ID
func (s *messageService) DeleteByID(ctx context.Context, messageID string) error {
	if err := s.messageRepo.DeleteByID(ctx, messageID); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Decrypt recovers the plaintext of a stored message using its session's
// private key. The message kind decides whether units decode back into text
// or raw bytes.
func (s *messageService) Decrypt(ctx context.Context, messageID string) (*sessions.DecryptedMessage, error) {
	message, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	session, err := s.sessionRepo.GetByID(ctx, message.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session for message: %w", err)
	}

	privateKey, err := session.PrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to load session key material: %w", err)
	}

	units, err := message.Units()
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored ciphertext: %w", err)
	}

	decrypted := &sessions.DecryptedMessage{
		MessageID:   message.ID,
		Kind:        message.Kind,
		Name:        message.Name,
		ContentType: message.ContentType,
	}

	switch message.Kind {
	case sessions.MessageKindText:
		text, err := s.blockCodec.DecryptText(privateKey, units)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt text: %w", err)
		}
		decrypted.Text = text
	case sessions.MessageKindBytes:
		data, err := s.blockCodec.DecryptBytes(privateKey, units)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt data: %w", err)
		}
		decrypted.Data = data
	default:
		return nil, fmt.Errorf("unsupported message kind: %s", message.Kind)
	}

	return decrypted, nil
}

// Verify decrypts a stored message and compares the SHA-256 of the result
// against the checksum recorded at encryption time
func (s *messageService) Verify(ctx context.Context, messageID string) (bool, error) {
	message, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return false, fmt.Errorf("%w", err)
	}

	decrypted, err := s.Decrypt(ctx, messageID)
	if err != nil {
		return false, fmt.Errorf("%w", err)
	}

	var digest [sha256.Size]byte
	if decrypted.Kind == sessions.MessageKindText {
		digest = sha256.Sum256([]byte(decrypted.Text))
	} else {
		digest = sha256.Sum256(decrypted.Data)
	}

	return hex.EncodeToString(digest[:]) == message.Checksum, nil
}

// imageDimensions reads the width and height from PNG or JPEG headers.
// Unreadable or non-image payloads yield zero dimensions.
func imageDimensions(contentType string, data []byte) (int, int) {
	if !strings.HasPrefix(contentType, "image/") {
		return 0, 0
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
