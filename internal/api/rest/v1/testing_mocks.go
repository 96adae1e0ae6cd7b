//go:build unit
// +build unit

package v1

import (
	"context"

	"rsa_playground_service/internal/domain/sessions"

	"github.com/stretchr/testify/mock"
)

// MockSessionService is a mock implementation of SessionService
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context, bits int) (*sessions.Session, error) {
	args := m.Called(ctx, bits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.Session), args.Error(1)
}

func (m *MockSessionService) List(ctx context.Context, query *sessions.SessionQuery) ([]*sessions.Session, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sessions.Session), args.Error(1)
}

func (m *MockSessionService) GetByID(ctx context.Context, sessionID string) (*sessions.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.Session), args.Error(1)
}

func (m *MockSessionService) DeleteByID(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// MockMessageService is a mock implementation of MessageService
type MockMessageService struct {
	mock.Mock
}

func (m *MockMessageService) EncryptText(ctx context.Context, sessionID, text string) (*sessions.Message, error) {
	args := m.Called(ctx, sessionID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.Message), args.Error(1)
}

func (m *MockMessageService) EncryptBytes(ctx context.Context, sessionID, name, contentType string, data []byte) (*sessions.Message, error) {
	args := m.Called(ctx, sessionID, name, contentType, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.Message), args.Error(1)
}

func (m *MockMessageService) List(ctx context.Context, query *sessions.MessageQuery) ([]*sessions.Message, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sessions.Message), args.Error(1)
}

func (m *MockMessageService) GetByID(ctx context.Context, messageID string) (*sessions.Message, error) {
	args := m.Called(ctx, messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.Message), args.Error(1)
}

func (m *MockMessageService) DeleteByID(ctx context.Context, messageID string) error {
	args := m.Called(ctx, messageID)
	return args.Error(0)
}

func (m *MockMessageService) Decrypt(ctx context.Context, messageID string) (*sessions.DecryptedMessage, error) {
	args := m.Called(ctx, messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessions.DecryptedMessage), args.Error(1)
}

func (m *MockMessageService) Verify(ctx context.Context, messageID string) (bool, error) {
	args := m.Called(ctx, messageID)
	return args.Bool(0), args.Error(1)
}
