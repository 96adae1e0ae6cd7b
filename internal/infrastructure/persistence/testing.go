//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"rsa_playground_service/internal/domain/sessions"
	"rsa_playground_service/internal/infrastructure/persistence/models"
	"rsa_playground_service/internal/pkg/config"
	"rsa_playground_service/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Test constants
const (
	TestSessionBits256 = 256
	TestSessionBits512 = 512

	TestContentTypeText = "text/plain; charset=utf-8"
	TestContentTypePng  = "image/png"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	SessionRepo sessions.SessionRepository
	MessageRepo sessions.MessageRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	// Create connection
	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	// Register cleanup
	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	// Migrate schema
	err = db.AutoMigrate(&models.SessionModel{}, &models.MessageModel{})
	require.NoError(t, err, "Failed to migrate schema")

	// Create repositories
	log := testutil.SetupTestLogger(t)

	sessionRepo, err := NewGormSessionRepository(db, log)
	require.NoError(t, err, "Failed to create session repository")

	messageRepo, err := NewGormMessageRepository(db, log)
	require.NoError(t, err, "Failed to create message repository")

	return &TestContext{
		DB:          db,
		SessionRepo: sessionRepo,
		MessageRepo: messageRepo,
	}
}

// CreateTestSession creates a session carrying the classic demonstration key pair
func CreateTestSession(t *testing.T, bits int) *sessions.Session {
	t.Helper()

	return &sessions.Session{
		ID:              uuid.NewString(),
		Bits:            bits,
		Modulus:         "3233",
		PublicExponent:  "17",
		PrivateExponent: "2753",
		DateTimeCreated: time.Now(),
	}
}

// CreateTestMessage creates a text message bound to the given session
func CreateTestMessage(t *testing.T, sessionID string) *sessions.Message {
	t.Helper()

	return &sessions.Message{
		ID:              uuid.NewString(),
		SessionID:       sessionID,
		Kind:            sessions.MessageKindText,
		Size:            2,
		Checksum:        strings.Repeat("ab", 32),
		Ciphertext:      "2790 1313",
		DateTimeCreated: time.Now(),
	}
}

// CreateTestMessageWithOptions creates a message with custom options
func CreateTestMessageWithOptions(t *testing.T, sessionID, kind, name, contentType string, size int64) *sessions.Message {
	t.Helper()

	return &sessions.Message{
		ID:              uuid.NewString(),
		SessionID:       sessionID,
		Kind:            kind,
		Name:            name,
		ContentType:     contentType,
		Size:            size,
		Checksum:        strings.Repeat("cd", 32),
		Ciphertext:      "2790",
		DateTimeCreated: time.Now(),
	}
}
