//go:build integration
// +build integration

package app

import (
	"testing"

	"rsa_playground_service/internal/domain/sessions"
	"rsa_playground_service/internal/infrastructure/cryptography"
	"rsa_playground_service/internal/infrastructure/persistence"
	"rsa_playground_service/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	SessionService sessions.SessionService
	MessageService sessions.MessageService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	// Setup database
	dbContext := persistence.SetupTestDB(t, dbType)

	// Setup number theory components
	primalityTester, err := cryptography.NewMillerRabinTester(nil)
	require.NoError(t, err, "Failed to create primality tester")

	primeGenerator, err := cryptography.NewPrimeGenerator(primalityTester, nil, logger)
	require.NoError(t, err, "Failed to create prime generator")

	keyPairGenerator, err := cryptography.NewKeyPairGenerator(primeGenerator, nil, logger)
	require.NoError(t, err, "Failed to create key pair generator")

	blockCodec, err := cryptography.NewBlockCodec(logger)
	require.NoError(t, err, "Failed to create block codec")

	// Initialize services
	sessionService, err := NewSessionService(keyPairGenerator, dbContext.SessionRepo, dbContext.MessageRepo, logger)
	require.NoError(t, err, "Failed to create SessionService")

	messageService, err := NewMessageService(blockCodec, dbContext.SessionRepo, dbContext.MessageRepo, logger)
	require.NoError(t, err, "Failed to create MessageService")

	return &TestServices{
		SessionService: sessionService,
		MessageService: messageService,
		DBContext:      dbContext,
	}
}
