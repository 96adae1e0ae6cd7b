// cmd/rsa-playground-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "rsa_playground_service/internal/api/rest/v1"
	"rsa_playground_service/internal/app"
	"rsa_playground_service/internal/domain/rsa"
	"rsa_playground_service/internal/domain/sessions"
	"rsa_playground_service/internal/infrastructure/cryptography"
	"rsa_playground_service/internal/infrastructure/persistence"
	"rsa_playground_service/internal/infrastructure/persistence/models"
	"rsa_playground_service/internal/pkg/config"
	"rsa_playground_service/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/joho/godotenv"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load environment overrides; a missing .env file is fine
	_ = godotenv.Load()

	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-api.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	services, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, services, log)
}

// appServices holds all initialized application services
type appServices struct {
	session sessions.SessionService
	message sessions.MessageService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appServices, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.SessionModel{}, &models.MessageModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	sessionRepo, err := persistence.NewGormSessionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	messageRepo, err := persistence.NewGormMessageRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create message repository: %w", err)
	}

	// Initialize the cryptographic core; nil selects the crypto/rand source
	keyPairGenerator, blockCodec, err := initializeCryptoCore(log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize crypto core: %w", err)
	}

	// Initialize services
	sessionService, err := app.NewSessionService(keyPairGenerator, sessionRepo, messageRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}

	messageService, err := app.NewMessageService(blockCodec, sessionRepo, messageRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create message service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		session: sessionService,
		message: messageService,
	}, nil
}

// initializeCryptoCore sets up the key pair generator and the block codec
func initializeCryptoCore(log logger.Logger) (rsa.KeyPairGenerator, rsa.BlockCodec, error) {
	primalityTester, err := cryptography.NewMillerRabinTester(nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create primality tester: %w", err)
	}

	primeGenerator, err := cryptography.NewPrimeGenerator(primalityTester, nil, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create prime generator: %w", err)
	}

	keyPairGenerator, err := cryptography.NewKeyPairGenerator(primeGenerator, nil, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create key pair generator: %w", err)
	}

	blockCodec, err := cryptography.NewBlockCodec(log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create block codec: %w", err)
	}

	return keyPairGenerator, blockCodec, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, services *appServices, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, services.session, services.message)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
