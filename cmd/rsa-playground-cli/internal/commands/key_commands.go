package commands

import (
	"fmt"

	"rsa_playground_service/internal/domain/rsa"
	"rsa_playground_service/internal/domain/sessions"
	"rsa_playground_service/internal/infrastructure/cryptography"
	"rsa_playground_service/internal/pkg/logger"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// KeyCommandHandler encapsulates logic for generating key pairs via CLI.
type KeyCommandHandler struct {
	keyPairGenerator rsa.KeyPairGenerator
	logger           logger.Logger
}

// NewKeyCommandHandler initializes a new KeyCommandHandler with logging and a
// key pair generator backed by the crypto/rand source.
func NewKeyCommandHandler() (*KeyCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	primalityTester, err := cryptography.NewMillerRabinTester(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create primality tester: %w", err)
	}

	primeGenerator, err := cryptography.NewPrimeGenerator(primalityTester, nil, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create prime generator: %w", err)
	}

	keyPairGenerator, err := cryptography.NewKeyPairGenerator(primeGenerator, nil, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair generator: %w", err)
	}

	return &KeyCommandHandler{
		keyPairGenerator: keyPairGenerator,
		logger:           loggerInstance,
	}, nil
}

// GenerateKeysCmd generates a key pair and persists both halves in a selected directory
func (commandHandler *KeyCommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag: %v", err)
		return
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag: %v", err)
		return
	}

	if keySize < sessions.MinKeyBits || keySize > sessions.MaxKeyBits || keySize%sessions.KeyBitsStep != 0 {
		commandHandler.logger.Error(fmt.Sprintf("key size %d is not supported; sizes run from %d to %d bits in steps of %d", keySize, sessions.MinKeyBits, sessions.MaxKeyBits, sessions.KeyBitsStep))
		return
	}

	uniqueID := uuid.New()

	// Prime generation blocks for a while at larger sizes; show progress.
	_, stopSpinner := startSpinner(fmt.Sprintf("Generating %d-bit key pair...", keySize))
	keyPair, err := commandHandler.keyPairGenerator.GenerateKeyPair(keySize)
	stopSpinner()
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	privateKeyFilePath := fmt.Sprintf("%s/%s-private.key", keyDir, uniqueID.String())
	if err := savePrivateKeyToFile(keyPair.Private, privateKeyFilePath); err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	publicKeyFilePath := fmt.Sprintf("%s/%s-public.key", keyDir, uniqueID.String())
	if err := savePublicKeyToFile(keyPair.Public, publicKeyFilePath); err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	fmt.Println(color.GreenString("✓") + " Generated key pair:")
	fmt.Println("    public:  " + color.YellowString(publicKeyFilePath))
	fmt.Println("    private: " + color.YellowString(privateKeyFilePath))
}

// InitKeyCommands registers key-pair-related commands
func InitKeyCommands(rootCmd *cobra.Command) error {
	handler, err := NewKeyCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create key command handler %w", err)
	}

	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate a textbook RSA key pair",
		Run:   handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().IntP("key-size", "", sessions.DefaultKeyBits, "Modulus size in bits (256 to 2048 in steps of 128)")
	generateKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the key pair")
	rootCmd.AddCommand(generateKeysCmd)

	return nil
}
