package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"rsa_playground_service/internal/domain/rsa"
	"rsa_playground_service/internal/infrastructure/cryptography"
	"rsa_playground_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// TextCommandHandler encapsulates logic for encrypting and decrypting text via CLI.
type TextCommandHandler struct {
	blockCodec rsa.BlockCodec
	logger     logger.Logger
}

// NewTextCommandHandler initializes a new TextCommandHandler with logging and a block codec.
func NewTextCommandHandler() (*TextCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	blockCodec, err := cryptography.NewBlockCodec(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create block codec: %w", err)
	}

	return &TextCommandHandler{
		blockCodec: blockCodec,
		logger:     loggerInstance,
	}, nil
}

// EncryptTextCmd encrypts a text file one code point per block
func (commandHandler *TextCommandHandler) EncryptTextCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: %v", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: %v", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: %v", err)
		return
	}

	publicKey, err := readPublicKey(publicKeyPath)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	plainText, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	units, err := commandHandler.blockCodec.EncryptText(publicKey, string(plainText))
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	if err := saveCiphertextToFile(units, outputFile); err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	commandHandler.logger.Info("Encrypted text path ", outputFile)
}

// DecryptTextCmd decrypts a ciphertext file back into text
func (commandHandler *TextCommandHandler) DecryptTextCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: %v", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: %v", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: %v", err)
		return
	}

	privateKey, err := readPrivateKey(privateKeyPath)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	units, err := readCiphertextFromFile(inputFile)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	text, err := commandHandler.blockCodec.DecryptText(privateKey, units)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	if err := os.WriteFile(outputFile, []byte(text), 0600); err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	commandHandler.logger.Info("Decrypted text path ", outputFile)
}

// InitTextCommands registers text-related commands
func InitTextCommands(rootCmd *cobra.Command) error {
	handler, err := NewTextCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create text command handler %w", err)
	}

	var encryptTextCmd = &cobra.Command{
		Use:   "encrypt-text",
		Short: "Encrypt a text file one character per block",
		Run:   handler.EncryptTextCmd,
	}
	encryptTextCmd.Flags().StringP("input-file", "", "", "Path to text file which needs to be encrypted")
	encryptTextCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptTextCmd.Flags().StringP("public-key", "", "", "Path to public key file")
	rootCmd.AddCommand(encryptTextCmd)

	var decryptTextCmd = &cobra.Command{
		Use:   "decrypt-text",
		Short: "Decrypt a ciphertext file back into text",
		Run:   handler.DecryptTextCmd,
	}
	decryptTextCmd.Flags().StringP("input-file", "", "", "Path to encrypted file")
	decryptTextCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptTextCmd.Flags().StringP("private-key", "", "", "Path to private key file")
	rootCmd.AddCommand(decryptTextCmd)

	return nil
}
