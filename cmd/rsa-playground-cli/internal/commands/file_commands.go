package commands

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"rsa_playground_service/internal/domain/rsa"
	"rsa_playground_service/internal/infrastructure/cryptography"
	"rsa_playground_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// FileCommandHandler encapsulates logic for encrypting and decrypting raw files via CLI.
type FileCommandHandler struct {
	blockCodec rsa.BlockCodec
	logger     logger.Logger
}

// NewFileCommandHandler initializes a new FileCommandHandler with logging and a block codec.
func NewFileCommandHandler() (*FileCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	blockCodec, err := cryptography.NewBlockCodec(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create block codec: %w", err)
	}

	return &FileCommandHandler{
		blockCodec: blockCodec,
		logger:     loggerInstance,
	}, nil
}

// EncryptFileCmd encrypts an arbitrary file one byte per block
func (commandHandler *FileCommandHandler) EncryptFileCmd(cmd *cobra.Command, _ []string) {
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

	data, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	commandHandler.logger.Info("Detected content type ", http.DetectContentType(data))

	units, err := commandHandler.blockCodec.EncryptBytes(publicKey, data)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	if err := saveCiphertextToFile(units, outputFile); err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	commandHandler.logger.Info("Encrypted data path ", outputFile)
}

// DecryptFileCmd decrypts a ciphertext file back into raw bytes
func (commandHandler *FileCommandHandler) DecryptFileCmd(cmd *cobra.Command, _ []string) {
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

	data, err := commandHandler.blockCodec.DecryptBytes(privateKey, units)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	if err := os.WriteFile(outputFile, data, 0600); err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	commandHandler.logger.Info("Decrypted data path ", outputFile)
}

// InitFileCommands registers file-related commands
func InitFileCommands(rootCmd *cobra.Command) error {
	handler, err := NewFileCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create file command handler %w", err)
	}

	var encryptFileCmd = &cobra.Command{
		Use:   "encrypt-file",
		Short: "Encrypt a file one byte per block",
		Run:   handler.EncryptFileCmd,
	}
	encryptFileCmd.Flags().StringP("input-file", "", "", "Path to input file which needs to be encrypted")
	encryptFileCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptFileCmd.Flags().StringP("public-key", "", "", "Path to public key file")
	rootCmd.AddCommand(encryptFileCmd)

	var decryptFileCmd = &cobra.Command{
		Use:   "decrypt-file",
		Short: "Decrypt a ciphertext file back into raw bytes",
		Run:   handler.DecryptFileCmd,
	}
	decryptFileCmd.Flags().StringP("input-file", "", "", "Path to encrypted file")
	decryptFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptFileCmd.Flags().StringP("private-key", "", "", "Path to private key file")
	rootCmd.AddCommand(decryptFileCmd)

	return nil
}
