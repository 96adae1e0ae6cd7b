package commands

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"rsa_playground_service/internal/domain/rsa"
	"rsa_playground_service/internal/pkg/config"
	"rsa_playground_service/internal/pkg/logger"

	"github.com/briandowns/spinner"
)

// In commands/common.go
func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// startSpinner shows a busy indicator while a long-running call is in flight.
// The returned cleanup stops it.
func startSpinner(message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	s.Start()

	cleanup := func() {
		s.Stop()
	}
	return s, cleanup
}

// Key files hold two lines of decimal text: the modulus, then the exponent.

// savePublicKeyToFile persists the public half of a key pair
func savePublicKeyToFile(key *rsa.PublicKey, filePath string) error {
	content := fmt.Sprintf("%s\n%s\n", key.N.String(), key.E.String())
	if err := os.WriteFile(filePath, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write public key file: %w", err)
	}
	return nil
}

// savePrivateKeyToFile persists the private half of a key pair
func savePrivateKeyToFile(key *rsa.PrivateKey, filePath string) error {
	content := fmt.Sprintf("%s\n%s\n", key.N.String(), key.D.String())
	if err := os.WriteFile(filePath, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write private key file: %w", err)
	}
	return nil
}

// readKeyFile parses a two-line decimal key file into modulus and exponent
func readKeyFile(filePath string) (*big.Int, *big.Int, error) {
	data, err := os.ReadFile(filepath.Clean(filePath))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read key file: %w", err)
	}

	lines := strings.Fields(string(data))
	if len(lines) != 2 {
		return nil, nil, fmt.Errorf("key file %s must hold exactly two decimal numbers, found %d", filePath, len(lines))
	}

	n, ok := new(big.Int).SetString(lines[0], 10)
	if !ok {
		return nil, nil, fmt.Errorf("invalid modulus %q in key file %s", lines[0], filePath)
	}
	exp, ok := new(big.Int).SetString(lines[1], 10)
	if !ok {
		return nil, nil, fmt.Errorf("invalid exponent %q in key file %s", lines[1], filePath)
	}

	return n, exp, nil
}

// readPublicKey loads a public key from a two-line decimal key file
func readPublicKey(filePath string) (*rsa.PublicKey, error) {
	n, e, err := readKeyFile(filePath)
	if err != nil {
		return nil, err
	}
	return &rsa.PublicKey{N: n, E: e}, nil
}

// readPrivateKey loads a private key from a two-line decimal key file
func readPrivateKey(filePath string) (*rsa.PrivateKey, error) {
	n, d, err := readKeyFile(filePath)
	if err != nil {
		return nil, err
	}
	return &rsa.PrivateKey{N: n, D: d}, nil
}

// Ciphertext files hold one decimal unit per line, in message order.

// saveCiphertextToFile persists ciphertext units as newline-separated decimal text
func saveCiphertextToFile(units []*big.Int, filePath string) error {
	var sb strings.Builder
	for _, unit := range units {
		sb.WriteString(unit.String())
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(filePath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write ciphertext file: %w", err)
	}
	return nil
}

// readCiphertextFromFile parses newline-separated decimal text into ciphertext units
func readCiphertextFromFile(filePath string) ([]*big.Int, error) {
	data, err := os.ReadFile(filepath.Clean(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read ciphertext file: %w", err)
	}

	fields := strings.Fields(string(data))
	units := make([]*big.Int, len(fields))
	for i, field := range fields {
		unit, ok := new(big.Int).SetString(field, 10)
		if !ok {
			return nil, fmt.Errorf("invalid ciphertext unit %q at position %d in %s", field, i, filePath)
		}
		units[i] = unit
	}
	return units, nil
}
