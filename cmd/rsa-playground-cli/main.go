// Package main is the entry point for the rsa-playground-cli application.
// It initializes the root command and registers the key generation, text and
// file sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "rsa_playground_service/cmd/rsa-playground-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-playground-cli",
		Short: "Textbook RSA playground CLI tool",
		Long: `rsa-playground-cli is a command-line tool for exploring textbook RSA.
It generates key pairs from freshly drawn probable primes and encrypts or
decrypts text and arbitrary files one character or byte per block.

The scheme is the deliberately insecure textbook one (no padding, no
constant-time arithmetic); it exists to make the number theory observable,
not to protect data.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register key pair commands
	if err := commands.InitKeyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize key commands: %w", err)
	}

	// Register text commands
	if err := commands.InitTextCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize text commands: %w", err)
	}

	// Register file commands
	if err := commands.InitFileCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize file commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
