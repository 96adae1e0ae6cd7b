package cryptography

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"rsa_playground_service/internal/domain/rsa"
	"rsa_playground_service/internal/pkg/logger"
)

// primeGenerator struct that implements the PrimeGenerator interface
type primeGenerator struct {
	tester rsa.PrimalityTester
	random io.Reader
	logger logger.Logger
}

// NewPrimeGenerator creates and returns a new instance of primeGenerator.
// When random is nil the crypto/rand reader is used.
func NewPrimeGenerator(tester rsa.PrimalityTester, random io.Reader, logger logger.Logger) (rsa.PrimeGenerator, error) {
	if tester == nil {
		return nil, errors.New("primality tester cannot be nil")
	}
	if random == nil {
		random = rand.Reader
	}
	return &primeGenerator{
		tester: tester,
		random: random,
		logger: logger,
	}, nil
}

// GenerateProbablePrime draws odd candidates of exactly bits bits until one
// passes the Miller-Rabin test. The loop is unbounded; by the prime number
// theorem roughly bits*ln(2)/2 odd candidates are tried on average.
func (g *primeGenerator) GenerateProbablePrime(bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("bit length must be at least 2, got %d", bits)
	}

	limit := new(big.Int).Lsh(big1, uint(bits))
	for trials := 1; ; trials++ {
		candidate, err := rand.Int(g.random, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to draw prime candidate: %w", err)
		}
		// Force the top bit so the candidate has the full requested length
		// and the low bit so it is odd.
		candidate.SetBit(candidate, bits-1, 1)
		candidate.SetBit(candidate, 0, 1)

		prime, err := g.tester.IsProbablePrime(candidate, rsa.DefaultMillerRabinRounds)
		if err != nil {
			return nil, fmt.Errorf("primality test failed: %w", err)
		}
		if prime {
			g.logger.Info("Generated ", bits, "-bit probable prime after ", trials, " candidates")
			return candidate, nil
		}
	}
}
