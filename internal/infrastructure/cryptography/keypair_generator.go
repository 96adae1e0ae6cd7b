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

// keyPairGenerator struct that implements the KeyPairGenerator interface
type keyPairGenerator struct {
	primes rsa.PrimeGenerator
	random io.Reader
	logger logger.Logger
}

// NewKeyPairGenerator creates and returns a new instance of keyPairGenerator.
// When random is nil the crypto/rand reader is used.
func NewKeyPairGenerator(primes rsa.PrimeGenerator, random io.Reader, logger logger.Logger) (rsa.KeyPairGenerator, error) {
	if primes == nil {
		return nil, errors.New("prime generator cannot be nil")
	}
	if random == nil {
		random = rand.Reader
	}
	return &keyPairGenerator{
		primes: primes,
		random: random,
		logger: logger,
	}, nil
}

// GenerateKeyPair builds a key pair from two distinct probable primes of
// bits/2 bits each. The public exponent is drawn uniformly from [2, phi-1]
// and redrawn until it is coprime to phi, then inverted to obtain the
// private exponent.
func (g *keyPairGenerator) GenerateKeyPair(bits int) (*rsa.KeyPair, error) {
	if bits < rsa.MinKeyPairBits {
		return nil, fmt.Errorf("key size must be at least %d bits, got %d", rsa.MinKeyPairBits, bits)
	}

	primeBits := bits / 2

	p, err := g.primes.GenerateProbablePrime(primeBits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate first prime: %w", err)
	}

	q, err := g.primes.GenerateProbablePrime(primeBits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate second prime: %w", err)
	}
	// Equal primes would make the modulus a square and phi wrong.
	for p.Cmp(q) == 0 {
		q, err = g.primes.GenerateProbablePrime(primeBits)
		if err != nil {
			return nil, fmt.Errorf("failed to generate second prime: %w", err)
		}
	}

	n := new(big.Int).Mul(p, q)
	pMinus1 := new(big.Int).Sub(p, big1)
	qMinus1 := new(big.Int).Sub(q, big1)
	phi := new(big.Int).Mul(pMinus1, qMinus1)

	phiMinus2 := new(big.Int).Sub(phi, big2)
	e := new(big.Int)
	for {
		draw, err := rand.Int(g.random, phiMinus2)
		if err != nil {
			return nil, fmt.Errorf("failed to draw public exponent: %w", err)
		}
		e.Add(draw, big2)
		if Gcd(e, phi).Cmp(big1) == 0 {
			break
		}
	}

	d, err := ModularInverse(e, phi)
	if err != nil {
		return nil, fmt.Errorf("failed to derive private exponent: %w", err)
	}

	keyPair := &rsa.KeyPair{
		Public:  &rsa.PublicKey{N: n, E: e},
		Private: &rsa.PrivateKey{N: new(big.Int).Set(n), D: d},
	}
	g.logger.Info("Generated ", bits, "-bit key pair")
	return keyPair, nil
}
