package cryptography

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"rsa_playground_service/internal/domain/rsa"
)

// millerRabinTester struct that implements the PrimalityTester interface
type millerRabinTester struct {
	random io.Reader
}

// NewMillerRabinTester creates and returns a new instance of millerRabinTester.
// When random is nil the crypto/rand reader is used.
func NewMillerRabinTester(random io.Reader) (rsa.PrimalityTester, error) {
	if random == nil {
		random = rand.Reader
	}
	return &millerRabinTester{
		random: random,
	}, nil
}

// IsProbablePrime runs rounds iterations of the Miller-Rabin test against n.
// Random bases are drawn uniformly from [2, n-2]; each base either proves n
// composite or leaves it a probable prime.
func (m *millerRabinTester) IsProbablePrime(n *big.Int, rounds int) (bool, error) {
	if n == nil {
		return false, errors.New("candidate cannot be nil")
	}
	if rounds <= 0 {
		return false, fmt.Errorf("round count must be positive, got %d", rounds)
	}

	if n.Cmp(big1) <= 0 || n.Cmp(big4) == 0 {
		return false, nil
	}
	if n.Cmp(big3) <= 0 {
		return true, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	// Factor n-1 as 2^s * d with d odd.
	d := new(big.Int).Sub(n, big1)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	nMinus1 := new(big.Int).Sub(n, big1)
	nMinus3 := new(big.Int).Sub(n, big3)
	x := new(big.Int)

	for round := 0; round < rounds; round++ {
		a, err := rand.Int(m.random, nMinus3)
		if err != nil {
			return false, fmt.Errorf("failed to draw random base: %w", err)
		}
		a.Add(a, big2)

		x.Exp(a, d, n)
		if x.Cmp(big1) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}

		isWitness := true
		for i := 0; i < s-1; i++ {
			x.Exp(x, big2, n)
			if x.Cmp(nMinus1) == 0 {
				isWitness = false
				break
			}
		}
		if isWitness {
			return false, nil
		}
	}

	return true, nil
}
