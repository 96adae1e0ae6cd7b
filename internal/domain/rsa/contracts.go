package rsa

import "math/big"

// PrimalityTester decides whether an integer is probably prime.
type PrimalityTester interface {
	// IsProbablePrime runs the given number of Miller-Rabin rounds against n.
	// A false result is definitive; a true result is wrong with probability at
	// most 4^-rounds. The error is non-nil only when the arguments are invalid
	// or the random source fails.
	IsProbablePrime(n *big.Int, rounds int) (bool, error)
}

// PrimeGenerator produces random probable primes of a requested bit length.
type PrimeGenerator interface {
	// GenerateProbablePrime draws random candidates of exactly bits bits, with
	// the top and low bit forced to one, until one passes the primality test.
	// The retry loop is unbounded; the expected number of trials grows
	// linearly with bits.
	GenerateProbablePrime(bits int) (*big.Int, error)
}

// KeyPairGenerator builds key pairs from freshly generated primes.
type KeyPairGenerator interface {
	// GenerateKeyPair generates two distinct probable primes of bits/2 bits
	// each, derives the modulus n = p*q and phi = (p-1)*(q-1), draws a random
	// public exponent coprime to phi and computes the matching private
	// exponent. bits must be at least MinKeyPairBits.
	GenerateKeyPair(bits int) (*KeyPair, error)
}

// BlockCodec encrypts and decrypts ordered unit sequences under a key pair.
// Every unit is transformed independently of its neighbors and order is
// preserved, so equal plaintext units yield equal ciphertext units. A failing
// call returns no partial output.
type BlockCodec interface {
	// EncryptUnits raises every unit to the public exponent modulo n. Fails
	// with a UnitTooLargeError when a unit does not fit below the modulus.
	EncryptUnits(key *PublicKey, units []*big.Int) ([]*big.Int, error)

	// DecryptUnits raises every unit to the private exponent modulo n.
	DecryptUnits(key *PrivateKey, units []*big.Int) ([]*big.Int, error)

	// EncryptText encrypts text one Unicode code point per unit. Fails with a
	// UnitTooLargeError naming the offending character.
	EncryptText(key *PublicKey, text string) ([]*big.Int, error)

	// DecryptText decrypts units back into a string. Fails with an
	// InvalidCodePointError when a decrypted value is not a valid code point.
	DecryptText(key *PrivateKey, units []*big.Int) (string, error)

	// EncryptBytes encrypts data one byte per unit.
	EncryptBytes(key *PublicKey, data []byte) ([]*big.Int, error)

	// DecryptBytes decrypts units back into raw bytes. Fails with an
	// InvalidByteValueError when a decrypted value falls outside [0, 255].
	DecryptBytes(key *PrivateKey, units []*big.Int) ([]byte, error)
}
