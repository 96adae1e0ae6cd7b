package rsa

// DefaultMillerRabinRounds is the number of Miller-Rabin trials run against
// each candidate during prime generation. A composite survives one round with
// probability at most 1/4, so five rounds bound the false-accept chance per
// candidate at 4^-5.
const DefaultMillerRabinRounds = 5

// MinKeyPairBits is the smallest modulus size GenerateKeyPair accepts. Below
// 16 bits the two 8-bit primes collide too often for the distinct-prime retry
// loop to terminate quickly.
const MinKeyPairBits = 16
