// Package rsa defines the contracts, key material and failure types for the
// textbook RSA core: primality testing, prime generation, key pair
// construction and the block codec built on modular exponentiation.
//
// The scheme is deliberately the insecure textbook one: no padding, no
// constant-time arithmetic, no hybrid envelope. It exists to make the number
// theory observable, not to protect data.
package rsa
