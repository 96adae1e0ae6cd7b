// Package sessions defines the core interfaces and structures for managing encryption sessions,
// which pair generated key material with the text and file messages encrypted under it.
package sessions
