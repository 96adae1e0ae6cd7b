// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to interact with databases, managing
// session key material and encrypted message records. The package includes
// validation and logging for traceability and error handling.
package persistence
