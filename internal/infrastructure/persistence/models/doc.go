// Package models contains the GORM database models for sessions and messages.
// These models handle database persistence and are separated from domain entities
// to maintain Clean Architecture principles.
package models
