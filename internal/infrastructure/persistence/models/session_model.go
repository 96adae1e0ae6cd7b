package models

import (
	"time"

	"rsa_playground_service/internal/domain/sessions"
)

// SessionModel is the GORM database model for sessions (infrastructure concern)
type SessionModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Bits            int       `gorm:"not null"`
	Modulus         string    `gorm:"not null;type:text"`
	PublicExponent  string    `gorm:"not null;type:text"`
	PrivateExponent string    `gorm:"not null;type:text"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}

// ToDomain converts GORM model to domain entity
func (m *SessionModel) ToDomain() *sessions.Session {
	return &sessions.Session{
		ID:              m.ID,
		Bits:            m.Bits,
		Modulus:         m.Modulus,
		PublicExponent:  m.PublicExponent,
		PrivateExponent: m.PrivateExponent,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SessionModel) FromDomain(s *sessions.Session) {
	m.ID = s.ID
	m.Bits = s.Bits
	m.Modulus = s.Modulus
	m.PublicExponent = s.PublicExponent
	m.PrivateExponent = s.PrivateExponent
	m.DateTimeCreated = s.DateTimeCreated
}
