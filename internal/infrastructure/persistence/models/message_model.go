package models

import (
	"time"

	"rsa_playground_service/internal/domain/sessions"
)

// MessageModel is the GORM database model for messages (infrastructure concern)
type MessageModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	SessionID       string `gorm:"not null;index;type:uuid"`
	Kind            string `gorm:"not null;type:varchar(10)"`
	Name            string `gorm:"type:varchar(255)"`
	ContentType     string `gorm:"type:varchar(100)"`
	Size            int64  `gorm:"not null"`
	Width           int
	Height          int
	Checksum        string    `gorm:"not null;type:char(64)"`
	Ciphertext      string    `gorm:"type:text"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (MessageModel) TableName() string {
	return "messages"
}

// ToDomain converts GORM model to domain entity
func (m *MessageModel) ToDomain() *sessions.Message {
	return &sessions.Message{
		ID:              m.ID,
		SessionID:       m.SessionID,
		Kind:            m.Kind,
		Name:            m.Name,
		ContentType:     m.ContentType,
		Size:            m.Size,
		Width:           m.Width,
		Height:          m.Height,
		Checksum:        m.Checksum,
		Ciphertext:      m.Ciphertext,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MessageModel) FromDomain(msg *sessions.Message) {
	m.ID = msg.ID
	m.SessionID = msg.SessionID
	m.Kind = msg.Kind
	m.Name = msg.Name
	m.ContentType = msg.ContentType
	m.Size = msg.Size
	m.Width = msg.Width
	m.Height = msg.Height
	m.Checksum = msg.Checksum
	m.Ciphertext = msg.Ciphertext
	m.DateTimeCreated = msg.DateTimeCreated
}
