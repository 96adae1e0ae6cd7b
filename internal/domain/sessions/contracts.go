package sessions

import (
	"context"
)

// SessionService defines methods for managing encryption sessions.
type SessionService interface {
	// Create generates a fresh key pair of the requested bit size and persists
	// it as a new session. It returns the stored session and any error
	// encountered during generation or persistence.
	Create(ctx context.Context, bits int) (*Session, error)

	// List retrieves sessions considering a query filter when set.
	// It returns a slice of Session and any error encountered during the retrieval.
	List(ctx context.Context, query *SessionQuery) ([]*Session, error)

	// GetByID retrieves a session by its unique ID.
	GetByID(ctx context.Context, sessionID string) (*Session, error)

	// DeleteByID deletes a session together with every message encrypted under it.
	DeleteByID(ctx context.Context, sessionID string) error
}

// MessageService defines methods for encrypting, storing and recovering messages.
type MessageService interface {
	// EncryptText encrypts text under the session's public key and persists
	// the resulting message. It returns the stored message and any error
	// encountered during encryption or persistence.
	EncryptText(ctx context.Context, sessionID, text string) (*Message, error)

	// EncryptBytes encrypts raw data under the session's public key and
	// persists the resulting message together with its file metadata.
	EncryptBytes(ctx context.Context, sessionID, name, contentType string, data []byte) (*Message, error)

	// List retrieves messages considering a query filter when set.
	List(ctx context.Context, query *MessageQuery) ([]*Message, error)

	// GetByID retrieves a message by its unique ID.
	GetByID(ctx context.Context, messageID string) (*Message, error)

	// DeleteByID deletes a message by ID.
	DeleteByID(ctx context.Context, messageID string) error

	// Decrypt recovers the plaintext of a stored message using its session's
	// private key.
	Decrypt(ctx context.Context, messageID string) (*DecryptedMessage, error)

	// Verify decrypts a stored message and compares the plaintext digest
	// against the checksum recorded at encryption time. It returns true when
	// the digests match.
	Verify(ctx context.Context, messageID string) (bool, error)
}

// SessionRepository defines the interface for Session-related operations
type SessionRepository interface {
	// Create adds a new Session to the database
	Create(ctx context.Context, session *Session) error
	// List lists Sessions in the database with optional filter
	List(ctx context.Context, query *SessionQuery) ([]*Session, error)
	// GetByID retrieves a Session from the database by ID
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	// DeleteByID deletes a Session in the database by ID
	DeleteByID(ctx context.Context, sessionID string) error
}

// MessageRepository defines the interface for Message-related operations
type MessageRepository interface {
	// Create adds a new Message to the database
	Create(ctx context.Context, message *Message) error
	// List lists Messages in the database with optional filter
	List(ctx context.Context, query *MessageQuery) ([]*Message, error)
	// GetByID retrieves a Message from the database by ID
	GetByID(ctx context.Context, messageID string) (*Message, error)
	// DeleteByID deletes a Message in the database by ID
	DeleteByID(ctx context.Context, messageID string) error
	// DeleteBySessionID deletes every Message belonging to a session
	DeleteBySessionID(ctx context.Context, sessionID string) error
}
