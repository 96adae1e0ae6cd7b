//go:build unit
// +build unit

package sessions

import (
	"math/big"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SessionValidationTests struct encapsulates the test data and methods for Session validation
type SessionValidationTests struct {
	// TestData for holding valid and invalid Session data
	validSession       Session
	missingIDSession   Session
	oddBitsSession     Session
	missingKeysSession Session
}

// NewSessionValidationTests is a constructor to create a new instance of SessionValidationTests
func NewSessionValidationTests() *SessionValidationTests {
	// Create valid and invalid test data for Session
	validSession := Session{
		ID:              uuid.New().String(),
		Bits:            512,
		Modulus:         "3233",
		PublicExponent:  "17",
		PrivateExponent: "2753",
		DateTimeCreated: time.Now(),
	}

	missingIDSession := Session{
		ID:              "", // Invalid empty ID
		Bits:            512,
		Modulus:         "3233",
		PublicExponent:  "17",
		PrivateExponent: "2753",
		DateTimeCreated: time.Now(),
	}

	oddBitsSession := Session{
		ID:              uuid.New().String(),
		Bits:            300, // Invalid key size outside the offered steps
		Modulus:         "3233",
		PublicExponent:  "17",
		PrivateExponent: "2753",
		DateTimeCreated: time.Now(),
	}

	missingKeysSession := Session{
		ID:              uuid.New().String(),
		Bits:            512,
		Modulus:         "", // Invalid empty modulus
		PublicExponent:  "17",
		PrivateExponent: "2753",
		DateTimeCreated: time.Now(),
	}

	return &SessionValidationTests{
		validSession:       validSession,
		missingIDSession:   missingIDSession,
		oddBitsSession:     oddBitsSession,
		missingKeysSession: missingKeysSession,
	}
}

// TestSessionValidation tests the Validator method for Session
func (st *SessionValidationTests) TestSessionValidation(t *testing.T) {
	// Validate the valid Session
	err := st.validSession.Validate()
	assert.Nil(t, err, "Expected no validation errors for valid Session")

	// Validate the invalid Session (empty ID)
	err = st.missingIDSession.Validate()
	assert.NotNil(t, err, "Expected validation errors for invalid Session")
	assert.Contains(t, err.Error(), "Field: ID, Tag: required")

	// Validate the invalid Session (unsupported key size)
	err = st.oddBitsSession.Validate()
	assert.NotNil(t, err, "Expected validation errors for invalid Session")
	assert.Contains(t, err.Error(), "Field: Bits, Tag: keyBitsValidation")

	// Validate the invalid Session (empty modulus)
	err = st.missingKeysSession.Validate()
	assert.NotNil(t, err, "Expected validation errors for invalid Session")
	assert.Contains(t, err.Error(), "Field: Modulus, Tag: required")
}

// TestSessionValidation is the entry point to run the Session validation tests
func TestSessionValidation(t *testing.T) {
	// Create a new SessionValidationTests instance
	st := NewSessionValidationTests()

	// Run each test method
	t.Run("TestSessionValidation", st.TestSessionValidation)
}

// TestSessionKeyReconstruction verifies the decimal string round trip into key structs
func TestSessionKeyReconstruction(t *testing.T) {
	session := Session{
		ID:              uuid.New().String(),
		Bits:            512,
		Modulus:         "3233",
		PublicExponent:  "17",
		PrivateExponent: "2753",
		DateTimeCreated: time.Now(),
	}

	publicKey, err := session.PublicKey()
	require.NoError(t, err)
	assert.Equal(t, int64(3233), publicKey.N.Int64())
	assert.Equal(t, int64(17), publicKey.E.Int64())

	privateKey, err := session.PrivateKey()
	require.NoError(t, err)
	assert.Equal(t, int64(3233), privateKey.N.Int64())
	assert.Equal(t, int64(2753), privateKey.D.Int64())

	session.Modulus = "not-a-number"
	_, err = session.PublicKey()
	assert.Error(t, err)
	_, err = session.PrivateKey()
	assert.Error(t, err)
}

// MessageValidationTests struct encapsulates the test data and methods for Message validation
type MessageValidationTests struct {
	// TestData for holding valid and invalid Message data
	validMessage       Message
	badKindMessage     Message
	badChecksumMessage Message
}

// NewMessageValidationTests is a constructor to create a new instance of MessageValidationTests
func NewMessageValidationTests() *MessageValidationTests {
	checksum := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

	// Create valid and invalid test data for Message
	validMessage := Message{
		ID:              uuid.New().String(),
		SessionID:       uuid.New().String(),
		Kind:            MessageKindText,
		Size:            5,
		Checksum:        checksum,
		Ciphertext:      "2790 2790 2790 2790 2790",
		DateTimeCreated: time.Now(),
	}

	badKindMessage := Message{
		ID:              uuid.New().String(),
		SessionID:       uuid.New().String(),
		Kind:            "image", // Invalid kind outside text|bytes
		Size:            5,
		Checksum:        checksum,
		Ciphertext:      "2790",
		DateTimeCreated: time.Now(),
	}

	badChecksumMessage := Message{
		ID:              uuid.New().String(),
		SessionID:       uuid.New().String(),
		Kind:            MessageKindBytes,
		Size:            5,
		Checksum:        "zz", // Invalid digest, neither hex nor 64 chars
		Ciphertext:      "2790",
		DateTimeCreated: time.Now(),
	}

	return &MessageValidationTests{
		validMessage:       validMessage,
		badKindMessage:     badKindMessage,
		badChecksumMessage: badChecksumMessage,
	}
}

// TestMessageValidation tests the Validator method for Message
func (mt *MessageValidationTests) TestMessageValidation(t *testing.T) {
	// Validate the valid Message
	err := mt.validMessage.Validate()
	assert.Nil(t, err, "Expected no validation errors for valid Message")

	// Validate the invalid Message (unsupported kind)
	err = mt.badKindMessage.Validate()
	assert.NotNil(t, err, "Expected validation errors for invalid Message")
	assert.Contains(t, err.Error(), "Field: Kind, Tag: oneof")

	// Validate the invalid Message (malformed checksum)
	err = mt.badChecksumMessage.Validate()
	assert.NotNil(t, err, "Expected validation errors for invalid Message")
	assert.Contains(t, err.Error(), "Field: Checksum")
}

// TestMessageValidation is the entry point to run the Message validation tests
func TestMessageValidation(t *testing.T) {
	// Create a new MessageValidationTests instance
	mt := NewMessageValidationTests()

	// Run each test method
	t.Run("TestMessageValidation", mt.TestMessageValidation)
}

// TestUnitEncoding verifies the space-separated decimal ciphertext format
func TestUnitEncoding(t *testing.T) {
	t.Run("EncodeAndDecode", func(t *testing.T) {
		units := []*big.Int{big.NewInt(2790), big.NewInt(65), big.NewInt(0)}
		encoded := EncodeUnits(units)
		assert.Equal(t, "2790 65 0", encoded)

		decoded, err := DecodeUnits(encoded)
		require.NoError(t, err)
		require.Len(t, decoded, 3)
		for i, unit := range units {
			assert.Zero(t, unit.Cmp(decoded[i]))
		}
	})

	t.Run("EmptyCiphertext", func(t *testing.T) {
		assert.Equal(t, "", EncodeUnits(nil))

		decoded, err := DecodeUnits("")
		require.NoError(t, err)
		assert.Empty(t, decoded)
	})

	t.Run("MalformedUnit", func(t *testing.T) {
		_, err := DecodeUnits("2790 abc 65")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "position 1")
	})

	t.Run("MessageUnits", func(t *testing.T) {
		message := Message{Ciphertext: "123456789012345678901234567890 7"}
		units, err := message.Units()
		require.NoError(t, err)
		require.Len(t, units, 2)
		assert.Equal(t, "123456789012345678901234567890", units[0].String())
		assert.Equal(t, int64(7), units[1].Int64())
	})
}

// QueryValidationTests verify the filter structs used for listing
func TestSessionQueryValidation(t *testing.T) {
	query := NewSessionQuery()
	assert.Nil(t, query.Validate(), "Expected defaults to validate")

	query.SortOrder = "upward"
	err := query.Validate()
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "Field: SortOrder, Tag: oneof")

	query = NewSessionQuery()
	query.Limit = 1000
	err = query.Validate()
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "Field: Limit")
}

func TestMessageQueryValidation(t *testing.T) {
	query := NewMessageQuery()
	assert.Nil(t, query.Validate(), "Expected defaults to validate")

	query.SessionID = "not-a-uuid"
	err := query.Validate()
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "Field: SessionID, Tag: uuid4")

	query = NewMessageQuery()
	query.Kind = "video"
	err = query.Validate()
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "Field: Kind, Tag: oneof")
}
