package sessions

// Message kinds decide how decrypted units decode back into plaintext.
const (
	MessageKindText  = "text"
	MessageKindBytes = "bytes"
)

// Key sizes offered when creating a session, in bits. Sizes run from
// MinKeyBits to MaxKeyBits in steps of KeyBitsStep.
const (
	MinKeyBits     = 256
	MaxKeyBits     = 2048
	KeyBitsStep    = 128
	DefaultKeyBits = 512
)
