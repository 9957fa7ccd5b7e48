package types

import "github.com/google/uuid"

// SessionID represents a unique chat session identifier. It is generated
// client-side; the backend never assigns one.
type SessionID string

// NewSessionID generates a new session ID
func NewSessionID() SessionID {
	return SessionID(uuid.New().String())
}

func (x SessionID) String() string {
	return string(x)
}

// MessageID represents a unique message identifier. Every message, including
// bot replies, gets a client-generated ID.
type MessageID string

// NewMessageID generates a new message ID
func NewMessageID() MessageID {
	return MessageID(uuid.New().String())
}

func (x MessageID) String() string {
	return string(x)
}
