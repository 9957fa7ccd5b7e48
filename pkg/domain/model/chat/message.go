package chat

import (
	"context"
	"time"

	"github.com/minterminds/chatfront/pkg/domain/types"
	"github.com/minterminds/chatfront/pkg/utils/clock"
)

const (
	// DefaultErrorText is appended as a bot message when a send fails.
	DefaultErrorText = "Sorry, I encountered an error. Please try again or check your connection."
	// DefaultSuccessText is used when the backend confirms a lead capture
	// without its own confirmation text.
	DefaultSuccessText = "Thank you! We will contact you soon."
	// SendFailureNotice is the generic banner string surfaced alongside the
	// error message.
	SendFailureNotice = "Failed to send message. Please try again."
)

// Message represents one turn in a conversation. IDs and timestamps are
// assigned at the client; the backend supplies neither.
type Message struct {
	ID        types.MessageID `json:"id"`
	SessionID types.SessionID `json:"session_id"`
	Sender    types.Sender    `json:"sender"`
	Text      string          `json:"text"`
	Timestamp time.Time       `json:"timestamp"`

	IsError   bool `json:"is_error,omitempty"`
	IsSuccess bool `json:"is_success,omitempty"`
	IsWelcome bool `json:"is_welcome,omitempty"`

	// Pass-through metadata from the backend, display and debug only.
	TriggerCapture bool   `json:"trigger_capture,omitempty"`
	Category       string `json:"category,omitempty"`
	DirectFAQUsed  bool   `json:"direct_faq_used,omitempty"`
}

func newMessage(ctx context.Context, sessionID types.SessionID, sender types.Sender, text string) *Message {
	return &Message{
		ID:        types.NewMessageID(),
		SessionID: sessionID,
		Sender:    sender,
		Text:      text,
		Timestamp: clock.Now(ctx),
	}
}

// NewUserMessage creates a user turn
func NewUserMessage(ctx context.Context, sessionID types.SessionID, text string) *Message {
	return newMessage(ctx, sessionID, types.SenderUser, text)
}

// NewBotMessage creates a bot turn from backend response text
func NewBotMessage(ctx context.Context, sessionID types.SessionID, text string) *Message {
	return newMessage(ctx, sessionID, types.SenderBot, text)
}

// NewErrorMessage creates the fixed apology turn appended on a failed send
func NewErrorMessage(ctx context.Context, sessionID types.SessionID) *Message {
	m := newMessage(ctx, sessionID, types.SenderBot, DefaultErrorText)
	m.IsError = true
	return m
}

// NewSuccessMessage creates the capture confirmation turn. An empty text
// falls back to DefaultSuccessText.
func NewSuccessMessage(ctx context.Context, sessionID types.SessionID, text string) *Message {
	if text == "" {
		text = DefaultSuccessText
	}
	m := newMessage(ctx, sessionID, types.SenderBot, text)
	m.IsSuccess = true
	return m
}

// NewWelcomeMessage creates the synthetic greeting turn. It is never sent to
// the backend and never counted for persistence.
func NewWelcomeMessage(ctx context.Context, sessionID types.SessionID, text string) *Message {
	m := newMessage(ctx, sessionID, types.SenderBot, text)
	m.IsWelcome = true
	return m
}
