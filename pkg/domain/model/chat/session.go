package chat

import (
	"context"
	"time"

	"github.com/minterminds/chatfront/pkg/domain/types"
	"github.com/minterminds/chatfront/pkg/utils/clock"
)

// Session identifies one continuous conversation. Clearing the chat rotates
// the ID; the old one is discarded even if the backend clear call failed.
type Session struct {
	ID        types.SessionID `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewSession creates a session with a fresh client-generated ID
func NewSession(ctx context.Context) *Session {
	now := clock.Now(ctx)
	return &Session{
		ID:        types.NewSessionID(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch updates the modification time
func (s *Session) Touch(ctx context.Context) {
	s.UpdatedAt = clock.Now(ctx)
}
