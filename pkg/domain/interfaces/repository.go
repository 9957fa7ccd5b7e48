package interfaces

import (
	"context"

	"github.com/minterminds/chatfront/pkg/domain/model/chat"
	"github.com/minterminds/chatfront/pkg/domain/types"
)

// Repository mirrors the session manager's state: one current-session slot
// plus the serialized history per session. Writes overwrite wholesale,
// last-write-wins; there are no transactional semantics.
type Repository interface {
	// GetSession returns the stored session, or nil when none exists
	GetSession(ctx context.Context) (*chat.Session, error)
	PutSession(ctx context.Context, session *chat.Session) error

	// GetHistory returns the stored history for a session, empty when none
	GetHistory(ctx context.Context, sessionID types.SessionID) (chat.History, error)
	PutHistory(ctx context.Context, sessionID types.SessionID, history chat.History) error
	DeleteHistory(ctx context.Context, sessionID types.SessionID) error
}
