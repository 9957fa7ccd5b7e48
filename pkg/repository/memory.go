package repository

import (
	"context"
	"sync"

	"github.com/minterminds/chatfront/pkg/domain/interfaces"
	"github.com/minterminds/chatfront/pkg/domain/model/chat"
	"github.com/minterminds/chatfront/pkg/domain/types"
)

// Memory is an ephemeral repository, the Go equivalent of the per-tab
// sessionStorage slot: state lives only for the process lifetime.
type Memory struct {
	mu        sync.RWMutex
	session   *chat.Session
	histories map[types.SessionID]chat.History
}

var _ interfaces.Repository = &Memory{}

func NewMemory() *Memory {
	return &Memory{
		histories: make(map[types.SessionID]chat.History),
	}
}

func (r *Memory) GetSession(ctx context.Context) (*chat.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.session == nil {
		return nil, nil
	}
	copied := *r.session
	return &copied, nil
}

func (r *Memory) PutSession(ctx context.Context, session *chat.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *session
	r.session = &copied
	return nil
}

func (r *Memory) GetHistory(ctx context.Context, sessionID types.SessionID) (chat.History, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.histories[sessionID]
	out := make(chat.History, len(history))
	copy(out, history)
	return out, nil
}

func (r *Memory) PutHistory(ctx context.Context, sessionID types.SessionID, history chat.History) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := make(chat.History, len(history))
	copy(copied, history)
	r.histories[sessionID] = copied
	return nil
}

func (r *Memory) DeleteHistory(ctx context.Context, sessionID types.SessionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.histories, sessionID)
	return nil
}
