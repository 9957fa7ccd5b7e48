package usecase

import (
	"sync"

	"github.com/minterminds/chatfront/pkg/domain/interfaces"
	"github.com/minterminds/chatfront/pkg/domain/model/chat"
	"github.com/minterminds/chatfront/pkg/domain/types"
	"github.com/minterminds/chatfront/pkg/service/connectivity"
)

// UseCases is the conversation session manager. It owns the session identity,
// message history, loading/error state, and lead-capture trigger state, and
// orchestrates the backend client and repository on behalf of whatever
// presentation layer consumes it. Instances are constructor-injected; there
// is no shared singleton.
type UseCases struct {
	repository interfaces.Repository
	backend    interfaces.BackendClient
	monitor    *connectivity.Monitor

	// opMu serializes sendMessage, capture, and clear end-to-end, including
	// their network calls. The original widget allowed these to interleave;
	// here a capture or clear waits for an in-flight send to settle.
	opMu sync.Mutex

	// mu guards the state fields below for snapshot reads
	mu        sync.RWMutex
	session   *chat.Session
	history   chat.History
	loading   bool
	lastError string

	// Trigger state. A reason is only meaningful while the trigger is
	// active; the form can also be open without a trigger (manual open).
	showCaptureForm      bool
	triggerCaptureActive bool
	triggerReason        string

	// configs
	greeting        bool
	rollbackOnError bool
}

type Option func(*UseCases)

// WithGreeting seeds a synthetic time-of-day welcome message when the
// restored history is empty. The greeting is never sent to the backend and
// never persisted.
func WithGreeting(enabled bool) Option {
	return func(u *UseCases) {
		u.greeting = enabled
	}
}

// WithRollbackOnError removes the optimistically appended user message when
// its send fails. The original widget never rolls back; this stays off unless
// explicitly requested.
func WithRollbackOnError(enabled bool) Option {
	return func(u *UseCases) {
		u.rollbackOnError = enabled
	}
}

func New(repository interfaces.Repository, backend interfaces.BackendClient, monitor *connectivity.Monitor, opts ...Option) *UseCases {
	u := &UseCases{
		repository: repository,
		backend:    backend,
		monitor:    monitor,
		greeting:   true,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Snapshot is the read surface the presentation layer renders from.
type Snapshot struct {
	SessionID            types.SessionID `json:"session_id"`
	Messages             chat.History    `json:"messages"`
	IsLoading            bool            `json:"is_loading"`
	IsOnline             bool            `json:"is_online"`
	LastError            string          `json:"last_error,omitempty"`
	ShowCaptureForm      bool            `json:"show_capture_form"`
	TriggerCaptureActive bool            `json:"trigger_capture_active"`
	TriggerReason        string          `json:"trigger_reason,omitempty"`
}

// Snapshot returns a copy of the current presentation state
func (x *UseCases) Snapshot() Snapshot {
	x.mu.RLock()
	defer x.mu.RUnlock()

	messages := make(chat.History, len(x.history))
	copy(messages, x.history)

	var sessionID types.SessionID
	if x.session != nil {
		sessionID = x.session.ID
	}

	return Snapshot{
		SessionID:            sessionID,
		Messages:             messages,
		IsLoading:            x.loading,
		IsOnline:             x.monitor.Online(),
		LastError:            x.lastError,
		ShowCaptureForm:      x.showCaptureForm,
		TriggerCaptureActive: x.triggerCaptureActive,
		TriggerReason:        x.triggerReason,
	}
}

// SessionID returns the current session identity
func (x *UseCases) SessionID() types.SessionID {
	x.mu.RLock()
	defer x.mu.RUnlock()

	if x.session == nil {
		return ""
	}
	return x.session.ID
}
