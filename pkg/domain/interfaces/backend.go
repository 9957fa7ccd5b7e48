package interfaces

import (
	"context"

	"github.com/minterminds/chatfront/pkg/domain/model/chat"
	"github.com/minterminds/chatfront/pkg/domain/model/lead"
	"github.com/minterminds/chatfront/pkg/domain/types"
)

// BackendClient is the remote conversational-AI service. All intelligence
// (NLU, response generation, capture-trigger decisions) lives behind it.
type BackendClient interface {
	// SendMessage posts a user turn and returns the bot reply. An empty
	// sessionID is allowed; the wire request then omits the field.
	SendMessage(ctx context.Context, sessionID types.SessionID, message string) (*chat.Reply, error)

	// CaptureLead submits a lead record and returns the backend's
	// confirmation text, which may be empty.
	CaptureLead(ctx context.Context, sub *lead.Submission) (string, error)

	// ClearChat discards the backend-side conversation state
	ClearChat(ctx context.Context, sessionID types.SessionID) error

	// CheckHealth probes the backend
	CheckHealth(ctx context.Context) (types.HealthStatus, error)

	// KnowledgeStats fetches knowledge-base statistics
	KnowledgeStats(ctx context.Context) (map[string]any, error)
}
