package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/minterminds/chatfront/pkg/domain/model/chat"
	"github.com/minterminds/chatfront/pkg/domain/model/errs"
	"github.com/minterminds/chatfront/pkg/domain/model/lead"
	"github.com/minterminds/chatfront/pkg/domain/types"
	"github.com/minterminds/chatfront/pkg/service/suggest"
	"github.com/minterminds/chatfront/pkg/utils/logging"
)

// Init restores or creates the session and history, then starts the
// connectivity monitor (immediate health probe plus periodic polling). Runs
// once per manager lifetime.
func (x *UseCases) Init(ctx context.Context) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	session, err := x.repository.GetSession(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to load session")
	}
	if session == nil {
		session = chat.NewSession(ctx)
		if err := x.repository.PutSession(ctx, session); err != nil {
			return goerr.Wrap(err, "failed to persist new session")
		}
	}
	x.session = session

	// A malformed stored history is recoverable: log and start empty.
	history, err := x.repository.GetHistory(ctx, session.ID)
	if err != nil {
		logging.From(ctx).Warn("failed to restore history, starting empty",
			logging.ErrAttr(err), "session_id", session.ID)
		history = nil
	}
	x.history = history

	if x.greeting && len(x.history) == 0 {
		x.history = x.history.Append(chat.NewWelcomeMessage(ctx, session.ID, suggest.Greeting(ctx)))
	}

	x.monitor.Start(ctx)
	return nil
}

// Close tears down the connectivity monitor
func (x *UseCases) Close() {
	x.monitor.Stop()
}

// SendMessage posts one user turn. Empty text, an in-flight send, and an
// offline backend are all silent no-ops: guards against duplicate or offline
// submission, not reported failures. The user message is appended before the
// network call resolves so the UI reflects input instantly.
func (x *UseCases) SendMessage(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" || !x.monitor.Online() {
		return
	}

	x.mu.RLock()
	loading := x.loading
	x.mu.RUnlock()
	if loading {
		return
	}

	x.opMu.Lock()
	defer x.opMu.Unlock()

	x.mu.Lock()
	if x.loading {
		x.mu.Unlock()
		return
	}
	x.loading = true
	x.lastError = ""
	sessionID := x.session.ID
	userMsg := chat.NewUserMessage(ctx, sessionID, text)
	x.history = x.history.Append(userMsg)
	x.persistLocked(ctx)
	x.mu.Unlock()

	reply, err := x.backend.SendMessage(ctx, sessionID, text)

	x.mu.Lock()
	defer x.mu.Unlock()
	defer func() { x.loading = false }()

	if err != nil {
		logging.From(ctx).Warn("failed to send message", logging.ErrAttr(err), "session_id", sessionID)
		x.lastError = chat.SendFailureNotice
		if x.rollbackOnError {
			x.dropMessageLocked(userMsg.ID)
		}
		x.history = x.history.Append(chat.NewErrorMessage(ctx, sessionID))
		x.persistLocked(ctx)
		return
	}

	botMsg := chat.NewBotMessage(ctx, sessionID, reply.BotResponse)
	botMsg.TriggerCapture = reply.TriggerCapture
	botMsg.Category = reply.Category
	botMsg.DirectFAQUsed = reply.DirectFAQUsed
	x.history = x.history.Append(botMsg)

	if reply.TriggerCapture {
		reason := reply.TriggerReason
		if reason == "" {
			reason = types.DefaultCaptureMethod.String()
		}
		x.triggerReason = reason
		x.triggerCaptureActive = true
		x.showCaptureForm = true
	}

	x.persistLocked(ctx)
}

// CaptureLead submits the lead form. On success the trigger state is cleared
// and a confirmation turn is appended; on failure the error propagates so the
// form can show it inline and stay open for retry.
func (x *UseCases) CaptureLead(ctx context.Context, sub *lead.Submission) error {
	x.opMu.Lock()
	defer x.opMu.Unlock()

	x.mu.Lock()
	sub.SessionID = x.session.ID
	if x.triggerReason != "" {
		sub.CaptureMethod = types.CaptureMethod(x.triggerReason)
	} else {
		sub.CaptureMethod = types.DefaultCaptureMethod
	}
	sub.Normalize()
	x.mu.Unlock()

	confirmation, err := x.backend.CaptureLead(ctx, sub)
	if err != nil {
		return goerr.Wrap(err, "failed to capture lead", goerr.V("session_id", sub.SessionID))
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	x.history = x.history.Append(chat.NewSuccessMessage(ctx, x.session.ID, confirmation))
	x.showCaptureForm = false
	x.triggerCaptureActive = false
	x.triggerReason = ""
	x.persistLocked(ctx)
	return nil
}

// ClearChat resets the conversation. The backend clear is best-effort: a
// failure is logged and local clearing proceeds, since the user's intent is a
// clean client state. The session ID always rotates; the old one is discarded
// regardless of backend acknowledgment.
func (x *UseCases) ClearChat(ctx context.Context) {
	x.opMu.Lock()
	defer x.opMu.Unlock()

	x.mu.Lock()
	oldID := x.session.ID
	x.mu.Unlock()

	if err := x.backend.ClearChat(ctx, oldID); err != nil {
		logging.From(ctx).Warn("failed to clear chat on backend", logging.ErrAttr(err), "session_id", oldID)
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	x.history = nil
	x.showCaptureForm = false
	x.triggerCaptureActive = false
	x.triggerReason = ""
	x.lastError = ""

	if err := x.repository.DeleteHistory(ctx, oldID); err != nil {
		errs.Handle(ctx, goerr.Wrap(err, "failed to erase persisted history", goerr.V("session_id", oldID)))
	}

	session := chat.NewSession(ctx)
	x.session = session
	if err := x.repository.PutSession(ctx, session); err != nil {
		errs.Handle(ctx, goerr.Wrap(err, "failed to persist rotated session", goerr.V("session_id", session.ID)))
	}

	if x.greeting {
		x.history = x.history.Append(chat.NewWelcomeMessage(ctx, session.ID, suggest.Greeting(ctx)))
	}
}

// CheckHealth probes the backend once and updates the online state. It never
// returns an error to its caller.
func (x *UseCases) CheckHealth(ctx context.Context) {
	x.monitor.Probe(ctx)
}

// OpenCaptureForm shows the capture form on explicit user action, without a
// backend-originated trigger.
func (x *UseCases) OpenCaptureForm() {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.showCaptureForm = true
}

// DismissCaptureForm clears all trigger state without submitting; idempotent
func (x *UseCases) DismissCaptureForm() {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.showCaptureForm = false
	x.triggerCaptureActive = false
	x.triggerReason = ""
}

// QuickReplies suggests follow-up questions based on the last bot turn
func (x *UseCases) QuickReplies() []string {
	x.mu.RLock()
	defer x.mu.RUnlock()

	for i := len(x.history) - 1; i >= 0; i-- {
		m := x.history[i]
		if m.Sender == types.SenderBot && !m.IsError && !m.IsWelcome {
			return suggest.QuickReplies(m.Text)
		}
	}
	return suggest.QuickReplies("")
}

// persistLocked writes the full history snapshot. Empty history is never
// written so a previous session's backup is not clobbered during the brief
// initial window. Callers must hold mu.
func (x *UseCases) persistLocked(ctx context.Context) {
	persistable := x.history.Persistable()
	if len(persistable) == 0 {
		return
	}
	if err := x.repository.PutHistory(ctx, x.session.ID, persistable); err != nil {
		errs.Handle(ctx, goerr.Wrap(err, "failed to persist history", goerr.V("session_id", x.session.ID)))
	}
}

func (x *UseCases) dropMessageLocked(id types.MessageID) {
	for i, m := range x.history {
		if m.ID == id {
			x.history = append(x.history[:i], x.history[i+1:]...)
			return
		}
	}
}
