package chat_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/minterminds/chatfront/pkg/domain/model/chat"
	"github.com/minterminds/chatfront/pkg/domain/types"
	"github.com/minterminds/chatfront/pkg/utils/clock"
)

func TestMessageConstructors(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	ctx := clock.With(context.Background(), func() time.Time { return now })
	sessionID := types.NewSessionID()

	t.Run("user message", func(t *testing.T) {
		m := chat.NewUserMessage(ctx, sessionID, "hello")
		gt.Equal(t, m.Sender, types.SenderUser)
		gt.Equal(t, m.Text, "hello")
		gt.Equal(t, m.SessionID, sessionID)
		gt.Equal(t, m.Timestamp, now)
		gt.V(t, m.ID.String()).NotEqual("")
	})

	t.Run("error message carries apology", func(t *testing.T) {
		m := chat.NewErrorMessage(ctx, sessionID)
		gt.Equal(t, m.Sender, types.SenderBot)
		gt.True(t, m.IsError)
		gt.Equal(t, m.Text, chat.DefaultErrorText)
	})

	t.Run("success message falls back to default text", func(t *testing.T) {
		m := chat.NewSuccessMessage(ctx, sessionID, "")
		gt.True(t, m.IsSuccess)
		gt.Equal(t, m.Text, chat.DefaultSuccessText)

		m = chat.NewSuccessMessage(ctx, sessionID, "We got it!")
		gt.Equal(t, m.Text, "We got it!")
	})

	t.Run("every message gets a unique id", func(t *testing.T) {
		a := chat.NewBotMessage(ctx, sessionID, "a")
		b := chat.NewBotMessage(ctx, sessionID, "b")
		gt.V(t, a.ID).NotEqual(b.ID)
	})
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	sessionID := types.NewSessionID()

	t.Run("persistable excludes welcome", func(t *testing.T) {
		var h chat.History
		h = h.Append(chat.NewWelcomeMessage(ctx, sessionID, "hi there"))
		gt.A(t, h.Persistable()).Length(0)

		h = h.Append(chat.NewUserMessage(ctx, sessionID, "question"))
		h = h.Append(chat.NewBotMessage(ctx, sessionID, "answer"))
		gt.A(t, h.Persistable()).Length(2)
	})

	t.Run("last returns a suffix", func(t *testing.T) {
		var h chat.History
		for _, text := range []string{"a", "b", "c"} {
			h = h.Append(chat.NewUserMessage(ctx, sessionID, text))
		}
		gt.A(t, h.Last(2)).Length(2)
		gt.Equal(t, h.Last(2)[0].Text, "b")
		gt.A(t, h.Last(10)).Length(3)
		gt.A(t, h.Last(0)).Length(3)
	})
}
