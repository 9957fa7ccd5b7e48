package suggest_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/minterminds/chatfront/pkg/service/suggest"
	"github.com/minterminds/chatfront/pkg/utils/clock"
)

func TestQuickReplies(t *testing.T) {
	t.Run("service context", func(t *testing.T) {
		replies := suggest.QuickReplies("Here are the services we provide")
		gt.A(t, replies).Length(3)
		gt.S(t, replies[0]).Contains("services")
	})

	t.Run("training context", func(t *testing.T) {
		replies := suggest.QuickReplies("Our training covers Go and React")
		gt.A(t, replies).Length(3)
		gt.S(t, replies[0]).Contains("training")
	})

	t.Run("career context", func(t *testing.T) {
		replies := suggest.QuickReplies("We have open job positions")
		gt.A(t, replies).Length(3)
		gt.Equal(t, replies[0], "Are you hiring?")
	})

	t.Run("default top three otherwise", func(t *testing.T) {
		replies := suggest.QuickReplies("The weather is nice")
		gt.A(t, replies).Length(3)
		gt.Equal(t, replies[0], "What services do you offer?")
	})
}

func TestGreeting(t *testing.T) {
	at := func(hour int) context.Context {
		now := time.Date(2025, 6, 1, hour, 0, 0, 0, time.UTC)
		return clock.With(context.Background(), func() time.Time { return now })
	}

	gt.S(t, suggest.Greeting(at(8))).Contains("Good morning")
	gt.S(t, suggest.Greeting(at(13))).Contains("Good afternoon")
	gt.S(t, suggest.Greeting(at(20))).Contains("Good evening")
}
