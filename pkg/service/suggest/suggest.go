package suggest

import (
	"context"
	"strings"

	"github.com/minterminds/chatfront/pkg/utils/clock"
)

var defaultSuggestions = []string{
	"What services do you offer?",
	"Do you provide training programs?",
	"Are you hiring?",
	"Can you build a mobile app?",
	"What's your development process?",
	"How much does it cost?",
	"Can I see your portfolio?",
	"Do you offer UI/UX design?",
}

// QuickReplies returns up to three suggested follow-up questions based on the
// last bot message.
func QuickReplies(message string) []string {
	lowered := strings.ToLower(message)

	if strings.Contains(lowered, "service") {
		return []string{
			"What services do you offer?",
			"Can you build a website?",
			"Do you offer mobile app development?",
		}
	}

	if strings.Contains(lowered, "train") {
		return []string{
			"What training programs do you offer?",
			"How long are the courses?",
			"Is there certification?",
		}
	}

	if strings.Contains(lowered, "job") || strings.Contains(lowered, "career") {
		return []string{
			"Are you hiring?",
			"What positions are available?",
			"How do I apply?",
		}
	}

	return defaultSuggestions[:3]
}

// Greeting returns the time-of-day welcome text for the synthetic first
// bot message.
func Greeting(ctx context.Context) string {
	switch hour := clock.Now(ctx).Hour(); {
	case hour < 12:
		return "Good morning! Welcome to Minterminds. How can I help you today?"
	case hour < 18:
		return "Good afternoon! Welcome to Minterminds. How can I assist you?"
	default:
		return "Good evening! Welcome to Minterminds. How can I help you?"
	}
}
