package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/minterminds/chatfront/pkg/adapter/backend"
	"github.com/minterminds/chatfront/pkg/domain/model/errs"
	"github.com/minterminds/chatfront/pkg/domain/model/lead"
	"github.com/minterminds/chatfront/pkg/domain/types"
)

func TestSendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("posts session and message, decodes reply", func(t *testing.T) {
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.Equal(t, r.Method, http.MethodPost)
			gt.Equal(t, r.URL.Path, "/chat")
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_ = json.NewEncoder(w).Encode(map[string]any{
				"bot_response":    "We offer training programs.",
				"trigger_capture": true,
				"trigger_reason":  "training_interest",
				"category":        "trainings",
				"direct_faq_used": true,
			})
		}))
		defer srv.Close()

		client, err := backend.New(srv.URL)
		gt.NoError(t, err)

		reply, err := client.SendMessage(ctx, types.SessionID("s-123"), "do you train?")
		gt.NoError(t, err)
		gt.Equal(t, gotBody["session_id"], "s-123")
		gt.Equal(t, gotBody["message"], "do you train?")
		gt.Equal(t, reply.BotResponse, "We offer training programs.")
		gt.True(t, reply.TriggerCapture)
		gt.Equal(t, reply.TriggerReason, "training_interest")
		gt.True(t, reply.DirectFAQUsed)
	})

	t.Run("omits empty session id on the wire", func(t *testing.T) {
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_ = json.NewEncoder(w).Encode(map[string]any{"bot_response": "hi"})
		}))
		defer srv.Close()

		client, err := backend.New(srv.URL)
		gt.NoError(t, err)

		_, err = client.SendMessage(ctx, "", "hello")
		gt.NoError(t, err)
		_, hasSession := gotBody["session_id"]
		gt.False(t, hasSession)
	})

	t.Run("non-200 is an external error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		client, err := backend.New(srv.URL)
		gt.NoError(t, err)

		_, err = client.SendMessage(ctx, "s", "hello")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, errs.TagExternal))
	})

	t.Run("slow backend times out", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		client, err := backend.New(srv.URL, backend.WithTimeout(20*time.Millisecond))
		gt.NoError(t, err)

		_, err = client.SendMessage(ctx, "s", "hello")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, errs.TagTimeout))
	})
}

func TestCaptureLead(t *testing.T) {
	ctx := context.Background()

	t.Run("returns confirmation text", func(t *testing.T) {
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.Equal(t, r.URL.Path, "/capture")
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Thanks, Ada!"})
		}))
		defer srv.Close()

		client, err := backend.New(srv.URL)
		gt.NoError(t, err)

		sub := &lead.Submission{
			SessionID:     "s-1",
			Name:          "Ada",
			Email:         "ada@example.com",
			Category:      types.LeadCategoryTrainings,
			CaptureMethod: types.DefaultCaptureMethod,
		}
		msg, err := client.CaptureLead(ctx, sub)
		gt.NoError(t, err)
		gt.Equal(t, msg, "Thanks, Ada!")
		gt.Equal(t, gotBody["capture_method"], "chat_trigger")
		gt.Equal(t, gotBody["category"], "trainings")
	})

	t.Run("failure propagates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusBadGateway)
		}))
		defer srv.Close()

		client, err := backend.New(srv.URL)
		gt.NoError(t, err)

		_, err = client.CaptureLead(ctx, &lead.Submission{})
		gt.Error(t, err)
	})
}

func TestCheckHealth(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.Equal(t, r.URL.Path, "/health")
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
		}))
		defer srv.Close()

		client, err := backend.New(srv.URL)
		gt.NoError(t, err)

		status, err := client.CheckHealth(ctx)
		gt.NoError(t, err)
		gt.True(t, status.Online())
	})

	t.Run("any other status is offline", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "degraded"})
		}))
		defer srv.Close()

		client, err := backend.New(srv.URL)
		gt.NoError(t, err)

		status, err := client.CheckHealth(ctx)
		gt.NoError(t, err)
		gt.False(t, status.Online())
	})
}

func TestClearChat(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, r.URL.Path, "/chat/clear")
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := backend.New(srv.URL)
	gt.NoError(t, err)

	gt.NoError(t, client.ClearChat(context.Background(), "s-9"))
	gt.Equal(t, gotBody["session_id"], "s-9")
}
