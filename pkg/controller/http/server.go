package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/minterminds/chatfront/pkg/domain/model/errs"
	"github.com/minterminds/chatfront/pkg/domain/model/lead"
	"github.com/minterminds/chatfront/pkg/domain/types"
	"github.com/minterminds/chatfront/pkg/usecase"
)

// UseCase is the session-manager surface the embed server exposes to a
// widget page.
type UseCase interface {
	Snapshot() usecase.Snapshot
	SendMessage(ctx context.Context, text string)
	CaptureLead(ctx context.Context, sub *lead.Submission) error
	ClearChat(ctx context.Context)
	CheckHealth(ctx context.Context)
	OpenCaptureForm()
	DismissCaptureForm()
	QuickReplies() []string
}

type Server struct {
	router *chi.Mux
	uc     UseCase
}

var _ http.Handler = &Server{}

func NewServer(uc UseCase) *Server {
	s := &Server{
		router: chi.NewRouter(),
		uc:     uc,
	}

	s.router.Use(loggingMiddleware)
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Get("/health", s.handleHealth)
		r.Post("/messages", s.handleSendMessage)
		r.Post("/clear", s.handleClear)
		r.Route("/capture", func(r chi.Router) {
			r.Post("/", s.handleCapture)
			r.Post("/open", s.handleCaptureOpen)
			r.Post("/dismiss", s.handleCaptureDismiss)
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// stateResponse is the widget render state: the manager snapshot plus
// quick-reply suggestions for the input row.
type stateResponse struct {
	usecase.Snapshot
	Suggestions []string `json:"suggestions"`
}

func (s *Server) respondState(w http.ResponseWriter, r *http.Request) {
	resp := stateResponse{
		Snapshot:    s.uc.Snapshot(),
		Suggestions: s.uc.QuickReplies(),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		handleError(w, r, goerr.Wrap(err, "failed to encode state"))
	}
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.respondState(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.uc.CheckHealth(r.Context())

	status := types.HealthStatusUnhealthy
	if s.uc.Snapshot().IsOnline {
		status = types.HealthStatusHealthy
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": status.String()})
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, goerr.Wrap(err, "failed to decode message request", goerr.T(errs.TagInvalidRequest)))
		return
	}

	// Guard violations (empty text, offline, in-flight send) are silent
	// no-ops per the manager contract; the refreshed state tells the widget
	// what actually happened.
	s.uc.SendMessage(r.Context(), req.Text)
	s.respondState(w, r)
}

type captureRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Category string `json:"category,omitempty"`
}

func (s *Server) handleCapture(w http.ResponseWriter, r *http.Request) {
	var req captureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, goerr.Wrap(err, "failed to decode capture request", goerr.T(errs.TagInvalidRequest)))
		return
	}

	sub := &lead.Submission{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Category: types.LeadCategory(req.Category),
	}
	sub.Normalize()

	// Field validation happens here, at the presentation boundary; the
	// manager does not re-validate.
	if err := sub.Validate(); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.uc.CaptureLead(r.Context(), sub); err != nil {
		handleError(w, r, err)
		return
	}
	s.respondState(w, r)
}

func (s *Server) handleCaptureOpen(w http.ResponseWriter, r *http.Request) {
	s.uc.OpenCaptureForm()
	s.respondState(w, r)
}

func (s *Server) handleCaptureDismiss(w http.ResponseWriter, r *http.Request) {
	s.uc.DismissCaptureForm()
	s.respondState(w, r)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	s.uc.ClearChat(r.Context())
	s.respondState(w, r)
}
