package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/minterminds/chatfront/pkg/domain/interfaces"
	"github.com/minterminds/chatfront/pkg/domain/model/chat"
	"github.com/minterminds/chatfront/pkg/domain/model/errs"
	"github.com/minterminds/chatfront/pkg/domain/model/lead"
	"github.com/minterminds/chatfront/pkg/domain/types"
	"github.com/minterminds/chatfront/pkg/utils/safe"
)

const defaultTimeout = 15 * time.Second

// Client talks to the conversational-AI backend over HTTP/JSON. Every call
// carries a per-request timeout; a timeout is reported like any other
// transport failure.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

var _ interfaces.BackendClient = &Client{}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil || baseURL == "" {
		return nil, goerr.New("invalid backend base URL", goerr.T(errs.TagInvalidRequest), goerr.V("base_url", baseURL))
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		timeout:    defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type sendMessageRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message"`
}

type captureResponse struct {
	Message string `json:"message"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func (c *Client) SendMessage(ctx context.Context, sessionID types.SessionID, message string) (*chat.Reply, error) {
	var reply chat.Reply
	req := sendMessageRequest{
		SessionID: sessionID.String(),
		Message:   message,
	}
	if err := c.post(ctx, "/chat", req, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *Client) CaptureLead(ctx context.Context, sub *lead.Submission) (string, error) {
	var resp captureResponse
	if err := c.post(ctx, "/capture", sub, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) ClearChat(ctx context.Context, sessionID types.SessionID) error {
	req := map[string]string{"session_id": sessionID.String()}
	return c.post(ctx, "/chat/clear", req, nil)
}

func (c *Client) CheckHealth(ctx context.Context) (types.HealthStatus, error) {
	var resp healthResponse
	if err := c.get(ctx, "/health", &resp); err != nil {
		return types.HealthStatusUnhealthy, err
	}
	return types.HealthStatus(resp.Status), nil
}

func (c *Client) KnowledgeStats(ctx context.Context) (map[string]any, error) {
	var stats map[string]any
	if err := c.get(ctx, "/knowledge/stats", &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return goerr.Wrap(err, "failed to encode request body", goerr.V("path", path))
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(payload), out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return goerr.Wrap(err, "failed to create request", goerr.V("path", path))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return goerr.Wrap(err, "backend request timed out", goerr.T(errs.TagTimeout), goerr.V("path", path))
		}
		return goerr.Wrap(err, "failed to call backend", goerr.T(errs.TagExternal), goerr.V("path", path))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return goerr.New("backend returned error status",
			goerr.T(errs.TagExternal),
			goerr.V("path", path),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(msg)),
		)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode backend response", goerr.T(errs.TagExternal), goerr.V("path", path))
	}
	return nil
}
