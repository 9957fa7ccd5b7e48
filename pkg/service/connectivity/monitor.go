package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/minterminds/chatfront/pkg/domain/interfaces"
	"github.com/minterminds/chatfront/pkg/utils/logging"
)

const defaultInterval = 30 * time.Second

// Monitor tracks whether the client currently considers itself online. It
// combines periodic backend health polling with manual hints from the host
// environment (the browser online/offline event analog).
type Monitor struct {
	client   interfaces.BackendClient
	interval time.Duration

	mu          sync.RWMutex
	online      bool
	subscribers []func(online bool)

	startOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}
}

type Option func(*Monitor)

// WithInterval sets the polling interval
func WithInterval(interval time.Duration) Option {
	return func(m *Monitor) {
		m.interval = interval
	}
}

func New(client interfaces.BackendClient, opts ...Option) *Monitor {
	m := &Monitor{
		client:   client,
		interval: defaultInterval,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start probes once immediately to seed the state, then polls on the fixed
// interval until Stop is called or ctx is canceled.
func (m *Monitor) Start(ctx context.Context) {
	m.startOnce.Do(func() {
		m.Probe(ctx)
		go m.poll(ctx)
	})
}

func (m *Monitor) poll(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.done:
			return
		case <-ticker.C:
			m.Probe(ctx)
		}
	}
}

// Probe runs one health check and updates the online state. A failed probe
// downgrades to offline; it never returns an error to the caller.
func (m *Monitor) Probe(ctx context.Context) {
	status, err := m.client.CheckHealth(ctx)
	if err != nil {
		logging.From(ctx).Warn("health check failed", logging.ErrAttr(err))
		m.SetOnline(false)
		return
	}
	m.SetOnline(status.Online())
}

// Online returns the current connectivity state
func (m *Monitor) Online() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// SetOnline applies a state manually. Subscribers are notified only when the
// state actually transitions.
func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	changed := m.online != online
	m.online = online
	subs := make([]func(bool), len(m.subscribers))
	copy(subs, m.subscribers)
	m.mu.Unlock()

	if !changed {
		return
	}
	for _, fn := range subs {
		fn(online)
	}
}

// Subscribe registers a transition callback. Callbacks run synchronously on
// the goroutine that observed the transition.
func (m *Monitor) Subscribe(fn func(online bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}

// Stop terminates polling; idempotent
func (m *Monitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.done)
	})
}
