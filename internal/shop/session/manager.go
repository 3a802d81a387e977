package session

import (
	"context"
	"sync"
	"time"

	errx "github.com/GreenNest-storefront/server/internal/core/error"
	"github.com/GreenNest-storefront/server/internal/shop/cart"
	"github.com/GreenNest-storefront/server/internal/shop/checkout"
	"github.com/GreenNest-storefront/server/internal/shop/model"
	logx "github.com/GreenNest-storefront/server/pkg/logger"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// Session is one shopper: a Cart Store shared by every view of that
// shopper, plus at most one live checkout.
type Session struct {
	ID   string
	Cart *cart.Store

	logger      zerolog.Logger
	unsubscribe func()

	mu       sync.Mutex
	flow     *checkout.Flow
	lastSeen time.Time
}

// Config holds the knobs the manager passes on to sessions and flows.
type Config struct {
	Checkout model.CheckoutConfig
	Session  model.SessionConfig
	Events   model.EventsConfig
}

type Option func(*Manager)

func WithClock(c clockwork.Clock) Option {
	return func(m *Manager) { m.clock = c }
}

// Manager owns every live session. Sessions live in memory only and are
// dropped when idle for longer than SessionConfig.IdleTTL.
type Manager struct {
	publisher model.CartEventPublisher
	cfg       Config
	clock     clockwork.Clock

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(publisher model.CartEventPublisher, cfg Config, opts ...Option) *Manager {
	m := &Manager{
		publisher: publisher,
		cfg:       cfg,
		clock:     clockwork.NewRealClock(),
		sessions:  map[string]*Session{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open creates a session with an empty cart.
func (m *Manager) Open() *Session {
	id := uuid.NewString()
	s := &Session{
		ID:       id,
		Cart:     cart.New(),
		logger:   logx.Session(id),
		lastSeen: m.clock.Now(),
	}
	s.unsubscribe = s.Cart.Subscribe(func(change model.CartChange) {
		s.logger.Debug().
			Str("kind", string(change.Kind)).
			Int("product_id", change.ProductID).
			Int("total_items", change.Cart.TotalItems).
			Str("total_price", change.Cart.TotalPrice.StringFixed(2)).
			Msg("cart changed")
		m.publish(model.CartEvent{SessionID: id, At: m.clock.Now(), CartChange: change})
	})

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	s.logger.Info().Msg("session opened")
	return s
}

// Get returns the session and marks it as active.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, errx.SessionNotFound(id)
	}

	s.mu.Lock()
	s.lastSeen = m.clock.Now()
	s.mu.Unlock()
	return s, nil
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// StartCheckout enters the checkout view: any previous flow is closed and
// a fresh one starts at the shipping step.
func (m *Manager) StartCheckout(id string) (*checkout.Flow, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flow != nil {
		s.flow.Close()
	}
	s.flow = checkout.New(s.Cart,
		checkout.WithClock(m.clock),
		checkout.WithSettlementDelay(m.cfg.Checkout.SettlementDelay),
		checkout.WithLogger(s.logger),
		checkout.OnConfirmed(func(r checkout.Receipt) {
			m.publish(model.CartEvent{
				SessionID:  id,
				At:         r.ConfirmedAt,
				OrderID:    r.OrderID,
				CartChange: model.CartChange{Kind: model.EventCheckoutConfirmed, Cart: s.Cart.Snapshot()},
			})
		}),
	)
	s.logger.Info().Msg("checkout started")
	return s.flow, nil
}

// Checkout returns the session's live flow.
func (m *Manager) Checkout(id string) (*checkout.Flow, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flow == nil {
		return nil, errx.CheckoutNotStarted(id)
	}
	return s.flow, nil
}

// EndCheckout leaves the checkout view, cancelling a pending settlement.
// Leaving when no checkout is active is a no-op.
func (m *Manager) EndCheckout(id string) error {
	s, err := m.Get(id)
	if err != nil {
		return err
	}
	s.endCheckout()
	return nil
}

// EvictIdle drops sessions idle for longer than the configured TTL and
// returns how many were dropped.
func (m *Manager) EvictIdle() int {
	ttl := m.cfg.Session.IdleTTL
	if ttl <= 0 {
		return 0
	}
	now := m.clock.Now()

	m.mu.Lock()
	var idle []*Session
	for id, s := range m.sessions {
		s.mu.Lock()
		expired := now.Sub(s.lastSeen) > ttl
		s.mu.Unlock()
		if expired {
			idle = append(idle, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range idle {
		s.close()
		s.logger.Info().Msg("idle session evicted")
	}
	return len(idle)
}

// Run evicts idle sessions every half TTL until ctx is done.
func (m *Manager) Run(ctx context.Context) {
	ttl := m.cfg.Session.IdleTTL
	if ttl <= 0 {
		<-ctx.Done()
		return
	}
	ticker := m.clock.NewTicker(ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if n := m.EvictIdle(); n > 0 {
				logx.Debug().Int("evicted", n).Int("live", m.Len()).Msg("session sweep")
			}
		}
	}
}

// Close drops every session and cancels all pending settlements.
func (m *Manager) Close() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = map[string]*Session{}
	m.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}
}

func (m *Manager) publish(event model.CartEvent) {
	timeout := m.cfg.Events.PublishTimeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := m.publisher.Publish(ctx, event); err != nil {
		logx.Error().Err(err).
			Str("session_id", event.SessionID).
			Str("kind", string(event.Kind)).
			Msg("failed to publish cart event")
	}
}

func (s *Session) endCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flow != nil {
		s.flow.Close()
		s.flow = nil
		s.logger.Info().Msg("checkout left")
	}
}

func (s *Session) close() {
	s.endCheckout()
	s.unsubscribe()
}
