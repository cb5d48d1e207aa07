// Package session gives every browsing session its own cart.Store.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/metrics"
	"go.uber.org/zap"
)

// ErrSubmissionInFlight is returned when a session already has a checkout running.
var ErrSubmissionInFlight = errors.New("order submission already in progress")

type Session struct {
	ID string

	mu         sync.Mutex
	store      *cart.Store
	submitting bool
	lastSeen   time.Time
}

// Do runs fn with exclusive access to the session's cart.
func (s *Session) Do(fn func(store *cart.Store)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.store)
}

// Checkout marks a submission in flight, runs submit on a snapshot of the
// cart without holding the lock, and clears the cart when submit succeeds.
func (s *Session) Checkout(submit func(domain.CartSnapshot) error) error {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return ErrSubmissionInFlight
	}
	s.submitting = true
	snapshot := s.store.Snapshot()
	s.mu.Unlock()

	succeeded := false
	defer func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.submitting = false
		if succeeded {
			s.store.Clear()
		}
	}()

	if err := submit(snapshot); err != nil {
		return err
	}

	succeeded = true
	return nil
}

type Registry struct {
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry(ttl time.Duration, m *metrics.Metrics, logger *zap.Logger) *Registry {
	return &Registry{
		ttl:      ttl,
		metrics:  m,
		logger:   logger.Named("sessions"),
		now:      time.Now,
		sessions: map[string]*Session{},
	}
}

// Get returns the session for id, starting a new one with a fresh id when
// id is unknown or empty.
func (r *Registry) Get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()

	if s, ok := r.sessions[id]; ok {
		s.mu.Lock()
		s.lastSeen = now
		s.mu.Unlock()
		return s
	}

	s := &Session{
		ID:       uuid.NewString(),
		store:    cart.NewStore(),
		lastSeen: now,
	}
	r.sessions[s.ID] = s
	r.metrics.Sessions.Set(float64(len(r.sessions)))

	return s
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// Sweep discards sessions idle for longer than the ttl. Sessions with a
// submission in flight are kept.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	removed := 0

	for id, s := range r.sessions {
		s.mu.Lock()
		expired := !s.submitting && s.lastSeen.Before(cutoff)
		s.mu.Unlock()

		if expired {
			delete(r.sessions, id)
			removed++
		}
	}

	r.metrics.Sessions.Set(float64(len(r.sessions)))
	return removed
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := r.Sweep(); removed > 0 {
				r.logger.Debug("expired sessions removed", zap.Int("count", removed))
			}
		}
	}
}
