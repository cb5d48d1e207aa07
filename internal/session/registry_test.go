package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/metrics"
	"github.com/nikolayk812/storefront/internal/session"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRegistry_Get(t *testing.T) {
	r := session.NewRegistry(time.Hour, metrics.NewNop(), zap.NewNop())

	first := r.Get("")
	require.NotEmpty(t, first.ID)

	assert.Same(t, first, r.Get(first.ID))
	assert.NotSame(t, first, r.Get("unknown"))
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_IndependentCarts(t *testing.T) {
	r := session.NewRegistry(time.Hour, metrics.NewNop(), zap.NewNop())

	a := r.Get("")
	b := r.Get("")

	a.Do(func(s *cart.Store) { s.Add(testProduct(1)) })

	b.Do(func(s *cart.Store) {
		assert.True(t, s.IsEmpty())
	})
}

func TestSession_Checkout(t *testing.T) {
	tests := []struct {
		name      string
		submitErr error
		wantItems int
	}{
		{
			name:      "success clears cart",
			wantItems: 0,
		},
		{
			name:      "failure keeps cart",
			submitErr: errors.New("backend down"),
			wantItems: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := session.NewRegistry(time.Hour, metrics.NewNop(), zap.NewNop()).Get("")
			s.Do(func(store *cart.Store) {
				store.Add(testProduct(1))
				store.Add(testProduct(1))
			})

			err := s.Checkout(func(snapshot domain.CartSnapshot) error {
				require.Len(t, snapshot.Lines, 1)
				return tt.submitErr
			})
			if tt.submitErr != nil {
				require.ErrorIs(t, err, tt.submitErr)
			} else {
				require.NoError(t, err)
			}

			s.Do(func(store *cart.Store) {
				assert.Equal(t, tt.wantItems, store.TotalItems())
			})
		})
	}
}

func TestSession_Checkout_InFlight(t *testing.T) {
	s := session.NewRegistry(time.Hour, metrics.NewNop(), zap.NewNop()).Get("")
	s.Do(func(store *cart.Store) { store.Add(testProduct(1)) })

	started := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = s.Checkout(func(domain.CartSnapshot) error {
			close(started)
			<-release
			return nil
		})
	}()

	<-started
	err := s.Checkout(func(domain.CartSnapshot) error { return nil })
	require.ErrorIs(t, err, session.ErrSubmissionInFlight)

	close(release)
	wg.Wait()
}

func TestRegistry_Sweep(t *testing.T) {
	m := metrics.NewNop()
	r := session.NewRegistry(time.Minute, m, zap.NewNop())

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r.SetClock(func() time.Time { return now })

	stale := r.Get("")
	now = now.Add(2 * time.Minute)
	fresh := r.Get("")

	assert.Equal(t, 1, r.Sweep())
	assert.Equal(t, 1, r.Len())
	assert.NotSame(t, stale, r.Get(stale.ID))
	assert.Same(t, fresh, r.Get(fresh.ID))
	assert.InDelta(t, 2, testutil.ToFloat64(m.Sessions), 0)
}

func TestRegistry_Run(t *testing.T) {
	r := session.NewRegistry(time.Nanosecond, metrics.NewNop(), zap.NewNop())
	r.Get("")

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return r.Len() == 0 }, time.Second, time.Millisecond)
	cancel()
	<-done
}

func testProduct(id int64) domain.Product {
	return domain.Product{ID: id, Name: "jersey", Price: decimal.RequireFromString("350")}
}
