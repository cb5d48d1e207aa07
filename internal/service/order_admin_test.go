package service_test

import (
	"errors"
	"testing"

	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/metrics"
	"github.com/nikolayk812/storefront/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOrderAdmin_ListOrders(t *testing.T) {
	repo := seededOrders(t, 3)
	admin := service.NewOrderAdmin(repo, false, zap.NewNop())

	orders, err := admin.ListOrders(t.Context())
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, []int64{3, 2, 1}, []int64{orders[0].ID, orders[1].ID, orders[2].ID})
}

func TestOrderAdmin_ListOrders_StorageError(t *testing.T) {
	repo := &fakeOrders{listErr: errors.New("timeout")}
	admin := service.NewOrderAdmin(repo, false, zap.NewNop())

	_, err := admin.ListOrders(t.Context())

	var pe *domain.PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "timeout", pe.Message)
}

func TestOrderAdmin_GetOrder(t *testing.T) {
	repo := seededOrders(t, 1)
	admin := service.NewOrderAdmin(repo, false, zap.NewNop())

	order, err := admin.GetOrder(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.Status)

	_, err = admin.GetOrder(t.Context(), 99)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderAdmin_UpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		strict     bool
		steps      []domain.OrderStatus
		next       domain.OrderStatus
		id         int64
		wantStatus domain.OrderStatus
		wantErr    error
	}{
		{
			name:       "pending to processing: ok",
			next:       domain.OrderStatusProcessing,
			id:         1,
			wantStatus: domain.OrderStatusProcessing,
		},
		{
			name:    "same status: rejected",
			steps:   []domain.OrderStatus{domain.OrderStatusCompleted},
			next:    domain.OrderStatusCompleted,
			id:      1,
			wantErr: domain.ErrStatusUnchanged,
		},
		{
			name:    "back to pending: rejected",
			steps:   []domain.OrderStatus{domain.OrderStatusProcessing},
			next:    domain.OrderStatusPending,
			id:      1,
			wantErr: domain.ErrInvalidStatus,
		},
		{
			name:       "completed to cancelled, lax: ok",
			steps:      []domain.OrderStatus{domain.OrderStatusCompleted},
			next:       domain.OrderStatusCancelled,
			id:         1,
			wantStatus: domain.OrderStatusCancelled,
		},
		{
			name:    "completed to cancelled, strict: rejected",
			strict:  true,
			steps:   []domain.OrderStatus{domain.OrderStatusProcessing, domain.OrderStatusCompleted},
			next:    domain.OrderStatusCancelled,
			id:      1,
			wantErr: domain.ErrInvalidTransition,
		},
		{
			name:    "unknown order: not found",
			next:    domain.OrderStatusProcessing,
			id:      42,
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := seededOrders(t, 1)
			admin := service.NewOrderAdmin(repo, tt.strict, zap.NewNop())

			for _, step := range tt.steps {
				_, err := admin.UpdateStatus(t.Context(), 1, step)
				require.NoError(t, err)
			}

			got, err := admin.UpdateStatus(t.Context(), tt.id, tt.next)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got)

			stored, err := admin.GetOrder(t.Context(), tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, stored.Status)
		})
	}
}

func seededOrders(t *testing.T, n int) *fakeOrders {
	t.Helper()

	repo := &fakeOrders{}
	submitter := service.NewOrderSubmitter(repo, metrics.NewNop(), zap.NewNop(), 0)

	for i := range n {
		store := cart.NewStore()
		store.Add(product(int64(i), "12.50"))

		_, err := submitter.SubmitOrder(t.Context(), randomCustomer(), store.Snapshot())
		require.NoError(t, err)
	}

	return repo
}
