package domain_test

import (
	"testing"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, s := range []string{"pending", "processing", "completed", "cancelled"} {
		got, err := domain.ParseOrderStatus(s)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatus(s), got)
	}

	_, err := domain.ParseOrderStatus("shipped")
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestCheckTransition(t *testing.T) {
	tests := []struct {
		name      string
		from, to  domain.OrderStatus
		strict    bool
		wantError error
	}{
		{name: "pending to processing", from: domain.OrderStatusPending, to: domain.OrderStatusProcessing},
		{name: "completed to processing, lax", from: domain.OrderStatusCompleted, to: domain.OrderStatusProcessing},
		{name: "same status", from: domain.OrderStatusCancelled, to: domain.OrderStatusCancelled, wantError: domain.ErrStatusUnchanged},
		{name: "to pending", from: domain.OrderStatusProcessing, to: domain.OrderStatusPending, wantError: domain.ErrInvalidStatus},
		{name: "unknown target", from: domain.OrderStatusPending, to: "shipped", wantError: domain.ErrInvalidStatus},
		{name: "pending to cancelled, strict", from: domain.OrderStatusPending, to: domain.OrderStatusCancelled, strict: true},
		{name: "processing to completed, strict", from: domain.OrderStatusProcessing, to: domain.OrderStatusCompleted, strict: true},
		{name: "pending to completed, strict", from: domain.OrderStatusPending, to: domain.OrderStatusCompleted, strict: true, wantError: domain.ErrInvalidTransition},
		{name: "cancelled is terminal, strict", from: domain.OrderStatusCancelled, to: domain.OrderStatusProcessing, strict: true, wantError: domain.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.from.CheckTransition(tt.to, tt.strict)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}
