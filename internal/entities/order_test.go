package entities_test

import (
	"testing"

	"github.com/shophub/order-placement-service/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_Next(t *testing.T) {
	testCases := []struct {
		name    string
		status  entities.OrderStatus
		want    entities.OrderStatus
		wantErr error
	}{
		{
			name:   "created advances to ordered",
			status: entities.StatusCreated,
			want:   entities.StatusOrdered,
		},
		{
			name:   "ordered advances to in payment",
			status: entities.StatusOrdered,
			want:   entities.StatusInPayment,
		},
		{
			name:    "in payment is terminal",
			status:  entities.StatusInPayment,
			wantErr: entities.ErrOrderFinalized,
		},
		{
			name:    "unknown status",
			status:  entities.OrderStatus("SHIPPED"),
			wantErr: entities.ErrUnknownStatus,
		},
		{
			name:    "empty status",
			status:  entities.OrderStatus(""),
			wantErr: entities.ErrUnknownStatus,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.status.Next()
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderStatus_FullSequence(t *testing.T) {
	status := entities.StatusCreated

	status, err := status.Next()
	require.NoError(t, err)
	assert.Equal(t, entities.StatusOrdered, status)

	status, err = status.Next()
	require.NoError(t, err)
	assert.Equal(t, entities.StatusInPayment, status)

	_, err = status.Next()
	assert.ErrorIs(t, err, entities.ErrOrderFinalized)
}
