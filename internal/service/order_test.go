package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shophub/order-placement-service/internal/entities"
	"github.com/shophub/order-placement-service/internal/service"
	"github.com/shophub/order-placement-service/internal/service/mocks"
	txMocks "github.com/shophub/order-placement-service/pkg/trm/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTxManager(t *testing.T) *txMocks.MockManager {
	t.Helper()
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
	return tx
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func floatPtr(f float64) *float64 { return &f }

func TestOrderService_SaveOrder(t *testing.T) {
	type MockBehavior func(orders *mocks.MockOrderRepo, carts *mocks.MockCartRepo)

	testCases := []struct {
		name         string
		input        service.OrderInput
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:         "missing cart reference",
			input:        service.OrderInput{OrderDesc: "First order", OrderFee: floatPtr(99.99)},
			mockBehavior: func(_ *mocks.MockOrderRepo, _ *mocks.MockCartRepo) {},
			wantErr:      entities.ErrCartRequired,
		},
		{
			name:         "empty description",
			input:        service.OrderInput{CartID: 1, OrderFee: floatPtr(99.99)},
			mockBehavior: func(_ *mocks.MockOrderRepo, _ *mocks.MockCartRepo) {},
			wantErr:      entities.ErrDescRequired,
		},
		{
			name:         "missing fee",
			input:        service.OrderInput{CartID: 1, OrderDesc: "First order"},
			mockBehavior: func(_ *mocks.MockOrderRepo, _ *mocks.MockCartRepo) {},
			wantErr:      entities.ErrFeeInvalid,
		},
		{
			name:         "negative fee",
			input:        service.OrderInput{CartID: 1, OrderDesc: "First order", OrderFee: floatPtr(-1)},
			mockBehavior: func(_ *mocks.MockOrderRepo, _ *mocks.MockCartRepo) {},
			wantErr:      entities.ErrFeeInvalid,
		},
		{
			name:  "cart does not exist",
			input: service.OrderInput{CartID: 42, OrderDesc: "First order", OrderFee: floatPtr(99.99)},
			mockBehavior: func(_ *mocks.MockOrderRepo, carts *mocks.MockCartRepo) {
				carts.EXPECT().
					CartByID(mock.Anything, 42).
					Return(entities.Cart{}, entities.ErrCartNotFound).Once()
			},
			wantErr: entities.ErrCartNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderRepo(t)
			carts := mocks.NewMockCartRepo(t)
			tc.mockBehavior(orders, carts)

			svc := service.NewOrderService(discardLogger(), newTxManager(t), orders, carts)

			_, err := svc.SaveOrder(context.Background(), tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestOrderService_SaveOrder_Success(t *testing.T) {
	orders := mocks.NewMockOrderRepo(t)
	carts := mocks.NewMockCartRepo(t)

	carts.EXPECT().
		CartByID(mock.Anything, 1).
		Return(entities.Cart{CartID: 1, UserID: 7, Active: true}, nil).Once()

	var persisted entities.Order
	orders.EXPECT().
		SaveOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			persisted = o
			o.OrderID = 10
			return o, nil
		}).Once()

	svc := service.NewOrderService(discardLogger(), newTxManager(t), orders, carts)

	got, err := svc.SaveOrder(context.Background(), service.OrderInput{
		CartID:    1,
		OrderDesc: "First order",
		OrderFee:  floatPtr(99.99),
	})
	require.NoError(t, err)

	assert.Equal(t, 10, got.OrderID)
	assert.Equal(t, 1, got.CartID)
	assert.Equal(t, entities.StatusCreated, got.Status)
	assert.Equal(t, "First order", got.OrderDesc)
	assert.Equal(t, 99.99, got.OrderFee)
	assert.True(t, got.Active)
	assert.WithinDuration(t, time.Now(), got.OrderDate, time.Second)

	// the store assigns the id, never the caller
	assert.Zero(t, persisted.OrderID)
	assert.Equal(t, entities.StatusCreated, persisted.Status)
}

func TestOrderService_AdvanceOrder(t *testing.T) {
	type MockBehavior func(orders *mocks.MockOrderRepo)

	testCases := []struct {
		name         string
		orderID      int
		mockBehavior MockBehavior
		want         entities.OrderStatus
		wantErr      error
	}{
		{
			name:    "created advances to ordered",
			orderID: 1,
			mockBehavior: func(orders *mocks.MockOrderRepo) {
				orders.EXPECT().
					ActiveOrderByID(mock.Anything, 1).
					Return(entities.Order{OrderID: 1, Status: entities.StatusCreated, Active: true}, nil).Once()
				orders.EXPECT().
					UpdateOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
						return o, nil
					}).Once()
			},
			want: entities.StatusOrdered,
		},
		{
			name:    "ordered advances to in payment",
			orderID: 1,
			mockBehavior: func(orders *mocks.MockOrderRepo) {
				orders.EXPECT().
					ActiveOrderByID(mock.Anything, 1).
					Return(entities.Order{OrderID: 1, Status: entities.StatusOrdered, Active: true}, nil).Once()
				orders.EXPECT().
					UpdateOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
						return o, nil
					}).Once()
			},
			want: entities.StatusInPayment,
		},
		{
			name:    "in payment is terminal",
			orderID: 1,
			mockBehavior: func(orders *mocks.MockOrderRepo) {
				orders.EXPECT().
					ActiveOrderByID(mock.Anything, 1).
					Return(entities.Order{OrderID: 1, Status: entities.StatusInPayment, Active: true}, nil).Once()
			},
			wantErr: entities.ErrOrderFinalized,
		},
		{
			name:    "unknown status",
			orderID: 1,
			mockBehavior: func(orders *mocks.MockOrderRepo) {
				orders.EXPECT().
					ActiveOrderByID(mock.Anything, 1).
					Return(entities.Order{OrderID: 1, Status: entities.OrderStatus("SHIPPED"), Active: true}, nil).Once()
			},
			wantErr: entities.ErrUnknownStatus,
		},
		{
			name:    "order not found",
			orderID: 99,
			mockBehavior: func(orders *mocks.MockOrderRepo) {
				orders.EXPECT().
					ActiveOrderByID(mock.Anything, 99).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderRepo(t)
			tc.mockBehavior(orders)

			svc := service.NewOrderService(discardLogger(), newTxManager(t), orders, mocks.NewMockCartRepo(t))

			got, err := svc.AdvanceOrder(context.Background(), tc.orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Status)
		})
	}
}

func TestOrderService_UpdateOrder(t *testing.T) {
	orderDate := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	existing := entities.Order{
		OrderID:   5,
		CartID:    1,
		OrderDate: orderDate,
		OrderDesc: "old desc",
		OrderFee:  10,
		Status:    entities.StatusOrdered,
		Active:    true,
	}

	t.Run("cart, date and status stay immutable", func(t *testing.T) {
		orders := mocks.NewMockOrderRepo(t)

		orders.EXPECT().
			ActiveOrderByID(mock.Anything, 5).
			Return(existing, nil).Once()
		orders.EXPECT().
			UpdateOrder(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
				return o, nil
			}).Once()

		svc := service.NewOrderService(discardLogger(), newTxManager(t), orders, mocks.NewMockCartRepo(t))

		got, err := svc.UpdateOrder(context.Background(), 5, service.OrderInput{
			OrderDesc: "new desc",
			OrderFee:  floatPtr(25.5),
			CartID:    99, // must be ignored
		})
		require.NoError(t, err)

		assert.Equal(t, "new desc", got.OrderDesc)
		assert.Equal(t, 25.5, got.OrderFee)
		assert.Equal(t, 1, got.CartID)
		assert.Equal(t, orderDate, got.OrderDate)
		assert.Equal(t, entities.StatusOrdered, got.Status)
	})

	t.Run("nil fee keeps the stored fee", func(t *testing.T) {
		orders := mocks.NewMockOrderRepo(t)

		orders.EXPECT().
			ActiveOrderByID(mock.Anything, 5).
			Return(existing, nil).Once()
		orders.EXPECT().
			UpdateOrder(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
				return o, nil
			}).Once()

		svc := service.NewOrderService(discardLogger(), newTxManager(t), orders, mocks.NewMockCartRepo(t))

		got, err := svc.UpdateOrder(context.Background(), 5, service.OrderInput{OrderDesc: "new desc"})
		require.NoError(t, err)
		assert.Equal(t, 10.0, got.OrderFee)
	})

	t.Run("order not found", func(t *testing.T) {
		orders := mocks.NewMockOrderRepo(t)

		orders.EXPECT().
			ActiveOrderByID(mock.Anything, 77).
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		svc := service.NewOrderService(discardLogger(), newTxManager(t), orders, mocks.NewMockCartRepo(t))

		_, err := svc.UpdateOrder(context.Background(), 77, service.OrderInput{OrderDesc: "x"})
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestOrderService_DeleteOrder(t *testing.T) {
	type MockBehavior func(orders *mocks.MockOrderRepo)

	testCases := []struct {
		name         string
		orderID      int
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:    "created order is deactivated",
			orderID: 1,
			mockBehavior: func(orders *mocks.MockOrderRepo) {
				orders.EXPECT().
					ActiveOrderByID(mock.Anything, 1).
					Return(entities.Order{OrderID: 1, Status: entities.StatusCreated, Active: true}, nil).Once()
				orders.EXPECT().
					DeactivateOrder(mock.Anything, 1).
					Return(nil).Once()
			},
		},
		{
			name:    "order in payment cannot be deleted",
			orderID: 2,
			mockBehavior: func(orders *mocks.MockOrderRepo) {
				// DeactivateOrder must never be called here
				orders.EXPECT().
					ActiveOrderByID(mock.Anything, 2).
					Return(entities.Order{OrderID: 2, Status: entities.StatusInPayment, Active: true}, nil).Once()
			},
			wantErr: entities.ErrOrderPaid,
		},
		{
			name:    "order not found",
			orderID: 3,
			mockBehavior: func(orders *mocks.MockOrderRepo) {
				orders.EXPECT().
					ActiveOrderByID(mock.Anything, 3).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderRepo(t)
			tc.mockBehavior(orders)

			svc := service.NewOrderService(discardLogger(), newTxManager(t), orders, mocks.NewMockCartRepo(t))

			err := svc.DeleteOrder(context.Background(), tc.orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_Orders(t *testing.T) {
	t.Run("returns active orders", func(t *testing.T) {
		orders := mocks.NewMockOrderRepo(t)

		want := []entities.Order{
			{OrderID: 1, Status: entities.StatusCreated, Active: true},
			{OrderID: 2, Status: entities.StatusOrdered, Active: true},
		}
		orders.EXPECT().ActiveOrders(mock.Anything).Return(want, nil).Once()

		svc := service.NewOrderService(discardLogger(), newTxManager(t), orders, mocks.NewMockCartRepo(t))

		got, err := svc.Orders(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("repo failure propagates", func(t *testing.T) {
		orders := mocks.NewMockOrderRepo(t)

		dbErr := errors.New("db error")
		orders.EXPECT().ActiveOrders(mock.Anything).Return(nil, dbErr).Once()

		svc := service.NewOrderService(discardLogger(), newTxManager(t), orders, mocks.NewMockCartRepo(t))

		_, err := svc.Orders(context.Background())
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestOrderService_OrderByID(t *testing.T) {
	orders := mocks.NewMockOrderRepo(t)

	orders.EXPECT().
		ActiveOrderByID(mock.Anything, 404).
		Return(entities.Order{}, entities.ErrOrderNotFound).Once()

	svc := service.NewOrderService(discardLogger(), newTxManager(t), orders, mocks.NewMockCartRepo(t))

	_, err := svc.OrderByID(context.Background(), 404)
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}
