package service_test

import (
	"context"
	"testing"

	"github.com/shophub/order-placement-service/internal/entities"
	"github.com/shophub/order-placement-service/internal/service"
	"github.com/shophub/order-placement-service/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_Carts(t *testing.T) {
	t.Run("carts with unreachable users are dropped", func(t *testing.T) {
		repo := mocks.NewMockCartRepo(t)
		users := mocks.NewMockUserClient(t)

		repo.EXPECT().ActiveCarts(mock.Anything).Return([]entities.Cart{
			{CartID: 1, UserID: 7, Active: true},
			{CartID: 2, UserID: 8, Active: true, OrderIDs: []int{10}},
		}, nil).Once()

		users.EXPECT().
			UserByID(mock.Anything, 7).
			Return(entities.User{}, entities.ErrUserUnreachable).Once()
		users.EXPECT().
			UserByID(mock.Anything, 8).
			Return(entities.User{UserID: 8, FirstName: "Ann"}, nil).Once()

		svc := service.NewCartService(discardLogger(), newTxManager(t), repo, users)

		got, err := svc.Carts(context.Background())
		require.NoError(t, err)

		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].CartID)
		require.NotNil(t, got[0].User)
		assert.Equal(t, "Ann", got[0].User.FirstName)
		assert.Equal(t, []int{10}, got[0].OrderIDs)
	})

	t.Run("empty store yields empty listing", func(t *testing.T) {
		repo := mocks.NewMockCartRepo(t)
		users := mocks.NewMockUserClient(t)

		repo.EXPECT().ActiveCarts(mock.Anything).Return(nil, nil).Once()

		svc := service.NewCartService(discardLogger(), newTxManager(t), repo, users)

		got, err := svc.Carts(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		repo := mocks.NewMockCartRepo(t)
		users := mocks.NewMockUserClient(t)

		repo.EXPECT().ActiveCarts(mock.Anything).Return(nil, assert.AnError).Once()

		svc := service.NewCartService(discardLogger(), newTxManager(t), repo, users)

		_, err := svc.Carts(context.Background())
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestCartService_CartByID(t *testing.T) {
	type MockBehavior func(repo *mocks.MockCartRepo, users *mocks.MockUserClient)

	testCases := []struct {
		name         string
		cartID       int
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:   "returns cart with user attached",
			cartID: 1,
			mockBehavior: func(repo *mocks.MockCartRepo, users *mocks.MockUserClient) {
				repo.EXPECT().
					ActiveCartByID(mock.Anything, 1).
					Return(entities.Cart{CartID: 1, UserID: 7, Active: true}, nil).Once()
				users.EXPECT().
					UserByID(mock.Anything, 7).
					Return(entities.User{UserID: 7, FirstName: "Bob"}, nil).Once()
			},
		},
		{
			name:   "cart not found",
			cartID: 99,
			mockBehavior: func(repo *mocks.MockCartRepo, _ *mocks.MockUserClient) {
				repo.EXPECT().
					ActiveCartByID(mock.Anything, 99).
					Return(entities.Cart{}, entities.ErrCartNotFound).Once()
			},
			wantErr: entities.ErrCartNotFound,
		},
		{
			name:   "user not found propagates",
			cartID: 1,
			mockBehavior: func(repo *mocks.MockCartRepo, users *mocks.MockUserClient) {
				repo.EXPECT().
					ActiveCartByID(mock.Anything, 1).
					Return(entities.Cart{CartID: 1, UserID: 7, Active: true}, nil).Once()
				users.EXPECT().
					UserByID(mock.Anything, 7).
					Return(entities.User{}, entities.ErrUserNotFound).Once()
			},
			wantErr: entities.ErrUserNotFound,
		},
		{
			name:   "user service unreachable propagates",
			cartID: 1,
			mockBehavior: func(repo *mocks.MockCartRepo, users *mocks.MockUserClient) {
				repo.EXPECT().
					ActiveCartByID(mock.Anything, 1).
					Return(entities.Cart{CartID: 1, UserID: 7, Active: true}, nil).Once()
				users.EXPECT().
					UserByID(mock.Anything, 7).
					Return(entities.User{}, entities.ErrUserUnreachable).Once()
			},
			wantErr: entities.ErrUserUnreachable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCartRepo(t)
			users := mocks.NewMockUserClient(t)
			tc.mockBehavior(repo, users)

			svc := service.NewCartService(discardLogger(), newTxManager(t), repo, users)

			got, err := svc.CartByID(context.Background(), tc.cartID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.cartID, got.CartID)
			require.NotNil(t, got.User)
			assert.Equal(t, "Bob", got.User.FirstName)
		})
	}
}

func TestCartService_SaveCart(t *testing.T) {
	t.Run("missing user id", func(t *testing.T) {
		repo := mocks.NewMockCartRepo(t)
		users := mocks.NewMockUserClient(t)

		svc := service.NewCartService(discardLogger(), newTxManager(t), repo, users)

		_, err := svc.SaveCart(context.Background(), entities.Cart{})
		assert.ErrorIs(t, err, entities.ErrUserRequired)
	})

	t.Run("unknown user rejects the cart", func(t *testing.T) {
		repo := mocks.NewMockCartRepo(t)
		users := mocks.NewMockUserClient(t)

		users.EXPECT().
			UserByID(mock.Anything, 7).
			Return(entities.User{}, entities.ErrUserNotFound).Once()

		svc := service.NewCartService(discardLogger(), newTxManager(t), repo, users)

		_, err := svc.SaveCart(context.Background(), entities.Cart{UserID: 7})
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})

	t.Run("unreachable user service rejects the cart", func(t *testing.T) {
		repo := mocks.NewMockCartRepo(t)
		users := mocks.NewMockUserClient(t)

		users.EXPECT().
			UserByID(mock.Anything, 7).
			Return(entities.User{}, entities.ErrUserUnreachable).Once()

		svc := service.NewCartService(discardLogger(), newTxManager(t), repo, users)

		_, err := svc.SaveCart(context.Background(), entities.Cart{UserID: 7})
		assert.ErrorIs(t, err, entities.ErrUserUnreachable)
	})

	t.Run("caller id and order associations are discarded", func(t *testing.T) {
		repo := mocks.NewMockCartRepo(t)
		users := mocks.NewMockUserClient(t)

		users.EXPECT().
			UserByID(mock.Anything, 7).
			Return(entities.User{UserID: 7, FirstName: "Ann"}, nil).Once()

		var persisted entities.Cart
		repo.EXPECT().
			SaveCart(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, c entities.Cart) (entities.Cart, error) {
				persisted = c
				c.CartID = 3
				return c, nil
			}).Once()

		svc := service.NewCartService(discardLogger(), newTxManager(t), repo, users)

		got, err := svc.SaveCart(context.Background(), entities.Cart{
			CartID:   55, // must be ignored
			UserID:   7,
			OrderIDs: []int{1, 2}, // must be ignored
		})
		require.NoError(t, err)

		assert.Zero(t, persisted.CartID)
		assert.Empty(t, persisted.OrderIDs)
		assert.True(t, persisted.Active)

		assert.Equal(t, 3, got.CartID)
		assert.Equal(t, 7, got.UserID)
		require.NotNil(t, got.User)
		assert.Equal(t, "Ann", got.User.FirstName)
	})
}

func TestCartService_DeleteCart(t *testing.T) {
	t.Run("already inactive cart is still deletable", func(t *testing.T) {
		repo := mocks.NewMockCartRepo(t)
		users := mocks.NewMockUserClient(t)

		repo.EXPECT().
			CartByID(mock.Anything, 1).
			Return(entities.Cart{CartID: 1, UserID: 7, Active: false}, nil).Once()
		repo.EXPECT().
			DeactivateCart(mock.Anything, 1).
			Return(nil).Once()

		svc := service.NewCartService(discardLogger(), newTxManager(t), repo, users)

		err := svc.DeleteCart(context.Background(), 1)
		assert.NoError(t, err)
	})

	t.Run("cart not found", func(t *testing.T) {
		repo := mocks.NewMockCartRepo(t)
		users := mocks.NewMockUserClient(t)

		repo.EXPECT().
			CartByID(mock.Anything, 2).
			Return(entities.Cart{}, entities.ErrCartNotFound).Once()

		svc := service.NewCartService(discardLogger(), newTxManager(t), repo, users)

		err := svc.DeleteCart(context.Background(), 2)
		assert.ErrorIs(t, err, entities.ErrCartNotFound)
	})
}
