package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shophub/order-placement-service/internal/entities"
	"github.com/shophub/order-placement-service/pkg/trm"

	"golang.org/x/sync/errgroup"
)

type CartRepo interface {
	ActiveCarts(ctx context.Context) ([]entities.Cart, error)
	ActiveCartByID(ctx context.Context, cartID int) (entities.Cart, error)
	// CartByID ignores the active flag, so an already deactivated cart is
	// still locatable.
	CartByID(ctx context.Context, cartID int) (entities.Cart, error)
	SaveCart(ctx context.Context, cart entities.Cart) (entities.Cart, error)
	DeactivateCart(ctx context.Context, cartID int) error
}

type UserClient interface {
	UserByID(ctx context.Context, userID int) (entities.User, error)
}

const enrichLimit = 8

type cartService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      CartRepo
	users     UserClient
}

func NewCartService(logger *slog.Logger, txManager trm.Manager, repo CartRepo, users UserClient) *cartService {
	return &cartService{
		logger:    logger.With(slog.String("service", "cart")),
		txManager: txManager,
		repo:      repo,
		users:     users,
	}
}

// Carts lists every active cart enriched with its owning user. A cart
// whose user lookup fails is dropped from the result instead of failing
// the listing: one dead user service entry must not hide everyone
// else's carts.
func (s *cartService) Carts(ctx context.Context) ([]entities.Cart, error) {
	carts, err := s.repo.ActiveCarts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list carts: %w", err)
	}

	enriched := make([]*entities.Cart, len(carts))

	var g errgroup.Group
	g.SetLimit(enrichLimit)
	for i, cart := range carts {
		i, cart := i, cart
		g.Go(func() error {
			user, err := s.users.UserByID(ctx, cart.UserID)
			if err != nil {
				enrichmentFailures.Inc()
				s.logger.WarnContext(ctx, "dropping cart from listing",
					slog.Int("cart_id", cart.CartID),
					slog.Int("user_id", cart.UserID),
					slog.Any("error", err))
				return nil
			}
			cart.User = &user
			enriched[i] = &cart
			return nil
		})
	}
	g.Wait()

	result := make([]entities.Cart, 0, len(carts))
	for _, cart := range enriched {
		if cart != nil {
			result = append(result, *cart)
		}
	}
	return result, nil
}

// CartByID returns one active cart with its user attached. Unlike the
// listing, an enrichment failure here propagates to the caller.
func (s *cartService) CartByID(ctx context.Context, cartID int) (entities.Cart, error) {
	cart, err := s.repo.ActiveCartByID(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}

	user, err := s.users.UserByID(ctx, cart.UserID)
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to enrich cart %d: %w", cartID, err)
	}

	cart.User = &user
	return cart, nil
}

// SaveCart verifies the owning user against the remote service before
// anything is persisted. The lookup runs before the transaction opens so
// the only network call stays outside the db boundary.
func (s *cartService) SaveCart(ctx context.Context, in entities.Cart) (entities.Cart, error) {
	if in.UserID == 0 {
		return entities.Cart{}, entities.ErrUserRequired
	}

	user, err := s.users.UserByID(ctx, in.UserID)
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to verify user %d: %w", in.UserID, err)
	}

	// caller supplied id and order associations are discarded, a new cart
	// starts empty
	cart := entities.Cart{UserID: in.UserID, Active: true}

	var saved entities.Cart
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		saved, err = s.repo.SaveCart(ctx, cart)
		return err
	})
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to save cart: %w", err)
	}

	s.logger.InfoContext(ctx, "cart saved",
		slog.Int("cart_id", saved.CartID), slog.Int("user_id", saved.UserID))

	saved.User = &user
	return saved, nil
}

// DeleteCart flips the active flag. The cart is looked up by raw id, so
// deleting an already inactive cart is not a not-found.
func (s *cartService) DeleteCart(ctx context.Context, cartID int) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		cart, err := s.repo.CartByID(ctx, cartID)
		if err != nil {
			return err
		}
		return s.repo.DeactivateCart(ctx, cart.CartID)
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "cart deactivated", slog.Int("cart_id", cartID))
	return nil
}
