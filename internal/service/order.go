package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shophub/order-placement-service/internal/entities"
	"github.com/shophub/order-placement-service/pkg/trm"
)

type OrderRepo interface {
	ActiveOrders(ctx context.Context) ([]entities.Order, error)
	ActiveOrderByID(ctx context.Context, orderID int) (entities.Order, error)
	SaveOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	UpdateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	DeactivateOrder(ctx context.Context, orderID int) error
}

// OrderInput carries the caller-mutable order fields. Fee is a pointer so
// a missing fee is distinguishable from a zero one.
type OrderInput struct {
	OrderDesc string
	OrderFee  *float64
	CartID    int
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	carts     CartRepo
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, orders OrderRepo, carts CartRepo) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		carts:     carts,
	}
}

func (s *orderService) Orders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.orders.ActiveOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) OrderByID(ctx context.Context, orderID int) (entities.Order, error) {
	return s.orders.ActiveOrderByID(ctx, orderID)
}

// SaveOrder validates the input, checks the referenced cart exists and
// persists a fresh order. Caller supplied id and status are discarded:
// the store assigns the id and every order starts at CREATED.
func (s *orderService) SaveOrder(ctx context.Context, in OrderInput) (entities.Order, error) {
	if in.CartID == 0 {
		return entities.Order{}, entities.ErrCartRequired
	}
	if in.OrderDesc == "" {
		return entities.Order{}, entities.ErrDescRequired
	}
	if in.OrderFee == nil || *in.OrderFee < 0 {
		return entities.Order{}, entities.ErrFeeInvalid
	}

	var saved entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.carts.CartByID(ctx, in.CartID); err != nil {
			return err
		}

		order := entities.Order{
			CartID:    in.CartID,
			OrderDate: time.Now(),
			OrderDesc: in.OrderDesc,
			OrderFee:  *in.OrderFee,
			Status:    entities.StatusCreated,
			Active:    true,
		}

		var err error
		saved, err = s.orders.SaveOrder(ctx, order)
		return err
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.InfoContext(ctx, "order saved",
		slog.Int("order_id", saved.OrderID), slog.Int("cart_id", saved.CartID))
	return saved, nil
}

// AdvanceOrder moves an order exactly one step along the status sequence.
// There is no target status argument on purpose: callers cannot skip
// states or move backwards.
func (s *orderService) AdvanceOrder(ctx context.Context, orderID int) (entities.Order, error) {
	var updated entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orders.ActiveOrderByID(ctx, orderID)
		if err != nil {
			return err
		}

		next, err := order.Status.Next()
		if err != nil {
			return err
		}

		s.logger.InfoContext(ctx, "advancing order status",
			slog.Int("order_id", orderID),
			slog.String("from", string(order.Status)),
			slog.String("to", string(next)))

		order.Status = next
		updated, err = s.orders.UpdateOrder(ctx, order)
		return err
	})
	if err != nil {
		return entities.Order{}, err
	}
	return updated, nil
}

// UpdateOrder applies the input's mutable fields to an existing order.
// Cart, creation date and status always come from the stored record: an
// update cannot relocate an order, backdate it or change its status.
// A nil fee leaves the stored fee unchanged.
func (s *orderService) UpdateOrder(ctx context.Context, orderID int, in OrderInput) (entities.Order, error) {
	var updated entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := s.orders.ActiveOrderByID(ctx, orderID)
		if err != nil {
			return err
		}

		order := existing
		order.OrderDesc = in.OrderDesc
		if in.OrderFee != nil {
			order.OrderFee = *in.OrderFee
		}

		updated, err = s.orders.UpdateOrder(ctx, order)
		return err
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.InfoContext(ctx, "order updated", slog.Int("order_id", orderID))
	return updated, nil
}

// DeleteOrder soft deletes an order unless it already reached payment.
func (s *orderService) DeleteOrder(ctx context.Context, orderID int) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orders.ActiveOrderByID(ctx, orderID)
		if err != nil {
			return err
		}

		if order.Status == entities.StatusInPayment {
			return fmt.Errorf("%w: order %d", entities.ErrOrderPaid, orderID)
		}

		return s.orders.DeactivateOrder(ctx, orderID)
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "order deactivated", slog.Int("order_id", orderID))
	return nil
}
