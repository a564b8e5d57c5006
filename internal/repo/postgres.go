package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shophub/order-placement-service/internal/entities"
	"github.com/shophub/order-placement-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// activeOnly is the soft-delete visibility predicate. Every query that
// must see only live records appends it; nothing outside this package
// filters on the active flag.
var activeOnly = sq.Eq{"is_active": true}

func (r *postgresRepo) ActiveCarts(ctx context.Context) ([]entities.Cart, error) {
	query, args := r.qb.Select("cart_id", "user_id", "is_active").
		From("carts").
		Where(activeOnly).
		OrderBy("cart_id").
		MustSql()

	var carts []Cart
	if err := r.selectContext(ctx, &carts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select carts: %w", err)
	}

	if len(carts) == 0 {
		return []entities.Cart{}, nil
	}

	ids := make([]int, len(carts))
	for i, cart := range carts {
		ids[i] = cart.CartID
	}

	refs, err := r.activeOrderRefs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Cart, 0, len(carts))
	for _, cart := range carts {
		result = append(result, CartToEntity(cart, refs[cart.CartID]))
	}
	return result, nil
}

func (r *postgresRepo) ActiveCartByID(ctx context.Context, cartID int) (entities.Cart, error) {
	query, args := r.qb.Select("cart_id", "user_id", "is_active").
		From("carts").
		Where(sq.Eq{"cart_id": cartID}).
		Where(activeOnly).
		MustSql()

	var cart Cart
	err := r.getContext(ctx, &cart, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Cart{}, entities.ErrCartNotFound
	}
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}

	refs, err := r.activeOrderRefs(ctx, []int{cartID})
	if err != nil {
		return entities.Cart{}, err
	}
	return CartToEntity(cart, refs[cartID]), nil
}

// CartByID looks a cart up regardless of the active flag. Cart deletion
// and the order -> cart existence check go through here.
func (r *postgresRepo) CartByID(ctx context.Context, cartID int) (entities.Cart, error) {
	query, args := r.qb.Select("cart_id", "user_id", "is_active").
		From("carts").
		Where(sq.Eq{"cart_id": cartID}).
		MustSql()

	var cart Cart
	err := r.getContext(ctx, &cart, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Cart{}, entities.ErrCartNotFound
	}
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}
	return CartToEntity(cart, nil), nil
}

func (r *postgresRepo) SaveCart(ctx context.Context, c entities.Cart) (entities.Cart, error) {
	query, args := r.qb.Insert("carts").
		Columns("user_id", "is_active").
		Values(c.UserID, c.Active).
		Suffix("RETURNING cart_id").
		MustSql()

	var cartID int
	if err := r.getContext(ctx, &cartID, query, args...); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to save cart: %w", err)
	}

	c.CartID = cartID
	return c, nil
}

func (r *postgresRepo) DeactivateCart(ctx context.Context, cartID int) error {
	query, args := r.qb.Update("carts").
		Set("is_active", false).
		Where(sq.Eq{"cart_id": cartID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to deactivate cart: %w", err)
	}
	return nil
}

func (r *postgresRepo) ActiveOrders(ctx context.Context) ([]entities.Order, error) {
	query, args := r.qb.Select(
		"order_id", "cart_id", "order_date", "order_desc",
		"order_fee", "status", "is_active").
		From("orders").
		Where(activeOnly).
		OrderBy("order_id").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order))
	}
	return result, nil
}

func (r *postgresRepo) ActiveOrderByID(ctx context.Context, orderID int) (entities.Order, error) {
	query, args := r.qb.Select(
		"order_id", "cart_id", "order_date", "order_desc",
		"order_fee", "status", "is_active").
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		Where(activeOnly).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return OrderToEntity(order), nil
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns("cart_id", "order_date", "order_desc", "order_fee", "status", "is_active").
		Values(o.CartID, o.OrderDate, o.OrderDesc, o.OrderFee, string(o.Status), o.Active).
		Suffix("RETURNING order_id").
		MustSql()

	var orderID int
	if err := r.getContext(ctx, &orderID, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to save order: %w", err)
	}

	o.OrderID = orderID
	return o, nil
}

// UpdateOrder writes the mutable order columns. cart_id and order_date are
// deliberately not part of the statement.
func (r *postgresRepo) UpdateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args := r.qb.Update("orders").
		Set("order_desc", o.OrderDesc).
		Set("order_fee", o.OrderFee).
		Set("status", string(o.Status)).
		Where(sq.Eq{"order_id": o.OrderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order: %w", err)
	}
	return o, nil
}

func (r *postgresRepo) DeactivateOrder(ctx context.Context, orderID int) error {
	query, args := r.qb.Update("orders").
		Set("is_active", false).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to deactivate order: %w", err)
	}
	return nil
}

// activeOrderRefs collects the ids of active orders grouped by cart.
func (r *postgresRepo) activeOrderRefs(ctx context.Context, cartIDs []int) (map[int][]int, error) {
	query, args := r.qb.Select("order_id", "cart_id").
		From("orders").
		Where(sq.Eq{"cart_id": cartIDs}).
		Where(activeOnly).
		OrderBy("order_id").
		MustSql()

	var refs []orderRef
	if err := r.selectContext(ctx, &refs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order refs: %w", err)
	}

	refMap := make(map[int][]int, len(cartIDs))
	for _, ref := range refs {
		refMap[ref.CartID] = append(refMap[ref.CartID], ref.OrderID)
	}
	return refMap, nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
