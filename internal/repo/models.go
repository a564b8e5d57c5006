package repo

import (
	"time"

	"github.com/shophub/order-placement-service/internal/entities"
)

type Cart struct {
	CartID   int  `db:"cart_id"`
	UserID   int  `db:"user_id"`
	IsActive bool `db:"is_active"`
}

type Order struct {
	OrderID   int       `db:"order_id"`
	CartID    int       `db:"cart_id"`
	OrderDate time.Time `db:"order_date"`
	OrderDesc string    `db:"order_desc"`
	OrderFee  float64   `db:"order_fee"`
	Status    string    `db:"status"`
	IsActive  bool      `db:"is_active"`
}

// orderRef is the projection used to assemble the cart -> order ids
// back reference.
type orderRef struct {
	OrderID int `db:"order_id"`
	CartID  int `db:"cart_id"`
}

func CartToEntity(c Cart, orderIDs []int) entities.Cart {
	return entities.Cart{
		CartID:   c.CartID,
		UserID:   c.UserID,
		Active:   c.IsActive,
		OrderIDs: orderIDs,
	}
}

func OrderToEntity(o Order) entities.Order {
	return entities.Order{
		OrderID:   o.OrderID,
		CartID:    o.CartID,
		OrderDate: o.OrderDate,
		OrderDesc: o.OrderDesc,
		OrderFee:  o.OrderFee,
		Status:    entities.OrderStatus(o.Status),
		Active:    o.IsActive,
	}
}
