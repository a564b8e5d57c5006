package handler

import (
	"time"

	"github.com/shophub/order-placement-service/internal/entities"
	"github.com/shophub/order-placement-service/internal/service"
)

// Collection is the envelope every list endpoint wraps its results in.
type Collection[T any] struct {
	Collection []T `json:"collection"`
}

// Cart is the cart transfer shape. User is present only when enrichment
// succeeded.
type Cart struct {
	CartID int        `json:"cartId"`
	UserID int        `json:"userId"`
	User   *User      `json:"user,omitempty"`
	Orders []OrderRef `json:"orders"`
}

// User mirrors the record owned by the user service.
type User struct {
	UserID    int    `json:"userId"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// OrderRef is an order back reference carried by a cart.
type OrderRef struct {
	OrderID int `json:"orderId"`
}

// CartRef is the cart reference carried by an order. Only the id is ever
// serialized, the full cart graph is never nested inside an order.
type CartRef struct {
	CartID int `json:"cartId"`
}

// Order is the order transfer shape.
type Order struct {
	OrderID     int       `json:"orderId"`
	OrderDate   time.Time `json:"orderDate"`
	OrderDesc   string    `json:"orderDesc"`
	OrderFee    float64   `json:"orderFee"`
	OrderStatus string    `json:"orderStatus"`
	Cart        CartRef   `json:"cart"`
}

// CartRequest is the create-cart body. Any supplied id or order
// associations are ignored by the orchestrator.
type CartRequest struct {
	UserID int `json:"userId"`
}

// OrderRequest is the create/update order body. Fee is a pointer so the
// lifecycle manager can tell a missing fee from a zero one.
type OrderRequest struct {
	OrderDesc string   `json:"orderDesc"`
	OrderFee  *float64 `json:"orderFee"`
	Cart      *CartRef `json:"cart"`
}

func CartEntityToJSON(c entities.Cart) Cart {
	orders := make([]OrderRef, 0, len(c.OrderIDs))
	for _, id := range c.OrderIDs {
		orders = append(orders, OrderRef{OrderID: id})
	}

	cart := Cart{
		CartID: c.CartID,
		UserID: c.UserID,
		Orders: orders,
	}
	if c.User != nil {
		cart.User = &User{
			UserID:    c.User.UserID,
			FirstName: c.User.FirstName,
			LastName:  c.User.LastName,
			Email:     c.User.Email,
			Phone:     c.User.Phone,
		}
	}
	return cart
}

func OrderEntityToJSON(o entities.Order) Order {
	return Order{
		OrderID:     o.OrderID,
		OrderDate:   o.OrderDate,
		OrderDesc:   o.OrderDesc,
		OrderFee:    o.OrderFee,
		OrderStatus: string(o.Status),
		Cart:        CartRef{CartID: o.CartID},
	}
}

func OrderRequestToInput(r OrderRequest) service.OrderInput {
	in := service.OrderInput{
		OrderDesc: r.OrderDesc,
		OrderFee:  r.OrderFee,
	}
	if r.Cart != nil {
		in.CartID = r.Cart.CartID
	}
	return in
}
