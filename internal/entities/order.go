package entities

import (
	"errors"
	"fmt"
	"time"
)

type OrderStatus string

const (
	StatusCreated   OrderStatus = "CREATED"
	StatusOrdered   OrderStatus = "ORDERED"
	StatusInPayment OrderStatus = "IN_PAYMENT"
)

// Next returns the status that follows s in the fixed lifecycle
// CREATED -> ORDERED -> IN_PAYMENT. IN_PAYMENT is terminal. The sequence
// is deliberately not a transition table: a status always advances exactly
// one step and callers cannot pick a target.
func (s OrderStatus) Next() (OrderStatus, error) {
	switch s {
	case StatusCreated:
		return StatusOrdered, nil
	case StatusOrdered:
		return StatusInPayment, nil
	case StatusInPayment:
		return "", ErrOrderFinalized
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, string(s))
	}
}

type Order struct {
	OrderID   int
	CartID    int
	OrderDate time.Time
	OrderDesc string
	OrderFee  float64
	Status    OrderStatus
	Active    bool
}

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrOrderFinalized = errors.New("order is already in payment and cannot advance further")
	ErrUnknownStatus  = errors.New("unknown order status")
	ErrOrderPaid      = errors.New("cannot delete an order that is in payment")

	ErrCartRequired = errors.New("order must be associated with a cart")
	ErrDescRequired = errors.New("order description must not be empty")
	ErrFeeInvalid   = errors.New("order fee must be provided and non-negative")
)
