package entities

import "errors"

type Cart struct {
	CartID int
	UserID int
	Active bool

	// OrderIDs is the back reference to orders placed against this cart.
	// The cart never owns the orders, only their ids are carried.
	OrderIDs []int

	// User is attached by enrichment, nil when the lookup did not succeed.
	User *User
}

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrUserRequired = errors.New("user id must be provided when saving a cart")
)
