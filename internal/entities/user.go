package entities

import "errors"

// User is the record owned by the remote user service. It is never
// persisted here, only attached to carts on enrichment.
type User struct {
	UserID    int
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserUnreachable = errors.New("user service unreachable")
)
