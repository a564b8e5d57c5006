package handler

import (
	"errors"
	"net/http"

	"github.com/shophub/order-placement-service/internal/entities"
)

// translateError maps domain failures to response codes: not-found
// sentinels to 404, validation and illegal transitions to 400, the paid
// delete guard to 409 and an unreachable user service to 502. Everything
// unrecognized (including an unknown persisted status) stays a 500.
func translateError(err error) (int, string) {
	switch {
	case errors.Is(err, entities.ErrCartNotFound):
		return http.StatusNotFound, "cart not found"
	case errors.Is(err, entities.ErrOrderNotFound):
		return http.StatusNotFound, "order not found"
	case errors.Is(err, entities.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, entities.ErrUserRequired),
		errors.Is(err, entities.ErrCartRequired),
		errors.Is(err, entities.ErrDescRequired),
		errors.Is(err, entities.ErrFeeInvalid),
		errors.Is(err, entities.ErrOrderFinalized):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, entities.ErrOrderPaid):
		return http.StatusConflict, err.Error()
	case errors.Is(err, entities.ErrUserUnreachable):
		return http.StatusBadGateway, "user service unreachable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
