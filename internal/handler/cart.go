package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shophub/order-placement-service/internal/entities"
	"github.com/shophub/order-placement-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CartService interface {
	Carts(ctx context.Context) ([]entities.Cart, error)
	CartByID(ctx context.Context, cartID int) (entities.Cart, error)
	SaveCart(ctx context.Context, cart entities.Cart) (entities.Cart, error)
	DeleteCart(ctx context.Context, cartID int) error
}

type CartHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CartService
}

func NewCartHandler(logger *slog.Logger, svc CartService) *CartHandler {
	return &CartHandler{
		logger:   logger.With(slog.String("handler", "cart")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *CartHandler) Init(r chi.Router) {
	r.Route("/api/carts", func(r chi.Router) {
		r.Get("/", h.Carts)
		r.Post("/", h.SaveCart)
		r.Get("/{cartId}", h.CartByID)
		r.Delete("/{cartId}", h.DeleteCart)
	})
}

// Carts lists all active carts.
// @Summary      List carts
// @Description  Returns every active cart enriched with its owning user; carts whose user lookup fails are omitted
// @Tags         carts
// @Produce      json
// @Success      200  {object}  Collection[Cart]
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/carts [get]
func (h *CartHandler) Carts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	carts, err := h.svc.Carts(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list carts", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	body := Collection[Cart]{Collection: make([]Cart, 0, len(carts))}
	for _, cart := range carts {
		body.Collection = append(body.Collection, CartEntityToJSON(cart))
	}
	utils.WriteJSON(w, body, http.StatusOK)
}

// CartByID returns one active cart.
// @Summary      Get cart by id
// @Tags         carts
// @Produce      json
// @Param        cartId  path      int  true  "Cart id"
// @Success      200  {object}  Cart
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      502  {object}  utils.ErrorResponse
// @Router       /api/carts/{cartId} [get]
func (h *CartHandler) CartByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cartID, ok := h.pathID(w, r, "cartId")
	if !ok {
		return
	}

	cart, err := h.svc.CartByID(ctx, cartID)
	if err != nil {
		h.writeError(ctx, w, err, "failed to get cart")
		return
	}

	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// SaveCart creates a cart for an existing user.
// @Summary      Create cart
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        cart  body      CartRequest  true  "Cart to create"
// @Success      201  {object}  Cart
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      502  {object}  utils.ErrorResponse
// @Router       /api/carts [post]
func (h *CartHandler) SaveCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body CartRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	cart, err := h.svc.SaveCart(ctx, entities.Cart{UserID: body.UserID})
	if err != nil {
		h.writeError(ctx, w, err, "failed to save cart")
		return
	}

	cartsCreated.Inc()
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusCreated)
}

// DeleteCart soft deletes a cart.
// @Summary      Delete cart
// @Description  Flips the cart's active flag; the record is retained
// @Tags         carts
// @Produce      json
// @Param        cartId  path      int  true  "Cart id"
// @Success      200  {boolean}  boolean
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /api/carts/{cartId} [delete]
func (h *CartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cartID, ok := h.pathID(w, r, "cartId")
	if !ok {
		return
	}

	if err := h.svc.DeleteCart(ctx, cartID); err != nil {
		h.writeError(ctx, w, err, "failed to delete cart")
		return
	}

	softDeletes.WithLabelValues("cart").Inc()
	utils.WriteJSON(w, true, http.StatusOK)
}

func (h *CartHandler) pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := chi.URLParam(r, name)
	if err := h.validate.Var(raw, "required,number"); err != nil {
		utils.WriteValidationError(w, err)
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		utils.WriteError(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *CartHandler) writeError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	code, body := translateError(err)
	if code >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, slog.Any("error", err))
	}
	utils.WriteError(w, body, code)
}
