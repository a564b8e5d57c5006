package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shophub/order-placement-service/internal/entities"
	"github.com/shophub/order-placement-service/internal/service"
	"github.com/shophub/order-placement-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	Orders(ctx context.Context) ([]entities.Order, error)
	OrderByID(ctx context.Context, orderID int) (entities.Order, error)
	SaveOrder(ctx context.Context, in service.OrderInput) (entities.Order, error)
	UpdateOrder(ctx context.Context, orderID int, in service.OrderInput) (entities.Order, error)
	AdvanceOrder(ctx context.Context, orderID int) (entities.Order, error)
	DeleteOrder(ctx context.Context, orderID int) error
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewOrderHandler(logger *slog.Logger, svc OrderService) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "order")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", h.Orders)
		r.Post("/", h.SaveOrder)
		r.Get("/{orderId}", h.OrderByID)
		r.Put("/{orderId}", h.UpdateOrder)
		r.Post("/{orderId}/status", h.AdvanceOrder)
		r.Delete("/{orderId}", h.DeleteOrder)
	})
}

// Orders lists all active orders.
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Success      200  {object}  Collection[Order]
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) Orders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.svc.Orders(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	body := Collection[Order]{Collection: make([]Order, 0, len(orders))}
	for _, order := range orders {
		body.Collection = append(body.Collection, OrderEntityToJSON(order))
	}
	utils.WriteJSON(w, body, http.StatusOK)
}

// OrderByID returns one active order.
// @Summary      Get order by id
// @Tags         orders
// @Produce      json
// @Param        orderId  path      int  true  "Order id"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /api/orders/{orderId} [get]
func (h *OrderHandler) OrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, ok := h.pathID(w, r)
	if !ok {
		return
	}

	order, err := h.svc.OrderByID(ctx, orderID)
	if err != nil {
		h.writeError(ctx, w, err, "failed to get order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// SaveOrder creates an order against an existing cart.
// @Summary      Create order
// @Description  The order starts at CREATED with the creation date stamped server side
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      OrderRequest  true  "Order to create"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) SaveOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body OrderRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.svc.SaveOrder(ctx, OrderRequestToInput(body))
	if err != nil {
		h.writeError(ctx, w, err, "failed to save order")
		return
	}

	ordersCreated.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// UpdateOrder updates an order's description and fee.
// @Summary      Update order
// @Description  Cart, creation date and status are preserved from the stored order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        orderId  path      int           true  "Order id"
// @Param        order    body      OrderRequest  true  "Fields to update"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /api/orders/{orderId} [put]
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var body OrderRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.svc.UpdateOrder(ctx, orderID, OrderRequestToInput(body))
	if err != nil {
		h.writeError(ctx, w, err, "failed to update order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// AdvanceOrder advances an order one step along the status sequence.
// @Summary      Advance order status
// @Description  Moves the order exactly one step: CREATED -> ORDERED -> IN_PAYMENT
// @Tags         orders
// @Produce      json
// @Param        orderId  path      int  true  "Order id"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /api/orders/{orderId}/status [post]
func (h *OrderHandler) AdvanceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, ok := h.pathID(w, r)
	if !ok {
		return
	}

	order, err := h.svc.AdvanceOrder(ctx, orderID)
	if err != nil {
		h.writeError(ctx, w, err, "failed to advance order")
		return
	}

	statusAdvanced.WithLabelValues(string(order.Status)).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// DeleteOrder soft deletes an order unless it is in payment.
// @Summary      Delete order
// @Tags         orders
// @Produce      json
// @Param        orderId  path      int  true  "Order id"
// @Success      200  {boolean}  boolean
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /api/orders/{orderId} [delete]
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteOrder(ctx, orderID); err != nil {
		h.writeError(ctx, w, err, "failed to delete order")
		return
	}

	softDeletes.WithLabelValues("order").Inc()
	utils.WriteJSON(w, true, http.StatusOK)
}

func (h *OrderHandler) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "orderId")
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

func (h *OrderHandler) writeError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	code, body := translateError(err)
	if code >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, slog.Any("error", err))
	}
	utils.WriteError(w, body, code)
}
