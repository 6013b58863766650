package handler

import (
	"log/slog"
	"net/http"

	"forthecos/internal/delivery/api/middleware"
	"forthecos/internal/delivery/api/response"
	"forthecos/internal/domain/entity"
	"forthecos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves print orders and their payment tracking.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderStatusResponse is an order and whether it is being polled.
type OrderStatusResponse struct {
	Order    *entity.PhysicalOrder `json:"order"`
	Watching bool                  `json:"watching"`
}

// ListMine returns the caller's orders.
func (h *OrderHandler) ListMine(c echo.Context) error {
	viewer := middleware.GetPrincipal(c)
	if viewer == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.orderUC.ListMine(c.Request().Context(), *viewer)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// Status returns an order and its watch state.
func (h *OrderHandler) Status(c echo.Context) error {
	viewer := middleware.GetPrincipal(c)
	if viewer == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	out, err := h.orderUC.Status(c.Request().Context(), *viewer, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, OrderStatusResponse{Order: out.Order, Watching: out.Watching})
}

// Watch starts polling the order until it is paid.
func (h *OrderHandler) Watch(c echo.Context) error {
	viewer := middleware.GetPrincipal(c)
	if viewer == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	out, err := h.orderUC.Watch(c.Request().Context(), *viewer, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, OrderStatusResponse{Order: out.Order, Watching: out.Watching})
}

// CancelWatch stops polling the order.
func (h *OrderHandler) CancelWatch(c echo.Context) error {
	viewer := middleware.GetPrincipal(c)
	if viewer == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	if err := h.orderUC.CancelWatch(c.Request().Context(), *viewer, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// PaymentQR returns the payment redirect as a PNG QR code.
func (h *OrderHandler) PaymentQR(c echo.Context) error {
	viewer := middleware.GetPrincipal(c)
	if viewer == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	png, err := h.orderUC.PaymentQR(c.Request().Context(), *viewer, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
