package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"forthecos/config"
	"forthecos/internal/delivery/api/response"
	deliverycontext "forthecos/internal/delivery/context"
	"forthecos/internal/domain/payment"
	"forthecos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const maxHookBodySize = 64 << 10

const paymentStatusPaid = "paid"

// PaymentHookRequest is the callback body sent by the payment automation.
// Custom carries the tracking token embedded in the redirect URL.
type PaymentHookRequest struct {
	Custom         string `json:"custom"`
	PaymentOrderID string `json:"payment_order_id"`
	Status         string `json:"status"`
}

// PaymentHookResponse reports the order state after the callback.
type PaymentHookResponse struct {
	OrderID string `json:"order_id,omitempty"`
	Status  string `json:"status"`
}

// PaymentHookHandler confirms payments reported by the automation.
type PaymentHookHandler struct {
	secret  string
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// PaymentHookHandlerParams holds dependencies for the PaymentHookHandler
type PaymentHookHandlerParams struct {
	fx.In

	Config  *config.Config
	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// NewPaymentHookHandler creates a new payment callback handler
func NewPaymentHookHandler(params PaymentHookHandlerParams) *PaymentHookHandler {
	h := &PaymentHookHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
	if params.Config.Payment != nil {
		h.secret = params.Config.Payment.WebhookSecret
	}

	return h
}

// HandlePayment verifies the callback signature over the raw body before decoding it.
func (h *PaymentHookHandler) HandlePayment(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxHookBodySize+1))
	if err != nil {
		return response.BadRequest(c, "INVALID_BODY", "Failed to read request body")
	}
	if len(body) > maxHookBodySize {
		return response.Error(c, http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE", "Callback body is too large", nil)
	}

	if err := payment.Verify(h.secret, body, c.Request().Header.Get(payment.SignatureHeader)); err != nil {
		logger.Warn("[Worker] Rejected payment callback", slog.Any("error", err))

		return response.HandleAppError(c, err)
	}

	var req PaymentHookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid callback body")
	}

	if !strings.EqualFold(strings.TrimSpace(req.Status), paymentStatusPaid) {
		logger.Info("[Worker] Ignoring payment callback", slog.String("status", req.Status))

		return response.Success(c, http.StatusOK, PaymentHookResponse{Status: "ignored"})
	}

	order, err := h.orderUC.ConfirmPayment(ctx, usecase.ConfirmPaymentInput{
		Tracking:       req.Custom,
		PaymentOrderID: req.PaymentOrderID,
	})
	if err != nil {
		logger.Error("[Worker] Failed to confirm payment",
			slog.String("payment_order_id", req.PaymentOrderID),
			slog.Any("error", err),
		)

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PaymentHookResponse{
		OrderID: order.ID.String(),
		Status:  string(order.Status),
	})
}
