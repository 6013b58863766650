package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"forthecos/config"
	deliverycontext "forthecos/internal/delivery/context"
	"forthecos/internal/domain/constants"
	"forthecos/internal/domain/payment"
	"forthecos/internal/domain/service"
	"forthecos/internal/infra/pubsub"
	"forthecos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const (
	webhookTimeout   = 10 * time.Second
	maxWebhookReply  = 4 << 10
	eventTypeHeader  = "X-Event-Type"
	orderPaidEventID = "order.paid"
)

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler forwards order-paid events pushed by Pub/Sub to the
// fulfilment automation webhook.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	serviceAccount string
	webhookSecret  string
	settings       usecase.SettingsUsecase
	client         *http.Client
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Settings usecase.SettingsUsecase
	Logger   *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google pushes carry an OIDC token; local development posts directly.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	h := &PushHandler{
		verifyPushAuth: verifyPushAuth,
		settings:       params.Settings,
		client:         &http.Client{Timeout: webhookTimeout},
		logger:         params.Logger,
	}
	if params.Config.Worker != nil {
		h.audience = params.Config.Worker.PushAudience
		h.serviceAccount = params.Config.Worker.PushServiceAccount
	}
	if params.Config.Payment != nil {
		h.webhookSecret = params.Config.Payment.WebhookSecret
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages. Non-2xx replies make
// Pub/Sub redeliver, so only transient failures answer 503.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.DecodeOrderPaid()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode order event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing order paid event",
		slog.String("order_id", event.OrderID),
		slog.String("payment_order_id", event.PaymentOrderID),
		slog.String("item_type", event.ItemType),
	)

	if err := h.forward(ctx, event); err != nil {
		reqLogger.Error("[Worker] Failed to forward order event",
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Order event forwarded", slog.String("order_id", event.OrderID))

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the request context.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.OrderPaidEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// forward posts the event to the automation webhook, signed with the shared
// secret. A missing webhook is not an error: there is nothing to notify.
func (h *PushHandler) forward(ctx context.Context, event *service.OrderPaidEvent) error {
	webhookURL := h.webhookURL(ctx)
	if webhookURL == "" {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] No automation webhook configured, dropping event",
			slog.String("order_id", event.OrderID),
		)

		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "invalid automation webhook url")
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(eventTypeHeader, orderPaidEventID)
	req.Header.Set(deliverycontext.HeaderXRequestID, deliverycontext.GetRequestIDFromContext(ctx))
	if h.webhookSecret != "" {
		req.Header.Set(payment.SignatureHeader, payment.Sign(h.webhookSecret, body))
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return newRetryableError(errors.Wrap(err, "automation webhook unreachable"))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		reply, _ := io.ReadAll(io.LimitReader(resp.Body, maxWebhookReply))
		err := errors.Errorf("automation webhook returned %d: %s", resp.StatusCode, strings.TrimSpace(string(reply)))
		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
			return newRetryableError(err)
		}

		return err
	}

	return nil
}

// webhookURL reads the admin-configured URL. Settings are edited in the API
// process, so the stored row is re-read before falling back to the cached copy.
func (h *PushHandler) webhookURL(ctx context.Context) string {
	settings, err := h.settings.Reload(ctx)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Worker] Failed to reload settings, using cached copy", slog.Any("error", err))
		settings = h.settings.Get()
	}

	return strings.TrimSpace(settings.AutomationWebhookURL)
}

// verifyPubSubToken verifies the OIDC token Google attaches to push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Without a configured audience the push endpoint URL is expected.
	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	if h.serviceAccount != "" {
		if email, _ := payload.Claims["email"].(string); email != h.serviceAccount {
			return errors.Errorf("unexpected push service account: %s", email)
		}
	}

	return nil
}
