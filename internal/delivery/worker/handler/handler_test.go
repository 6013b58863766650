package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"forthecos/config"
	"forthecos/internal/domain/constants"
	"forthecos/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{
		PubSub:  &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
		Payment: &config.PaymentConfig{WebhookSecret: secret},
	}
	cfg.Env.Env = constants.EnvDevelop

	return cfg
}

func newPostContext(target string, body []byte, headers map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func newPushBody(t *testing.T, event *service.OrderPaidEvent) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	msg := map[string]any{
		"message": map[string]any{
			"data":       base64.StdEncoding.EncodeToString(data),
			"attributes": map[string]string{"request_id": "req-123"},
			"messageId":  "msg-1",
		},
		"subscription": "projects/test/subscriptions/orders",
	}
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}
