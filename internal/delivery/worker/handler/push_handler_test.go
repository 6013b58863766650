package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"forthecos/internal/domain/entity"
	"forthecos/internal/domain/payment"
	"forthecos/internal/domain/service"
	mocks "forthecos/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, settings *mocks.MockSettingsUsecase) *PushHandler {
	t.Helper()

	return NewPushHandler(PushHandlerParams{
		Config:   newTestConfig("shh"),
		Settings: settings,
		Logger:   newDiscardLogger(),
	})
}

func TestPushHandler_ForwardsSignedEvent(t *testing.T) {
	var (
		gotBody      []byte
		gotSignature string
		gotEventType string
	)
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotSignature = r.Header.Get(payment.SignatureHeader)
		gotEventType = r.Header.Get(eventTypeHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer webhook.Close()

	settings := mocks.NewMockSettingsUsecase(t)
	settings.EXPECT().Reload(mock.Anything).Return(entity.AdminSettings{AutomationWebhookURL: webhook.URL}, nil)

	h := newTestPushHandler(t, settings)
	event := &service.OrderPaidEvent{OrderID: "order-1", PaymentOrderID: "pay-9", ItemType: "comic"}
	c, rec := newPostContext("/push", newPushBody(t, event), nil)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var forwarded service.OrderPaidEvent
	require.NoError(t, json.Unmarshal(gotBody, &forwarded))
	assert.Equal(t, "order-1", forwarded.OrderID)
	assert.Equal(t, "pay-9", forwarded.PaymentOrderID)
	assert.Equal(t, orderPaidEventID, gotEventType)
	assert.NoError(t, payment.Verify("shh", gotBody, gotSignature))
}

func TestPushHandler_WebhookFailures(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantStatus int
	}{
		{name: "server error is retried", status: http.StatusBadGateway, wantStatus: http.StatusServiceUnavailable},
		{name: "rate limit is retried", status: http.StatusTooManyRequests, wantStatus: http.StatusServiceUnavailable},
		{name: "client error is dropped", status: http.StatusBadRequest, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer webhook.Close()

			settings := mocks.NewMockSettingsUsecase(t)
			settings.EXPECT().Reload(mock.Anything).Return(entity.AdminSettings{AutomationWebhookURL: webhook.URL}, nil)

			h := newTestPushHandler(t, settings)
			c, rec := newPostContext("/push", newPushBody(t, &service.OrderPaidEvent{OrderID: "order-1"}), nil)

			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_UnreachableWebhookIsRetried(t *testing.T) {
	webhook := httptest.NewServer(http.NotFoundHandler())
	url := webhook.URL
	webhook.Close()

	settings := mocks.NewMockSettingsUsecase(t)
	settings.EXPECT().Reload(mock.Anything).Return(entity.AdminSettings{AutomationWebhookURL: url}, nil)

	h := newTestPushHandler(t, settings)
	c, rec := newPostContext("/push", newPushBody(t, &service.OrderPaidEvent{OrderID: "order-1"}), nil)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_NoWebhookConfigured(t *testing.T) {
	settings := mocks.NewMockSettingsUsecase(t)
	settings.EXPECT().Reload(mock.Anything).Return(entity.AdminSettings{}, errors.New("db down"))
	settings.EXPECT().Get().Return(entity.AdminSettings{})

	h := newTestPushHandler(t, settings)
	c, rec := newPostContext("/push", newPushBody(t, &service.OrderPaidEvent{OrderID: "order-1"}), nil)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedMessage(t *testing.T) {
	h := newTestPushHandler(t, mocks.NewMockSettingsUsecase(t))
	c, rec := newPostContext("/push", []byte(`{"message":{"data":"%%%"}}`), nil)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRetryableError(t *testing.T) {
	base := errors.New("boom")
	err := newRetryableError(base)

	assert.True(t, isRetryableError(err))
	assert.True(t, isRetryableError(errors.Wrap(err, "forward")))
	assert.False(t, isRetryableError(base))
	assert.ErrorIs(t, err, base)
}
