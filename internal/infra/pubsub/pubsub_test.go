package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"forthecos/config"
	"forthecos/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishOrderPaid(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := &service.OrderPaidEvent{
		RequestID:      "req-1",
		OrderID:        "order-1",
		UserID:         "user-1",
		PaymentOrderID: "PAY-1",
		ItemType:       "comic",
		ItemName:       "Comic Print",
		Amount:         25,
		PaidAt:         time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishOrderPaid(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "order-1", received.Message.MessageID)
	assert.Equal(t, "comic", received.Message.Attributes["item_type"])

	decoded, err := received.DecodeOrderPaid()
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishOrderPaid(context.Background(), &service.OrderPaidEvent{OrderID: "order-1"})
	assert.Error(t, err)
}

func TestPushMessage_DecodeOrderPaidRejectsGarbage(t *testing.T) {
	msg := PushMessage{}
	msg.Message.Data = "%%%"

	_, err := msg.DecodeOrderPaid()
	assert.Error(t, err)
}

func TestNewEventPublisher(t *testing.T) {
	newParams := func(cfg *config.PubSubConfig) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: cfg},
			Logger: newDiscardLogger(),
		}
	}

	publisher, err := NewEventPublisher(newParams(nil))
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishOrderPaid(context.Background(), &service.OrderPaidEvent{OrderID: "o"}))

	publisher, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}))
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "local"}))
	assert.Error(t, err)

	workerParams := newParams(&config.PubSubConfig{Provider: "local"})
	workerParams.Config.Worker = &config.WorkerConfig{Port: 9090}
	publisher, err = NewEventPublisher(workerParams)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9090/push", publisher.(*localHTTPPublisher).endpoint)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "google", ProjectID: "p"}))
	assert.Error(t, err)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "kafka"}))
	assert.Error(t, err)
}
