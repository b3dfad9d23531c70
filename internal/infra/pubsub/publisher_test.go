package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.OrderCreatedEvent {
	return &service.OrderCreatedEvent{
		RequestID:     "req-1",
		OrderID:       "9d5b0b8e-8a53-4a38-8d1e-6a4e5f3c2b10",
		UserID:        "2f1a7c44-0d3e-4b8c-9a55-1c2d3e4f5a6b",
		ItemCount:     2,
		Total:         "115.48",
		PaymentMethod: "cod",
		CreatedAt:     time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishOrderCreated(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishOrderCreated(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, sampleEvent().OrderID, received.Message.MessageID)
	assert.Equal(t, "order.created", received.Message.Attributes["event_type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.OrderCreatedEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "115.48", event.Total)
	assert.Equal(t, 2, event.ItemCount)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishOrderCreated(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewEventPublisher_SelectsProvider(t *testing.T) {
	newParams := func(cfg *config.PubSubConfig) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: cfg},
			Logger: discardLogger(),
		}
	}

	publisher, err := NewEventPublisher(newParams(nil))
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishOrderCreated(context.Background(), sampleEvent()))

	publisher, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:9999/push"}))
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "local"}))
	assert.Error(t, err)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "google", ProjectID: "p"}))
	assert.Error(t, err)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "kafka"}))
	assert.Error(t, err)
}

func TestNewOrderCreatedMessage(t *testing.T) {
	event := sampleEvent()
	event.RequestID = ""

	msg, err := newOrderCreatedMessage(event)
	require.NoError(t, err)

	assert.Equal(t, event.OrderID, msg.id)
	assert.Equal(t, map[string]string{
		"event_type": "order.created",
		"order_id":   event.OrderID,
		"user_id":    event.UserID,
	}, msg.attributes)
	assert.JSONEq(t, `{
		"order_id": "9d5b0b8e-8a53-4a38-8d1e-6a4e5f3c2b10",
		"user_id": "2f1a7c44-0d3e-4b8c-9a55-1c2d3e4f5a6b",
		"item_count": 2,
		"total": "115.48",
		"payment_method": "cod",
		"created_at": "2025-03-01T12:00:00Z"
	}`, string(msg.data))
}
