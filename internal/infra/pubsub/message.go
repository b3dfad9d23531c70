package pubsub

import (
	"encoding/json"

	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

const eventTypeOrderCreated = "order.created"

// message is a transport-neutral order event: a JSON body plus attributes that
// subscriptions can filter on without decoding the body.
type message struct {
	id         string
	data       []byte
	attributes map[string]string
}

func newOrderCreatedMessage(event *service.OrderCreatedEvent) (*message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode order event")
	}

	attributes := map[string]string{
		"event_type": eventTypeOrderCreated,
		"order_id":   event.OrderID,
		"user_id":    event.UserID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &message{id: event.OrderID, data: data, attributes: attributes}, nil
}
