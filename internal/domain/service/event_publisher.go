package service

import (
	"context"
	"time"
)

// OrderCreatedEvent is published after an order has been stored.
type OrderCreatedEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID       string    `json:"order_id"`
	UserID        string    `json:"user_id"`
	ItemCount     int       `json:"item_count"`
	Total         string    `json:"total"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderCreated publishes an order event for downstream consumers
	PublishOrderCreated(ctx context.Context, event *OrderCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
