package service

import (
	"context"
	"time"
)

// OrderPaidEvent is published once an order is confirmed paid, for the
// worker to forward to the automation webhook.
type OrderPaidEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID        string    `json:"order_id"`
	UserID         string    `json:"user_id"`
	PaymentOrderID string    `json:"payment_order_id"`
	ItemType       string    `json:"item_type"`
	ItemName       string    `json:"item_name"`
	Amount         float64   `json:"amount"`
	PreviewImage   string    `json:"preview_image"`
	BackPreview    string    `json:"back_preview_image,omitempty"`
	PaidAt         time.Time `json:"paid_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPaid publishes an order-paid event for async processing
	PublishOrderPaid(ctx context.Context, event *OrderPaidEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
