package entity

import (
	"time"

	"github.com/google/uuid"
)

// ItemType is the physical product being ordered.
type ItemType string

const (
	ItemComicPrint ItemType = "comic_print"
	ItemCardSet    ItemType = "card_set"
)

// IsValid reports whether t is a known product.
func (t ItemType) IsValid() bool {
	return t == ItemComicPrint || t == ItemCardSet
}

// OrderStatus is the payment state of an order.
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
)

// PhysicalOrder is a print order awaiting or confirmed by external payment.
type PhysicalOrder struct {
	ID                  uuid.UUID   `json:"id"`
	UserID              uuid.UUID   `json:"user_id"`
	CreatedAt           time.Time   `json:"created_at"`
	PaymentOrderID      string      `json:"payment_order_id"`
	ItemType            ItemType    `json:"item_type"`
	ItemName            string      `json:"item_name"`
	Amount              float64     `json:"amount"`
	Status              OrderStatus `json:"status"`
	PreviewImageURL     string      `json:"preview_image"`
	BackPreviewImageURL string      `json:"back_preview_image,omitempty"`
	PaidAt              *time.Time  `json:"paid_at,omitempty"`
}

// IsPaid reports whether the external process confirmed payment.
func (o *PhysicalOrder) IsPaid() bool {
	return o != nil && o.Status == OrderStatusPaid
}
