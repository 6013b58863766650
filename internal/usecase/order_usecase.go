package usecase

import (
	"context"

	"forthecos/internal/domain/entity"
	"forthecos/internal/domain/service"
	"forthecos/internal/domain/studio"

	"github.com/google/uuid"
)

// CheckoutInput is a styled result ready to be printed.
type CheckoutInput struct {
	UserID     uuid.UUID
	Item       entity.ItemType
	Source     []byte
	Transforms entity.Transforms
	Overlay    service.Overlay
}

// CheckoutOutput is the stored pending order and where to pay for it.
type CheckoutOutput struct {
	Order       *entity.PhysicalOrder
	RedirectURL string
	Session     *studio.Snapshot
}

// OrderStatusOutput is an order and whether it is being polled.
type OrderStatusOutput struct {
	Order    *entity.PhysicalOrder
	Watching bool
}

// ConfirmPaymentInput is a paid callback from the payment automation.
type ConfirmPaymentInput struct {
	Tracking       string
	PaymentOrderID string
}

// OrderUsecase creates print orders and tracks their payment.
type OrderUsecase interface {
	Checkout(ctx context.Context, input CheckoutInput) (*CheckoutOutput, error)
	// Watch starts polling the order until it is paid or the watch is cancelled.
	Watch(ctx context.Context, viewer Principal, orderID uuid.UUID) (*OrderStatusOutput, error)
	Status(ctx context.Context, viewer Principal, orderID uuid.UUID) (*OrderStatusOutput, error)
	CancelWatch(ctx context.Context, viewer Principal, orderID uuid.UUID) error
	// ConfirmPayment marks the tracked order paid. Repeated calls are no-ops.
	ConfirmPayment(ctx context.Context, input ConfirmPaymentInput) (*entity.PhysicalOrder, error)
	ListMine(ctx context.Context, viewer Principal) ([]*entity.PhysicalOrder, error)
	ListAll(ctx context.Context, viewer Principal) ([]*entity.PhysicalOrder, error)
	Get(ctx context.Context, viewer Principal, orderID uuid.UUID) (*entity.PhysicalOrder, error)
	// PaymentQR renders the payment redirect of a pending order as a PNG QR code.
	PaymentQR(ctx context.Context, viewer Principal, orderID uuid.UUID) ([]byte, error)
}
