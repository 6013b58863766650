package repository

import (
	"context"

	"forthecos/internal/domain/entity"
	"forthecos/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when no order matches the query.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists physical print orders.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.PhysicalOrder) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PhysicalOrder, error)
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]*entity.PhysicalOrder, error)
	ListAll(ctx context.Context) ([]*entity.PhysicalOrder, error)

	// MarkPaid flips a pending order to paid. It reports false when the order
	// was already paid; a paid order never returns to pending.
	MarkPaid(ctx context.Context, id uuid.UUID, paymentOrderID string) (bool, error)
}
