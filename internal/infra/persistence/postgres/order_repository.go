package postgres

import (
	"context"
	"time"

	"forthecos/internal/domain/entity"
	domainerrors "forthecos/internal/domain/errors"
	"forthecos/internal/domain/repository"
	"forthecos/internal/errors"
	"forthecos/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.PhysicalOrder) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.Status == "" {
		order.Status = entity.OrderStatusPending
	}
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}
	order.CreatedAt = orderM.CreatedAt

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PhysicalOrder, error) {
	var orderM model.PhysicalOrderModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*entity.PhysicalOrder, error) {
	return repo.list(ctx, repo.db.Where("user_id = ?", owner))
}

func (repo *orderRepository) ListAll(ctx context.Context) ([]*entity.PhysicalOrder, error) {
	return repo.list(ctx, repo.db)
}

// MarkPaid only moves pending orders, so repeated callbacks are harmless.
func (repo *orderRepository) MarkPaid(ctx context.Context, id uuid.UUID, paymentOrderID string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PhysicalOrderModel{}).
		Where("id = ? AND status = ?", id, string(entity.OrderStatusPending)).
		Updates(map[string]any{
			"status":           string(entity.OrderStatusPaid),
			"payment_order_id": paymentOrderID,
			"paid_at":          time.Now(),
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark order paid")
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	if _, err := repo.FindByID(ctx, id); err != nil {
		return false, err
	}

	return false, nil
}

func (repo *orderRepository) list(ctx context.Context, query *gorm.DB) ([]*entity.PhysicalOrder, error) {
	var rows []model.PhysicalOrderModel
	if err := query.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	out := make([]*entity.PhysicalOrder, 0, len(rows))
	for i := range rows {
		out = append(out, toOrderDomain(&rows[i]))
	}

	return out, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.PhysicalOrderModel) *entity.PhysicalOrder {
	if data == nil {
		return nil
	}

	return &entity.PhysicalOrder{
		ID:                  data.ID,
		UserID:              data.UserID,
		CreatedAt:           data.CreatedAt,
		PaymentOrderID:      data.PaymentOrderID,
		ItemType:            entity.ItemType(data.ItemType),
		ItemName:            data.ItemName,
		Amount:              data.Amount,
		Status:              entity.OrderStatus(data.Status),
		PreviewImageURL:     data.PreviewImageURL,
		BackPreviewImageURL: data.BackPreviewImageURL,
		PaidAt:              data.PaidAt,
	}
}

func fromOrderDomain(data *entity.PhysicalOrder) *model.PhysicalOrderModel {
	if data == nil {
		return nil
	}

	return &model.PhysicalOrderModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		PaymentOrderID:      data.PaymentOrderID,
		ItemType:            string(data.ItemType),
		ItemName:            data.ItemName,
		Amount:              data.Amount,
		Status:              string(data.Status),
		PreviewImageURL:     data.PreviewImageURL,
		BackPreviewImageURL: data.BackPreviewImageURL,
		PaidAt:              data.PaidAt,
		CreatedAt:           data.CreatedAt,
	}
}
