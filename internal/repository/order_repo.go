package repository

import (
	"context"

	"github.com/natthaphon/eventpass/internal/models"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, order *models.Order) error
	FindByID(ctx context.Context, id string) (*models.Order, error)
	FindBySessionID(ctx context.Context, sessionID string) (*models.Order, error)
	SetSessionID(ctx context.Context, orderID, sessionID string) error
	MarkCompleted(ctx context.Context, orderID string) (bool, error)
	GetDB() *gorm.DB
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *orderRepository) Create(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	return tx.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindBySessionID(ctx context.Context, sessionID string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Where("payment_session_id = ?", sessionID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) SetSessionID(ctx context.Context, orderID, sessionID string) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("payment_session_id", sessionID).Error
}

// MarkCompleted settles an order at most once; concurrent webhook
// retries race on the pending guard and only one wins.
func (r *orderRepository) MarkCompleted(ctx context.Context, orderID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND payment_status = ?", orderID, models.PaymentPending).
		Update("payment_status", models.PaymentCompleted)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
