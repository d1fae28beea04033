package repository

import (
	"context"
	"time"

	"github.com/natthaphon/eventpass/internal/models"
	"gorm.io/gorm"
)

type TicketRepository interface {
	Create(ctx context.Context, tx *gorm.DB, ticket *models.Ticket) error
	FindByID(ctx context.Context, id string) (*models.Ticket, error)
	FindByCode(ctx context.Context, code string) (*models.Ticket, error)
	FindPaidByUser(ctx context.Context, userID string) ([]models.Ticket, error)
	MarkUsed(ctx context.Context, id string, at time.Time) (bool, error)
}

type ticketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) Create(ctx context.Context, tx *gorm.DB, ticket *models.Ticket) error {
	return tx.WithContext(ctx).Create(ticket).Error
}

func (r *ticketRepository) FindByID(ctx context.Context, id string) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := r.db.WithContext(ctx).First(&ticket, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) FindByCode(ctx context.Context, code string) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.WithContext(ctx).
		Preload("Event").
		Preload("User").
		Preload("Order").
		Where("code = ?", code).
		First(&ticket).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// FindPaidByUser lists a participant's tickets whose orders settled,
// newest first.
func (r *ticketRepository) FindPaidByUser(ctx context.Context, userID string) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.db.WithContext(ctx).
		Preload("Event").
		Preload("Order").
		Joins("JOIN orders ON orders.id = tickets.order_id AND orders.payment_status = ?", models.PaymentCompleted).
		Where("tickets.user_id = ?", userID).
		Order("tickets.created_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

// MarkUsed is the check-in compare-and-set: the valid guard means two
// concurrent scans of the same code cannot both succeed.
func (r *ticketRepository) MarkUsed(ctx context.Context, id string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Ticket{}).
		Where("id = ? AND status = ?", id, models.TicketValid).
		Updates(map[string]any{
			"status":        models.TicketUsed,
			"checked_in_at": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
