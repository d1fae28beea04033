package repository

import (
	"context"

	"github.com/natthaphon/eventpass/internal/models"
	"gorm.io/gorm"
)

type RSVPRepository interface {
	Create(ctx context.Context, tx *gorm.DB, rsvp *models.RSVP) error
	FindByID(ctx context.Context, id string) (*models.RSVP, error)
	FindByUserAndEvent(ctx context.Context, tx *gorm.DB, userID, eventID string) (*models.RSVP, error)
	CountByStatus(ctx context.Context, tx *gorm.DB, eventID string, status models.RSVPStatus) (int64, error)
	FindPendingByEvent(ctx context.Context, eventID string) ([]models.RSVP, error)
	UpdateStatusFrom(ctx context.Context, tx *gorm.DB, id string, from, to models.RSVPStatus) (bool, error)
	GetDB() *gorm.DB
}

type rsvpRepository struct {
	db *gorm.DB
}

func NewRSVPRepository(db *gorm.DB) RSVPRepository {
	return &rsvpRepository{db: db}
}

func (r *rsvpRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *rsvpRepository) Create(ctx context.Context, tx *gorm.DB, rsvp *models.RSVP) error {
	return tx.WithContext(ctx).Create(rsvp).Error
}

func (r *rsvpRepository) FindByID(ctx context.Context, id string) (*models.RSVP, error) {
	var rsvp models.RSVP
	err := r.db.WithContext(ctx).
		Preload("Event").
		First(&rsvp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rsvp, nil
}

func (r *rsvpRepository) FindByUserAndEvent(ctx context.Context, tx *gorm.DB, userID, eventID string) (*models.RSVP, error) {
	var rsvp models.RSVP
	err := tx.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		First(&rsvp).Error
	if err != nil {
		return nil, err
	}
	return &rsvp, nil
}

func (r *rsvpRepository) CountByStatus(ctx context.Context, tx *gorm.DB, eventID string, status models.RSVPStatus) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.RSVP{}).
		Where("event_id = ? AND status = ?", eventID, status).
		Count(&count).Error
	return count, err
}

// FindPendingByEvent returns open join requests oldest first, the order
// hosts review them in.
func (r *rsvpRepository) FindPendingByEvent(ctx context.Context, eventID string) ([]models.RSVP, error) {
	var rsvps []models.RSVP
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("event_id = ? AND status = ?", eventID, models.RSVPPending).
		Order("created_at ASC").
		Find(&rsvps).Error
	if err != nil {
		return nil, err
	}
	return rsvps, nil
}

// UpdateStatusFrom transitions an RSVP only when it is still in the
// expected prior status. The affected-row count tells the caller whether
// it won the transition.
func (r *rsvpRepository) UpdateStatusFrom(ctx context.Context, tx *gorm.DB, id string, from, to models.RSVPStatus) (bool, error) {
	res := tx.WithContext(ctx).
		Model(&models.RSVP{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
