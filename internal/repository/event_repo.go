package repository

import (
	"context"
	"time"

	"github.com/natthaphon/eventpass/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	Save(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id string) (*models.Event, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id string) (*models.Event, error)
	FindUpcoming(ctx context.Context) ([]models.Event, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) Save(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).Preload("Host").First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindByIDForUpdate acquires a row-level lock on the event within the
// given transaction. Admission decisions for the same event serialize
// behind this lock.
func (r *eventRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id string) (*models.Event, error) {
	var event models.Event
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindUpcoming lists published events whose RSVP window is still open,
// soonest deadline first (feed ordering).
func (r *eventRepository) FindUpcoming(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Preload("Host").
		Where("published = ? AND rsvp_deadline >= ?", true, time.Now()).
		Order("rsvp_deadline ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
