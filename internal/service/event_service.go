package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/natthaphon/eventpass/internal/models"
	"github.com/natthaphon/eventpass/internal/repository"
	"github.com/natthaphon/eventpass/pkg/rabbitmq"
	"gorm.io/gorm"
)

// EventUpdate carries host edits; nil fields are left untouched.
type EventUpdate struct {
	Title           *string
	Description     *string
	Category        *string
	Date            *time.Time
	RSVPDeadline    *time.Time
	Location        *string
	LocationTBD     *bool
	Latitude        *float64
	Longitude       *float64
	Visibility      *models.EventVisibility
	Audience        *models.EventAudience
	MaxParticipants *int
	Price           *float64
	Published       *bool
}

type EventStatus struct {
	Event          *models.Event
	ConfirmedCount int64
	PendingCount   int64
	// SeatsAvailable is nil for unlimited events.
	SeatsAvailable *int
}

type EventService interface {
	CreateEvent(ctx context.Context, hostID string, event *models.Event) error
	UpdateEvent(ctx context.Context, eventID, hostID string, upd EventUpdate) (*models.Event, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	EventStatus(ctx context.Context, id string) (*EventStatus, error)
}

type eventService struct {
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
	rsvpRepo  repository.RSVPRepository
	publisher *rabbitmq.Publisher
}

func NewEventService(
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	rsvpRepo repository.RSVPRepository,
	publisher *rabbitmq.Publisher,
) EventService {
	return &eventService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		rsvpRepo:  rsvpRepo,
		publisher: publisher,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, hostID string, event *models.Event) error {
	if _, err := s.userRepo.FindByID(ctx, hostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if event.RSVPDeadline.After(event.Date) {
		return ErrInvalidSchedule
	}

	event.HostID = hostID
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("event.created", event)
	}
	return nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID, hostID string, upd EventUpdate) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if event.HostID != hostID {
		return nil, ErrNotHost
	}

	applyUpdate(event, upd)
	if event.RSVPDeadline.After(event.Date) {
		return nil, ErrInvalidSchedule
	}

	event.Host = nil
	if err := s.eventRepo.Save(ctx, event); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("event.updated", event)
	}
	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.eventRepo.FindUpcoming(ctx)
}

func (s *eventService) EventStatus(ctx context.Context, id string) (*EventStatus, error) {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	db := s.rsvpRepo.GetDB()
	confirmed, err := s.rsvpRepo.CountByStatus(ctx, db, id, models.RSVPConfirmed)
	if err != nil {
		return nil, err
	}
	pending, err := s.rsvpRepo.CountByStatus(ctx, db, id, models.RSVPPending)
	if err != nil {
		return nil, err
	}

	status := &EventStatus{
		Event:          event,
		ConfirmedCount: confirmed,
		PendingCount:   pending,
	}
	if event.MaxParticipants != nil {
		left := *event.MaxParticipants - int(confirmed)
		if left < 0 {
			left = 0
		}
		status.SeatsAvailable = &left
	}
	return status, nil
}

func applyUpdate(event *models.Event, upd EventUpdate) {
	if upd.Title != nil {
		event.Title = *upd.Title
	}
	if upd.Description != nil {
		event.Description = *upd.Description
	}
	if upd.Category != nil {
		event.Category = *upd.Category
	}
	if upd.Date != nil {
		event.Date = *upd.Date
	}
	if upd.RSVPDeadline != nil {
		event.RSVPDeadline = *upd.RSVPDeadline
	}
	if upd.Location != nil {
		event.Location = *upd.Location
	}
	if upd.LocationTBD != nil {
		event.LocationTBD = *upd.LocationTBD
	}
	if upd.Latitude != nil {
		event.Latitude = upd.Latitude
	}
	if upd.Longitude != nil {
		event.Longitude = upd.Longitude
	}
	if upd.Visibility != nil {
		event.Visibility = *upd.Visibility
	}
	if upd.Audience != nil {
		event.Audience = *upd.Audience
	}
	if upd.MaxParticipants != nil {
		event.MaxParticipants = upd.MaxParticipants
	}
	if upd.Price != nil {
		event.Price = *upd.Price
	}
	if upd.Published != nil {
		event.Published = *upd.Published
	}
}
