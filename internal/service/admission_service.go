package service

import (
	"context"
	"errors"
	"time"

	"github.com/natthaphon/eventpass/internal/models"
	"github.com/natthaphon/eventpass/internal/repository"
	"github.com/natthaphon/eventpass/pkg/rabbitmq"
	"gorm.io/gorm"
)

type AdmissionService interface {
	RequestAdmission(ctx context.Context, eventID, participantID string) (*models.RSVP, error)
	Withdraw(ctx context.Context, eventID, participantID string) (*models.RSVP, error)
}

type admissionService struct {
	rsvpRepo  repository.RSVPRepository
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
	publisher *rabbitmq.Publisher
}

func NewAdmissionService(
	rsvpRepo repository.RSVPRepository,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	publisher *rabbitmq.Publisher,
) AdmissionService {
	return &admissionService{
		rsvpRepo:  rsvpRepo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

// RequestAdmission turns a join request into a confirmed or pending
// RSVP. The capacity count and the insert happen under the event's row
// lock, so two requests for the last seat cannot both succeed; the
// unique index on (event_id, user_id) closes the duplicate-join race
// below the application layer.
func (s *admissionService) RequestAdmission(ctx context.Context, eventID, participantID string) (*models.RSVP, error) {
	var result *models.RSVP

	err := s.rsvpRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the event row — serializes concurrent admissions
		event, err := s.eventRepo.FindByIDForUpdate(ctx, tx, eventID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		// 2. Hosts do not join their own events
		if event.HostID == participantID {
			return ErrSelfJoin
		}

		// 3. RSVP window
		if !rsvpOpen(event, time.Now()) {
			return ErrDeadlinePassed
		}

		// 4. One RSVP per participant per event, any status
		_, err = s.rsvpRepo.FindByUserAndEvent(ctx, tx, participantID, eventID)
		if err == nil {
			return ErrAlreadyRequested
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// 5. Audience restriction
		participant, err := s.userRepo.FindByID(ctx, participantID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if err := audienceAllows(event, participant); err != nil {
			return err
		}

		// 6. Capacity, counted fresh inside the locked transaction
		if event.MaxParticipants != nil {
			confirmed, err := s.rsvpRepo.CountByStatus(ctx, tx, eventID, models.RSVPConfirmed)
			if err != nil {
				return err
			}
			if confirmed >= int64(*event.MaxParticipants) {
				return ErrEventFull
			}
		}

		status := models.RSVPConfirmed
		if event.Visibility == models.VisibilityPrivate {
			status = models.RSVPPending
		}

		rsvp := &models.RSVP{
			EventID: eventID,
			UserID:  participantID,
			Status:  status,
		}
		if err := s.rsvpRepo.Create(ctx, tx, rsvp); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyRequested
			}
			return err
		}

		result = rsvp
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("rsvp."+string(result.Status), result)
	}
	return result, nil
}

// Withdraw lets a participant cancel their own pending or confirmed
// RSVP. The row stays behind, so a later re-join is rejected as a
// duplicate request.
func (s *admissionService) Withdraw(ctx context.Context, eventID, participantID string) (*models.RSVP, error) {
	db := s.rsvpRepo.GetDB()

	rsvp, err := s.rsvpRepo.FindByUserAndEvent(ctx, db, participantID, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRSVPNotFound
		}
		return nil, err
	}
	if rsvp.Status == models.RSVPCancelled {
		return nil, ErrInvalidState
	}

	ok, err := s.rsvpRepo.UpdateStatusFrom(ctx, db, rsvp.ID, rsvp.Status, models.RSVPCancelled)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidState
	}

	rsvp.Status = models.RSVPCancelled
	if s.publisher != nil {
		_ = s.publisher.Publish("rsvp.cancelled", rsvp)
	}
	return rsvp, nil
}
