package service

import (
	"context"
	"errors"

	"github.com/natthaphon/eventpass/internal/models"
	"github.com/natthaphon/eventpass/internal/repository"
	"github.com/natthaphon/eventpass/pkg/rabbitmq"
	"gorm.io/gorm"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionDeny    Decision = "deny"
)

type ModerationService interface {
	ListPendingRequests(ctx context.Context, eventID, requesterID string) ([]models.RSVP, error)
	DecideRequest(ctx context.Context, rsvpID, requesterID string, decision Decision) (*models.RSVP, error)
}

type moderationService struct {
	rsvpRepo  repository.RSVPRepository
	eventRepo repository.EventRepository
	publisher *rabbitmq.Publisher
}

func NewModerationService(
	rsvpRepo repository.RSVPRepository,
	eventRepo repository.EventRepository,
	publisher *rabbitmq.Publisher,
) ModerationService {
	return &moderationService{rsvpRepo: rsvpRepo, eventRepo: eventRepo, publisher: publisher}
}

// ListPendingRequests returns open join requests oldest first. Anyone
// but the host gets an empty list, the same answer as for an event that
// does not exist.
func (s *moderationService) ListPendingRequests(ctx context.Context, eventID, requesterID string) ([]models.RSVP, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.RSVP{}, nil
		}
		return nil, err
	}
	if event.HostID != requesterID {
		return []models.RSVP{}, nil
	}

	return s.rsvpRepo.FindPendingByEvent(ctx, eventID)
}

// DecideRequest applies a host's approve/deny to a pending RSVP. The
// transition is guarded on the pending status, so deciding twice fails
// rather than silently re-applying. An approval re-counts confirmed
// seats under the event lock and refuses to overfill the event.
func (s *moderationService) DecideRequest(ctx context.Context, rsvpID, requesterID string, decision Decision) (*models.RSVP, error) {
	var result *models.RSVP

	err := s.rsvpRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rsvp, err := s.rsvpRepo.FindByID(ctx, rsvpID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRSVPNotFound
			}
			return err
		}
		if rsvp.Event == nil || rsvp.Event.HostID != requesterID {
			return ErrNotHost
		}

		target := models.RSVPCancelled
		if decision == DecisionApprove {
			target = models.RSVPConfirmed

			event, err := s.eventRepo.FindByIDForUpdate(ctx, tx, rsvp.EventID)
			if err != nil {
				return err
			}
			if event.MaxParticipants != nil {
				confirmed, err := s.rsvpRepo.CountByStatus(ctx, tx, rsvp.EventID, models.RSVPConfirmed)
				if err != nil {
					return err
				}
				if confirmed >= int64(*event.MaxParticipants) {
					return ErrEventFull
				}
			}
		}

		ok, err := s.rsvpRepo.UpdateStatusFrom(ctx, tx, rsvpID, models.RSVPPending, target)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidState
		}

		rsvp.Status = target
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
