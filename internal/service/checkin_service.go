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

type CheckInStatus string

const (
	CheckInOK           CheckInStatus = "ok"
	CheckInInvalid      CheckInStatus = "invalid"
	CheckInUnauthorized CheckInStatus = "unauthorized"
	CheckInRejected     CheckInStatus = "rejected"
)

type Attendee struct {
	Name  string
	Email string
}

// CheckInResult is always a result, never an error: every outcome of a
// door scan is expected and shown to the scanning host.
type CheckInResult struct {
	Status   CheckInStatus
	Message  string
	Attendee *Attendee
}

type CheckinService interface {
	CheckIn(ctx context.Context, code, requestingHostID string) (*CheckInResult, error)
}

type checkinService struct {
	ticketRepo repository.TicketRepository
	publisher  *rabbitmq.Publisher
}

func NewCheckinService(ticketRepo repository.TicketRepository, publisher *rabbitmq.Publisher) CheckinService {
	return &checkinService{ticketRepo: ticketRepo, publisher: publisher}
}

// CheckIn consumes a ticket exactly once. The terminal states answer as
// idempotent reads; the valid→used transition is a compare-and-set on
// the ticket row, so concurrent scans from two doors produce one
// success and one "already used".
func (s *checkinService) CheckIn(ctx context.Context, code, requestingHostID string) (*CheckInResult, error) {
	ticket, err := s.ticketRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &CheckInResult{Status: CheckInInvalid, Message: "Invalid ticket"}, nil
		}
		return nil, err
	}

	if ticket.Event == nil || ticket.Event.HostID != requestingHostID {
		return &CheckInResult{Status: CheckInUnauthorized, Message: "Unauthorized"}, nil
	}

	switch ticket.Status {
	case models.TicketUsed:
		return alreadyUsedResult(ticket), nil
	case models.TicketCancelled, models.TicketRefunded:
		return &CheckInResult{
			Status:  CheckInRejected,
			Message: fmt.Sprintf("Ticket is %s", ticket.Status),
		}, nil
	}

	// A valid ticket for a priced event is worthless until its order
	// settled.
	if ticket.Event.Price > 0 && (ticket.Order == nil || ticket.Order.PaymentStatus != models.PaymentCompleted) {
		return &CheckInResult{
			Status:  CheckInRejected,
			Message: "Payment not settled for this ticket",
		}, nil
	}

	now := time.Now()
	won, err := s.ticketRepo.MarkUsed(ctx, ticket.ID, now)
	if err != nil {
		return nil, err
	}
	if !won {
		// Lost the race to another scanner; report the recorded time.
		fresh, err := s.ticketRepo.FindByID(ctx, ticket.ID)
		if err == nil {
			fresh.Event, fresh.User = ticket.Event, ticket.User
			return alreadyUsedResult(fresh), nil
		}
		return alreadyUsedResult(ticket), nil
	}

	ticket.Status = models.TicketUsed
	ticket.CheckedInAt = &now
	if s.publisher != nil {
		_ = s.publisher.Publish("ticket.checked_in", ticket)
	}

	attendee := &Attendee{Name: "Guest"}
	if ticket.User != nil {
		if ticket.User.Name != "" {
			attendee.Name = ticket.User.Name
		}
		attendee.Email = ticket.User.Email
	}

	return &CheckInResult{
		Status:   CheckInOK,
		Message:  "Check-in successful",
		Attendee: attendee,
	}, nil
}

func alreadyUsedResult(ticket *models.Ticket) *CheckInResult {
	msg := "Ticket already used"
	if ticket.CheckedInAt != nil {
		msg = fmt.Sprintf("Ticket already used at %s", ticket.CheckedInAt.Format(time.RFC1123))
	}
	return &CheckInResult{Status: CheckInRejected, Message: msg}
}
