package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/natthaphon/eventpass/internal/models"
	"github.com/natthaphon/eventpass/internal/repository"
	"github.com/natthaphon/eventpass/pkg/payment"
	"github.com/natthaphon/eventpass/pkg/rabbitmq"
	"gorm.io/gorm"
)

const gatewayTimeout = 10 * time.Second

type CheckoutResult struct {
	Order       *models.Order
	Ticket      *models.Ticket
	RedirectURL string
}

type CheckoutService interface {
	BeginCheckout(ctx context.Context, eventID, payerID string) (*CheckoutResult, error)
	ConfirmPayment(ctx context.Context, sessionID string) (bool, error)
}

type checkoutService struct {
	orderRepo  repository.OrderRepository
	ticketRepo repository.TicketRepository
	eventRepo  repository.EventRepository
	userRepo   repository.UserRepository
	gateway    payment.Gateway
	publisher  *rabbitmq.Publisher
	appBaseURL string
}

func NewCheckoutService(
	orderRepo repository.OrderRepository,
	ticketRepo repository.TicketRepository,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	gateway payment.Gateway,
	publisher *rabbitmq.Publisher,
	appBaseURL string,
) CheckoutService {
	return &checkoutService{
		orderRepo:  orderRepo,
		ticketRepo: ticketRepo,
		eventRepo:  eventRepo,
		userRepo:   userRepo,
		gateway:    gateway,
		publisher:  publisher,
		appBaseURL: appBaseURL,
	}
}

// BeginCheckout opens a payment attempt for a priced event: one pending
// order and its single ticket commit first, then the gateway session is
// opened and its handle stored on the order. A gateway failure leaves
// the committed pair pending for a reconciliation job; it is never
// rolled back here.
func (s *checkoutService) BeginCheckout(ctx context.Context, eventID, payerID string) (*CheckoutResult, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if event.Price <= 0 {
		return nil, fmt.Errorf("%w: event is free, no checkout required", ErrInvalidState)
	}

	if _, err := s.userRepo.FindByID(ctx, payerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	code, err := newTicketCode()
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID:        payerID,
		TotalAmount:   event.Price,
		PaymentStatus: models.PaymentPending,
	}
	ticket := &models.Ticket{
		EventID: eventID,
		UserID:  payerID,
		Code:    code,
		Status:  models.TicketValid,
	}

	err = s.orderRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return err
		}
		ticket.OrderID = order.ID
		return s.ticketRepo.Create(ctx, tx, ticket)
	})
	if err != nil {
		return nil, err
	}

	gctx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()

	session, err := s.gateway.CreateSession(gctx, payment.SessionRequest{
		AmountCents: int64(math.Round(event.Price * 100)),
		Currency:    "usd",
		Description: event.Title,
		SuccessURL:  s.appBaseURL + "/events/" + eventID + "/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   s.appBaseURL + "/events/" + eventID,
		Metadata: map[string]string{
			"order_id":  order.ID,
			"ticket_id": ticket.ID,
			"event_id":  eventID,
			"user_id":   payerID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	if err := s.orderRepo.SetSessionID(ctx, order.ID, session.ID); err != nil {
		return nil, err
	}
	order.PaymentSessionID = session.ID

	return &CheckoutResult{
		Order:       order,
		Ticket:      ticket,
		RedirectURL: session.RedirectURL,
	}, nil
}

// ConfirmPayment asks the gateway whether the session settled and, if
// so, completes the matching order. Idempotent: a settled order answers
// true again without touching storage, and concurrent retries race on a
// pending-guarded update.
func (s *checkoutService) ConfirmPayment(ctx context.Context, sessionID string) (bool, error) {
	order, err := s.orderRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrOrderNotFound
		}
		return false, err
	}
	if order.PaymentStatus == models.PaymentCompleted {
		return true, nil
	}

	gctx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()

	settled, err := s.gateway.SessionSettled(gctx, sessionID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	if !settled {
		return false, nil
	}

	changed, err := s.orderRepo.MarkCompleted(ctx, order.ID)
	if err != nil {
		return false, err
	}
	if changed && s.publisher != nil {
		order.PaymentStatus = models.PaymentCompleted
		_ = s.publisher.Publish("order.completed", order)
	}
	return true, nil
}

// newTicketCode mints the scannable credential: 16 random bytes, hex
// encoded, 128 bits of entropy.
func newTicketCode() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate ticket code: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
