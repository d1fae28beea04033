package service

import (
	"context"

	"github.com/natthaphon/eventpass/internal/models"
	"github.com/natthaphon/eventpass/internal/repository"
)

type ProfileUpdate struct {
	Email  string
	Name   string
	Image  string
	Gender *string
}

type UserService interface {
	SyncProfile(ctx context.Context, userID string, profile ProfileUpdate) (*models.User, error)
	MyTickets(ctx context.Context, userID string) ([]models.Ticket, error)
}

type userService struct {
	userRepo   repository.UserRepository
	ticketRepo repository.TicketRepository
}

func NewUserService(userRepo repository.UserRepository, ticketRepo repository.TicketRepository) UserService {
	return &userService{userRepo: userRepo, ticketRepo: ticketRepo}
}

// SyncProfile upserts the caller's identity record; the identity
// provider owns authentication, this only mirrors the profile.
func (s *userService) SyncProfile(ctx context.Context, userID string, profile ProfileUpdate) (*models.User, error) {
	user := &models.User{
		ID:     userID,
		Email:  profile.Email,
		Name:   profile.Name,
		Image:  profile.Image,
		Gender: profile.Gender,
	}
	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// MyTickets lists the caller's tickets whose orders settled.
func (s *userService) MyTickets(ctx context.Context, userID string) ([]models.Ticket, error) {
	return s.ticketRepo.FindPaidByUser(ctx, userID)
}
