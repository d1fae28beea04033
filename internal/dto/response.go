package dto

import (
	"time"

	"github.com/natthaphon/eventpass/internal/models"
	"github.com/natthaphon/eventpass/internal/service"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

type UserResponse struct {
	ID     string  `json:"id"`
	Email  string  `json:"email"`
	Name   string  `json:"name"`
	Image  string  `json:"image,omitempty"`
	Gender *string `json:"gender,omitempty"`
}

type EventResponse struct {
	ID              string    `json:"id"`
	HostID          string    `json:"host_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category,omitempty"`
	Date            time.Time `json:"date"`
	RSVPDeadline    time.Time `json:"rsvp_deadline"`
	Location        string    `json:"location"`
	LocationTBD     bool      `json:"location_tbd"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
	Visibility      string    `json:"visibility"`
	Audience        string    `json:"audience"`
	MaxParticipants *int      `json:"max_participants,omitempty"`
	Price           float64   `json:"price"`
	Published       bool      `json:"published"`
	CreatedAt       time.Time `json:"created_at"`
}

type EventStatusResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	MaxParticipants *int   `json:"max_participants,omitempty"`
	ConfirmedCount  int64  `json:"confirmed_count"`
	PendingCount    int64  `json:"pending_count"`
	SeatsAvailable  *int   `json:"seats_available,omitempty"`
}

type RSVPResponse struct {
	ID        string            `json:"id"`
	EventID   string            `json:"event_id"`
	UserID    string            `json:"user_id"`
	Status    models.RSVPStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	User      *UserResponse     `json:"user,omitempty"`
}

type CheckoutResponse struct {
	OrderID     string  `json:"order_id"`
	TicketID    string  `json:"ticket_id"`
	SessionID   string  `json:"session_id"`
	RedirectURL string  `json:"redirect_url"`
	TotalAmount float64 `json:"total_amount"`
}

type ConfirmPaymentResponse struct {
	Confirmed bool `json:"confirmed"`
}

type AttendeeResponse struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type CheckInResponse struct {
	Status   string            `json:"status"`
	Message  string            `json:"message"`
	Attendee *AttendeeResponse `json:"attendee,omitempty"`
}

type TicketResponse struct {
	ID          string              `json:"id"`
	OrderID     string              `json:"order_id"`
	EventID     string              `json:"event_id"`
	Code        string              `json:"code"`
	Status      models.TicketStatus `json:"status"`
	CheckedInAt *time.Time          `json:"checked_in_at,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	Event       *EventResponse      `json:"event,omitempty"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Image:  u.Image,
		Gender: u.Gender,
	}
}

func ToEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:              e.ID,
		HostID:          e.HostID,
		Title:           e.Title,
		Description:     e.Description,
		Category:        e.Category,
		Date:            e.Date,
		RSVPDeadline:    e.RSVPDeadline,
		Location:        e.Location,
		LocationTBD:     e.LocationTBD,
		Latitude:        e.Latitude,
		Longitude:       e.Longitude,
		Visibility:      string(e.Visibility),
		Audience:        string(e.Audience),
		MaxParticipants: e.MaxParticipants,
		Price:           e.Price,
		Published:       e.Published,
		CreatedAt:       e.CreatedAt,
	}
}

func ToRSVPResponse(r *models.RSVP) RSVPResponse {
	resp := RSVPResponse{
		ID:        r.ID,
		EventID:   r.EventID,
		UserID:    r.UserID,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
	if r.User != nil {
		u := ToUserResponse(r.User)
		resp.User = &u
	}
	return resp
}

func ToCheckInResponse(res *service.CheckInResult) CheckInResponse {
	resp := CheckInResponse{
		Status:  string(res.Status),
		Message: res.Message,
	}
	if res.Attendee != nil {
		resp.Attendee = &AttendeeResponse{
			Name:  res.Attendee.Name,
			Email: res.Attendee.Email,
		}
	}
	return resp
}

func ToTicketResponse(t *models.Ticket) TicketResponse {
	resp := TicketResponse{
		ID:          t.ID,
		OrderID:     t.OrderID,
		EventID:     t.EventID,
		Code:        t.Code,
		Status:      t.Status,
		CheckedInAt: t.CheckedInAt,
		CreatedAt:   t.CreatedAt,
	}
	if t.Event != nil {
		e := ToEventResponse(t.Event)
		resp.Event = &e
	}
	return resp
}
