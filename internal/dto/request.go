package dto

import "time"

type CreateEventRequest struct {
	Title           string     `json:"title" validate:"required"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Date            time.Time  `json:"date" validate:"required"`
	RSVPDeadline    *time.Time `json:"rsvp_deadline"`
	DeadlineHours   int        `json:"deadline_hours" validate:"gte=0"`
	Location        string     `json:"location"`
	LocationTBD     bool       `json:"location_tbd"`
	Latitude        *float64   `json:"latitude"`
	Longitude       *float64   `json:"longitude"`
	Visibility      string     `json:"visibility" validate:"omitempty,oneof=public private"`
	Audience        string     `json:"audience" validate:"omitempty,oneof=all men_only women_only"`
	MaxParticipants *int       `json:"max_participants" validate:"omitempty,gt=0"`
	Price           float64    `json:"price" validate:"gte=0"`
}

type UpdateEventRequest struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	Category        *string    `json:"category"`
	Date            *time.Time `json:"date"`
	RSVPDeadline    *time.Time `json:"rsvp_deadline"`
	Location        *string    `json:"location"`
	LocationTBD     *bool      `json:"location_tbd"`
	Latitude        *float64   `json:"latitude"`
	Longitude       *float64   `json:"longitude"`
	Visibility      *string    `json:"visibility" validate:"omitempty,oneof=public private"`
	Audience        *string    `json:"audience" validate:"omitempty,oneof=all men_only women_only"`
	MaxParticipants *int       `json:"max_participants" validate:"omitempty,gt=0"`
	Price           *float64   `json:"price" validate:"omitempty,gte=0"`
	Published       *bool      `json:"published"`
}

type SyncProfileRequest struct {
	Email  string  `json:"email" validate:"required,email"`
	Name   string  `json:"name"`
	Image  string  `json:"image"`
	Gender *string `json:"gender" validate:"omitempty,oneof=male female"`
}

type DecisionRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approve deny"`
}

type ConfirmPaymentRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

type CheckInRequest struct {
	Code string `json:"code" validate:"required"`
}
