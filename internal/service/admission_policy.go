package service

import (
	"fmt"
	"time"

	"github.com/natthaphon/eventpass/internal/models"
)

// rsvpOpen reports whether a join request at instant now beats the
// event's RSVP deadline. The deadline itself is already too late.
func rsvpOpen(event *models.Event, now time.Time) bool {
	return now.Before(event.RSVPDeadline)
}

// audienceAllows enforces group-restricted events. An unset attribute
// and a mismatched one are the same error kind with different messages.
func audienceAllows(event *models.Event, participant *models.User) error {
	if event.Audience == models.AudienceAll {
		return nil
	}

	required, label := models.GenderMale, "men"
	if event.Audience == models.AudienceWomenOnly {
		required, label = models.GenderFemale, "women"
	}

	if participant.Gender == nil {
		return fmt.Errorf("%w: set the gender on your profile to join this event", ErrAudienceMismatch)
	}
	if *participant.Gender != required {
		return fmt.Errorf("%w: this event is open to %s only", ErrAudienceMismatch, label)
	}
	return nil
}
