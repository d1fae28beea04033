package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "pending"
	RSVPConfirmed RSVPStatus = "confirmed"
	RSVPCancelled RSVPStatus = "cancelled"
)

// RSVP is the admission record. The composite unique index holds for
// every status, so a participant gets at most one row per event ever.
type RSVP struct {
	ID        string     `gorm:"type:uuid;primaryKey" json:"id"`
	EventID   string     `gorm:"type:uuid;not null;uniqueIndex:idx_rsvp_participant" json:"event_id"`
	UserID    string     `gorm:"not null;uniqueIndex:idx_rsvp_participant" json:"user_id"`
	Status    RSVPStatus `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Event *Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (r *RSVP) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
