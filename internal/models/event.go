package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventVisibility string

const (
	VisibilityPublic  EventVisibility = "public"
	VisibilityPrivate EventVisibility = "private"
)

type EventAudience string

const (
	AudienceAll       EventAudience = "all"
	AudienceMenOnly   EventAudience = "men_only"
	AudienceWomenOnly EventAudience = "women_only"
)

type Event struct {
	ID              string          `gorm:"type:uuid;primaryKey" json:"id"`
	HostID          string          `gorm:"not null;index" json:"host_id"`
	Title           string          `gorm:"not null" json:"title"`
	Description     string          `json:"description"`
	Category        string          `json:"category,omitempty"`
	Date            time.Time       `gorm:"not null" json:"date"`
	RSVPDeadline    time.Time       `gorm:"not null" json:"rsvp_deadline"`
	Location        string          `json:"location"`
	LocationTBD     bool            `json:"location_tbd"`
	Latitude        *float64        `json:"latitude,omitempty"`
	Longitude       *float64        `json:"longitude,omitempty"`
	Visibility      EventVisibility `gorm:"type:varchar(10);not null;default:'public'" json:"visibility"`
	Audience        EventAudience   `gorm:"type:varchar(20);not null;default:'all'" json:"audience"`
	MaxParticipants *int            `json:"max_participants,omitempty"`
	Price           float64         `gorm:"not null;default:0" json:"price"`
	Published       bool            `gorm:"not null;default:true" json:"published"`
	IsFeatured      bool            `gorm:"not null;default:false" json:"is_featured"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Host *User `gorm:"foreignKey:HostID" json:"host,omitempty"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
