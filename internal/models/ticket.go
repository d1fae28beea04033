package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TicketStatus string

const (
	TicketValid     TicketStatus = "valid"
	TicketUsed      TicketStatus = "used"
	TicketCancelled TicketStatus = "cancelled"
	TicketRefunded  TicketStatus = "refunded"
)

// Ticket is the single-use credential scanned at the door. The unique
// index on OrderID enforces exactly one ticket per order.
type Ticket struct {
	ID          string       `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID     string       `gorm:"type:uuid;not null;uniqueIndex" json:"order_id"`
	EventID     string       `gorm:"type:uuid;not null;index" json:"event_id"`
	UserID      string       `gorm:"not null;index" json:"user_id"`
	Code        string       `gorm:"not null;uniqueIndex" json:"code"`
	Status      TicketStatus `gorm:"type:varchar(20);not null;default:'valid'" json:"status"`
	CheckedInAt *time.Time   `json:"checked_in_at,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	Order *Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Event *Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (t *Ticket) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
