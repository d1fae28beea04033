package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Order is a payment attempt. PaymentSessionID is the external
// gateway's session handle; it is set after the session is opened.
type Order struct {
	ID               string        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           string        `gorm:"not null;index" json:"user_id"`
	TotalAmount      float64       `gorm:"not null" json:"total_amount"`
	PaymentStatus    PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	PaymentSessionID string        `gorm:"index" json:"payment_session_id,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
