package models

import "time"

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// User identity records are provisioned from the external identity
// provider; the ID is the provider's subject, not generated here.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	Gender    *string   `gorm:"type:varchar(10)" json:"gender,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
