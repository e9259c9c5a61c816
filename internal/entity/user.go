package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash *string   `gorm:"type:text" json:"-"`

	FirstName       string  `gorm:"type:varchar(100)" json:"firstName"`
	LastName        string  `gorm:"type:varchar(100)" json:"lastName"`
	DisplayName     *string `gorm:"type:varchar(100)" json:"displayName,omitempty"`
	ProfileImageURL *string `gorm:"type:text" json:"profileImageUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Sessions []Session `json:"-"`
}
