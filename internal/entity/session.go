package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is an opaque server-side login session. The raw token handed to
// the client is a pure lookup key; only its hash is stored.
type Session struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	User   User      `gorm:"constraint:OnDelete:CASCADE"`

	TokenHash string `gorm:"type:text;not null;index"`

	ExpiresAt time.Time
	CreatedAt time.Time
}
