package entity

import (
	"time"

	"github.com/google/uuid"
)

type CollaborationStatus string

const (
	CollaborationPending  CollaborationStatus = "pending"
	CollaborationAccepted CollaborationStatus = "accepted"
	CollaborationDeclined CollaborationStatus = "declined"
)

// Collaboration is a work request between two creators, gated by the same
// moderation checks as likes.
type Collaboration struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RequesterID uuid.UUID `gorm:"type:uuid;not null" json:"requesterId"`
	ReceiverID  uuid.UUID `gorm:"type:uuid;not null" json:"receiverId"`
	Requester   User      `gorm:"foreignKey:RequesterID;constraint:OnDelete:CASCADE" json:"-"`
	Receiver    User      `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE" json:"-"`

	Status  CollaborationStatus `gorm:"type:varchar(32);not null;default:'pending'" json:"status"`
	Message string              `gorm:"type:text;not null" json:"message"`

	AcknowledgedByRequester bool `gorm:"not null;default:false" json:"acknowledgedByRequester"`
	AcknowledgedByReceiver  bool `gorm:"not null;default:false" json:"acknowledgedByReceiver"`

	CreatedAt time.Time `json:"createdAt"`
}

func (c Collaboration) HasParticipant(userID uuid.UUID) bool {
	return c.RequesterID == userID || c.ReceiverID == userID
}
