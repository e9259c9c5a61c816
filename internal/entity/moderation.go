package entity

import (
	"time"

	"github.com/google/uuid"
)

// Block is a directed veto: blocker_id refuses interaction with blocked_id.
// Removable only by explicit unblock.
type Block struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	BlockerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_block_pair" json:"blockerId"`
	BlockedID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_block_pair" json:"blockedId"`
	Blocker   User      `gorm:"foreignKey:BlockerID;constraint:OnDelete:CASCADE" json:"-"`
	Blocked   User      `gorm:"foreignKey:BlockedID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportReviewed ReportStatus = "reviewed"
	ReportResolved ReportStatus = "resolved"
)

type Report struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ReporterID uuid.UUID `gorm:"type:uuid;not null" json:"reporterId"`
	ReportedID uuid.UUID `gorm:"type:uuid;not null" json:"reportedId"`
	Reporter   User      `gorm:"foreignKey:ReporterID;constraint:OnDelete:CASCADE" json:"-"`
	Reported   User      `gorm:"foreignKey:ReportedID;constraint:OnDelete:CASCADE" json:"-"`

	Reason      string       `gorm:"type:varchar(255);not null" json:"reason"`
	Description *string      `gorm:"type:text" json:"description,omitempty"`
	Status      ReportStatus `gorm:"type:varchar(32);not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}
