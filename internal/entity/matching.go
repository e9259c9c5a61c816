package entity

import (
	"time"

	"github.com/google/uuid"
)

// Like is a directed, immutable expression of interest. Uniqueness of the
// directed pair is enforced by the engine's pre-check and the index.
type Like struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	LikerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_pair" json:"likerId"`
	LikedID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_pair" json:"likedId"`
	Liker   User      `gorm:"foreignKey:LikerID;constraint:OnDelete:CASCADE" json:"-"`
	Liked   User      `gorm:"foreignKey:LikedID;constraint:OnDelete:CASCADE" json:"-"`

	IsSuperLike bool      `gorm:"not null;default:false" json:"isSuperLike"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Match pairs two mutually-consenting users. Rows are inserted with the
// canonical (min, max) ordering so the unique index makes a concurrent
// second reciprocity attempt a no-op instead of a duplicate. Lookups still
// accept either ordering.
type Match struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	User1ID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_match_pair" json:"user1Id"`
	User2ID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_match_pair" json:"user2Id"`
	User1   User      `gorm:"foreignKey:User1ID;constraint:OnDelete:CASCADE" json:"-"`
	User2   User      `gorm:"foreignKey:User2ID;constraint:OnDelete:CASCADE" json:"-"`

	// IsActive=false is the terminal unmatched state; nothing re-activates it.
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// HasParticipant reports whether userID is one of the pair.
func (m Match) HasParticipant(userID uuid.UUID) bool {
	return m.User1ID == userID || m.User2ID == userID
}

type Message struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MatchID  uint      `gorm:"not null;index" json:"matchId"`
	Match    Match     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	SenderID uuid.UUID `gorm:"type:uuid;not null" json:"senderId"`
	Sender   User      `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"-"`

	Content string `gorm:"type:text;not null" json:"content"`

	// Reserved for client-side encryption; the server never performs
	// cryptographic operations on message bodies.
	IsEncrypted      bool    `gorm:"not null;default:false" json:"isEncrypted"`
	EncryptedContent *string `gorm:"type:text" json:"encryptedContent,omitempty"`
	Nonce            *string `gorm:"type:varchar(255)" json:"nonce,omitempty"`

	IsRead    bool      `gorm:"not null;default:false" json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
