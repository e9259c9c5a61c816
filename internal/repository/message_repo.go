package repository

import (
	"context"

	"github.com/CollabR18X/CollabR18X/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	ListByMatch(ctx context.Context, matchID uint) ([]entity.Message, error)
	MarkRead(ctx context.Context, matchID uint, readerID uuid.UUID) error
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// ListByMatch returns messages oldest first, with id breaking created_at ties.
func (r *messageRepository) ListByMatch(ctx context.Context, matchID uint) ([]entity.Message, error) {
	var messages []entity.Message
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkRead flips is_read on every unread message in the match not sent by
// the reader. Repeated calls match zero rows.
func (r *messageRepository) MarkRead(ctx context.Context, matchID uint, readerID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("match_id = ? AND sender_id <> ? AND is_read = false", matchID, readerID).
		Update("is_read", true).
		Error
}
