package repository

import (
	"context"

	"github.com/CollabR18X/CollabR18X/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LikeRepository interface {
	Create(ctx context.Context, like *entity.Like) error
	Exists(ctx context.Context, likerID, likedID uuid.UUID) (bool, error)
	ListReceived(ctx context.Context, likedID uuid.UUID) ([]entity.Like, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *likeRepository) Exists(ctx context.Context, likerID, likedID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Like{}).
		Where("liker_id = ? AND liked_id = ?", likerID, likedID).
		Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) ListReceived(ctx context.Context, likedID uuid.UUID) ([]entity.Like, error) {
	var likes []entity.Like
	err := r.db.WithContext(ctx).
		Where("liked_id = ?", likedID).
		Order("created_at DESC").
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return likes, nil
}
