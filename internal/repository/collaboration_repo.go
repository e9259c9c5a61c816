package repository

import (
	"context"
	"errors"

	"github.com/CollabR18X/CollabR18X/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CollaborationRepository interface {
	Create(ctx context.Context, collab *entity.Collaboration) error
	FindByID(ctx context.Context, id uint) (*entity.Collaboration, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]entity.Collaboration, error)
	Update(ctx context.Context, collab *entity.Collaboration) error
}

type collaborationRepository struct {
	db *gorm.DB
}

func NewCollaborationRepository(db *gorm.DB) CollaborationRepository {
	return &collaborationRepository{db: db}
}

func (r *collaborationRepository) Create(ctx context.Context, collab *entity.Collaboration) error {
	return r.db.WithContext(ctx).Create(collab).Error
}

func (r *collaborationRepository) FindByID(ctx context.Context, id uint) (*entity.Collaboration, error) {
	var collab entity.Collaboration
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&collab).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &collab, err
}

func (r *collaborationRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]entity.Collaboration, error) {
	var collabs []entity.Collaboration
	err := r.db.WithContext(ctx).
		Where("requester_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&collabs).Error
	if err != nil {
		return nil, err
	}
	return collabs, nil
}

func (r *collaborationRepository) Update(ctx context.Context, collab *entity.Collaboration) error {
	return r.db.WithContext(ctx).Save(collab).Error
}
