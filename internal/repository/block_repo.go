package repository

import (
	"context"
	"errors"

	"github.com/CollabR18X/CollabR18X/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BlockRepository interface {
	CreateForPair(ctx context.Context, blockerID, blockedID uuid.UUID) (*entity.Block, error)
	FindByID(ctx context.Context, id uint) (*entity.Block, error)
	FindByPair(ctx context.Context, blockerID, blockedID uuid.UUID) (*entity.Block, error)
	Exists(ctx context.Context, blockerID, blockedID uuid.UUID) (bool, error)
	ListByBlocker(ctx context.Context, blockerID uuid.UUID) ([]entity.Block, error)
	Delete(ctx context.Context, id uint) error
}

type blockRepository struct {
	db *gorm.DB
}

func NewBlockRepository(db *gorm.DB) BlockRepository {
	return &blockRepository{db: db}
}

// CreateForPair inserts the directed block under the unique pair index with
// ON CONFLICT DO NOTHING, so repeating a block converges on the existing
// row instead of erroring.
func (r *blockRepository) CreateForPair(ctx context.Context, blockerID, blockedID uuid.UUID) (*entity.Block, error) {
	block := entity.Block{BlockerID: blockerID, BlockedID: blockedID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&block).Error
	if err != nil {
		return nil, err
	}
	return r.FindByPair(ctx, blockerID, blockedID)
}

func (r *blockRepository) FindByID(ctx context.Context, id uint) (*entity.Block, error) {
	var block entity.Block
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&block).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &block, err
}

func (r *blockRepository) FindByPair(ctx context.Context, blockerID, blockedID uuid.UUID) (*entity.Block, error) {
	var block entity.Block
	err := r.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		First(&block).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &block, err
}

func (r *blockRepository) Exists(ctx context.Context, blockerID, blockedID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Block{}).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Count(&count).Error
	return count > 0, err
}

func (r *blockRepository) ListByBlocker(ctx context.Context, blockerID uuid.UUID) ([]entity.Block, error) {
	var blocks []entity.Block
	err := r.db.WithContext(ctx).
		Where("blocker_id = ?", blockerID).
		Order("created_at DESC").
		Find(&blocks).Error
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *blockRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.Block{}).
		Error
}
