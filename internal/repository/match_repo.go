package repository

import (
	"context"
	"errors"

	"github.com/CollabR18X/CollabR18X/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MatchRepository interface {
	CreateForPair(ctx context.Context, user1ID, user2ID uuid.UUID) (*entity.Match, error)
	FindByID(ctx context.Context, id uint) (*entity.Match, error)
	FindByPair(ctx context.Context, user1ID, user2ID uuid.UUID) (*entity.Match, error)
	ListActiveForUser(ctx context.Context, userID uuid.UUID) ([]entity.Match, error)
	Deactivate(ctx context.Context, id uint) error
}

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

// CreateForPair inserts the match with the pair in canonical order under the
// unique pair index, using ON CONFLICT DO NOTHING so two requests detecting
// reciprocity at the same instant converge on a single row. The winning row
// is fetched afterwards either way.
func (r *matchRepository) CreateForPair(ctx context.Context, user1ID, user2ID uuid.UUID) (*entity.Match, error) {
	a, b := canonicalPair(user1ID, user2ID)
	match := entity.Match{User1ID: a, User2ID: b, IsActive: true}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&match).Error
	if err != nil {
		return nil, err
	}
	return r.FindByPair(ctx, a, b)
}

func (r *matchRepository) FindByID(ctx context.Context, id uint) (*entity.Match, error) {
	var match entity.Match
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&match).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &match, err
}

// FindByPair accepts the pair in either order.
func (r *matchRepository) FindByPair(ctx context.Context, user1ID, user2ID uuid.UUID) (*entity.Match, error) {
	var match entity.Match
	err := r.db.WithContext(ctx).
		Where("(user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)",
			user1ID, user2ID, user2ID, user1ID).
		First(&match).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &match, err
}

func (r *matchRepository) ListActiveForUser(ctx context.Context, userID uuid.UUID) ([]entity.Match, error) {
	var matches []entity.Match
	err := r.db.WithContext(ctx).
		Where("(user1_id = ? OR user2_id = ?) AND is_active = true", userID, userID).
		Order("created_at DESC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) Deactivate(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&entity.Match{}).
		Where("id = ?", id).
		Update("is_active", false).
		Error
}

func canonicalPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if a.String() > b.String() {
		return b, a
	}
	return a, b
}
