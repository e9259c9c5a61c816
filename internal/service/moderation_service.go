package service

import (
	"context"

	"github.com/CollabR18X/CollabR18X/internal/entity"
	"github.com/CollabR18X/CollabR18X/internal/repository"

	"github.com/google/uuid"
)

// ModerationService answers whether an interaction between two users is
// permitted, and manages the block and report rows behind that answer.
type ModerationService struct {
	blocks       repository.BlockRepository
	reports      repository.ReportRepository
	securityLogs repository.SecurityLogRepository
}

func NewModerationService(
	blocks repository.BlockRepository,
	reports repository.ReportRepository,
	securityLogs repository.SecurityLogRepository,
) *ModerationService {
	return &ModerationService{blocks: blocks, reports: reports, securityLogs: securityLogs}
}

// IsBlocked reports whether a directed block a->b exists.
func (s *ModerationService) IsBlocked(ctx context.Context, a, b uuid.UUID) (bool, error) {
	return s.blocks.Exists(ctx, a, b)
}

// InteractionPermitted is the gate consulted before likes and collaboration
// requests: a block in either direction vetoes the interaction.
func (s *ModerationService) InteractionPermitted(ctx context.Context, a, b uuid.UUID) (bool, error) {
	blocked, err := s.blocks.Exists(ctx, a, b)
	if err != nil || blocked {
		return false, err
	}
	blocked, err = s.blocks.Exists(ctx, b, a)
	if err != nil {
		return false, err
	}
	return !blocked, nil
}

// BlockUser is idempotent: repeating a block returns the existing row.
func (s *ModerationService) BlockUser(ctx context.Context, blockerID, blockedID uuid.UUID) (*entity.Block, error) {
	if blockerID == blockedID {
		return nil, ErrSelfBlock
	}

	block, err := s.blocks.CreateForPair(ctx, blockerID, blockedID)
	if err != nil {
		return nil, err
	}
	s.logAction(ctx, blockerID, entity.UserBlocked)
	return block, nil
}

func (s *ModerationService) ListBlocks(ctx context.Context, blockerID uuid.UUID) ([]entity.Block, error) {
	return s.blocks.ListByBlocker(ctx, blockerID)
}

// Unblock removes a block owned by callerID. Removing someone else's block
// is an authorization failure, not a not-found.
func (s *ModerationService) Unblock(ctx context.Context, callerID uuid.UUID, blockID uint) error {
	block, err := s.blocks.FindByID(ctx, blockID)
	if err != nil {
		return err
	}
	if block == nil {
		return ErrBlockNotFound
	}
	if block.BlockerID != callerID {
		return ErrNotParticipant
	}
	return s.blocks.Delete(ctx, blockID)
}

func (s *ModerationService) ReportUser(ctx context.Context, reporterID, reportedID uuid.UUID, reason string, description *string) (*entity.Report, error) {
	if reporterID == reportedID {
		return nil, ErrSelfReport
	}
	if reason == "" {
		return nil, ErrInvalidInput
	}

	report := &entity.Report{
		ReporterID:  reporterID,
		ReportedID:  reportedID,
		Reason:      reason,
		Description: description,
		Status:      entity.ReportPending,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, err
	}
	s.logAction(ctx, reporterID, entity.UserReported)
	return report, nil
}

func (s *ModerationService) logAction(ctx context.Context, userID uuid.UUID, action entity.SecurityAction) {
	if s.securityLogs == nil {
		return
	}
	_ = s.securityLogs.Log(ctx, &entity.SecurityLog{UserID: &userID, Action: action})
}
