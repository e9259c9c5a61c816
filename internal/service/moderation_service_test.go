package service

import (
	"context"
	"testing"

	"github.com/CollabR18X/CollabR18X/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBlockUserRejectsSelf(t *testing.T) {
	ctx := context.Background()
	blocks := &mockBlockRepo{}
	svc := NewModerationService(blocks, &mockReportRepo{}, nil)
	userID := uuid.New()

	_, err := svc.BlockUser(ctx, userID, userID)

	assert.ErrorIs(t, err, ErrSelfBlock)
	blocks.AssertNotCalled(t, "CreateForPair", mock.Anything, mock.Anything, mock.Anything)
}

func TestBlockUserPersists(t *testing.T) {
	ctx := context.Background()
	blocks := &mockBlockRepo{}
	logs := &mockSecurityLogRepo{}
	svc := NewModerationService(blocks, &mockReportRepo{}, logs)
	blocker := uuid.New()
	blocked := uuid.New()

	blocks.On("CreateForPair", ctx, blocker, blocked).
		Return(&entity.Block{ID: 1, BlockerID: blocker, BlockedID: blocked}, nil).Once()
	logs.On("Log", ctx, mock.AnythingOfType("*entity.SecurityLog")).Return(nil).Once()

	block, err := svc.BlockUser(ctx, blocker, blocked)

	assert.NoError(t, err)
	assert.Equal(t, blocker, block.BlockerID)
	assert.Equal(t, blocked, block.BlockedID)
}

// Blocking the same user twice is an ordinary client action and converges
// on the existing row; it never surfaces as a storage failure.
func TestBlockUserRepeatIsIdempotent(t *testing.T) {
	ctx := context.Background()
	blocks := &mockBlockRepo{}
	svc := NewModerationService(blocks, &mockReportRepo{}, nil)
	blocker := uuid.New()
	blocked := uuid.New()

	existing := &entity.Block{ID: 7, BlockerID: blocker, BlockedID: blocked}
	blocks.On("CreateForPair", ctx, blocker, blocked).Return(existing, nil).Twice()

	first, err := svc.BlockUser(ctx, blocker, blocked)
	assert.NoError(t, err)
	second, err := svc.BlockUser(ctx, blocker, blocked)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	blocks.AssertExpectations(t)
}

func TestIsBlockedIsDirected(t *testing.T) {
	ctx := context.Background()
	blocks := &mockBlockRepo{}
	svc := NewModerationService(blocks, &mockReportRepo{}, nil)
	a := uuid.New()
	b := uuid.New()

	blocks.On("Exists", ctx, a, b).Return(true, nil)
	blocks.On("Exists", ctx, b, a).Return(false, nil)

	got, err := svc.IsBlocked(ctx, a, b)
	assert.NoError(t, err)
	assert.True(t, got)

	got, err = svc.IsBlocked(ctx, b, a)
	assert.NoError(t, err)
	assert.False(t, got)
}

func TestInteractionPermittedChecksBothDirections(t *testing.T) {
	ctx := context.Background()
	a := uuid.New()
	b := uuid.New()

	cases := []struct {
		name      string
		aBlocksB  bool
		bBlocksA  bool
		permitted bool
	}{
		{"no blocks", false, false, true},
		{"forward block", true, false, false},
		{"reverse block", false, true, false},
		{"mutual block", true, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			blocks := &mockBlockRepo{}
			blocks.On("Exists", ctx, a, b).Return(tc.aBlocksB, nil).Maybe()
			blocks.On("Exists", ctx, b, a).Return(tc.bBlocksA, nil).Maybe()
			svc := NewModerationService(blocks, &mockReportRepo{}, nil)

			permitted, err := svc.InteractionPermitted(ctx, a, b)

			assert.NoError(t, err)
			assert.Equal(t, tc.permitted, permitted)
		})
	}
}

func TestUnblockByOwner(t *testing.T) {
	ctx := context.Background()
	blocks := &mockBlockRepo{}
	svc := NewModerationService(blocks, &mockReportRepo{}, nil)
	owner := uuid.New()

	blocks.On("FindByID", ctx, uint(3)).Return(&entity.Block{ID: 3, BlockerID: owner, BlockedID: uuid.New()}, nil).Once()
	blocks.On("Delete", ctx, uint(3)).Return(nil).Once()

	assert.NoError(t, svc.Unblock(ctx, owner, 3))
	blocks.AssertExpectations(t)
}

func TestUnblockNonOwnerRejected(t *testing.T) {
	ctx := context.Background()
	blocks := &mockBlockRepo{}
	svc := NewModerationService(blocks, &mockReportRepo{}, nil)

	blocks.On("FindByID", ctx, uint(3)).Return(&entity.Block{ID: 3, BlockerID: uuid.New()}, nil).Once()

	err := svc.Unblock(ctx, uuid.New(), 3)

	assert.ErrorIs(t, err, ErrNotParticipant)
	blocks.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUnblockMissingBlock(t *testing.T) {
	ctx := context.Background()
	blocks := &mockBlockRepo{}
	svc := NewModerationService(blocks, &mockReportRepo{}, nil)

	blocks.On("FindByID", ctx, uint(404)).Return(nil, nil).Once()

	assert.ErrorIs(t, svc.Unblock(ctx, uuid.New(), 404), ErrBlockNotFound)
}

func TestReportUser(t *testing.T) {
	ctx := context.Background()
	reports := &mockReportRepo{}
	svc := NewModerationService(&mockBlockRepo{}, reports, nil)
	reporter := uuid.New()
	reported := uuid.New()

	reports.On("Create", ctx, mock.AnythingOfType("*entity.Report")).Return(nil).Once()

	report, err := svc.ReportUser(ctx, reporter, reported, "spam", nil)

	assert.NoError(t, err)
	assert.Equal(t, entity.ReportPending, report.Status)
	assert.Equal(t, "spam", report.Reason)
}

func TestReportUserRejectsSelfAndEmptyReason(t *testing.T) {
	ctx := context.Background()
	svc := NewModerationService(&mockBlockRepo{}, &mockReportRepo{}, nil)
	userID := uuid.New()

	_, err := svc.ReportUser(ctx, userID, userID, "spam", nil)
	assert.ErrorIs(t, err, ErrSelfReport)

	_, err = svc.ReportUser(ctx, userID, uuid.New(), "", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
