package service

import (
	"context"
	"testing"

	"github.com/CollabR18X/CollabR18X/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func activeMatch(id uint) *entity.Match {
	return &entity.Match{ID: id, User1ID: uuid.New(), User2ID: uuid.New(), IsActive: true}
}

func TestSendPersistsMessage(t *testing.T) {
	ctx := context.Background()
	messages := &mockMessageRepo{}
	matches := &mockMatchRepo{}
	svc := NewMessageService(messages, matches, stubLimiter{allow: true})

	match := activeMatch(5)
	matches.On("FindByID", ctx, uint(5)).Return(match, nil).Once()
	messages.On("Create", ctx, mock.AnythingOfType("*entity.Message")).Return(nil).Once()

	msg, err := svc.Send(ctx, 5, match.User1ID, "hey, loved your last drop")

	assert.NoError(t, err)
	assert.Equal(t, uint(5), msg.MatchID)
	assert.Equal(t, match.User1ID, msg.SenderID)
	assert.Equal(t, "hey, loved your last drop", msg.Content)
	assert.False(t, msg.IsRead)
}

// The rate limit is checked before the match is even looked up, so a
// throttled sender learns nothing about the target match.
func TestSendRateLimitedFirst(t *testing.T) {
	ctx := context.Background()
	messages := &mockMessageRepo{}
	matches := &mockMatchRepo{}
	svc := NewMessageService(messages, matches, stubLimiter{allow: false})

	_, err := svc.Send(ctx, 5, uuid.New(), "hello")

	assert.ErrorIs(t, err, ErrRateLimited)
	matches.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	messages.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSendMatchNotFound(t *testing.T) {
	ctx := context.Background()
	matches := &mockMatchRepo{}
	svc := NewMessageService(&mockMessageRepo{}, matches, stubLimiter{allow: true})

	matches.On("FindByID", ctx, uint(99)).Return(nil, nil).Once()

	_, err := svc.Send(ctx, 99, uuid.New(), "hello")

	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestSendInactiveMatch(t *testing.T) {
	ctx := context.Background()
	matches := &mockMatchRepo{}
	svc := NewMessageService(&mockMessageRepo{}, matches, stubLimiter{allow: true})

	match := activeMatch(5)
	match.IsActive = false
	matches.On("FindByID", ctx, uint(5)).Return(match, nil).Once()

	_, err := svc.Send(ctx, 5, match.User1ID, "hello")

	assert.ErrorIs(t, err, ErrMatchInactive)
}

func TestSendOutsiderRejected(t *testing.T) {
	ctx := context.Background()
	messages := &mockMessageRepo{}
	matches := &mockMatchRepo{}
	svc := NewMessageService(messages, matches, stubLimiter{allow: true})

	matches.On("FindByID", ctx, uint(5)).Return(activeMatch(5), nil).Once()

	_, err := svc.Send(ctx, 5, uuid.New(), "hello")

	assert.ErrorIs(t, err, ErrNotParticipant)
	messages.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSendRejectsBlankContent(t *testing.T) {
	ctx := context.Background()
	messages := &mockMessageRepo{}
	matches := &mockMatchRepo{}
	svc := NewMessageService(messages, matches, stubLimiter{allow: true})

	match := activeMatch(5)
	matches.On("FindByID", ctx, uint(5)).Return(match, nil)

	for _, content := range []string{"", "   ", "\n\t"} {
		_, err := svc.Send(ctx, 5, match.User1ID, content)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
	messages.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSendWithoutLimiter(t *testing.T) {
	ctx := context.Background()
	messages := &mockMessageRepo{}
	matches := &mockMatchRepo{}
	svc := NewMessageService(messages, matches, nil)

	match := activeMatch(5)
	matches.On("FindByID", ctx, uint(5)).Return(match, nil).Once()
	messages.On("Create", ctx, mock.Anything).Return(nil).Once()

	_, err := svc.Send(ctx, 5, match.User1ID, "hello")

	assert.NoError(t, err)
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()
	messages := &mockMessageRepo{}
	svc := NewMessageService(messages, &mockMatchRepo{}, stubLimiter{allow: true})
	reader := uuid.New()

	messages.On("MarkRead", ctx, uint(5), reader).Return(nil).Twice()

	assert.NoError(t, svc.MarkRead(ctx, 5, reader))
	assert.NoError(t, svc.MarkRead(ctx, 5, reader))
	messages.AssertExpectations(t)
}
