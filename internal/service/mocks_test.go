package service

import (
	"context"
	"time"

	"github.com/CollabR18X/CollabR18X/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

type mockSessionRepo struct{ mock.Mock }

func (m *mockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockSessionRepo) FindByTokenHash(ctx context.Context, hash string) (*entity.Session, error) {
	args := m.Called(ctx, hash)
	session, _ := args.Get(0).(*entity.Session)
	return session, args.Error(1)
}

func (m *mockSessionRepo) DeleteByTokenHash(ctx context.Context, hash string) error {
	return m.Called(ctx, hash).Error(0)
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context, before time.Time) error {
	return m.Called(ctx, before).Error(0)
}

type mockLikeRepo struct{ mock.Mock }

func (m *mockLikeRepo) Create(ctx context.Context, like *entity.Like) error {
	return m.Called(ctx, like).Error(0)
}

func (m *mockLikeRepo) Exists(ctx context.Context, likerID, likedID uuid.UUID) (bool, error) {
	args := m.Called(ctx, likerID, likedID)
	return args.Bool(0), args.Error(1)
}

func (m *mockLikeRepo) ListReceived(ctx context.Context, likedID uuid.UUID) ([]entity.Like, error) {
	args := m.Called(ctx, likedID)
	likes, _ := args.Get(0).([]entity.Like)
	return likes, args.Error(1)
}

type mockMatchRepo struct{ mock.Mock }

func (m *mockMatchRepo) CreateForPair(ctx context.Context, user1ID, user2ID uuid.UUID) (*entity.Match, error) {
	args := m.Called(ctx, user1ID, user2ID)
	match, _ := args.Get(0).(*entity.Match)
	return match, args.Error(1)
}

func (m *mockMatchRepo) FindByID(ctx context.Context, id uint) (*entity.Match, error) {
	args := m.Called(ctx, id)
	match, _ := args.Get(0).(*entity.Match)
	return match, args.Error(1)
}

func (m *mockMatchRepo) FindByPair(ctx context.Context, user1ID, user2ID uuid.UUID) (*entity.Match, error) {
	args := m.Called(ctx, user1ID, user2ID)
	match, _ := args.Get(0).(*entity.Match)
	return match, args.Error(1)
}

func (m *mockMatchRepo) ListActiveForUser(ctx context.Context, userID uuid.UUID) ([]entity.Match, error) {
	args := m.Called(ctx, userID)
	matches, _ := args.Get(0).([]entity.Match)
	return matches, args.Error(1)
}

func (m *mockMatchRepo) Deactivate(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockMessageRepo struct{ mock.Mock }

func (m *mockMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	return m.Called(ctx, message).Error(0)
}

func (m *mockMessageRepo) ListByMatch(ctx context.Context, matchID uint) ([]entity.Message, error) {
	args := m.Called(ctx, matchID)
	messages, _ := args.Get(0).([]entity.Message)
	return messages, args.Error(1)
}

func (m *mockMessageRepo) MarkRead(ctx context.Context, matchID uint, readerID uuid.UUID) error {
	return m.Called(ctx, matchID, readerID).Error(0)
}

type mockBlockRepo struct{ mock.Mock }

func (m *mockBlockRepo) CreateForPair(ctx context.Context, blockerID, blockedID uuid.UUID) (*entity.Block, error) {
	args := m.Called(ctx, blockerID, blockedID)
	block, _ := args.Get(0).(*entity.Block)
	return block, args.Error(1)
}

func (m *mockBlockRepo) FindByID(ctx context.Context, id uint) (*entity.Block, error) {
	args := m.Called(ctx, id)
	block, _ := args.Get(0).(*entity.Block)
	return block, args.Error(1)
}

func (m *mockBlockRepo) FindByPair(ctx context.Context, blockerID, blockedID uuid.UUID) (*entity.Block, error) {
	args := m.Called(ctx, blockerID, blockedID)
	block, _ := args.Get(0).(*entity.Block)
	return block, args.Error(1)
}

func (m *mockBlockRepo) Exists(ctx context.Context, blockerID, blockedID uuid.UUID) (bool, error) {
	args := m.Called(ctx, blockerID, blockedID)
	return args.Bool(0), args.Error(1)
}

func (m *mockBlockRepo) ListByBlocker(ctx context.Context, blockerID uuid.UUID) ([]entity.Block, error) {
	args := m.Called(ctx, blockerID)
	blocks, _ := args.Get(0).([]entity.Block)
	return blocks, args.Error(1)
}

func (m *mockBlockRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockReportRepo struct{ mock.Mock }

func (m *mockReportRepo) Create(ctx context.Context, report *entity.Report) error {
	return m.Called(ctx, report).Error(0)
}

type mockSecurityLogRepo struct{ mock.Mock }

func (m *mockSecurityLogRepo) Log(ctx context.Context, log *entity.SecurityLog) error {
	return m.Called(ctx, log).Error(0)
}

type mockCollabRepo struct{ mock.Mock }

func (m *mockCollabRepo) Create(ctx context.Context, collab *entity.Collaboration) error {
	return m.Called(ctx, collab).Error(0)
}

func (m *mockCollabRepo) FindByID(ctx context.Context, id uint) (*entity.Collaboration, error) {
	args := m.Called(ctx, id)
	collab, _ := args.Get(0).(*entity.Collaboration)
	return collab, args.Error(1)
}

func (m *mockCollabRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]entity.Collaboration, error) {
	args := m.Called(ctx, userID)
	collabs, _ := args.Get(0).([]entity.Collaboration)
	return collabs, args.Error(1)
}

func (m *mockCollabRepo) Update(ctx context.Context, collab *entity.Collaboration) error {
	return m.Called(ctx, collab).Error(0)
}

// permissiveModeration builds a moderation service whose block repo reports
// nothing blocked.
func permissiveModeration() *ModerationService {
	blocks := &mockBlockRepo{}
	blocks.On("Exists", mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Maybe()
	return NewModerationService(blocks, &mockReportRepo{}, nil)
}

type stubLimiter struct {
	allow bool
}

func (s stubLimiter) Allow(string) bool {
	return s.allow
}
