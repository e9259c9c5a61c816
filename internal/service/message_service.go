package service

import (
	"context"
	"strings"

	"github.com/CollabR18X/CollabR18X/internal/entity"
	"github.com/CollabR18X/CollabR18X/internal/repository"

	"github.com/google/uuid"
)

// SendLimiter throttles message sends per sender.
type SendLimiter interface {
	Allow(key string) bool
}

type MessageService struct {
	messages repository.MessageRepository
	matches  repository.MatchRepository
	limiter  SendLimiter
}

func NewMessageService(
	messages repository.MessageRepository,
	matches repository.MatchRepository,
	limiter SendLimiter,
) *MessageService {
	return &MessageService{messages: messages, matches: matches, limiter: limiter}
}

// Send appends a message to an active match. Preconditions run in order and
// the first failure wins: rate limit, match exists, match active, sender is
// a participant.
func (s *MessageService) Send(ctx context.Context, matchID uint, senderID uuid.UUID, content string) (*entity.Message, error) {
	if s.limiter != nil && !s.limiter.Allow(senderID.String()) {
		return nil, ErrRateLimited
	}

	match, err := s.matches.FindByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}
	if !match.IsActive {
		return nil, ErrMatchInactive
	}
	if !match.HasParticipant(senderID) {
		return nil, ErrNotParticipant
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrInvalidInput
	}

	message := &entity.Message{
		MatchID:  matchID,
		SenderID: senderID,
		Content:  content,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// GetMessages returns the match's messages oldest first. Callers must have
// passed the participant check already.
func (s *MessageService) GetMessages(ctx context.Context, matchID uint) ([]entity.Message, error) {
	return s.messages.ListByMatch(ctx, matchID)
}

// MarkRead flips is_read on every unread message sent by the counterpart.
// Idempotent.
func (s *MessageService) MarkRead(ctx context.Context, matchID uint, readerID uuid.UUID) error {
	return s.messages.MarkRead(ctx, matchID, readerID)
}
