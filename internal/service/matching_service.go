package service

import (
	"context"
	"errors"

	"github.com/CollabR18X/CollabR18X/internal/entity"
	"github.com/CollabR18X/CollabR18X/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchingService drives the like -> mutual-match state machine. A pair of
// users moves NoInteraction -> OneSidedLike -> Matched, and Matched ->
// Unmatched is terminal.
type MatchingService struct {
	likes      repository.LikeRepository
	matches    repository.MatchRepository
	moderation *ModerationService
}

func NewMatchingService(
	likes repository.LikeRepository,
	matches repository.MatchRepository,
	moderation *ModerationService,
) *MatchingService {
	return &MatchingService{likes: likes, matches: matches, moderation: moderation}
}

// CreateLike records liker -> liked and, when the reverse like already
// exists, materializes the match in the same request. The returned match is
// nil while the like is still one-sided.
func (s *MatchingService) CreateLike(ctx context.Context, likerID, likedID uuid.UUID, isSuperLike bool) (*entity.Like, *entity.Match, error) {
	if likerID == likedID {
		return nil, nil, ErrSelfLike
	}

	permitted, err := s.moderation.InteractionPermitted(ctx, likerID, likedID)
	if err != nil {
		return nil, nil, err
	}
	if !permitted {
		return nil, nil, ErrBlocked
	}

	exists, err := s.likes.Exists(ctx, likerID, likedID)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, ErrAlreadyLiked
	}

	like := &entity.Like{LikerID: likerID, LikedID: likedID, IsSuperLike: isSuperLike}
	if err := s.likes.Create(ctx, like); err != nil {
		// Two identical likes racing past the pre-check: the unique pair
		// index rejects the loser, which is a duplicate, not a failure.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, ErrAlreadyLiked
		}
		return nil, nil, err
	}

	reciprocal, err := s.likes.Exists(ctx, likedID, likerID)
	if err != nil {
		return nil, nil, err
	}
	if !reciprocal {
		return like, nil, nil
	}

	// The unique canonical-pair index makes this idempotent when both sides
	// detect reciprocity concurrently.
	match, err := s.matches.CreateForPair(ctx, likerID, likedID)
	if err != nil {
		return nil, nil, err
	}
	return like, match, nil
}

// Pass acknowledges a negative swipe. Passes are not persisted; excluding
// passed profiles from the feed is the client's job.
func (s *MatchingService) Pass(ctx context.Context, userID, passedID uuid.UUID) error {
	if userID == passedID {
		return ErrSelfPass
	}
	return nil
}

func (s *MatchingService) GetLikesReceived(ctx context.Context, userID uuid.UUID) ([]entity.Like, error) {
	return s.likes.ListReceived(ctx, userID)
}

func (s *MatchingService) GetMatches(ctx context.Context, userID uuid.UUID) ([]entity.Match, error) {
	return s.matches.ListActiveForUser(ctx, userID)
}

// GetMatch returns the match only to its participants.
func (s *MatchingService) GetMatch(ctx context.Context, callerID uuid.UUID, matchID uint) (*entity.Match, error) {
	match, err := s.matches.FindByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, ErrMatchNotFound
	}
	if !match.HasParticipant(callerID) {
		return nil, ErrNotParticipant
	}
	return match, nil
}

// Unmatch deactivates the match. Terminal: nothing re-activates a match.
func (s *MatchingService) Unmatch(ctx context.Context, callerID uuid.UUID, matchID uint) error {
	match, err := s.matches.FindByID(ctx, matchID)
	if err != nil {
		return err
	}
	if match == nil {
		return ErrMatchNotFound
	}
	if !match.HasParticipant(callerID) {
		return ErrNotParticipant
	}
	return s.matches.Deactivate(ctx, matchID)
}

// IsUserInMatch is the authorization check run before any match-scoped read
// or write.
func (s *MatchingService) IsUserInMatch(ctx context.Context, userID uuid.UUID, matchID uint) (bool, error) {
	match, err := s.matches.FindByID(ctx, matchID)
	if err != nil {
		return false, err
	}
	if match == nil {
		return false, nil
	}
	return match.HasParticipant(userID), nil
}
