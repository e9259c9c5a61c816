package service

import (
	"context"
	"strings"

	"github.com/CollabR18X/CollabR18X/internal/entity"
	"github.com/CollabR18X/CollabR18X/internal/repository"

	"github.com/google/uuid"
)

type CollaborationService struct {
	collaborations repository.CollaborationRepository
	moderation     *ModerationService
}

func NewCollaborationService(
	collaborations repository.CollaborationRepository,
	moderation *ModerationService,
) *CollaborationService {
	return &CollaborationService{collaborations: collaborations, moderation: moderation}
}

// Create sends a collaboration request, gated the same way as likes.
func (s *CollaborationService) Create(ctx context.Context, requesterID, receiverID uuid.UUID, message string) (*entity.Collaboration, error) {
	if requesterID == receiverID {
		return nil, ErrSelfCollaborate
	}
	if strings.TrimSpace(message) == "" {
		return nil, ErrInvalidInput
	}

	permitted, err := s.moderation.InteractionPermitted(ctx, requesterID, receiverID)
	if err != nil {
		return nil, err
	}
	if !permitted {
		return nil, ErrBlocked
	}

	collab := &entity.Collaboration{
		RequesterID: requesterID,
		ReceiverID:  receiverID,
		Message:     message,
		Status:      entity.CollaborationPending,
	}
	if err := s.collaborations.Create(ctx, collab); err != nil {
		return nil, err
	}
	return collab, nil
}

func (s *CollaborationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]entity.Collaboration, error) {
	return s.collaborations.ListForUser(ctx, userID)
}

// UpdateStatus lets the receiver accept or decline a pending request.
func (s *CollaborationService) UpdateStatus(ctx context.Context, callerID uuid.UUID, collabID uint, status entity.CollaborationStatus) (*entity.Collaboration, error) {
	if status != entity.CollaborationAccepted && status != entity.CollaborationDeclined {
		return nil, ErrInvalidStatus
	}

	collab, err := s.collaborations.FindByID(ctx, collabID)
	if err != nil {
		return nil, err
	}
	if collab == nil {
		return nil, ErrCollabNotFound
	}
	if !collab.HasParticipant(callerID) {
		return nil, ErrNotParticipant
	}

	collab.Status = status
	if err := s.collaborations.Update(ctx, collab); err != nil {
		return nil, err
	}
	return collab, nil
}

// Acknowledge records that a participant has seen the current state.
func (s *CollaborationService) Acknowledge(ctx context.Context, callerID uuid.UUID, collabID uint) (*entity.Collaboration, error) {
	collab, err := s.collaborations.FindByID(ctx, collabID)
	if err != nil {
		return nil, err
	}
	if collab == nil {
		return nil, ErrCollabNotFound
	}
	if !collab.HasParticipant(callerID) {
		return nil, ErrNotParticipant
	}

	if collab.RequesterID == callerID {
		collab.AcknowledgedByRequester = true
	} else {
		collab.AcknowledgedByReceiver = true
	}
	if err := s.collaborations.Update(ctx, collab); err != nil {
		return nil, err
	}
	return collab, nil
}
