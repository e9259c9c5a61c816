package dto

import "github.com/CollabR18X/CollabR18X/internal/entity"

type LikeRequest struct {
	LikedID     string `json:"likedId" validate:"required,uuid"`
	IsSuperLike bool   `json:"isSuperLike"`
}

type PassRequest struct {
	PassedID string `json:"passedId" validate:"required,uuid"`
}

// MatchedLikeResponse is returned when a like closes the loop and creates a
// match.
type MatchedLikeResponse struct {
	Match *entity.Match `json:"match"`
	Like  *entity.Like  `json:"like"`
}

type MessageRequest struct {
	Content string `json:"content" validate:"required"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
