package dto

type CollaborationRequest struct {
	ReceiverID string `json:"receiverId" validate:"required,uuid"`
	Message    string `json:"message" validate:"required"`
}

type CollaborationStatusUpdate struct {
	Status string `json:"status" validate:"required,oneof=accepted declined"`
}
