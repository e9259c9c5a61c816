package dto

type BlockRequest struct {
	BlockedID string `json:"blockedId" validate:"required,uuid"`
}

type ReportRequest struct {
	ReportedID  string  `json:"reportedId" validate:"required,uuid"`
	Reason      string  `json:"reason" validate:"required"`
	Description *string `json:"description,omitempty"`
}
