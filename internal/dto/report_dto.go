package dto

import "github.com/recipeshare/server/internal/models"

type ReportCreate struct {
	TargetType models.ReportTargetType `json:"targetType" validate:"required,oneof=recipe comment"`
	TargetID   string                  `json:"targetId" validate:"required"`
	Reason     string                  `json:"reason" validate:"required"`
	Details    string                  `json:"details"`
}

// ModerationQueueQuery filters the moderation queue. Type "report" (or empty)
// means no target-type filter.
type ModerationQueueQuery struct {
	Page     int
	PageSize int
	Type     string
	Status   models.ReportStatus
}
