package models

import "time"

type ReportTargetType string

const (
	ReportTargetRecipe  ReportTargetType = "recipe"
	ReportTargetComment ReportTargetType = "comment"
)

type ReportStatus string

const (
	ReportOpen     ReportStatus = "open"
	ReportResolved ReportStatus = "resolved"
	ReportRemoved  ReportStatus = "removed"
)

type Report struct {
	ID           string           `json:"id"`
	ReporterID   string           `json:"reporterId"`
	TargetType   ReportTargetType `json:"targetType"`
	TargetID     string           `json:"targetId"`
	Reason       string           `json:"reason"`
	Details      string           `json:"details,omitempty"`
	Status       ReportStatus     `json:"status"`
	CreatedAt    time.Time        `json:"createdAt"`
	ReviewedByID string           `json:"reviewedById,omitempty"`
	ReviewedAt   *time.Time       `json:"reviewedAt,omitempty"`
}
