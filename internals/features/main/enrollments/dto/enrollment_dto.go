package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CancelEnrollmentRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

// AppliedStudentResponse is one row of the admin applications table.
type AppliedStudentResponse struct {
	EnrollmentID     uuid.UUID       `gorm:"column:enrollment_id" json:"enrollment_id"`
	EnrollmentStatus string          `gorm:"column:enrollment_status" json:"status"`
	AppliedAt        time.Time       `gorm:"column:applied_at" json:"applied_at"`
	CancelledReason  *string         `gorm:"column:cancelled_reason" json:"cancelled_reason,omitempty"`
	StudentID        uuid.UUID       `gorm:"column:student_id" json:"student_id"`
	StudentFullName  string          `gorm:"column:student_full_name" json:"student_full_name"`
	StudentPhone     *string         `gorm:"column:student_phone" json:"student_phone,omitempty"`
	CourseID         uuid.UUID       `gorm:"column:course_id" json:"course_id"`
	CourseName       string          `gorm:"column:course_name" json:"course_name"`
	CoursePrice      decimal.Decimal `gorm:"column:course_price" json:"course_price"`
	BranchID         uuid.UUID       `gorm:"column:branch_id" json:"branch_id"`
	BranchName       string          `gorm:"column:branch_name" json:"branch_name"`
}

// TrendBucket carries the 30-day movement for one status slice.
type TrendBucket struct {
	Count      int64   `json:"count"`
	Past30Days int64   `json:"past_30_days"`
	Prev30Days int64   `json:"prev_30_days"`
	PctChange  float64 `json:"pct_change"`
}

type EnrollmentStatsResponse struct {
	Total     TrendBucket `json:"total"`
	Confirmed TrendBucket `json:"confirmed"`
	Pending   TrendBucket `json:"pending"`
	Canceled  TrendBucket `json:"canceled"`
}
