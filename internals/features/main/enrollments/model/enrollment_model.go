package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Status enum (string) ===================== */

const (
	EnrollmentStatusPending   = "PENDING"
	EnrollmentStatusConfirmed = "CONFIRMED"
	EnrollmentStatusCanceled  = "CANCELED"
)

type EnrollmentModel struct {
	EnrollmentID       uuid.UUID `gorm:"column:enrollment_id;type:uuid;primaryKey" json:"enrollment_id"`
	EnrollmentUserID   uuid.UUID `gorm:"column:enrollment_user_id;type:uuid;not null;uniqueIndex:ux_enrollments_user_course" json:"enrollment_user_id"`
	EnrollmentCourseID uuid.UUID `gorm:"column:enrollment_course_id;type:uuid;not null;uniqueIndex:ux_enrollments_user_course;index:idx_enrollments_course_id" json:"enrollment_course_id"`

	EnrollmentAppliedAt time.Time `gorm:"column:enrollment_applied_at;autoCreateTime;index" json:"enrollment_applied_at"`
	EnrollmentStatus    string    `gorm:"column:enrollment_status;type:varchar(10);not null;default:PENDING;index" json:"enrollment_status"`

	// set only on cancellation
	EnrollmentCancelledReason *string `gorm:"column:enrollment_cancelled_reason;type:text" json:"enrollment_cancelled_reason,omitempty"`

	EnrollmentUpdatedAt time.Time `gorm:"column:enrollment_updated_at;autoUpdateTime" json:"enrollment_updated_at"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}

func (m *EnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.EnrollmentID == uuid.Nil {
		m.EnrollmentID = uuid.New()
	}
	return nil
}
