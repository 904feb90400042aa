package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	branchModel "educompass_backend/internals/features/main/branches/model"
	courseModel "educompass_backend/internals/features/main/courses/model"
	"educompass_backend/internals/features/main/enrollments/model"
	reportService "educompass_backend/internals/features/finance/reports/service"
)

var (
	ErrAlreadyEnrolled   = errors.New("user is already enrolled in this course")
	ErrInvalidTransition = errors.New("enrollment status does not allow this transition")
	ErrReasonRequired    = errors.New("cancellation reason is required")
	ErrCapacityExceeded  = errors.New("course has no remaining places")
)

// LifecycleService owns the PENDING → CONFIRMED/CANCELED transitions.
// Capacity is adjusted at confirm time only, never at apply time, and
// always through atomic field updates so concurrent confirms on the
// same course serialize at the storage layer.
type LifecycleService struct {
	Recon *reportService.ReconciliationService
}

func NewLifecycleService(recon *reportService.ReconciliationService) *LifecycleService {
	if recon == nil {
		recon = reportService.NewReconciliationService(nil)
	}
	return &LifecycleService{Recon: recon}
}

// Apply creates a PENDING enrollment for (user, course). A second
// apply with the same pair fails with ErrAlreadyEnrolled.
func (s *LifecycleService) Apply(db *gorm.DB, userID, courseID uuid.UUID) (*model.EnrollmentModel, error) {
	var enrollment model.EnrollmentModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var course courseModel.CourseModel
		if err := tx.Where("course_id = ? AND course_is_archived = ?", courseID, false).
			First(&course).Error; err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&model.EnrollmentModel{}).
			Where("enrollment_user_id = ? AND enrollment_course_id = ?", userID, courseID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyEnrolled
		}

		enrollment = model.EnrollmentModel{
			EnrollmentUserID:   userID,
			EnrollmentCourseID: courseID,
			EnrollmentStatus:   model.EnrollmentStatusPending,
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			// two racing applies: the unique (user, course) index
			// catches the one the Count above missed
			if isUniqueViolation(err) {
				return ErrAlreadyEnrolled
			}
			return err
		}

		return s.recomputeForCourse(tx, &course, &enrollment)
	})
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// Confirm moves a PENDING enrollment to CONFIRMED and takes one place:
// booked_places+1 / total_places-1 in a single atomic UPDATE guarded
// against driving total_places negative.
func (s *LifecycleService) Confirm(db *gorm.DB, enrollmentID uuid.UUID) (*model.EnrollmentModel, error) {
	var enrollment model.EnrollmentModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("enrollment_id = ?", enrollmentID).First(&enrollment).Error; err != nil {
			return err
		}
		if enrollment.EnrollmentStatus != model.EnrollmentStatusPending {
			return ErrInvalidTransition
		}

		res := tx.Model(&courseModel.CourseModel{}).
			Where("course_id = ? AND course_total_places >= 1", enrollment.EnrollmentCourseID).
			Updates(map[string]interface{}{
				"course_booked_places": gorm.Expr("course_booked_places + 1"),
				"course_total_places":  gorm.Expr("course_total_places - 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCapacityExceeded
		}

		// the status flip re-checks PENDING in its predicate, so a
		// racing transition loses here and rolls the capacity back
		flip := tx.Model(&model.EnrollmentModel{}).
			Where("enrollment_id = ? AND enrollment_status = ?", enrollmentID, model.EnrollmentStatusPending).
			Updates(map[string]interface{}{
				"enrollment_status":           model.EnrollmentStatusConfirmed,
				"enrollment_cancelled_reason": nil,
			})
		if flip.Error != nil {
			return flip.Error
		}
		if flip.RowsAffected == 0 {
			return ErrInvalidTransition
		}
		enrollment.EnrollmentStatus = model.EnrollmentStatusConfirmed
		enrollment.EnrollmentCancelledReason = nil

		return s.recomputeForEnrollment(tx, &enrollment)
	})
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// Cancel requires a non-blank reason. A CONFIRMED enrollment gives its
// place back (the exact inverse of Confirm); a PENDING one only flips
// status. CANCELED is terminal.
func (s *LifecycleService) Cancel(db *gorm.DB, enrollmentID uuid.UUID, reason string) (*model.EnrollmentModel, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}

	var enrollment model.EnrollmentModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("enrollment_id = ?", enrollmentID).First(&enrollment).Error; err != nil {
			return err
		}
		if enrollment.EnrollmentStatus == model.EnrollmentStatusCanceled {
			return ErrInvalidTransition
		}

		if enrollment.EnrollmentStatus == model.EnrollmentStatusConfirmed {
			res := tx.Model(&courseModel.CourseModel{}).
				Where("course_id = ? AND course_booked_places >= 1", enrollment.EnrollmentCourseID).
				Updates(map[string]interface{}{
					"course_booked_places": gorm.Expr("course_booked_places - 1"),
					"course_total_places":  gorm.Expr("course_total_places + 1"),
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrCapacityExceeded
			}
		}

		// guard on the status we read: if a racing confirm got in
		// between, the capacity reversal above no longer matches and
		// the whole transaction must be retried by the caller
		flip := tx.Model(&model.EnrollmentModel{}).
			Where("enrollment_id = ? AND enrollment_status = ?", enrollmentID, enrollment.EnrollmentStatus).
			Updates(map[string]interface{}{
				"enrollment_status":           model.EnrollmentStatusCanceled,
				"enrollment_cancelled_reason": reason,
			})
		if flip.Error != nil {
			return flip.Error
		}
		if flip.RowsAffected == 0 {
			return ErrInvalidTransition
		}
		enrollment.EnrollmentStatus = model.EnrollmentStatusCanceled
		enrollment.EnrollmentCancelledReason = &reason

		return s.recomputeForEnrollment(tx, &enrollment)
	})
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// isUniqueViolation matches the unique-index errors of both the
// postgres driver and the sqlite driver used in tests.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

func (s *LifecycleService) recomputeForEnrollment(tx *gorm.DB, enrollment *model.EnrollmentModel) error {
	var course courseModel.CourseModel
	if err := tx.Where("course_id = ?", enrollment.EnrollmentCourseID).First(&course).Error; err != nil {
		return err
	}
	return s.recomputeForCourse(tx, &course, enrollment)
}

func (s *LifecycleService) recomputeForCourse(tx *gorm.DB, course *courseModel.CourseModel, enrollment *model.EnrollmentModel) error {
	var branch branchModel.BranchModel
	if err := tx.Where("branch_id = ?", course.CourseBranchID).First(&branch).Error; err != nil {
		return err
	}
	applied := enrollment.EnrollmentAppliedAt.UTC()
	return s.Recon.Recompute(tx, branch.BranchEduCenterID, applied.Year(), int(applied.Month()))
}
