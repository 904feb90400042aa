package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educompass_backend/internals/constants"
	"educompass_backend/internals/features/main/enrollments/dto"
	"educompass_backend/internals/features/main/enrollments/model"
	"educompass_backend/internals/features/main/enrollments/service"
	helper "educompass_backend/internals/helpers"
)

type EnrollmentController struct {
	DB        *gorm.DB
	Lifecycle *service.LifecycleService
	Clock     helper.Clock
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{
		DB:        db,
		Lifecycle: service.NewLifecycleService(nil),
		Clock:     helper.RealClock{},
	}
}

// scopedQuery narrows enrollments to the caller's tenant: a branch
// admin sees their branch, a center owner the whole center, a
// superuser everything.
func (ctrl *EnrollmentController) scopedQuery(c *fiber.Ctx) (*gorm.DB, error) {
	q := ctrl.DB.Table("enrollments").
		Joins("JOIN courses ON courses.course_id = enrollments.enrollment_course_id").
		Joins("JOIN branches ON branches.branch_id = courses.course_branch_id")

	switch helper.GetRoleFromToken(c) {
	case constants.RoleSuperuser:
		return q, nil
	case constants.RoleBranch:
		branchID, err := helper.GetBranchIDFromToken(c)
		if err != nil {
			return nil, err
		}
		return q.Where("courses.course_branch_id = ?", branchID), nil
	case constants.RoleEduCenter:
		centerID, err := helper.GetEduCenterIDFromToken(c)
		if err != nil {
			return nil, err
		}
		return q.Where("branches.branch_edu_center_id = ?", centerID), nil
	default:
		return nil, fiber.NewError(fiber.StatusForbidden, "Not allowed")
	}
}

// inScope re-checks tenant ownership for a single enrollment before a
// confirm/cancel mutation.
func (ctrl *EnrollmentController) inScope(c *fiber.Ctx, enrollmentID uuid.UUID) (bool, error) {
	q, err := ctrl.scopedQuery(c)
	if err != nil {
		return false, err
	}
	var count int64
	if err := q.Where("enrollments.enrollment_id = ?", enrollmentID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// =======================
// APPLIED STUDENTS (admin table)
// =======================
func (ctrl *EnrollmentController) GetAppliedStudents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q, err := ctrl.scopedQuery(c)
	if err != nil {
		return err
	}

	if status := strings.ToUpper(strings.TrimSpace(c.Query("status"))); status != "" {
		q = q.Where("enrollments.enrollment_status = ?", status)
	}
	if course := strings.TrimSpace(c.Query("course")); course != "" {
		if id, err := uuid.Parse(course); err == nil {
			q = q.Where("enrollments.enrollment_course_id = ?", id)
		}
	}
	if branch := strings.TrimSpace(c.Query("branch")); branch != "" {
		if id, err := uuid.Parse(branch); err == nil {
			q = q.Where("courses.course_branch_id = ?", id)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count applications")
	}

	var rows []dto.AppliedStudentResponse
	if err := q.
		Joins("JOIN users ON users.user_id = enrollments.enrollment_user_id").
		Select(`enrollments.enrollment_id AS enrollment_id,
			enrollments.enrollment_status AS enrollment_status,
			enrollments.enrollment_applied_at AS applied_at,
			enrollments.enrollment_cancelled_reason AS cancelled_reason,
			users.user_id AS student_id,
			users.user_full_name AS student_full_name,
			users.user_phone_number AS student_phone,
			courses.course_id AS course_id,
			courses.course_name AS course_name,
			courses.course_price AS course_price,
			branches.branch_id AS branch_id,
			branches.branch_name AS branch_name`).
		Order("enrollments.enrollment_applied_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch applications")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", rows, &pagination)
}

// =======================
// STATS (30-day trend per status)
// =======================
func (ctrl *EnrollmentController) GetStats(c *fiber.Ctx) error {
	now := ctrl.Clock.Now().UTC()
	past30 := now.AddDate(0, 0, -30)
	prev30 := now.AddDate(0, 0, -60)

	bucket := func(status string) (dto.TrendBucket, error) {
		var b dto.TrendBucket

		base := func() (*gorm.DB, error) {
			q, err := ctrl.scopedQuery(c)
			if err != nil {
				return nil, err
			}
			if status != "" {
				q = q.Where("enrollments.enrollment_status = ?", status)
			}
			return q, nil
		}

		q, err := base()
		if err != nil {
			return b, err
		}
		if err := q.Count(&b.Count).Error; err != nil {
			return b, err
		}

		q, _ = base()
		if err := q.Where("enrollments.enrollment_applied_at >= ?", past30).Count(&b.Past30Days).Error; err != nil {
			return b, err
		}

		q, _ = base()
		if err := q.Where("enrollments.enrollment_applied_at >= ? AND enrollments.enrollment_applied_at < ?", prev30, past30).
			Count(&b.Prev30Days).Error; err != nil {
			return b, err
		}

		if b.Prev30Days > 0 {
			b.PctChange = float64(b.Past30Days-b.Prev30Days) / float64(b.Prev30Days) * 100
		} else if b.Past30Days > 0 {
			b.PctChange = 100
		}
		return b, nil
	}

	var resp dto.EnrollmentStatsResponse
	var err error
	if resp.Total, err = bucket(""); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	if resp.Confirmed, err = bucket(model.EnrollmentStatusConfirmed); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	if resp.Pending, err = bucket(model.EnrollmentStatusPending); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	if resp.Canceled, err = bucket(model.EnrollmentStatusCanceled); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}

	return helper.JsonOK(c, "ok", resp)
}

// =======================
// CONFIRM / CANCEL
// =======================
func (ctrl *EnrollmentController) Confirm(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid enrollment id")
	}

	ok, err := ctrl.inScope(c, id)
	if err != nil {
		return err
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
	}

	enrollment, err := ctrl.Lifecycle.Confirm(ctrl.DB, id)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidTransition):
		return helper.JsonError(c, fiber.StatusBadRequest, "Only pending applications can be confirmed")
	case errors.Is(err, service.ErrCapacityExceeded):
		return helper.JsonError(c, fiber.StatusConflict, "The course has no remaining places")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
	default:
		log.Printf("[ERROR] confirm enrollment=%s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to confirm")
	}

	return helper.JsonUpdated(c, "Application confirmed", enrollment)
}

func (ctrl *EnrollmentController) Cancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid enrollment id")
	}

	var req dto.CancelEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	ok, err := ctrl.inScope(c, id)
	if err != nil {
		return err
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
	}

	enrollment, err := ctrl.Lifecycle.Cancel(ctrl.DB, id, req.Reason)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrReasonRequired):
		return helper.JsonError(c, fiber.StatusBadRequest, "A cancellation reason is required")
	case errors.Is(err, service.ErrInvalidTransition):
		return helper.JsonError(c, fiber.StatusBadRequest, "The application is already canceled")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
	default:
		log.Printf("[ERROR] cancel enrollment=%s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to cancel")
	}

	return helper.JsonUpdated(c, "Application canceled", enrollment)
}
