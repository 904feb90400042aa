package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educompass_backend/internals/features/main/courses/dto"
	"educompass_backend/internals/features/main/courses/model"
	enrollmentModel "educompass_backend/internals/features/main/enrollments/model"
	enrollmentService "educompass_backend/internals/features/main/enrollments/service"
	refModel "educompass_backend/internals/features/main/reference/model"
	helper "educompass_backend/internals/helpers"
)

type CourseController struct {
	DB        *gorm.DB
	Lifecycle *enrollmentService.LifecycleService
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{
		DB:        db,
		Lifecycle: enrollmentService.NewLifecycleService(nil),
	}
}

var courseOrderings = map[string]string{
	"price":       "course_price ASC",
	"-price":      "course_price DESC",
	"start_date":  "course_start_date ASC",
	"-start_date": "course_start_date DESC",
	"created_at":  "course_created_at ASC",
	"-created_at": "course_created_at DESC",
}

// =======================
// LIST (public catalog with filters)
// =======================
func (ctrl *CourseController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CourseModel{}).
		Where("courses.course_is_archived = ?", false)

	if category := strings.TrimSpace(c.Query("category")); category != "" {
		if id, err := uuid.Parse(category); err == nil {
			q = q.Where("courses.course_category_id = ?", id)
		}
	}
	if level := strings.TrimSpace(c.Query("level")); level != "" {
		if id, err := uuid.Parse(level); err == nil {
			q = q.Where("courses.course_level_id = ?", id)
		}
	}
	if branch := strings.TrimSpace(c.Query("branch")); branch != "" {
		if id, err := uuid.Parse(branch); err == nil {
			q = q.Where("courses.course_branch_id = ?", id)
		}
	}
	if center := strings.TrimSpace(c.Query("edu_center")); center != "" {
		if id, err := uuid.Parse(center); err == nil {
			q = q.Joins("JOIN branches ON branches.branch_id = courses.course_branch_id").
				Where("branches.branch_edu_center_id = ?", id)
		}
	}
	if gender := strings.ToUpper(strings.TrimSpace(c.Query("teacher_gender"))); gender != "" {
		q = q.Joins("JOIN teachers ON teachers.teacher_id = courses.course_teacher_id").
			Where("teachers.teacher_gender = ?", gender)
	}
	if priceMin := strings.TrimSpace(c.Query("price_min")); priceMin != "" {
		if v, err := strconv.ParseFloat(priceMin, 64); err == nil {
			q = q.Where("courses.course_price >= ?", v)
		}
	}
	if priceMax := strings.TrimSpace(c.Query("price_max")); priceMax != "" {
		if v, err := strconv.ParseFloat(priceMax, 64); err == nil {
			q = q.Where("courses.course_price <= ?", v)
		}
	}
	if placesMin := strings.TrimSpace(c.Query("total_places_min")); placesMin != "" {
		if v, err := strconv.Atoi(placesMin); err == nil {
			q = q.Where("courses.course_total_places >= ?", v)
		}
	}
	if placesMax := strings.TrimSpace(c.Query("total_places_max")); placesMax != "" {
		if v, err := strconv.Atoi(placesMax); err == nil {
			q = q.Where("courses.course_total_places <= ?", v)
		}
	}
	if intensive := strings.TrimSpace(c.Query("intensive")); intensive != "" {
		q = q.Where("courses.course_intensive = ?", intensive == "true" || intensive == "1")
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("courses.course_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count courses")
	}

	order := "course_created_at DESC"
	if o, ok := courseOrderings[strings.TrimSpace(c.Query("ordering"))]; ok {
		order = o
	}

	var courses []model.CourseModel
	if err := q.Order(order).
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", dto.ToCourseResponseList(courses), &pagination)
}

// =======================
// FILTERS (schema for the catalog UI)
// =======================
func (ctrl *CourseController) GetFilters(c *fiber.Ctx) error {
	var categories []refModel.CategoryModel
	var levels []refModel.LevelModel
	ctrl.DB.Order("category_name ASC").Find(&categories)
	ctrl.DB.Order("level_name ASC").Find(&levels)

	var priceRange struct {
		Min float64 `gorm:"column:min"`
		Max float64 `gorm:"column:max"`
	}
	ctrl.DB.Model(&model.CourseModel{}).
		Where("course_is_archived = ?", false).
		Select("COALESCE(MIN(course_price), 0) AS min, COALESCE(MAX(course_price), 0) AS max").
		Scan(&priceRange)

	return helper.JsonOK(c, "ok", fiber.Map{
		"categories":     categories,
		"levels":         levels,
		"price":          fiber.Map{"min": priceRange.Min, "max": priceRange.Max},
		"teacher_gender": []string{"MALE", "FEMALE"},
		"intensive":      []bool{true, false},
		"ordering":       []string{"price", "-price", "start_date", "-start_date", "created_at", "-created_at"},
	})
}

// =======================
// DETAIL
// =======================
func (ctrl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load course")
	}
	return helper.JsonOK(c, "ok", dto.ToCourseResponse(&course))
}

// =======================
// CREATE / UPDATE / DELETE (admins)
// =======================
func (ctrl *CourseController) Create(c *fiber.Ctx) error {
	var req dto.CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	course, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id in request")
	}
	if err := ctrl.DB.Create(course).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") || strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return helper.JsonError(c, fiber.StatusConflict, "A course with this name already exists in the branch")
		}
		log.Printf("[ERROR] create course: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return helper.JsonCreated(c, "Course created", dto.ToCourseResponse(course))
}

func (ctrl *CourseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var existing model.CourseModel
	if err := ctrl.DB.First(&existing, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load course")
	}

	var req dto.CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	updated, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id in request")
	}
	updated.CourseID = existing.CourseID
	updated.CourseBookedPlaces = existing.CourseBookedPlaces // bookings only move via enrollments
	updated.CourseIsArchived = existing.CourseIsArchived
	updated.CourseCreatedAt = existing.CourseCreatedAt

	if err := ctrl.DB.Save(updated).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	return helper.JsonUpdated(c, "Course updated", dto.ToCourseResponse(updated))
}

// Archive hides the course from the catalog and blocks new applications.
func (ctrl *CourseController) Archive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}
	res := ctrl.DB.Model(&model.CourseModel{}).
		Where("course_id = ?", id).
		Update("course_is_archived", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to archive course")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	return helper.JsonUpdated(c, "Course archived", fiber.Map{"course_id": id})
}

func (ctrl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}
	res := ctrl.DB.Delete(&model.CourseModel{}, "course_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	return helper.JsonDeleted(c, "Course deleted", fiber.Map{"course_id": id})
}

// =======================
// APPLY (students)
// =======================
func (ctrl *CourseController) Apply(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	enrollment, err := ctrl.Lifecycle.Apply(ctrl.DB, userID, courseID)
	switch {
	case err == nil:
	case errors.Is(err, enrollmentService.ErrAlreadyEnrolled):
		return helper.JsonError(c, fiber.StatusBadRequest, "You have already applied to this course")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	default:
		log.Printf("[ERROR] apply course=%s user=%s: %v", courseID, userID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to apply")
	}

	return helper.JsonCreated(c, "Application submitted", enrollment)
}

// =======================
// MY COURSES (students)
// =======================
func (ctrl *CourseController) MyCourses(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	type myCourseRow struct {
		Enrollment enrollmentModel.EnrollmentModel `json:"enrollment"`
		Course     dto.CourseResponse              `json:"course"`
	}

	var enrollments []enrollmentModel.EnrollmentModel
	if err := ctrl.DB.
		Where("enrollment_user_id = ?", userID).
		Order("enrollment_applied_at DESC").
		Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}

	rows := make([]myCourseRow, 0, len(enrollments))
	for _, e := range enrollments {
		var course model.CourseModel
		if err := ctrl.DB.First(&course, "course_id = ?", e.EnrollmentCourseID).Error; err != nil {
			continue
		}
		rows = append(rows, myCourseRow{Enrollment: e, Course: dto.ToCourseResponse(&course)})
	}
	return helper.JsonOK(c, "ok", rows)
}
