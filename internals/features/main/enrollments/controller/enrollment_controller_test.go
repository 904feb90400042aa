package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"educompass_backend/internals/constants"
	reportModel "educompass_backend/internals/features/finance/reports/model"
	branchModel "educompass_backend/internals/features/main/branches/model"
	courseModel "educompass_backend/internals/features/main/courses/model"
	centerModel "educompass_backend/internals/features/main/edu_centers/model"
	"educompass_backend/internals/features/main/enrollments/model"
	"educompass_backend/internals/features/main/enrollments/route"
)

func newEnrollmentApp(t *testing.T) (*fiber.App, *gorm.DB, *courseModel.CourseModel) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&centerModel.EducationCenterModel{},
		&branchModel.BranchModel{},
		&courseModel.CourseModel{},
		&model.EnrollmentModel{},
		&reportModel.MonthlyCenterReportModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	center := centerModel.EducationCenterModel{EduCenterName: "Everest", EduCenterActive: true}
	if err := db.Create(&center).Error; err != nil {
		t.Fatalf("seed center: %v", err)
	}
	branch := branchModel.BranchModel{BranchName: "Downtown", BranchEduCenterID: center.EduCenterID}
	if err := db.Create(&branch).Error; err != nil {
		t.Fatalf("seed branch: %v", err)
	}
	course := courseModel.CourseModel{
		CourseName:        "General English",
		CourseBranchID:    branch.BranchID,
		CourseCategoryID:  uuid.New(),
		CourseLevelID:     uuid.New(),
		CourseStartTime:   "09:00",
		CourseEndTime:     "11:00",
		CourseTotalPlaces: 5,
		CoursePrice:       decimal.RequireFromString("100000"),
	}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", uuid.New().String())
		c.Locals("user_role", constants.RoleSuperuser)
		return c.Next()
	})
	route.EnrollmentAdminRoutes(app.Group("/api/a"), db)

	return app, db, &course
}

func seedEnrollmentRow(t *testing.T, db *gorm.DB, courseID uuid.UUID, status string) *model.EnrollmentModel {
	t.Helper()
	enrollment := model.EnrollmentModel{
		EnrollmentUserID:   uuid.New(),
		EnrollmentCourseID: courseID,
		EnrollmentStatus:   status,
	}
	if err := db.Create(&enrollment).Error; err != nil {
		t.Fatalf("seed enrollment: %v", err)
	}
	return &enrollment
}

func TestConfirmNonPendingReturnsBadRequest(t *testing.T) {
	app, db, course := newEnrollmentApp(t)
	enrollment := seedEnrollmentRow(t, db, course.CourseID, model.EnrollmentStatusConfirmed)

	req := httptest.NewRequest(http.MethodPatch,
		"/api/a/enrollments/"+enrollment.EnrollmentID.String()+"/confirm", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var body struct {
		ErrorCode string `json:"error_code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.ErrorCode != "BAD_REQUEST" {
		t.Fatalf("error_code = %q, want BAD_REQUEST", body.ErrorCode)
	}
}

func TestCancelCanceledReturnsBadRequest(t *testing.T) {
	app, db, course := newEnrollmentApp(t)
	enrollment := seedEnrollmentRow(t, db, course.CourseID, model.EnrollmentStatusCanceled)

	req := httptest.NewRequest(http.MethodPatch,
		"/api/a/enrollments/"+enrollment.EnrollmentID.String()+"/cancel",
		strings.NewReader(`{"reason": "changed my mind"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
