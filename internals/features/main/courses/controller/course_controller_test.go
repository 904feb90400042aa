package controller_test

import (
	"net/http"
	"net/http/httptest"
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
	"educompass_backend/internals/features/main/courses/model"
	"educompass_backend/internals/features/main/courses/route"
	centerModel "educompass_backend/internals/features/main/edu_centers/model"
	enrollmentModel "educompass_backend/internals/features/main/enrollments/model"
)

func newCourseApp(t *testing.T) (*fiber.App, *model.CourseModel) {
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
		&model.CourseModel{},
		&enrollmentModel.EnrollmentModel{},
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
	course := model.CourseModel{
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

	student := uuid.New()
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", student.String())
		c.Locals("user_role", constants.RoleStudent)
		return c.Next()
	})
	route.CourseUserRoutes(app.Group("/api/u"), db)

	return app, &course
}

func TestApplyTwiceReturnsBadRequest(t *testing.T) {
	app, course := newCourseApp(t)
	url := "/api/u/courses/" + course.CourseID.String() + "/apply"

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, url, nil))
	if err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("first apply status = %d, want 201", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, url, nil))
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("second apply status = %d, want 400", resp.StatusCode)
	}
}

func TestApplyUnknownCourseReturnsNotFound(t *testing.T) {
	app, _ := newCourseApp(t)
	url := "/api/u/courses/" + uuid.New().String() + "/apply"

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, url, nil))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}
