package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	paymentModel "educompass_backend/internals/features/finance/payments/model"
	reportModel "educompass_backend/internals/features/finance/reports/model"
	branchModel "educompass_backend/internals/features/main/branches/model"
	courseModel "educompass_backend/internals/features/main/courses/model"
	centerModel "educompass_backend/internals/features/main/edu_centers/model"
	enrollmentModel "educompass_backend/internals/features/main/enrollments/model"
	userModel "educompass_backend/internals/features/users/user/model"
)

type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time { return f.now }

func openTestDB(t *testing.T) *gorm.DB {
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
		&userModel.UserModel{},
		&centerModel.EducationCenterModel{},
		&branchModel.BranchModel{},
		&courseModel.CourseModel{},
		&enrollmentModel.EnrollmentModel{},
		&paymentModel.CenterPaymentModel{},
		&paymentModel.PaidAmountLogModel{},
		&reportModel.MonthlyCenterReportModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedCenter(t *testing.T, db *gorm.DB, name string) *centerModel.EducationCenterModel {
	t.Helper()
	center := centerModel.EducationCenterModel{EduCenterName: name, EduCenterActive: true}
	if err := db.Create(&center).Error; err != nil {
		t.Fatalf("seed center: %v", err)
	}
	return &center
}

func seedBranch(t *testing.T, db *gorm.DB, centerID uuid.UUID, name string) *branchModel.BranchModel {
	t.Helper()
	branch := branchModel.BranchModel{BranchName: name, BranchEduCenterID: centerID}
	if err := db.Create(&branch).Error; err != nil {
		t.Fatalf("seed branch: %v", err)
	}
	return &branch
}

func seedCourse(t *testing.T, db *gorm.DB, branchID uuid.UUID, name string, price string) *courseModel.CourseModel {
	t.Helper()
	course := courseModel.CourseModel{
		CourseName:        name,
		CourseBranchID:    branchID,
		CourseCategoryID:  uuid.New(),
		CourseLevelID:     uuid.New(),
		CourseStartTime:   "09:00",
		CourseEndTime:     "11:00",
		CourseTotalPlaces: 10,
		CoursePrice:       decimal.RequireFromString(price),
	}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return &course
}

func seedStudent(t *testing.T, db *gorm.DB, name string) *userModel.UserModel {
	t.Helper()
	user := userModel.UserModel{
		UserFullName: name,
		UserPassword: "x",
		UserRole:     "STUDENT",
		UserIsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &user
}

func seedEnrollment(t *testing.T, db *gorm.DB, userID, courseID uuid.UUID, appliedAt time.Time) *enrollmentModel.EnrollmentModel {
	t.Helper()
	e := enrollmentModel.EnrollmentModel{
		EnrollmentUserID:    userID,
		EnrollmentCourseID:  courseID,
		EnrollmentAppliedAt: appliedAt,
		EnrollmentStatus:    enrollmentModel.EnrollmentStatusPending,
	}
	if err := db.Create(&e).Error; err != nil {
		t.Fatalf("seed enrollment: %v", err)
	}
	return &e
}
