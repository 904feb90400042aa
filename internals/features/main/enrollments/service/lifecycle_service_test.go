package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	reportModel "educompass_backend/internals/features/finance/reports/model"
	branchModel "educompass_backend/internals/features/main/branches/model"
	courseModel "educompass_backend/internals/features/main/courses/model"
	centerModel "educompass_backend/internals/features/main/edu_centers/model"
	"educompass_backend/internals/features/main/enrollments/model"
	userModel "educompass_backend/internals/features/users/user/model"
)

type fixture struct {
	db     *gorm.DB
	center *centerModel.EducationCenterModel
	course *courseModel.CourseModel
	svc    *LifecycleService
}

func newFixture(t *testing.T, totalPlaces int) *fixture {
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
		&model.EnrollmentModel{},
		&reportModel.MonthlyCenterReportModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	center := centerModel.EducationCenterModel{EduCenterName: "Everest", EduCenterActive: true}
	if err := db.Create(&center).Error; err != nil {
		t.Fatalf("seed center: %v", err)
	}
	branch := branchModel.BranchModel{BranchName: "Main", BranchEduCenterID: center.EduCenterID}
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
		CourseTotalPlaces: totalPlaces,
		CoursePrice:       decimal.RequireFromString("100000"),
	}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}

	return &fixture{db: db, center: &center, course: &course, svc: NewLifecycleService(nil)}
}

func (f *fixture) newStudent(t *testing.T) uuid.UUID {
	t.Helper()
	user := userModel.UserModel{UserFullName: "Student", UserPassword: "x", UserRole: "STUDENT", UserIsActive: true}
	if err := f.db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user.UserID
}

func (f *fixture) reloadCourse(t *testing.T) courseModel.CourseModel {
	t.Helper()
	var course courseModel.CourseModel
	if err := f.db.First(&course, "course_id = ?", f.course.CourseID).Error; err != nil {
		t.Fatalf("reload course: %v", err)
	}
	return course
}

func TestApplyCreatesPendingWithoutTouchingCapacity(t *testing.T) {
	f := newFixture(t, 5)
	userID := f.newStudent(t)

	enrollment, err := f.svc.Apply(f.db, userID, f.course.CourseID)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if enrollment.EnrollmentStatus != model.EnrollmentStatusPending {
		t.Errorf("status = %s, want PENDING", enrollment.EnrollmentStatus)
	}

	course := f.reloadCourse(t)
	if course.CourseTotalPlaces != 5 || course.CourseBookedPlaces != 0 {
		t.Errorf("capacity = (%d,%d), want (5,0): apply must not take a place",
			course.CourseTotalPlaces, course.CourseBookedPlaces)
	}

	// apply also seeds the month's report row
	var report reportModel.MonthlyCenterReportModel
	if err := f.db.First(&report, "monthly_report_edu_center_id = ?", f.center.EduCenterID).Error; err != nil {
		t.Fatalf("report row missing after apply: %v", err)
	}
	if report.MonthlyReportTotalApplications != 1 {
		t.Errorf("total_applications = %d, want 1", report.MonthlyReportTotalApplications)
	}
	if !report.MonthlyReportPayableAmount.Equal(decimal.RequireFromString("3000")) {
		t.Errorf("payable = %s, want 3000", report.MonthlyReportPayableAmount)
	}
}

func TestApplyTwiceFails(t *testing.T) {
	f := newFixture(t, 5)
	userID := f.newStudent(t)

	if _, err := f.svc.Apply(f.db, userID, f.course.CourseID); err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	if _, err := f.svc.Apply(f.db, userID, f.course.CourseID); !errors.Is(err, ErrAlreadyEnrolled) {
		t.Fatalf("second Apply err = %v, want ErrAlreadyEnrolled", err)
	}
}

func TestApplyToArchivedCourseFails(t *testing.T) {
	f := newFixture(t, 5)
	userID := f.newStudent(t)

	f.db.Model(f.course).Update("course_is_archived", true)
	if _, err := f.svc.Apply(f.db, userID, f.course.CourseID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("Apply on archived err = %v, want record not found", err)
	}
}

func TestConfirmTakesOnePlace(t *testing.T) {
	f := newFixture(t, 2)
	userID := f.newStudent(t)

	enrollment, err := f.svc.Apply(f.db, userID, f.course.CourseID)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	confirmed, err := f.svc.Confirm(f.db, enrollment.EnrollmentID)
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if confirmed.EnrollmentStatus != model.EnrollmentStatusConfirmed {
		t.Errorf("status = %s, want CONFIRMED", confirmed.EnrollmentStatus)
	}

	course := f.reloadCourse(t)
	if course.CourseTotalPlaces != 1 || course.CourseBookedPlaces != 1 {
		t.Errorf("capacity = (%d,%d), want (1,1)", course.CourseTotalPlaces, course.CourseBookedPlaces)
	}

	// confirming again must fail: not PENDING anymore
	if _, err := f.svc.Confirm(f.db, enrollment.EnrollmentID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second Confirm err = %v, want ErrInvalidTransition", err)
	}
}

func TestConfirmFailsWhenCourseFull(t *testing.T) {
	f := newFixture(t, 1)

	first, err := f.svc.Apply(f.db, f.newStudent(t), f.course.CourseID)
	if err != nil {
		t.Fatalf("Apply 1: %v", err)
	}
	second, err := f.svc.Apply(f.db, f.newStudent(t), f.course.CourseID)
	if err != nil {
		t.Fatalf("Apply 2: %v", err)
	}

	if _, err := f.svc.Confirm(f.db, first.EnrollmentID); err != nil {
		t.Fatalf("Confirm 1: %v", err)
	}
	if _, err := f.svc.Confirm(f.db, second.EnrollmentID); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("Confirm 2 err = %v, want ErrCapacityExceeded", err)
	}

	// the failed confirm must not leave the enrollment half-moved
	var pending model.EnrollmentModel
	f.db.First(&pending, "enrollment_id = ?", second.EnrollmentID)
	if pending.EnrollmentStatus != model.EnrollmentStatusPending {
		t.Errorf("status after failed confirm = %s, want PENDING", pending.EnrollmentStatus)
	}
}

func TestCancelRequiresReason(t *testing.T) {
	f := newFixture(t, 5)
	enrollment, err := f.svc.Apply(f.db, f.newStudent(t), f.course.CourseID)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if _, err := f.svc.Cancel(f.db, enrollment.EnrollmentID, "   "); !errors.Is(err, ErrReasonRequired) {
		t.Fatalf("Cancel err = %v, want ErrReasonRequired", err)
	}
}

func TestCancelConfirmedReturnsThePlace(t *testing.T) {
	f := newFixture(t, 3)
	enrollment, err := f.svc.Apply(f.db, f.newStudent(t), f.course.CourseID)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, err := f.svc.Confirm(f.db, enrollment.EnrollmentID); err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	canceled, err := f.svc.Cancel(f.db, enrollment.EnrollmentID, "student moved away")
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if canceled.EnrollmentStatus != model.EnrollmentStatusCanceled {
		t.Errorf("status = %s, want CANCELED", canceled.EnrollmentStatus)
	}
	if canceled.EnrollmentCancelledReason == nil || *canceled.EnrollmentCancelledReason != "student moved away" {
		t.Errorf("reason not stored: %v", canceled.EnrollmentCancelledReason)
	}

	course := f.reloadCourse(t)
	if course.CourseTotalPlaces != 3 || course.CourseBookedPlaces != 0 {
		t.Errorf("capacity = (%d,%d), want (3,0): cancel must invert confirm",
			course.CourseTotalPlaces, course.CourseBookedPlaces)
	}
}

func TestCancelPendingLeavesCapacityAlone(t *testing.T) {
	f := newFixture(t, 3)
	enrollment, err := f.svc.Apply(f.db, f.newStudent(t), f.course.CourseID)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if _, err := f.svc.Cancel(f.db, enrollment.EnrollmentID, "changed plans"); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	course := f.reloadCourse(t)
	if course.CourseTotalPlaces != 3 || course.CourseBookedPlaces != 0 {
		t.Errorf("capacity = (%d,%d), want (3,0)", course.CourseTotalPlaces, course.CourseBookedPlaces)
	}
}

func TestCancelIsTerminal(t *testing.T) {
	f := newFixture(t, 3)
	enrollment, err := f.svc.Apply(f.db, f.newStudent(t), f.course.CourseID)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, err := f.svc.Cancel(f.db, enrollment.EnrollmentID, "first reason"); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	if _, err := f.svc.Cancel(f.db, enrollment.EnrollmentID, "second reason"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("re-Cancel err = %v, want ErrInvalidTransition", err)
	}
	if _, err := f.svc.Confirm(f.db, enrollment.EnrollmentID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Confirm after cancel err = %v, want ErrInvalidTransition", err)
	}
}

func TestConfirmTwiceMovesCapacityOnce(t *testing.T) {
	f := newFixture(t, 3)
	student := f.newStudent(t)
	enrollment, err := f.svc.Apply(f.db, student, f.course.CourseID)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if _, err := f.svc.Confirm(f.db, enrollment.EnrollmentID); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if _, err := f.svc.Confirm(f.db, enrollment.EnrollmentID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second Confirm err = %v, want ErrInvalidTransition", err)
	}

	course := f.reloadCourse(t)
	if course.CourseBookedPlaces != 1 || course.CourseTotalPlaces != 2 {
		t.Fatalf("capacity = (%d booked, %d total), want (1, 2) after one confirm",
			course.CourseBookedPlaces, course.CourseTotalPlaces)
	}
}

func TestConfirmRefusesAfterOutOfBandTransition(t *testing.T) {
	f := newFixture(t, 3)
	student := f.newStudent(t)
	enrollment, err := f.svc.Apply(f.db, student, f.course.CourseID)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	// another writer flipped the row before our confirm got to it
	if err := f.db.Model(&model.EnrollmentModel{}).
		Where("enrollment_id = ?", enrollment.EnrollmentID).
		Update("enrollment_status", model.EnrollmentStatusCanceled).Error; err != nil {
		t.Fatalf("flip status: %v", err)
	}

	if _, err := f.svc.Confirm(f.db, enrollment.EnrollmentID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Confirm err = %v, want ErrInvalidTransition", err)
	}
	course := f.reloadCourse(t)
	if course.CourseBookedPlaces != 0 || course.CourseTotalPlaces != 3 {
		t.Fatalf("capacity = (%d booked, %d total), want untouched (0, 3)",
			course.CourseBookedPlaces, course.CourseTotalPlaces)
	}
}

func TestUniqueViolationDetection(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm sentinel", gorm.ErrDuplicatedKey, true},
		{"postgres", errors.New(`ERROR: duplicate key value violates unique constraint "ux_enrollments_user_course" (SQLSTATE 23505)`), true},
		{"sqlite", errors.New("UNIQUE constraint failed: enrollments.enrollment_user_id, enrollments.enrollment_course_id"), true},
		{"unrelated", errors.New("connection refused"), false},
	}
	for _, tc := range cases {
		if got := isUniqueViolation(tc.err); got != tc.want {
			t.Errorf("%s: isUniqueViolation = %v, want %v", tc.name, got, tc.want)
		}
	}
}
