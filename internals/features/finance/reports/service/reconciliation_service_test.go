package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	paymentModel "educompass_backend/internals/features/finance/payments/model"
	reportModel "educompass_backend/internals/features/finance/reports/model"
)

func loadReport(t *testing.T, db *gorm.DB, centerID interface{}, year, month int) reportModel.MonthlyCenterReportModel {
	t.Helper()
	var report reportModel.MonthlyCenterReportModel
	if err := db.Where(
		"monthly_report_edu_center_id = ? AND monthly_report_year = ? AND monthly_report_month = ?",
		centerID, year, month,
	).First(&report).Error; err != nil {
		t.Fatalf("load report: %v", err)
	}
	return report
}

func TestRecomputeSumsCommissionPerApplication(t *testing.T) {
	db := openTestDB(t)
	center := seedCenter(t, db, "Everest")
	branch := seedBranch(t, db, center.EduCenterID, "Main")
	course := seedCourse(t, db, branch.BranchID, "General English", "100000")

	march := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		student := seedStudent(t, db, "Student")
		seedEnrollment(t, db, student.UserID, course.CourseID, march)
	}
	// outside the window, must not count
	outside := seedStudent(t, db, "April student")
	seedEnrollment(t, db, outside.UserID, course.CourseID, march.AddDate(0, 1, 0))

	recon := NewReconciliationService(nil)
	if err := recon.Recompute(db, center.EduCenterID, 2025, 3); err != nil {
		t.Fatalf("Recompute: %v", err)
	}

	report := loadReport(t, db, center.EduCenterID, 2025, 3)
	if report.MonthlyReportTotalApplications != 3 {
		t.Errorf("total_applications = %d, want 3", report.MonthlyReportTotalApplications)
	}
	want := decimal.RequireFromString("9000")
	if !report.MonthlyReportPayableAmount.Equal(want) {
		t.Errorf("payable = %s, want %s", report.MonthlyReportPayableAmount, want)
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	center := seedCenter(t, db, "Everest")
	branch := seedBranch(t, db, center.EduCenterID, "Main")
	course := seedCourse(t, db, branch.BranchID, "IELTS", "250000")
	student := seedStudent(t, db, "Student")
	seedEnrollment(t, db, student.UserID, course.CourseID,
		time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC))

	recon := NewReconciliationService(nil)
	for i := 0; i < 3; i++ {
		if err := recon.Recompute(db, center.EduCenterID, 2025, 5); err != nil {
			t.Fatalf("Recompute run %d: %v", i, err)
		}
	}

	var count int64
	db.Model(&reportModel.MonthlyCenterReportModel{}).Count(&count)
	if count != 1 {
		t.Fatalf("report rows = %d, want 1 (upsert, not insert)", count)
	}

	report := loadReport(t, db, center.EduCenterID, 2025, 5)
	want := decimal.RequireFromString("7500")
	if !report.MonthlyReportPayableAmount.Equal(want) {
		t.Errorf("payable = %s, want %s", report.MonthlyReportPayableAmount, want)
	}
	if report.MonthlyReportTotalApplications != 1 {
		t.Errorf("total_applications = %d, want 1", report.MonthlyReportTotalApplications)
	}
}

func TestRefreshPaidSnapshotsLedgerIntoCurrentMonth(t *testing.T) {
	db := openTestDB(t)
	center := seedCenter(t, db, "Everest")
	branch := seedBranch(t, db, center.EduCenterID, "Main")
	course := seedCourse(t, db, branch.BranchID, "General English", "100000")

	june := time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		student := seedStudent(t, db, "Student")
		seedEnrollment(t, db, student.UserID, course.CourseID, june)
	}

	clock := fakeClock{now: june.AddDate(0, 0, 10)}
	recon := NewReconciliationService(clock)
	if err := recon.Recompute(db, center.EduCenterID, 2025, 6); err != nil {
		t.Fatalf("Recompute: %v", err)
	}

	cp := paymentModel.CenterPaymentModel{CenterPaymentEduCenterID: center.EduCenterID}
	if err := db.Create(&cp).Error; err != nil {
		t.Fatalf("create center payment: %v", err)
	}
	for _, amount := range []string{"3000", "2000"} {
		logRow := paymentModel.PaidAmountLogModel{
			PaidAmountLogCenterPaymentID: cp.CenterPaymentID,
			PaidAmountLogAmount:          decimal.RequireFromString(amount),
		}
		if err := db.Create(&logRow).Error; err != nil {
			t.Fatalf("create log: %v", err)
		}
	}

	if err := recon.RefreshPaid(db, center.EduCenterID); err != nil {
		t.Fatalf("RefreshPaid: %v", err)
	}

	report := loadReport(t, db, center.EduCenterID, 2025, 6)
	if !report.MonthlyReportPaidAmount.Equal(decimal.RequireFromString("5000")) {
		t.Errorf("paid = %s, want 5000", report.MonthlyReportPaidAmount)
	}
	if !report.MonthlyReportPayableAmount.Equal(decimal.RequireFromString("9000")) {
		t.Errorf("payable = %s, want 9000", report.MonthlyReportPayableAmount)
	}
	if !report.Debt().Equal(decimal.RequireFromString("4000")) {
		t.Errorf("debt = %s, want 4000", report.Debt())
	}
}

func TestDebtNeverNegative(t *testing.T) {
	report := reportModel.MonthlyCenterReportModel{
		MonthlyReportPayableAmount: decimal.RequireFromString("1000"),
		MonthlyReportPaidAmount:    decimal.RequireFromString("2500"),
	}
	if !report.Debt().IsZero() {
		t.Errorf("debt = %s, want 0 when overpaid", report.Debt())
	}
}

func TestRecomputeStampsInjectedClock(t *testing.T) {
	db := openTestDB(t)
	center := seedCenter(t, db, "Everest")
	branch := seedBranch(t, db, center.EduCenterID, "Main")
	course := seedCourse(t, db, branch.BranchID, "General English", "100000")
	student := seedStudent(t, db, "Student")
	seedEnrollment(t, db, student.UserID, course.CourseID,
		time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC))

	stamp := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	recon := NewReconciliationService(fakeClock{now: stamp})

	// second run hits the upsert's update path, which carries the stamp
	for i := 0; i < 2; i++ {
		if err := recon.Recompute(db, center.EduCenterID, 2025, 5); err != nil {
			t.Fatalf("Recompute run %d: %v", i, err)
		}
	}

	report := loadReport(t, db, center.EduCenterID, 2025, 5)
	if !report.MonthlyReportUpdatedAt.UTC().Equal(stamp) {
		t.Errorf("updated_at = %s, want the injected clock time %s",
			report.MonthlyReportUpdatedAt.UTC(), stamp)
	}
}
