package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	paymentModel "educompass_backend/internals/features/finance/payments/model"
	reportModel "educompass_backend/internals/features/finance/reports/model"
	reportService "educompass_backend/internals/features/finance/reports/service"
	centerModel "educompass_backend/internals/features/main/edu_centers/model"
	helper "educompass_backend/internals/helpers"
)

type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time { return f.now }

func openLedgerDB(t *testing.T) (*gorm.DB, *centerModel.EducationCenterModel) {
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
		&paymentModel.CenterPaymentModel{},
		&paymentModel.PaidAmountLogModel{},
		&reportModel.MonthlyCenterReportModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	center := centerModel.EducationCenterModel{EduCenterName: "Everest", EduCenterActive: true}
	if err := db.Create(&center).Error; err != nil {
		t.Fatalf("seed center: %v", err)
	}
	return db, &center
}

func newLedger(clock helper.Clock) *LedgerService {
	return NewLedgerService(reportService.NewReconciliationService(clock))
}

func TestGetOrCreateForCenterIsStable(t *testing.T) {
	db, center := openLedgerDB(t)
	svc := newLedger(nil)

	first, err := svc.GetOrCreateForCenter(db, center.EduCenterID)
	if err != nil {
		t.Fatalf("GetOrCreateForCenter: %v", err)
	}
	second, err := svc.GetOrCreateForCenter(db, center.EduCenterID)
	if err != nil {
		t.Fatalf("GetOrCreateForCenter again: %v", err)
	}
	if first.CenterPaymentID != second.CenterPaymentID {
		t.Fatalf("got two different payment rows for the same center")
	}
}

func TestAddPaymentRejectsNonPositive(t *testing.T) {
	db, center := openLedgerDB(t)
	svc := newLedger(nil)
	cp, _ := svc.GetOrCreateForCenter(db, center.EduCenterID)

	for _, amount := range []string{"0", "-100"} {
		if _, err := svc.AddPayment(db, cp.CenterPaymentID, decimal.RequireFromString(amount)); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("AddPayment(%s) err = %v, want ErrInvalidAmount", amount, err)
		}
	}
}

func TestLedgerTotalTracksMutations(t *testing.T) {
	db, center := openLedgerDB(t)
	clock := fakeClock{now: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)}
	svc := newLedger(clock)
	cp, _ := svc.GetOrCreateForCenter(db, center.EduCenterID)

	first, err := svc.AddPayment(db, cp.CenterPaymentID, decimal.RequireFromString("3000"))
	if err != nil {
		t.Fatalf("AddPayment 1: %v", err)
	}
	if _, err := svc.AddPayment(db, cp.CenterPaymentID, decimal.RequireFromString("2000")); err != nil {
		t.Fatalf("AddPayment 2: %v", err)
	}

	total, err := svc.PaidAmount(db, cp.CenterPaymentID)
	if err != nil {
		t.Fatalf("PaidAmount: %v", err)
	}
	if !total.Equal(decimal.RequireFromString("5000")) {
		t.Fatalf("total = %s, want 5000", total)
	}

	// edit keeps the sum and the report in step
	updated, err := svc.UpdateLog(db, first.PaidAmountLogID, decimal.RequireFromString("3500"))
	if err != nil {
		t.Fatalf("UpdateLog: %v", err)
	}
	if updated.PaidAmountLogUpdatedAt == nil {
		t.Errorf("UpdateLog did not stamp updated_at")
	}
	total, _ = svc.PaidAmount(db, cp.CenterPaymentID)
	if !total.Equal(decimal.RequireFromString("5500")) {
		t.Fatalf("total after edit = %s, want 5500", total)
	}

	var report reportModel.MonthlyCenterReportModel
	if err := db.Where(
		"monthly_report_edu_center_id = ? AND monthly_report_year = ? AND monthly_report_month = ?",
		center.EduCenterID, 2025, 6,
	).First(&report).Error; err != nil {
		t.Fatalf("report row missing: %v", err)
	}
	if !report.MonthlyReportPaidAmount.Equal(decimal.RequireFromString("5500")) {
		t.Fatalf("report paid = %s, want 5500", report.MonthlyReportPaidAmount)
	}

	// delete refreshes too
	if err := svc.DeleteLog(db, first.PaidAmountLogID); err != nil {
		t.Fatalf("DeleteLog: %v", err)
	}
	total, _ = svc.PaidAmount(db, cp.CenterPaymentID)
	if !total.Equal(decimal.RequireFromString("2000")) {
		t.Fatalf("total after delete = %s, want 2000", total)
	}
	if err := db.Where(
		"monthly_report_edu_center_id = ? AND monthly_report_year = ? AND monthly_report_month = ?",
		center.EduCenterID, 2025, 6,
	).First(&report).Error; err != nil {
		t.Fatalf("report row missing after delete: %v", err)
	}
	if !report.MonthlyReportPaidAmount.Equal(decimal.RequireFromString("2000")) {
		t.Fatalf("report paid after delete = %s, want 2000", report.MonthlyReportPaidAmount)
	}
}

func TestUpdateMissingLogFails(t *testing.T) {
	db, center := openLedgerDB(t)
	svc := newLedger(nil)
	if _, err := svc.GetOrCreateForCenter(db, center.EduCenterID); err != nil {
		t.Fatalf("GetOrCreateForCenter: %v", err)
	}

	if _, err := svc.UpdateLog(db, uuid.New(), decimal.RequireFromString("100")); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("UpdateLog on missing row err = %v, want record not found", err)
	}
	if err := svc.DeleteLog(db, uuid.New()); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("DeleteLog on missing row err = %v, want record not found", err)
	}
}
