package service

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	helper "educompass_backend/internals/helpers"

	reportModel "educompass_backend/internals/features/finance/reports/model"
)

var reportConflictKey = []clause.Column{
	{Name: "monthly_report_edu_center_id"},
	{Name: "monthly_report_year"},
	{Name: "monthly_report_month"},
}

// ReconciliationService keeps monthly_center_reports in sync with the
// enrollments and the payment ledger. It is called explicitly, inside
// the same transaction as the triggering write.
type ReconciliationService struct {
	Clock helper.Clock
}

func NewReconciliationService(clock helper.Clock) *ReconciliationService {
	if clock == nil {
		clock = helper.RealClock{}
	}
	return &ReconciliationService{Clock: clock}
}

// MonthWindow returns [start, end) of a calendar month in UTC.
func MonthWindow(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// Recompute refreshes total_applications and payable_amount for one
// (center, year, month) from scratch. Pure aggregation: re-running it
// with unchanged enrollment data yields identical totals.
func (s *ReconciliationService) Recompute(tx *gorm.DB, eduCenterID uuid.UUID, year, month int) error {
	start, end := MonthWindow(year, month)

	var prices []decimal.Decimal
	if err := tx.Table("enrollments").
		Joins("JOIN courses ON courses.course_id = enrollments.enrollment_course_id").
		Joins("JOIN branches ON branches.branch_id = courses.course_branch_id").
		Where("branches.branch_edu_center_id = ?", eduCenterID).
		Where("enrollments.enrollment_applied_at >= ? AND enrollments.enrollment_applied_at < ?", start, end).
		Pluck("courses.course_price", &prices).Error; err != nil {
		log.Printf("[ERROR] Recompute: failed to collect course prices: %v", err)
		return err
	}

	payable := decimal.Zero
	for _, price := range prices {
		payable = payable.Add(CommissionFor(price))
	}

	report := reportModel.MonthlyCenterReportModel{
		MonthlyReportEduCenterID:       eduCenterID,
		MonthlyReportYear:              year,
		MonthlyReportMonth:             month,
		MonthlyReportTotalApplications: len(prices),
		MonthlyReportPayableAmount:     payable,
		MonthlyReportPaidAmount:        decimal.Zero,
	}
	return tx.Clauses(clause.OnConflict{
		Columns: reportConflictKey,
		DoUpdates: clause.Assignments(map[string]interface{}{
			"monthly_report_total_applications": len(prices),
			"monthly_report_payable_amount":     payable,
			"monthly_report_updated_at":         s.Clock.Now().UTC(),
		}),
	}).Create(&report).Error
}

// RefreshPaid snapshots the center's full running ledger total into the
// CURRENT calendar month's report row (get-or-create). Paid amounts are
// deliberately not month-partitioned, unlike commissions.
func (s *ReconciliationService) RefreshPaid(tx *gorm.DB, eduCenterID uuid.UUID) error {
	var out struct {
		Total decimal.Decimal
	}
	if err := tx.Table("paid_amount_logs").
		Joins("JOIN center_payments ON center_payments.center_payment_id = paid_amount_logs.paid_amount_log_center_payment_id").
		Where("center_payments.center_payment_edu_center_id = ?", eduCenterID).
		Select("COALESCE(SUM(paid_amount_logs.paid_amount_log_amount), 0) AS total").
		Scan(&out).Error; err != nil {
		log.Printf("[ERROR] RefreshPaid: failed to sum ledger: %v", err)
		return err
	}

	now := s.Clock.Now().UTC()
	report := reportModel.MonthlyCenterReportModel{
		MonthlyReportEduCenterID:   eduCenterID,
		MonthlyReportYear:          now.Year(),
		MonthlyReportMonth:         int(now.Month()),
		MonthlyReportPaidAmount:    out.Total,
		MonthlyReportPayableAmount: decimal.Zero,
	}
	return tx.Clauses(clause.OnConflict{
		Columns: reportConflictKey,
		DoUpdates: clause.Assignments(map[string]interface{}{
			"monthly_report_paid_amount": out.Total,
			"monthly_report_updated_at":  now,
		}),
	}).Create(&report).Error
}
