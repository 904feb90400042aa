package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthlyCenterReportModel is a denormalized per-center-per-month
// snapshot of applications, payable commission and paid amount.
// Exactly one row per (center, year, month) with qualifying activity.
type MonthlyCenterReportModel struct {
	MonthlyReportID          uuid.UUID `gorm:"column:monthly_report_id;type:uuid;primaryKey" json:"monthly_report_id"`
	MonthlyReportEduCenterID uuid.UUID `gorm:"column:monthly_report_edu_center_id;type:uuid;not null;uniqueIndex:ux_monthly_reports_center_year_month" json:"monthly_report_edu_center_id"`
	MonthlyReportYear        int       `gorm:"column:monthly_report_year;not null;uniqueIndex:ux_monthly_reports_center_year_month" json:"monthly_report_year"`
	MonthlyReportMonth       int       `gorm:"column:monthly_report_month;not null;uniqueIndex:ux_monthly_reports_center_year_month" json:"monthly_report_month"`

	MonthlyReportTotalApplications int             `gorm:"column:monthly_report_total_applications;not null;default:0" json:"monthly_report_total_applications"`
	MonthlyReportPayableAmount     decimal.Decimal `gorm:"column:monthly_report_payable_amount;type:numeric(14,2);not null;default:0" json:"monthly_report_payable_amount"`
	MonthlyReportPaidAmount        decimal.Decimal `gorm:"column:monthly_report_paid_amount;type:numeric(14,2);not null;default:0" json:"monthly_report_paid_amount"`

	MonthlyReportCreatedAt time.Time `gorm:"column:monthly_report_created_at;autoCreateTime" json:"monthly_report_created_at"`
	MonthlyReportUpdatedAt time.Time `gorm:"column:monthly_report_updated_at;autoUpdateTime" json:"monthly_report_updated_at"`
}

func (MonthlyCenterReportModel) TableName() string {
	return "monthly_center_reports"
}

func (m *MonthlyCenterReportModel) BeforeCreate(tx *gorm.DB) error {
	if m.MonthlyReportID == uuid.Nil {
		m.MonthlyReportID = uuid.New()
	}
	return nil
}

// Debt is derived, never stored: max(payable - paid, 0).
func (m *MonthlyCenterReportModel) Debt() decimal.Decimal {
	debt := m.MonthlyReportPayableAmount.Sub(m.MonthlyReportPaidAmount)
	if debt.IsNegative() {
		return decimal.Zero
	}
	return debt
}
