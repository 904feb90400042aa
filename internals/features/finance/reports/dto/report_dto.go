package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"educompass_backend/internals/features/finance/reports/model"
)

type MonthlyReportResponse struct {
	MonthlyReportID   uuid.UUID       `json:"monthly_report_id"`
	EduCenterID       uuid.UUID       `json:"edu_center_id"`
	Year              int             `json:"year"`
	Month             int             `json:"month"`
	TotalApplications int             `json:"total_applications"`
	PayableAmount     decimal.Decimal `json:"payable_amount"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	Debt              decimal.Decimal `json:"debt"`
}

type ReportSummaryResponse struct {
	EduCenterID       uuid.UUID       `json:"edu_center_id"`
	TotalApplications int64           `json:"total_applications"`
	PayableAmount     decimal.Decimal `json:"payable_amount"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	Debt              decimal.Decimal `json:"debt"`
}

type ExportFileResponse struct {
	FileName string `json:"file_name"`
	Size     int64  `json:"size"`
	Modified string `json:"modified"`
}

func ToMonthlyReportResponse(m *model.MonthlyCenterReportModel) MonthlyReportResponse {
	return MonthlyReportResponse{
		MonthlyReportID:   m.MonthlyReportID,
		EduCenterID:       m.MonthlyReportEduCenterID,
		Year:              m.MonthlyReportYear,
		Month:             m.MonthlyReportMonth,
		TotalApplications: m.MonthlyReportTotalApplications,
		PayableAmount:     m.MonthlyReportPayableAmount,
		PaidAmount:        m.MonthlyReportPaidAmount,
		Debt:              m.Debt(),
	}
}

func ToMonthlyReportResponseList(models []model.MonthlyCenterReportModel) []MonthlyReportResponse {
	result := make([]MonthlyReportResponse, 0, len(models))
	for i := range models {
		result = append(result, ToMonthlyReportResponse(&models[i]))
	}
	return result
}
