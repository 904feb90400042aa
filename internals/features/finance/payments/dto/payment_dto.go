package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AddPaymentRequest struct {
	EduCenterID string          `json:"edu_center_id" validate:"required,uuid4"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
}

type UpdatePaidLogRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// CenterPaymentResponse is one row of the accountant board: a center
// with its ledger total and the debt derived from monthly reports.
type CenterPaymentResponse struct {
	CenterPaymentID   uuid.UUID       `json:"center_payment_id"`
	EduCenterID       uuid.UUID       `json:"edu_center_id"`
	EduCenterName     string          `json:"edu_center_name"`
	TotalApplications int             `json:"total_applications"`
	TotalPayable      decimal.Decimal `json:"total_payable"`
	TotalPaid         decimal.Decimal `json:"total_paid"`
	Debt              decimal.Decimal `json:"debt"`
}

type OverallPaymentsResponse struct {
	TotalApplications int             `json:"total_applications"`
	TotalPayable      decimal.Decimal `json:"total_payable"`
	TotalPaid         decimal.Decimal `json:"total_paid"`
	TotalDebt         decimal.Decimal `json:"total_debt"`
}

type PaidLogResponse struct {
	PaidAmountLogID uuid.UUID       `json:"paid_amount_log_id"`
	CenterPaymentID uuid.UUID       `json:"center_payment_id"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       *time.Time      `json:"updated_at,omitempty"`
}
