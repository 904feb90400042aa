package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaidAmountLogModel is one payment event in the ledger.
// Rows may be edited or deleted to correct mistaken entries; every
// mutation re-triggers the current-month report refresh.
type PaidAmountLogModel struct {
	PaidAmountLogID              uuid.UUID       `gorm:"column:paid_amount_log_id;type:uuid;primaryKey" json:"paid_amount_log_id"`
	PaidAmountLogCenterPaymentID uuid.UUID       `gorm:"column:paid_amount_log_center_payment_id;type:uuid;not null;index:idx_paid_amount_logs_center_payment_id" json:"paid_amount_log_center_payment_id"`
	PaidAmountLogAmount          decimal.Decimal `gorm:"column:paid_amount_log_amount;type:numeric(12,2);not null" json:"paid_amount_log_amount"`

	PaidAmountLogCreatedAt time.Time  `gorm:"column:paid_amount_log_created_at;autoCreateTime" json:"paid_amount_log_created_at"`
	PaidAmountLogUpdatedAt *time.Time `gorm:"column:paid_amount_log_updated_at" json:"paid_amount_log_updated_at,omitempty"`
}

func (PaidAmountLogModel) TableName() string {
	return "paid_amount_logs"
}

func (m *PaidAmountLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.PaidAmountLogID == uuid.Nil {
		m.PaidAmountLogID = uuid.New()
	}
	return nil
}
