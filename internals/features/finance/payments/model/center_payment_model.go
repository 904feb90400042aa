package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CenterPaymentModel is 1-1 with an education center. The running
// paid amount is NEVER stored here: it is always the SUM over the
// paid_amount_logs ledger (single source of truth, no drift).
type CenterPaymentModel struct {
	CenterPaymentID          uuid.UUID `gorm:"column:center_payment_id;type:uuid;primaryKey" json:"center_payment_id"`
	CenterPaymentEduCenterID uuid.UUID `gorm:"column:center_payment_edu_center_id;type:uuid;not null;uniqueIndex" json:"center_payment_edu_center_id"`

	CenterPaymentCreatedAt time.Time `gorm:"column:center_payment_created_at;autoCreateTime" json:"center_payment_created_at"`
	CenterPaymentUpdatedAt time.Time `gorm:"column:center_payment_updated_at;autoUpdateTime" json:"center_payment_updated_at"`
}

func (CenterPaymentModel) TableName() string {
	return "center_payments"
}

func (m *CenterPaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.CenterPaymentID == uuid.Nil {
		m.CenterPaymentID = uuid.New()
	}
	return nil
}
