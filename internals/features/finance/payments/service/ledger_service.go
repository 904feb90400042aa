package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	paymentModel "educompass_backend/internals/features/finance/payments/model"
	reportService "educompass_backend/internals/features/finance/reports/service"
)

var (
	ErrInvalidAmount = errors.New("payment amount must be a positive value")
)

// LedgerService appends and corrects paid_amount_logs rows. Every
// mutation re-triggers the current-month report refresh for the
// affected center, inside the same transaction.
type LedgerService struct {
	Recon *reportService.ReconciliationService
}

func NewLedgerService(recon *reportService.ReconciliationService) *LedgerService {
	if recon == nil {
		recon = reportService.NewReconciliationService(nil)
	}
	return &LedgerService{Recon: recon}
}

// PaidAmount is the live ledger total for one center payment:
// COALESCE(SUM(amount), 0). Never cached.
func (s *LedgerService) PaidAmount(db *gorm.DB, centerPaymentID uuid.UUID) (decimal.Decimal, error) {
	var out struct {
		Total decimal.Decimal
	}
	err := db.Table("paid_amount_logs").
		Where("paid_amount_log_center_payment_id = ?", centerPaymentID).
		Select("COALESCE(SUM(paid_amount_log_amount), 0) AS total").
		Scan(&out).Error
	return out.Total, err
}

// AddPayment appends one ledger row. The amount must be positive.
func (s *LedgerService) AddPayment(db *gorm.DB, centerPaymentID uuid.UUID, amount decimal.Decimal) (*paymentModel.PaidAmountLogModel, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	logRow := paymentModel.PaidAmountLogModel{
		PaidAmountLogCenterPaymentID: centerPaymentID,
		PaidAmountLogAmount:          amount.Round(2),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var cp paymentModel.CenterPaymentModel
		if err := tx.Where("center_payment_id = ?", centerPaymentID).First(&cp).Error; err != nil {
			return err
		}
		if err := tx.Create(&logRow).Error; err != nil {
			return err
		}
		return s.Recon.RefreshPaid(tx, cp.CenterPaymentEduCenterID)
	})
	if err != nil {
		return nil, err
	}
	return &logRow, nil
}

// UpdateLog corrects a mistaken entry and refreshes the report.
func (s *LedgerService) UpdateLog(db *gorm.DB, logID uuid.UUID, amount decimal.Decimal) (*paymentModel.PaidAmountLogModel, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var logRow paymentModel.PaidAmountLogModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("paid_amount_log_id = ?", logID).First(&logRow).Error; err != nil {
			return err
		}
		now := time.Now()
		if err := tx.Model(&logRow).Updates(map[string]interface{}{
			"paid_amount_log_amount":     amount.Round(2),
			"paid_amount_log_updated_at": &now,
		}).Error; err != nil {
			return err
		}

		var cp paymentModel.CenterPaymentModel
		if err := tx.Where("center_payment_id = ?", logRow.PaidAmountLogCenterPaymentID).First(&cp).Error; err != nil {
			return err
		}
		return s.Recon.RefreshPaid(tx, cp.CenterPaymentEduCenterID)
	})
	if err != nil {
		return nil, err
	}
	return &logRow, nil
}

// DeleteLog removes a ledger row and refreshes the report.
func (s *LedgerService) DeleteLog(db *gorm.DB, logID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var logRow paymentModel.PaidAmountLogModel
		if err := tx.Where("paid_amount_log_id = ?", logID).First(&logRow).Error; err != nil {
			return err
		}

		var cp paymentModel.CenterPaymentModel
		if err := tx.Where("center_payment_id = ?", logRow.PaidAmountLogCenterPaymentID).First(&cp).Error; err != nil {
			return err
		}

		if err := tx.Delete(&logRow).Error; err != nil {
			return err
		}
		return s.Recon.RefreshPaid(tx, cp.CenterPaymentEduCenterID)
	})
}

// GetOrCreateForCenter returns the 1-1 payment row for a center,
// creating it on first use.
func (s *LedgerService) GetOrCreateForCenter(db *gorm.DB, eduCenterID uuid.UUID) (*paymentModel.CenterPaymentModel, error) {
	var cp paymentModel.CenterPaymentModel
	err := db.Where("center_payment_edu_center_id = ?", eduCenterID).First(&cp).Error
	if err == nil {
		return &cp, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cp = paymentModel.CenterPaymentModel{CenterPaymentEduCenterID: eduCenterID}
	if err := db.Create(&cp).Error; err != nil {
		return nil, err
	}
	return &cp, nil
}
