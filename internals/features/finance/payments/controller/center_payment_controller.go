package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	centerModel "educompass_backend/internals/features/main/edu_centers/model"
	"educompass_backend/internals/features/finance/payments/dto"
	"educompass_backend/internals/features/finance/payments/model"
	"educompass_backend/internals/features/finance/payments/service"
	helper "educompass_backend/internals/helpers"
)

type CenterPaymentController struct {
	DB     *gorm.DB
	Ledger *service.LedgerService
}

func NewCenterPaymentController(db *gorm.DB) *CenterPaymentController {
	return &CenterPaymentController{
		DB:     db,
		Ledger: service.NewLedgerService(nil),
	}
}

// =======================
// BOARD (per-center totals + overall block)
// =======================
func (ctrl *CenterPaymentController) GetCenterPayments(c *fiber.Ctx) error {
	var centers []centerModel.EducationCenterModel
	if err := ctrl.DB.Order("edu_center_name ASC").Find(&centers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch education centers")
	}

	rows := make([]dto.CenterPaymentResponse, 0, len(centers))
	overall := dto.OverallPaymentsResponse{
		TotalPayable: decimal.Zero,
		TotalPaid:    decimal.Zero,
		TotalDebt:    decimal.Zero,
	}

	for _, center := range centers {
		payment, err := ctrl.Ledger.GetOrCreateForCenter(ctrl.DB, center.EduCenterID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve center payment")
		}

		paid, err := ctrl.Ledger.PaidAmount(ctrl.DB, payment.CenterPaymentID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sum payments")
		}

		var payableRow struct {
			Total        decimal.Decimal
			Applications int
		}
		if err := ctrl.DB.Table("monthly_center_reports").
			Where("monthly_report_edu_center_id = ?", center.EduCenterID).
			Select("COALESCE(SUM(monthly_report_payable_amount), 0) AS total, COALESCE(SUM(monthly_report_total_applications), 0) AS applications").
			Scan(&payableRow).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sum payable amounts")
		}
		payable := payableRow.Total

		debt := payable.Sub(paid)
		if debt.IsNegative() {
			debt = decimal.Zero
		}

		rows = append(rows, dto.CenterPaymentResponse{
			CenterPaymentID:   payment.CenterPaymentID,
			EduCenterID:       center.EduCenterID,
			EduCenterName:     center.EduCenterName,
			TotalApplications: payableRow.Applications,
			TotalPayable:      payable,
			TotalPaid:         paid,
			Debt:              debt,
		})

		overall.TotalApplications += payableRow.Applications
		overall.TotalPayable = overall.TotalPayable.Add(payable)
		overall.TotalPaid = overall.TotalPaid.Add(paid)
		overall.TotalDebt = overall.TotalDebt.Add(debt)
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"centers": rows,
		"overall": overall,
	})
}

// =======================
// LEDGER (append / edit / delete; each mutation refreshes the
// current-month report)
// =======================
func (ctrl *CenterPaymentController) AddPayment(c *fiber.Ctx) error {
	var req dto.AddPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	centerID, err := uuid.Parse(req.EduCenterID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid education center id")
	}

	payment, err := ctrl.Ledger.GetOrCreateForCenter(ctrl.DB, centerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve center payment")
	}

	entry, err := ctrl.Ledger.AddPayment(ctrl.DB, payment.CenterPaymentID, req.Amount)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidAmount):
		return helper.JsonError(c, fiber.StatusBadRequest, "Amount must be positive")
	default:
		log.Printf("[ERROR] add payment center=%s: %v", centerID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record payment")
	}

	return helper.JsonCreated(c, "Payment recorded", toPaidLogResponse(entry))
}

func (ctrl *CenterPaymentController) GetLogs(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid center payment id")
	}

	var logs []model.PaidAmountLogModel
	if err := ctrl.DB.
		Where("paid_amount_log_center_payment_id = ?", paymentID).
		Order("paid_amount_log_created_at DESC").
		Find(&logs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch ledger entries")
	}

	rows := make([]dto.PaidLogResponse, 0, len(logs))
	for i := range logs {
		rows = append(rows, toPaidLogResponse(&logs[i]))
	}
	return helper.JsonOK(c, "ok", rows)
}

func (ctrl *CenterPaymentController) UpdateLog(c *fiber.Ctx) error {
	logID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ledger entry id")
	}

	var req dto.UpdatePaidLogRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	entry, err := ctrl.Ledger.UpdateLog(ctrl.DB, logID, req.Amount)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidAmount):
		return helper.JsonError(c, fiber.StatusBadRequest, "Amount must be positive")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Ledger entry not found")
	default:
		log.Printf("[ERROR] update paid log=%s: %v", logID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update ledger entry")
	}

	return helper.JsonUpdated(c, "Ledger entry updated", toPaidLogResponse(entry))
}

func (ctrl *CenterPaymentController) DeleteLog(c *fiber.Ctx) error {
	logID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ledger entry id")
	}

	err = ctrl.Ledger.DeleteLog(ctrl.DB, logID)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Ledger entry not found")
	default:
		log.Printf("[ERROR] delete paid log=%s: %v", logID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete ledger entry")
	}

	return helper.JsonDeleted(c, "Ledger entry deleted", fiber.Map{"paid_amount_log_id": logID})
}

func toPaidLogResponse(m *model.PaidAmountLogModel) dto.PaidLogResponse {
	return dto.PaidLogResponse{
		PaidAmountLogID: m.PaidAmountLogID,
		CenterPaymentID: m.PaidAmountLogCenterPaymentID,
		Amount:          m.PaidAmountLogAmount,
		CreatedAt:       m.PaidAmountLogCreatedAt,
		UpdatedAt:       m.PaidAmountLogUpdatedAt,
	}
}
