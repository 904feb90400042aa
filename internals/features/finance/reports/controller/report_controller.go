package controller

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"educompass_backend/internals/configs"
	"educompass_backend/internals/constants"
	"educompass_backend/internals/features/finance/reports/dto"
	"educompass_backend/internals/features/finance/reports/model"
	"educompass_backend/internals/features/finance/reports/service"
	helper "educompass_backend/internals/helpers"
)

type ReportController struct {
	DB    *gorm.DB
	Clock helper.Clock
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db, Clock: helper.RealClock{}}
}

// callerCenterID resolves the tenant: center owners and branch admins
// are pinned to their own center, accountants and superusers may pass
// ?edu_center=.
func (ctrl *ReportController) callerCenterID(c *fiber.Ctx) (uuid.UUID, bool, error) {
	role := helper.GetRoleFromToken(c)
	if role == constants.RoleAccountant || role == constants.RoleSuperuser {
		if raw := strings.TrimSpace(c.Query("edu_center")); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return uuid.Nil, false, fiber.NewError(fiber.StatusBadRequest, "Invalid edu_center")
			}
			return id, true, nil
		}
		return uuid.Nil, false, nil // unscoped
	}
	id, err := helper.GetEduCenterIDFromToken(c)
	if err != nil {
		return uuid.Nil, false, err
	}
	return id, true, nil
}

// =======================
// MONTHLY REPORTS (?month=YYYY-MM)
// =======================
func (ctrl *ReportController) GetMonthlyReports(c *fiber.Ctx) error {
	centerID, scoped, err := ctrl.callerCenterID(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Model(&model.MonthlyCenterReportModel{})
	if scoped {
		q = q.Where("monthly_report_edu_center_id = ?", centerID)
	}

	if month := strings.TrimSpace(c.Query("month")); month != "" {
		parts := strings.SplitN(month, "-", 2)
		if len(parts) != 2 {
			return helper.JsonError(c, fiber.StatusBadRequest, "month must be YYYY-MM")
		}
		y, errY := strconv.Atoi(parts[0])
		m, errM := strconv.Atoi(parts[1])
		if errY != nil || errM != nil || m < 1 || m > 12 {
			return helper.JsonError(c, fiber.StatusBadRequest, "month must be YYYY-MM")
		}
		q = q.Where("monthly_report_year = ? AND monthly_report_month = ?", y, m)
	}

	var reports []model.MonthlyCenterReportModel
	if err := q.Order("monthly_report_year DESC, monthly_report_month DESC").
		Find(&reports).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch monthly reports")
	}

	return helper.JsonOK(c, "ok", dto.ToMonthlyReportResponseList(reports))
}

// GET /monthly-reports/current — the running month, recomputed on read
func (ctrl *ReportController) GetCurrent(c *fiber.Ctx) error {
	centerID, scoped, err := ctrl.callerCenterID(c)
	if err != nil {
		return err
	}
	if !scoped {
		return helper.JsonError(c, fiber.StatusBadRequest, "edu_center is required")
	}

	now := ctrl.Clock.Now().UTC()
	recon := service.NewReconciliationService(ctrl.Clock)
	if err := recon.Recompute(ctrl.DB, centerID, now.Year(), int(now.Month())); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to recompute report")
	}
	if err := recon.RefreshPaid(ctrl.DB, centerID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to refresh paid amount")
	}

	var report model.MonthlyCenterReportModel
	if err := ctrl.DB.
		Where("monthly_report_edu_center_id = ? AND monthly_report_year = ? AND monthly_report_month = ?",
			centerID, now.Year(), int(now.Month())).
		First(&report).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load report")
	}

	return helper.JsonOK(c, "ok", dto.ToMonthlyReportResponse(&report))
}

// =======================
// SUMMARY (all-time totals, optional ?branch= narrowing)
// =======================
func (ctrl *ReportController) GetSummary(c *fiber.Ctx) error {
	centerID, scoped, err := ctrl.callerCenterID(c)
	if err != nil {
		return err
	}
	if !scoped {
		return helper.JsonError(c, fiber.StatusBadRequest, "edu_center is required")
	}

	appQ := ctrl.DB.Table("enrollments").
		Joins("JOIN courses ON courses.course_id = enrollments.enrollment_course_id").
		Joins("JOIN branches ON branches.branch_id = courses.course_branch_id").
		Where("branches.branch_edu_center_id = ?", centerID)

	if branch := strings.TrimSpace(c.Query("branch")); branch != "" {
		branchID, err := uuid.Parse(branch)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid branch")
		}
		appQ = appQ.Where("courses.course_branch_id = ?", branchID)
	}

	var totalApplications int64
	if err := appQ.Count(&totalApplications).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count applications")
	}

	var prices []decimal.Decimal
	if err := appQ.Pluck("courses.course_price", &prices).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sum commissions")
	}
	payable := decimal.Zero
	for _, p := range prices {
		payable = payable.Add(service.CommissionFor(p))
	}

	var paidRow struct {
		Total decimal.Decimal
	}
	if err := ctrl.DB.Table("paid_amount_logs").
		Joins("JOIN center_payments ON center_payments.center_payment_id = paid_amount_logs.paid_amount_log_center_payment_id").
		Where("center_payments.center_payment_edu_center_id = ?", centerID).
		Select("COALESCE(SUM(paid_amount_logs.paid_amount_log_amount), 0) AS total").
		Scan(&paidRow).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sum payments")
	}

	debt := payable.Sub(paidRow.Total)
	if debt.IsNegative() {
		debt = decimal.Zero
	}

	return helper.JsonOK(c, "ok", dto.ReportSummaryResponse{
		EduCenterID:       centerID,
		TotalApplications: totalApplications,
		PayableAmount:     payable,
		PaidAmount:        paidRow.Total,
		Debt:              debt,
	})
}

// =======================
// EXPORTED WORKBOOKS (list + download, tenant-prefixed file names)
// =======================
func (ctrl *ReportController) ListExports(c *fiber.Ctx) error {
	centerID, scoped, err := ctrl.callerCenterID(c)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(configs.ExportsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return helper.JsonOK(c, "ok", []dto.ExportFileResponse{})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list exports")
	}

	files := make([]dto.ExportFileResponse, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".xlsx") {
			continue
		}
		if scoped && !strings.HasPrefix(entry.Name(), centerID.String()+"-") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, dto.ExportFileResponse{
			FileName: entry.Name(),
			Size:     info.Size(),
			Modified: info.ModTime().UTC().Format("2006-01-02 15:04:05"),
		})
	}
	return helper.JsonOK(c, "ok", files)
}

func (ctrl *ReportController) DownloadExport(c *fiber.Ctx) error {
	centerID, scoped, err := ctrl.callerCenterID(c)
	if err != nil {
		return err
	}

	fileName := filepath.Base(c.Params("filename"))
	if !strings.HasSuffix(fileName, ".xlsx") {
		return helper.JsonError(c, fiber.StatusNotFound, "Report not found")
	}
	if scoped && !strings.HasPrefix(fileName, centerID.String()+"-") {
		return helper.JsonError(c, fiber.StatusNotFound, "Report not found")
	}

	path := filepath.Join(configs.ExportsDir, fileName)
	if _, err := os.Stat(path); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Report not found")
	}
	return c.Download(path, fileName)
}

// POST /exports/run — manual trigger of the first-of-month export
func (ctrl *ReportController) RunExport(c *fiber.Ctx) error {
	exporter := service.NewExportService(ctrl.Clock, configs.ExportsDir)
	saved, err := exporter.ExportFirstOfMonthApplications(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Export failed")
	}

	names := make([]string, 0, len(saved))
	for _, p := range saved {
		names = append(names, filepath.Base(p))
	}
	return helper.JsonOK(c, "Export finished", fiber.Map{"files": names})
}
