package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educompass_backend/internals/constants"
	"educompass_backend/internals/features/finance/reports/controller"
	authMiddleware "educompass_backend/internals/middlewares/auth"
)

// 🟢 /api/a — center & branch admins read their own reports
func ReportAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(db)

	reports := api.Group("/",
		authMiddleware.OnlyRoles(
			constants.RoleErrorCenterAdmin("reports"),
			constants.RoleEduCenter, constants.RoleBranch, constants.RoleSuperuser,
		),
	)
	reports.Get("/monthly-reports", ctrl.GetMonthlyReports)
	reports.Get("/monthly-reports/current", ctrl.GetCurrent)
	reports.Get("/reports/summary", ctrl.GetSummary)
	reports.Get("/reports", ctrl.ListExports)
	reports.Get("/reports/:filename/download", ctrl.DownloadExport)
}

// 🟢 /api/f — accountant view across all centers + manual export run
func ReportFinanceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(db)

	guard := authMiddleware.OnlyRoles(
		constants.RoleErrorAccountant("reports"),
		constants.RoleAccountant, constants.RoleSuperuser,
	)

	reports := api.Group("/", guard)
	reports.Get("/monthly-reports", ctrl.GetMonthlyReports)
	reports.Get("/reports", ctrl.ListExports)
	reports.Get("/reports/:filename/download", ctrl.DownloadExport)
	reports.Post("/exports/run", ctrl.RunExport)
}
