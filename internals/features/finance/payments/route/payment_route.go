package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educompass_backend/internals/constants"
	"educompass_backend/internals/features/finance/payments/controller"
	authMiddleware "educompass_backend/internals/middlewares/auth"
)

// 🟢 /api/f — accountant payment board and the paid-amount ledger
func PaymentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCenterPaymentController(db)

	guard := authMiddleware.OnlyRoles(
		constants.RoleErrorAccountant("payments"),
		constants.RoleAccountant, constants.RoleSuperuser,
	)

	payments := api.Group("/", guard)
	payments.Get("/center-payments", ctrl.GetCenterPayments)
	payments.Get("/center-payments/:id/logs", ctrl.GetLogs)
	payments.Post("/add-payment", ctrl.AddPayment)
	payments.Patch("/paid-logs/:id", ctrl.UpdateLog)
	payments.Delete("/paid-logs/:id", ctrl.DeleteLog)
}
