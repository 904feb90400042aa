package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educompass_backend/internals/constants"
	"educompass_backend/internals/features/main/enrollments/controller"
	authMiddleware "educompass_backend/internals/middlewares/auth"
)

// 🟢 /api/a — applications table, stats and the status transitions
func EnrollmentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEnrollmentController(db)

	enrollments := api.Group("/enrollments",
		authMiddleware.OnlyRoles(
			constants.RoleErrorCenterAdmin("enrollment management"),
			constants.RoleEduCenter, constants.RoleBranch, constants.RoleSuperuser,
		),
	)
	enrollments.Get("/applied-students", ctrl.GetAppliedStudents)
	enrollments.Get("/stats", ctrl.GetStats)
	enrollments.Patch("/:id/confirm", ctrl.Confirm)
	enrollments.Patch("/:id/cancel", ctrl.Cancel)
}
