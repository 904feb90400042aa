package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educompass_backend/internals/constants"
	"educompass_backend/internals/features/main/branches/controller"
	authMiddleware "educompass_backend/internals/middlewares/auth"
)

// 🟢 Public branch reads
func BranchPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBranchController(db)
	api.Get("/branches", ctrl.GetAll)
	api.Get("/branches/:id", ctrl.GetByID)
}

// 🟢 /api/a — center admins manage their own branches
func BranchAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBranchController(db)

	branches := api.Group("/branches",
		authMiddleware.OnlyRoles(
			constants.RoleErrorEduCenter("branch management"),
			constants.RoleEduCenter, constants.RoleSuperuser,
		),
	)
	branches.Post("/", ctrl.Create)
	branches.Put("/:id", ctrl.Update)
	branches.Delete("/:id", ctrl.Delete)
}
