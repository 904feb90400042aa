package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educompass_backend/internals/constants"
	"educompass_backend/internals/features/users/user/controller"
	authMiddleware "educompass_backend/internals/middlewares/auth"
)

// 🟢 /api/u — the logged-in user's own profile
func UserSelfRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)
	api.Patch("/users/me", ctrl.UpdateMe)
}

// 🟢 /api/s — superuser user administration
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	users := api.Group("/users",
		authMiddleware.OnlyRoles(constants.RoleErrorSuperuser("user administration"), constants.SuperuserOnly...),
	)
	users.Get("/", ctrl.GetAll)
	users.Get("/:id", ctrl.GetByID)
	users.Patch("/:id/role", ctrl.UpdateRole)
}
