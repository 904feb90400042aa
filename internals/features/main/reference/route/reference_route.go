package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educompass_backend/internals/constants"
	"educompass_backend/internals/features/main/reference/controller"
	authMiddleware "educompass_backend/internals/middlewares/auth"
)

// 🟢 Public lookup reads (no auth)
func ReferencePublicRoutes(api fiber.Router, db *gorm.DB) {
	eduTypes := controller.NewEduTypeController(db)
	categories := controller.NewCategoryController(db)
	levels := controller.NewLevelController(db)
	days := controller.NewDayController(db)

	api.Get("/edu-types", eduTypes.GetAll)
	api.Get("/categories", categories.GetAll)
	api.Get("/levels", levels.GetAll)
	api.Get("/days", days.GetAll)
}

// 🟢 /api/s — superuser maintains the lookup tables
func ReferenceAdminRoutes(api fiber.Router, db *gorm.DB) {
	eduTypes := controller.NewEduTypeController(db)
	categories := controller.NewCategoryController(db)
	levels := controller.NewLevelController(db)
	days := controller.NewDayController(db)

	guard := authMiddleware.OnlyRoles(
		constants.RoleErrorSuperuser("reference data"),
		constants.SuperuserOnly...,
	)

	ref := api.Group("/", guard)
	ref.Post("/edu-types", eduTypes.Create)
	ref.Put("/edu-types/:id", eduTypes.Update)
	ref.Delete("/edu-types/:id", eduTypes.Delete)

	ref.Post("/categories", categories.Create)
	ref.Put("/categories/:id", categories.Update)
	ref.Delete("/categories/:id", categories.Delete)

	ref.Post("/levels", levels.Create)
	ref.Put("/levels/:id", levels.Update)
	ref.Delete("/levels/:id", levels.Delete)

	ref.Post("/days", days.Create)
	ref.Delete("/days/:id", days.Delete)
}
