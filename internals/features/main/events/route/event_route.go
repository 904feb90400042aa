package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educompass_backend/internals/constants"
	"educompass_backend/internals/features/main/events/controller"
	authMiddleware "educompass_backend/internals/middlewares/auth"
)

// 🟢 Public event reads
func EventPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventController(db)
	api.Get("/events", ctrl.GetAll)
	api.Get("/events/filters", ctrl.GetFilters)
	api.Get("/events/:id", ctrl.GetByID)
}

// 🟢 /api/a — center & branch admins manage events
func EventAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventController(db)

	events := api.Group("/events",
		authMiddleware.OnlyRoles(
			constants.RoleErrorCenterAdmin("event management"),
			constants.RoleEduCenter, constants.RoleBranch, constants.RoleSuperuser,
		),
	)
	events.Post("/", ctrl.Create)
	events.Put("/:id", ctrl.Update)
	events.Patch("/:id/archive", ctrl.Archive)
	events.Delete("/:id", ctrl.Delete)
}
