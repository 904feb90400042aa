package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educompass_backend/internals/constants"
	"educompass_backend/internals/features/main/edu_centers/controller"
	authMiddleware "educompass_backend/internals/middlewares/auth"
)

// 🟢 Public catalog reads
func EduCenterPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEduCenterController(db)
	api.Get("/edu-centers", ctrl.GetAll)
	api.Get("/edu-centers/:id", ctrl.GetByID)
}

// 🟢 /api/u — logged-in interactions
func EduCenterUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEduCenterController(db)
	api.Post("/edu-centers/:id/like", ctrl.ToggleLike)
	api.Post("/edu-centers/:id/view", ctrl.RecordView)
}

// 🟢 /api/s — superuser management
func EduCenterAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEduCenterController(db)

	centers := api.Group("/edu-centers",
		authMiddleware.OnlyRoles(constants.RoleErrorSuperuser("education centers"), constants.SuperuserOnly...),
	)
	centers.Post("/", ctrl.Create)
	centers.Put("/:id", ctrl.Update)
	centers.Delete("/:id", ctrl.Delete)
}
