package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educompass_backend/internals/constants"
	"educompass_backend/internals/features/main/teachers/controller"
	authMiddleware "educompass_backend/internals/middlewares/auth"
)

// 🟢 Public teacher reads
func TeacherPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeacherController(db)
	api.Get("/teachers", ctrl.GetAll)
	api.Get("/teachers/:id", ctrl.GetByID)
}

// 🟢 /api/a — center & branch admins manage teachers
func TeacherAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeacherController(db)

	teachers := api.Group("/teachers",
		authMiddleware.OnlyRoles(
			constants.RoleErrorCenterAdmin("teacher management"),
			constants.RoleEduCenter, constants.RoleBranch, constants.RoleSuperuser,
		),
	)
	teachers.Post("/", ctrl.Create)
	teachers.Put("/:id", ctrl.Update)
	teachers.Delete("/:id", ctrl.Delete)
}
