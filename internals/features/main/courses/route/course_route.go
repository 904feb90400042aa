package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educompass_backend/internals/constants"
	"educompass_backend/internals/features/main/courses/controller"
	authMiddleware "educompass_backend/internals/middlewares/auth"
)

// 🟢 Public catalog reads
func CoursePublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCourseController(db)
	api.Get("/courses", ctrl.GetAll)
	api.Get("/courses/filters", ctrl.GetFilters)
	api.Get("/courses/:id", ctrl.GetByID)
}

// 🟢 /api/u — student actions
func CourseUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCourseController(db)
	api.Post("/courses/:id/apply", ctrl.Apply)
	api.Get("/courses/my-courses", ctrl.MyCourses)
}

// 🟢 /api/a — center & branch admins manage courses
func CourseAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCourseController(db)

	courses := api.Group("/courses",
		authMiddleware.OnlyRoles(
			constants.RoleErrorCenterAdmin("course management"),
			constants.RoleEduCenter, constants.RoleBranch, constants.RoleSuperuser,
		),
	)
	courses.Post("/", ctrl.Create)
	courses.Put("/:id", ctrl.Update)
	courses.Patch("/:id/archive", ctrl.Archive)
	courses.Delete("/:id", ctrl.Delete)
}
