package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educompass_backend/internals/constants"
	"educompass_backend/internals/features/main/quiz/controller"
	authMiddleware "educompass_backend/internals/middlewares/auth"
)

// 🟢 Public reads: level questions without the correct flags
func QuizPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuizController(db)
	api.Get("/levels/:id/questions", ctrl.GetLevelQuestions)
}

// 🟢 /api/u — test submission and personal history
func QuizUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuizController(db)
	api.Post("/levels/:id/submit", ctrl.Submit)
	api.Get("/quiz/attempts", ctrl.MyAttempts)
	api.Get("/quiz/progress", ctrl.MyProgress)
}

// 🟢 /api/s — question/answer management
func QuizAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuizController(db)

	quiz := api.Group("/quiz",
		authMiddleware.OnlyRoles(constants.RoleErrorSuperuser("quiz content"), constants.SuperuserOnly...),
	)
	quiz.Post("/questions", ctrl.CreateQuestion)
	quiz.Put("/questions/:id", ctrl.UpdateQuestion)
	quiz.Delete("/questions/:id", ctrl.DeleteQuestion)
	quiz.Post("/answers", ctrl.CreateAnswer)
	quiz.Put("/answers/:id", ctrl.UpdateAnswer)
	quiz.Delete("/answers/:id", ctrl.DeleteAnswer)
}
