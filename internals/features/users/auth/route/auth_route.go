package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educompass_backend/internals/features/users/auth/controller"
	"educompass_backend/internals/middlewares"
	authMiddleware "educompass_backend/internals/middlewares/auth"
)

// 🟢 Public auth endpoints + token-scoped /me
func AuthRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := app.Group("/auth")
	auth.Post("/register", middlewares.LoginRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Get("/me", authMiddleware.AuthMiddleware(), ctrl.Me)
}
