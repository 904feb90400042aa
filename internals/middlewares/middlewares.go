package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	loggerMiddleware "educompass_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain
func SetupMiddlewares(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Registering base middlewares...")

	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(DBMiddleware(db))
}
