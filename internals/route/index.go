package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentRoute "educompass_backend/internals/features/finance/payments/route"
	reportRoute "educompass_backend/internals/features/finance/reports/route"
	branchRoute "educompass_backend/internals/features/main/branches/route"
	courseRoute "educompass_backend/internals/features/main/courses/route"
	eduCenterRoute "educompass_backend/internals/features/main/edu_centers/route"
	enrollmentRoute "educompass_backend/internals/features/main/enrollments/route"
	eventRoute "educompass_backend/internals/features/main/events/route"
	quizRoute "educompass_backend/internals/features/main/quiz/route"
	referenceRoute "educompass_backend/internals/features/main/reference/route"
	teacherRoute "educompass_backend/internals/features/main/teachers/route"
	authRoute "educompass_backend/internals/features/users/auth/route"
	userRoute "educompass_backend/internals/features/users/user/route"
	authMiddleware "educompass_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app.Group("/api"), db)

	// ===================== PUBLIC CATALOG =====================
	// Reads are open; OptionalAuth lets views/likes attach to a user.
	log.Println("[INFO] Setting up public catalog routes...")
	public := app.Group("/api", authMiddleware.OptionalAuthMiddleware())
	referenceRoute.ReferencePublicRoutes(public, db)
	eduCenterRoute.EduCenterPublicRoutes(public, db)
	branchRoute.BranchPublicRoutes(public, db)
	teacherRoute.TeacherPublicRoutes(public, db)
	courseRoute.CoursePublicRoutes(public, db)
	eventRoute.EventPublicRoutes(public, db)
	quizRoute.QuizPublicRoutes(public, db)

	// ===================== /api/u — logged-in users =====================
	log.Println("[INFO] Setting up user routes...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware())
	eduCenterRoute.EduCenterUserRoutes(user, db)
	courseRoute.CourseUserRoutes(user, db)
	quizRoute.QuizUserRoutes(user, db)
	userRoute.UserSelfRoutes(user, db)

	// ===================== /api/a — center & branch admins =====================
	log.Println("[INFO] Setting up admin routes...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware())
	branchRoute.BranchAdminRoutes(admin, db)
	teacherRoute.TeacherAdminRoutes(admin, db)
	courseRoute.CourseAdminRoutes(admin, db)
	eventRoute.EventAdminRoutes(admin, db)
	enrollmentRoute.EnrollmentAdminRoutes(admin, db)
	reportRoute.ReportAdminRoutes(admin, db)

	// ===================== /api/s — superuser =====================
	log.Println("[INFO] Setting up superuser routes...")
	super := app.Group("/api/s", authMiddleware.AuthMiddleware())
	referenceRoute.ReferenceAdminRoutes(super, db)
	eduCenterRoute.EduCenterAdminRoutes(super, db)
	quizRoute.QuizAdminRoutes(super, db)
	userRoute.UserAdminRoutes(super, db)

	// ===================== /api/f — accountant =====================
	log.Println("[INFO] Setting up finance routes...")
	finance := app.Group("/api/f", authMiddleware.AuthMiddleware())
	paymentRoute.PaymentRoutes(finance, db)
	reportRoute.ReportFinanceRoutes(finance, db)

	log.Println("✅ All routes ready.")
}
