package database

import (
	"log"

	"gorm.io/gorm"

	paymentModel "educompass_backend/internals/features/finance/payments/model"
	reportModel "educompass_backend/internals/features/finance/reports/model"
	branchModel "educompass_backend/internals/features/main/branches/model"
	courseModel "educompass_backend/internals/features/main/courses/model"
	centerModel "educompass_backend/internals/features/main/edu_centers/model"
	enrollmentModel "educompass_backend/internals/features/main/enrollments/model"
	eventModel "educompass_backend/internals/features/main/events/model"
	quizModel "educompass_backend/internals/features/main/quiz/model"
	refModel "educompass_backend/internals/features/main/reference/model"
	userModel "educompass_backend/internals/features/users/user/model"
)

// AutoMigrate keeps the schema in step with the models. Order matters
// for the FK-ish relations (centers before branches before courses).
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&userModel.UserModel{},

		&refModel.EduTypeModel{},
		&refModel.CategoryModel{},
		&refModel.LevelModel{},
		&refModel.DayModel{},

		&centerModel.EducationCenterModel{},
		&centerModel.LikeModel{},
		&centerModel.ViewModel{},
		&branchModel.BranchModel{},
		&courseModel.CourseModel{},
		&eventModel.EventModel{},
		&enrollmentModel.EnrollmentModel{},

		&quizModel.QuestionModel{},
		&quizModel.AnswerModel{},
		&quizModel.TestAttemptModel{},
		&quizModel.LevelProgressModel{},

		&paymentModel.CenterPaymentModel{},
		&paymentModel.PaidAmountLogModel{},
		&reportModel.MonthlyCenterReportModel{},
	)
	if err != nil {
		log.Printf("❌ AutoMigrate failed: %v", err)
		return err
	}
	log.Println("✅ AutoMigrate done.")
	return nil
}
