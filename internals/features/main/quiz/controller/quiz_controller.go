package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educompass_backend/internals/features/main/quiz/dto"
	"educompass_backend/internals/features/main/quiz/model"
	"educompass_backend/internals/features/main/quiz/service"
	helper "educompass_backend/internals/helpers"
)

type QuizController struct {
	DB  *gorm.DB
	Svc *service.QuizService
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{DB: db, Svc: service.NewQuizService()}
}

// =======================
// LEVEL QUESTIONS (public; correct flags stripped)
// =======================
func (ctrl *QuizController) GetLevelQuestions(c *fiber.Ctx) error {
	levelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid level id")
	}

	var questions []model.QuestionModel
	if err := ctrl.DB.Where("question_level_id = ?", levelID).
		Order("question_position ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	questionIDs := make([]uuid.UUID, 0, len(questions))
	for _, q := range questions {
		questionIDs = append(questionIDs, q.QuestionID)
	}
	optionsByQuestion := map[uuid.UUID][]model.AnswerModel{}
	if len(questionIDs) > 0 {
		var options []model.AnswerModel
		if err := ctrl.DB.Where("answer_question_id IN ?", questionIDs).
			Order("answer_created_at ASC").
			Find(&options).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch answers")
		}
		for _, a := range options {
			optionsByQuestion[a.AnswerQuestionID] = append(optionsByQuestion[a.AnswerQuestionID], a)
		}
	}

	rows := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		rows = append(rows, dto.ToQuestionResponse(&questions[i], optionsByQuestion[questions[i].QuestionID]))
	}
	return helper.JsonOK(c, "ok", rows)
}

// =======================
// SUBMIT (students)
// =======================
func (ctrl *QuizController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	levelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid level id")
	}

	var req dto.SubmitTestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	answers := make([]service.SubmittedAnswer, 0, len(req.Answers))
	for _, item := range req.Answers {
		questionID, err := uuid.Parse(item.QuestionID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id in submission")
		}
		answerID, err := uuid.Parse(item.AnswerID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid answer id in submission")
		}
		answers = append(answers, service.SubmittedAnswer{QuestionID: questionID, AnswerID: answerID})
	}

	attempt, err := ctrl.Svc.Submit(ctrl.DB, userID, levelID, answers)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Level not found")
	default:
		log.Printf("[ERROR] submit test level=%s user=%s: %v", levelID, userID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit test")
	}

	return helper.JsonOK(c, "Test scored", dto.ToAttemptResponse(attempt))
}

// =======================
// MY ATTEMPTS / MY PROGRESS (students)
// =======================
func (ctrl *QuizController) MyAttempts(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.TestAttemptModel{}).Where("test_attempt_user_id = ?", userID)
	if level := strings.TrimSpace(c.Query("level")); level != "" {
		if id, err := uuid.Parse(level); err == nil {
			q = q.Where("test_attempt_level_id = ?", id)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count attempts")
	}

	var attempts []model.TestAttemptModel
	if err := q.Order("test_attempt_taken_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&attempts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attempts")
	}

	rows := make([]dto.AttemptResponse, 0, len(attempts))
	for i := range attempts {
		rows = append(rows, dto.ToAttemptResponse(&attempts[i]))
	}
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", rows, &pagination)
}

func (ctrl *QuizController) MyProgress(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Where("level_progress_user_id = ?", userID)
	if level := strings.TrimSpace(c.Query("level")); level != "" {
		if id, err := uuid.Parse(level); err == nil {
			q = q.Where("level_progress_level_id = ?", id)
		}
	}

	var progress []model.LevelProgressModel
	if err := q.Find(&progress).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch progress")
	}

	rows := make([]dto.ProgressResponse, 0, len(progress))
	for i := range progress {
		rows = append(rows, dto.ToProgressResponse(&progress[i]))
	}
	return helper.JsonOK(c, "ok", rows)
}

// =======================
// QUESTION CRUD (superuser)
// =======================
func (ctrl *QuizController) CreateQuestion(c *fiber.Ctx) error {
	var req dto.QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	question, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid level id")
	}
	if err := ctrl.DB.Create(question).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create question")
	}
	return helper.JsonCreated(c, "Question created", question)
}

func (ctrl *QuizController) UpdateQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}

	var existing model.QuestionModel
	if err := ctrl.DB.First(&existing, "question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load question")
	}

	var req dto.QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	updated, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid level id")
	}
	updated.QuestionID = existing.QuestionID
	updated.QuestionCreatedAt = existing.QuestionCreatedAt

	if err := ctrl.DB.Save(updated).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update question")
	}
	return helper.JsonUpdated(c, "Question updated", updated)
}

func (ctrl *QuizController) DeleteQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("answer_question_id = ?", id).Delete(&model.AnswerModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.QuestionModel{}, "question_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete question")
	}
	return helper.JsonDeleted(c, "Question deleted", fiber.Map{"question_id": id})
}

// =======================
// ANSWER CRUD (superuser)
// =======================
func (ctrl *QuizController) CreateAnswer(c *fiber.Ctx) error {
	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	answer, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}
	if err := ctrl.DB.Create(answer).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create answer")
	}
	return helper.JsonCreated(c, "Answer created", answer)
}

func (ctrl *QuizController) UpdateAnswer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid answer id")
	}

	var existing model.AnswerModel
	if err := ctrl.DB.First(&existing, "answer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Answer not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load answer")
	}

	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrors := helper.ValidateStruct(&req); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	updated, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}
	updated.AnswerID = existing.AnswerID
	updated.AnswerCreatedAt = existing.AnswerCreatedAt

	if err := ctrl.DB.Save(updated).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update answer")
	}
	return helper.JsonUpdated(c, "Answer updated", updated)
}

func (ctrl *QuizController) DeleteAnswer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid answer id")
	}
	res := ctrl.DB.Delete(&model.AnswerModel{}, "answer_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete answer")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Answer not found")
	}
	return helper.JsonDeleted(c, "Answer deleted", fiber.Map{"answer_id": id})
}
