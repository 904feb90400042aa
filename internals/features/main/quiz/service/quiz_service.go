package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educompass_backend/internals/features/main/quiz/model"
	refModel "educompass_backend/internals/features/main/reference/model"
)

// passThreshold: an attempt at or above this percent counts as passed
// in the level progress.
const passThreshold = 50.0

// SubmittedAnswer pairs a question with the option the student picked.
type SubmittedAnswer struct {
	QuestionID uuid.UUID
	AnswerID   uuid.UUID
}

// QuizService scores level-test submissions and keeps the per-level
// progress counters in step.
type QuizService struct{}

func NewQuizService() *QuizService {
	return &QuizService{}
}

// Submit scores the picked answers against the level's question set,
// records a TestAttempt and folds it into the user's LevelProgress.
// Unknown question or answer ids are skipped, and at most one answer
// per question is scored.
func (s *QuizService) Submit(db *gorm.DB, userID, levelID uuid.UUID, answers []SubmittedAnswer) (*model.TestAttemptModel, error) {
	var attempt model.TestAttemptModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var level refModel.LevelModel
		if err := tx.First(&level, "level_id = ?", levelID).Error; err != nil {
			return err
		}

		var questions []model.QuestionModel
		if err := tx.Where("question_level_id = ?", levelID).Find(&questions).Error; err != nil {
			return err
		}

		questionIDs := make([]uuid.UUID, 0, len(questions))
		for _, q := range questions {
			questionIDs = append(questionIDs, q.QuestionID)
		}

		correctByQuestion := map[uuid.UUID]map[uuid.UUID]bool{}
		if len(questionIDs) > 0 {
			var options []model.AnswerModel
			if err := tx.Where("answer_question_id IN ?", questionIDs).Find(&options).Error; err != nil {
				return err
			}
			for _, a := range options {
				if correctByQuestion[a.AnswerQuestionID] == nil {
					correctByQuestion[a.AnswerQuestionID] = map[uuid.UUID]bool{}
				}
				correctByQuestion[a.AnswerQuestionID][a.AnswerID] = a.AnswerCorrect
			}
		}

		correct := 0
		scored := map[uuid.UUID]bool{}
		for _, item := range answers {
			options, ok := correctByQuestion[item.QuestionID]
			if !ok || scored[item.QuestionID] {
				continue
			}
			isCorrect, ok := options[item.AnswerID]
			if !ok {
				continue
			}
			scored[item.QuestionID] = true
			if isCorrect {
				correct++
			}
		}

		percent := 0.0
		if len(questions) > 0 {
			percent = float64(correct) / float64(len(questions)) * 100
		}

		attempt = model.TestAttemptModel{
			TestAttemptUserID:         userID,
			TestAttemptLevelID:        levelID,
			TestAttemptCorrectCount:   correct,
			TestAttemptTotalQuestions: len(questions),
			TestAttemptPercent:        percent,
		}
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}

		return s.recordProgress(tx, userID, levelID, percent)
	})
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (s *QuizService) recordProgress(tx *gorm.DB, userID, levelID uuid.UUID, percent float64) error {
	var progress model.LevelProgressModel
	if err := tx.Where(
		"level_progress_user_id = ? AND level_progress_level_id = ?", userID, levelID,
	).FirstOrCreate(&progress, model.LevelProgressModel{
		LevelProgressUserID:  userID,
		LevelProgressLevelID: levelID,
	}).Error; err != nil {
		return err
	}

	updates := map[string]interface{}{
		"level_progress_total_tests": gorm.Expr("level_progress_total_tests + 1"),
	}
	if percent >= passThreshold {
		updates["level_progress_passed_tests"] = gorm.Expr("level_progress_passed_tests + 1")
	}
	return tx.Model(&model.LevelProgressModel{}).
		Where("level_progress_id = ?", progress.LevelProgressID).
		Updates(updates).Error
}
