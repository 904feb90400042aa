package dto

import (
	"time"

	"github.com/google/uuid"

	"educompass_backend/internals/features/main/quiz/model"
)

type QuestionRequest struct {
	LevelID  string `json:"level_id" validate:"required,uuid4"`
	Text     string `json:"text" validate:"required,min=3"`
	Position int    `json:"position" validate:"omitempty,min=1"`
}

func (r *QuestionRequest) ToModel() (*model.QuestionModel, error) {
	levelID, err := uuid.Parse(r.LevelID)
	if err != nil {
		return nil, err
	}
	position := r.Position
	if position < 1 {
		position = 1
	}
	return &model.QuestionModel{
		QuestionLevelID:  levelID,
		QuestionText:     r.Text,
		QuestionPosition: position,
	}, nil
}

type AnswerRequest struct {
	QuestionID string `json:"question_id" validate:"required,uuid4"`
	Text       string `json:"text" validate:"required"`
	Correct    bool   `json:"correct"`
}

func (r *AnswerRequest) ToModel() (*model.AnswerModel, error) {
	questionID, err := uuid.Parse(r.QuestionID)
	if err != nil {
		return nil, err
	}
	return &model.AnswerModel{
		AnswerQuestionID: questionID,
		AnswerText:       r.Text,
		AnswerCorrect:    r.Correct,
	}, nil
}

type SubmittedAnswerRequest struct {
	QuestionID string `json:"question_id" validate:"required,uuid4"`
	AnswerID   string `json:"answer_id" validate:"required,uuid4"`
}

type SubmitTestRequest struct {
	Answers []SubmittedAnswerRequest `json:"answers" validate:"required,min=1,dive"`
}

// AnswerOptionResponse hides the correct flag from students.
type AnswerOptionResponse struct {
	AnswerID uuid.UUID `json:"answer_id"`
	Text     string    `json:"text"`
}

type QuestionResponse struct {
	QuestionID uuid.UUID              `json:"question_id"`
	LevelID    uuid.UUID              `json:"level_id"`
	Text       string                 `json:"text"`
	Position   int                    `json:"position"`
	Answers    []AnswerOptionResponse `json:"answers"`
}

func ToQuestionResponse(q *model.QuestionModel, options []model.AnswerModel) QuestionResponse {
	answers := make([]AnswerOptionResponse, 0, len(options))
	for _, a := range options {
		answers = append(answers, AnswerOptionResponse{AnswerID: a.AnswerID, Text: a.AnswerText})
	}
	return QuestionResponse{
		QuestionID: q.QuestionID,
		LevelID:    q.QuestionLevelID,
		Text:       q.QuestionText,
		Position:   q.QuestionPosition,
		Answers:    answers,
	}
}

type AttemptResponse struct {
	TestAttemptID  uuid.UUID `json:"test_attempt_id"`
	LevelID        uuid.UUID `json:"level_id"`
	CorrectCount   int       `json:"correct_count"`
	TotalQuestions int       `json:"total_questions"`
	Percent        float64   `json:"percent"`
	TakenAt        time.Time `json:"taken_at"`
}

func ToAttemptResponse(a *model.TestAttemptModel) AttemptResponse {
	return AttemptResponse{
		TestAttemptID:  a.TestAttemptID,
		LevelID:        a.TestAttemptLevelID,
		CorrectCount:   a.TestAttemptCorrectCount,
		TotalQuestions: a.TestAttemptTotalQuestions,
		Percent:        a.TestAttemptPercent,
		TakenAt:        a.TestAttemptTakenAt,
	}
}

type ProgressResponse struct {
	LevelID     uuid.UUID `json:"level_id"`
	TotalTests  int       `json:"total_tests"`
	PassedTests int       `json:"passed_tests"`
	Percent     float64   `json:"percent"`
}

func ToProgressResponse(p *model.LevelProgressModel) ProgressResponse {
	return ProgressResponse{
		LevelID:     p.LevelProgressLevelID,
		TotalTests:  p.LevelProgressTotalTests,
		PassedTests: p.LevelProgressPassedTests,
		Percent:     p.Percent(),
	}
}
