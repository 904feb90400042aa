package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuestionModel is a single test question belonging to a level.
type QuestionModel struct {
	QuestionID       uuid.UUID `gorm:"column:question_id;type:uuid;primaryKey" json:"question_id"`
	QuestionLevelID  uuid.UUID `gorm:"column:question_level_id;type:uuid;not null;index:idx_questions_level_id" json:"question_level_id"`
	QuestionText     string    `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionPosition int       `gorm:"column:question_position;not null;default:1" json:"question_position"`

	QuestionCreatedAt time.Time `gorm:"column:question_created_at;autoCreateTime" json:"question_created_at"`
	QuestionUpdatedAt time.Time `gorm:"column:question_updated_at;autoUpdateTime" json:"question_updated_at"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

func (m *QuestionModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuestionID == uuid.Nil {
		m.QuestionID = uuid.New()
	}
	return nil
}

// AnswerModel is one option of a question. The correct flag never
// leaves the admin surface.
type AnswerModel struct {
	AnswerID         uuid.UUID `gorm:"column:answer_id;type:uuid;primaryKey" json:"answer_id"`
	AnswerQuestionID uuid.UUID `gorm:"column:answer_question_id;type:uuid;not null;index:idx_answers_question_id" json:"answer_question_id"`
	AnswerText       string    `gorm:"column:answer_text;type:varchar(255);not null" json:"answer_text"`
	AnswerCorrect    bool      `gorm:"column:answer_correct;not null;default:false" json:"answer_correct"`

	AnswerCreatedAt time.Time `gorm:"column:answer_created_at;autoCreateTime" json:"answer_created_at"`
}

func (AnswerModel) TableName() string {
	return "answers"
}

func (m *AnswerModel) BeforeCreate(tx *gorm.DB) error {
	if m.AnswerID == uuid.Nil {
		m.AnswerID = uuid.New()
	}
	return nil
}
