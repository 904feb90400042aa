package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestAttemptModel records one scored submission of a level test.
type TestAttemptModel struct {
	TestAttemptID             uuid.UUID `gorm:"column:test_attempt_id;type:uuid;primaryKey" json:"test_attempt_id"`
	TestAttemptUserID         uuid.UUID `gorm:"column:test_attempt_user_id;type:uuid;not null;index:idx_test_attempts_user_id" json:"test_attempt_user_id"`
	TestAttemptLevelID        uuid.UUID `gorm:"column:test_attempt_level_id;type:uuid;not null;index:idx_test_attempts_level_id" json:"test_attempt_level_id"`
	TestAttemptCorrectCount   int       `gorm:"column:test_attempt_correct_count;not null" json:"test_attempt_correct_count"`
	TestAttemptTotalQuestions int       `gorm:"column:test_attempt_total_questions;not null" json:"test_attempt_total_questions"`
	TestAttemptPercent        float64   `gorm:"column:test_attempt_percent;not null" json:"test_attempt_percent"`

	TestAttemptTakenAt time.Time `gorm:"column:test_attempt_taken_at;autoCreateTime" json:"test_attempt_taken_at"`
}

func (TestAttemptModel) TableName() string {
	return "test_attempts"
}

func (m *TestAttemptModel) BeforeCreate(tx *gorm.DB) error {
	if m.TestAttemptID == uuid.Nil {
		m.TestAttemptID = uuid.New()
	}
	return nil
}

// LevelProgressModel accumulates a user's pass rate per level. One row
// per (user, level).
type LevelProgressModel struct {
	LevelProgressID          uuid.UUID `gorm:"column:level_progress_id;type:uuid;primaryKey" json:"level_progress_id"`
	LevelProgressUserID      uuid.UUID `gorm:"column:level_progress_user_id;type:uuid;not null;uniqueIndex:ux_level_progress_user_level" json:"level_progress_user_id"`
	LevelProgressLevelID     uuid.UUID `gorm:"column:level_progress_level_id;type:uuid;not null;uniqueIndex:ux_level_progress_user_level" json:"level_progress_level_id"`
	LevelProgressTotalTests  int       `gorm:"column:level_progress_total_tests;not null;default:0" json:"level_progress_total_tests"`
	LevelProgressPassedTests int       `gorm:"column:level_progress_passed_tests;not null;default:0" json:"level_progress_passed_tests"`
}

func (LevelProgressModel) TableName() string {
	return "level_progress"
}

func (m *LevelProgressModel) BeforeCreate(tx *gorm.DB) error {
	if m.LevelProgressID == uuid.Nil {
		m.LevelProgressID = uuid.New()
	}
	return nil
}

// Percent is the pass rate, 0 when no tests were taken yet.
func (m *LevelProgressModel) Percent() float64 {
	if m.LevelProgressTotalTests == 0 {
		return 0
	}
	return float64(m.LevelProgressPassedTests) / float64(m.LevelProgressTotalTests) * 100
}
