package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"educompass_backend/internals/features/main/quiz/model"
	refModel "educompass_backend/internals/features/main/reference/model"
)

type quizFixture struct {
	db    *gorm.DB
	level *refModel.LevelModel
	svc   *QuizService
}

func newQuizFixture(t *testing.T) *quizFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&refModel.LevelModel{},
		&model.QuestionModel{},
		&model.AnswerModel{},
		&model.TestAttemptModel{},
		&model.LevelProgressModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	level := refModel.LevelModel{LevelName: "Beginner"}
	if err := db.Create(&level).Error; err != nil {
		t.Fatalf("seed level: %v", err)
	}
	return &quizFixture{db: db, level: &level, svc: NewQuizService()}
}

// seedQuestion creates a question with one correct and one wrong
// option; returns (questionID, correctAnswerID, wrongAnswerID).
func (f *quizFixture) seedQuestion(t *testing.T, position int) (uuid.UUID, uuid.UUID, uuid.UUID) {
	t.Helper()

	question := model.QuestionModel{
		QuestionLevelID:  f.level.LevelID,
		QuestionText:     "pick the right one",
		QuestionPosition: position,
	}
	if err := f.db.Create(&question).Error; err != nil {
		t.Fatalf("seed question: %v", err)
	}
	correct := model.AnswerModel{AnswerQuestionID: question.QuestionID, AnswerText: "right", AnswerCorrect: true}
	wrong := model.AnswerModel{AnswerQuestionID: question.QuestionID, AnswerText: "wrong"}
	if err := f.db.Create(&correct).Error; err != nil {
		t.Fatalf("seed correct answer: %v", err)
	}
	if err := f.db.Create(&wrong).Error; err != nil {
		t.Fatalf("seed wrong answer: %v", err)
	}
	return question.QuestionID, correct.AnswerID, wrong.AnswerID
}

func (f *quizFixture) loadProgress(t *testing.T, userID uuid.UUID) model.LevelProgressModel {
	t.Helper()
	var progress model.LevelProgressModel
	if err := f.db.Where(
		"level_progress_user_id = ? AND level_progress_level_id = ?", userID, f.level.LevelID,
	).First(&progress).Error; err != nil {
		t.Fatalf("load progress: %v", err)
	}
	return progress
}

func TestSubmitScoresSelectedAnswers(t *testing.T) {
	f := newQuizFixture(t)
	q1, c1, _ := f.seedQuestion(t, 1)
	q2, _, w2 := f.seedQuestion(t, 2)
	q3, c3, _ := f.seedQuestion(t, 3)
	user := uuid.New()

	attempt, err := f.svc.Submit(f.db, user, f.level.LevelID, []SubmittedAnswer{
		{QuestionID: q1, AnswerID: c1},
		{QuestionID: q2, AnswerID: w2},
		{QuestionID: q3, AnswerID: c3},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if attempt.TestAttemptCorrectCount != 2 || attempt.TestAttemptTotalQuestions != 3 {
		t.Fatalf("score = %d/%d, want 2/3", attempt.TestAttemptCorrectCount, attempt.TestAttemptTotalQuestions)
	}
	want := float64(2) / 3 * 100
	if attempt.TestAttemptPercent != want {
		t.Fatalf("percent = %v, want %v", attempt.TestAttemptPercent, want)
	}

	var stored model.TestAttemptModel
	if err := f.db.First(&stored, "test_attempt_id = ?", attempt.TestAttemptID).Error; err != nil {
		t.Fatalf("attempt not persisted: %v", err)
	}
}

func TestSubmitRecordsLevelProgress(t *testing.T) {
	f := newQuizFixture(t)
	q1, c1, w1 := f.seedQuestion(t, 1)
	q2, c2, _ := f.seedQuestion(t, 2)
	user := uuid.New()

	// 2/2 → passed
	if _, err := f.svc.Submit(f.db, user, f.level.LevelID, []SubmittedAnswer{
		{QuestionID: q1, AnswerID: c1},
		{QuestionID: q2, AnswerID: c2},
	}); err != nil {
		t.Fatalf("Submit pass: %v", err)
	}
	// 0/2 → failed
	if _, err := f.svc.Submit(f.db, user, f.level.LevelID, []SubmittedAnswer{
		{QuestionID: q1, AnswerID: w1},
	}); err != nil {
		t.Fatalf("Submit fail: %v", err)
	}

	progress := f.loadProgress(t, user)
	if progress.LevelProgressTotalTests != 2 || progress.LevelProgressPassedTests != 1 {
		t.Fatalf("progress = %d passed of %d, want 1 of 2",
			progress.LevelProgressPassedTests, progress.LevelProgressTotalTests)
	}
	if progress.Percent() != 50 {
		t.Fatalf("percent = %v, want 50", progress.Percent())
	}
}

func TestSubmitExactlyAtThresholdPasses(t *testing.T) {
	f := newQuizFixture(t)
	q1, c1, _ := f.seedQuestion(t, 1)
	_, _, _ = f.seedQuestion(t, 2)
	user := uuid.New()

	// 1/2 = 50% is a pass
	if _, err := f.svc.Submit(f.db, user, f.level.LevelID, []SubmittedAnswer{
		{QuestionID: q1, AnswerID: c1},
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	progress := f.loadProgress(t, user)
	if progress.LevelProgressPassedTests != 1 {
		t.Fatalf("passed = %d, want 1", progress.LevelProgressPassedTests)
	}
}

func TestSubmitIgnoresUnknownIDs(t *testing.T) {
	f := newQuizFixture(t)
	q1, c1, _ := f.seedQuestion(t, 1)
	user := uuid.New()

	attempt, err := f.svc.Submit(f.db, user, f.level.LevelID, []SubmittedAnswer{
		{QuestionID: uuid.New(), AnswerID: uuid.New()},
		{QuestionID: q1, AnswerID: uuid.New()},
		{QuestionID: q1, AnswerID: c1},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if attempt.TestAttemptCorrectCount != 1 {
		t.Fatalf("correct = %d, want 1 (unknown ids skipped)", attempt.TestAttemptCorrectCount)
	}
}

func TestSubmitScoresEachQuestionOnce(t *testing.T) {
	f := newQuizFixture(t)
	q1, c1, _ := f.seedQuestion(t, 1)
	_, _, _ = f.seedQuestion(t, 2)
	user := uuid.New()

	attempt, err := f.svc.Submit(f.db, user, f.level.LevelID, []SubmittedAnswer{
		{QuestionID: q1, AnswerID: c1},
		{QuestionID: q1, AnswerID: c1},
		{QuestionID: q1, AnswerID: c1},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if attempt.TestAttemptCorrectCount != 1 {
		t.Fatalf("correct = %d, want 1 (duplicates collapse)", attempt.TestAttemptCorrectCount)
	}
}

func TestSubmitUnknownLevelFails(t *testing.T) {
	f := newQuizFixture(t)

	_, err := f.svc.Submit(f.db, uuid.New(), uuid.New(), []SubmittedAnswer{
		{QuestionID: uuid.New(), AnswerID: uuid.New()},
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("Submit err = %v, want record not found", err)
	}
}
