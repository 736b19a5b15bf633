package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studypulse/backend/internal/clock"
	"github.com/studypulse/backend/internal/dto"
	"github.com/studypulse/backend/internal/model"
	"github.com/studypulse/backend/internal/repository"
	"gorm.io/gorm"
)

func newQueryService(db *gorm.DB) ProgressQueryService {
	indexRepo := repository.NewProgressIndexRepository(db)
	return NewProgressQueryService(
		repository.NewSolvedRecordRepository(db),
		repository.NewAttemptedRecordRepository(db),
		repository.NewMonthlyProgressRepository(db, indexRepo),
		repository.NewStudentRepository(db),
		clock.NewFixed(testInstant),
	)
}

func TestGetSummary_AggregatesCounts(t *testing.T) {
	db := setupDB(t)
	seedStudent(t, db, 9)
	q1 := seedQuestion(t, db, 1, model.DifficultyEasy)
	q2 := seedQuestion(t, db, 2, model.DifficultyHard)

	solved := model.NewSolvedRecord(studentID, q1, testInstant)
	require.NoError(t, db.Create(&solved).Error)
	attempted := model.NewAttemptedRecord(studentID, q2, testInstant)
	require.NoError(t, db.Create(&attempted).Error)

	svc := newQueryService(db)
	summary, err := svc.GetSummary(studentID)
	require.NoError(t, err)
	assert.Equal(t, int64(9), summary.TotalPoints)
	assert.Equal(t, int64(1), summary.SolvedCount)
	assert.Equal(t, int64(1), summary.AttemptedCount)
}

func TestGetSummary_MissingProfile(t *testing.T) {
	db := setupDB(t)

	svc := newQueryService(db)
	summary, err := svc.GetSummary(studentID)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalPoints)
}

func TestGetSolvedAndAttempted(t *testing.T) {
	db := setupDB(t)
	q1 := seedQuestion(t, db, 1, model.DifficultyMedium)
	rec := model.NewSolvedRecord(studentID, q1, testInstant)
	rec.SolveCount = 3
	require.NoError(t, db.Create(&rec).Error)

	svc := newQueryService(db)
	solved, err := svc.GetSolved(studentID)
	require.NoError(t, err)
	require.Len(t, solved, 1)
	assert.Equal(t, uint(1), solved[0].QuestionID)
	assert.Equal(t, 3, solved[0].SolveCount)
	assert.Equal(t, "Algebra", solved[0].CourseName)

	attempted, err := svc.GetAttempted(studentID)
	require.NoError(t, err)
	assert.Empty(t, attempted)
}

func TestGetCalendar_DefaultsToCurrentMonth(t *testing.T) {
	db := setupDB(t)
	seedStudent(t, db, 0)
	seedQuestion(t, db, 1, model.DifficultyEasy)

	// Populate March 2025 through a real reconciliation.
	reconciler := newReconciler(db)
	_, err := reconciler.Reconcile(studentID, dto.SubmitProgressRequest{CorrectQuestionIDs: []uint{1}})
	require.NoError(t, err)

	svc := newQueryService(db)
	calendar, err := svc.GetCalendar(studentID, "")
	require.NoError(t, err)
	assert.Equal(t, "March 2025", calendar.Month)
	require.Len(t, calendar.Days, model.DaysInCalendar)
	assert.Equal(t, []uint{1}, calendar.Days[14])
	assert.Empty(t, calendar.Days[0])
}

func TestGetCalendar_UnknownMonth(t *testing.T) {
	db := setupDB(t)

	svc := newQueryService(db)
	_, err := svc.GetCalendar(studentID, "January 1999")
	assert.ErrorIs(t, err, ErrMonthNotFound)
}
