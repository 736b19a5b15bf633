package repository

import (
	"errors"

	"github.com/studypulse/backend/internal/model"
	"gorm.io/gorm"
)

type MonthlyProgressRepository interface {
	// GetOrCreate returns the student's calendar for monthLabel, creating
	// it with 31 empty buckets and registering it in the student's
	// progress index when missing. The create and the index registration
	// are one logical operation.
	GetOrCreate(studentID uint, monthLabel string) (*model.MonthlyProgress, error)
	FindByStudentAndMonth(studentID uint, monthLabel string) (*model.MonthlyProgress, error)
	// AppendToDay unions questionIDs into the bucket at dayIndex.
	AppendToDay(progressID uint, dayIndex int, questionIDs []uint) error
}

type monthlyProgressRepository struct {
	db        *gorm.DB
	indexRepo ProgressIndexRepository
}

func NewMonthlyProgressRepository(db *gorm.DB, indexRepo ProgressIndexRepository) MonthlyProgressRepository {
	return &monthlyProgressRepository{db: db, indexRepo: indexRepo}
}

func (r *monthlyProgressRepository) GetOrCreate(studentID uint, monthLabel string) (*model.MonthlyProgress, error) {
	progress, err := r.FindByStudentAndMonth(studentID, monthLabel)
	if err == nil {
		return progress, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := model.MonthlyProgress{
		StudentID: studentID,
		Month:     monthLabel,
		Days:      model.DayBuckets{},
	}
	if err := r.db.Create(&created).Error; err != nil {
		return nil, err
	}
	if err := r.indexRepo.Register(studentID, monthLabel, created.ID); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *monthlyProgressRepository) FindByStudentAndMonth(studentID uint, monthLabel string) (*model.MonthlyProgress, error) {
	var progress model.MonthlyProgress
	err := r.db.Where("student_id = ? AND month = ?", studentID, monthLabel).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *monthlyProgressRepository) AppendToDay(progressID uint, dayIndex int, questionIDs []uint) error {
	if len(questionIDs) == 0 {
		return nil
	}
	var progress model.MonthlyProgress
	if err := r.db.First(&progress, progressID).Error; err != nil {
		return err
	}
	if err := progress.Days.Add(dayIndex, questionIDs); err != nil {
		return err
	}
	return r.db.Model(&progress).Update("days", progress.Days).Error
}
