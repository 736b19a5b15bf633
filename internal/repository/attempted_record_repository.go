package repository

import (
	"github.com/studypulse/backend/internal/model"
	"gorm.io/gorm"
)

type AttemptedRecordRepository interface {
	FindByStudent(studentID uint) ([]model.AttemptedRecord, error)
	FindIDsByStudent(studentID uint) (map[uint]bool, error)
	InsertMany(records []model.AttemptedRecord) error
	// UpdateCounts shifts each record's attempt count by delta, clamped at
	// zero, recreating the row if a concurrent submission removed it.
	UpdateCounts(records []model.AttemptedRecord, delta int) error
	DeleteMany(records []model.AttemptedRecord) error
}

type attemptedRecordRepository struct {
	db *gorm.DB
}

func NewAttemptedRecordRepository(db *gorm.DB) AttemptedRecordRepository {
	return &attemptedRecordRepository{db: db}
}

func (r *attemptedRecordRepository) FindByStudent(studentID uint) ([]model.AttemptedRecord, error) {
	var records []model.AttemptedRecord
	if err := r.db.Where("student_id = ?", studentID).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attemptedRecordRepository) FindIDsByStudent(studentID uint) (map[uint]bool, error) {
	var ids []uint
	err := r.db.Model(&model.AttemptedRecord{}).
		Where("student_id = ?", studentID).
		Pluck("question_id", &ids).Error
	if err != nil {
		return nil, err
	}
	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func (r *attemptedRecordRepository) InsertMany(records []model.AttemptedRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.Create(&records).Error
}

func (r *attemptedRecordRepository) UpdateCounts(records []model.AttemptedRecord, delta int) error {
	for i := range records {
		rec := records[i]
		newCount := rec.AttemptCount + delta
		if newCount < 0 {
			newCount = 0
		}
		res := r.db.Model(&model.AttemptedRecord{}).
			Where("student_id = ? AND question_id = ?", rec.StudentID, rec.QuestionID).
			Update("attempt_count", newCount)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			rec.AttemptCount = newCount
			if err := r.db.Create(&rec).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *attemptedRecordRepository) DeleteMany(records []model.AttemptedRecord) error {
	if len(records) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.ID)
	}
	// Hard delete so the (student, question) slot is free if the question
	// is ever missed again after this solve.
	return r.db.Delete(&model.AttemptedRecord{}, ids).Error
}
