package repository

import (
	"github.com/studypulse/backend/internal/model"
	"gorm.io/gorm"
)

type SolvedRecordRepository interface {
	FindByStudent(studentID uint) ([]model.SolvedRecord, error)
	FindIDsByStudent(studentID uint) (map[uint]bool, error)
	InsertMany(records []model.SolvedRecord) error
	// UpdateCounts writes each record's count shifted by delta, clamped at
	// zero. A record that vanished underneath us is recreated with the
	// shifted count (upsert semantics for concurrent submissions).
	UpdateCounts(records []model.SolvedRecord, delta int) error
}

type solvedRecordRepository struct {
	db *gorm.DB
}

func NewSolvedRecordRepository(db *gorm.DB) SolvedRecordRepository {
	return &solvedRecordRepository{db: db}
}

func (r *solvedRecordRepository) FindByStudent(studentID uint) ([]model.SolvedRecord, error) {
	var records []model.SolvedRecord
	if err := r.db.Where("student_id = ?", studentID).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *solvedRecordRepository) FindIDsByStudent(studentID uint) (map[uint]bool, error) {
	var ids []uint
	err := r.db.Model(&model.SolvedRecord{}).
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

func (r *solvedRecordRepository) InsertMany(records []model.SolvedRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.Create(&records).Error
}

func (r *solvedRecordRepository) UpdateCounts(records []model.SolvedRecord, delta int) error {
	for i := range records {
		rec := records[i]
		newCount := rec.SolveCount + delta
		if newCount < 0 {
			newCount = 0
		}
		// Absolute-set write: the count was loaded at the start of the
		// reconciliation, so a retried batch cannot double-apply it.
		res := r.db.Model(&model.SolvedRecord{}).
			Where("student_id = ? AND question_id = ?", rec.StudentID, rec.QuestionID).
			Update("solve_count", newCount)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			rec.SolveCount = newCount
			if err := r.db.Create(&rec).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
