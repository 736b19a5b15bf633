package repository

import (
	"github.com/studypulse/backend/internal/model"
	"gorm.io/gorm"
)

// StudentRepository is the boundary to the profile store that owns the
// points ledger.
type StudentRepository interface {
	FindByID(id uint) (*model.Student, error)
	// IncrementTotalPoints adds delta to the ledger atomically. The
	// reconciler only ever calls it with non-negative deltas.
	IncrementTotalPoints(studentID uint, delta int64) error
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) FindByID(id uint) (*model.Student, error) {
	var student model.Student
	if err := r.db.First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) IncrementTotalPoints(studentID uint, delta int64) error {
	if delta == 0 {
		return nil
	}
	return r.db.Model(&model.Student{}).
		Where("id = ?", studentID).
		UpdateColumn("total_points", gorm.Expr("total_points + ?", delta)).Error
}
