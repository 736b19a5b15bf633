package repository

import (
	"errors"

	"github.com/studypulse/backend/internal/model"
	"gorm.io/gorm"
)

type ProgressIndexRepository interface {
	FindByStudent(studentID uint) (*model.StudentProgressIndex, error)
	// Register points monthLabel at progressID in the student's index,
	// creating the index on the student's first-ever submission.
	Register(studentID uint, monthLabel string, progressID uint) error
}

type progressIndexRepository struct {
	db *gorm.DB
}

func NewProgressIndexRepository(db *gorm.DB) ProgressIndexRepository {
	return &progressIndexRepository{db: db}
}

func (r *progressIndexRepository) FindByStudent(studentID uint) (*model.StudentProgressIndex, error) {
	var index model.StudentProgressIndex
	if err := r.db.Where("student_id = ?", studentID).First(&index).Error; err != nil {
		return nil, err
	}
	return &index, nil
}

func (r *progressIndexRepository) Register(studentID uint, monthLabel string, progressID uint) error {
	index, err := r.FindByStudent(studentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		index = &model.StudentProgressIndex{
			StudentID: studentID,
			MonthRefs: model.MonthRefs{monthLabel: progressID},
		}
		return r.db.Create(index).Error
	}
	if err != nil {
		return err
	}
	if index.MonthRefs == nil {
		index.MonthRefs = model.MonthRefs{}
	}
	index.MonthRefs[monthLabel] = progressID
	return r.db.Model(index).Update("month_refs", index.MonthRefs).Error
}
