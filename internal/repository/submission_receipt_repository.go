package repository

import (
	"github.com/studypulse/backend/internal/model"
	"gorm.io/gorm"
)

type SubmissionReceiptRepository interface {
	Exists(studentID uint, submissionID string) (bool, error)
	Create(studentID uint, submissionID string) error
}

type submissionReceiptRepository struct {
	db *gorm.DB
}

func NewSubmissionReceiptRepository(db *gorm.DB) SubmissionReceiptRepository {
	return &submissionReceiptRepository{db: db}
}

func (r *submissionReceiptRepository) Exists(studentID uint, submissionID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.SubmissionReceipt{}).
		Where("student_id = ? AND submission_id = ?", studentID, submissionID).
		Count(&count).Error
	return count > 0, err
}

func (r *submissionReceiptRepository) Create(studentID uint, submissionID string) error {
	return r.db.Create(&model.SubmissionReceipt{
		StudentID:    studentID,
		SubmissionID: submissionID,
	}).Error
}
