package repository

import (
	"github.com/studypulse/backend/internal/model"
	"gorm.io/gorm"
)

// QuestionRepository is the boundary to the content service's question
// metadata: read-only lookups for history snapshots plus the global
// correct-answer counter the reconciler bumps on new solves.
type QuestionRepository interface {
	FindByIDs(ids []uint) ([]model.Question, error)
	IncrementCorrectAnswerCount(ids []uint, delta int) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByIDs(ids []uint) ([]model.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var questions []model.Question
	if err := r.db.Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) IncrementCorrectAnswerCount(ids []uint, delta int) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&model.Question{}).
		Where("id IN ?", ids).
		UpdateColumn("correct_answer_count", gorm.Expr("correct_answer_count + ?", delta)).Error
}
