package model

import (
	"time"

	"gorm.io/gorm"
)

// Difficulty levels recognized by the points scorer. Anything else is
// treated as unknown and awards nothing.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Question is the denormalized metadata the content service owns. The
// progress service only reads it to snapshot into history records and
// increments its correct-answer counter.
type Question struct {
	ID                 uint           `gorm:"primarykey" json:"id"`
	CourseName         string         `json:"course_name" gorm:"not null;index"`
	Chapter            string         `json:"chapter"`
	Grade              string         `json:"grade"`
	Stream             string         `json:"stream"`
	Difficulty         string         `json:"difficulty" gorm:"not null"` // "easy", "medium", "hard"
	CreatedBy          uint           `json:"created_by" gorm:"index"`
	CorrectAnswerCount int64          `json:"correct_answer_count" gorm:"not null;default:0"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}
