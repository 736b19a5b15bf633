package model

import (
	"time"
)

// SolvedRecord exists once per (student, question) pair that has ever
// been answered correctly. SolveCount tracks repeat solves and is
// decremented (clamped at zero) when a previously solved question shows
// up as missed again. Records are never deleted by the reconciler.
type SolvedRecord struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	StudentID   uint      `json:"student_id" gorm:"not null;uniqueIndex:idx_solved_student_question"`
	QuestionID  uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_solved_student_question"`
	SolveCount  int       `json:"solve_count" gorm:"not null;default:0"`
	CourseName  string    `json:"course_name"`
	Chapter     string    `json:"chapter"`
	Grade       string    `json:"grade"`
	Stream      string    `json:"stream"`
	Difficulty  string    `json:"difficulty"`
	CreatorID   uint      `json:"creator_id"`
	LastAttempt time.Time `json:"last_attempt"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewSolvedRecord snapshots question metadata into a first-solve record.
func NewSolvedRecord(studentID uint, q Question, solvedAt time.Time) SolvedRecord {
	return SolvedRecord{
		StudentID:   studentID,
		QuestionID:  q.ID,
		SolveCount:  1,
		CourseName:  q.CourseName,
		Chapter:     q.Chapter,
		Grade:       q.Grade,
		Stream:      q.Stream,
		Difficulty:  q.Difficulty,
		CreatorID:   q.CreatedBy,
		LastAttempt: solvedAt,
	}
}
