package model

import (
	"time"
)

// AttemptedRecord exists once per (student, question) pair the student
// has missed and not yet solved. It is hard-deleted when the question
// transitions to solved so a later miss can recreate it cleanly.
type AttemptedRecord struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	StudentID    uint      `json:"student_id" gorm:"not null;uniqueIndex:idx_attempted_student_question"`
	QuestionID   uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_attempted_student_question"`
	AttemptCount int       `json:"attempt_count" gorm:"not null;default:0"`
	CourseName   string    `json:"course_name"`
	Chapter      string    `json:"chapter"`
	Grade        string    `json:"grade"`
	Stream       string    `json:"stream"`
	Difficulty   string    `json:"difficulty"`
	CreatorID    uint      `json:"creator_id"`
	LastAttempt  time.Time `json:"last_attempt"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewAttemptedRecord snapshots question metadata into a first-miss record.
func NewAttemptedRecord(studentID uint, q Question, attemptedAt time.Time) AttemptedRecord {
	return AttemptedRecord{
		StudentID:    studentID,
		QuestionID:   q.ID,
		AttemptCount: 1,
		CourseName:   q.CourseName,
		Chapter:      q.Chapter,
		Grade:        q.Grade,
		Stream:       q.Stream,
		Difficulty:   q.Difficulty,
		CreatorID:    q.CreatedBy,
		LastAttempt:  attemptedAt,
	}
}

// ToSolved carries the snapshot forward when an attempted question is
// finally answered correctly.
func (a AttemptedRecord) ToSolved(solvedAt time.Time) SolvedRecord {
	return SolvedRecord{
		StudentID:   a.StudentID,
		QuestionID:  a.QuestionID,
		SolveCount:  1,
		CourseName:  a.CourseName,
		Chapter:     a.Chapter,
		Grade:       a.Grade,
		Stream:      a.Stream,
		Difficulty:  a.Difficulty,
		CreatorID:   a.CreatorID,
		LastAttempt: solvedAt,
	}
}
