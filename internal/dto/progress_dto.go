package dto

import "time"

// SubmitProgressRequest is one client-originated report of question
// outcomes for a study session. A question should appear in exactly one
// of the two sets, representing its final state for this batch.
// SubmissionID is optional; when present it dedups retried batches.
type SubmitProgressRequest struct {
	SubmissionID         string `json:"submission_id,omitempty"`
	CorrectQuestionIDs   []uint `json:"correct_question_ids"`
	AttemptedQuestionIDs []uint `json:"attempted_question_ids"`
}

// ReconcileResultDTO summarizes what one reconciliation changed.
type ReconcileResultDTO struct {
	Success        bool   `json:"success"`
	Duplicate      bool   `json:"duplicate,omitempty"` // batch already applied, nothing re-done
	NewlySolved    int    `json:"newly_solved"`
	ReSolved       int    `json:"re_solved"`
	Regressed      int    `json:"regressed"`
	NewlyAttempted int    `json:"newly_attempted"`
	ReAttempted    int    `json:"re_attempted"`
	Transitioned   int    `json:"transitioned"`
	PointsAwarded  int64  `json:"points_awarded"`
	Month          string `json:"month"`
}

// SolvedRecordDTO is the read-side projection of a solved record.
type SolvedRecordDTO struct {
	QuestionID  uint      `json:"question_id"`
	SolveCount  int       `json:"solve_count"`
	CourseName  string    `json:"course_name"`
	Chapter     string    `json:"chapter"`
	Grade       string    `json:"grade"`
	Stream      string    `json:"stream"`
	Difficulty  string    `json:"difficulty"`
	CreatorID   uint      `json:"creator_id"`
	LastAttempt time.Time `json:"last_attempt"`
}

// AttemptedRecordDTO is the read-side projection of an attempted record.
type AttemptedRecordDTO struct {
	QuestionID   uint      `json:"question_id"`
	AttemptCount int       `json:"attempt_count"`
	CourseName   string    `json:"course_name"`
	Chapter      string    `json:"chapter"`
	Grade        string    `json:"grade"`
	Stream       string    `json:"stream"`
	Difficulty   string    `json:"difficulty"`
	CreatorID    uint      `json:"creator_id"`
	LastAttempt  time.Time `json:"last_attempt"`
}

// MonthlyProgressDTO is one month's activity calendar.
type MonthlyProgressDTO struct {
	Month string   `json:"month"`
	Days  [][]uint `json:"days"`
}

// ProgressSummaryDTO is the headline numbers for a student.
type ProgressSummaryDTO struct {
	StudentID      uint  `json:"student_id"`
	TotalPoints    int64 `json:"total_points"`
	SolvedCount    int64 `json:"solved_count"`
	AttemptedCount int64 `json:"attempted_count"`
}
