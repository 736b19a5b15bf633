package model

import (
	"time"
)

// SubmissionReceipt records a processed submission id so a retried batch
// is acknowledged without being applied twice. Clients that do not send
// a submission id opt out of dedup.
type SubmissionReceipt struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	StudentID    uint      `json:"student_id" gorm:"not null;uniqueIndex:idx_receipt_student_submission"`
	SubmissionID string    `json:"submission_id" gorm:"not null;uniqueIndex:idx_receipt_student_submission"`
	CreatedAt    time.Time `json:"created_at"`
}
