package model

import (
	"time"
)

// Student is the profile record that owns the points ledger.
// TotalPoints only ever grows under this service; regressions decrement
// solve counts but never deduct points.
type Student struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `json:"name"`
	TotalPoints int64     `json:"total_points" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
