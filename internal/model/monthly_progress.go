package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DaysInCalendar is the fixed size of the day-bucket array. Buckets past
// the month's real day count are simply never written.
const DaysInCalendar = 31

// DayBuckets maps day-of-month (0-indexed) to the set of question IDs
// solved that day. Stored as a single JSON column so the whole calendar
// is one document-style read/write.
type DayBuckets [DaysInCalendar][]uint

// Value implements driver.Valuer.
func (d DayBuckets) Value() (driver.Value, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (d *DayBuckets) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	case nil:
		*d = DayBuckets{}
		return nil
	default:
		return fmt.Errorf("unsupported type %T for DayBuckets", src)
	}
}

// Add unions questionIDs into the bucket for dayIndex. Duplicate IDs are
// dropped so resubmitting the same batch leaves the bucket unchanged.
func (d *DayBuckets) Add(dayIndex int, questionIDs []uint) error {
	if dayIndex < 0 || dayIndex >= DaysInCalendar {
		return fmt.Errorf("day index %d out of range [0,%d)", dayIndex, DaysInCalendar)
	}
	seen := make(map[uint]bool, len(d[dayIndex]))
	for _, id := range d[dayIndex] {
		seen[id] = true
	}
	for _, id := range questionIDs {
		if !seen[id] {
			d[dayIndex] = append(d[dayIndex], id)
			seen[id] = true
		}
	}
	return nil
}

// MonthlyProgress is the per-student, per-month activity calendar.
// Month carries a human-readable label like "March 2025".
type MonthlyProgress struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	StudentID uint       `json:"student_id" gorm:"not null;uniqueIndex:idx_progress_student_month"`
	Month     string     `json:"month" gorm:"not null;uniqueIndex:idx_progress_student_month"`
	Days      DayBuckets `json:"days" gorm:"type:text"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// MonthLabel renders the calendar key for an instant, e.g. "March 2025".
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", t.Month().String(), t.Year())
}
