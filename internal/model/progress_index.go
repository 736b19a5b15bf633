package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// MonthRefs maps a month label to the MonthlyProgress row holding that
// month's calendar. Stored as one JSON column, grown lazily as new
// months are encountered.
type MonthRefs map[string]uint

// Value implements driver.Valuer.
func (m MonthRefs) Value() (driver.Value, error) {
	if m == nil {
		m = MonthRefs{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (m *MonthRefs) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	case nil:
		*m = MonthRefs{}
		return nil
	default:
		return fmt.Errorf("unsupported type %T for MonthRefs", src)
	}
}

// StudentProgressIndex is created on a student's first-ever submission
// and points at every MonthlyProgress record they own.
type StudentProgressIndex struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	StudentID uint      `json:"student_id" gorm:"not null;uniqueIndex"`
	MonthRefs MonthRefs `json:"month_refs" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
