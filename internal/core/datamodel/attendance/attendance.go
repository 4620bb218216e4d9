package attendance

import "time"

// DateLayout is the ISO calendar date form used for the date column.
// ISO dates compare correctly as text, so range filters stay plain
// string comparisons.
const DateLayout = "2006-01-02"

// Record is the persistence model for one attendance row. At most one
// row exists per (staff_id, date); the unique index backs that invariant
// under concurrent check-ins.
type Record struct {
	ID       string     `gorm:"primaryKey;column:id"`
	StaffID  string     `gorm:"column:staff_id;not null;uniqueIndex:idx_attendance_staff_date"`
	Date     string     `gorm:"column:date;not null;uniqueIndex:idx_attendance_staff_date;index:idx_attendance_date"`
	CheckIn  time.Time  `gorm:"column:check_in;not null"`
	CheckOut *time.Time `gorm:"column:check_out"`
}

func (Record) TableName() string {
	return "attendance"
}

// Open reports whether the row still represents an open session.
func (r *Record) Open() bool {
	return r.CheckOut == nil
}
